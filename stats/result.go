// Copyright © 2026 Genome Research Limited
// Author: Sendu Bala <sb10@sanger.ac.uk>.
//
//  This file is part of st.
//
//  st is free software: you can redistribute it and/or modify
//  it under the terms of the GNU Lesser General Public License as published by
//  the Free Software Foundation, either version 3 of the License, or
//  (at your option) any later version.
//
//  st is distributed in the hope that it will be useful,
//  but WITHOUT ANY WARRANTY; without even the implied warranty of
//  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//  GNU Lesser General Public License for more details.
//
//  You should have received a copy of the GNU Lesser General Public License
//  along with st. If not, see <http://www.gnu.org/licenses/>.

package stats

// This file implements Result, the record of computed statistics handed back
// by Session.Finalize().

// Result maps statistics to their computed values. A statistic has an entry
// only if it was both requested and computable over the input; there are no
// zero or empty placeholders, so a formatter can't confuse "computed as zero"
// with "not requested". Results are built once by Finalize() and read-only
// thereafter.
type Result struct {
	values map[Statistic]float64
}

func newResult() *Result {
	return &Result{values: make(map[Statistic]float64)}
}

func (r *Result) set(s Statistic, v float64) {
	r.values[s] = v
}

// Get returns the computed value for the given statistic. The boolean is
// false if the statistic is absent from this Result, ie. it was not requested
// or was undefined over the input (eg. sd of a single value, mode with a tie).
func (r *Result) Get(s Statistic) (float64, bool) {
	v, present := r.values[s]
	return v, present
}

// Statistics returns the statistics present in this Result, in canonical
// order.
func (r *Result) Statistics() []Statistic {
	var statistics []Statistic
	for _, s := range canonicalOrder {
		if _, present := r.values[s]; present {
			statistics = append(statistics, s)
		}
	}
	return statistics
}
