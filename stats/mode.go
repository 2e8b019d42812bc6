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

// This file implements the frequency tally behind the mode statistic.

// frequencies tallies how often each accepted value has been seen, tracking
// the highest count seen so far as it goes.
type frequencies struct {
	counts     map[float64]int
	mostCommon int
}

func newFrequencies() *frequencies {
	return &frequencies{counts: make(map[float64]int)}
}

// tally records one more occurrence of v.
func (f *frequencies) tally(v float64) {
	f.counts[v]++
	if f.counts[v] > f.mostCommon {
		f.mostCommon = f.counts[v]
	}
}

// mode returns the unique value whose count equals the highest count seen. If
// two or more values tie for most common there is no mode and the boolean is
// false; multimodal reporting is deliberately not a thing here.
func (f *frequencies) mode() (float64, bool) {
	if f.mostCommon == 0 {
		return 0, false
	}

	var mode float64
	found := 0
	for v, count := range f.counts {
		if count == f.mostCommon {
			mode = v
			found++
			if found > 1 {
				return 0, false
			}
		}
	}
	return mode, true
}
