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

// This file implements the order-statistics engine.

import (
	"math"
	"sort"
)

/*
PercentilesOf computes one interpolated percentile per requested rank over the
given data, which is not mutated; the data is copied and sorted once, however
many ranks you ask for.

For each rank p in [0,100] the real-valued 0-based index into the sorted copy
is p*(len-1)/100. When that lands exactly on an integer position, the element
at that position is the answer; otherwise the answer is the average of the two
elements either side of it. Note this is the midpoint of the two neighbouring
ranks, not a weighted interpolation by the fractional part: st has always
reported percentiles this way, and the exact values matter to downstream
consumers, so don't "fix" it to the more common weighted formula.

A rank outside [0,100] gets you an ErrInvalidRank Error, and empty data an
ErrNoValues Error; in both cases no results are returned.
*/
func PercentilesOf(data []float64, ranks []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, Error{Op: "PercentilesOf", Err: ErrNoValues}
	}

	for _, p := range ranks {
		if p < 0 || p > 100 {
			return nil, Error{Op: "PercentilesOf", Err: ErrInvalidRank}
		}
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	results := make([]float64, 0, len(ranks))
	for _, p := range ranks {
		index := p * float64(len(sorted)-1) / 100
		lower := math.Floor(index)
		if index == lower {
			results = append(results, sorted[int(index)])
		} else {
			results = append(results, (sorted[int(lower)]+sorted[int(lower)+1])/2)
		}
	}
	return results, nil
}
