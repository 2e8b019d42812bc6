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

// This file implements the online accumulator for the moment-based
// statistics.

import (
	"math"

	"github.com/carbocation/runningvariance"
)

// accumulator tracks the moment-based statistics of the values pushed at it,
// without retaining the values themselves. Mean and variance come from
// runningvariance's Welford implementation, which stays numerically stable
// where a naive sum-of-squares would not. sum is a plain independent running
// total, NOT derived from the mean, so its rounding behaviour doesn't couple
// to the mean's.
type accumulator struct {
	rs  *runningvariance.RunningStat
	sum float64
	min float64
	max float64
}

func newAccumulator() *accumulator {
	return &accumulator{rs: runningvariance.NewRunningStat()}
}

// push accepts the next value in the stream.
func (a *accumulator) push(v float64) {
	if a.rs.NumDataValues() == 0 {
		a.min = v
		a.max = v
	} else {
		if v < a.min {
			a.min = v
		}
		if v > a.max {
			a.max = v
		}
	}
	a.rs.Push(v)
	a.sum += v
}

// count returns how many values have been pushed.
func (a *accumulator) count() uint {
	return a.rs.NumDataValues()
}

// mean returns the running mean, 0 if nothing has been pushed.
func (a *accumulator) mean() float64 {
	return a.rs.Mean()
}

// variance returns the Bessel-corrected sample variance. The boolean is false
// when fewer than 2 values have been pushed, where sample variance is
// undefined (runningvariance would report 0 there, which is not the same
// thing).
func (a *accumulator) variance() (float64, bool) {
	if a.rs.NumDataValues() < 2 {
		return 0, false
	}
	return a.rs.Variance(), true
}

// stddev returns the sample standard deviation, undefined like variance.
func (a *accumulator) stddev() (float64, bool) {
	v, ok := a.variance()
	if !ok {
		return 0, false
	}
	return math.Sqrt(v), true
}

// stderror returns the standard error of the mean, sd/sqrt(n), undefined like
// variance.
func (a *accumulator) stderror() (float64, bool) {
	sd, ok := a.stddev()
	if !ok {
		return 0, false
	}
	return sd / math.Sqrt(float64(a.rs.NumDataValues())), true
}
