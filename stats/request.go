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

// This file implements Request, the canonical description of which statistics
// a Session should compute.

// Statistic is how we name the statistics that can be requested. The string
// value is also the key used for the statistic in a Result.
type Statistic string

const (
	StatN          Statistic = "N"
	StatMin        Statistic = "min"
	StatQ1         Statistic = "q1"
	StatMedian     Statistic = "median"
	StatQ3         Statistic = "q3"
	StatMax        Statistic = "max"
	StatSum        Statistic = "sum"
	StatMean       Statistic = "mean"
	StatSD         Statistic = "sd"
	StatStdErr     Statistic = "stderr"
	StatVariance   Statistic = "variance"
	StatPercentile Statistic = "percentile"
	StatQuartile   Statistic = "quartile"
	StatMode       Statistic = "mode"
)

// canonicalOrder is the order statistics appear in a Result, regardless of the
// order they were requested in.
var canonicalOrder = []Statistic{
	StatN,
	StatMin,
	StatQ1,
	StatMedian,
	StatQ3,
	StatMax,
	StatSum,
	StatMean,
	StatSD,
	StatStdErr,
	StatVariance,
	StatPercentile,
	StatQuartile,
	StatMode,
}

// buffering is the set of statistics that need the full sequence of accepted
// values materialised in memory; anything else can be computed online in
// constant memory.
var buffering = map[Statistic]bool{
	StatQ1:         true,
	StatMedian:     true,
	StatQ3:         true,
	StatPercentile: true,
	StatQuartile:   true,
	StatMode:       true,
}

// Request describes the set of statistics a Session should compute. Create one
// with NewRequest() or one of the predefined set constructors.
type Request struct {
	requested  map[Statistic]bool
	percentile float64
	quartile   int
}

// NewRequest creates a Request for the given statistics. Duplicates are
// harmless. StatPercentile and StatQuartile should not be passed here; use
// SetPercentile() and SetQuartile(), which take their arguments.
func NewRequest(statistics ...Statistic) *Request {
	r := &Request{requested: make(map[Statistic]bool)}
	for _, s := range statistics {
		r.requested[s] = true
	}
	return r
}

// DefaultRequest creates a Request for the statistics reported when the user
// asks for nothing in particular: N, min, max, sum, mean and sd. None of these
// need buffering.
func DefaultRequest() *Request {
	return NewRequest(StatN, StatMin, StatMax, StatSum, StatMean, StatSD)
}

// SummaryRequest creates a Request for the five-number summary: min, q1,
// median, q3 and max.
func SummaryRequest() *Request {
	return NewRequest(StatMin, StatQ1, StatMedian, StatQ3, StatMax)
}

// CompleteRequest creates a Request for everything except mode, percentile and
// quartile (the latter two because they take arguments).
func CompleteRequest() *Request {
	return NewRequest(StatN, StatMin, StatQ1, StatMedian, StatQ3, StatMax,
		StatSum, StatMean, StatSD, StatStdErr, StatVariance)
}

// SetPercentile adds StatPercentile to the Request, to be computed at the
// given rank. Ranks outside [0,100] result in an ErrInvalidRank Error, since a
// bad rank is a configuration mistake, not a data problem.
func (r *Request) SetPercentile(rank float64) error {
	if rank < 0 || rank > 100 {
		return Error{Op: "SetPercentile", Err: ErrInvalidRank}
	}
	r.requested[StatPercentile] = true
	r.percentile = rank
	return nil
}

// SetQuartile adds StatQuartile to the Request, to be computed for the given
// k, where k 0..4 means the 0th..100th percentile. k outside that range
// results in an ErrInvalidQuartile Error.
func (r *Request) SetQuartile(k int) error {
	if k < 0 || k > 4 {
		return Error{Op: "SetQuartile", Err: ErrInvalidQuartile}
	}
	r.requested[StatQuartile] = true
	r.quartile = k
	return nil
}

// Includes tells you if the given statistic is part of this Request.
func (r *Request) Includes(s Statistic) bool {
	return r.requested[s]
}

// Statistics returns the requested statistics in canonical order.
func (r *Request) Statistics() []Statistic {
	var statistics []Statistic
	for _, s := range canonicalOrder {
		if r.requested[s] {
			statistics = append(statistics, s)
		}
	}
	return statistics
}

// NeedsBuffer tells you if any requested statistic requires the accepted
// values to be kept in memory until Finalize(). When this is false, a Session
// for this Request runs in constant memory however large the input. This is
// the single place that decision is made.
func (r *Request) NeedsBuffer() bool {
	for s := range r.requested {
		if buffering[s] {
			return true
		}
	}
	return false
}

// needsFrequencies tells you if a value->count tally must be maintained during
// ingest, which is only the case when mode was requested.
func (r *Request) needsFrequencies() bool {
	return r.requested[StatMode]
}
