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

// This file implements Session, the lifecycle around a single run over some
// input.

import (
	"strconv"

	"github.com/inconshreveable/log15"
)

// InvalidPolicy is how we name what Ingest() should do with a line that fails
// the numeric grammar.
type InvalidPolicy int

const (
	// PolicyWarn skips the line and logs a warning with its line number.
	PolicyWarn InvalidPolicy = iota

	// PolicySilent skips the line without comment.
	PolicySilent

	// PolicyAbort makes Ingest() return an ErrInvalidToken Error; the run is
	// over and no results should be produced.
	PolicyAbort
)

// Session computes the statistics described by a Request over lines fed to
// Ingest(). A Session is for one run over one input: create it, ingest every
// line, call Finalize() exactly once, throw it away. Sessions hold all their
// state themselves (nothing package-level), and are not safe for concurrent
// use; input lines must be ingested in their original order anyway, since the
// buffer's insertion order mirrors accumulator processing order.
type Session struct {
	req    *Request
	logger log15.Logger
	acc    *accumulator
	buffer []float64
	freqs  *frequencies
	line   int
}

// NewSession creates a Session that will compute the statistics in the given
// Request. Whether the Session buffers accepted values is decided here, once,
// from the Request; moment-only Requests run in constant memory. The logger is
// used to report lines skipped under PolicyWarn; pass nil to discard those
// warnings.
func NewSession(req *Request, logger log15.Logger) *Session {
	if logger == nil {
		logger = log15.New()
		logger.SetHandler(log15.DiscardHandler())
	}

	s := &Session{
		req:    req,
		logger: logger,
		acc:    newAccumulator(),
	}

	if req.needsFrequencies() {
		s.freqs = newFrequencies()
	}

	return s
}

// Ingest consumes the next input line. Lines matching the numeric grammar are
// accumulated (and buffered, if this Session buffers) and true is returned.
// For anything else the onInvalid policy decides: under PolicyWarn or
// PolicySilent the line is skipped and (false, nil) returned; under
// PolicyAbort an Error carrying the 1-based line number is returned, after
// which the caller must not Finalize().
func (s *Session) Ingest(line string, onInvalid InvalidPolicy) (bool, error) {
	s.line++

	if !ValidNumber(line) {
		switch onInvalid {
		case PolicyAbort:
			return false, Error{Op: "Ingest", Line: s.line, Err: ErrInvalidToken}
		case PolicyWarn:
			s.logger.Warn("skipping input that is not a number", "line", s.line, "input", line)
		}
		return false, nil
	}

	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		// the grammar is stricter than ParseFloat, so this can't happen
		return false, Error{Op: "Ingest", Line: s.line, Err: ErrInvalidToken}
	}

	s.acc.push(v)
	if s.req.NeedsBuffer() {
		s.buffer = append(s.buffer, v)
	}
	if s.freqs != nil {
		s.freqs.tally(v)
	}
	return true, nil
}

// Finalize computes the requested statistics over everything ingested so far
// and returns them as a Result. Call it once, after the input is exhausted;
// order statistics sort the buffer here, in a single pass shared by every
// requested rank.
//
// If not a single valid value was ingested, both return values are nil: that
// is the defined "no input, no output" terminal state, not an error, and the
// caller should produce no output at all rather than a record of zeroes.
// Statistics that are undefined over the ingested values (sd and friends for
// fewer than 2 values, mode when there's a tie) are simply absent from the
// Result.
func (s *Session) Finalize() (*Result, error) {
	if s.acc.count() == 0 {
		return nil, nil
	}

	result := newResult()
	s.finalizeMoments(result)

	if err := s.finalizeOrderStats(result); err != nil {
		return nil, err
	}

	if s.req.Includes(StatMode) {
		if mode, ok := s.freqs.mode(); ok {
			result.set(StatMode, mode)
		}
	}

	return result, nil
}

// finalizeMoments fills in the statistics that come straight from the
// accumulator.
func (s *Session) finalizeMoments(result *Result) {
	if s.req.Includes(StatN) {
		result.set(StatN, float64(s.acc.count()))
	}
	if s.req.Includes(StatMin) {
		result.set(StatMin, s.acc.min)
	}
	if s.req.Includes(StatMax) {
		result.set(StatMax, s.acc.max)
	}
	if s.req.Includes(StatSum) {
		result.set(StatSum, s.acc.sum)
	}
	if s.req.Includes(StatMean) {
		result.set(StatMean, s.acc.mean())
	}
	if s.req.Includes(StatSD) {
		if sd, ok := s.acc.stddev(); ok {
			result.set(StatSD, sd)
		}
	}
	if s.req.Includes(StatStdErr) {
		if se, ok := s.acc.stderror(); ok {
			result.set(StatStdErr, se)
		}
	}
	if s.req.Includes(StatVariance) {
		if v, ok := s.acc.variance(); ok {
			result.set(StatVariance, v)
		}
	}
}

// finalizeOrderStats fills in the statistics that need the sorted buffer,
// gathering every needed rank first so PercentilesOf() sorts only once.
func (s *Session) finalizeOrderStats(result *Result) error {
	var (
		wanted []Statistic
		ranks  []float64
	)
	addRank := func(stat Statistic, rank float64) {
		if s.req.Includes(stat) {
			wanted = append(wanted, stat)
			ranks = append(ranks, rank)
		}
	}

	addRank(StatQ1, 25)
	addRank(StatMedian, 50)
	addRank(StatQ3, 75)
	addRank(StatPercentile, s.req.percentile)
	addRank(StatQuartile, float64(s.req.quartile)*25)

	if len(wanted) == 0 {
		return nil
	}

	values, err := PercentilesOf(s.buffer, ranks)
	if err != nil {
		return err
	}

	for i, stat := range wanted {
		result.set(stat, values[i])
	}
	return nil
}
