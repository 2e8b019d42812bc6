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

/*
Package stats computes descriptive statistics over a stream of numeric input
lines in a single pass.

You create a Session with a Request describing which statistics you want, feed
it lines one at a time with Ingest(), then call Finalize() once the input is
exhausted to get back a Result holding only the statistics that were requested
and could be computed.

Moment-based statistics (count, min, max, sum, mean, variance, standard
deviation, standard error) are accumulated online and never retain the input
values, so memory use is constant no matter how much input you have. Order
statistics (median, quartiles, arbitrary percentiles) and the mode need the
full set of accepted values, so requesting any of those makes the Session
buffer values as they arrive; the buffer is sorted once during Finalize(). A
Session only buffers when it has to, which you can check with
Request.NeedsBuffer().

Lines that are not numbers are never accumulated. What happens to them is up to
the policy you pass to Ingest(): skip them silently, skip them with a logged
warning, or abort the whole run (no partial results are ever produced).

    req := stats.DefaultRequest()
    session := stats.NewSession(req, logger)
    for i, line := range lines {
        if _, err := session.Ingest(line, stats.PolicyWarn); err != nil {
            // only possible under PolicyAbort
        }
    }
    result, err := session.Finalize()
    if result == nil && err == nil {
        // no valid input at all; print nothing
    }
*/
package stats

// Version is the current version of st.
const Version = "1.0.0"
