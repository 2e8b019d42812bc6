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

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRequest(t *testing.T) {
	Convey("Statistics come back in canonical order however requested", t, func() {
		req := NewRequest(StatSD, StatN, StatMean, StatN)
		So(req.Statistics(), ShouldResemble, []Statistic{StatN, StatMean, StatSD})
	})

	Convey("Moment-only requests don't need a buffer", t, func() {
		So(DefaultRequest().NeedsBuffer(), ShouldBeFalse)
		So(NewRequest(StatVariance, StatStdErr).NeedsBuffer(), ShouldBeFalse)
	})

	Convey("Order statistics and mode need a buffer", t, func() {
		So(SummaryRequest().NeedsBuffer(), ShouldBeTrue)
		So(CompleteRequest().NeedsBuffer(), ShouldBeTrue)
		So(NewRequest(StatMedian).NeedsBuffer(), ShouldBeTrue)
		So(NewRequest(StatMode).NeedsBuffer(), ShouldBeTrue)

		req := NewRequest()
		So(req.NeedsBuffer(), ShouldBeFalse)
		So(req.SetPercentile(99), ShouldBeNil)
		So(req.NeedsBuffer(), ShouldBeTrue)
	})

	Convey("Only mode needs the frequency tally", t, func() {
		So(NewRequest(StatMode).needsFrequencies(), ShouldBeTrue)
		So(SummaryRequest().needsFrequencies(), ShouldBeFalse)
	})

	Convey("The predefined sets contain what they should", t, func() {
		So(DefaultRequest().Statistics(), ShouldResemble,
			[]Statistic{StatN, StatMin, StatMax, StatSum, StatMean, StatSD})
		So(SummaryRequest().Statistics(), ShouldResemble,
			[]Statistic{StatMin, StatQ1, StatMedian, StatQ3, StatMax})
		So(CompleteRequest().Statistics(), ShouldResemble,
			[]Statistic{StatN, StatMin, StatQ1, StatMedian, StatQ3, StatMax,
				StatSum, StatMean, StatSD, StatStdErr, StatVariance})
	})
}
