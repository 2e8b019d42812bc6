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

package cmd

import (
	"strconv"
	"testing"

	"github.com/hellcoderz/st/stats"
	. "github.com/smartystreets/goconvey/convey"
)

// resultOf runs the given values through a session for the given request and
// returns the Result.
func resultOf(req *stats.Request, values ...float64) *stats.Result {
	session := stats.NewSession(req, nil)
	for _, v := range values {
		if _, err := session.Ingest(strconv.FormatFloat(v, 'g', -1, 64), stats.PolicyAbort); err != nil {
			panic(err)
		}
	}

	result, err := session.Finalize()
	if err != nil {
		panic(err)
	}
	return result
}

func TestFormatResult(t *testing.T) {
	Convey("Given a summary result", t, func() {
		result := resultOf(stats.SummaryRequest(), 1, 2, 3, 4, 5)

		Convey("Default output is a tab separated header and value line", func() {
			out := formatResult(result, outputOpts{format: "%g", delimiter: `\t`})
			So(out, ShouldEqual, "min\tq1\tmedian\tq3\tmax\n1\t2\t3\t4\t5\n")
		})

		Convey("The delimiter and format can be changed", func() {
			out := formatResult(result, outputOpts{format: "%.2f", delimiter: ","})
			So(out, ShouldEqual, "min,q1,median,q3,max\n1.00,2.00,3.00,4.00,5.00\n")
		})

		Convey("The header can be suppressed", func() {
			out := formatResult(result, outputOpts{format: "%g", delimiter: `\t`, noHeader: true})
			So(out, ShouldEqual, "1\t2\t3\t4\t5\n")
		})

		Convey("Transposed output has one statistic per line", func() {
			out := formatResult(result, outputOpts{format: "%g", delimiter: `\t`, transpose: true})
			So(out, ShouldContainSubstring, "median")
			So(out, ShouldContainSubstring, "3")
			So(out, ShouldContainSubstring, "\n")
		})
	})

	Convey("Undefined statistics get no column, not a zero", t, func() {
		// a single value has no sd
		result := resultOf(stats.DefaultRequest(), 42)
		out := formatResult(result, outputOpts{format: "%g", delimiter: `\t`})
		So(out, ShouldEqual, "N\tmin\tmax\tsum\tmean\n1\t42\t42\t42\t42\n")
	})

	Convey("A record with nothing defined in it produces no output at all", t, func() {
		// sd alone over a single value leaves nothing to print
		result := resultOf(stats.NewRequest(stats.StatSD), 42)
		So(result, ShouldNotBeNil)
		So(formatResult(result, outputOpts{format: "%g", delimiter: `\t`}), ShouldBeEmpty)
		So(formatResult(result, outputOpts{format: "%g", transpose: true}), ShouldBeEmpty)
	})
}
