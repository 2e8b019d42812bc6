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
	"math/rand"
	"sort"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPercentiles(t *testing.T) {
	Convey("Given some unsorted data", t, func() {
		data := []float64{9, 2, 7, 4, 5, 4, 5, 4}

		Convey("Rank 0 is the minimum and rank 100 the maximum", func() {
			results, err := PercentilesOf(data, []float64{0, 100})
			So(err, ShouldBeNil)
			So(results, ShouldResemble, []float64{2, 9})
		})

		Convey("The input is not mutated", func() {
			_, err := PercentilesOf(data, []float64{50})
			So(err, ShouldBeNil)
			So(data, ShouldResemble, []float64{9, 2, 7, 4, 5, 4, 5, 4})
		})

		Convey("Multiple ranks come back in request order", func() {
			results, err := PercentilesOf(data, []float64{100, 0, 50})
			So(err, ShouldBeNil)
			So(results[0], ShouldEqual, 9)
			So(results[1], ShouldEqual, 2)
			So(results[2], ShouldEqual, 4.5)
		})

		Convey("An out of range rank fails, returning nothing", func() {
			results, err := PercentilesOf(data, []float64{50, 101})
			So(results, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, ErrInvalidRank)

			results, err = PercentilesOf(data, []float64{-0.5})
			So(results, ShouldBeNil)
			So(err, ShouldNotBeNil)
		})
	})

	Convey("The median of an odd-length sequence is the middle element", t, func() {
		results, err := PercentilesOf([]float64{5, 1, 3, 2, 4}, []float64{50})
		So(err, ShouldBeNil)
		So(results[0], ShouldEqual, 3)
	})

	Convey("The median of an even-length sequence averages the middle two", t, func() {
		results, err := PercentilesOf([]float64{4, 1, 3, 2}, []float64{50})
		So(err, ShouldBeNil)
		So(results[0], ShouldEqual, 2.5)
	})

	Convey("A fractional index averages the two neighbouring elements", t, func() {
		// index for rank 40 over 6 elements is 2.0 exactly; for rank 30 it is
		// 1.5, which takes the midpoint of elements 1 and 2
		results, err := PercentilesOf([]float64{10, 20, 30, 40, 50, 60}, []float64{40, 30})
		So(err, ShouldBeNil)
		So(results[0], ShouldEqual, 30)
		So(results[1], ShouldEqual, 25)
	})

	Convey("A single element answers every rank", t, func() {
		results, err := PercentilesOf([]float64{7}, []float64{0, 50, 100})
		So(err, ShouldBeNil)
		So(results, ShouldResemble, []float64{7, 7, 7})
	})

	Convey("Empty data fails", t, func() {
		results, err := PercentilesOf(nil, []float64{50})
		So(results, ShouldBeNil)
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, ErrNoValues)
	})

	Convey("Rank 0 and 100 bracket random data", t, func() {
		r := rand.New(rand.NewSource(42))
		for i := 0; i < 10; i++ {
			data := make([]float64, 1+r.Intn(100))
			for j := range data {
				data[j] = r.NormFloat64() * 100
			}

			sorted := make([]float64, len(data))
			copy(sorted, data)
			sort.Float64s(sorted)

			results, err := PercentilesOf(data, []float64{0, 100})
			So(err, ShouldBeNil)
			So(results[0], ShouldEqual, sorted[0])
			So(results[1], ShouldEqual, sorted[len(sorted)-1])
		}
	})
}
