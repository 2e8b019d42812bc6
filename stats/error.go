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

// This file contains error handling code.

import (
	"fmt"
)

// stats has some typical errors
const (
	ErrInvalidToken    = "input is not a number"
	ErrInvalidRank     = "percentile rank must be between 0 and 100"
	ErrInvalidQuartile = "quartile must be between 0 and 4"
	ErrNoValues        = "no values to compute over"
)

// Error records an error, the operation and the input line that caused it.
type Error struct {
	Op   string // name of the method
	Line int    // 1-based input line number; 0 if not related to a line
	Err  string // one of our Err constants
}

func (e Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("stats %s() line %d: %s", e.Op, e.Line, e.Err)
	}
	return fmt.Sprintf("stats %s(): %s", e.Op, e.Err)
}
