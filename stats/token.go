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

// This file implements the numeric grammar that input lines must match.

import (
	"regexp"
)

// numberRegexp is the strict grammar an input line must match to be accepted:
// an optional sign, then digits with an optional decimal point, with an
// optional exponent part ('e' or 'E'). It is deliberately stricter than
// strconv.ParseFloat, which also accepts things like "Inf" and "NaN" that make
// no sense as data points.
var numberRegexp = regexp.MustCompile(`^[+-]?(\.?\d+|\d+\.\d*|\.?\d+[Ee][+-]?\d+|\d*\.\d+[Ee][+-]?\d+)$`)

// ValidNumber tells you if the given line is a number according to our strict
// grammar.
func ValidNumber(line string) bool {
	return numberRegexp.MatchString(line)
}
