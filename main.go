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
Package main is a stub for st's command line interface, with the actual
implementation in the cmd package.

st computes descriptive statistics over numbers read one per line from files
or STDIN, and prints them in a configurable tabular format.

Basics

Pipe some numbers at it:

    seq 1 100 | st

and you get N, min, max, sum, mean and sd. Ask for other statistics with
flags:

    st --median --percentile=95 numbers.txt

Use the --help option for details of every flag.

Package Overview

st's core is implemented in the stats package. A stats.Session consumes input
lines one at a time, accumulating the moment-based statistics online (in
constant memory, via Welford's algorithm) and buffering values only when an
order statistic like the median, a percentile or the mode was requested. The
cmd package resolves command line flags into a stats.Request, streams the
input through a Session, and renders the resulting record.
*/
package main

import "github.com/hellcoderz/st/cmd"

func main() {
	cmd.Execute()
}
