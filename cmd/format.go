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

// this file implements the rendering of a stats.Result as text

import (
	"fmt"
	"strings"

	"github.com/hellcoderz/st/stats"
	"github.com/olekukonko/tablewriter"
)

// outputOpts holds the formatting choices for a result.
type outputOpts struct {
	format    string
	delimiter string
	noHeader  bool
	transpose bool
}

// outputOptions resolves the formatting flags, falling back on the loaded
// config for any the user didn't supply.
func outputOptions() outputOpts {
	opts := outputOpts{
		format:    config.OutputFormat,
		delimiter: config.OutputDelimiter,
		noHeader:  config.OutputNoHeader || optNoHeader,
		transpose: config.OutputTranspose || optTranspose,
	}
	if optFormat != "" {
		opts.format = optFormat
	}
	if optDelimiter != "" {
		opts.delimiter = optDelimiter
	}
	return opts
}

// delimiterReplacer turns the escaped delimiter forms users can type on the
// command line (or put in config files) into the real characters.
var delimiterReplacer = strings.NewReplacer(`\t`, "\t", `\n`, "\n")

// formatResult renders a Result: normally a header line of statistic names and
// a line of their values, delimited; transposed, a two column table with one
// statistic per line. Statistics absent from the Result (unrequested, or
// undefined over the input) get no column at all.
func formatResult(result *stats.Result, opts outputOpts) string {
	statistics := result.Statistics()
	if len(statistics) == 0 {
		// every requested statistic was undefined over the input; blank
		// header and value lines would just confuse downstream parsing
		return ""
	}

	if opts.transpose {
		return transposedTable(result, statistics, opts)
	}

	delimiter := delimiterReplacer.Replace(opts.delimiter)

	var lines strings.Builder
	if !opts.noHeader {
		names := make([]string, 0, len(statistics))
		for _, s := range statistics {
			names = append(names, string(s))
		}
		lines.WriteString(strings.Join(names, delimiter))
		lines.WriteString("\n")
	}

	values := make([]string, 0, len(statistics))
	for _, s := range statistics {
		v, _ := result.Get(s)
		values = append(values, fmt.Sprintf(opts.format, v))
	}
	lines.WriteString(strings.Join(values, delimiter))
	lines.WriteString("\n")

	return lines.String()
}

// transposedTable renders one statistic per line.
func transposedTable(result *stats.Result, statistics []stats.Statistic, opts outputOpts) string {
	tableString := &strings.Builder{}
	table := tablewriter.NewWriter(tableString)
	if !opts.noHeader {
		table.SetHeader([]string{"Statistic", "Value"})
	}
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, s := range statistics {
		v, _ := result.Get(s)
		table.Append([]string{string(s), fmt.Sprintf(opts.format, v)})
	}

	table.Render()
	return tableString.String()
}
