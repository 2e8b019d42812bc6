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

// this file implements the root command's actual work: resolving flags to a
// stats.Request, streaming the input through a stats.Session, and printing the
// Result.

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/hellcoderz/st/stats"
	"github.com/spf13/cobra"
)

// highlight is used to make the cause of a fatal problem stand out.
var highlight = color.New(color.FgRed, color.Bold).SprintFunc()

// runStats is the Run function of RootCmd.
func runStats(cmd *cobra.Command, args []string) {
	req, err := buildRequest(cmd)
	if err != nil {
		die(err.Error())
	}

	policy := stats.PolicyWarn
	switch {
	case optStrict:
		policy = stats.PolicyAbort
	case optQuiet:
		policy = stats.PolicySilent
	}

	session := stats.NewSession(req, appLogger)

	var merr *multierror.Error
	for _, path := range inputPaths(args) {
		if err := ingestFile(session, path, policy); err != nil {
			if optStrict {
				die("cannot continue: %s", highlight(err.Error()))
			}
			warn("%s", err)
			merr = multierror.Append(merr, err)
		}
	}

	result, err := session.Finalize()
	if err != nil {
		die("cannot continue: %s", highlight(err.Error()))
	}
	if result == nil {
		// no valid input means no output, not a row of zeroes
		os.Exit(exitCode(merr))
	}

	fmt.Print(formatResult(result, outputOptions()))
	os.Exit(exitCode(merr))
}

// exitCode is non zero if any input file was unreadable, even though we
// carried on with the rest.
func exitCode(merr *multierror.Error) int {
	if merr.ErrorOrNil() != nil {
		return 1
	}
	return 0
}

// inputPaths resolves the command line args to the paths we should read, where
// "-" means STDIN, as does having no args at all.
func inputPaths(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// ingestFile feeds every line of the given path (or STDIN for "-") to the
// session under the given policy. Lines are trimmed of surrounding whitespace
// before the session sees them, so indented numbers and CRLF line endings
// don't count as invalid. Returns an error if the file can't be opened or
// read, or if the session aborts under stats.PolicyAbort.
func ingestFile(session *stats.Session, path string, policy stats.InvalidPolicy) error {
	var reader io.Reader
	if path == "-" {
		reader = os.Stdin
	} else {
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		reader = file
	}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		if _, err := session.Ingest(strings.TrimSpace(scanner.Text()), policy); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// buildRequest resolves the statistic flags to a canonical stats.Request:
// --summary or --complete win, then any explicitly flagged statistics, and
// with nothing flagged at all you get the default set.
func buildRequest(cmd *cobra.Command) (*stats.Request, error) {
	var req *stats.Request
	switch {
	case setSummary:
		req = stats.SummaryRequest()
	case setComplete:
		req = stats.CompleteRequest()
	default:
		var requested []stats.Statistic
		for _, flagged := range []struct {
			on   bool
			stat stats.Statistic
		}{
			{statN, stats.StatN},
			{statMin, stats.StatMin},
			{statMax, stats.StatMax},
			{statSum, stats.StatSum},
			{statMean, stats.StatMean},
			{statSD, stats.StatSD},
			{statStdErr, stats.StatStdErr},
			{statVariance, stats.StatVariance},
			{statMedian, stats.StatMedian},
			{statMode, stats.StatMode},
		} {
			if flagged.on {
				requested = append(requested, flagged.stat)
			}
		}

		if len(requested) == 0 && !cmd.Flags().Changed("percentile") && !cmd.Flags().Changed("quartile") {
			return stats.DefaultRequest(), nil
		}
		req = stats.NewRequest(requested...)
	}

	if cmd.Flags().Changed("percentile") {
		if err := req.SetPercentile(statPercentile); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("quartile") {
		if err := req.SetQuartile(statQuartile); err != nil {
			return nil, err
		}
	}
	return req, nil
}
