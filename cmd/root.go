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

// this is the cobra file that enables subcommands and handles command-line args

import (
	"fmt"
	"os"

	"github.com/hellcoderz/st/internal"
	"github.com/inconshreveable/log15"
	"github.com/sb10/l15h"
	"github.com/spf13/cobra"
)

// appLogger is used for logging events in our commands
var appLogger = log15.New()

// these variables are accessible by all subcommands.
var config internal.Config

// these are the flags of the root command.
var (
	statN          bool
	statMin        bool
	statMax        bool
	statSum        bool
	statMean       bool
	statSD         bool
	statStdErr     bool
	statVariance   bool
	statMedian     bool
	statMode       bool
	statPercentile float64
	statQuartile   int
	setSummary     bool
	setComplete    bool

	optQuiet     bool
	optStrict    bool
	optFormat    string
	optDelimiter string
	optNoHeader  bool
	optTranspose bool
	optDebug     bool
)

// RootCmd represents the base command, which does the actual statistics work;
// there is no subcommand for the main function of st.
var RootCmd = &cobra.Command{
	Use:   "st [flags] [file ...]",
	Short: "st computes descriptive statistics from numbers on STDIN or in files.",
	Long: `st computes descriptive statistics over the numbers it reads, one per line,
from the given files ('-' means STDIN, as does supplying no files at all).

With no statistic flags you get N, min, max, sum, mean and sd:
$ st numbers.txt

Ask for particular statistics instead with their flags:
$ st --median --mode numbers.txt

Or for one of the predefined sets:
$ st --summary numbers.txt
$ st --complete numbers.txt

Lines that are not numbers are skipped with a warning; use --quiet to skip
them silently, or --strict to treat them as fatal. With --strict, nothing is
output at all if any input line is bad. If no valid numbers are read, st
outputs nothing and exits 0.

N, min, max, sum, mean, sd, stderr and variance are computed as the input
streams past, in constant memory. median, percentile, quartile, summary,
complete and mode need all the values kept in memory until the end of input,
so on enormous inputs prefer the streaming statistics if you can.

Output is a header line and a value line, tab separated; change that with
--delimiter, --format, --no-header and --transpose-output, whose defaults can
be configured (see 'st conf -h').`,
	Run: runStats,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		die(err.Error())
	}
}

func init() {
	// set up logging to stderr
	appLogger.SetHandler(log15.LvlFilterHandler(log15.LvlInfo, log15.StderrHandler))

	// statistic flags
	RootCmd.Flags().BoolVar(&statN, "n", false, "count of valid input numbers")
	RootCmd.Flags().BoolVar(&statMin, "min", false, "minimum")
	RootCmd.Flags().BoolVar(&statMax, "max", false, "maximum")
	RootCmd.Flags().BoolVar(&statSum, "sum", false, "sum")
	RootCmd.Flags().BoolVar(&statMean, "mean", false, "arithmetic mean")
	RootCmd.Flags().BoolVar(&statSD, "sd", false, "sample standard deviation")
	RootCmd.Flags().BoolVar(&statStdErr, "stderr", false, "standard error of the mean")
	RootCmd.Flags().BoolVar(&statVariance, "variance", false, "sample variance")
	RootCmd.Flags().BoolVar(&statMedian, "median", false, "median (50th percentile)")
	RootCmd.Flags().BoolVar(&statMode, "mode", false, "mode (unset on a tie)")
	RootCmd.Flags().Float64Var(&statPercentile, "percentile", 0, "percentile at the given rank (0-100)")
	RootCmd.Flags().IntVar(&statQuartile, "quartile", 0, "quartile k, where k*25 is the percentile rank (0-4)")
	RootCmd.Flags().BoolVar(&setSummary, "summary", false, "five-number summary: min, q1, median, q3, max")
	RootCmd.Flags().BoolVar(&setComplete, "complete", false, "all statistics except mode, percentile and quartile")

	// behaviour flags
	RootCmd.Flags().BoolVarP(&optQuiet, "quiet", "q", false, "don't warn about input lines that are not numbers")
	RootCmd.Flags().BoolVar(&optStrict, "strict", false, "treat input lines that are not numbers as fatal")
	RootCmd.Flags().StringVar(&optFormat, "format", "", "fmt verb for numeric output")
	RootCmd.Flags().StringVar(&optDelimiter, "delimiter", "", `output column delimiter (\t and \n understood)`)
	RootCmd.Flags().BoolVar(&optNoHeader, "no-header", false, "don't output the header line")
	RootCmd.Flags().BoolVar(&optTranspose, "transpose-output", false, "output one statistic per line instead of columns")

	RootCmd.PersistentFlags().BoolVar(&optDebug, "debug", false, "include debug messages and caller info in logging")

	cobra.OnInitialize(initConfig)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if optDebug {
		appLogger.SetHandler(log15.LvlFilterHandler(log15.LvlDebug,
			l15h.CallerInfoHandler(log15.StderrHandler)))
	}

	config = internal.ConfigLoad(appLogger)
}

// warn is a convenience to log a message at the Warn level.
func warn(msg string, a ...interface{}) {
	appLogger.Warn(fmt.Sprintf(msg, a...))
}

// die is a convenience to log a message at the Error level and exit non zero.
func die(msg string, a ...interface{}) {
	appLogger.Error(fmt.Sprintf(msg, a...))
	os.Exit(1)
}
