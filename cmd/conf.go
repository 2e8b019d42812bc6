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
	"fmt"

	"github.com/spf13/cobra"
)

const defaultYML = `# The format of this file is YAML

# outputformat: What fmt verb should numeric output be formatted with?
# This defaults to "%g", which switches to exponent notation for very large
# and very small values. Use something like "%.3f" for fixed decimal places.
#outputformat: "%g"

# outputdelimiter: What should separate output columns?
# This defaults to a tab. The escapes \t and \n are understood.
#outputdelimiter: "\t"

# outputnoheader: Should the header line of statistic names be suppressed?
#outputnoheader: false

# outputtranspose: Should output be one statistic per line instead of columns?
#outputtranspose: false
`

// options for this cmd
var confDefault bool

// confCmd represents the conf command
var confCmd = &cobra.Command{
	Use:   "conf",
	Short: "See st's configuration",
	Long: `See the configuration values st will use.

This command also shows where a particular value was defined.

For a list of all possible configuration settings, their descriptions and
default values in the yml format suitable for using as one of your config
files, use the --default option.

st will load its configuration settings from files named .st_config.yml found
in these directories, in order of precedence:
1) The current directory
2) Your home directory
3) The directory pointed to by the environment variable $ST_CONFIG_DIR

If a setting is found in none of the files read, then an environment variable
is checked: ST_<setting name in caps>. Eg. to define the outputformat option
you might do:
export ST_OUTPUTFORMAT="%.3f"`,
	Run: func(cmd *cobra.Command, args []string) {
		if confDefault {
			fmt.Printf("%s", defaultYML)
			return
		}
		fmt.Print(config)
	},
}

func init() {
	RootCmd.AddCommand(confCmd)

	// flags specific to this sub-command
	confCmd.Flags().BoolVarP(&confDefault, "default", "d", false, "print default config yml file to STDOUT")
}
