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
Package cmd implements st's command line interface.

It is implemented using cobra, so see github.com/spf13/cobra for details. On
top of cobra we use our own config system; see internal/config.go.

cmd/root.go defines the root command, which does the main work of st, and
general utility functions for use by the sub commands; the work itself is in
cmd/run.go, with output rendering in cmd/format.go. The statistics themselves
come from the stats package.

The sub commands (eg. 'conf' or 'version') are each implemented in their own
.go file.
*/
package cmd
