//----------------------------------------------------------------------
// This file is part of sumsquares.
// Copyright (C) 2011-present, Bernd Fix  >Y<
//
// sumsquares is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License,
// or (at your option) any later version.
//
// sumsquares is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.
//
// SPDX-License-Identifier: AGPL3.0-or-later
//----------------------------------------------------------------------

package logger

import (
	"fmt"
	"strings"
	"time"
)

// Formatter turns a queued log message into the text actually written
// to the log's current output.
type Formatter func(msg *logMsg) string

// SimpleFormat is the default plain, timestamped format.
func SimpleFormat(msg *logMsg) string {
	ts := msg.ts.Format(time.Stamp)
	lvl := getTag(msg.level)
	txt := strings.Trim(msg.text, "\n")
	return fmt.Sprintf("%s [%s] %s\n", ts, lvl, txt)
}

// ColorFormat wraps SimpleFormat's output in an ANSI color code keyed
// to the message's level; selected via -color in cmd/decompose for
// terminals that want factoring/decomposition stage traces to stand
// out from the final result line.
func ColorFormat(msg *logMsg) string {
	col := 34 // light blue for undefined levels
	switch msg.level {
	case ERROR:
		col = 31
	case WARN:
		col = 33
	case INFO:
		col = 37
	case DBG:
		col = 90
	}
	txt := strings.Trim(SimpleFormat(msg), "\n")
	return fmt.Sprintf("\033[01;%dm%s\033[01;0m\n", col, txt)
}
