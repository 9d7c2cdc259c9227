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

// Stage names the CLI adapter tags its DBG-level tracing with. The pure
// core packages never log (see the package doc comment); these name the
// points in cmd/decompose that surround a call into the core, so -v
// output reads as a trace of the factoring/decomposition pipeline.
const (
	StageFactor    = "factor"
	StageDecompose = "decompose"
)

// stageLine prefixes format with a bracketed stage tag.
func stageLine(stage, format string) string {
	return "[" + stage + "] " + format
}

// Stage logs a pipeline-stage message at DBG level, tagged with stage.
func Stage(stage, format string, v ...interface{}) {
	Printf(DBG, stageLine(stage, format), v...)
}
