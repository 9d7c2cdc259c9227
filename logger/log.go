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

// Package logger is a small channel-driven logger, trimmed to what this
// kernel's one CLI adapter (cmd/decompose) needs: leveled output behind
// a pluggable Formatter, plus named stage helpers (see stages.go) for
// tagging factoring/decomposition pipeline transitions under -v. The
// pure core packages never import it; only cmd/decompose does.
package logger

import (
	"fmt"
	"os"
	"time"
)

// Logging levels, most to least severe. DBG carries pipeline-stage
// tracing (see Stage in stages.go).
const (
	// ERROR message
	ERROR = iota
	// WARN for warning messages
	WARN
	// INFO is for informational messages
	INFO
	// DBG for debug/stage-tracing messages
	DBG

	// ROTATE log file command
	ROTATE = iota // rotate log file
)

// logMsg is one queued log line: timestamped and level-tagged at the
// call site, turned into output text by the logger's current Formatter.
type logMsg struct {
	ts    time.Time
	level int
	text  string
}

type logger struct {
	msgChan chan logMsg // message to be logged
	cmdChan chan int    // commands to be executed
	logfile *os.File    // current log file (can be stdout/stderr)
	started time.Time   // start time of current log file
	level   int         // current log level
	format  Formatter   // message-to-text formatter
}

var logInst *logger // singleton logger instance

// Instantiate new logger (to stdout) and run its handler loop.
func init() {
	logInst = &logger{
		msgChan: make(chan logMsg),
		cmdChan: make(chan int),
		logfile: os.Stdout,
		started: time.Now(),
		level:   WARN,
		format:  SimpleFormat,
	}

	go func() {
		for {
			select {
			case msg := <-logInst.msgChan:
				logInst.logfile.WriteString(logInst.format(&msg))
			case cmd := <-logInst.cmdChan:
				switch cmd {
				case ROTATE:
					if logInst.logfile != os.Stdout {
						fname := logInst.logfile.Name()
						logInst.logfile.Close()
						ts := logInst.started.Format(time.RFC3339)
						os.Rename(fname, fname+"."+ts)
						var err error
						if logInst.logfile, err = os.Create(fname); err != nil {
							logInst.logfile = os.Stdout
						}
						logInst.started = time.Now()
					} else {
						Println(WARN, "[log] log rotation for 'stdout' not applicable.")
					}
				}
			}
		}
	}()
}

// Println logs line at the given level, if it passes the current filter.
func Println(level int, line string) {
	if level <= logInst.level {
		logInst.msgChan <- logMsg{ts: time.Now(), level: level, text: line}
	}
}

//---------------------------------------------------------------------

// Printf logs a formatted line at the given level.
func Printf(level int, format string, v ...interface{}) {
	if level <= logInst.level {
		logInst.msgChan <- logMsg{ts: time.Now(), level: level, text: fmt.Sprintf(format, v...)}
	}
}

//=====================================================================
// Logfile functions
//=====================================================================

// LogToFile starts logging messages to file.
func LogToFile(filename string) bool {
	if logInst.logfile == nil {
		logInst.logfile = os.Stdout
	}
	Println(INFO, "[log] file-based logging to '"+filename+"'")
	if f, err := os.Create(filename); err == nil {
		logInst.logfile = f
		logInst.started = time.Now()
		return true
	}
	Println(ERROR, "[log] can't enable file-based logging!")
	return false
}

//---------------------------------------------------------------------

// Rotate log file.
func Rotate() {
	logInst.cmdChan <- ROTATE
}

//=====================================================================
// Level and formatter control
//=====================================================================

// GetLogLevel returns the current numeric log level.
func GetLogLevel() int {
	return logInst.level
}

//---------------------------------------------------------------------

// GetLogLevelName returns the current log level in human-readable form.
func GetLogLevelName() string {
	switch logInst.level {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DBG:
		return "DBG"
	}
	return "UNKNOWN_LOGLEVEL"
}

//---------------------------------------------------------------------

// SetLogLevel sets the logging level from a numeric value; an
// out-of-range value is rejected with a warning and leaves the level
// unchanged.
func SetLogLevel(lvl int) {
	if lvl < ERROR || lvl > DBG {
		Printf(WARN, "[logger] unknown loglevel '%d' requested -- ignored.\n", lvl)
		return
	}
	logInst.level = lvl
}

//---------------------------------------------------------------------

// SetFormat installs f as the Formatter applied to every queued
// message from here on. cmd/decompose uses this to switch between
// SimpleFormat and ColorFormat via its -color flag.
func SetFormat(f Formatter) {
	logInst.format = f
}

//---------------------------------------------------------------------

// getTag returns the loglevel tag as a message prefix.
func getTag(level int) string {
	switch level {
	case ERROR:
		return "{E}"
	case WARN:
		return "{W}"
	case INFO:
		return "{I}"
	case DBG:
		return "{D}"
	}
	return "{?}"
}
