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
	"os"
	"strings"
	"testing"
	"time"
)

func TestSetAndGetLogLevel(t *testing.T) {
	orig := GetLogLevel()
	defer SetLogLevel(orig)

	for _, lvl := range []int{ERROR, WARN, INFO, DBG} {
		SetLogLevel(lvl)
		if GetLogLevel() != lvl {
			t.Fatalf("GetLogLevel() = %d, want %d", GetLogLevel(), lvl)
		}
	}
}

func TestSetLogLevelRejectsOutOfRange(t *testing.T) {
	orig := GetLogLevel()
	defer SetLogLevel(orig)

	SetLogLevel(INFO)
	SetLogLevel(DBG + 1) // out of range: must be ignored
	if GetLogLevel() != INFO {
		t.Fatalf("GetLogLevel() = %d, want %d (unchanged)", GetLogLevel(), INFO)
	}
}

func TestGetLogLevelName(t *testing.T) {
	orig := GetLogLevel()
	defer SetLogLevel(orig)

	cases := []struct {
		lvl  int
		want string
	}{
		{ERROR, "ERROR"},
		{WARN, "WARN"},
		{INFO, "INFO"},
		{DBG, "DBG"},
	}
	for _, c := range cases {
		SetLogLevel(c.lvl)
		if got := GetLogLevelName(); got != c.want {
			t.Errorf("GetLogLevelName() at level %d = %q, want %q", c.lvl, got, c.want)
		}
	}
}

func TestGetTagUnknownLevel(t *testing.T) {
	if got := getTag(99); got != "{?}" {
		t.Errorf("getTag(99) = %q, want {?}", got)
	}
}

func TestStageLine(t *testing.T) {
	got := stageLine(StageFactor, "n=%d")
	want := "[factor] n=%d"
	if got != want {
		t.Errorf("stageLine(%q, %q) = %q, want %q", StageFactor, "n=%d", got, want)
	}
}

func TestSimpleFormatTrimsAndTagsLevel(t *testing.T) {
	msg := &logMsg{ts: time.Now(), level: WARN, text: "some warning\n"}
	got := SimpleFormat(msg)
	if !strings.Contains(got, "{W}") {
		t.Errorf("SimpleFormat(%v) = %q, want it to contain {W}", msg, got)
	}
	if !strings.Contains(got, "some warning") {
		t.Errorf("SimpleFormat(%v) = %q, want it to contain the message text", msg, got)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("SimpleFormat(%v) = %q, want exactly one trailing newline", msg, got)
	}
}

func TestColorFormatWrapsSimpleFormat(t *testing.T) {
	msg := &logMsg{ts: time.Now(), level: ERROR, text: "boom"}
	got := ColorFormat(msg)
	if !strings.HasPrefix(got, "\033[01;31m") {
		t.Errorf("ColorFormat(%v) = %q, want ERROR-level color prefix", msg, got)
	}
	if !strings.Contains(got, "boom") {
		t.Errorf("ColorFormat(%v) = %q, want it to contain the message text", msg, got)
	}
}

func TestLogToFileWritesFilteredMessages(t *testing.T) {
	origLevel, origFormat := GetLogLevel(), logInst.format
	defer func() {
		SetLogLevel(origLevel)
		SetFormat(origFormat)
		logInst.logfile = os.Stdout
	}()

	path := t.TempDir() + "/kernel.log"
	if !LogToFile(path) {
		t.Fatalf("LogToFile(%q) = false", path)
	}
	SetFormat(SimpleFormat)
	SetLogLevel(DBG)

	Stage(StageDecompose, "no representation for n=%d", 21)
	Println(ERROR, "unreachable witness table gap")

	// The logger's handler goroutine drains msgChan asynchronously;
	// give it a moment to flush both lines before reading the file.
	time.Sleep(50 * time.Millisecond)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%q): %v", path, err)
	}
	out := string(data)
	if !strings.Contains(out, "[decompose] no representation for n=21") {
		t.Errorf("log file = %q, want it to contain the stage-tagged DBG line", out)
	}
	if !strings.Contains(out, "unreachable witness table gap") {
		t.Errorf("log file = %q, want it to contain the ERROR line", out)
	}
}

func TestLogLevelFiltersLowerPriorityMessages(t *testing.T) {
	origLevel, origFormat := GetLogLevel(), logInst.format
	defer func() {
		SetLogLevel(origLevel)
		SetFormat(origFormat)
		logInst.logfile = os.Stdout
	}()

	path := t.TempDir() + "/filtered.log"
	if !LogToFile(path) {
		t.Fatalf("LogToFile(%q) = false", path)
	}
	SetFormat(SimpleFormat)
	SetLogLevel(WARN)

	Stage(StageFactor, "n=%d limit=%d", 360, 0) // DBG: above the WARN filter
	Println(WARN, "kept warning")

	time.Sleep(50 * time.Millisecond)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%q): %v", path, err)
	}
	out := string(data)
	if strings.Contains(out, "[factor] n=360") {
		t.Errorf("log file = %q, want the DBG stage line filtered out at WARN level", out)
	}
	if !strings.Contains(out, "kept warning") {
		t.Errorf("log file = %q, want the WARN line to survive the filter", out)
	}
}
