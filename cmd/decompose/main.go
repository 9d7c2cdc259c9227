package main

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

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/bfix/sumsquares/logger"
	"github.com/bfix/sumsquares/numsq"
)

func main() {
	var (
		n          uint64
		limit      uint64
		checkCount uint64
		verbose    bool
		color      bool
	)
	flag.Uint64Var(&n, "n", 0, "positive integer to decompose")
	flag.Uint64Var(&limit, "limit", 0, "factoring limit passed to Factorize (0 = exhaustive)")
	flag.Uint64Var(&checkCount, "check-count", 0, "early-exit solution-count budget (0 = disabled)")
	flag.BoolVar(&verbose, "v", false, "log factoring and classification pipeline stages")
	flag.BoolVar(&color, "color", false, "use ANSI colors for log output")
	flag.Parse()

	if color {
		logger.SetFormat(logger.ColorFormat)
	}
	if verbose {
		logger.SetLogLevel(logger.DBG)
	}

	if n == 0 {
		for _, a := range flag.Args() {
			v, err := strconv.ParseUint(a, 10, 64)
			if err != nil {
				logger.Println(logger.ERROR, fmt.Sprintf("invalid n %q: %s", a, err))
				os.Exit(1)
			}
			n = v
			break
		}
	}
	if n == 0 {
		fmt.Println("usage: decompose -n <value> [-limit L] [-check-count C] [-v] [-color]")
		os.Exit(1)
	}

	logger.Stage(logger.StageFactor, "factoring n=%d limit=%d", n, limit)
	factors := numsq.Factorize(n, limit)
	logger.Stage(logger.StageFactor, "factors=%v", factors)

	logger.Stage(logger.StageDecompose, "enumerating n=%d check-count=%d", n, checkCount)
	pairs, err := numsq.Number(n, checkCount)
	if err != nil {
		logger.Stage(logger.StageDecompose, "n=%d: %s", n, err)
		fmt.Printf("%d: no representation as a sum of two squares\n", n)
		return
	}
	for _, p := range pairs {
		fmt.Printf("%d = %d^2 + %d^2\n", n, p.A, p.B)
	}
}
