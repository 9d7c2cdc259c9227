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

package factor

import "github.com/bfix/sumsquares/util"

// trialDivide extracts 2, then 3, then trial-divides by the 6k+-1
// wheel from 5 upward, stripping each divisor to full multiplicity
// (switching to util.Multiplicity once the naive strip loop reaches
// 20 rounds). It stops when the candidate's
// square exceeds the remaining value (n is then 1 or prime), when the
// limit is reached (candidate^2 > limit^2), or after failMax
// consecutive non-divisors with no new factor found.
//
// Returns the remaining value, the next trial candidate to resume
// from (used to seed the windowed stage), and whether the stage
// stopped because of the limit (in which case the remainder is an
// unresolved cofactor, not something to keep factoring).
func trialDivide(n, limit uint64, result map[uint64]uint64) (rem, nextCandidate uint64, stoppedAtLimit bool) {
	rem = n

	strip := func(p uint64) {
		if rem%p != 0 {
			return
		}
		rounds := 0
		for rounds < 20 {
			if rem%p != 0 {
				return
			}
			rem /= p
			result[p]++
			rounds++
		}
		k := util.Multiplicity(p, rem)
		if k > 0 {
			result[p] += uint64(k)
			for i := 0; i < k; i++ {
				rem /= p
			}
		}
	}

	strip(2)
	strip(3)

	if rem == 1 {
		return rem, 0, false
	}

	fails := 0
	d := uint64(5)
	step := uint64(2) // alternates 2,4 to cover 6k-1, 6k+1
	for {
		if d*d > rem {
			return rem, d, false
		}
		if limit > 0 && d > limit {
			return rem, d, true
		}
		if rem%d == 0 {
			strip(d)
			fails = 0
			if rem == 1 {
				return rem, 0, false
			}
			if d*d > rem {
				return rem, d, false
			}
		} else {
			fails++
			if fails >= failMax {
				return rem, d, false
			}
		}
		d += step
		step = 6 - step
	}
}
