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

// Package decompose factors n and enumerates every representation of
// n as a sum of two distinct positive squares. Prime is the
// Cornacchia-style single-prime step; Number is the full enumeration
// over an arbitrary n. Both build on a quadratic-non-residue search
// for a square root of -1 mod p, which is simpler than full
// Tonelli-Shanks since p is already known prime and the target residue
// is fixed at -1.
package decompose

import (
	"github.com/bfix/sumsquares/roots"
	"github.com/bfix/sumsquares/util"
)

// Prime finds (x, y) with 0 < x < y and x*x + y*y == p, for a prime p
// congruent to 1 mod 4. Callers must filter p % 4 == 1 themselves;
// calling Prime on a value that is not such a prime returns the
// sentinel (0, 0, false).
func Prime(p uint64) (x, y uint64, ok bool) {
	if p < 5 || p%4 != 1 {
		return 0, 0, false
	}
	s := roots.ISqrt(p)

	for a := uint64(1); a < p; a++ {
		// Select a such that a**((p-1)/2) == p-1 (mod p), i.e. a is a
		// quadratic non-residue; then b = a**((p-1)/4) satisfies
		// b*b == -1 (mod p).
		if util.IPowMod(a, (p-1)/2, p) != p-1 {
			continue
		}
		b := util.IPowMod(a, (p-1)/4, p)
		r1, r2, found := reduce(p, b, s)
		if !found {
			continue
		}
		if r1 == 0 || r2 == 0 || r1 == r2 {
			continue
		}
		if r1 > r2 {
			r1, r2 = r2, r1
		}
		if r1*r1+r2*r2 != p {
			continue
		}
		return r1, r2, true
	}
	return 0, 0, false
}

// reduce runs the Euclidean-style reduction on (p, b): repeatedly
// take r = p mod b, then (p, b) <- (b, r), until two successive
// remainders at or below s = isqrt(p) appear; those two remainders
// are the answer. Terminates (without a result) if a remainder of 0
// is produced first, or the sequence stalls — a remainder of 0 always
// means "no result", never "not yet set".
func reduce(p, b, s uint64) (r1, r2 uint64, ok bool) {
	x, y := p, b
	var prev uint64
	havePrev := false
	for {
		r := x % y
		x, y = y, r
		if r == 0 {
			return 0, 0, false
		}
		if r <= s {
			if havePrev {
				return r, prev, true
			}
			havePrev = true
			prev = r
		} else if havePrev {
			// A remainder above s appeared after one below s: the
			// classic Cornacchia step only needs the first pair at or
			// under the bound, so treat this as a stall.
			return 0, 0, false
		}
		if y == 0 {
			return 0, 0, false
		}
	}
}
