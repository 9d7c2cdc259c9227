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

// Package roots computes integer n-th roots with an exactness flag
// over native uint64 values, seeding from a floating-point estimate
// and correcting with integer arithmetic to guarantee an exact result.
package roots

import (
	"math"
	"math/bits"
)

// sqGreater reports whether r*r > n without overflowing uint64 when r
// is near the square root of the uint64 range (r == 2**32 at n ==
// 2**64 - 1 is the one case where r*r would wrap).
func sqGreater(r, n uint64) bool {
	hi, lo := bits.Mul64(r, r)
	if hi != 0 {
		return true
	}
	return lo > n
}

// sqLessEqual reports whether r*r <= n, the complement of sqGreater.
func sqLessEqual(r, n uint64) bool {
	return !sqGreater(r, n)
}

// sqEqual reports whether r*r == n without overflowing.
func sqEqual(r, n uint64) bool {
	hi, lo := bits.Mul64(r, r)
	return hi == 0 && lo == n
}

// IntegerNthRoot returns (r, exact) such that r**n <= y < (r+1)**n,
// with exact true iff r**n == y. n must be >= 1.
func IntegerNthRoot(y, n uint64) (uint64, bool) {
	if y == 0 || y == 1 || n == 1 {
		return y, true
	}
	if n > y {
		return 1, false
	}
	if n == 2 {
		r := ISqrt(y)
		return r, sqEqual(r, y)
	}

	// Initial floating-point estimate.
	est := math.Pow(float64(y), 1.0/float64(n)) + 0.5
	var x uint64
	if est < 0 {
		x = 0
	} else if est > float64(math.MaxUint64) {
		x = math.MaxUint64
	} else {
		x = uint64(est)
	}
	if x == 0 {
		x = 1
	}

	if x > 1<<50 {
		// Newton iteration: x <- ((n-1)*x + y/x**(n-1)) / n
		for {
			xn1 := ipowSat(x, n-1)
			if xn1 == 0 {
				break
			}
			next := ((n-1)*x + y/xn1) / n
			if next == x {
				break
			}
			diff := int64(next) - int64(x)
			if diff < 0 {
				diff = -diff
			}
			x = next
			if diff < 2 {
				break
			}
		}
	}

	// Final bidirectional integer correction: x**n <= y < (x+1)**n.
	for x > 1 && ipowSat(x, n) > y {
		x--
	}
	for ipowSat(x+1, n) <= y {
		x++
	}
	return x, ipowSat(x, n) == y
}

// ipowSat computes x**p, saturating at MaxUint64 instead of
// overflowing, so the Newton iteration and correction loops above can
// compare against y without wrapping around.
func ipowSat(x uint64, p uint64) uint64 {
	if x == 0 {
		if p == 0 {
			return 1
		}
		return 0
	}
	result := uint64(1)
	for i := uint64(0); i < p; i++ {
		if result > math.MaxUint64/x {
			return math.MaxUint64
		}
		result *= x
	}
	return result
}

// ISqrt returns floor(sqrt(n)), the n = 2 specialization of
// IntegerNthRoot.
func ISqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}
	var r uint64
	if n < 1<<50 {
		r = uint64(math.Sqrt(float64(n)))
	} else {
		// Newton iteration seeded from a slightly-over floating point
		// estimate, since float64 loses precision above 2**53.
		r = uint64(math.Sqrt(float64(n)) * 1.0000001)
		for {
			if r == 0 {
				r = 1
			}
			next := (r + n/r) / 2
			if next >= r {
				break
			}
			r = next
		}
	}
	// Correct both directions against integer overflow/rounding drift.
	for r > 0 && sqGreater(r, n) {
		r--
	}
	for r+1 > r && sqLessEqual(r+1, n) {
		r++
	}
	return r
}
