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

// Package util collects the small native-integer primitives shared by
// every other package in this module: bit counting, checked modular
// exponentiation over a 128-bit intermediate, p-adic multiplicity and
// gcd. None of it allocates or touches math/big: every operation here
// stays on native 64-bit arithmetic with a widened intermediate where
// a computation would otherwise overflow.
package util

import "math/bits"

// Trailing returns the number of trailing zero bits of v. Defined as
// 0 for v = 0; callers must not rely on that degenerate case meaning
// anything about v's actual factor-of-two multiplicity.
func Trailing(v uint64) int {
	if v == 0 {
		return 0
	}
	return bits.TrailingZeros64(v)
}

// IPow returns x**p by exponentiation-by-squaring. The caller
// guarantees the result fits in a uint64; IPow performs no overflow
// checking.
func IPow(x uint64, p uint) uint64 {
	result := uint64(1)
	for p > 0 {
		if p&1 == 1 {
			result *= x
		}
		x *= x
		p >>= 1
	}
	return result
}

// mulmod returns a*b mod m without overflowing 64 bits, by widening
// the product to 128 bits via bits.Mul64 and reducing with
// bits.Div64. Safe whenever a, b < m < 2**64, which holds for every
// caller in this module (both operands are always pre-reduced).
func mulmod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi == 0 {
		return lo % m
	}
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// IPowMod returns a**b mod m for m >= 1, by right-to-left
// square-and-multiply over mulmod. m = 1 always yields 0.
func IPowMod(a, b, m uint64) uint64 {
	if m == 1 {
		return 0
	}
	result := uint64(1)
	a %= m
	for b > 0 {
		if b&1 == 1 {
			result = mulmod(result, a, m)
		}
		a = mulmod(a, a, m)
		b >>= 1
	}
	return result
}

// Multiplicity returns the largest k with p**k dividing n, or 0 if p
// does not divide n. p = 2 is answered directly via Trailing; p = n
// is answered directly as 1 without any division. The general path
// strips p by repeated division; once five divisions have succeeded
// it switches to doubling-exponent stripping (trying p^2, p^4, p^8,
// ... while still divisible) so a large multiplicity costs O(log k)
// rather than O(k) divisions.
func Multiplicity(p, n uint64) int {
	if n == 0 || p < 2 {
		return 0
	}
	if p == 2 {
		return Trailing(n)
	}
	if p == n {
		return 1
	}
	if n%p != 0 {
		return 0
	}
	k := 0
	for k < 5 {
		if n%p != 0 {
			return k
		}
		n /= p
		k++
	}
	// Doubling-exponent stripping: try p^2, p^4, p^8, ... while still
	// divisible, so a multiplicity of k costs O(log k) divisions
	// instead of O(k). exp tracks pw's exponent (pw == p**exp).
	exp := 1
	pw := p
	for {
		pw2 := pw * pw
		if pw != 0 && pw2/pw != pw {
			break // would overflow uint64
		}
		if n%pw2 != 0 {
			break
		}
		n /= pw2
		k += 2 * exp
		exp *= 2
		pw = pw2
	}
	// Mop up whatever the doubling stage couldn't cleanly halve away.
	for n%p == 0 {
		n /= p
		k++
	}
	return k
}

// GCD returns the greatest common divisor of u and v, computed via
// the Euclidean remainder loop. The Pollard p-1/rho finders in package
// factor call this directly rather than each keeping their own copy.
func GCD(u, v uint64) uint64 {
	for v != 0 {
		u, v = v, u%v
	}
	return u
}
