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

//********************************************************************/
//*    PGMID.        INTEGER PRIME DECOMPOSER.                       */
//*    REMARKS.      native-uint64 staged factoring pipeline:        */
//*                  small-prime trial, perfect-power detection,     */
//*                  Fermat's method, then windowed Pollard p-1/rho. */
//********************************************************************/

// Package factor decomposes a uint64 into its prime-power map,
// combining trial division, perfect-power detection, Fermat's
// method, Pollard p-1 and Pollard rho. A small-prime trial stage runs
// first, then Pollard p-1 and Pollard rho are tried in turn on each
// trial window that yields no factor until the cofactor is prime or 1,
// with explicit window and limit
// discipline so the process always terminates even when the cofactor
// resists every method within its iteration budget.
package factor

import (
	"github.com/bfix/sumsquares/primes"
	"github.com/bfix/sumsquares/primetest"
	"github.com/bfix/sumsquares/roots"
	"github.com/bfix/sumsquares/util"
)

// failMax is the number of consecutive non-divisors the small-prime
// trial stage will tolerate, with no new factor found, before giving
// up and handing off to the windowed stage.
const failMax = 600

// maxRecursionDepth bounds recursive calls into Factorize (Fermat and
// Pollard both recurse on proper divisors); every recursive call
// operates on a strict divisor of its parent, so depth is naturally
// O(log2 n) <= 64 — this is a defensive backstop, not an expected
// path.
const maxRecursionDepth = 96

// finder is the common shape of an advanced factoring method: given n
// and a smoothness/step budget hint, try to return a proper nontrivial
// divisor.
type finder func(n uint64, bound uint64, seed uint64) (uint64, bool)

// Factorize decomposes n into a prime-power map. limit = 0 means no
// limit: n is factored exhaustively. A nonzero limit restricts full
// extraction to primes <= limit; any cofactor exceeding limit that
// cannot be ruled out as 1 or already-prime is returned as a single
// map entry with exponent 1, even if it is actually composite — an
// out-of-range signal to the caller. The returned map's product will
// not equal n in that case, and callers must not assume otherwise.
func Factorize(n, limit uint64) map[uint64]uint64 {
	result := make(map[uint64]uint64)
	factorInto(n, limit, result, 0)
	return result
}

// factorInto accumulates n's prime-power decomposition into result,
// adding each factor's multiplicity with respect to n's own exponent.
func factorInto(n, limit uint64, result map[uint64]uint64, depth int) {
	if n == 0 {
		result[0] = 1
		return
	}
	if n == 1 {
		return
	}
	if n < 10 {
		for _, p := range smallFactorTable(n) {
			result[p]++
		}
		return
	}
	if depth >= maxRecursionDepth {
		// Defensive backstop (see maxRecursionDepth): record n itself
		// as an unresolved cofactor rather than recursing forever.
		result[n]++
		return
	}

	rem, nextCandidate, stoppedAtLimit := trialDivide(n, limit, result)
	if rem == 1 {
		return
	}
	if stoppedAtLimit {
		result[rem]++
		return
	}
	finishResidual(rem, nextCandidate, limit, result, depth)
}

// smallFactorTable hardcodes the prime decomposition of every n in
// [2,9]; n = 0 and n = 1 are handled by the caller before reaching
// here.
func smallFactorTable(n uint64) []uint64 {
	switch n {
	case 2:
		return []uint64{2}
	case 3:
		return []uint64{3}
	case 4:
		return []uint64{2, 2}
	case 5:
		return []uint64{5}
	case 6:
		return []uint64{2, 3}
	case 7:
		return []uint64{7}
	case 8:
		return []uint64{2, 2, 2}
	case 9:
		return []uint64{3, 3}
	}
	return nil
}

// finishResidual applies the perfect-power probe, primality check,
// Fermat's method, and the windowed trial/advanced-method loop to a
// residual value that has survived the small-prime stage.
func finishResidual(rem, nextCandidate, limit uint64, result map[uint64]uint64, depth int) {
	if rem == 1 {
		return
	}
	if primetest.IsPrime(rem) {
		result[rem]++
		return
	}
	if base, exp, ok := perfectPower(rem); ok {
		sub := make(map[uint64]uint64)
		factorInto(base, limit, sub, depth+1)
		for p, k := range sub {
			result[p] += k * exp
		}
		return
	}
	if limit > 0 && rem > limit {
		result[rem]++
		return
	}
	if divA, divB, ok := fermat(rem, 3); ok {
		factorInto(divA, limit, result, depth+1)
		factorInto(divB, limit, result, depth+1)
		return
	}
	windowedSearch(rem, nextCandidate, limit, result, depth)
}

// windowedSearch expands trial-division windows in doubling steps,
// applying Pollard p-1 and Pollard rho to any window that yields no
// direct trial factor.
func windowedSearch(n, nextCandidate, limit uint64, result map[uint64]uint64, depth int) {
	if nextCandidate < 2 {
		nextCandidate = 2
	}
	low, high := nextCandidate, nextCandidate*2
	if high <= low {
		high = low + 2
	}
	const maxWindowIterations = 64
	for iter := 0; iter < maxWindowIterations; iter++ {
		if n == 1 {
			return
		}
		if primetest.IsPrime(n) {
			result[n]++
			return
		}
		if base, exp, ok := perfectPower(n); ok {
			sub := make(map[uint64]uint64)
			factorInto(base, limit, sub, depth+1)
			for p, k := range sub {
				result[p] += k * exp
			}
			return
		}

		windowHigh := high
		if limit > 0 && windowHigh > limit+1 {
			windowHigh = limit + 1
		}
		found := false
		if low < windowHigh {
			rangeIter := primes.NewRange(low, windowHigh)
			for {
				p, ok := rangeIter.Next()
				if !ok {
					break
				}
				if n%p == 0 {
					k := util.Multiplicity(p, n)
					result[p] += uint64(k)
					for i := 0; i < k; i++ {
						n /= p
					}
					found = true
					break
				}
			}
		}
		if !found {
			bound := smoothnessBound(low, high)
			if d, ok := pollardPMinus1(n, bound, 2); ok {
				applyDivisor(n, d, limit, result, depth)
				return
			}
			if d, ok := pollardRho(n, bound, 2); ok {
				applyDivisor(n, d, limit, result, depth)
				return
			}
		}

		if limit > 0 && high > limit {
			result[n]++
			return
		}
		low, high = high, high*2
		if high <= low {
			break
		}
	}
	// No method resolved the residual within the iteration budget:
	// surface it as a single unresolved cofactor rather than looping
	// indefinitely.
	if n > 1 {
		result[n]++
	}
}

// applyDivisor recursively factors a just-discovered proper divisor d
// of n (and the cofactor n/d), merging both into result.
func applyDivisor(n, d, limit uint64, result map[uint64]uint64, depth int) {
	if d <= 1 || d >= n {
		result[n]++
		return
	}
	factorInto(d, limit, result, depth+1)
	factorInto(n/d, limit, result, depth+1)
}

// smoothnessBound picks Pollard p-1's bound B from a trial window
// [low, high), approximating B ~ max(log(high^0.7), low).
func smoothnessBound(low, high uint64) uint64 {
	b := approxLog(high) * 7 / 10
	if b < low {
		b = low
	}
	if b < 100 {
		b = 100
	}
	return b
}

// approxLog returns an integer approximation of ln(n), good enough
// for sizing a smoothness bound (not for anything precision-sensitive).
func approxLog(n uint64) uint64 {
	if n < 2 {
		return 1
	}
	bits := uint64(0)
	for v := n; v > 0; v >>= 1 {
		bits++
	}
	// ln(n) ~ bits * ln(2) ~ bits * 0.693
	return bits * 693 / 1000
}

// perfectPower tests whether n = r**e for some r > 1, e >= 2, trying
// exponents from min_e up to floor(log2 n) + 2. min_e is 3 when n's
// last decimal digit rules out squares (2, 3, 7, 8), else 2.
func perfectPower(n uint64) (base uint64, exp uint64, ok bool) {
	minExp := uint64(2)
	switch n % 10 {
	case 2, 3, 7, 8:
		minExp = 3
	}
	maxExp := approxLog2(n) + 2
	for e := minExp; e <= maxExp; e++ {
		r, exact := roots.IntegerNthRoot(n, e)
		if exact && r > 1 {
			return r, e, true
		}
	}
	return 0, 0, false
}

func approxLog2(n uint64) uint64 {
	bits := uint64(0)
	for v := n; v > 0; v >>= 1 {
		bits++
	}
	if bits == 0 {
		return 0
	}
	return bits - 1
}

// fermat tries Fermat's factorization method for `tries` successive
// starting points a = ceil(sqrt(n)), a+1, a+2, .... If a^2 - n is a
// perfect square b^2, n = (a-b)(a+b) is returned.
func fermat(n uint64, tries int) (uint64, uint64, bool) {
	a := roots.ISqrt(n)
	if a*a < n {
		a++
	}
	for i := 0; i < tries; i++ {
		aa := a * a
		if aa < n {
			a++
			continue
		}
		diff := aa - n
		b, exact := roots.IntegerNthRoot(diff, 2)
		if exact {
			d1, d2 := a-b, a+b
			if d1 > 1 && d2 > 1 && d1*d2 == n {
				return d1, d2, true
			}
		}
		a++
	}
	return 0, 0, false
}
