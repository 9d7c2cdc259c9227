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

// Package numsq is the single-import facade over this module's four
// subsystems (factoring, primality, root extraction, sum-of-two-squares
// decomposition): it re-exports the flat function surface a caller
// needs without requiring them to know the internal package layout.
package numsq

import (
	"github.com/bfix/sumsquares/decompose"
	"github.com/bfix/sumsquares/factor"
	"github.com/bfix/sumsquares/kernelerr"
	"github.com/bfix/sumsquares/primes"
	"github.com/bfix/sumsquares/primetest"
	"github.com/bfix/sumsquares/roots"
)

// Pair is a solution (a, b), a < b, to a*a + b*b == n.
type Pair = decompose.Pair

// Factorize decomposes n into its prime-power map. limit = 0 factors
// exhaustively; a nonzero limit bounds full extraction to primes
// <= limit, reporting any unresolved cofactor as a single entry with
// exponent 1 whose key may itself be composite — see
// kernelerr.ErrOutOfRange.
func Factorize(n, limit uint64) map[uint64]uint64 {
	return factor.Factorize(n, limit)
}

// IsPrime reports whether n is prime, decided exactly for the full
// uint64 range.
func IsPrime(n uint64) bool {
	return primetest.IsPrime(n)
}

// NextPrime returns the least prime strictly greater than n.
func NextPrime(n uint64) uint64 {
	return primes.NextPrime(n)
}

// PrimeRange iterates the primes in [a, b) in ascending order.
type PrimeRange = primes.Range

// NewPrimeRange constructs a PrimeRange over [a, b).
func NewPrimeRange(a, b uint64) *PrimeRange {
	return primes.NewRange(a, b)
}

// IntegerNthRoot returns the integer n-th root of y (floor(y**(1/n)))
// and whether that root is exact.
func IntegerNthRoot(y, n uint64) (uint64, bool) {
	return roots.IntegerNthRoot(y, n)
}

// ISqrt returns the integer square root of n.
func ISqrt(n uint64) uint64 {
	return roots.ISqrt(n)
}

// Prime represents a prime p congruent to 1 mod 4 as x*x + y*y, with
// 0 < x < y. If p is not such a prime, x and y are 0 and the error
// wraps kernelerr.ErrDomain.
func Prime(p uint64) (x, y uint64, err error) {
	x, y, ok := decompose.Prime(p)
	if !ok {
		return 0, 0, kernelerr.New(kernelerr.ErrDomain, "Prime(%d): not a prime congruent to 1 mod 4", p)
	}
	return x, y, nil
}

// Number returns every unordered pair (a, b), a < b, with
// a*a + b*b == n. checkCount > 0 applies an early-exit budget on the
// predicted solution count; see decompose.Number.
func Number(n uint64, checkCount uint64) ([]Pair, error) {
	pairs := decompose.Number(n, checkCount)
	if pairs == nil {
		return nil, kernelerr.New(kernelerr.ErrNoRepresentation, "Number(%d)", n)
	}
	return pairs, nil
}
