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

// Package primetest decides primality for the full uint64 range
// deterministically, using a witness table keyed to range boundaries
// rather than a probabilistic round count: fixed Miller-Rabin bases
// known to be exhaustive for n < 2**64.
package primetest

import "github.com/bfix/sumsquares/util"

var smallPrimes = []uint64{7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

// knownPseudoprimes are the base-2 Fermat pseudoprimes below 23001 that
// survive the small-prime filters and that the 2^n mod n == 2 shortcut
// must reject.
var knownPseudoprimes = map[uint64]bool{
	7957:  true,
	8321:  true,
	13747: true,
	18721: true,
	19951: true,
}

// witnessRange pairs an exclusive upper bound with the witness bases
// sufficient to deterministically test primality of any n below it.
type witnessRange struct {
	below uint64
	bases []uint64
}

// witnessTable is ordered by increasing bound; the last entry's bound
// is the full uint64 ceiling and must always match.
var witnessTable = []witnessRange{
	{341531, []uint64{9345883071009581737}},
	{885594169, []uint64{725270293939359937, 3569819667048198375}},
	{350269456337, []uint64{4230279247111683200, 14694767155120705706, 16641139526367750375}},
	{55245642489451, []uint64{2, 141889084524735, 1199124725622454117, 11096072698276303650}},
	{7999252175582851, []uint64{2, 4130806001517, 149795463772692060, 186635894390467037, 3967304179347715805}},
	{585226005592931977, []uint64{2, 123635709730000, 9233062284813009, 43835965440333360, 761179012939631437, 1263739024124850375}},
	{0, []uint64{2, 325, 9375, 28178, 450775, 9780504, 1795265022}}, // 0 below means "no bound": covers up to 2**64-1
}

// IsPrime deterministically decides the primality of n for any
// n < 2**64.
func IsPrime(n uint64) bool {
	switch {
	case n == 2 || n == 3 || n == 5:
		return true
	case n < 2:
		return false
	case n%2 == 0 || n%3 == 0 || n%5 == 0:
		return false
	}
	if n < 49 {
		return true
	}
	for _, p := range smallPrimes {
		if n%p == 0 {
			return n == p
		}
	}
	if n < 2809 { // 53^2
		return true
	}
	if n <= 23001 {
		return util.IPowMod(2, n, n) == 2 && !knownPseudoprimes[n]
	}
	for _, wr := range witnessTable {
		if wr.below == 0 || n < wr.below {
			return millerRabin(n, wr.bases)
		}
	}
	// Unreachable: the table's final entry has below == 0 and matches
	// every remaining n < 2**64.
	panic("primetest: witness table does not cover n")
}

// millerRabin runs the deterministic strong-probable-prime test
// against the given witness bases. n is assumed odd and >= 3 here;
// IsPrime filters everything else before calling in.
func millerRabin(n uint64, bases []uint64) bool {
	d := n - 1
	s := 0
	for d%2 == 0 {
		d /= 2
		s++
	}
	for _, a := range bases {
		if a < 2 {
			continue
		}
		a %= n
		if a == 0 {
			continue
		}
		if !strongProbablePrime(n, d, s, a) {
			return false
		}
	}
	return true
}

// strongProbablePrime tests whether n passes the strong
// probable-prime condition for base a, given n-1 = d*2**s with d odd.
func strongProbablePrime(n, d uint64, s int, a uint64) bool {
	b := util.IPowMod(a, d, n)
	if b == 1 || b == n-1 {
		return true
	}
	for i := 0; i < s-1; i++ {
		b = util.IPowMod(b, 2, n)
		if b == n-1 {
			return true
		}
		if b == 1 {
			return false
		}
	}
	return false
}
