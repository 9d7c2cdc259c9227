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
//*    PGMID.        POLLARD P-1 ALGORITHM.                          */
//*    REMARKS.      native-uint64 rewrite accumulating               */
//*                  a^(prod p^floor(log_p B)) across primes p <= B   */
//*                  via repeated modular exponentiation, rather than  */
//*                  recomputing M = lcm{2..B} one integer at a time. */
//********************************************************************/

package factor

import (
	"math/bits"

	"github.com/bfix/sumsquares/primes"
	"github.com/bfix/sumsquares/util"
)

// maxPrimePower returns the largest e such that p**e <= bound,
// without overflowing uint64 while probing.
func maxPrimePower(p, bound uint64) uint {
	e := uint(1)
	pe := p
	for {
		hi, lo := bits.Mul64(pe, p)
		if hi != 0 || lo > bound {
			return e
		}
		pe = lo
		e++
	}
}

// pollardPMinus1 searches for a nontrivial factor of n exploiting the
// smoothness of p-1 for some prime factor p of n, with smoothness
// bound B. witness is the base (2 by default); on failure it resamples
// a uniformly from [2, n-2] and retries.
func pollardPMinus1(n, bound, witness uint64) (uint64, bool) {
	if n < 5 {
		return 0, false
	}
	if witness < 2 {
		witness = 2
	}
	if bound < 16 {
		bound = 16
	}
	rng := newRNG(bound ^ n ^ 0x9E3779B97F4A7C15)

	const retries = 8
	a := witness
	for attempt := 0; attempt < retries; attempt++ {
		if d := util.GCD(a%n, n); d > 1 && d < n {
			return d, true
		}
		acc := a % n
		it := primes.NewRange(2, bound+1)
		for {
			p, ok := it.Next()
			if !ok {
				break
			}
			e := maxPrimePower(p, bound)
			acc = util.IPowMod(acc, util.IPow(p, e), n)
		}
		if acc == 0 {
			a = rng.Uint64()%(n-3) + 2
			continue
		}
		d := util.GCD(acc-1, n)
		if d > 1 && d < n {
			return d, true
		}
		// d == 1 (try a higher bound next time, handled by the
		// caller's widening windows) or d == n (this witness is
		// unlucky for every prime below bound); either way, resample.
		a = rng.Uint64()%(n-3) + 2
	}
	return 0, false
}
