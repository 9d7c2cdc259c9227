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

package decompose

import (
	"sort"

	"github.com/bfix/sumsquares/factor"
	"github.com/bfix/sumsquares/gauss"
)

// Pair is a solution (a, b) to a*a + b*b == n, canonically ordered
// a < b.
type Pair struct {
	A, B uint64
}

// classified groups n's prime factors by residue mod 4.
type classified struct {
	twoExp  uint64            // exponent of 2
	mod1    map[uint64]uint64 // p % 4 == 1 -> exponent
	mod3    map[uint64]uint64 // p % 4 == 3 -> exponent
	mod3Odd bool              // some p % 4 == 3 has an odd exponent
}

func classify(factors map[uint64]uint64) classified {
	c := classified{mod1: make(map[uint64]uint64), mod3: make(map[uint64]uint64)}
	for p, k := range factors {
		switch {
		case p == 2:
			c.twoExp = k
		case p%4 == 1:
			c.mod1[p] = k
		case p%4 == 3:
			c.mod3[p] = k
			if k%2 != 0 {
				c.mod3Odd = true
			}
		default:
			// p == 0 (the n == 0 sentinel map entry) or any factor
			// that slipped through factoring unresolved: no
			// representation is meaningful, so force the empty-set
			// short circuit below.
			c.mod3Odd = true
		}
	}
	return c
}

// Number returns every unordered pair (a, b), a < b, with
// a*a + b*b == n. checkCount > 0 enables an early-exit budget: if the
// predicted solution count (before symmetry cancellation) is less
// than checkCount, Number returns an empty set without enumerating.
// This predicate is deliberately coarse and is not a precise lower
// bound on len(Number(n, 0)); callers relying on it accept that
// coarseness.
func Number(n uint64, checkCount uint64) []Pair {
	factors := factor.Factorize(n, 0)

	for p, k := range factors {
		if len(factors) == 1 && k == 1 {
			if p%4 == 1 {
				if x, y, ok := Prime(p); ok {
					return []Pair{{A: x, B: y}}
				}
			}
			return nil
		}
	}

	c := classify(factors)
	if c.mod3Odd || len(c.mod1) == 0 {
		return nil
	}

	if checkCount > 0 {
		predicted := uint64(1)
		for _, k := range c.mod1 {
			predicted *= k + 1
		}
		if predicted < checkCount {
			return nil
		}
	}

	return enumerate(c)
}

// gaussFactor is one prime's contribution: its two conjugate Gaussian
// factors p == (x+yi)(x-yi).
type gaussFactor struct {
	plus, minus gauss.Int
}

// enumerate performs the Gaussian-integer accumulation and bitmask
// enumeration over the mod-1 prime factors' conjugate choices.
func enumerate(c classified) []Pair {
	// C = (1-i)^e2 * prod_{p mod 4 == 3} (-p*i)^max(k/2,1)
	oneMinusI := gauss.Int{Re: 1, Im: -1}
	coeff := oneMinusI.Pow(c.twoExp)

	var mod3Primes []uint64
	for p := range c.mod3 {
		mod3Primes = append(mod3Primes, p)
	}
	sort.Slice(mod3Primes, func(i, j int) bool { return mod3Primes[i] < mod3Primes[j] })
	for _, p := range mod3Primes {
		k := c.mod3[p]
		e := k / 2
		if e == 0 {
			e = 1
		}
		negPI := gauss.Int{Re: 0, Im: -int64(p)}
		coeff = coeff.Mul(negPI.Pow(e))
	}

	var primesOrdered []uint64
	for p := range c.mod1 {
		primesOrdered = append(primesOrdered, p)
	}
	sort.Slice(primesOrdered, func(i, j int) bool { return primesOrdered[i] < primesOrdered[j] })

	var factors []gaussFactor
	totalExp := uint64(0)
	for _, p := range primesOrdered {
		k := c.mod1[p]
		x, y, ok := Prime(p)
		if !ok {
			return nil
		}
		gf := gaussFactor{
			plus:  gauss.Int{Re: int64(x), Im: int64(y)},
			minus: gauss.Int{Re: int64(x), Im: -int64(y)},
		}
		for i := uint64(0); i < k; i++ {
			factors = append(factors, gf)
			totalExp++
		}
	}
	if totalExp == 0 {
		return nil
	}

	seen := make(map[Pair]bool)
	var out []Pair

	// One factor instance is fixed to its plus form (the
	// choice-invariant base); the remaining totalExp-1 instances each
	// admit a plus/minus choice, for 2**(totalExp-1) combinations.
	combos := uint64(1) << (totalExp - 1)
	for mask := uint64(0); mask < combos; mask++ {
		v := coeff.Mul(factors[0].plus)
		for i := uint64(1); i < totalExp; i++ {
			if mask&(1<<(i-1)) != 0 {
				v = v.Mul(factors[i].minus)
			} else {
				v = v.Mul(factors[i].plus)
			}
		}
		v1, v2 := abs64(v.Re), abs64(v.Im)
		if v1 == v2 || v1 == 0 || v2 == 0 {
			continue
		}
		if v1 > v2 {
			v1, v2 = v2, v1
		}
		pair := Pair{A: v1, B: v2}
		if !seen[pair] {
			seen[pair] = true
			out = append(out, pair)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].A != out[j].A {
			return out[i].A < out[j].A
		}
		return out[i].B < out[j].B
	})
	return out
}

func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
