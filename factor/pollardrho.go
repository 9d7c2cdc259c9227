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
//*    PGMID.        POLLARD RHO ALGORITHM.                          */
//*    REMARKS.      native-uint64 Floyd cycle-finding variant, with  */
//*                  the cyclic (U,V) state kept as an explicit local  */
//*                  value rather than mutating shared accumulators.  */
//********************************************************************/

package factor

import (
	"math/bits"
	"math/rand"

	"github.com/bfix/sumsquares/util"
)

// rhoState is the owned, explicit cycle-detection state for one
// attempt: the tortoise/hare pair and the current step constant.
type rhoState struct {
	u, v uint64
	a    uint64
}

func mulmodRho(x, y, n uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	if hi == 0 {
		return lo % n
	}
	_, rem := bits.Div64(hi, lo, n)
	return rem
}

func rhoStep(x, a, n uint64) uint64 {
	return (mulmodRho(x, x, n) + a) % n
}

// pollardRho searches for a nontrivial factor of n using Floyd's
// cycle-finding variant of Pollard's rho, starting every attempt from
// U = V = 2. seed seeds the random choice of the step constant and
// bound sizes the per-attempt step budget; the routine picks a new
// step constant and retries on failure up to a fixed retry count.
func pollardRho(n, bound, seed uint64) (uint64, bool) {
	if n < 5 {
		return 0, false
	}
	if n%2 == 0 {
		return 2, true
	}
	rng := newRNG(seed ^ n)
	const retries = 64
	maxSteps := bound * 64
	if maxSteps < 8192 {
		maxSteps = 8192
	}
	if maxSteps > 1<<22 {
		maxSteps = 1 << 22
	}
	for attempt := 0; attempt < retries; attempt++ {
		st := rhoState{
			u: 2,
			v: 2,
			a: rng.Uint64()%(n-3) + 1,
		}
		d := uint64(1)
		for steps := uint64(0); d == 1 && steps < maxSteps; steps++ {
			st.u = rhoStep(st.u, st.a, n)
			st.v = rhoStep(rhoStep(st.v, st.a, n), st.a, n)
			diff := st.u - st.v
			if st.u < st.v {
				diff = st.v - st.u
			}
			d = util.GCD(diff, n)
		}
		if d > 1 && d < n {
			return d, true
		}
	}
	return 0, false
}

// newRNG returns a math/rand source seeded deterministically from seed,
// so repeated calls with the same inputs reproduce the same factoring
// path (spec.md §5); seed = 0 falls back to the documented default 1234.
func newRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = 1234
	}
	return rand.New(rand.NewSource(int64(seed))) //nolint:gosec // deterministic by design, not security-sensitive
}
