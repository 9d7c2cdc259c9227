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

// Package primes provides a forward-only prime generator. Range walks
// a bounded span of primes as a restart-only-by-fresh-construction
// cursor: once exhausted, build a new Range rather than resetting one.
package primes

import "github.com/bfix/sumsquares/primetest"

// NextPrime returns the least prime strictly greater than n, via a
// 6k+-1 wheel: every prime above 3 is of the form 6k+1 or 6k+5 (== 6k-1),
// so once past the small cases the search only visits those residues.
func NextPrime(n uint64) uint64 {
	switch {
	case n < 2:
		return 2
	case n < 3:
		return 3
	case n < 5:
		return 5
	}
	// Align to the next candidate above n that is congruent to 1 or 5
	// mod 6 (every prime above 3 has one of these two residues), then
	// alternately step by 4 and 2 to stay on those residues.
	c := n + 1
	for c%6 != 1 && c%6 != 5 {
		c++
	}
	for {
		if primetest.IsPrime(c) {
			return c
		}
		if c%6 == 1 {
			c += 4
		} else {
			c += 2
		}
	}
}

// Range is a forward-only iterator over primes p with a <= p < b. It
// owns only its (cursor, end) position; it is not rewindable, only
// restartable via a fresh call to NewRange.
type Range struct {
	cursor uint64
	end    uint64
	first  bool
}

// NewRange constructs an iterator over primes in the half-open
// interval [a, b).
func NewRange(a, b uint64) *Range {
	return &Range{cursor: a, end: b, first: true}
}

// Next advances the cursor to the next prime in range and returns it
// with ok = true, or returns (0, false) once the range is exhausted.
func (r *Range) Next() (uint64, bool) {
	var candidate uint64
	if r.first {
		r.first = false
		if r.cursor >= r.end {
			return 0, false
		}
		if r.cursor <= 2 {
			candidate = 2
		} else {
			candidate = NextPrime(r.cursor - 1)
		}
	} else {
		candidate = NextPrime(r.cursor)
	}
	if candidate >= r.end {
		r.cursor = r.end
		return 0, false
	}
	r.cursor = candidate
	return candidate, true
}
