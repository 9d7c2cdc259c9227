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

// Package kernelerr wraps the sentinel errors this module's callers
// need to distinguish with errors.Is, attaching free-form context the
// way a bare sentinel can't.
package kernelerr

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the failure class; callers compare
// against these with errors.Is rather than matching error strings.
var (
	// ErrDomain marks an input outside the domain of the requested
	// operation: e.g. asking Prime for a number that is not a prime
	// congruent to 1 mod 4.
	ErrDomain = errors.New("value outside operation's domain")

	// ErrOutOfRange marks a factorization that could not be completed
	// within the supplied limit or iteration budget: the returned
	// prime-power map's product is not guaranteed to equal the input.
	ErrOutOfRange = errors.New("factorization incomplete within limit")

	// ErrNoRepresentation marks a sum-of-two-squares query that
	// produced no pairs: the number has no decomposition into two
	// distinct positive squares (e.g. it carries a prime factor
	// p = 3 mod 4 to an odd power), or a checkCount budget cut the
	// enumeration short.
	ErrNoRepresentation = errors.New("no sum-of-two-squares representation")
)

// Error wraps a sentinel with context describing the specific
// operation and input that triggered it.
type Error struct {
	Err error  // base error (for errors.Is / errors.As)
	Ctx string // error context
}

// Unwrap returns the wrapped sentinel.
func (e *Error) Unwrap() error {
	return e.Err
}

// Error returns a human-readable error description.
func (e *Error) Error() string {
	return e.Err.Error() + " [" + e.Ctx + "]"
}

// New creates a new Error wrapping err with a formatted context
// string.
func New(err error, format string, args ...interface{}) *Error {
	return &Error{
		Err: err,
		Ctx: fmt.Sprintf(format, args...),
	}
}
