// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

import "github.com/cpmech/gosl/io"

// Kind classifies why a core operation failed.
type Kind int

const (
	// InvalidArgument marks a precondition violation: bad degree, non-monotone
	// or empty knot vector, out-of-range parameter, broken sizing identity,
	// zero/negative weight, empty grid.
	InvalidArgument Kind = iota
	// GeometricFailure marks a construction that cannot proceed: non-intersecting
	// revolution tangent rays, mismatched ruled-surface domains, degree
	// reduction exceeding tolerance.
	GeometricFailure
	// NonConvergence marks an iterative solver that exhausted its budget;
	// the best iterate is still returned alongside this kind.
	NonConvergence
	// Degenerate marks a 2x2 linear system with a near-zero determinant.
	Degenerate
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "InvalidArgument"
	case GeometricFailure:
		return "GeometricFailure"
	case NonConvergence:
		return "NonConvergence"
	case Degenerate:
		return "Degenerate"
	}
	return "Unknown"
}

// Error is the failure carrier returned by core operations.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	return io.Sf("%s: %s", e.Kind, e.Msg)
}

// newErr builds an *Error with a printf-style message, mirroring gosl/chk.Err.
func newErr(k Kind, msg string, args ...interface{}) *Error {
	return &Error{Kind: k, Msg: io.Sf(msg, args...)}
}

// InvalidArgf builds an InvalidArgument error.
func InvalidArgf(msg string, args ...interface{}) *Error {
	return newErr(InvalidArgument, msg, args...)
}

// GeometricFailuref builds a GeometricFailure error.
func GeometricFailuref(msg string, args ...interface{}) *Error {
	return newErr(GeometricFailure, msg, args...)
}

// NonConvergencef builds a NonConvergence error.
func NonConvergencef(msg string, args ...interface{}) *Error {
	return newErr(NonConvergence, msg, args...)
}

// KindOf extracts the Kind carried by err, if any, and whether it was a *Error.
func KindOf(err error) (Kind, bool) {
	if e, ok := err.(*Error); ok {
		return e.Kind, true
	}
	return 0, false
}
