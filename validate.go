// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

import "math"

// IsValidKnotVector reports whether k is non-decreasing and has at least
// two entries.
func IsValidKnotVector(k KnotVector) bool {
	if len(k) < 2 {
		return false
	}
	for i := 1; i < len(k); i++ {
		if k[i] < k[i-1]-Epsilon {
			return false
		}
	}
	return true
}

// IsValidNurbs enforces the NURBS sizing identity |knots| = |controls| + degree + 1.
func IsValidNurbs(degree, numKnots, numControls int) bool {
	if degree <= 0 {
		return false
	}
	return numKnots == numControls+degree+1
}

// validatePatch checks the sizing invariant and weight positivity for both
// directions of p, returning an *Error describing the first violation found.
func validatePatch(p Patch) error {
	if p.DegreeU <= 0 || p.DegreeV <= 0 {
		return InvalidArgf("degree must be positive: degreeU=%d degreeV=%d", p.DegreeU, p.DegreeV)
	}
	if !IsValidKnotVector(p.KnotU) {
		return InvalidArgf("knotU is empty or not monotone")
	}
	if !IsValidKnotVector(p.KnotV) {
		return InvalidArgf("knotV is empty or not monotone")
	}
	rows, cols := p.Control.Rows(), p.Control.Cols()
	if rows == 0 || cols == 0 {
		return InvalidArgf("control grid is empty")
	}
	if !IsValidNurbs(p.DegreeU, len(p.KnotU), rows) {
		return InvalidArgf("sizing invariant broken along U: |knotU|=%d rows=%d degreeU=%d", len(p.KnotU), rows, p.DegreeU)
	}
	if !IsValidNurbs(p.DegreeV, len(p.KnotV), cols) {
		return InvalidArgf("sizing invariant broken along V: |knotV|=%d cols=%d degreeV=%d", len(p.KnotV), cols, p.DegreeV)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if p.Control[i][j].W <= 0 {
				return InvalidArgf("weight at control[%d][%d] must be positive, got %g", i, j, p.Control[i][j].W)
			}
		}
	}
	return nil
}

// ValidatePatch is the exported form of validatePatch, used by callers that
// build patches outside this module's constructors.
func ValidatePatch(p Patch) error {
	return validatePatch(p)
}

// InRange reports whether t lies within [lo,hi] to within ε.
func InRange(t, lo, hi float64) bool {
	return t >= lo-Epsilon && t <= hi+Epsilon
}

// KnotMultiplicity returns |{i : knot[i] == t}|, compared within ε.
func KnotMultiplicity(k KnotVector, t float64) int {
	n := 0
	for _, v := range k {
		if math.Abs(v-t) < Epsilon {
			n++
		}
	}
	return n
}
