// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import nurbs "github.com/cpmech/gonurbs"

// distinctInteriorKnots returns the distinct knot values strictly between
// the clamped end knots, in increasing order.
func distinctInteriorKnots(degree int, knots []float64) []float64 {
	interior := knots[degree+1 : len(knots)-degree-1]
	var out []float64
	for i, v := range interior {
		if i == 0 || v != interior[i-1] {
			out = append(out, v)
		}
	}
	return out
}

// DecomposeBezier splits (degree,knots,ctrl) into a sequence of Bézier
// segments of degree+1 control points each, by saturating every interior
// knot to multiplicity degree via repeated insertion.
func DecomposeBezier(degree int, knots []float64, ctrl []nurbs.Weighted4) [][]nurbs.Weighted4 {
	k, c := append([]float64(nil), knots...), append([]nurbs.Weighted4(nil), ctrl...)
	for _, u := range distinctInteriorKnots(degree, knots) {
		s := 0
		for _, v := range k {
			if v == u {
				s++
			}
		}
		if s < degree {
			k, c, _ = InsertKnot(degree, k, c, u, degree-s)
		}
	}
	nspans := (len(c) - 1) / degree
	segments := make([][]nurbs.Weighted4, nspans)
	for i := 0; i < nspans; i++ {
		seg := make([]nurbs.Weighted4, degree+1)
		copy(seg, c[i*degree:i*degree+degree+1])
		segments[i] = seg
	}
	return segments
}

// NumSpans returns the number of distinct interior knot spans in knots for
// a curve of the given degree — the number of Bézier segments
// DecomposeBezier will produce.
func NumSpans(degree int, knots []float64) int {
	return len(distinctInteriorKnots(degree, knots)) + 1
}
