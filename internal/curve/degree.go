// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"

	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/internal/basis"
)

// elevateBezierSegment raises a single Bézier segment from degree to
// degree+times (degree+times+1 control points) using the closed-form formula
// (The NURBS Book, eq. 5.36).
func elevateBezierSegment(degree, times int, ctrl []nurbs.Weighted4) []nurbs.Weighted4 {
	newDegree := degree + times
	out := make([]nurbs.Weighted4, newDegree+1)
	for j := 0; j <= newDegree; j++ {
		lo, hi := 0, degree
		if j-times > lo {
			lo = j - times
		}
		if j < hi {
			hi = j
		}
		var acc nurbs.Weighted4
		denom := basis.Binomial(newDegree, j)
		for i := lo; i <= hi; i++ {
			coeff := basis.Binomial(degree, i) * basis.Binomial(times, j-i) / denom
			acc = acc.Add(ctrl[i].Scale(coeff))
		}
		out[j] = acc
	}
	return out
}

// stitch joins Bézier segments that share an endpoint into one control
// polygon, dropping the duplicated junction points.
func stitch(segments [][]nurbs.Weighted4) []nurbs.Weighted4 {
	out := append([]nurbs.Weighted4(nil), segments[0]...)
	for _, seg := range segments[1:] {
		out = append(out, seg[1:]...)
	}
	return out
}

// saturatedKnots builds the clamped knot vector for the fully-saturated
// piecewise-Bézier representation of degree `degree` with interior
// breakpoints at the given distinct values.
func saturatedKnots(degree int, breakpoints []float64, domainMin, domainMax float64) []float64 {
	var out []float64
	for i := 0; i < degree+1; i++ {
		out = append(out, domainMin)
	}
	for _, b := range breakpoints {
		for i := 0; i < degree; i++ {
			out = append(out, b)
		}
	}
	for i := 0; i < degree+1; i++ {
		out = append(out, domainMax)
	}
	return out
}

// ElevateDegree raises the curve's degree by `times`. It decomposes to Bézier segments, elevates each segment
// with the closed-form formula, stitches them back into a single
// piecewise-Bézier curve, and restores the original continuity by
// removing the excess knot multiplicity introduced by saturation.
func ElevateDegree(degree int, knots []float64, ctrl []nurbs.Weighted4, times int) (newDegree int, newKnots []float64, newCtrl []nurbs.Weighted4) {
	if times <= 0 {
		return degree, append([]float64(nil), knots...), append([]nurbs.Weighted4(nil), ctrl...)
	}
	breakpoints := distinctInteriorKnots(degree, knots)
	origMult := make([]int, len(breakpoints))
	for i, b := range breakpoints {
		origMult[i] = basis.Multiplicity(knots, b)
	}

	segs := DecomposeBezier(degree, knots, ctrl)
	elevated := make([][]nurbs.Weighted4, len(segs))
	for i, seg := range segs {
		elevated[i] = elevateBezierSegment(degree, times, seg)
	}

	newDegree = degree + times
	domainMin, domainMax := knots[0], knots[len(knots)-1]
	k := saturatedKnots(newDegree, breakpoints, domainMin, domainMax)
	c := stitch(elevated)

	for i, b := range breakpoints {
		target := origMult[i] + times
		current := newDegree
		if remove := current - target; remove > 0 {
			k, c, _ = RemoveKnot(newDegree, k, c, b, remove, math.Inf(1))
		}
	}
	return newDegree, k, c
}

// ReduceDegree lowers the curve's degree by one, returning ok==false if any
// Bézier segment cannot be reduced within tol.
// On failure the returned curve is unspecified.
func ReduceDegree(degree int, knots []float64, ctrl []nurbs.Weighted4, tol float64) (newDegree int, newKnots []float64, newCtrl []nurbs.Weighted4, ok bool) {
	if degree <= 1 {
		return degree, nil, nil, false
	}
	breakpoints := distinctInteriorKnots(degree, knots)
	origMult := make([]int, len(breakpoints))
	for i, b := range breakpoints {
		origMult[i] = basis.Multiplicity(knots, b)
	}

	segs := DecomposeBezier(degree, knots, ctrl)
	reduced := make([][]nurbs.Weighted4, len(segs))
	for i, seg := range segs {
		r, segOk := reduceBezierSegment(degree, seg, tol)
		if !segOk {
			return 0, nil, nil, false
		}
		reduced[i] = r
	}

	newDegree = degree - 1
	domainMin, domainMax := knots[0], knots[len(knots)-1]
	k := saturatedKnots(newDegree, breakpoints, domainMin, domainMax)
	c := stitch(reduced)

	for i, b := range breakpoints {
		target := origMult[i] - 1
		if target < 0 {
			target = 0
		}
		current := newDegree
		if remove := current - target; remove > 0 {
			k, c, _ = RemoveKnot(newDegree, k, c, b, remove, math.Inf(1))
		}
	}
	return newDegree, k, c, true
}

// reduceBezierSegment reduces a single Bézier segment from degree p to p-1
// using the averaged forward/backward recurrence (The NURBS Book §5.5),
// and accepts the result only if re-elevating it reproduces the original
// control points within tol.
func reduceBezierSegment(p int, ctrl []nurbs.Weighted4, tol float64) ([]nurbs.Weighted4, bool) {
	if p < 1 {
		return nil, false
	}
	L := make([]nurbs.Weighted4, p)
	R := make([]nurbs.Weighted4, p)
	L[0] = ctrl[0]
	for i := 1; i <= p-1; i++ {
		L[i] = ctrl[i].Scale(float64(p)).Sub(L[i-1].Scale(float64(i))).Scale(1.0 / float64(p-i))
	}
	R[p-1] = ctrl[p]
	for i := p - 2; i >= 0; i-- {
		R[i] = ctrl[i+1].Scale(float64(p)).Sub(R[i+1].Scale(float64(p-1-i))).Scale(1.0 / float64(i+1))
	}
	out := make([]nurbs.Weighted4, p)
	for i := 0; i < p; i++ {
		w := 0.0
		if p > 1 {
			w = float64(i) / float64(p-1)
		}
		out[i] = L[i].Scale(1 - w).Add(R[i].Scale(w))
	}
	elevatedBack := elevateBezierSegment(p-1, 1, out)
	maxErr := 0.0
	for i := range elevatedBack {
		if d := wdist(elevatedBack[i], ctrl[i]); d > maxErr {
			maxErr = d
		}
	}
	return out, maxErr <= tol
}
