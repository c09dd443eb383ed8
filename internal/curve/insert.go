// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curve implements the out-of-scope curve-level collaborators
// that the structural refiners and constructors consume per row or per
// column: knot insertion/refinement/removal, degree elevation/reduction,
// Bézier decomposition, circular arc construction, parameterization,
// least-squares fitting and a local tangent estimator.
package curve

import (
	"sort"

	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/internal/basis"
)

// InsertKnot inserts u into knots up to `times` times (The NURBS Book,
// Algorithm A5.1), clamped to the room left by the degree: if the existing
// multiplicity s already equals degree, the curve is returned unchanged
// and inserted==0.
func InsertKnot(degree int, knots []float64, ctrl []nurbs.Weighted4, u float64, times int) (newKnots []float64, newCtrl []nurbs.Weighted4, inserted int) {
	n := len(ctrl) - 1
	s := basis.Multiplicity(knots, u)
	r := times
	if room := degree - s; r > room {
		r = room
	}
	if r <= 0 {
		out := make([]nurbs.Weighted4, len(ctrl))
		copy(out, ctrl)
		outK := make([]float64, len(knots))
		copy(outK, knots)
		return outK, out, 0
	}
	k := basis.FindSpan(n, degree, knots, u)

	mp := n + degree + 1
	nq := n + r
	V := make([]float64, mp+r+1)
	Qw := make([]nurbs.Weighted4, nq+1)

	for i := 0; i <= k; i++ {
		V[i] = knots[i]
	}
	for i := 1; i <= r; i++ {
		V[k+i] = u
	}
	for i := k + 1; i <= mp; i++ {
		V[i+r] = knots[i]
	}

	for i := 0; i <= k-degree; i++ {
		Qw[i] = ctrl[i]
	}
	for i := k - s; i <= n; i++ {
		Qw[i+r] = ctrl[i]
	}

	Rw := make([]nurbs.Weighted4, degree-s+1)
	for i := 0; i <= degree-s; i++ {
		Rw[i] = ctrl[k-degree+i]
	}

	var L int
	for j := 1; j <= r; j++ {
		L = k - degree + j
		for i := 0; i <= degree-s-j; i++ {
			alpha := (u - knots[L+i]) / (knots[i+k+1] - knots[L+i])
			Rw[i] = Rw[i+1].Scale(alpha).Add(Rw[i].Scale(1 - alpha))
		}
		Qw[L] = Rw[0]
		Qw[k+r-j-s] = Rw[degree-s-j]
	}
	for i := L + 1; i < k-s; i++ {
		Qw[i] = Rw[i-L]
	}

	return V, Qw, r
}

// insertOnce is a convenience wrapper used by RefineKnots, which only ever
// needs to insert a single copy at a time.
func insertOnce(degree int, knots []float64, ctrl []nurbs.Weighted4, u float64) ([]float64, []nurbs.Weighted4) {
	k, c, _ := InsertKnot(degree, knots, ctrl, u, 1)
	return k, c
}

// RefineKnots inserts every value of X into (knots,ctrl), in sorted order,
// one at a time. This is the row-by-row
// primitive the directional dispatcher calls per row/column.
func RefineKnots(degree int, knots []float64, ctrl []nurbs.Weighted4, X []float64) ([]float64, []nurbs.Weighted4) {
	sorted := make([]float64, len(X))
	copy(sorted, X)
	sort.Float64s(sorted)
	k, c := knots, ctrl
	for _, x := range sorted {
		k, c = insertOnce(degree, k, c, x)
	}
	return k, c
}

// InsertedKnotElements returns, given two knot vectors, the values present
// in one but missing from the other — used by the ruled-surface
// constructor to bring two curves to a common knot vector before
// combining them.
func InsertedKnotElements(a, b []float64) (missingFromA, missingFromB []float64) {
	countIn := func(k []float64, v float64) int {
		n := 0
		for _, x := range k {
			if x == v {
				n++
			}
		}
		return n
	}
	seen := map[float64]bool{}
	for _, v := range a {
		if seen[v] {
			continue
		}
		seen[v] = true
		na, nb := countIn(a, v), countIn(b, v)
		for i := nb; i < na; i++ {
			missingFromB = append(missingFromB, v)
		}
	}
	seen = map[float64]bool{}
	for _, v := range b {
		if seen[v] {
			continue
		}
		seen[v] = true
		na, nb := countIn(a, v), countIn(b, v)
		for i := na; i < nb; i++ {
			missingFromA = append(missingFromA, v)
		}
	}
	return
}
