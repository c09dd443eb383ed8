// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refine implements the structural refiners: knot insertion,
// knot-vector refinement, knot removal, degree elevation/reduction and
// Bézier decomposition, each one-directional operation routed through the
// directional dispatcher (package nurbs) to the per-row curve collaborator
// (package internal/curve).
package refine

import (
	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/internal/curve"
)

// InsertKnot inserts k with multiplicity t into the given direction of p.
// If the existing multiplicity already equals the direction's degree, p is
// returned unchanged and inserted==0.
func InsertKnot(p nurbs.Patch, k float64, t int, dir nurbs.Direction) (nurbs.Patch, int, error) {
	if err := nurbs.ValidatePatch(p); err != nil {
		return nurbs.Patch{}, 0, err
	}
	var inserted int
	op := func(degree int, knots nurbs.KnotVector, ctrl []nurbs.Weighted4) (int, nurbs.KnotVector, []nurbs.Weighted4, error) {
		nk, nc, ins := curve.InsertKnot(degree, knots, ctrl, k, t)
		inserted = ins
		return degree, nurbs.KnotVector(nk), nc, nil
	}
	out, err := nurbs.Dispatch(p, dir, op)
	if err != nil {
		return nurbs.Patch{}, 0, err
	}
	return out, inserted, nil
}

// RefineKnots inserts every value of X into the given direction of p, one
// at a time.
func RefineKnots(p nurbs.Patch, x []float64, dir nurbs.Direction) (nurbs.Patch, error) {
	if err := nurbs.ValidatePatch(p); err != nil {
		return nurbs.Patch{}, err
	}
	op := func(degree int, knots nurbs.KnotVector, ctrl []nurbs.Weighted4) (int, nurbs.KnotVector, []nurbs.Weighted4, error) {
		nk, nc := curve.RefineKnots(degree, knots, ctrl, x)
		return degree, nurbs.KnotVector(nk), nc, nil
	}
	return nurbs.Dispatch(p, dir, op)
}

// RemoveKnot attempts to remove k up to t times from the given direction of
// p, keeping every row/column within Delta of its original shape. Every
// row/column removes the same number of times — the minimum any one of
// them can individually tolerate — so the direction keeps a single shared
// knot vector; it returns that common count.
func RemoveKnot(p nurbs.Patch, k float64, t int, dir nurbs.Direction) (nurbs.Patch, int, error) {
	if err := nurbs.ValidatePatch(p); err != nil {
		return nurbs.Patch{}, 0, err
	}
	minRemoved := t
	scan := func(degree int, knots nurbs.KnotVector, ctrl []nurbs.Weighted4) (int, nurbs.KnotVector, []nurbs.Weighted4, error) {
		_, _, removed := curve.RemoveKnot(degree, knots, ctrl, k, t, nurbs.Delta)
		if removed < minRemoved {
			minRemoved = removed
		}
		return degree, knots, ctrl, nil
	}
	if _, err := nurbs.Dispatch(p, dir, scan); err != nil {
		return nurbs.Patch{}, 0, err
	}
	if minRemoved <= 0 {
		return p, 0, nil
	}
	op := func(degree int, knots nurbs.KnotVector, ctrl []nurbs.Weighted4) (int, nurbs.KnotVector, []nurbs.Weighted4, error) {
		nk, nc, removed := curve.RemoveKnot(degree, knots, ctrl, k, minRemoved, nurbs.Delta)
		if removed != minRemoved {
			return 0, nil, nil, nurbs.GeometricFailuref("knot removal disagreement across rows/columns at u=%g", k)
		}
		return degree, nurbs.KnotVector(nk), nc, nil
	}
	out, err := nurbs.Dispatch(p, dir, op)
	if err != nil {
		return nurbs.Patch{}, 0, err
	}
	return out, minRemoved, nil
}
