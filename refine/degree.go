// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refine

import (
	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/internal/curve"
)

// ElevateDegree raises the degree of the given direction of p by times,
// preserving parameterization and geometry.
func ElevateDegree(p nurbs.Patch, times int, dir nurbs.Direction) (nurbs.Patch, error) {
	if err := nurbs.ValidatePatch(p); err != nil {
		return nurbs.Patch{}, err
	}
	if times <= 0 {
		return p, nil
	}
	op := func(degree int, knots nurbs.KnotVector, ctrl []nurbs.Weighted4) (int, nurbs.KnotVector, []nurbs.Weighted4, error) {
		nd, nk, nc := curve.ElevateDegree(degree, knots, ctrl, times)
		return nd, nurbs.KnotVector(nk), nc, nil
	}
	return nurbs.Dispatch(p, dir, op)
}

// ReduceDegree lowers the degree of the given direction of p by one within
// Delta tolerance. It reports ok==false if
// any row/column cannot be reduced within tolerance, in which case the
// returned patch is unspecified and should be discarded.
func ReduceDegree(p nurbs.Patch, dir nurbs.Direction) (out nurbs.Patch, ok bool) {
	if err := nurbs.ValidatePatch(p); err != nil {
		return nurbs.Patch{}, false
	}
	ok = true
	op := func(degree int, knots nurbs.KnotVector, ctrl []nurbs.Weighted4) (int, nurbs.KnotVector, []nurbs.Weighted4, error) {
		nd, nk, nc, reducible := curve.ReduceDegree(degree, knots, ctrl, nurbs.Delta)
		if !reducible {
			return 0, nil, nil, nurbs.GeometricFailuref("degree reduction exceeded tolerance")
		}
		return nd, nurbs.KnotVector(nk), nc, nil
	}
	result, err := nurbs.Dispatch(p, dir, op)
	if err != nil {
		return nurbs.Patch{}, false
	}
	return result, true
}
