// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eval implements the NURBS point and rational-derivative
// evaluator: it delegates to the internal basis-function collaborator
// for the homogeneous tensor-product math and applies the 2D quotient rule
// to recover rational derivatives.
package eval

import (
	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/internal/basis"
)

// Point evaluates the patch at uv and drops the result to Euclidean space.
// Fails with InvalidArgument if uv lies outside the knot domain or the
// sizing invariant is broken.
func Point(p nurbs.Patch, uv nurbs.UV) (nurbs.Point3, error) {
	if err := nurbs.ValidatePatch(p); err != nil {
		return nurbs.Point3{}, err
	}
	umin, umax := p.DomainU()
	vmin, vmax := p.DomainV()
	if !nurbs.InRange(uv.U, umin, umax) {
		return nurbs.Point3{}, nurbs.InvalidArgf("u=%g outside domain [%g,%g]", uv.U, umin, umax)
	}
	if !nurbs.InRange(uv.V, vmin, vmax) {
		return nurbs.Point3{}, nurbs.InvalidArgf("v=%g outside domain [%g,%g]", uv.V, vmin, vmax)
	}
	q := basis.EvalHomogeneous(p.DegreeU, p.DegreeV, p.KnotU, p.KnotV, p.Control, uv.U, uv.V)
	return q.Drop(), nil
}

// Derivatives returns D[k][l] = d^(k+l)S/du^k dv^l for k+l<=d, applying the
// rational quotient rule to the homogeneous tensor-product derivatives.
// Entries with k+l>d are left at the zero value and must not be read.
func Derivatives(p nurbs.Patch, d int, uv nurbs.UV) ([][]nurbs.Point3, error) {
	if d < 1 {
		return nil, nurbs.InvalidArgf("derivative order must be >= 1, got %d", d)
	}
	if err := nurbs.ValidatePatch(p); err != nil {
		return nil, err
	}
	umin, umax := p.DomainU()
	vmin, vmax := p.DomainV()
	if !nurbs.InRange(uv.U, umin, umax) || !nurbs.InRange(uv.V, vmin, vmax) {
		return nil, nurbs.InvalidArgf("uv=%v outside patch domain", uv)
	}

	SKL := basis.DerivativesHomogeneous(p.DegreeU, p.DegreeV, p.KnotU, p.KnotV, p.Control, d, uv.U, uv.V)

	w00 := SKL[0][0].W
	if w00 <= 0 {
		return nil, nurbs.InvalidArgf("patch weight at uv is non-positive: %g", w00)
	}

	A := func(k, l int) nurbs.Point3 { return nurbs.Point3{X: SKL[k][l].X, Y: SKL[k][l].Y, Z: SKL[k][l].Z} }
	w := func(k, l int) float64 { return SKL[k][l].W }

	D := make([][]nurbs.Point3, d+1)
	for k := range D {
		D[k] = make([]nurbs.Point3, d+1)
	}

	for s := 0; s <= d; s++ {
		for l := 0; l <= s; l++ {
			k := s - l
			acc := A(k, l)
			for j := 1; j <= l; j++ {
				acc = acc.Sub(D[k][l-j].Scale(basis.Binomial(l, j) * w(0, j)))
			}
			for i := 1; i <= k; i++ {
				acc = acc.Sub(D[k-i][l].Scale(basis.Binomial(k, i) * w(i, 0)))
			}
			for i := 1; i <= k; i++ {
				for j := 1; j <= l; j++ {
					acc = acc.Sub(D[k-i][l-j].Scale(basis.Binomial(k, i) * basis.Binomial(l, j) * w(i, j)))
				}
			}
			D[k][l] = acc.Scale(1.0 / w00)
		}
	}
	return D, nil
}
