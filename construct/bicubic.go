// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package construct

import (
	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/internal/curve"
)

// bicubicKnots builds the clamped degree-3 knot vector for n cells with
// interior multiplicity 3, the saturated piecewise-Bézier form consistent
// with a (3n+1)-point control polygon.
func bicubicKnots(breakpoints []float64, domainMin, domainMax float64) []float64 {
	knots := make([]float64, 0, 8+3*len(breakpoints))
	for i := 0; i < 4; i++ {
		knots = append(knots, domainMin)
	}
	for _, b := range breakpoints {
		knots = append(knots, b, b, b)
	}
	for i := 0; i < 4; i++ {
		knots = append(knots, domainMax)
	}
	return knots
}

// paramAlphas returns α_k = |t_k-t_{k-1}| / (|t_k-t_{k-1}| + |t_{k+1}-t_k|)
// for k=1..len(t)-2, the parameter-space analogue of
// curve.ChordAlphas used to blend mixed-difference twist estimates.
func paramAlphas(t []float64) []float64 {
	n := len(t) - 1
	if n < 2 {
		return nil
	}
	alphas := make([]float64, n-1)
	for k := 1; k < n; k++ {
		d0, d1 := t[k]-t[k-1], t[k+1]-t[k]
		if d0 < 0 {
			d0 = -d0
		}
		if d1 < 0 {
			d1 = -d1
		}
		alphas[k-1] = d0 / (d0 + d1)
	}
	return alphas
}

// weightAt returns, for a sample index k spanning maxCell+1 cells, the
// cell indices to blend and the blend weight, clamping the weight's
// irrelevance at the domain boundary.
func weightAt(k int, alpha []float64, maxCell int) (lo, hi int, w float64) {
	lo, hi = k-1, k
	if lo < 0 {
		lo = 0
	}
	if hi > maxCell {
		hi = maxCell
	}
	switch {
	case k <= 0:
		w = 0
	case k >= maxCell+1:
		w = 1
	default:
		w = alpha[k-1]
	}
	return
}

// BicubicLocalInterpolation builds a degree-3 patch whose Bézier control
// grid interpolates every point of the (n+1)x(m+1) grid exactly, with
// tangents from the external local-cubic tangent estimator and twists
// from a bilinear blend of neighboring mixed differences.
func BicubicLocalInterpolation(points [][]nurbs.Point3) (nurbs.Patch, error) {
	n := len(points) - 1
	m := len(points[0]) - 1
	if n < 1 || m < 1 {
		return nurbs.Patch{}, nurbs.InvalidArgf("bicubic local interpolation needs at least a 2x2 grid")
	}
	u, v := curve.AveragedGridParams(points)

	Tu := make([][]nurbs.Point3, n+1)
	for i := range Tu {
		Tu[i] = make([]nurbs.Point3, m+1)
	}
	for j := 0; j <= m; j++ {
		col := make([]nurbs.Point3, n+1)
		for i := 0; i <= n; i++ {
			col[i] = points[i][j]
		}
		t := curve.LocalCubicTangents(col)
		for i := 0; i <= n; i++ {
			Tu[i][j] = t[i]
		}
	}

	Tv := make([][]nurbs.Point3, n+1)
	for i := 0; i <= n; i++ {
		Tv[i] = curve.LocalCubicTangents(points[i])
	}

	alphaU := paramAlphas(u)
	betaV := paramAlphas(v)

	D := make([][]nurbs.Point3, n)
	for k := 0; k < n; k++ {
		D[k] = make([]nurbs.Point3, m)
		for l := 0; l < m; l++ {
			du, dv := u[k+1]-u[k], v[l+1]-v[l]
			mixed := points[k+1][l+1].Sub(points[k+1][l]).Sub(points[k][l+1]).Add(points[k][l])
			D[k][l] = mixed.Scale(1 / (du * dv))
		}
	}

	twist := func(k, l int) nurbs.Point3 {
		lu, hu, au := weightAt(k, alphaU, n-1)
		lv, hv, bv := weightAt(l, betaV, m-1)
		return D[lu][lv].Scale((1 - au) * (1 - bv)).
			Add(D[hu][lv].Scale(au * (1 - bv))).
			Add(D[lu][hv].Scale((1 - au) * bv)).
			Add(D[hu][hv].Scale(au * bv))
	}

	rows, cols := 3*n+1, 3*m+1
	ctrl := make(nurbs.ControlGrid, rows)
	for i := range ctrl {
		ctrl[i] = make([]nurbs.Weighted4, cols)
	}

	for k := 0; k < n; k++ {
		for l := 0; l < m; l++ {
			du, dv := u[k+1]-u[k], v[l+1]-v[l]
			p00, p10, p01, p11 := points[k][l], points[k+1][l], points[k][l+1], points[k+1][l+1]
			tu00, tu10, tu01, tu11 := Tu[k][l].Scale(du), Tu[k+1][l].Scale(du), Tu[k][l+1].Scale(du), Tu[k+1][l+1].Scale(du)
			tv00, tv10, tv01, tv11 := Tv[k][l].Scale(dv), Tv[k+1][l].Scale(dv), Tv[k][l+1].Scale(dv), Tv[k+1][l+1].Scale(dv)
			w00, w10, w01, w11 := twist(k, l).Scale(du*dv), twist(k+1, l).Scale(du*dv), twist(k, l+1).Scale(du*dv), twist(k+1, l+1).Scale(du*dv)

			b := [4][4]nurbs.Point3{}
			b[0][0] = p00
			b[3][0] = p10
			b[0][3] = p01
			b[3][3] = p11
			b[1][0] = p00.Add(tu00.Scale(1.0 / 3))
			b[2][0] = p10.Sub(tu10.Scale(1.0 / 3))
			b[1][3] = p01.Add(tu01.Scale(1.0 / 3))
			b[2][3] = p11.Sub(tu11.Scale(1.0 / 3))
			b[0][1] = p00.Add(tv00.Scale(1.0 / 3))
			b[0][2] = p01.Sub(tv01.Scale(1.0 / 3))
			b[3][1] = p10.Add(tv10.Scale(1.0 / 3))
			b[3][2] = p11.Sub(tv11.Scale(1.0 / 3))
			b[1][1] = p00.Add(tu00.Scale(1.0 / 3)).Add(tv00.Scale(1.0 / 3)).Add(w00.Scale(1.0 / 9))
			b[2][1] = p10.Sub(tu10.Scale(1.0 / 3)).Add(tv10.Scale(1.0 / 3)).Sub(w10.Scale(1.0 / 9))
			b[1][2] = p01.Add(tu01.Scale(1.0 / 3)).Sub(tv01.Scale(1.0 / 3)).Sub(w01.Scale(1.0 / 9))
			b[2][2] = p11.Sub(tu11.Scale(1.0 / 3)).Sub(tv11.Scale(1.0 / 3)).Add(w11.Scale(1.0 / 9))

			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					ctrl[3*k+i][3*l+j] = nurbs.Lift(b[i][j], 1)
				}
			}
		}
	}

	knotU := bicubicKnots(u[1:n], u[0], u[n])
	knotV := bicubicKnots(v[1:m], v[0], v[m])

	return nurbs.Patch{
		DegreeU: 3,
		DegreeV: 3,
		KnotU:   nurbs.KnotVector(knotU),
		KnotV:   nurbs.KnotVector(knotV),
		Control: ctrl,
	}, nil
}
