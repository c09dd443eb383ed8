// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import nurbs "github.com/cpmech/gonurbs"

// ChordLengthParams returns the normalized cumulative chord-length
// parameterization of points: params[0]=0, params[n]=1 (The NURBS Book
// §9.2.1), used by the global/local interpolation and least-squares
// approximation constructors.
func ChordLengthParams(points []nurbs.Point3) []float64 {
	n := len(points) - 1
	params := make([]float64, n+1)
	if n < 1 {
		return params
	}
	total := 0.0
	chords := make([]float64, n)
	for k := 0; k < n; k++ {
		chords[k] = points[k+1].Distance(points[k])
		total += chords[k]
	}
	if total < nurbs.Epsilon {
		for k := range params {
			params[k] = float64(k) / float64(n)
		}
		return params
	}
	acc := 0.0
	for k := 1; k <= n; k++ {
		acc += chords[k-1]
		params[k] = acc / total
	}
	return params
}

// AveragedGridParams computes the surface parameterization u_k,v_l for an
// (n+1)x(m+1) grid of points by averaging the per-row/per-column
// chord-length parameterizations over the orthogonal direction.
func AveragedGridParams(points [][]nurbs.Point3) (u, v []float64) {
	n := len(points) - 1
	m := len(points[0]) - 1
	u = make([]float64, n+1)
	for j := 0; j <= m; j++ {
		col := make([]nurbs.Point3, n+1)
		for i := 0; i <= n; i++ {
			col[i] = points[i][j]
		}
		rowParams := ChordLengthParams(col)
		for i := 0; i <= n; i++ {
			u[i] += rowParams[i]
		}
	}
	for i := range u {
		u[i] /= float64(m + 1)
	}
	v = make([]float64, m+1)
	for i := 0; i <= n; i++ {
		rowParams := ChordLengthParams(points[i])
		for j := 0; j <= m; j++ {
			v[j] += rowParams[j]
		}
	}
	for j := range v {
		v[j] /= float64(n + 1)
	}
	u[0], u[n] = 0, 1
	v[0], v[m] = 0, 1
	return
}

// AveragedKnotVector builds the clamped knot vector consistent with the
// averaging technique for interpolation through params at the given degree
// (The NURBS Book, eq. 9.8).
func AveragedKnotVector(degree int, params []float64) []float64 {
	n := len(params) - 1
	knots := make([]float64, n+degree+2)
	for i := 0; i <= degree; i++ {
		knots[i] = params[0]
		knots[len(knots)-1-i] = params[n]
	}
	for j := 1; j <= n-degree; j++ {
		sum := 0.0
		for i := j; i <= j+degree-1; i++ {
			sum += params[i]
		}
		knots[j+degree] = sum / float64(degree)
	}
	return knots
}
