// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import nurbs "github.com/cpmech/gonurbs"

// LocalCubicTangents estimates a unit tangent direction at every point of
// a polyline from its chord directions (The NURBS Book §9.3.4), used by
// the bicubic local-interpolation constructor to build per-row/per-column
// tangents before assembling twist vectors.
func LocalCubicTangents(points []nurbs.Point3) []nurbs.Point3 {
	n := len(points) - 1
	T := make([]nurbs.Point3, n+1)
	if n < 1 {
		return T
	}
	q := make([]nurbs.Point3, n)
	d := make([]float64, n)
	for k := 0; k < n; k++ {
		delta := points[k+1].Sub(points[k])
		d[k] = delta.Length()
		if d[k] > nurbs.Epsilon {
			q[k] = delta.Scale(1 / d[k])
		}
	}
	if n == 1 {
		T[0], T[1] = q[0], q[0]
		return T
	}
	for k := 1; k < n; k++ {
		alpha := d[k-1] / (d[k-1] + d[k])
		T[k] = q[k-1].Scale(1 - alpha).Add(q[k].Scale(alpha)).Normalize()
	}
	T[0] = q[0].Scale(2).Sub(T[1]).Normalize()
	T[n] = q[n-1].Scale(2).Sub(T[n-1]).Normalize()
	return T
}

// ChordAlphas returns the α_k = |Δ_{k-1}|/(|Δ_{k-1}|+|Δ_k|) chord-length
// blend weights of a polyline, for k=1..len(points)-2. The bicubic
// local-interpolation constructor uses its parameter-space analogue
// (construct's paramAlphas), not this function.
func ChordAlphas(points []nurbs.Point3) []float64 {
	n := len(points) - 1
	if n < 2 {
		return nil
	}
	d := make([]float64, n)
	for k := 0; k < n; k++ {
		d[k] = points[k+1].Sub(points[k]).Length()
	}
	alphas := make([]float64, n-1)
	for k := 1; k < n; k++ {
		alphas[k-1] = d[k-1] / (d[k-1] + d[k])
	}
	return alphas
}
