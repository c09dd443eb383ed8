// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"

	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/internal/geom3"
)

// ArcKnots builds the clamped quadratic knot vector for a circular arc
// split into narcs segments: degree 2, interior knots of multiplicity 2 at
// i/narcs for i=1..narcs-1.
func ArcKnots(narcs int) []float64 {
	knots := make([]float64, 0, 2*narcs+3)
	for i := 0; i < 3; i++ {
		knots = append(knots, 0)
	}
	for i := 1; i < narcs; i++ {
		v := float64(i) / float64(narcs)
		knots = append(knots, v, v)
	}
	for i := 0; i < 3; i++ {
		knots = append(knots, 1)
	}
	return knots
}

// CircularArc builds a degree-2 rational B-spline representation of the
// planar arc of the given radius, centered at center, spanning
// [startAngle,endAngle] measured from xAxis towards yAxis (xAxis,yAxis
// must be orthonormal). Implements The NURBS Book Algorithm A7.1,
// generalized to more than one quadrant via ArcKnots.
func CircularArc(center, xAxis, yAxis nurbs.Point3, radius, startAngle, endAngle float64) (degree int, knots []float64, ctrl []nurbs.Weighted4) {
	theta := endAngle - startAngle
	narcs := int(math.Ceil(theta / (math.Pi / 2)))
	if narcs < 1 {
		narcs = 1
	}
	dtheta := theta / float64(narcs)
	w1 := math.Cos(dtheta / 2)

	n := 2 * narcs
	ctrl = make([]nurbs.Weighted4, n+1)

	pointAt := func(angle float64) nurbs.Point3 {
		return center.Add(xAxis.Scale(radius * math.Cos(angle))).Add(yAxis.Scale(radius * math.Sin(angle)))
	}
	tangentAt := func(angle float64) nurbs.Point3 {
		return xAxis.Scale(-math.Sin(angle)).Add(yAxis.Scale(math.Cos(angle)))
	}

	angle := startAngle
	P0 := pointAt(angle)
	T0 := tangentAt(angle)
	ctrl[0] = nurbs.Lift(P0, 1)
	idx := 0
	for i := 1; i <= narcs; i++ {
		angle += dtheta
		P2 := pointAt(angle)
		T2 := tangentAt(angle)
		_, _, mid, kind := geom3.RayRayIntersect(P0, T0, P2, T2)
		P1 := mid
		if kind == geom3.IntersectParallel {
			P1 = P0.Add(P2).Scale(0.5)
		}
		ctrl[idx+1] = nurbs.Lift(P1, w1)
		ctrl[idx+2] = nurbs.Lift(P2, 1)
		idx += 2
		P0, T0 = P2, T2
	}
	return 2, ArcKnots(narcs), ctrl
}
