// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom3 implements the 3D geometry collaborators the surface of
// revolution constructor consumes: point-to-line projection and ray-ray
// intersection.
package geom3

import (
	nurbs "github.com/cpmech/gonurbs"
)

// PointToLine projects p onto the infinite line through origin with
// direction axis (axis need not be unit length) and returns the foot of
// the perpendicular.
func PointToLine(origin, axis, p nurbs.Point3) nurbs.Point3 {
	dir := axis.Normalize()
	t := p.Sub(origin).Dot(dir)
	return origin.Add(dir.Scale(t))
}

// IntersectKind classifies the result of RayRayIntersect.
type IntersectKind int

const (
	// IntersectPoint: the two lines meet at a single point.
	IntersectPoint IntersectKind = iota
	// IntersectParallel: the directions are parallel (no unique intersection).
	IntersectParallel
	// IntersectSkew: the lines do not meet (skew in 3D); Point is the
	// midpoint of their closest approach.
	IntersectSkew
)

// RayRayIntersect finds the parameters t0,t1 such that P0+t0*d0 and
// P1+t1*d1 are as close as possible (coincident, when the rays truly
// intersect), where d0,d1 are T0,T1 normalized to unit length, returning
// the midpoint of the two closest points and a classification of the result.
func RayRayIntersect(P0, T0, P1, T1 nurbs.Point3) (t0, t1 float64, point nurbs.Point3, kind IntersectKind) {
	d0 := T0.Normalize()
	d1 := T1.Normalize()
	cross := d0.Cross(d1)
	denom := cross.Dot(cross)
	if denom < nurbs.Epsilon {
		return 0, 0, nurbs.Point3{}, IntersectParallel
	}
	w := P1.Sub(P0)
	// standard closest-point-between-two-lines solution
	a := d0.Dot(d0)
	b := d0.Dot(d1)
	c := d1.Dot(d1)
	d := d0.Dot(w)
	e := d1.Dot(w)
	det := a*c - b*b
	if det < nurbs.Epsilon && det > -nurbs.Epsilon {
		return 0, 0, nurbs.Point3{}, IntersectParallel
	}
	t0 = (c*d - b*e) / det
	t1 = (b*d - a*e) / det
	q0 := P0.Add(d0.Scale(t0))
	q1 := P1.Add(d1.Scale(t1))
	mid := q0.Add(q1).Scale(0.5)
	if q0.Distance(q1) < nurbs.Delta {
		return t0, t1, mid, IntersectPoint
	}
	return t0, t1, mid, IntersectSkew
}
