// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

// Weighted4 is a homogeneous coordinate (X,Y,Z,W).
type Weighted4 struct {
	X, Y, Z, W float64
}

// Lift returns the homogeneous lift of p with weight w: (w*p, w). w must be > 0.
func Lift(p Point3, w float64) Weighted4 {
	return Weighted4{p.X * w, p.Y * w, p.Z * w, w}
}

// Drop projects q back to Euclidean space: (X/W, Y/W, Z/W). If W is (near)
// zero the unprojected (X,Y,Z) form is returned instead.
func (q Weighted4) Drop() Point3 {
	if q.W < Epsilon && q.W > -Epsilon {
		return Point3{q.X, q.Y, q.Z}
	}
	return Point3{q.X / q.W, q.Y / q.W, q.Z / q.W}
}

// Point drops the point part, discarding the weight.
func (q Weighted4) Point() Point3 {
	return q.Drop()
}

// Weight returns the homogeneous weight component.
func (q Weighted4) Weight() float64 {
	return q.W
}

// Add returns q+r, componentwise (used on homogeneous derivative ladders).
func (q Weighted4) Add(r Weighted4) Weighted4 {
	return Weighted4{q.X + r.X, q.Y + r.Y, q.Z + r.Z, q.W + r.W}
}

// Sub returns q-r, componentwise.
func (q Weighted4) Sub(r Weighted4) Weighted4 {
	return Weighted4{q.X - r.X, q.Y - r.Y, q.Z - r.Z, q.W - r.W}
}

// Scale returns q scaled by s, componentwise.
func (q Weighted4) Scale(s float64) Weighted4 {
	return Weighted4{q.X * s, q.Y * s, q.Z * s, q.W * s}
}
