// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

// Edge names one of the four boundary curves of a patch.
type Edge int

const (
	EdgeUMin Edge = iota // U == knotU[0], a curve in V
	EdgeUMax             // U == knotU[last], a curve in V
	EdgeVMin             // V == knotV[0], a curve in U
	EdgeVMax             // V == knotV[last], a curve in U
)

// BoundaryCurve extracts one boundary of p as a homogeneous control
// polygon together with the degree and knot vector of its running
// direction.
func BoundaryCurve(p Patch, e Edge) (degree int, knots KnotVector, ctrl []Weighted4) {
	n := p.Control.Rows()
	m := p.Control.Cols()
	switch e {
	case EdgeUMin:
		ctrl = make([]Weighted4, m)
		copy(ctrl, p.Control[0])
		return p.DegreeV, p.KnotV.Clone(), ctrl
	case EdgeUMax:
		ctrl = make([]Weighted4, m)
		copy(ctrl, p.Control[n-1])
		return p.DegreeV, p.KnotV.Clone(), ctrl
	case EdgeVMin:
		ctrl = make([]Weighted4, n)
		for i := 0; i < n; i++ {
			ctrl[i] = p.Control[i][0]
		}
		return p.DegreeU, p.KnotU.Clone(), ctrl
	case EdgeVMax:
		ctrl = make([]Weighted4, n)
		for i := 0; i < n; i++ {
			ctrl[i] = p.Control[i][m-1]
		}
		return p.DegreeU, p.KnotU.Clone(), ctrl
	}
	return 0, nil, nil
}
