// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package construct implements the surface constructors: bilinear
// patch, cylinder, ruled surface, surface of revolution, global
// interpolation, bicubic local interpolation and least-squares
// approximation. Each one is grounded on the curve- and geometry-level
// collaborators in internal/curve and internal/geom3, the same way the
// refine and project packages are.
package construct

import nurbs "github.com/cpmech/gonurbs"

// clampedCubicKnots is the open-uniform knot vector [0,0,0,0,1,1,1,1]
// shared by Bilinear's two directions.
var clampedCubicKnots = nurbs.KnotVector{0, 0, 0, 0, 1, 1, 1, 1}

// Bilinear builds a bicubic patch whose 4x4 control grid is the bilinear
// blend of the four corners p00,p10,p11,p01 sampled at parameters i/3,j/3,
// with unit weights throughout.
func Bilinear(p00, p10, p11, p01 nurbs.Point3) nurbs.Patch {
	ctrl := make(nurbs.ControlGrid, 4)
	for i := 0; i < 4; i++ {
		s := float64(i) / 3
		ctrl[i] = make([]nurbs.Weighted4, 4)
		for j := 0; j < 4; j++ {
			t := float64(j) / 3
			bottom := p00.Scale(1 - s).Add(p10.Scale(s))
			top := p01.Scale(1 - s).Add(p11.Scale(s))
			pt := bottom.Scale(1 - t).Add(top.Scale(t))
			ctrl[i][j] = nurbs.Lift(pt, 1)
		}
	}
	return nurbs.Patch{
		DegreeU: 3,
		DegreeV: 3,
		KnotU:   clampedCubicKnots.Clone(),
		KnotV:   clampedCubicKnots.Clone(),
		Control: ctrl,
	}
}
