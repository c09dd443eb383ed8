// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package construct

import (
	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/internal/curve"
)

// axialKnots is the clamped quadratic knot vector [0,0,0,1,1,1] used for
// the three axial control rows of a cylinder.
var axialKnots = nurbs.KnotVector{0, 0, 0, 1, 1, 1}

// Cylinder builds a cylindrical surface over the circular arc from
// startAngle to endAngle, of the given radius, in the plane spanned by the
// orthonormal x,y axes through origin, extruded by height along their
// cross product. V is the circumferential
// direction (the arc), U is the axial direction.
func Cylinder(origin, x, y nurbs.Point3, radius, startAngle, endAngle, height float64) nurbs.Patch {
	axis := x.Cross(y).Normalize()
	_, knotV, arcCtrl := curve.CircularArc(origin, x, y, radius, startAngle, endAngle)

	ctrl := make(nurbs.ControlGrid, 3)
	offsets := []float64{0, 0.5, 1}
	for i, f := range offsets {
		shift := axis.Scale(f * height)
		row := make([]nurbs.Weighted4, len(arcCtrl))
		for j, cp := range arcCtrl {
			moved := cp.Point().Add(shift)
			row[j] = nurbs.Lift(moved, cp.Weight())
		}
		ctrl[i] = row
	}

	return nurbs.Patch{
		DegreeU: 2,
		DegreeV: 2,
		KnotU:   axialKnots.Clone(),
		KnotV:   nurbs.KnotVector(knotV),
		Control: ctrl,
	}
}
