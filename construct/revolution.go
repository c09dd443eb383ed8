// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package construct

import (
	"math"

	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/internal/curve"
	"github.com/cpmech/gonurbs/internal/geom3"
)

// Revolution sweeps the generatrix curve (degreeV,knotV,genCtrl) by total
// angle theta about the line (origin,axis), producing a degreeU=2 patch
// whose U direction is the rotation and whose V direction is the
// generatrix. It fails with GeometricFailure if the per-row tangent rays
// used to locate an intermediate control point never intersect.
func Revolution(origin, axis nurbs.Point3, theta float64, degreeV int, knotV []float64, genCtrl []nurbs.Weighted4) (nurbs.Patch, error) {
	narcs := int(math.Ceil(2 * theta / math.Pi))
	if narcs < 1 {
		narcs = 1
	}
	if narcs > 4 {
		narcs = 4
	}
	dtheta := theta / float64(narcs)
	w1 := math.Cos(dtheta / 2)
	axisN := axis.Normalize()
	knotU := nurbs.KnotVector(curve.ArcKnots(narcs))

	ctrl := make(nurbs.ControlGrid, len(genCtrl))
	for row, g := range genCtrl {
		gp, wg := g.Point(), g.Weight()
		O := geom3.PointToLine(origin, axisN, gp)
		radial := gp.Sub(O)
		r := radial.Length()
		if r < nurbs.Epsilon {
			return nurbs.Patch{}, nurbs.GeometricFailuref("surface of revolution: generatrix control point %d lies on the axis", row)
		}
		X := radial.Normalize()
		Y := axisN.Cross(X)

		pointAt := func(angle float64) nurbs.Point3 {
			return O.Add(X.Scale(r * math.Cos(angle))).Add(Y.Scale(r * math.Sin(angle)))
		}
		tangentAt := func(angle float64) nurbs.Point3 {
			return X.Scale(-math.Sin(angle)).Add(Y.Scale(math.Cos(angle)))
		}

		out := make([]nurbs.Weighted4, 2*narcs+1)
		angle := 0.0
		P0 := pointAt(angle)
		T0 := tangentAt(angle)
		out[0] = nurbs.Lift(P0, wg)
		idx := 0
		for i := 1; i <= narcs; i++ {
			angle += dtheta
			P2 := pointAt(angle)
			T2 := tangentAt(angle)
			_, _, mid, kind := geom3.RayRayIntersect(P0, T0, P2, T2)
			if kind == geom3.IntersectParallel {
				return nurbs.Patch{}, nurbs.GeometricFailuref("surface of revolution: tangent rays do not intersect at row %d, arc %d", row, i)
			}
			out[idx+1] = nurbs.Lift(mid, wg*w1)
			out[idx+2] = nurbs.Lift(P2, wg)
			idx += 2
			P0, T0 = P2, T2
		}
		ctrl[row] = out
	}

	return nurbs.Patch{
		DegreeU: 2,
		DegreeV: degreeV,
		KnotU:   knotU,
		KnotV:   nurbs.KnotVector(knotV),
		Control: ctrl.Transpose(),
	}, nil
}
