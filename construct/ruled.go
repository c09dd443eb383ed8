// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package construct

import (
	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/internal/curve"
)

// ruledKnotU is the clamped linear knot vector [0,0,1,1] shared by every
// ruled surface's U direction.
var ruledKnotU = nurbs.KnotVector{0, 0, 1, 1}

// Ruled builds the ruled surface between two curves of possibly different
// degree and knot vectors, requiring matching domain endpoints. It elevates
// the lower-degree curve to match the higher, brings both to a common knot
// vector by refinement, and places the results as the two rows of a linear
// U-direction patch.
func Ruled(degree0 int, knotV0 []float64, ctrl0 []nurbs.Weighted4,
	degree1 int, knotV1 []float64, ctrl1 []nurbs.Weighted4) (nurbs.Patch, error) {

	if knotV0[0] != knotV1[0] || knotV0[len(knotV0)-1] != knotV1[len(knotV1)-1] {
		return nurbs.Patch{}, nurbs.GeometricFailuref("ruled surface: mismatched curve domains [%g,%g] vs [%g,%g]",
			knotV0[0], knotV0[len(knotV0)-1], knotV1[0], knotV1[len(knotV1)-1])
	}

	if degree0 < degree1 {
		degree0, knotV0, ctrl0 = curve.ElevateDegree(degree0, knotV0, ctrl0, degree1-degree0)
	} else if degree1 < degree0 {
		degree1, knotV1, ctrl1 = curve.ElevateDegree(degree1, knotV1, ctrl1, degree0-degree1)
	}
	degree := degree0

	missingFrom0, missingFrom1 := curve.InsertedKnotElements(knotV0, knotV1)
	if len(missingFrom0) > 0 {
		knotV0, ctrl0 = curve.RefineKnots(degree, knotV0, ctrl0, missingFrom0)
	}
	if len(missingFrom1) > 0 {
		knotV1, ctrl1 = curve.RefineKnots(degree, knotV1, ctrl1, missingFrom1)
	}

	return nurbs.Patch{
		DegreeU: 1,
		DegreeV: degree,
		KnotU:   ruledKnotU.Clone(),
		KnotV:   nurbs.KnotVector(knotV0),
		Control: nurbs.ControlGrid{ctrl0, ctrl1},
	}, nil
}
