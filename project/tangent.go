// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package project

import (
	"math"

	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/eval"
)

// TangentComponents decomposes the 3D tangent direction t at (u,v) into its
// parametric components (u',v') satisfying u'*Su + v'*Sv = t in the
// least-squares sense. It reports ok==false if
// Su and Sv are parallel.
func TangentComponents(p nurbs.Patch, uv nurbs.UV, t nurbs.Point3) (up, vp float64, ok bool) {
	if err := nurbs.ValidatePatch(p); err != nil {
		return 0, 0, false
	}
	D, err := eval.Derivatives(p, 1, uv)
	if err != nil {
		return 0, 0, false
	}
	Su, Sv := D[1][0], D[0][1]

	a00 := Su.Dot(Su)
	a01 := Su.Dot(Sv)
	a11 := Sv.Dot(Sv)
	det := a00*a11 - a01*a01
	if math.Abs(det) < nurbs.Epsilon {
		return 0, 0, false
	}
	b0 := Su.Dot(t)
	b1 := Sv.Dot(t)
	up = (b0*a11 - b1*a01) / det
	vp = (a00*b1 - a01*b0) / det
	return up, vp, true
}
