// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package project

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/construct"
)

// quarterCylinder is a quarter-turn cylindrical patch of radius 1 and
// height 2, open along its axial direction.
func quarterCylinder() nurbs.Patch {
	return construct.Cylinder(nurbs.Point3{}, nurbs.Point3{X: 1}, nurbs.Point3{Y: 1}, 1, 0, math.Pi/2, 2)
}

func Test_project01_closest_point_on_cylinder(tst *testing.T) {

	chk.PrintTitle("project01")

	p := quarterCylinder()
	q := nurbs.Point3{X: 0, Y: 1, Z: 2}
	uv, err := ClosestPoint(p, q, chk.Verbose)
	if err != nil {
		if _, isErr := nurbs.KindOf(err); !isErr || func() bool { k, _ := nurbs.KindOf(err); return k != nurbs.NonConvergence }() {
			tst.Fatalf("ClosestPoint failed unexpectedly: %v", err)
		}
	}
	chk.Scalar(tst, "u", 1e-4, uv.U, 1)
	chk.Scalar(tst, "v", 1e-4, uv.V, 1)
}

func Test_project02_tangent_solver_degenerate(tst *testing.T) {

	chk.PrintTitle("project02")

	p := construct.Bilinear(
		nurbs.Point3{X: 0, Y: 0},
		nurbs.Point3{X: 1, Y: 0},
		nurbs.Point3{X: 1, Y: 0},
		nurbs.Point3{X: 0, Y: 0},
	)
	_, _, ok := TangentComponents(p, nurbs.UV{U: 0, V: 0}, nurbs.Point3{X: 1, Y: 1})
	if ok {
		tst.Fatal("expected degenerate (parallel Su,Sv) patch to report ok=false")
	}
}

func Test_project03_tangent_solver_identity(tst *testing.T) {

	chk.PrintTitle("project03")

	p := construct.Bilinear(
		nurbs.Point3{X: 0, Y: 0},
		nurbs.Point3{X: 1, Y: 0},
		nurbs.Point3{X: 1, Y: 1},
		nurbs.Point3{X: 0, Y: 1},
	)
	up, vp, ok := TangentComponents(p, nurbs.UV{U: 0.5, V: 0.5}, nurbs.Point3{X: 1, Y: 0})
	if !ok {
		tst.Fatal("expected a well-posed tangent solve on a non-degenerate bilinear patch")
	}
	chk.Scalar(tst, "u'", 1e-9, up, 1)
	chk.Scalar(tst, "v'", 1e-9, vp, 0)
}
