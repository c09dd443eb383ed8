// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom3

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	nurbs "github.com/cpmech/gonurbs"
)

func Test_geom01_point_to_line(tst *testing.T) {

	chk.PrintTitle("geom01")

	foot := PointToLine(nurbs.Point3{}, nurbs.Point3{Z: 1}, nurbs.Point3{X: 1, Y: 1, Z: 5})
	chk.Scalar(tst, "x", 1e-14, foot.X, 0)
	chk.Scalar(tst, "y", 1e-14, foot.Y, 0)
	chk.Scalar(tst, "z", 1e-14, foot.Z, 5)
}

func Test_geom02_ray_ray_intersect_point(tst *testing.T) {

	chk.PrintTitle("geom02")

	_, _, pt, kind := RayRayIntersect(
		nurbs.Point3{X: -1}, nurbs.Point3{X: 1},
		nurbs.Point3{Y: -1}, nurbs.Point3{Y: 1},
	)
	if kind != IntersectPoint {
		tst.Fatalf("expected the two rays to meet at the origin, got kind=%v", kind)
	}
	chk.Scalar(tst, "x", 1e-9, pt.X, 0)
	chk.Scalar(tst, "y", 1e-9, pt.Y, 0)
}

func Test_geom03_ray_ray_parallel(tst *testing.T) {

	chk.PrintTitle("geom03")

	_, _, _, kind := RayRayIntersect(
		nurbs.Point3{}, nurbs.Point3{X: 1},
		nurbs.Point3{Y: 1}, nurbs.Point3{X: 1},
	)
	if kind != IntersectParallel {
		tst.Fatalf("expected parallel rays to be classified as IntersectParallel, got %v", kind)
	}
}
