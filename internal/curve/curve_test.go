// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	nurbs "github.com/cpmech/gonurbs"
)

func cubicBezierLine() (degree int, knots []float64, ctrl []nurbs.Weighted4) {
	knots = []float64{0, 0, 0, 0, 1, 1, 1, 1}
	ctrl = []nurbs.Weighted4{
		nurbs.Lift(nurbs.Point3{X: 0}, 1),
		nurbs.Lift(nurbs.Point3{X: 1}, 1),
		nurbs.Lift(nurbs.Point3{X: 2}, 1),
		nurbs.Lift(nurbs.Point3{X: 3}, 1),
	}
	return 3, knots, ctrl
}

func Test_curve01_insert_saturation(tst *testing.T) {

	chk.PrintTitle("curve01")

	degree, knots, ctrl := cubicBezierLine()
	k1, c1, n1 := InsertKnot(degree, knots, ctrl, 0.5, 1)
	chk.Ints(tst, "inserted", []int{n1}, []int{1})
	chk.Ints(tst, "len(knots)", []int{len(k1)}, []int{len(knots) + 1})
	chk.Ints(tst, "len(ctrl)", []int{len(c1)}, []int{len(ctrl) + 1})

	k2, c2, n2 := InsertKnot(degree, k1, c1, 0.5, degree)
	chk.Ints(tst, "saturated inserted", []int{n2}, []int{degree - 1})
	_ = k2
	_ = c2
}

func Test_curve02_insert_then_remove(tst *testing.T) {

	chk.PrintTitle("curve02")

	degree, knots, ctrl := cubicBezierLine()
	k1, c1, inserted := InsertKnot(degree, knots, ctrl, 0.5, 2)
	k2, c2, removed := RemoveKnot(degree, k1, c1, 0.5, inserted, 1e-9)
	chk.Ints(tst, "removed", []int{removed}, []int{inserted})
	chk.Ints(tst, "knots restored", []int{len(k2)}, []int{len(knots)})
	for i := range c2 {
		if !c2[i].Drop().Equals(ctrl[i].Drop()) {
			tst.Fatalf("control point %d not restored: got %v want %v", i, c2[i], ctrl[i])
		}
	}
}

func Test_curve03_bezier_decompose_spans(tst *testing.T) {

	chk.PrintTitle("curve03")

	degree := 3
	knots := []float64{0, 0, 0, 0, 0.3, 0.7, 1, 1, 1, 1}
	ctrl := make([]nurbs.Weighted4, 6)
	for i := range ctrl {
		ctrl[i] = nurbs.Lift(nurbs.Point3{X: float64(i)}, 1)
	}
	segs := DecomposeBezier(degree, knots, ctrl)
	chk.Ints(tst, "nspans", []int{len(segs)}, []int{NumSpans(degree, knots)})
	for _, seg := range segs {
		chk.Ints(tst, "seg len", []int{len(seg)}, []int{degree + 1})
	}
}

func Test_curve04_elevate_preserves_endpoints(tst *testing.T) {

	chk.PrintTitle("curve04")

	degree, knots, ctrl := cubicBezierLine()
	nd, nk, nc := ElevateDegree(degree, knots, ctrl, 1)
	chk.Ints(tst, "new degree", []int{nd}, []int{degree + 1})
	if !nc[0].Drop().Equals(ctrl[0].Drop()) {
		tst.Fatal("elevated curve lost its start point")
	}
	if !nc[len(nc)-1].Drop().Equals(ctrl[len(ctrl)-1].Drop()) {
		tst.Fatal("elevated curve lost its end point")
	}
	chk.Ints(tst, "new knot count", []int{len(nk)}, []int{len(nc) + nd + 1})
}

func Test_curve05_elevate_then_reduce(tst *testing.T) {

	chk.PrintTitle("curve05")

	degree, knots, ctrl := cubicBezierLine()
	nd, nk, nc := ElevateDegree(degree, knots, ctrl, 1)
	rd, _, rc, ok := ReduceDegree(nd, nk, nc, 1e-7)
	if !ok {
		tst.Fatal("reduction of an exactly-elevated curve must succeed")
	}
	chk.Ints(tst, "degree restored", []int{rd}, []int{degree})
	for i := range rc {
		if !rc[i].Drop().Equals(ctrl[i].Drop()) {
			tst.Fatalf("control point %d not restored after elevate+reduce: got %v want %v", i, rc[i], ctrl[i])
		}
	}
}

func Test_curve06_chord_length_params(tst *testing.T) {

	chk.PrintTitle("curve06")

	points := []nurbs.Point3{{X: 0}, {X: 1}, {X: 3}}
	params := ChordLengthParams(points)
	chk.Scalar(tst, "params[0]", 1e-14, params[0], 0)
	chk.Scalar(tst, "params[1]", 1e-14, params[1], 1.0/3)
	chk.Scalar(tst, "params[2]", 1e-14, params[2], 1)
}

func Test_curve07_circular_arc_radius(tst *testing.T) {

	chk.PrintTitle("curve07")

	_, _, ctrl := CircularArc(nurbs.Point3{}, nurbs.Point3{X: 1}, nurbs.Point3{Y: 1}, 2.0, 0, 3.14159265358979/2)
	start := ctrl[0].Point()
	end := ctrl[len(ctrl)-1].Point()
	chk.Scalar(tst, "start radius", 1e-9, start.Length(), 2.0)
	chk.Scalar(tst, "end radius", 1e-9, end.Length(), 2.0)
}
