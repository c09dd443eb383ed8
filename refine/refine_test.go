// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refine

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/eval"
)

// cubicStripPatch is a degree-3-by-1 patch with a single interior U
// breakpoint, used to exercise knot insertion saturation at the patch level.
func cubicStripPatch() nurbs.Patch {
	knotU := nurbs.KnotVector{0, 0, 0, 0, 0.5, 0.5, 1, 1, 1, 1}
	knotV := nurbs.KnotVector{0, 0, 1, 1}
	rows := make(nurbs.ControlGrid, 6)
	for i := 0; i < 6; i++ {
		rows[i] = []nurbs.Weighted4{
			nurbs.Lift(nurbs.Point3{X: float64(i), Y: 0}, 1),
			nurbs.Lift(nurbs.Point3{X: float64(i), Y: 1}, 1),
		}
	}
	return nurbs.Patch{DegreeU: 3, DegreeV: 1, KnotU: knotU, KnotV: knotV, Control: rows}
}

func Test_refine01_insert_knot_saturation(tst *testing.T) {

	chk.PrintTitle("refine01")

	p := cubicStripPatch()
	out, inserted, err := InsertKnot(p, 0.5, 1, nurbs.DirU)
	if err != nil {
		tst.Fatalf("InsertKnot failed: %v", err)
	}
	chk.Ints(tst, "inserted", []int{inserted}, []int{1})
	chk.Ints(tst, "len(knotU)", []int{len(out.KnotU)}, []int{len(p.KnotU) + 1})
	chk.Ints(tst, "rows", []int{out.Control.Rows()}, []int{p.Control.Rows() + 1})

	out2, inserted2, err := InsertKnot(out, 0.5, 1, nurbs.DirU)
	if err != nil {
		tst.Fatalf("InsertKnot (saturated) failed: %v", err)
	}
	chk.Ints(tst, "saturated inserted", []int{inserted2}, []int{0})
	chk.Ints(tst, "unchanged rows", []int{out2.Control.Rows()}, []int{out.Control.Rows()})
}

func Test_refine02_elevate_preserves_evaluation(tst *testing.T) {

	chk.PrintTitle("refine02")

	p := cubicStripPatch()
	elevated, err := ElevateDegree(p, 1, nurbs.DirU)
	if err != nil {
		tst.Fatalf("ElevateDegree failed: %v", err)
	}
	for _, u := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
		before, err := eval.Point(p, nurbs.UV{U: u, V: 0.5})
		if err != nil {
			tst.Fatalf("eval before elevation failed: %v", err)
		}
		after, err := eval.Point(elevated, nurbs.UV{U: u, V: 0.5})
		if err != nil {
			tst.Fatalf("eval after elevation failed: %v", err)
		}
		if !before.Equals(after) {
			tst.Fatalf("degree elevation changed the surface at u=%g: %v vs %v", u, before, after)
		}
	}
}

func Test_refine03_insert_then_remove_round_trip(tst *testing.T) {

	chk.PrintTitle("refine03")

	p := cubicStripPatch()
	afterInsert, _, err := InsertKnot(p, 0.25, 1, nurbs.DirU)
	if err != nil {
		tst.Fatalf("InsertKnot failed: %v", err)
	}
	back, removed, err := RemoveKnot(afterInsert, 0.25, 1, nurbs.DirU)
	if err != nil {
		tst.Fatalf("RemoveKnot failed: %v", err)
	}
	chk.Ints(tst, "removed", []int{removed}, []int{1})
	chk.Ints(tst, "len(knotU)", []int{len(back.KnotU)}, []int{len(p.KnotU)})
	chk.Ints(tst, "rows", []int{back.Control.Rows()}, []int{p.Control.Rows()})
	for _, u := range []float64{0, 0.1, 0.5, 0.9, 1.0} {
		before, err := eval.Point(p, nurbs.UV{U: u, V: 0.5})
		if err != nil {
			tst.Fatalf("eval before round trip failed: %v", err)
		}
		after, err := eval.Point(back, nurbs.UV{U: u, V: 0.5})
		if err != nil {
			tst.Fatalf("eval after round trip failed: %v", err)
		}
		if !before.Equals(after) {
			tst.Fatalf("insert-then-remove changed the surface at u=%g: %v vs %v", u, before, after)
		}
	}
}

func Test_refine04_decompose_matches_spans(tst *testing.T) {

	chk.PrintTitle("refine04")

	p := cubicStripPatch()
	grid, err := Decompose(p)
	if err != nil {
		tst.Fatalf("Decompose failed: %v", err)
	}
	chk.Ints(tst, "nU spans", []int{len(grid)}, []int{2})
	for _, row := range grid {
		chk.Ints(tst, "nV spans", []int{len(row)}, []int{1})
		for _, cell := range row {
			chk.Ints(tst, "cell rows", []int{len(cell.Control)}, []int{p.DegreeU + 1})
			chk.Ints(tst, "cell cols", []int{len(cell.Control[0])}, []int{p.DegreeV + 1})
		}
	}
}
