// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func unitSquareBiquadratic() Patch {
	knots := KnotVector{0, 0, 0, 1, 1, 1}
	grid := make(ControlGrid, 3)
	for i := 0; i < 3; i++ {
		grid[i] = make([]Weighted4, 3)
		for j := 0; j < 3; j++ {
			w := 1.0
			if i == 1 && j == 1 {
				w = 2.0
			}
			grid[i][j] = Lift(Point3{X: float64(i) / 2, Y: float64(j) / 2}, w)
		}
	}
	return Patch{DegreeU: 2, DegreeV: 2, KnotU: knots, KnotV: knots.Clone(), Control: grid}
}

func Test_patch01(tst *testing.T) {

	chk.PrintTitle("patch01")

	p := unitSquareBiquadratic()
	umin, umax := p.DomainU()
	chk.Scalar(tst, "umin", 1e-17, umin, 0)
	chk.Scalar(tst, "umax", 1e-17, umax, 1)

	if err := ValidatePatch(p); err != nil {
		tst.Fatalf("unit-square patch must validate: %v", err)
	}
}

func Test_patch02_reverse_involution(tst *testing.T) {

	chk.PrintTitle("patch02")

	p := unitSquareBiquadratic()
	back := ReverseU(ReverseU(p))
	for i := range p.Control {
		for j := range p.Control[i] {
			if !p.Control[i][j].Drop().Equals(back.Control[i][j].Drop()) {
				tst.Fatalf("ReverseU is not an involution at (%d,%d)", i, j)
			}
		}
	}
	back = ReverseV(ReverseV(p))
	for i := range p.Control {
		for j := range p.Control[i] {
			if !p.Control[i][j].Drop().Equals(back.Control[i][j].Drop()) {
				tst.Fatalf("ReverseV is not an involution at (%d,%d)", i, j)
			}
		}
	}
}

func Test_patch04_boundary_curve(tst *testing.T) {

	chk.PrintTitle("patch04")

	p := unitSquareBiquadratic()
	degree, knots, ctrl := BoundaryCurve(p, EdgeUMin)
	chk.Ints(tst, "degree", []int{degree}, []int{p.DegreeV})
	chk.Ints(tst, "len(knots)", []int{len(knots)}, []int{len(p.KnotV)})
	for j, q := range ctrl {
		if !q.Drop().Equals(p.Control[0][j].Drop()) {
			tst.Fatalf("EdgeUMin control point %d mismatch: got %v want %v", j, q, p.Control[0][j])
		}
	}

	degree, knots, ctrl = BoundaryCurve(p, EdgeVMax)
	chk.Ints(tst, "degree", []int{degree}, []int{p.DegreeU})
	chk.Ints(tst, "len(knots)", []int{len(knots)}, []int{len(p.KnotU)})
	m := p.Control.Cols()
	for i, q := range ctrl {
		if !q.Drop().Equals(p.Control[i][m-1].Drop()) {
			tst.Fatalf("EdgeVMax control point %d mismatch: got %v want %v", i, q, p.Control[i][m-1])
		}
	}
}

func Test_patch03_lift_drop(tst *testing.T) {

	chk.PrintTitle("patch03")

	pts := [][]Point3{
		{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}},
		{{X: 0, Y: 1, Z: 0}, {X: 1, Y: 1, Z: 0}},
	}
	weights := [][]float64{{1, 2}, {3, 0.5}}
	grid := ToHomogeneous(pts, weights)
	back := ToEuclidean(grid)
	for i := range pts {
		for j := range pts[i] {
			if !pts[i][j].Equals(back[i][j]) {
				tst.Fatalf("lift/drop did not commute at (%d,%d)", i, j)
			}
		}
	}
}
