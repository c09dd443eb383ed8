// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package basis

import (
	"github.com/cpmech/gosl/chk"

	nurbs "github.com/cpmech/gonurbs"
)

// EvalHomogeneous evaluates the homogeneous tensor-product surface at (u,v).
func EvalHomogeneous(degreeU, degreeV int, knotU, knotV []float64, grid nurbs.ControlGrid, u, v float64) nurbs.Weighted4 {
	n := grid.Rows() - 1
	m := grid.Cols() - 1
	uspan := FindSpan(n, degreeU, knotU, u)
	vspan := FindSpan(m, degreeV, knotV, v)
	Nu := BasisFuns(uspan, degreeU, knotU, u)
	Nv := BasisFuns(vspan, degreeV, knotV, v)

	temp := make([]nurbs.Weighted4, degreeV+1)
	for l := 0; l <= degreeV; l++ {
		var acc nurbs.Weighted4
		for k := 0; k <= degreeU; k++ {
			acc = acc.Add(grid[uspan-degreeU+k][vspan-degreeV+l].Scale(Nu[k]))
		}
		temp[l] = acc
	}
	var out nurbs.Weighted4
	for l := 0; l <= degreeV; l++ {
		out = out.Add(temp[l].Scale(Nv[l]))
	}
	return out
}

// DerivativesHomogeneous computes the homogeneous derivative grid SKL[k][l]
// for k+l<=d (The NURBS Book, Algorithm A3.6, generalized to Weighted4
// control data). Entries with k+l>d are left at the zero value and must
// not be read by callers.
func DerivativesHomogeneous(degreeU, degreeV int, knotU, knotV []float64, grid nurbs.ControlGrid, d int, u, v float64) [][]nurbs.Weighted4 {
	n := grid.Rows() - 1
	m := grid.Cols() - 1
	if d < 0 {
		chk.Panic("derivative order must be >= 0, got %d", d)
	}
	du := d
	if degreeU < du {
		du = degreeU
	}
	dv := d
	if degreeV < dv {
		dv = degreeV
	}

	uspan := FindSpan(n, degreeU, knotU, u)
	vspan := FindSpan(m, degreeV, knotV, v)
	Nu := DersBasisFuns(uspan, degreeU, knotU, u, du)
	Nv := DersBasisFuns(vspan, degreeV, knotV, v, dv)

	SKL := make([][]nurbs.Weighted4, d+1)
	for k := range SKL {
		SKL[k] = make([]nurbs.Weighted4, d+1)
	}

	temp := make([]nurbs.Weighted4, degreeV+1)
	for k := 0; k <= du; k++ {
		for s := 0; s <= degreeV; s++ {
			var acc nurbs.Weighted4
			for r := 0; r <= degreeU; r++ {
				acc = acc.Add(grid[uspan-degreeU+r][vspan-degreeV+s].Scale(Nu[k][r]))
			}
			temp[s] = acc
		}
		dd := d - k
		if dv < dd {
			dd = dv
		}
		for l := 0; l <= dd; l++ {
			var acc nurbs.Weighted4
			for s := 0; s <= degreeV; s++ {
				acc = acc.Add(temp[s].Scale(Nv[l][s]))
			}
			SKL[k][l] = acc
		}
	}
	return SKL
}
