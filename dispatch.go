// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

import "github.com/cpmech/gosl/chk"

// Direction selects which parametric direction a structural operation acts on.
type Direction bool

const (
	DirU Direction = false
	DirV Direction = true
)

// RowOp is a curve-level operation dispatched per row by Dispatch. It
// receives one control polyline together with its degree and knot vector
// and returns the transformed polyline. Every row of a given patch must
// produce the same newDegree and newKnots for a fixed input (degree,knots).
type RowOp func(degree int, knots KnotVector, ctrl []Weighted4) (newDegree int, newKnots KnotVector, newCtrl []Weighted4, err error)

// Dispatch executes op in the given direction by, for V, applying it per
// U-row; for U, transposing the grid, applying it per row, and transposing
// back. The inactive direction's degree and knot vector pass through
// unchanged.
func Dispatch(p Patch, dir Direction, op RowOp) (Patch, error) {
	if dir == DirV {
		return dispatchRows(p, op)
	}
	transposed := Patch{
		DegreeU: p.DegreeV,
		DegreeV: p.DegreeU,
		KnotU:   p.KnotV,
		KnotV:   p.KnotU,
		Control: p.Control.Transpose(),
	}
	out, err := dispatchRows(transposed, op)
	if err != nil {
		return Patch{}, err
	}
	return Patch{
		DegreeU: out.DegreeV,
		DegreeV: out.DegreeU,
		KnotU:   out.KnotV,
		KnotV:   out.KnotU,
		Control: out.Control.Transpose(),
	}, nil
}

// dispatchRows applies op to every U-row of p (i.e. acts along V) and
// reassembles the result.
func dispatchRows(p Patch, op RowOp) (Patch, error) {
	rows := p.Control.Rows()
	if rows == 0 {
		return Patch{}, InvalidArgf("cannot dispatch over an empty control grid")
	}
	var newDegree int
	var newKnots KnotVector
	newRows := make([][]Weighted4, rows)
	for i := 0; i < rows; i++ {
		d, k, c, err := op(p.DegreeV, p.KnotV, p.Control[i])
		if err != nil {
			return Patch{}, err
		}
		if i == 0 {
			newDegree, newKnots = d, k
		} else if len(k) != len(newKnots) {
			chk.Panic("directional dispatcher: row %d produced a knot vector of different length than row 0 (%d vs %d); RowOp must be row-invariant", i, len(k), len(newKnots))
		}
		newRows[i] = c
	}
	return Patch{
		DegreeU: p.DegreeU,
		DegreeV: newDegree,
		KnotU:   p.KnotU,
		KnotV:   newKnots,
		Control: ControlGrid(newRows),
	}, nil
}
