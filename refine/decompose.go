// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package refine

import (
	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/internal/curve"
)

// BezierPatch is a single (DegreeU+1)x(DegreeV+1) Bézier patch produced by
// Decompose: its Control grid has no interior knots in either direction.
type BezierPatch struct {
	Control nurbs.ControlGrid
}

// Decompose splits p into a grid of Bézier patches, one per (U-span,V-span)
// pair. It first decomposes every
// V-column into Bézier curves along U, then decomposes every row of each
// resulting U-slice into Bézier curves along V, so that the Bézier
// structure of both directions is reached without ever mixing U and V
// indices in a single pass.
func Decompose(p nurbs.Patch) ([][]BezierPatch, error) {
	if err := nurbs.ValidatePatch(p); err != nil {
		return nil, err
	}
	rows, cols := p.Control.Rows(), p.Control.Cols()

	uSegsPerCol := make([][][]nurbs.Weighted4, cols)
	nUsegs := 0
	for j := 0; j < cols; j++ {
		col := make([]nurbs.Weighted4, rows)
		for i := 0; i < rows; i++ {
			col[i] = p.Control[i][j]
		}
		segs := curve.DecomposeBezier(p.DegreeU, p.KnotU, col)
		uSegsPerCol[j] = segs
		nUsegs = len(segs)
	}

	result := make([][]BezierPatch, nUsegs)
	for su := 0; su < nUsegs; su++ {
		slice := make(nurbs.ControlGrid, p.DegreeU+1)
		for a := 0; a <= p.DegreeU; a++ {
			row := make([]nurbs.Weighted4, cols)
			for j := 0; j < cols; j++ {
				row[j] = uSegsPerCol[j][su][a]
			}
			slice[a] = row
		}

		var nVsegs int
		rowSegs := make([][][]nurbs.Weighted4, p.DegreeU+1)
		for a := 0; a <= p.DegreeU; a++ {
			segs := curve.DecomposeBezier(p.DegreeV, p.KnotV, slice[a])
			rowSegs[a] = segs
			nVsegs = len(segs)
		}

		result[su] = make([]BezierPatch, nVsegs)
		for sv := 0; sv < nVsegs; sv++ {
			ctrl := make(nurbs.ControlGrid, p.DegreeU+1)
			for a := 0; a <= p.DegreeU; a++ {
				ctrl[a] = rowSegs[a][sv]
			}
			result[su][sv] = BezierPatch{Control: ctrl}
		}
	}
	return result, nil
}
