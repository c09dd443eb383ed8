// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package construct

import (
	"github.com/cpmech/gosl/io"

	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/internal/curve"
)

func pointsToRows(points []nurbs.Point3) [][]float64 {
	rows := make([][]float64, len(points))
	for i, p := range points {
		rows[i] = []float64{p.X, p.Y, p.Z}
	}
	return rows
}

func rowsToPoints(rows [][]float64) []nurbs.Point3 {
	points := make([]nurbs.Point3, len(rows))
	for i, r := range rows {
		points[i] = nurbs.Point3{X: r[0], Y: r[1], Z: r[2]}
	}
	return points
}

// GlobalApproximation least-squares fits a (rows)x(cols) control grid of
// the given degrees to an (n+1)x(m+1) grid of points, where rows and cols
// are strictly smaller than the input dimensions. It parameterizes exactly
// as GlobalInterpolation does, fits each direction's reduced normal-equation
// system, and pins the first and last control row/column to the input's
// boundary curves. When verbose is set, the chosen knot vectors are printed.
func GlobalApproximation(points [][]nurbs.Point3, degreeU, degreeV, rows, cols int, verbose bool) (nurbs.Patch, error) {
	n := len(points) - 1
	m := len(points[0]) - 1
	if rows >= n+1 || cols >= m+1 {
		return nurbs.Patch{}, nurbs.InvalidArgf("approximation output size (%d,%d) must be strictly smaller than input grid (%d,%d)", rows, cols, n+1, m+1)
	}

	u, v := curve.AveragedGridParams(points)
	knotU := curve.ApproximationKnotVector(degreeU, rows, u)
	knotV := curve.ApproximationKnotVector(degreeV, cols, v)
	if verbose {
		io.Pf("global approximation: knotU=%v knotV=%v\n", knotU, knotV)
	}

	intermediate := make([][]nurbs.Point3, rows)
	for i := range intermediate {
		intermediate[i] = make([]nurbs.Point3, m+1)
	}
	for j := 0; j <= m; j++ {
		col := make([]nurbs.Point3, n+1)
		for i := 0; i <= n; i++ {
			col[i] = points[i][j]
		}
		fit, err := curve.LeastSquaresFit(degreeU, rows, knotU, u, pointsToRows(col))
		if err != nil {
			return nurbs.Patch{}, err
		}
		fitPoints := rowsToPoints(fit)
		for i := 0; i < rows; i++ {
			intermediate[i][j] = fitPoints[i]
		}
	}

	ctrl := make(nurbs.ControlGrid, rows)
	for i := 0; i < rows; i++ {
		fit, err := curve.LeastSquaresFit(degreeV, cols, knotV, v, pointsToRows(intermediate[i]))
		if err != nil {
			return nurbs.Patch{}, err
		}
		fitPoints := rowsToPoints(fit)
		row := make([]nurbs.Weighted4, cols)
		for l := 0; l < cols; l++ {
			row[l] = nurbs.Lift(fitPoints[l], 1)
		}
		ctrl[i] = row
	}

	return nurbs.Patch{
		DegreeU: degreeU,
		DegreeV: degreeV,
		KnotU:   nurbs.KnotVector(knotU),
		KnotV:   nurbs.KnotVector(knotV),
		Control: ctrl,
	}, nil
}
