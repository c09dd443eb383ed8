// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package construct

import (
	"github.com/cpmech/gosl/io"

	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/internal/basis"
	"github.com/cpmech/gonurbs/internal/curve"
	"github.com/cpmech/gonurbs/internal/linalg"
)

// GlobalInterpolation builds the unique patch of the given degrees passing
// exactly through every point of the (n+1)x(m+1) grid, parameterized by
// the averaged chord-length scheme. It solves the U-direction interpolation
// system per V-column, then the V-direction system per resulting U-row.
// When verbose is set, the chosen knot vectors are printed.
func GlobalInterpolation(points [][]nurbs.Point3, degreeU, degreeV int, verbose bool) (nurbs.Patch, error) {
	n := len(points) - 1
	m := len(points[0]) - 1
	if n < degreeU || m < degreeV {
		return nurbs.Patch{}, nurbs.InvalidArgf("grid of %dx%d points is too small for degrees (%d,%d)", n+1, m+1, degreeU, degreeV)
	}

	u, v := curve.AveragedGridParams(points)
	knotU := curve.AveragedKnotVector(degreeU, u)
	knotV := curve.AveragedKnotVector(degreeV, v)
	if verbose {
		io.Pf("global interpolation: knotU=%v knotV=%v\n", knotU, knotV)
	}

	Nu := basis.Matrix(n, degreeU, knotU, u)
	Nv := basis.Matrix(m, degreeV, knotV, v)

	R := make([][]nurbs.Point3, n+1)
	for i := range R {
		R[i] = make([]nurbs.Point3, m+1)
	}
	for j := 0; j <= m; j++ {
		rhs := make([][]float64, n+1)
		for i := 0; i <= n; i++ {
			rhs[i] = []float64{points[i][j].X, points[i][j].Y, points[i][j].Z}
		}
		sol, err := linalg.SolveSquare(Nu, rhs, nurbs.Epsilon)
		if err != nil {
			return nurbs.Patch{}, nurbs.GeometricFailuref("global interpolation: U system singular at column %d: %v", j, err)
		}
		for i := 0; i <= n; i++ {
			R[i][j] = nurbs.Point3{X: sol[i][0], Y: sol[i][1], Z: sol[i][2]}
		}
	}

	ctrl := make(nurbs.ControlGrid, n+1)
	for i := 0; i <= n; i++ {
		rhs := make([][]float64, m+1)
		for l := 0; l <= m; l++ {
			rhs[l] = []float64{R[i][l].X, R[i][l].Y, R[i][l].Z}
		}
		sol, err := linalg.SolveSquare(Nv, rhs, nurbs.Epsilon)
		if err != nil {
			return nurbs.Patch{}, nurbs.GeometricFailuref("global interpolation: V system singular at row %d: %v", i, err)
		}
		row := make([]nurbs.Weighted4, m+1)
		for l := 0; l <= m; l++ {
			row[l] = nurbs.Lift(nurbs.Point3{X: sol[l][0], Y: sol[l][1], Z: sol[l][2]}, 1)
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
