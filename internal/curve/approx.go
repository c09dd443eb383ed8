// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/internal/basis"
	"github.com/cpmech/gonurbs/internal/linalg"
)

// ApproximationKnotVector builds the clamped knot vector for fitting ncp
// control points of the given degree to r+1 data points at params, where
// ncp is strictly less than r+1 (The NURBS Book, eq. 9.68), used by the
// least-squares approximation constructor.
func ApproximationKnotVector(degree, ncp int, params []float64) []float64 {
	r := len(params) - 1
	n := ncp - 1
	knots := make([]float64, ncp+degree+1)
	for i := 0; i <= degree; i++ {
		knots[i] = params[0]
		knots[len(knots)-1-i] = params[r]
	}
	d := float64(r+1) / float64(n-degree+1)
	for j := 1; j <= n-degree; j++ {
		i := int(float64(j) * d)
		alpha := float64(j)*d - float64(i)
		knots[degree+j] = (1-alpha)*params[i-1] + alpha*params[i]
	}
	return knots
}

// LeastSquaresFit fits ncp control points of the given degree and knot
// vector to r+1 data points of arbitrary dimension at params, pinning the
// first and last control points to data[0] and data[r] exactly and solving
// the reduced normal-equation system for the interior ones (The NURBS
// Book §9.4.1), used by the global surface approximation constructor.
func LeastSquaresFit(degree, ncp int, knots []float64, params []float64, data [][]float64) ([][]float64, error) {
	r := len(data) - 1
	n := ncp - 1
	if r < n {
		return nil, nurbs.InvalidArgf("least-squares fit needs at least %d data points for %d control points, got %d", n+1, ncp, r+1)
	}
	dim := len(data[0])
	result := make([][]float64, ncp)
	result[0] = append([]float64(nil), data[0]...)
	result[n] = append([]float64(nil), data[r]...)
	if n < 2 {
		for i := 1; i < n; i++ {
			result[i] = make([]float64, dim)
		}
		return result, nil
	}

	N := basis.Matrix(n, degree, knots, params)

	Rk := make([][]float64, r-1)
	for k := 1; k < r; k++ {
		row := make([]float64, dim)
		for c := 0; c < dim; c++ {
			row[c] = data[k][c] - N[k][0]*data[0][c] - N[k][n]*data[r][c]
		}
		Rk[k-1] = row
	}

	Rmat := make([][]float64, n-1)
	for i := 1; i < n; i++ {
		row := make([]float64, dim)
		for k := 1; k < r; k++ {
			w := N[k][i]
			if w == 0 {
				continue
			}
			for c := 0; c < dim; c++ {
				row[c] += w * Rk[k-1][c]
			}
		}
		Rmat[i-1] = row
	}

	Nmat := make([][]float64, n-1)
	for i := 1; i < n; i++ {
		row := make([]float64, n-1)
		for j := 1; j < n; j++ {
			s := 0.0
			for k := 1; k < r; k++ {
				s += N[k][i] * N[k][j]
			}
			row[j-1] = s
		}
		Nmat[i-1] = row
	}

	X, err := linalg.SolveSquare(Nmat, Rmat, nurbs.Epsilon)
	if err != nil {
		return nil, nurbs.GeometricFailuref("least-squares fit: normal-equation system singular: %v", err)
	}
	for i := 1; i < n; i++ {
		result[i] = X[i-1]
	}
	return result, nil
}
