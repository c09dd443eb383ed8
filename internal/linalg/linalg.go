// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linalg implements the small dense matrix utilities that the
// global interpolation and least-squares solvers build on: transpose, multiply,
// and square-system solve. Transpose and multiply are plain nested loops;
// the numerically delicate solve step is delegated to gosl/la, whose
// MatInv performs an LU-based factorization internally.
package linalg

import (
	"github.com/cpmech/gosl/la"

	nurbs "github.com/cpmech/gonurbs"
)

// Transpose returns the transpose of A.
func Transpose(A [][]float64) [][]float64 {
	rows := len(A)
	if rows == 0 {
		return nil
	}
	cols := len(A[0])
	T := la.MatAlloc(cols, rows)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			T[j][i] = A[i][j]
		}
	}
	return T
}

// Multiply returns A*B.
func Multiply(A, B [][]float64) [][]float64 {
	rows := len(A)
	if rows == 0 || len(B) == 0 {
		return nil
	}
	inner := len(A[0])
	cols := len(B[0])
	C := la.MatAlloc(rows, cols)
	for i := 0; i < rows; i++ {
		for k := 0; k < inner; k++ {
			aik := A[i][k]
			if aik == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				C[i][j] += aik * B[k][j]
			}
		}
	}
	return C
}

// SolveSquare solves A*X=R for X, where A is square, via LU-based
// inversion (gosl/la.MatInv) followed by a matrix-matrix multiply.
func SolveSquare(A [][]float64, R [][]float64, tol float64) ([][]float64, error) {
	n := len(A)
	Ai := la.MatAlloc(n, n)
	_, err := la.MatInv(Ai, A, tol)
	if err != nil {
		return nil, nurbs.InvalidArgf("cannot invert interpolation matrix: %v", err)
	}
	return Multiply(Ai, R), nil
}
