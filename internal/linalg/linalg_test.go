// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linalg

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_linalg01_transpose(tst *testing.T) {

	chk.PrintTitle("linalg01")

	A := [][]float64{{1, 2, 3}, {4, 5, 6}}
	T := Transpose(A)
	chk.Ints(tst, "rows", []int{len(T)}, []int{3})
	chk.Ints(tst, "cols", []int{len(T[0])}, []int{2})
	chk.Scalar(tst, "T[2][1]", 1e-14, T[2][1], 6)
}

func Test_linalg02_multiply(tst *testing.T) {

	chk.PrintTitle("linalg02")

	A := [][]float64{{1, 0}, {0, 1}}
	B := [][]float64{{5, 6}, {7, 8}}
	C := Multiply(A, B)
	chk.Scalar(tst, "C[0][0]", 1e-14, C[0][0], 5)
	chk.Scalar(tst, "C[1][1]", 1e-14, C[1][1], 8)
}

func Test_linalg03_solve_square(tst *testing.T) {

	chk.PrintTitle("linalg03")

	A := [][]float64{{2, 0}, {0, 4}}
	R := [][]float64{{1, 0}, {0, 1}}
	X, err := SolveSquare(A, R, 1e-14)
	if err != nil {
		tst.Fatalf("SolveSquare failed: %v", err)
	}
	chk.Scalar(tst, "X[0][0]", 1e-12, X[0][0], 0.5)
	chk.Scalar(tst, "X[1][1]", 1e-12, X[1][1], 0.25)
}
