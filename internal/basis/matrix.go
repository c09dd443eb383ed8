// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package basis

// Matrix builds the (len(params))x(n+1) basis-function matrix N where
// N[k][i] = N_{i,degree}(params[k]), used by the interpolation and
// least-squares approximation constructors to set up their linear systems.
func Matrix(n, degree int, knots []float64, params []float64) [][]float64 {
	N := make([][]float64, len(params))
	for k, t := range params {
		span := FindSpan(n, degree, knots, t)
		row := make([]float64, n+1)
		funs := BasisFuns(span, degree, knots, t)
		for j := 0; j <= degree; j++ {
			row[span-degree+j] = funs[j]
		}
		N[k] = row
	}
	return N
}
