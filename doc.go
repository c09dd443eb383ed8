// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nurbs implements the tensor-product core of a NURBS surface
// library: evaluation, differentiation, knot refinement, degree
// alteration, inverse projection, Bézier decomposition and construction
// of a bidirectional rational B-spline patch.
package nurbs
