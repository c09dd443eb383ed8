// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

// tolerances
const (
	Epsilon = 1.0e-12 // ε: absolute tolerance for scalar/knot equality
	Delta   = 1.0e-7  // δ: distance tolerance used by iterative convergence tests
)

// inverse projection
const (
	NewtonMaxIt = 10 // maximum Newton iterations for ClosestPoint
)
