// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package basis

// binomTable caches C(n,k) for the small n,k encountered by rational
// surface differentiation (derivative orders are always small in practice).
var binomTable = map[[2]int]float64{}

// Binomial returns C(n,k), the binomial coefficient, computed once per
// (n,k) pair and cached.
func Binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	key := [2]int{n, k}
	if v, ok := binomTable[key]; ok {
		return v
	}
	v := Binomial(n-1, k-1) + Binomial(n-1, k)
	binomTable[key] = v
	return v
}
