// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package curve

import (
	"math"

	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/internal/basis"
)

func wdist(a, b nurbs.Weighted4) float64 {
	dx, dy, dz, dw := a.X-b.X, a.Y-b.Y, a.Z-b.Z, a.W-b.W
	return math.Sqrt(dx*dx + dy*dy + dz*dz + dw*dw)
}

// RemoveKnot attempts to remove u from knots up to `times` times while
// keeping the curve within tol of its original shape (The NURBS Book,
// Algorithm A5.8). It returns the number of copies actually removed,
// which may be less than times.
func RemoveKnot(degree int, knots []float64, ctrl []nurbs.Weighted4, u float64, times int, tol float64) (newKnots []float64, newCtrl []nurbs.Weighted4, removed int) {
	n := len(ctrl) - 1
	m := n + degree + 1
	ord := degree + 1
	s := basis.Multiplicity(knots, u)
	r := basis.FindSpan(n, degree, knots, u)
	if s == 0 {
		outK := append([]float64(nil), knots...)
		outC := append([]nurbs.Weighted4(nil), ctrl...)
		return outK, outC, 0
	}
	// FindSpan(n,degree,knots,u) returns the index of the last knot equal
	// to u, which is exactly the "r" the algorithm below expects.
	Pw := append([]nurbs.Weighted4(nil), ctrl...)
	U := append([]float64(nil), knots...)

	first := r - degree
	last := r - s
	temp := make([]nurbs.Weighted4, 2*degree+1)

	t := 0
	for ; t < times; t++ {
		off := first - 1
		temp[0] = Pw[off]
		temp[last+1-off] = Pw[last+1]
		i, j := first, last
		ii, jj := 1, last-off
		remflag := false
		for j-i > t {
			alfi := (u - U[i]) / (U[i+ord+t] - U[i])
			alfj := (u - U[j-t]) / (U[j+ord+t] - U[j-t])
			temp[ii] = Pw[i].Sub(temp[ii-1].Scale(1 - alfi)).Scale(1 / alfi)
			temp[jj] = Pw[j].Sub(temp[jj+1].Scale(alfj)).Scale(1 / (1 - alfj))
			i++
			ii++
			j--
			jj--
		}
		if j-i < t {
			if wdist(temp[ii-1], temp[jj+1]) <= tol {
				remflag = true
			}
		} else {
			alfi := (u - U[i]) / (U[i+ord+t] - U[i])
			candidate := temp[ii+t+1].Scale(alfi).Add(temp[ii-1].Scale(1 - alfi))
			if wdist(Pw[i], candidate) <= tol {
				remflag = true
			}
		}
		if !remflag {
			break
		}
		i, j = first, last
		for j-i > t {
			Pw[i] = temp[i-off]
			Pw[j] = temp[j-off]
			i++
			j--
		}
		first--
		last++
	}
	if t == 0 {
		outK := append([]float64(nil), knots...)
		outC := append([]nurbs.Weighted4(nil), ctrl...)
		return outK, outC, 0
	}

	for k := r + 1; k <= m; k++ {
		U[k-t] = U[k]
	}
	U = U[:m-t+1]

	fout := (2*r - s - degree) / 2
	j := fout
	i := j
	for k := 1; k < t; k++ {
		if k%2 == 1 {
			i++
		} else {
			j--
		}
	}
	for k := i + 1; k <= n; k++ {
		Pw[j] = Pw[k]
		j++
	}
	Pw = Pw[:n-t+1]

	return U, Pw, t
}
