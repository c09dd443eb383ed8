// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package project

import (
	"math"

	"github.com/cpmech/gosl/io"

	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/eval"
)

// ClosestPoint finds the parameter pair (u*,v*) minimizing ||S(u,v)-Q|| over
// the patch domain. It returns its best estimate even on failure to
// converge, in which case the error carries NonConvergence rather than
// aborting. When verbose is set, each Newton iteration's residual is
// printed.
func ClosestPoint(p nurbs.Patch, q nurbs.Point3, verbose bool) (nurbs.UV, error) {
	if err := nurbs.ValidatePatch(p); err != nil {
		return nurbs.UV{}, err
	}
	uv, err := seed(p, q)
	if err != nil {
		return nurbs.UV{}, err
	}
	if verbose {
		io.Pf("closest-point: seed uv = %v\n", uv)
	}

	uClosed, vClosed := p.IsUClosed(), p.IsVClosed()
	umin, umax := p.DomainU()
	vmin, vmax := p.DomainV()

	for iter := 0; iter < nurbs.NewtonMaxIt; iter++ {
		D, err := eval.Derivatives(p, 2, uv)
		if err != nil {
			return uv, err
		}
		S, Su, Sv := D[0][0], D[1][0], D[0][1]
		Suu, Svv, Suv := D[2][0], D[0][2], D[1][1]
		r := S.Sub(q)

		rNorm := r.Length()
		if verbose {
			io.Pforan("closest-point: iter %d uv=%v residual=%g\n", iter, uv, rNorm)
		}
		if rNorm < nurbs.Delta {
			return uv, nil
		}
		suNorm, svNorm := Su.Length(), Sv.Length()
		uOrtho := suNorm < nurbs.Epsilon || math.Abs(Su.Dot(r))/(suNorm*rNorm) < nurbs.Delta
		vOrtho := svNorm < nurbs.Epsilon || math.Abs(Sv.Dot(r))/(svNorm*rNorm) < nurbs.Delta
		if uOrtho && vOrtho {
			return uv, nil
		}

		a00 := Su.Dot(Su) + r.Dot(Suu)
		a01 := Su.Dot(Sv) + r.Dot(Suv)
		a11 := Sv.Dot(Sv) + r.Dot(Svv)
		b0 := -Su.Dot(r)
		b1 := -Sv.Dot(r)
		det := a00*a11 - a01*a01
		if math.Abs(det) < nurbs.Epsilon {
			continue
		}
		du := (b0*a11 - b1*a01) / det
		dv := (a00*b1 - a01*b0) / det

		next := nurbs.UV{U: uv.U + du, V: uv.V + dv}
		next.U = clampOrWrap(next.U, umin, umax, uClosed)
		next.V = clampOrWrap(next.V, vmin, vmax, vClosed)
		du, dv = next.U-uv.U, next.V-uv.V

		step := Su.Scale(du).Length() + Sv.Scale(dv).Length()
		uv = next
		if step < nurbs.Delta {
			return uv, nil
		}
	}
	return uv, nurbs.NonConvergencef("closest-point Newton iteration did not converge within %d iterations", nurbs.NewtonMaxIt)
}

// clampOrWrap clamps t to [min,max] for an open direction, or wraps it
// modulo the domain length for a closed one.
func clampOrWrap(t, min, max float64, closed bool) float64 {
	length := max - min
	if !closed {
		if t < min {
			return min
		}
		if t > max {
			return max
		}
		return t
	}
	if length < nurbs.Epsilon {
		return min
	}
	w := math.Mod(t-min, length)
	if w < 0 {
		w += length
	}
	return min + w
}
