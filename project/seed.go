// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package project implements the inverse-projection and tangent-solver
// components: both reduce a geometric query against a Patch to a
// small linear system built from its point and derivative evaluations
// (package eval).
package project

import (
	nurbs "github.com/cpmech/gonurbs"
	"github.com/cpmech/gonurbs/eval"
	"github.com/cpmech/gosl/utl"
)

// sample is one (u,v,point) triple from the Phase-1 search grid.
type sample struct {
	uv nurbs.UV
	p  nurbs.Point3
}

// seed runs the sampling phase of ClosestPoint: a dense samplesU x samplesV
// grid of surface points, with the closest grid point approximated by
// projecting the target onto the secant line of each U-segment at fixed v.
func seed(p nurbs.Patch, q nurbs.Point3) (nurbs.UV, error) {
	samplesU := p.Control.Rows() * p.DegreeU
	samplesV := p.Control.Cols() * p.DegreeV
	if samplesU < 2 {
		samplesU = 2
	}
	if samplesV < 2 {
		samplesV = 2
	}
	umin, umax := p.DomainU()
	vmin, vmax := p.DomainV()
	us := utl.LinSpace(umin, umax, samplesU)
	vs := utl.LinSpace(vmin, vmax, samplesV)

	grid := make([][]sample, len(vs))
	for j, v := range vs {
		grid[j] = make([]sample, len(us))
		for i, u := range us {
			pt, err := eval.Point(p, nurbs.UV{U: u, V: v})
			if err != nil {
				return nurbs.UV{}, err
			}
			grid[j][i] = sample{uv: nurbs.UV{U: u, V: v}, p: pt}
		}
	}

	best := grid[0][0].uv
	bestDist := q.Distance(grid[0][0].p)
	for j := range vs {
		for i := 0; i < len(us)-1; i++ {
			a, b := grid[j][i], grid[j][i+1]
			v2 := b.p.Sub(a.p)
			denom := v2.Dot(v2)
			var cand sample
			if denom < nurbs.Epsilon {
				cand = a
			} else {
				t := q.Sub(a.p).Dot(v2) / denom
				switch {
				case t <= 0:
					cand = a
				case t >= 1:
					cand = b
				default:
					cand = sample{
						uv: nurbs.UV{U: a.uv.U + t*(b.uv.U-a.uv.U), V: a.uv.V},
						p:  a.p.Add(v2.Scale(t)),
					}
				}
			}
			if d := q.Distance(cand.p); d < bestDist {
				bestDist = d
				best = cand.uv
			}
		}
	}
	return best, nil
}
