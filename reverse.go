// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

// reflectKnots reverses k and affinely reflects it into [k[0], k[last]],
// i.e. result[i] = k[0]+k[last]-k[len(k)-1-i].
func reflectKnots(k KnotVector) KnotVector {
	a, b := k[0], k[len(k)-1]
	out := make(KnotVector, len(k))
	for i := range k {
		out[i] = a + b - k[len(k)-1-i]
	}
	return out
}

// ReverseU reverses the U parametric direction of p while preserving its
// geometry: the U-order of the control grid is reversed and knotU is
// reflected. Involution: ReverseU(ReverseU(p)) == p within ε.
func ReverseU(p Patch) Patch {
	n := p.Control.Rows()
	newControl := make(ControlGrid, n)
	for i := 0; i < n; i++ {
		newControl[i] = p.Control[n-1-i]
	}
	return Patch{
		DegreeU: p.DegreeU,
		DegreeV: p.DegreeV,
		KnotU:   reflectKnots(p.KnotU),
		KnotV:   p.KnotV.Clone(),
		Control: newControl,
	}
}

// ReverseV reverses the V parametric direction of p. Involution:
// ReverseV(ReverseV(p)) == p within ε.
func ReverseV(p Patch) Patch {
	m := p.Control.Cols()
	newControl := make(ControlGrid, p.Control.Rows())
	for i, row := range p.Control {
		newRow := make([]Weighted4, m)
		for j := 0; j < m; j++ {
			newRow[j] = row[m-1-j]
		}
		newControl[i] = newRow
	}
	return Patch{
		DegreeU: p.DegreeU,
		DegreeV: p.DegreeV,
		KnotU:   p.KnotU.Clone(),
		KnotV:   reflectKnots(p.KnotV),
		Control: newControl,
	}
}
