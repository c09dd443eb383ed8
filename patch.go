// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

// KnotVector is a finite non-decreasing sequence of scalars.
type KnotVector []float64

// Clone returns a fresh copy of k.
func (k KnotVector) Clone() KnotVector {
	c := make(KnotVector, len(k))
	copy(c, k)
	return c
}

// ControlGrid is a rectangular (n+1)x(m+1) grid of Weighted4, indexed
// [i][j] with i along U and j along V.
type ControlGrid [][]Weighted4

// Rows returns n+1, the number of control rows along U.
func (g ControlGrid) Rows() int { return len(g) }

// Cols returns m+1, the number of control columns along V, or 0 for an
// empty grid.
func (g ControlGrid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns a deep copy of g.
func (g ControlGrid) Clone() ControlGrid {
	c := make(ControlGrid, len(g))
	for i, row := range g {
		c[i] = make([]Weighted4, len(row))
		copy(c[i], row)
	}
	return c
}

// Transpose returns a new grid with the U/V roles swapped: result[j][i] = g[i][j].
func (g ControlGrid) Transpose() ControlGrid {
	rows, cols := g.Rows(), g.Cols()
	t := make(ControlGrid, cols)
	for j := 0; j < cols; j++ {
		t[j] = make([]Weighted4, rows)
		for i := 0; i < rows; i++ {
			t[j][i] = g[i][j]
		}
	}
	return t
}

// Patch is the tuple (degreeU, degreeV, knotU, knotV, ControlGrid).
// Patches are immutable values: every operation in this module returns a
// new Patch rather than mutating its receiver or arguments.
type Patch struct {
	DegreeU int
	DegreeV int
	KnotU   KnotVector
	KnotV   KnotVector
	Control ControlGrid
}

// Clone returns a deep, independent copy of p (mirrors shp.Shape.GetCopy).
func (p Patch) Clone() Patch {
	return Patch{
		DegreeU: p.DegreeU,
		DegreeV: p.DegreeV,
		KnotU:   p.KnotU.Clone(),
		KnotV:   p.KnotV.Clone(),
		Control: p.Control.Clone(),
	}
}

// DomainU returns the [min,max] of the U parameter domain.
func (p Patch) DomainU() (min, max float64) {
	return p.KnotU[0], p.KnotU[len(p.KnotU)-1]
}

// DomainV returns the [min,max] of the V parameter domain.
func (p Patch) DomainV() (min, max float64) {
	return p.KnotV[0], p.KnotV[len(p.KnotV)-1]
}

// IsUClosed reports whether control[0][j] == control[n][j] for every j, within ε.
func (p Patch) IsUClosed() bool {
	n := p.Control.Rows() - 1
	for j := 0; j < p.Control.Cols(); j++ {
		if !p.Control[0][j].Drop().Equals(p.Control[n][j].Drop()) {
			return false
		}
	}
	return true
}

// IsVClosed reports whether control[i][0] == control[i][m] for every i, within ε.
func (p Patch) IsVClosed() bool {
	m := p.Control.Cols() - 1
	for i := 0; i < p.Control.Rows(); i++ {
		if !p.Control[i][0].Drop().Equals(p.Control[i][m].Drop()) {
			return false
		}
	}
	return true
}

// ToHomogeneousGrid returns the underlying homogeneous control grid itself,
// not a copy (convenience accessor, see Lift/ToHomogeneous).
func (p Patch) ToHomogeneousGrid() ControlGrid {
	return p.Control
}

// ToEuclideanGrid returns the Euclidean points of the control grid, discarding
// weights (convenience wrapper, see ToEuclidean).
func (p Patch) ToEuclideanGrid() [][]Point3 {
	return ToEuclidean(p.Control)
}
