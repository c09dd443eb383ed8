// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nurbs

// ToEuclidean drops every entry of a homogeneous grid to Euclidean space.
// Shape is preserved.
func ToEuclidean(grid ControlGrid) [][]Point3 {
	out := make([][]Point3, grid.Rows())
	for i, row := range grid {
		out[i] = make([]Point3, len(row))
		for j, q := range row {
			out[i][j] = q.Drop()
		}
	}
	return out
}

// ToHomogeneous lifts a Euclidean point grid into a homogeneous control
// grid. When weights is nil every point is lifted with weight 1;
// otherwise weights must have the same shape as points.
func ToHomogeneous(points [][]Point3, weights [][]float64) ControlGrid {
	out := make(ControlGrid, len(points))
	for i, row := range points {
		out[i] = make([]Weighted4, len(row))
		for j, p := range row {
			w := 1.0
			if weights != nil {
				w = weights[i][j]
			}
			out[i][j] = Lift(p, w)
		}
	}
	return out
}
