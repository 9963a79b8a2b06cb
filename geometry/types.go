// SPDX-License-Identifier: MIT
// Package geometry declares Point, Layout and the standard layouts.
package geometry

import "math"

// Point is a planar position.
type Point struct {
	X, Y float64
}

// Layout lists the number of cells in each row, top to bottom.
type Layout []int

var (
	// TileLayout is the row table of the 19 tiles.
	TileLayout = Layout{3, 4, 5, 4, 3}

	// VertexLayout is the row table of the 54 vertices.
	VertexLayout = Layout{7, 9, 11, 11, 9, 7}
)

var (
	// Pitch is the vertical distance between adjacent rows.
	Pitch = 3 / math.Sqrt(3)

	// RimOffset is the zig-zag applied to vertices within a row.
	RimOffset = 1 / (2 * math.Sqrt(3))

	// Circumradius is the centre-to-corner distance of a tile.
	Circumradius = 2 / math.Sqrt(3)
)
