// SPDX-License-Identifier: MIT
//
// File: coords.go
// Role: Closed-form id → position functions.
// Policy:
//   - Pure and stateless; identical ids always yield identical points.
//   - Unknown ids report ok=false rather than a zero point.

package geometry

// TileCoords returns the centre of tile id.
func TileCoords(id int) (Point, bool) {
	row, col, ok := TileLayout.RowCol(id)
	if !ok {
		return Point{}, false
	}
	dx, dy := TileLayout.centre(row, col)
	return Point{X: dx * 2, Y: dy * Pitch}, true
}

// VertexCoords returns the position of vertex id.
func VertexCoords(id int) (Point, bool) {
	row, col, ok := VertexLayout.RowCol(id)
	if !ok {
		return Point{}, false
	}
	dx, dy := VertexLayout.centre(row, col)
	y := dy * Pitch

	// Even columns sit on the rim nearer the board's horizontal midline.
	off := RimOffset
	if y <= 0 {
		off = -off
	}
	if col%2 == 0 {
		y -= off
	} else {
		y += off
	}
	return Point{X: dx, Y: y}, true
}

// Polygon returns the positions of the given vertex ids in order.
// ok is false if any id is unknown.
func Polygon(vertexIDs []int) ([]Point, bool) {
	out := make([]Point, len(vertexIDs))
	for i, id := range vertexIDs {
		p, ok := VertexCoords(id)
		if !ok {
			return nil, false
		}
		out[i] = p
	}
	return out, true
}

// SignedArea is the shoelace area of a simple polygon: positive when the
// points run counter-clockwise, negative when clockwise.
func SignedArea(pts []Point) float64 {
	var sum float64
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return sum / 2
}

// Centroid returns the arithmetic mean of pts.
func Centroid(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var c Point
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(pts))
	return Point{X: c.X / n, Y: c.Y / n}
}
