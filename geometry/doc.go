// Package geometry maps flat tile and vertex ids to planar coordinates.
//
// Coordinates are never stored on board entities; they are recomputed from
// the id and a row-layout table every time:
//
//	tiles:     rows of 3, 4, 5, 4, 3
//	vertices:  rows of 7, 9, 11, 11, 9, 7
//
// An id resolves to (row, col) by subtracting row lengths. x is the column
// offset from the row centre (doubled for tiles), y the row offset from the
// vertical centre scaled by the hex pitch 3/√3. Vertices additionally zig-zag
// by ±1/(2√3) so that alternating corners of a row sit on the upper and
// lower rims of the hexes.
//
// With these tables every tile is a regular hexagon of circumradius 2/√3
// centred at TileCoords, and the standard incidence table winds clockwise
// (negative SignedArea) for every tile.
package geometry
