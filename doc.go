// Package hexboard models the static topology and rendering coordinates of
// a standard 19-hex resource board.
//
// The board is 19 tiles, 54 vertices and 72 edges, derived from a single
// tile→vertex incidence table. Positions are never stored; they are
// recomputed from ids by closed-form layout functions.
//
// Under the hood, everything is organized in subpackages:
//
//	topology/  — Tile, Vertex, Edge arenas built from the incidence table
//	resource/  — resource kinds, number tokens and the seeded assignment
//	geometry/  — id → planar coordinates, polygons and winding
//	bfs/       — hop distances over the vertex graph
//	occupancy/ — externally owned settlement/city/road claims
//	board/     — composition root with lookups by id
//
// Quick ASCII example of one tile and its corner ids:
//
//	      1
//	  0       2
//	  8       10
//	      9
//
//	go get github.com/katalvlaran/hexboard
package hexboard
