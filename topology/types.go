// SPDX-License-Identifier: MIT
// Package topology declares the Tile, Vertex and Edge arena types, the
// pair index key and sentinel errors.
package topology

import (
	"errors"

	"github.com/emirpasic/gods/sets/treeset"
)

// Sentinel errors for topology construction and validation.
var (
	// ErrMalformedTable indicates the incidence table has the wrong shape.
	ErrMalformedTable = errors.New("topology: malformed incidence table")

	// ErrVertexOutOfRange indicates an incidence entry outside [0, vertexCount).
	ErrVertexOutOfRange = errors.New("topology: vertex id out of range")

	// ErrInvariant indicates a structural invariant does not hold.
	ErrInvariant = errors.New("topology: invariant violated")
)

// Structural constants of the standard board.
const (
	// TileCount is the number of hex tiles.
	TileCount = 19

	// VertexCount is the number of tile corners.
	VertexCount = 54

	// EdgeCount is the number of distinct tile borders.
	EdgeCount = 72

	// TileSides is the boundary length of every tile.
	TileSides = 6
)

// Tile is one hex cell. Vertices are in cyclic boundary order; Edges[i]
// joins Vertices[i] and Vertices[(i+1)%6].
type Tile struct {
	ID       int
	Vertices [TileSides]int
	Edges    [TileSides]int
}

// Vertex is a point where one to three tiles meet.
// Edges and Tiles are in ascending id order.
type Vertex struct {
	ID    int
	Edges []int
	Tiles []int
}

// Edge is an unordered pair of vertices.
// A and B hold the endpoints with A < B; Tiles lists one or two tiles.
type Edge struct {
	ID    int
	A, B  int
	Tiles []int
}

// Other returns the endpoint opposite to v, or -1 if v is not an endpoint.
func (e *Edge) Other(v int) int {
	switch v {
	case e.A:
		return e.B
	case e.B:
		return e.A
	default:
		return -1
	}
}

// Has reports whether v is one of the edge's endpoints.
func (e *Edge) Has(v int) bool { return v == e.A || v == e.B }

// pairKey is the order-independent identity of an edge.
type pairKey struct{ lo, hi int }

// keyOf normalises (a, b) so that keyOf(a, b) == keyOf(b, a).
func keyOf(a, b int) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// Topology owns the three arenas and the secondary indexes built during
// construction. The zero value is not usable; call Build or Standard.
type Topology struct {
	tiles    []Tile
	vertices []Vertex
	edges    []Edge

	// edgeIndex[{lo,hi}] = edge id
	edgeIndex map[pairKey]int

	// neighbors[v] holds the ids of vertices sharing an edge with v.
	neighbors []*treeset.Set
}
