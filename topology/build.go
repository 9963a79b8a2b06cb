// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Incidence table validation and the single topology pass.
// Policy:
//   - Input shape errors are returned before any arena is allocated.
//   - Edges are created in ascending tile order; the first tile to walk a
//     border creates it, later tiles attach to it through edgeIndex.
//   - The finished Topology is validated before it is returned.

package topology

import (
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/pkg/errors"
)

// Standard builds the topology of the standard board.
// The embedded table is known-good, so an error here is a programming bug.
func Standard() *Topology {
	t, err := Build(StandardIncidence())
	if err != nil {
		panic(err)
	}
	return t
}

// Build constructs and validates a Topology from a TileCount×6 incidence
// table. Each row lists a tile's boundary vertices in cyclic order; all
// rows must share one winding.
//
// Errors:
//   - ErrMalformedTable when the table shape is wrong or a row repeats a vertex.
//   - ErrVertexOutOfRange when an id is outside [0, VertexCount).
//   - ErrInvariant when the resulting graph breaks a structural constant.
func Build(table [][]int) (*Topology, error) {
	if err := checkTable(table); err != nil {
		return nil, err
	}

	t := &Topology{
		tiles:     make([]Tile, TileCount),
		vertices:  make([]Vertex, VertexCount),
		edges:     make([]Edge, 0, EdgeCount),
		edgeIndex: make(map[pairKey]int, EdgeCount),
		neighbors: make([]*treeset.Set, VertexCount),
	}
	for v := 0; v < VertexCount; v++ {
		t.vertices[v] = Vertex{ID: v, Edges: make([]int, 0, 3), Tiles: make([]int, 0, 3)}
		t.neighbors[v] = treeset.NewWithIntComparator()
	}

	for id, row := range table {
		tile := &t.tiles[id]
		tile.ID = id
		copy(tile.Vertices[:], row)

		for _, v := range row {
			t.vertices[v].Tiles = appendUnique(t.vertices[v].Tiles, id)
		}
		for i := 0; i < TileSides; i++ {
			tile.Edges[i] = t.linkEdge(id, row[i], row[(i+1)%TileSides])
		}
	}

	for v := range t.vertices {
		sort.Ints(t.vertices[v].Edges)
		sort.Ints(t.vertices[v].Tiles)
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// linkEdge returns the id of the edge a–b, creating it on first touch,
// and records tile as one of its bordering tiles.
func (t *Topology) linkEdge(tile, a, b int) int {
	key := keyOf(a, b)
	if id, ok := t.edgeIndex[key]; ok {
		e := &t.edges[id]
		e.Tiles = appendUnique(e.Tiles, tile)
		return id
	}

	id := len(t.edges)
	t.edges = append(t.edges, Edge{ID: id, A: key.lo, B: key.hi, Tiles: []int{tile}})
	t.edgeIndex[key] = id

	t.vertices[a].Edges = append(t.vertices[a].Edges, id)
	t.vertices[b].Edges = append(t.vertices[b].Edges, id)
	t.neighbors[a].Add(b)
	t.neighbors[b].Add(a)
	return id
}

// checkTable validates the table shape and id ranges without allocating.
func checkTable(table [][]int) error {
	if len(table) != TileCount {
		return errors.Wrapf(ErrMalformedTable, "got %d rows, want %d", len(table), TileCount)
	}
	for tile, row := range table {
		if len(row) != TileSides {
			return errors.Wrapf(ErrMalformedTable, "tile %d: got %d vertices, want %d", tile, len(row), TileSides)
		}
		for i, v := range row {
			if v < 0 || v >= VertexCount {
				return errors.Wrapf(ErrVertexOutOfRange, "tile %d: vertex %d", tile, v)
			}
			for _, w := range row[:i] {
				if w == v {
					return errors.Wrapf(ErrMalformedTable, "tile %d: vertex %d repeated", tile, v)
				}
			}
		}
	}
	return nil
}

// appendUnique appends x unless it is already present.
// Slices here hold at most three entries.
func appendUnique(s []int, x int) []int {
	for _, y := range s {
		if y == x {
			return s
		}
	}
	return append(s, x)
}
