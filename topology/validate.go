// SPDX-License-Identifier: MIT
//
// File: validate.go
// Role: Structural invariant checks run at the end of Build.
//
// A failure here means the incidence table is wrong, not that the caller
// misused the API. Board construction treats it as fatal.

package topology

import "github.com/pkg/errors"

// Validate checks every structural invariant of the board graph:
//   - exactly TileCount tiles, VertexCount vertices and EdgeCount edges;
//   - no two edges share an endpoint pair and no edge is a loop;
//   - each tile's cyclic vertex walk resolves to exactly its own edges;
//   - every edge borders one or two tiles that list it back;
//   - every vertex touches 1..3 tiles and 2..3 edges.
func (t *Topology) Validate() error {
	if len(t.tiles) != TileCount || len(t.vertices) != VertexCount || len(t.edges) != EdgeCount {
		return errors.Wrapf(ErrInvariant, "counts tiles=%d vertices=%d edges=%d, want %d/%d/%d",
			len(t.tiles), len(t.vertices), len(t.edges), TileCount, VertexCount, EdgeCount)
	}

	seen := make(map[pairKey]int, len(t.edges))
	for i := range t.edges {
		e := &t.edges[i]
		if e.A == e.B {
			return errors.Wrapf(ErrInvariant, "edge %d is a loop on vertex %d", e.ID, e.A)
		}
		key := keyOf(e.A, e.B)
		if prev, dup := seen[key]; dup {
			return errors.Wrapf(ErrInvariant, "edges %d and %d both join %d-%d", prev, e.ID, key.lo, key.hi)
		}
		seen[key] = e.ID
		if n := len(e.Tiles); n < 1 || n > 2 {
			return errors.Wrapf(ErrInvariant, "edge %d borders %d tiles", e.ID, n)
		}
	}

	for i := range t.tiles {
		tile := &t.tiles[i]
		for k := 0; k < TileSides; k++ {
			a, b := tile.Vertices[k], tile.Vertices[(k+1)%TileSides]
			id, ok := t.edgeIndex[keyOf(a, b)]
			if !ok || id != tile.Edges[k] {
				return errors.Wrapf(ErrInvariant, "tile %d side %d (%d-%d) does not resolve to edge %d", tile.ID, k, a, b, tile.Edges[k])
			}
			if !contains(t.edges[id].Tiles, tile.ID) {
				return errors.Wrapf(ErrInvariant, "edge %d does not list tile %d", id, tile.ID)
			}
		}
	}

	for i := range t.vertices {
		v := &t.vertices[i]
		if n := len(v.Tiles); n < 1 || n > 3 {
			return errors.Wrapf(ErrInvariant, "vertex %d touches %d tiles", v.ID, n)
		}
		if n := len(v.Edges); n < 2 || n > 3 {
			return errors.Wrapf(ErrInvariant, "vertex %d has degree %d", v.ID, n)
		}
		if t.neighbors[v.ID].Size() != len(v.Edges) {
			return errors.Wrapf(ErrInvariant, "vertex %d: %d neighbours for %d edges", v.ID, t.neighbors[v.ID].Size(), len(v.Edges))
		}
	}
	return nil
}

func contains(s []int, x int) bool {
	for _, y := range s {
		if y == x {
			return true
		}
	}
	return false
}
