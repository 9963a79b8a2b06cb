// SPDX-License-Identifier: MIT
//
// File: board.go
// Role: Board construction and entity lookups.
// Policy:
//   - All entities live in the topology arenas; Board adds resource and
//     number per tile and never copies vertices or edges.
//   - Lookup misses return (nil, false).

package board

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/katalvlaran/hexboard/geometry"
	"github.com/katalvlaran/hexboard/resource"
	"github.com/katalvlaran/hexboard/topology"
)

// ErrMixedWinding indicates incidence rows that do not all run the same way.
var ErrMixedWinding = errors.New("board: incidence rows mix clockwise and counter-clockwise order")

// Tile is a topology tile with its resource and number token.
type Tile struct {
	*topology.Tile
	Resource resource.Kind
	Number   int
}

// Board owns the topology and the resource assignment.
type Board struct {
	topo  *topology.Topology
	tiles []Tile

	desert int
	// byNumber[n] lists the tiles carrying token n.
	byNumber map[int][]int
}

// New builds a board.
//
// Errors:
//   - topology.ErrMalformedTable, topology.ErrVertexOutOfRange or
//     topology.ErrInvariant for a bad incidence table.
//   - ErrMixedWinding when tile rows disagree on orientation.
//   - resource errors from the assignment draw.
func New(opts ...Option) (*Board, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	topo, err := topology.Build(cfg.table)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "board: build topology")
	}
	if err := checkWinding(topo); err != nil {
		return nil, err
	}

	a, err := resource.Assign(topology.TileCount, cfg.src)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "board: assign resources")
	}

	b := &Board{
		topo:     topo,
		tiles:    make([]Tile, topology.TileCount),
		desert:   -1,
		byNumber: make(map[int][]int),
	}
	for id, t := range topo.Tiles() {
		b.tiles[id] = Tile{Tile: t, Resource: a.Kinds[id], Number: a.Numbers[id]}
		if a.Kinds[id] == resource.Desert {
			b.desert = id
			continue
		}
		b.byNumber[a.Numbers[id]] = append(b.byNumber[a.Numbers[id]], id)
	}

	b.mustHold()
	return b, nil
}

// MustNew is New that panics on error. Intended for examples and tools.
func MustNew(opts ...Option) *Board {
	b, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// checkWinding requires every tile polygon to have the same non-zero
// orientation under the geometry layouts.
func checkWinding(topo *topology.Topology) error {
	sign := 0
	for _, t := range topo.Tiles() {
		pts, ok := geometry.Polygon(t.Vertices[:])
		if !ok {
			return pkgerrors.Wrapf(ErrMixedWinding, "tile %d has no polygon", t.ID)
		}
		s := 1
		switch area := geometry.SignedArea(pts); {
		case area < 0:
			s = -1
		case area == 0:
			return pkgerrors.Wrapf(ErrMixedWinding, "tile %d is degenerate", t.ID)
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return pkgerrors.Wrapf(ErrMixedWinding, "tile %d", t.ID)
		}
	}
	return nil
}

// Topology returns the underlying topology.
func (b *Board) Topology() *topology.Topology { return b.topo }

// Tile returns tile id with its resource and number.
func (b *Board) Tile(id int) (*Tile, bool) {
	if id < 0 || id >= len(b.tiles) {
		return nil, false
	}
	return &b.tiles[id], true
}

// Vertex returns vertex id.
func (b *Board) Vertex(id int) (*topology.Vertex, bool) { return b.topo.Vertex(id) }

// Edge returns edge id.
func (b *Board) Edge(id int) (*topology.Edge, bool) { return b.topo.Edge(id) }

// EdgeBetween returns the edge joining vertices u and v.
func (b *Board) EdgeBetween(u, v int) (*topology.Edge, bool) { return b.topo.EdgeBetween(u, v) }

// Tiles returns every tile in id order.
func (b *Board) Tiles() []*Tile {
	out := make([]*Tile, len(b.tiles))
	for i := range b.tiles {
		out[i] = &b.tiles[i]
	}
	return out
}

// Vertices returns every vertex in id order.
func (b *Board) Vertices() []*topology.Vertex { return b.topo.Vertices() }

// Edges returns every edge in id order.
func (b *Board) Edges() []*topology.Edge { return b.topo.Edges() }

// Desert returns the desert tile.
func (b *Board) Desert() *Tile { return &b.tiles[b.desert] }

// TilesForRoll returns the tiles whose number token equals roll, in id
// order. A roll of 7 or any value without a token yields none.
func (b *Board) TilesForRoll(roll int) []*Tile {
	ids := b.byNumber[roll]
	out := make([]*Tile, len(ids))
	for i, id := range ids {
		out[i] = &b.tiles[id]
	}
	return out
}

// AdjacentTiles returns the tiles sharing a border with tile id.
func (b *Board) AdjacentTiles(id int) ([]*Tile, bool) {
	ids, ok := b.topo.TileNeighbors(id)
	if !ok {
		return nil, false
	}
	out := make([]*Tile, len(ids))
	for i, n := range ids {
		out[i] = &b.tiles[n]
	}
	return out, true
}
