package board

import (
	"github.com/katalvlaran/hexboard/bfs"
	"github.com/katalvlaran/hexboard/geometry"
	"github.com/katalvlaran/hexboard/occupancy"
	"github.com/katalvlaran/hexboard/topology"
)

// TileCoords returns the centre of tile id.
func (b *Board) TileCoords(id int) (geometry.Point, bool) { return geometry.TileCoords(id) }

// VertexCoords returns the position of vertex id.
func (b *Board) VertexCoords(id int) (geometry.Point, bool) { return geometry.VertexCoords(id) }

// EdgeCoords returns the endpoint positions of edge id, lower vertex id first.
func (b *Board) EdgeCoords(id int) (from, to geometry.Point, ok bool) {
	e, ok := b.topo.Edge(id)
	if !ok {
		return geometry.Point{}, geometry.Point{}, false
	}
	from, _ = geometry.VertexCoords(e.A)
	to, _ = geometry.VertexCoords(e.B)
	return from, to, true
}

// TilePolygon returns the six corner positions of tile id in boundary order.
func (b *Board) TilePolygon(id int) ([]geometry.Point, bool) {
	t, ok := b.topo.Tile(id)
	if !ok {
		return nil, false
	}
	return geometry.Polygon(t.Vertices[:])
}

// VertexNeighbors returns the ids of vertices one edge away from id.
func (b *Board) VertexNeighbors(id int) ([]int, bool) { return b.topo.VertexNeighbors(id) }

// Adjacent reports whether vertices u and v share an edge.
func (b *Board) Adjacent(u, v int) bool { return b.topo.Adjacent(u, v) }

// VertexDistances runs a breadth-first search from vertex id over the
// board's edges.
func (b *Board) VertexDistances(id int, opts ...bfs.Option) (*bfs.Result, error) {
	return bfs.BFS(b.topo, id, opts...)
}

// NewLedger returns an empty occupancy ledger sized to this board.
func (b *Board) NewLedger() *occupancy.Ledger {
	return occupancy.NewLedger(topology.VertexCount, topology.EdgeCount)
}
