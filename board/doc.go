// Package board is the composition root of a standard 19-hex board.
//
// New builds the topology from the incidence table, draws the resource and
// number assignment from a seeded source, checks that every tile polygon
// winds the same way, and then exposes read-only lookups:
//
//	b, err := board.New(board.WithSeed(7))
//	tile, ok := b.Tile(9)           // resource, number, vertex and edge ids
//	p, _ := b.VertexCoords(tile.Vertices[0])
//	nbrs, _ := b.VertexNeighbors(9)
//
// Construction either completes or returns an error; no partially built
// Board is ever observable. A structural invariant failing after a
// successful build is a bug in the fixed tables and panics.
//
// A Board is immutable and safe to share between goroutines. Occupancy is
// kept outside the board in an occupancy.Ledger (see NewLedger).
package board
