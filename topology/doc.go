// Package topology builds the fixed tile/vertex/edge graph of a standard
// 19-hex board from a tile→vertex incidence table.
//
// What:
//
//   - Tiles (19), vertices (54) and edges (72) stored in flat arenas owned by
//     a single Topology value. Every cross reference is an int id.
//   - Adjacency is discovered from the incidence table: each tile walks its
//     six boundary vertices cyclically, and consecutive pairs resolve to an
//     existing edge through a pair→edge index or create a new one.
//     First touch wins, so a border shared by two tiles is one Edge.
//   - Vertex neighbour sets are kept sorted (gods treeset) for deterministic
//     iteration.
//
// Errors:
//
//   - ErrMalformedTable: wrong row count or a row without exactly 6 ids.
//   - ErrVertexOutOfRange: a vertex id outside [0, vertexCount).
//   - ErrInvariant: Validate found a broken structural invariant.
//
// Complexity:
//
//   - Build: O(T) with T = number of tiles (constant for the standard board).
//   - Lookups: O(1); VertexNeighbors: O(d) with d ≤ 3.
//
// A Topology is immutable after Build and safe for concurrent readers.
package topology
