// Package bfs runs breadth-first search over the vertex adjacency of a
// board, returning hop distances, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing hop count from a start vertex.
//   - Result holds Order, Depth (vertex → hops) and Parent (vertex →
//     predecessor). PathTo rebuilds a shortest vertex path.
//   - Hooks: OnVisit (may abort with an error). Neighbour filtering via
//     WithFilterNeighbor, for example to walk only a player's roads.
//   - MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Determinism
//
//	Graph.VertexNeighbors returns ids ascending and neighbours are enqueued
//	in that order, so the visit sequence is reproducible.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(topo, 0, bfs.WithMaxDepth(2))
//	if err != nil {
//		// ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation,
//		// context errors or a wrapped OnVisit error
//	}
//	hops := res.Depth[9]
package bfs
