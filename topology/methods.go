// File: methods.go
// Role: Read-only lookups over a built Topology.
//
// Lookup misses are reported as (nil, false); nothing here allocates arena
// entries or mutates indexes. Returned pointers alias the arena and must be
// treated as read-only.
package topology

// Tile returns the tile with the given id.
func (t *Topology) Tile(id int) (*Tile, bool) {
	if id < 0 || id >= len(t.tiles) {
		return nil, false
	}
	return &t.tiles[id], true
}

// Vertex returns the vertex with the given id.
func (t *Topology) Vertex(id int) (*Vertex, bool) {
	if id < 0 || id >= len(t.vertices) {
		return nil, false
	}
	return &t.vertices[id], true
}

// Edge returns the edge with the given id.
func (t *Topology) Edge(id int) (*Edge, bool) {
	if id < 0 || id >= len(t.edges) {
		return nil, false
	}
	return &t.edges[id], true
}

// EdgeBetween returns the edge joining vertices a and b in either order.
func (t *Topology) EdgeBetween(a, b int) (*Edge, bool) {
	id, ok := t.edgeIndex[keyOf(a, b)]
	if !ok {
		return nil, false
	}
	return &t.edges[id], true
}

// Tiles returns every tile in id order.
func (t *Topology) Tiles() []*Tile {
	out := make([]*Tile, len(t.tiles))
	for i := range t.tiles {
		out[i] = &t.tiles[i]
	}
	return out
}

// Vertices returns every vertex in id order.
func (t *Topology) Vertices() []*Vertex {
	out := make([]*Vertex, len(t.vertices))
	for i := range t.vertices {
		out[i] = &t.vertices[i]
	}
	return out
}

// Edges returns every edge in id order.
func (t *Topology) Edges() []*Edge {
	out := make([]*Edge, len(t.edges))
	for i := range t.edges {
		out[i] = &t.edges[i]
	}
	return out
}

// VertexCount returns the number of vertices.
func (t *Topology) VertexCount() int { return len(t.vertices) }

// VertexNeighbors returns the ids of vertices sharing an edge with id,
// ascending. ok is false for an unknown id.
func (t *Topology) VertexNeighbors(id int) ([]int, bool) {
	if id < 0 || id >= len(t.neighbors) {
		return nil, false
	}
	set := t.neighbors[id]
	out := make([]int, 0, set.Size())
	for _, v := range set.Values() {
		out = append(out, v.(int))
	}
	return out, true
}

// Adjacent reports whether vertices a and b share an edge.
func (t *Topology) Adjacent(a, b int) bool {
	if a < 0 || a >= len(t.neighbors) {
		return false
	}
	return t.neighbors[a].Contains(b)
}

// TileNeighbors returns the ids of tiles sharing a border with id, ascending.
func (t *Topology) TileNeighbors(id int) ([]int, bool) {
	tile, ok := t.Tile(id)
	if !ok {
		return nil, false
	}
	out := make([]int, 0, TileSides)
	for _, eid := range tile.Edges {
		for _, other := range t.edges[eid].Tiles {
			if other != id {
				out = appendUnique(out, other)
			}
		}
	}
	sortSmall(out)
	return out, true
}

// sortSmall is an insertion sort for slices of at most six ids.
func sortSmall(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
