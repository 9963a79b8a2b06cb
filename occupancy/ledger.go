// SPDX-License-Identifier: MIT
//
// File: ledger.go
// Role: Id-keyed claim storage for vertices and edges.
//
// Concurrency:
//   - mu guards both maps; readers take RLock.

package occupancy

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

// Ledger maps vertex and edge ids to claims.
type Ledger struct {
	mu sync.RWMutex

	vertexCount int
	edgeCount   int

	vertices map[int]VertexClaim
	edges    map[int]EdgeClaim
}

// NewLedger returns an empty ledger accepting vertex ids in
// [0, vertexCount) and edge ids in [0, edgeCount).
func NewLedger(vertexCount, edgeCount int) *Ledger {
	return &Ledger{
		vertexCount: vertexCount,
		edgeCount:   edgeCount,
		vertices:    make(map[int]VertexClaim),
		edges:       make(map[int]EdgeClaim),
	}
}

// SetVertex records c on vertex id, replacing any previous claim.
// A claim with Structure None clears the vertex.
func (l *Ledger) SetVertex(id int, c VertexClaim) error {
	if id < 0 || id >= l.vertexCount {
		return errors.Wrapf(ErrUnknownVertex, "vertex %d", id)
	}
	if c.Structure == None {
		l.ClearVertex(id)
		return nil
	}
	if c.Player == (PlayerID{}) {
		return errors.Wrapf(ErrNoPlayer, "vertex %d", id)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.vertices[id] = c
	return nil
}

// SetEdge records c on edge id, replacing any previous claim.
func (l *Ledger) SetEdge(id int, c EdgeClaim) error {
	if id < 0 || id >= l.edgeCount {
		return errors.Wrapf(ErrUnknownEdge, "edge %d", id)
	}
	if c.Player == (PlayerID{}) {
		return errors.Wrapf(ErrNoPlayer, "edge %d", id)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.edges[id] = c
	return nil
}

// ClearVertex removes any claim on vertex id.
func (l *Ledger) ClearVertex(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.vertices, id)
}

// ClearEdge removes any claim on edge id.
func (l *Ledger) ClearEdge(id int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.edges, id)
}

// Vertex returns the claim on vertex id.
func (l *Ledger) Vertex(id int) (VertexClaim, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.vertices[id]
	return c, ok
}

// Edge returns the claim on edge id.
func (l *Ledger) Edge(id int) (EdgeClaim, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	c, ok := l.edges[id]
	return c, ok
}

// VerticesOf returns the vertex ids claimed by p, ascending.
func (l *Ledger) VerticesOf(p PlayerID) []int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := []int{}
	for id, c := range l.vertices {
		if c.Player == p {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}

// EdgesOf returns the edge ids claimed by p, ascending.
func (l *Ledger) EdgesOf(p PlayerID) []int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := []int{}
	for id, c := range l.edges {
		if c.Player == p {
			out = append(out, id)
		}
	}
	sort.Ints(out)
	return out
}

// Reset removes every claim.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.vertices = make(map[int]VertexClaim)
	l.edges = make(map[int]EdgeClaim)
}
