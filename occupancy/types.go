// SPDX-License-Identifier: MIT
// Package occupancy declares structures, claims and sentinel errors.
package occupancy

import (
	"errors"

	"github.com/google/uuid"
)

// Sentinel errors for ledger writes.
var (
	// ErrUnknownVertex indicates a vertex id outside the ledger's range.
	ErrUnknownVertex = errors.New("occupancy: unknown vertex")

	// ErrUnknownEdge indicates an edge id outside the ledger's range.
	ErrUnknownEdge = errors.New("occupancy: unknown edge")

	// ErrNoPlayer indicates a claim without an owning player.
	ErrNoPlayer = errors.New("occupancy: claim has no player")
)

// PlayerID identifies the owner of a claim.
type PlayerID = uuid.UUID

// NewPlayerID returns a fresh random player id.
func NewPlayerID() PlayerID { return uuid.New() }

// Structure is what stands on a vertex.
type Structure uint8

const (
	None Structure = iota
	Settlement
	City
)

func (s Structure) String() string {
	switch s {
	case None:
		return "none"
	case Settlement:
		return "settlement"
	case City:
		return "city"
	default:
		return "unknown"
	}
}

// Yield is the number of resource cards a structure collects per
// producing tile.
func (s Structure) Yield() int {
	switch s {
	case Settlement:
		return 1
	case City:
		return 2
	default:
		return 0
	}
}

// VertexClaim is a structure and its owner.
type VertexClaim struct {
	Structure Structure
	Player    PlayerID
}

// EdgeClaim is a road and its owner.
type EdgeClaim struct {
	Player PlayerID
}
