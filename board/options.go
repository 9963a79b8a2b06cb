// SPDX-License-Identifier: MIT
// Package: hexboard/board
//
// options.go — functional options for New.
//
// Contract:
//   • Option constructors panic on nil inputs; New itself never panics on
//     caller input.
//   • Randomness is explicit: WithSeed, WithRand or WithSource. Without one
//     the board uses resource.NewRand(0), which is reproducible.

package board

import (
	"math/rand"

	"github.com/katalvlaran/hexboard/resource"
	"github.com/katalvlaran/hexboard/topology"
)

// Option customizes board construction.
type Option func(*config)

type config struct {
	table [][]int
	src   resource.Source
}

func defaultConfig() config {
	return config{
		table: topology.StandardIncidence(),
		src:   resource.NewRand(0),
	}
}

// WithSeed draws the assignment from a deterministic source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.src = resource.NewRand(seed) }
}

// WithRand draws the assignment from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("board: WithRand(nil)")
	}
	return func(c *config) { c.src = r }
}

// WithSource draws the assignment from any resource.Source. Panics on nil.
func WithSource(src resource.Source) Option {
	if src == nil {
		panic("board: WithSource(nil)")
	}
	return func(c *config) { c.src = src }
}

// WithIncidence replaces the standard incidence table. The table must still
// describe the standard 19/54/72 board with one winding for every tile.
// Panics on nil.
func WithIncidence(table [][]int) Option {
	if table == nil {
		panic("board: WithIncidence(nil)")
	}
	return func(c *config) { c.table = table }
}
