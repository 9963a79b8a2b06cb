// SPDX-License-Identifier: MIT
// Package resource declares resource kinds, the fixed multisets, the Source
// abstraction and sentinel errors.
package resource

import "errors"

// Sentinel errors for assignment.
var (
	// ErrNilSource indicates Assign was called with a nil Source.
	ErrNilSource = errors.New("resource: source is nil")

	// ErrMultisetSize indicates a multiset does not fit the tile count.
	ErrMultisetSize = errors.New("resource: multiset size mismatch")
)

// Kind is the resource produced by a tile.
type Kind uint8

const (
	Wood Kind = iota
	Brick
	Sheep
	Wheat
	Ore
	Desert
)

// NoNumber is the token value carried by the desert.
const NoNumber = 0

// kinds lists every Kind in declaration order.
var kinds = [...]Kind{Wood, Brick, Sheep, Wheat, Ore, Desert}

var kindNames = [...]string{
	Wood:   "WOOD",
	Brick:  "BRICK",
	Sheep:  "SHEEP",
	Wheat:  "WHEAT",
	Ore:    "ORE",
	Desert: "DESERT",
}

// kindColors are the fill colours used when a board is drawn.
var kindColors = [...]string{
	Wood:   "forestgreen",
	Brick:  "firebrick",
	Sheep:  "greenyellow",
	Wheat:  "gold",
	Ore:    "silver",
	Desert: "lightyellow",
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind { return append([]Kind(nil), kinds[:]...) }

// String returns the upper-case name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// Color returns the display colour name of k.
func (k Kind) Color() string {
	if int(k) < len(kindColors) {
		return kindColors[k]
	}
	return "black"
}

// ConsumesNumber reports whether a tile of kind k takes a number token.
func ConsumesNumber(k Kind) bool { return k != Desert }

// standardCounts is the resource multiset of the standard board.
var standardCounts = map[Kind]int{
	Wood:   4,
	Brick:  3,
	Sheep:  4,
	Wheat:  4,
	Ore:    3,
	Desert: 1,
}

// standardNumbers is the number-token multiset of the standard board.
var standardNumbers = [...]int{2, 3, 3, 4, 4, 5, 5, 6, 6, 8, 8, 9, 9, 10, 10, 11, 11, 12}

// StandardResources returns the 19-entry resource multiset in Kind order.
func StandardResources() []Kind {
	out := make([]Kind, 0, 19)
	for _, k := range kinds {
		for i := 0; i < standardCounts[k]; i++ {
			out = append(out, k)
		}
	}
	return out
}

// StandardNumbers returns the 18 number tokens in ascending order.
func StandardNumbers() []int { return append([]int(nil), standardNumbers[:]...) }

// Source is the randomness consumed by Shuffle and Assign.
// *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform value in [0, n); n > 0.
	Intn(n int) int
}

// Assignment is the outcome of one draw: Kinds[i] and Numbers[i] belong to
// tile i. Numbers[i] == NoNumber exactly when Kinds[i] == Desert.
type Assignment struct {
	Kinds   []Kind
	Numbers []int
}

// Desert returns the id of the desert tile, or -1 if there is none.
func (a Assignment) Desert() int {
	for i, k := range a.Kinds {
		if k == Desert {
			return i
		}
	}
	return -1
}
