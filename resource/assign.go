// SPDX-License-Identifier: MIT
package resource

import "github.com/pkg/errors"

// Assign draws a standard assignment for tileCount tiles.
// The resource permutation is drawn before the number permutation, both
// from src.
func Assign(tileCount int, src Source) (Assignment, error) {
	return AssignFrom(tileCount, StandardResources(), StandardNumbers(), src)
}

// AssignFrom draws an assignment from explicit multisets. Neither input
// slice is modified.
//
// Errors:
//   - ErrNilSource when src is nil.
//   - ErrMultisetSize when len(kinds) != tileCount or the number of tokens
//     differs from the number of kinds that consume one.
func AssignFrom(tileCount int, kinds []Kind, numbers []int, src Source) (Assignment, error) {
	if src == nil {
		return Assignment{}, ErrNilSource
	}
	if len(kinds) != tileCount {
		return Assignment{}, errors.Wrapf(ErrMultisetSize, "%d kinds for %d tiles", len(kinds), tileCount)
	}
	consumers := 0
	for _, k := range kinds {
		if ConsumesNumber(k) {
			consumers++
		}
	}
	if len(numbers) != consumers {
		return Assignment{}, errors.Wrapf(ErrMultisetSize, "%d numbers for %d numbered tiles", len(numbers), consumers)
	}

	order := append([]Kind(nil), kinds...)
	tokens := append([]int(nil), numbers...)
	Shuffle(order, src)
	Shuffle(tokens, src)

	return Assignment{Kinds: order, Numbers: Pair(order, tokens)}, nil
}

// Pair maps a kind sequence and a token sequence onto per-tile numbers.
// The token cursor advances only on kinds that consume a number; the rest
// get NoNumber. Pair panics if tokens runs out.
func Pair(kinds []Kind, tokens []int) []int {
	out := make([]int, len(kinds))
	next := 0
	for i, k := range kinds {
		if !ConsumesNumber(k) {
			out[i] = NoNumber
			continue
		}
		out[i] = tokens[next]
		next++
	}
	return out
}
