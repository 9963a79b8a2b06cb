// Package resource assigns resource kinds and number tokens to the tiles of
// a standard board.
//
// What:
//
//   - Kind enumerates WOOD, BRICK, SHEEP, WHEAT, ORE and DESERT.
//   - The resource multiset (4/3/4/4/3/1) and the 18 number tokens are fixed.
//   - Assign draws one permutation of each multiset from an injected Source
//     and walks tiles in id order. The number cursor only advances on tiles
//     whose kind ConsumesNumber, so the desert takes NoNumber and the 18
//     tokens land on exactly the 18 other tiles wherever the desert falls.
//
// Determinism:
//
//	Source is satisfied by *math/rand.Rand. NewRand(seed) maps seed 0 to a
//	fixed default, so every call path is reproducible. No placement quality
//	(e.g. 6/8 separation) is attempted.
//
// Errors:
//
//   - ErrNilSource: Assign called without a randomness source.
//   - ErrMultisetSize: a multiset does not match the tile count.
package resource
