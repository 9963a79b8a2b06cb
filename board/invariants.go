package board

import (
	"fmt"

	"github.com/katalvlaran/hexboard/resource"
	"github.com/katalvlaran/hexboard/topology"
)

// mustHold panics if the assembled board breaks a structural or
// assignment invariant. Reaching the panic means a fixed table is wrong.
func (b *Board) mustHold() {
	if err := b.topo.Validate(); err != nil {
		panic(err)
	}
	if len(b.tiles) != topology.TileCount {
		panic(fmt.Sprintf("board: %d tiles", len(b.tiles)))
	}

	kinds := make(map[resource.Kind]int)
	for _, k := range resource.StandardResources() {
		kinds[k]++
	}
	numbers := make(map[int]int)
	for _, n := range resource.StandardNumbers() {
		numbers[n]++
	}

	for _, t := range b.tiles {
		kinds[t.Resource]--
		switch {
		case t.Resource == resource.Desert && t.Number != resource.NoNumber:
			panic(fmt.Sprintf("board: desert tile %d has number %d", t.ID, t.Number))
		case t.Resource != resource.Desert && t.Number == resource.NoNumber:
			panic(fmt.Sprintf("board: tile %d has no number", t.ID))
		case t.Resource != resource.Desert:
			numbers[t.Number]--
		}
	}
	for k, n := range kinds {
		if n != 0 {
			panic(fmt.Sprintf("board: resource %s off by %d", k, -n))
		}
	}
	for v, n := range numbers {
		if n != 0 {
			panic(fmt.Sprintf("board: number %d off by %d", v, -n))
		}
	}
	if b.desert < 0 {
		panic("board: no desert tile")
	}
}
