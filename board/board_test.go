package board_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexboard/board"
	"github.com/katalvlaran/hexboard/geometry"
	"github.com/katalvlaran/hexboard/occupancy"
	"github.com/katalvlaran/hexboard/resource"
	"github.com/katalvlaran/hexboard/topology"
)

const eps = 1e-9

// stepSource yields (k*7) % n for the k-th call.
type stepSource struct{ k int }

func (s *stepSource) Intn(n int) int {
	v := (s.k * 7) % n
	s.k++
	return v
}

func TestNew_Counts(t *testing.T) {
	b, err := board.New(board.WithSeed(3))
	require.NoError(t, err)
	assert.Len(t, b.Tiles(), topology.TileCount)
	assert.Len(t, b.Vertices(), topology.VertexCount)
	assert.Len(t, b.Edges(), topology.EdgeCount)
}

// TestNew_Golden pins the full assignment for a scripted source.
func TestNew_Golden(t *testing.T) {
	b, err := board.New(board.WithSource(&stepSource{}))
	require.NoError(t, err)

	const (
		W = resource.Wood
		B = resource.Brick
		S = resource.Sheep
		H = resource.Wheat
		O = resource.Ore
		D = resource.Desert
	)
	wantKinds := []resource.Kind{B, W, B, S, S, S, D, O, O, H, H, W, W, O, H, B, H, S, W}
	wantNumbers := []int{3, 6, 4, 11, 8, 5, 0, 6, 4, 9, 3, 8, 10, 5, 12, 11, 9, 10, 2}

	var kinds []resource.Kind
	var numbers []int
	for _, tile := range b.Tiles() {
		kinds = append(kinds, tile.Resource)
		numbers = append(numbers, tile.Number)
	}
	assert.Equal(t, wantKinds, kinds)
	assert.Equal(t, wantNumbers, numbers)
	assert.Equal(t, 6, b.Desert().ID)

	ids := func(tiles []*board.Tile) []int {
		out := []int{}
		for _, tile := range tiles {
			out = append(out, tile.ID)
		}
		return out
	}
	assert.Equal(t, []int{1, 7}, ids(b.TilesForRoll(6)))
	assert.Equal(t, []int{18}, ids(b.TilesForRoll(2)))
	assert.Equal(t, []int{14}, ids(b.TilesForRoll(12)))
	assert.Empty(t, b.TilesForRoll(7))
}

func TestNew_SeedReproducible(t *testing.T) {
	a := board.MustNew(board.WithSeed(11))
	b := board.MustNew(board.WithRand(rand.New(rand.NewSource(11))))
	for id := 0; id < topology.TileCount; id++ {
		ta, _ := a.Tile(id)
		tb, _ := b.Tile(id)
		assert.Equal(t, ta.Resource, tb.Resource, "tile %d", id)
		assert.Equal(t, ta.Number, tb.Number, "tile %d", id)
	}

	def := board.MustNew()
	zero := board.MustNew(board.WithSeed(0))
	for id := 0; id < topology.TileCount; id++ {
		td, _ := def.Tile(id)
		tz, _ := zero.Tile(id)
		assert.Equal(t, td.Resource, tz.Resource)
		assert.Equal(t, td.Number, tz.Number)
	}
}

func TestNew_Multisets(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b := board.MustNew(board.WithSeed(seed))
		kinds := map[resource.Kind]int{}
		numbers := map[int]int{}
		deserts := 0
		for _, tile := range b.Tiles() {
			kinds[tile.Resource]++
			if tile.Number == resource.NoNumber {
				deserts++
				assert.Equal(t, resource.Desert, tile.Resource)
				continue
			}
			numbers[tile.Number]++
		}
		assert.Equal(t, 1, deserts)
		assert.Equal(t, map[resource.Kind]int{
			resource.Wood: 4, resource.Brick: 3, resource.Sheep: 4,
			resource.Wheat: 4, resource.Ore: 3, resource.Desert: 1,
		}, kinds)
		assert.Equal(t, map[int]int{
			2: 1, 3: 2, 4: 2, 5: 2, 6: 2, 8: 2, 9: 2, 10: 2, 11: 2, 12: 1,
		}, numbers)
	}
}

func TestNew_Errors(t *testing.T) {
	short := topology.StandardIncidence()[:5]
	_, err := board.New(board.WithIncidence(short))
	assert.ErrorIs(t, err, topology.ErrMalformedTable)

	bad := topology.StandardIncidence()
	bad[2][0] = 60
	_, err = board.New(board.WithIncidence(bad))
	assert.ErrorIs(t, err, topology.ErrVertexOutOfRange)

	mixed := topology.StandardIncidence()
	reverse(mixed[5])
	_, err = board.New(board.WithIncidence(mixed))
	assert.ErrorIs(t, err, board.ErrMixedWinding)

	assert.Panics(t, func() { board.WithRand(nil) })
	assert.Panics(t, func() { board.WithSource(nil) })
	assert.Panics(t, func() { board.WithIncidence(nil) })
	assert.Panics(t, func() { board.MustNew(board.WithIncidence(short)) })
}

// TestNew_CounterClockwise accepts a table that winds the other way for
// every tile.
func TestNew_CounterClockwise(t *testing.T) {
	ccw := topology.StandardIncidence()
	for _, row := range ccw {
		reverse(row)
	}
	b, err := board.New(board.WithIncidence(ccw))
	require.NoError(t, err)
	pts, ok := b.TilePolygon(0)
	require.True(t, ok)
	assert.Greater(t, geometry.SignedArea(pts), 0.0)
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

//----------------------------------------------------------------------------//
// Lookups and scenarios
//----------------------------------------------------------------------------//

func TestBoard_LookupMiss(t *testing.T) {
	b := board.MustNew()
	_, ok := b.Tile(-1)
	assert.False(t, ok)
	_, ok = b.Tile(topology.TileCount)
	assert.False(t, ok)
	_, ok = b.Vertex(topology.VertexCount)
	assert.False(t, ok)
	_, ok = b.Edge(topology.EdgeCount)
	assert.False(t, ok)
	_, ok = b.EdgeBetween(0, 9)
	assert.False(t, ok)
	_, _, ok = b.EdgeCoords(-1)
	assert.False(t, ok)
	_, ok = b.TilePolygon(19)
	assert.False(t, ok)
	_, ok = b.AdjacentTiles(19)
	assert.False(t, ok)
	_, ok = b.TileCoords(19)
	assert.False(t, ok)
	_, ok = b.VertexCoords(54)
	assert.False(t, ok)
}

// TestBoard_SharedEdgeIdentity: tiles 4 and 8 share border 19-20, and both
// resolve it to the same Edge object.
func TestBoard_SharedEdgeIdentity(t *testing.T) {
	b := board.MustNew(board.WithSeed(5))
	t4, _ := b.Tile(4)
	t8, _ := b.Tile(8)

	var fromA, fromB *topology.Edge
	for _, id := range t4.Edges {
		e, _ := b.Edge(id)
		if e.Has(19) && e.Has(20) {
			fromA = e
		}
	}
	for _, id := range t8.Edges {
		e, _ := b.Edge(id)
		if e.Has(19) && e.Has(20) {
			fromB = e
		}
	}
	require.NotNil(t, fromA)
	require.NotNil(t, fromB)
	assert.Same(t, fromA, fromB)
	assert.Equal(t, []int{4, 8}, fromA.Tiles)

	adj, ok := b.AdjacentTiles(4)
	require.True(t, ok)
	var adjIDs []int
	for _, tile := range adj {
		adjIDs = append(adjIDs, tile.ID)
	}
	assert.Contains(t, adjIDs, 8)
}

func TestBoard_PerimeterAndInterior(t *testing.T) {
	b := board.MustNew()
	v, _ := b.Vertex(26)
	assert.Equal(t, []int{11}, v.Tiles)
	assert.Len(t, v.Edges, 2)

	v, _ = b.Vertex(31)
	assert.Equal(t, []int{8, 9, 13}, v.Tiles)
	assert.Len(t, v.Edges, 3)

	nbrs, ok := b.VertexNeighbors(26)
	require.True(t, ok)
	assert.Equal(t, []int{25, 37}, nbrs)
	assert.True(t, b.Adjacent(26, 37))
}

// TestBoard_GeometryMatchesTopology checks every tile polygon against its
// centre and every edge length against the hex side.
func TestBoard_GeometryMatchesTopology(t *testing.T) {
	b := board.MustNew()
	for _, tile := range b.Tiles() {
		centre, ok := b.TileCoords(tile.ID)
		require.True(t, ok)
		pts, ok := b.TilePolygon(tile.ID)
		require.True(t, ok)
		c := geometry.Centroid(pts)
		assert.InDelta(t, centre.X, c.X, eps, "tile %d", tile.ID)
		assert.InDelta(t, centre.Y, c.Y, eps, "tile %d", tile.ID)
		for _, p := range pts {
			assert.InDelta(t, geometry.Circumradius, math.Hypot(p.X-centre.X, p.Y-centre.Y), eps)
		}
		assert.Less(t, geometry.SignedArea(pts), 0.0, "tile %d winds clockwise", tile.ID)
	}
	for _, e := range b.Edges() {
		from, to, ok := b.EdgeCoords(e.ID)
		require.True(t, ok)
		assert.InDelta(t, geometry.Circumradius, math.Hypot(to.X-from.X, to.Y-from.Y), eps, "edge %d", e.ID)
	}
}

func TestBoard_VertexDistances(t *testing.T) {
	b := board.MustNew()
	res, err := b.VertexDistances(0)
	require.NoError(t, err)
	assert.Len(t, res.Order, topology.VertexCount)
	assert.Equal(t, 1, res.Depth[8])
	assert.Equal(t, 2, res.Depth[9])
}

// TestBoard_LedgerIsolated checks that occupancy never touches topology.
func TestBoard_LedgerIsolated(t *testing.T) {
	b := board.MustNew()
	l := b.NewLedger()
	p := occupancy.NewPlayerID()
	require.NoError(t, l.SetVertex(9, occupancy.VertexClaim{Structure: occupancy.Settlement, Player: p}))
	require.NoError(t, l.SetEdge(71, occupancy.EdgeClaim{Player: p}))
	assert.ErrorIs(t, l.SetEdge(72, occupancy.EdgeClaim{Player: p}), occupancy.ErrUnknownEdge)

	v, _ := b.Vertex(9)
	assert.Equal(t, []int{0, 3, 4}, v.Tiles)
	assert.NoError(t, b.Topology().Validate())
}
