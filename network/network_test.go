// SPDX-License-Identifier: MIT

package network_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beaconpath/core"
	"github.com/katalvlaran/beaconpath/network"
)

func edge(t *testing.T, v, w int, weight float64, compass rune) *core.Edge {
	t.Helper()
	e, err := core.NewEdge(v, w, weight, compass)
	require.NoError(t, err)

	return e
}

// corridor builds beacons 0-1-2 where each corridor is listed under both
// endpoints as separate instances, as a parsed document produces them.
func corridor(t *testing.T) ([]core.Place, []*core.Beacon) {
	places := []core.Place{
		core.NewPlace("7", "Lobby"),
		core.NewPlace("8", "Library"),
		core.NewPlace("lab", "Lab"),
	}

	b0 := core.NewBeacon(0, "u0", "Entrance", "Lobby")
	b1 := core.NewBeacon(1, "u1", "Hall", "Lobby")
	b2 := core.NewBeacon(2, "u2", "Stacks", "Library")

	b0.AddAdjacentEdge(edge(t, 0, 1, 4, 'N'))
	b1.AddAdjacentEdge(edge(t, 1, 0, 4, 'N'))
	b1.AddAdjacentEdge(edge(t, 1, 2, 2, 'E'))
	b2.AddAdjacentEdge(edge(t, 2, 1, 2, 'E'))
	b2.AddAdjacentEdge(edge(t, 2, 2, 1, 'S'))

	b0.AddAdjacentNearPlace(core.NewNearPlace(7, 1.5, 'W'))
	b0.AddAdjacentNearPlace(core.NewNearPlace(99, 3, 'E'))
	b2.AddAdjacentNearPlace(core.NewNearPlace(8, 0.5, 'N'))

	return places, []*core.Beacon{b2, b0, b1}
}

func TestBuild_MirrorDedup(t *testing.T) {
	places, beacons := corridor(t)

	n, err := network.Build(places, beacons)
	require.NoError(t, err)

	g := n.Graph()
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Len(t, g.Edges(), 3)

	s := n.Summary()
	assert.Equal(t, network.Summary{
		Vertices:       3,
		Beacons:        3,
		Edges:          3,
		SkippedMirrors: 2,
		NearPlaces:     3,
		Places:         3,
	}, s)
}

func TestBuild_NoDedup(t *testing.T) {
	places, beacons := corridor(t)

	n, err := network.Build(places, beacons, network.WithMirrorDedup(false))
	require.NoError(t, err)
	assert.Equal(t, 5, n.Graph().EdgeCount())
	assert.Len(t, n.Graph().Edges(), 5)
}

func TestBuild_Lookups(t *testing.T) {
	places, beacons := corridor(t)
	n, err := network.Build(places, beacons)
	require.NoError(t, err)

	b, ok := n.Beacon(1)
	require.True(t, ok)
	assert.Equal(t, "Hall", b.Name())

	_, ok = n.Beacon(5)
	assert.False(t, ok)

	b, ok = n.BeaconByUniqueID("u2")
	require.True(t, ok)
	assert.Equal(t, 2, b.ID())

	ids := []int{}
	for _, b := range n.Beacons() {
		ids = append(ids, b.ID())
	}
	assert.Equal(t, []int{0, 1, 2}, ids)

	assert.Equal(t, []string{"Lobby", "Library", "Lab"}, n.PlaceNames())
	p, ok := n.Place("lab")
	require.True(t, ok)
	assert.Equal(t, "Lab", p.Name())

	near := n.PlacesNear(0)
	require.Len(t, near, 1, "unresolved place ids are left out")
	assert.Equal(t, "Lobby", near[0].Name())
	assert.Nil(t, n.PlacesNear(42))
}

func TestBuild_SparseIDs(t *testing.T) {
	b := core.NewBeacon(4, "u4", "Far", "Annex")
	b.AddAdjacentEdge(edge(t, 4, 0, 10, 'S'))

	n, err := network.Build(nil, []*core.Beacon{b})
	require.NoError(t, err)
	assert.Equal(t, 5, n.Graph().VertexCount())

	_, ok := n.Beacon(0)
	assert.False(t, ok, "vertex 0 exists in the graph without a beacon")
	deg, err := n.Graph().Degree(0)
	require.NoError(t, err)
	assert.Equal(t, 1, deg)
}

func TestBuild_Empty(t *testing.T) {
	n, err := network.Build(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n.Graph().VertexCount())
	assert.Empty(t, n.PlaceNames())
}

func TestBuild_Errors(t *testing.T) {
	t.Run("duplicate beacon", func(t *testing.T) {
		_, err := network.Build(nil, []*core.Beacon{
			core.NewBeacon(1, "a", "a", "x"),
			core.NewBeacon(1, "b", "b", "x"),
		})
		assert.ErrorIs(t, err, network.ErrDuplicateBeacon)
	})
	t.Run("duplicate unique id", func(t *testing.T) {
		_, err := network.Build(nil, []*core.Beacon{
			core.NewBeacon(0, "same", "a", "x"),
			core.NewBeacon(1, "same", "b", "x"),
		})
		assert.ErrorIs(t, err, network.ErrDuplicateUniqueID)
	})
	t.Run("duplicate place", func(t *testing.T) {
		_, err := network.Build([]core.Place{core.NewPlace("p", "A"), core.NewPlace("p", "B")}, nil)
		assert.ErrorIs(t, err, network.ErrDuplicatePlace)
	})
	t.Run("nil beacon", func(t *testing.T) {
		_, err := network.Build(nil, []*core.Beacon{nil})
		assert.ErrorIs(t, err, network.ErrNilBeacon)
	})
	t.Run("negative beacon id", func(t *testing.T) {
		_, err := network.Build(nil, []*core.Beacon{core.NewBeacon(-1, "a", "a", "x")})
		assert.ErrorIs(t, err, core.ErrNegativeVertex)
	})
	t.Run("id at max int", func(t *testing.T) {
		_, err := network.Build(nil, []*core.Beacon{core.NewBeacon(math.MaxInt, "a", "a", "x")})
		assert.ErrorIs(t, err, network.ErrVertexIDTooLarge)
		assert.NotErrorIs(t, err, core.ErrInvalidVertexCount)
	})
	t.Run("id just over default limit", func(t *testing.T) {
		_, err := network.Build(nil, []*core.Beacon{core.NewBeacon(network.DefaultMaxVertices, "a", "a", "x")})
		assert.ErrorIs(t, err, network.ErrVertexIDTooLarge)
	})
	t.Run("id over custom limit", func(t *testing.T) {
		_, err := network.Build(nil, []*core.Beacon{core.NewBeacon(8, "a", "a", "x")}, network.WithMaxVertices(8))
		assert.ErrorIs(t, err, network.ErrVertexIDTooLarge)
	})
	t.Run("edge beyond last beacon", func(t *testing.T) {
		b := core.NewBeacon(0, "a", "a", "x")
		b.AddAdjacentEdge(edge(t, 0, 3, 1, 'N'))
		_, err := network.Build(nil, []*core.Beacon{b})
		assert.ErrorIs(t, err, core.ErrVertexOutOfRange)
	})
}

func TestBuild_VertexLimit(t *testing.T) {
	n, err := network.Build(nil, []*core.Beacon{core.NewBeacon(7, "a", "a", "x")}, network.WithMaxVertices(8))
	require.NoError(t, err)
	assert.Equal(t, 8, n.Graph().VertexCount())
}

func TestBuild_Logs(t *testing.T) {
	places, beacons := corridor(t)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := network.Build(places, beacons, network.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "network assembled")
	assert.Contains(t, buf.String(), "skipped_mirrors=2")
}
