// SPDX-License-Identifier: MIT
// Package core_test verifies Edge construction, endpoint navigation and weight ordering.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beaconpath/core"
)

func TestNewEdge_Validation(t *testing.T) {
	cases := []struct {
		name    string
		v, w    int
		weight  float64
		wantErr error
	}{
		{"valid", V1, V2, Weight5, nil},
		{"self-loop", V3, V3, Weight1, nil},
		{"negative weight accepted", V0, V1, -2.5, nil},
		{"infinite weight accepted", V0, V1, math.Inf(1), nil},
		{"negative v", -1, V2, Weight1, core.ErrNegativeVertex},
		{"negative w", V1, -7, Weight1, core.ErrNegativeVertex},
		{"NaN weight", V1, V2, nan, core.ErrInvalidWeight},
		{"NaN weight on loop", V0, V0, nan, core.ErrInvalidWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := core.NewEdge(tc.v, tc.w, tc.weight, North)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.weight, e.Weight())
			assert.Equal(t, rune(North), e.Compass())
		})
	}
}

func TestEdge_EitherOther(t *testing.T) {
	pairs := [][2]int{{V0, V1}, {V1, V2}, {V4, V2}, {V3, V3}, {10, 0}}
	for _, p := range pairs {
		e := mustEdge(t, p[0], p[1], Weight2, East)

		assert.Equal(t, p[0], e.Either())

		w, err := e.Other(p[0])
		require.NoError(t, err)
		assert.Equal(t, p[1], w)

		v, err := e.Other(p[1])
		require.NoError(t, err)
		assert.Equal(t, p[0], v)
	}
}

func TestEdge_OtherInvalidEndpoint(t *testing.T) {
	e := mustEdge(t, V1, V2, Weight1, South)

	_, err := e.Other(V3)
	assert.ErrorIs(t, err, core.ErrInvalidEndpoint)
}

func TestEdge_SelfLoopAndString(t *testing.T) {
	loop := mustEdge(t, V3, V3, Weight1, East)
	plain := mustEdge(t, V1, V2, Weight5, North)

	assert.True(t, loop.IsSelfLoop())
	assert.False(t, plain.IsSelfLoop())
	assert.Equal(t, "1-2 5.00 N", plain.String())
}

func TestCompareEdges(t *testing.T) {
	light := mustEdge(t, V0, V1, Weight1, North)
	heavy := mustEdge(t, V2, V3, Weight3, North)
	tieA := mustEdge(t, V0, V1, Weight2, North)
	tieB := mustEdge(t, V3, V4, Weight2, West)

	assert.Equal(t, -1, core.CompareEdges(light, heavy))
	assert.Equal(t, 1, core.CompareEdges(heavy, light))
	assert.Equal(t, 0, core.CompareEdges(tieA, tieB), "equal weight compares equal regardless of endpoints")
	assert.NotSame(t, tieA, tieB, "ordering equality is not identity")
}

func TestSortEdgesByWeight(t *testing.T) {
	e3 := mustEdge(t, V0, V1, Weight3, North)
	e1 := mustEdge(t, V1, V2, Weight1, North)
	e2 := mustEdge(t, V2, V3, Weight2, North)

	edges := []*core.Edge{e3, e1, e2}
	core.SortEdgesByWeight(edges)

	got := make([]float64, len(edges))
	for i, e := range edges {
		got[i] = e.Weight()
	}
	assert.Equal(t, []float64{Weight1, Weight2, Weight3}, got)
}

func TestSortEdgesByWeight_StableTies(t *testing.T) {
	a := mustEdge(t, V0, V1, Weight2, North)
	b := mustEdge(t, V2, V3, Weight2, South)
	c := mustEdge(t, V1, V4, Weight1, East)

	edges := []*core.Edge{a, b, c}
	core.SortEdgesByWeight(edges)

	require.Len(t, edges, 3)
	assert.Same(t, c, edges[0])
	assert.Same(t, a, edges[1])
	assert.Same(t, b, edges[2])
}

func TestPlaceAndNearPlace(t *testing.T) {
	p := core.NewPlace("p1", "Lobby")
	assert.Equal(t, "p1", p.ID())
	assert.Equal(t, "Lobby", p.Name())

	np := core.NewNearPlace(7, 2.5, West)
	assert.Equal(t, 7, np.PlaceID)
	assert.Equal(t, 2.5, np.Distance)
	assert.Equal(t, rune(West), np.Compass)
}
