// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for lvlath-style core tests.

package core_test

import (
	"iter"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beaconpath/core"
)

// Common vertex indices used across core tests.
const (
	V0 = 0
	V1 = 1
	V2 = 2
	V3 = 3
	V4 = 4
)

// Common weights used across core tests.
const (
	Weight1 = 1.0
	Weight2 = 2.0
	Weight3 = 3.0
	Weight5 = 5.0
)

// Compass tags.
const (
	North = 'N'
	East  = 'E'
	South = 'S'
	West  = 'W'
)

var nan = math.NaN()

// mustEdge builds an edge or fails the test immediately.
func mustEdge(t testing.TB, v, w int, weight float64, compass rune) *core.Edge {
	t.Helper()
	e, err := core.NewEdge(v, w, weight, compass)
	require.NoError(t, err, "NewEdge(%d,%d,%v,%c)", v, w, weight, compass)

	return e
}

// mustGraph builds an n-vertex graph or fails the test immediately.
func mustGraph(t testing.TB, n int) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err, "NewGraph(%d)", n)

	return g
}

// collect drains a sequence into a slice.
func collect[T any](seq iter.Seq[T]) []T {
	var out []T
	for x := range seq {
		out = append(out, x)
	}

	return out
}
