// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge accessors, endpoint navigation and weight ordering.
// Determinism:
//   - CompareEdges orders by weight only; ties compare as 0.
//   - SortEdgesByWeight is stable: ties keep their input order.

package core

import (
	"cmp"
	"fmt"
	"slices"
)

// Either returns one endpoint of the edge: always v.
// Complexity: O(1).
func (e *Edge) Either() int { return e.v }

// Other returns the endpoint of the edge that is not vertex.
// For a self-loop Other(v) returns v.
//
// Errors:
//   - ErrInvalidEndpoint: vertex is neither endpoint.
//
// Complexity: O(1).
func (e *Edge) Other(vertex int) (int, error) {
	switch vertex {
	case e.v:
		return e.w, nil
	case e.w:
		return e.v, nil
	default:
		return 0, fmt.Errorf("%w: %d not in {%d, %d}", ErrInvalidEndpoint, vertex, e.v, e.w)
	}
}

// Weight returns the weight of the connection.
func (e *Edge) Weight() float64 { return e.weight }

// Compass returns the direction tag of the edge.
func (e *Edge) Compass() rune { return e.compass }

// IsSelfLoop reports whether both endpoints are the same vertex.
func (e *Edge) IsSelfLoop() bool { return e.v == e.w }

// String renders the edge as "v-w weight compass", e.g. "1-2 5.00 N".
func (e *Edge) String() string {
	return fmt.Sprintf("%d-%d %.2f %c", e.v, e.w, e.weight, e.compass)
}

// CompareEdges orders two edges by weight: -1 if a is lighter, +1 if heavier,
// 0 on equal weight regardless of endpoints.
//
// This is an ordering contract, not equality: identity equality of edges is
// pointer comparison. Callers needing a deterministic total order must add a
// secondary key.
//
// Complexity: O(1).
func CompareEdges(a, b *Edge) int {
	return cmp.Compare(a.weight, b.weight)
}

// SortEdgesByWeight sorts edges in place by ascending weight using CompareEdges.
// The sort is stable.
//
// Complexity: O(E log E).
func SortEdgesByWeight(edges []*Edge) {
	slices.SortStableFunc(edges, CompareEdges)
}
