// SPDX-License-Identifier: MIT
// File: adjacency_list.go
// Role: Graph mutation and neighborhood queries over dense vertex buckets.
// Determinism:
//   - Neighbors(v) yields edges in insertion order.
//   - Edges() yields each edge once, bucket by bucket in ascending vertex order.

package core

import (
	"fmt"
	"iter"
)

// validateVertex returns ErrVertexOutOfRange unless 0 <= v < vertexCount.
func (g *Graph) validateVertex(v int) error {
	if v < 0 || v >= g.vertexCount {
		return fmt.Errorf("%w: vertex %d is not between 0 and %d", ErrVertexOutOfRange, v, g.vertexCount-1)
	}

	return nil
}

// AddEdge registers the undirected edge e in the buckets of both endpoints.
//
// Implementation:
//   - Stage 1: Reject nil (ErrNilEdge).
//   - Stage 2: Validate both endpoints against [0, VertexCount()).
//   - Stage 3: Append e to adjacency[v] and adjacency[w]; a self-loop lands twice in one bucket.
//   - Stage 4: Increment the edge counter by exactly one.
//
// Errors:
//   - ErrNilEdge, ErrVertexOutOfRange.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e *Edge) error {
	if e == nil {
		return ErrNilEdge
	}
	v := e.Either()
	w, _ := e.Other(v) // v is always an endpoint
	if err := g.validateVertex(v); err != nil {
		return err
	}
	if err := g.validateVertex(w); err != nil {
		return err
	}

	g.adjacency[v] = append(g.adjacency[v], e)
	g.adjacency[w] = append(g.adjacency[w], e)
	g.edgeCount++

	return nil
}

// Neighbors returns a lazy, re-iterable sequence of the edges incident to v.
// Each range over the sequence walks the current bucket from the start, so
// edges added after the call are seen by later passes.
//
// Errors:
//   - ErrVertexOutOfRange: v outside [0, VertexCount()).
//
// Complexity: O(1) to build, O(deg(v)) per iteration.
func (g *Graph) Neighbors(v int) (iter.Seq[*Edge], error) {
	if err := g.validateVertex(v); err != nil {
		return nil, err
	}

	return func(yield func(*Edge) bool) {
		for _, e := range g.adjacency[v] {
			if !yield(e) {
				return
			}
		}
	}, nil
}

// Degree returns the number of bucket entries for v; a self-loop counts twice.
//
// Errors:
//   - ErrVertexOutOfRange: v outside [0, VertexCount()).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.validateVertex(v); err != nil {
		return 0, err
	}

	return len(g.adjacency[v]), nil
}

// Edges returns every registered edge exactly once.
//
// Implementation:
//   - Walk buckets in ascending vertex order.
//   - A non-loop edge is emitted from bucket v only when Other(v) > v.
//   - A self-loop occupies two consecutive slots of its bucket; only the
//     even-indexed occurrence (0th, 2nd, ...) is emitted.
//
// Complexity: O(V + E).
func (g *Graph) Edges() []*Edge {
	out := make([]*Edge, 0, g.edgeCount)
	var (
		e         *Edge
		other     int
		selfLoops int
	)
	for v := 0; v < g.vertexCount; v++ {
		selfLoops = 0
		for _, e = range g.adjacency[v] {
			other, _ = e.Other(v) // every edge in bucket v has v as an endpoint
			if other > v {
				out = append(out, e)
			} else if other == v {
				if selfLoops%2 == 0 {
					out = append(out, e)
				}
				selfLoops++
			}
		}
	}

	return out
}
