// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only accessors for Graph, Place and Beacon, plus Beacon adjacency mutation.
// Policy:
//   - No algorithms here.
//   - Beacon adjacency is deduplicated by pointer identity, never by value.

package core

import "iter"

// VertexCount returns the fixed number of vertices.
func (g *Graph) VertexCount() int { return g.vertexCount }

// EdgeCount returns the number of AddEdge calls that succeeded.
func (g *Graph) EdgeCount() int { return g.edgeCount }

// ID returns the stable place identifier.
func (p Place) ID() string { return p.id }

// Name returns the display name of the place.
func (p Place) Name() string { return p.name }

// ID returns the beacon's vertex id.
func (b *Beacon) ID() int { return b.id }

// UniqueID returns the transmitter identifier.
func (b *Beacon) UniqueID() string { return b.uniqueID }

// Name returns the display name of the beacon.
func (b *Beacon) Name() string { return b.name }

// NamePlace returns the name of the place the beacon is bound to.
func (b *Beacon) NamePlace() string { return b.namePlace }

// AddAdjacentEdge attaches e unless the same pointer is already attached.
// Distinct Edge values with identical fields are separate entries. nil is ignored.
//
// Complexity: O(1) amortized.
func (b *Beacon) AddAdjacentEdge(e *Edge) {
	if e == nil {
		return
	}
	if b.edgeSet == nil {
		b.edgeSet = make(map[*Edge]struct{})
	}
	if _, ok := b.edgeSet[e]; ok {
		return
	}
	b.edgeSet[e] = struct{}{}
	b.edges = append(b.edges, e)
}

// AddAdjacentNearPlace attaches np unless the same pointer is already attached.
// nil is ignored.
func (b *Beacon) AddAdjacentNearPlace(np *NearPlace) {
	if np == nil {
		return
	}
	if b.nearSet == nil {
		b.nearSet = make(map[*NearPlace]struct{})
	}
	if _, ok := b.nearSet[np]; ok {
		return
	}
	b.nearSet[np] = struct{}{}
	b.nears = append(b.nears, np)
}

// Edges yields attached edges in insertion order.
func (b *Beacon) Edges() iter.Seq[*Edge] {
	return func(yield func(*Edge) bool) {
		for _, e := range b.edges {
			if !yield(e) {
				return
			}
		}
	}
}

// NearPlaces yields attached near-place links in insertion order.
func (b *Beacon) NearPlaces() iter.Seq[*NearPlace] {
	return func(yield func(*NearPlace) bool) {
		for _, np := range b.nears {
			if !yield(np) {
				return
			}
		}
	}
}

// EdgeCount returns the number of distinct attached edges.
func (b *Beacon) EdgeCount() int { return len(b.edges) }

// NearPlaceCount returns the number of distinct attached near-place links.
func (b *Beacon) NearPlaceCount() int { return len(b.nears) }
