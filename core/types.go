// SPDX-License-Identifier: MIT
// Package core defines the Place, NearPlace, Edge, Beacon and Graph types,
// the sentinel errors shared by all graph operations, and the constructors.
//
// Errors:
//
//	ErrNegativeVertex     - edge endpoint is negative.
//	ErrInvalidWeight      - edge weight is NaN.
//	ErrInvalidEndpoint    - vertex is not an endpoint of the edge.
//	ErrInvalidVertexCount - negative vertex count.
//	ErrVertexOutOfRange   - vertex index outside the graph.
//	ErrNilEdge            - nil edge pointer.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertex indicates an edge endpoint below zero.
	ErrNegativeVertex = errors.New("core: vertex must be a nonnegative integer")

	// ErrInvalidWeight indicates a NaN edge weight.
	ErrInvalidWeight = errors.New("core: weight is NaN")

	// ErrInvalidEndpoint indicates Other() was called with a vertex that is neither endpoint.
	ErrInvalidEndpoint = errors.New("core: vertex is not an endpoint of the edge")

	// ErrInvalidVertexCount indicates a negative vertex count passed to NewGraph.
	ErrInvalidVertexCount = errors.New("core: number of vertices must be nonnegative")

	// ErrVertexOutOfRange indicates a vertex index outside [0, VertexCount()).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrNilEdge indicates a nil *Edge was passed where an edge is required.
	ErrNilEdge = errors.New("core: edge is nil")
)

// Place is a named physical location identified by a stable string id.
// Uniqueness of ID across a collection is the caller's responsibility.
type Place struct {
	id   string
	name string
}

// NewPlace returns a Place with the given id and display name.
func NewPlace(id, name string) Place {
	return Place{id: id, name: name}
}

// NearPlace is a proximity relation from a beacon to a nearby place.
//
// PlaceID is the numeric id of the target place, Distance the proximity
// distance and Compass the direction tag. NearPlace values are handled by
// pointer so that Beacon adjacency can deduplicate by identity.
type NearPlace struct {
	// PlaceID is the numeric id of the nearby place.
	PlaceID int

	// Distance is the proximity distance from the beacon.
	Distance float64

	// Compass is the single-character direction towards the place.
	Compass rune
}

// NewNearPlace allocates a NearPlace record. No validation is applied.
func NewNearPlace(placeID int, distance float64, compass rune) *NearPlace {
	return &NearPlace{PlaceID: placeID, Distance: distance, Compass: compass}
}

// Edge is an undirected, weighted connection between vertices v and w,
// tagged with a compass direction.
//
// Fields are unexported: an Edge cannot change once built, which keeps the
// weight ordering and adjacency invariants of every Graph holding it intact.
// To change a weight, build a new Edge.
type Edge struct {
	v       int
	w       int
	weight  float64
	compass rune
}

// NewEdge builds an Edge between v and w.
//
// Errors:
//   - ErrNegativeVertex: v < 0 or w < 0.
//   - ErrInvalidWeight: weight is NaN.
//
// Negative and infinite weights are accepted.
// Complexity: O(1).
func NewEdge(v, w int, weight float64, compass rune) (*Edge, error) {
	if v < 0 || w < 0 {
		return nil, ErrNegativeVertex
	}
	if math.IsNaN(weight) {
		return nil, ErrInvalidWeight
	}

	return &Edge{v: v, w: w, weight: weight, compass: compass}, nil
}

// Beacon is a graph vertex: a physical transmitter associated with a place.
//
// A Beacon owns its adjacency: incident edges and near-place links are kept in
// insertion order and deduplicated by pointer identity.
type Beacon struct {
	id        int
	uniqueID  string
	name      string
	namePlace string

	edges   []*Edge
	edgeSet map[*Edge]struct{}
	nears   []*NearPlace
	nearSet map[*NearPlace]struct{}
}

// NewBeacon returns a Beacon with empty adjacency. Fields are stored as given.
func NewBeacon(id int, uniqueID, name, namePlace string) *Beacon {
	return &Beacon{
		id:        id,
		uniqueID:  uniqueID,
		name:      name,
		namePlace: namePlace,
		edgeSet:   make(map[*Edge]struct{}),
		nearSet:   make(map[*NearPlace]struct{}),
	}
}

// Graph is an adjacency-list container over dense vertex indices.
//
// adjacency[v] holds every edge incident to v; a self-loop appears twice in
// its bucket. edgeCount counts AddEdge calls. The vertex count is fixed at
// construction; the graph only grows by edge insertion.
type Graph struct {
	vertexCount int
	edgeCount   int
	adjacency   [][]*Edge
}

// NewGraph allocates a Graph with vertexCount empty adjacency buckets.
//
// Errors:
//   - ErrInvalidVertexCount: vertexCount < 0.
//
// Complexity: O(V).
func NewGraph(vertexCount int) (*Graph, error) {
	if vertexCount < 0 {
		return nil, ErrInvalidVertexCount
	}

	g := &Graph{
		vertexCount: vertexCount,
		adjacency:   make([][]*Edge, vertexCount),
	}

	return g, nil
}
