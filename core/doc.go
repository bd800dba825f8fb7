// SPDX-License-Identifier: MIT

// Package core provides the in-memory indoor-positioning graph: beacons bound to
// places, joined by undirected, weighted, compass-tagged edges, plus auxiliary
// "near place" proximity links.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are dense integer indices in [0, VertexCount()).
//   - Edges are undirected and carry a float64 weight and a compass rune.
//   - Every registered edge sits in the buckets of both endpoints;
//     a self-loop sits twice in the same bucket.
//   - EdgeCount() grows by exactly one per AddEdge call.
//   - The Graph holds no Beacon values; the vertex → Beacon mapping belongs to
//     whoever assembles the graph (see package network).
//
// Value types:
//
//	Place      {ID, Name}                               immutable
//	NearPlace  {PlaceID, Distance, Compass}             value record
//	Edge       {v, w, weight, compass}                  immutable after NewEdge
//	Beacon     {ID, UniqueID, Name, NamePlace, adj...}  identity-deduplicated adjacency
//
// Identity:
//
//	Beacon adjacency and Graph buckets store pointers. Two distinct *Edge values
//	with identical fields are different entries; the same pointer added twice
//	to a Beacon is a no-op.
//
// Ordering:
//
//	CompareEdges orders edges by weight only. Equal weights compare as 0 even
//	when endpoints differ, so sorts over it are not total over edge identity;
//	SortEdgesByWeight is stable and keeps insertion order among ties.
//
// Concurrency:
//
//	No internal synchronization. Build on one goroutine, then share read-only,
//	or guard externally.
//
// Errors:
//
//	ErrNegativeVertex      - edge endpoint below zero.
//	ErrInvalidWeight       - edge weight is NaN.
//	ErrInvalidEndpoint     - Other() called with a vertex that is not an endpoint.
//	ErrInvalidVertexCount  - NewGraph with a negative vertex count.
//	ErrVertexOutOfRange    - vertex index outside [0, VertexCount()).
//	ErrNilEdge             - nil edge passed to AddEdge.
package core
