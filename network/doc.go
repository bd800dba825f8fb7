// SPDX-License-Identifier: MIT

// Package network assembles a core.Graph from parsed beacons and owns the
// explicit vertex → Beacon mapping and the place catalog.
//
// What:
//
//   - Build sizes the graph to the highest beacon id + 1.
//   - Every edge attached to every beacon is registered in beacon order, then
//     edge order.
//   - With mirror dedup (default) an edge whose value key
//     (min endpoint, max endpoint, weight, compass) was already registered is
//     skipped: the same corridor listed under both of its beacons counts once.
//   - Lookups by vertex, by transmitter unique id, and by place id.
//
// Errors:
//
//   - ErrDuplicateBeacon: two beacons share an id.
//   - ErrDuplicatePlace:  two places share an id.
//   - ErrNilBeacon:       nil entry in the beacon slice.
//   - ErrDuplicateUniqueID: two beacons share a transmitter id.
//   - ErrVertexIDTooLarge:  a beacon id at or above the vertex limit
//     (DefaultMaxVertices unless WithMaxVertices is given).
//   - core.ErrNegativeVertex, core.ErrVertexOutOfRange (wrapped).
//
// A Network is immutable after Build and safe for concurrent reads.
package network
