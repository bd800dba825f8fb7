// Package beaconpath is an in-memory indoor-positioning graph: beacons bound to
// places, joined by undirected, weighted, compass-tagged corridors, built from
// a streaming XML document.
//
// Under the hood, everything is organized under a handful of subpackages:
//
//	core/      — Place, NearPlace, Edge, Beacon and Graph, plus sentinel errors
//	docreader/ — pull-style XML reader producing places and beacons
//	network/   — assembles a Graph from beacons; vertex → Beacon and place lookups
//	assets/    — opens plain or zstd documents, glob resolution, BLAKE3 fingerprints
//	config/    — YAML configuration for the CLI
//	cmd/       — beaconctl, the command-line front end
//
// Quick ASCII example:
//
//	[0 Entrance]──N 4.0──[1 Hall]──E 2.5──[2 Stacks]⟲ S 1.0
//
// represents three beacons, two corridors and one self-loop.
//
// Routing over the graph is not provided; Graph.Neighbors and Graph.Edges are
// the extension points for it.
//
//	go get github.com/katalvlaran/beaconpath
package beaconpath
