// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/katalvlaran/beaconpath/core"
)

// Build assembles a Network.
//
// Implementation:
//   - Stage 1: Index places by id, rejecting duplicates.
//   - Stage 2: Index beacons by vertex id and unique id, rejecting nil,
//     negative, duplicate and too-large ids; track the highest id.
//   - Stage 3: Allocate a graph of highest id + 1 vertices.
//   - Stage 4: Register every beacon edge in beacon order, skipping value
//     duplicates when MirrorDedup is on.
//
// Complexity: O(B + P + E).
func Build(places []core.Place, beacons []*core.Beacon, opts ...Option) (*Network, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := &Network{
		beacons:   make(map[int]*core.Beacon, len(beacons)),
		byUnique:  make(map[string]*core.Beacon, len(beacons)),
		places:    slices.Clone(places),
		placeByID: make(map[string]core.Place, len(places)),
	}

	for _, p := range places {
		if _, dup := n.placeByID[p.ID()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicatePlace, p.ID())
		}
		n.placeByID[p.ID()] = p
	}

	maxID := -1
	for i, b := range beacons {
		if b == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilBeacon, i)
		}
		if b.ID() < 0 {
			return nil, fmt.Errorf("network: beacon %q: %w", b.UniqueID(), core.ErrNegativeVertex)
		}
		if b.ID() >= o.MaxVertices {
			return nil, fmt.Errorf("%w: %d >= %d", ErrVertexIDTooLarge, b.ID(), o.MaxVertices)
		}
		if _, dup := n.beacons[b.ID()]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateBeacon, b.ID())
		}
		n.beacons[b.ID()] = b
		if b.UniqueID() != "" {
			if _, dup := n.byUnique[b.UniqueID()]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateUniqueID, b.UniqueID())
			}
			n.byUnique[b.UniqueID()] = b
		}
		maxID = max(maxID, b.ID())
	}

	g, err := core.NewGraph(maxID + 1)
	if err != nil {
		return nil, err
	}
	n.graph = g

	registered := make(map[edgeKey]struct{})
	for _, b := range beacons {
		for e := range b.Edges() {
			if o.MirrorDedup {
				k := keyOf(e)
				if _, ok := registered[k]; ok {
					n.skipped++
					continue
				}
				registered[k] = struct{}{}
			}
			if err = g.AddEdge(e); err != nil {
				return nil, fmt.Errorf("network: beacon %d edge %s: %w", b.ID(), e, err)
			}
		}
	}

	o.Logger.Debug("network assembled",
		"vertices", g.VertexCount(),
		"beacons", len(n.beacons),
		"edges", g.EdgeCount(),
		"skipped_mirrors", n.skipped,
		"places", len(n.places),
	)

	return n, nil
}

// Graph returns the assembled graph. Treat it as read-only.
func (n *Network) Graph() *core.Graph { return n.graph }

// Beacon returns the beacon bound to vertex, if any. Vertex indices without a
// beacon exist when document ids are sparse.
func (n *Network) Beacon(vertex int) (*core.Beacon, bool) {
	b, ok := n.beacons[vertex]
	return b, ok
}

// BeaconByUniqueID returns the beacon with the given transmitter id.
func (n *Network) BeaconByUniqueID(uniqueID string) (*core.Beacon, bool) {
	b, ok := n.byUnique[uniqueID]
	return b, ok
}

// Beacons returns all beacons in ascending vertex order.
func (n *Network) Beacons() []*core.Beacon {
	ids := make([]int, 0, len(n.beacons))
	for id := range n.beacons {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]*core.Beacon, len(ids))
	for i, id := range ids {
		out[i] = n.beacons[id]
	}

	return out
}

// Places returns the place catalog in input order.
func (n *Network) Places() []core.Place { return slices.Clone(n.places) }

// PlaceNames returns the display names of all places, in input order.
func (n *Network) PlaceNames() []string {
	names := make([]string, len(n.places))
	for i, p := range n.places {
		names[i] = p.Name()
	}

	return names
}

// Place looks a place up by id.
func (n *Network) Place(id string) (core.Place, bool) {
	p, ok := n.placeByID[id]
	return p, ok
}

// PlacesNear resolves the near-place links of the beacon at vertex against the
// place catalog. Numeric link ids match place ids in decimal form; links that
// resolve to nothing are left out. Order follows the beacon's links.
func (n *Network) PlacesNear(vertex int) []core.Place {
	b, ok := n.beacons[vertex]
	if !ok {
		return nil
	}

	var out []core.Place
	for np := range b.NearPlaces() {
		if p, found := n.placeByID[strconv.Itoa(np.PlaceID)]; found {
			out = append(out, p)
		}
	}

	return out
}

// Summary returns the sizes of the network.
func (n *Network) Summary() Summary {
	s := Summary{
		Vertices:       n.graph.VertexCount(),
		Beacons:        len(n.beacons),
		Edges:          n.graph.EdgeCount(),
		SkippedMirrors: n.skipped,
		Places:         len(n.places),
	}
	for _, b := range n.beacons {
		s.NearPlaces += b.NearPlaceCount()
	}

	return s
}
