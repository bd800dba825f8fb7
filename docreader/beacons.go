// SPDX-License-Identifier: MIT

package docreader

import (
	"fmt"

	"github.com/katalvlaran/beaconpath/core"
)

// readBeacons reads <beacons> into a slice, in document order.
func (r *Reader) readBeacons(c *cursor) ([]*core.Beacon, error) {
	if err := c.require(eventStart, tagBeacons); err != nil {
		return nil, err
	}

	beacons := []*core.Beacon{}
	err := r.readChildren(c, handlers{
		tagBeacon: func(c *cursor) error {
			b, err := r.readBeacon(c)
			if err != nil {
				return err
			}
			beacons = append(beacons, b)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return beacons, nil
}

// readBeacon reads one <beacon>. The edges and nearPlaces collections are
// optional; an absent collection attaches nothing.
func (r *Reader) readBeacon(c *cursor) (*core.Beacon, error) {
	if err := c.require(eventStart, tagBeacon); err != nil {
		return nil, err
	}

	var (
		id                        int
		uniqueID, name, namePlace string
		edges                     []*core.Edge
		nears                     []*core.NearPlace
	)
	got := seen{}
	err := r.readChildren(c, handlers{
		tagID:        intField(got, tagID, &id),
		tagUniqueID:  stringField(got, tagUniqueID, &uniqueID),
		tagName:      stringField(got, tagName, &name),
		tagNamePlace: stringField(got, tagNamePlace, &namePlace),
		tagEdges: func(c *cursor) (err error) {
			edges, err = r.readEdges(c)
			return err
		},
		tagNearPlaces: func(c *cursor) (err error) {
			nears, err = r.readNearPlaces(c)
			return err
		},
	})
	if err != nil {
		return nil, err
	}
	if err = got.requireAll(c, tagBeacon, tagID, tagUniqueID, tagName, tagNamePlace); err != nil {
		return nil, err
	}

	b := core.NewBeacon(id, uniqueID, name, namePlace)
	for _, e := range edges {
		b.AddAdjacentEdge(e)
	}
	for _, np := range nears {
		b.AddAdjacentNearPlace(np)
	}

	return b, nil
}

// readEdges reads <edges> into a slice.
func (r *Reader) readEdges(c *cursor) ([]*core.Edge, error) {
	if err := c.require(eventStart, tagEdges); err != nil {
		return nil, err
	}

	var edges []*core.Edge
	err := r.readChildren(c, handlers{
		tagEdge: func(c *cursor) error {
			e, err := r.readEdge(c)
			if err != nil {
				return err
			}
			edges = append(edges, e)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return edges, nil
}

// readEdge reads one <edge>; all four leaves are required.
func (r *Reader) readEdge(c *cursor) (*core.Edge, error) {
	if err := c.require(eventStart, tagEdge); err != nil {
		return nil, err
	}

	var (
		v, w    int
		weight  float64
		compass rune
	)
	got := seen{}
	err := r.readChildren(c, handlers{
		tagV:       intField(got, tagV, &v),
		tagW:       intField(got, tagW, &w),
		tagWeight:  floatField(got, tagWeight, &weight),
		tagCompass: runeField(got, tagCompass, &compass),
	})
	if err != nil {
		return nil, err
	}
	if err = got.requireAll(c, tagEdge, tagV, tagW, tagWeight, tagCompass); err != nil {
		return nil, err
	}

	e, err := core.NewEdge(v, w, weight, compass)
	if err != nil {
		return nil, fmt.Errorf("docreader: %s: %w", c.where(), err)
	}

	return e, nil
}

// readNearPlaces reads <nearPlaces> into a slice.
func (r *Reader) readNearPlaces(c *cursor) ([]*core.NearPlace, error) {
	if err := c.require(eventStart, tagNearPlaces); err != nil {
		return nil, err
	}

	var nears []*core.NearPlace
	err := r.readChildren(c, handlers{
		tagNearPlace: func(c *cursor) error {
			np, err := r.readNearPlace(c)
			if err != nil {
				return err
			}
			nears = append(nears, np)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return nears, nil
}

// readNearPlace reads one <nearPlace>; all three leaves are required.
func (r *Reader) readNearPlace(c *cursor) (*core.NearPlace, error) {
	if err := c.require(eventStart, tagNearPlace); err != nil {
		return nil, err
	}

	var (
		placeID  int
		distance float64
		compass  rune
	)
	got := seen{}
	err := r.readChildren(c, handlers{
		tagIDPlace:           intField(got, tagIDPlace, &placeID),
		tagProximityDistance: floatField(got, tagProximityDistance, &distance),
		tagCompass:           runeField(got, tagCompass, &compass),
	})
	if err != nil {
		return nil, err
	}
	if err = got.requireAll(c, tagNearPlace, tagIDPlace, tagProximityDistance, tagCompass); err != nil {
		return nil, err
	}

	return core.NewNearPlace(placeID, distance, compass), nil
}
