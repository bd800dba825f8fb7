// SPDX-License-Identifier: MIT

package docreader

import "github.com/katalvlaran/beaconpath/core"

// readPlaces reads <places> into a slice, in document order.
func (r *Reader) readPlaces(c *cursor) ([]core.Place, error) {
	if err := c.require(eventStart, tagPlaces); err != nil {
		return nil, err
	}

	places := []core.Place{}
	err := r.readChildren(c, handlers{
		tagPlace: func(c *cursor) error {
			p, err := r.readPlace(c)
			if err != nil {
				return err
			}
			places = append(places, p)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return places, nil
}

// readPlace reads one <place>: id and name are required.
func (r *Reader) readPlace(c *cursor) (core.Place, error) {
	if err := c.require(eventStart, tagPlace); err != nil {
		return core.Place{}, err
	}

	var id, name string
	got := seen{}
	err := r.readChildren(c, handlers{
		tagID:   stringField(got, tagID, &id),
		tagName: stringField(got, tagName, &name),
	})
	if err != nil {
		return core.Place{}, err
	}
	if err = got.requireAll(c, tagPlace, tagID, tagName); err != nil {
		return core.Place{}, err
	}

	return core.NewPlace(id, name), nil
}
