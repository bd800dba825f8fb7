// SPDX-License-Identifier: MIT
// File: reader.go
// Role: Entry points, child-element dispatch, subtree skipping and leaf conversion.

package docreader

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/katalvlaran/beaconpath/core"
)

var defaultReader = New()

// ParsePlaces reads a <places> document with the default Reader.
func ParsePlaces(rc io.ReadCloser) ([]core.Place, error) {
	return defaultReader.ParsePlaces(rc)
}

// ParseBeacons reads a <beacons> document with the default Reader.
func ParseBeacons(rc io.ReadCloser) ([]*core.Beacon, error) {
	return defaultReader.ParseBeacons(rc)
}

// ParsePlaces reads every <place> of a <places> document, in document order.
//
// rc is closed exactly once before returning, whatever the outcome. A close
// failure is reported only when parsing itself succeeded.
//
// Errors:
//   - ErrNilStream, ErrStructuralMismatch, or a wrapped stream/close error.
func (r *Reader) ParsePlaces(rc io.ReadCloser) (places []core.Place, err error) {
	if rc == nil {
		return nil, ErrNilStream
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			places, err = nil, fmt.Errorf("docreader: close: %w", cerr)
		}
	}()

	c := newCursor(rc, r.charset)
	if err = c.nextTag(); err != nil {
		return nil, err
	}
	if places, err = r.readPlaces(c); err != nil {
		return nil, err
	}
	r.logger.Debug("parsed places", "count", len(places))

	return places, nil
}

// ParseBeacons reads every <beacon> of a <beacons> document, in document order,
// with their edges and near places attached.
//
// rc is closed exactly once before returning, whatever the outcome.
//
// Errors:
//   - ErrNilStream, ErrStructuralMismatch, ErrMalformedValue, ErrEmptyValue,
//     core.ErrNegativeVertex, core.ErrInvalidWeight, or a wrapped stream/close error.
func (r *Reader) ParseBeacons(rc io.ReadCloser) (beacons []*core.Beacon, err error) {
	if rc == nil {
		return nil, ErrNilStream
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			beacons, err = nil, fmt.Errorf("docreader: close: %w", cerr)
		}
	}()

	c := newCursor(rc, r.charset)
	if err = c.nextTag(); err != nil {
		return nil, err
	}
	if beacons, err = r.readBeacons(c); err != nil {
		return nil, err
	}
	r.logger.Debug("parsed beacons", "count", len(beacons))

	return beacons, nil
}

// handlers maps a child element name to the function that consumes it.
// A handler is called with the cursor on the child's start tag and must leave
// it on the child's end tag.
type handlers map[string]func(c *cursor) error

// readChildren dispatches every child element of the element whose start tag
// the cursor is on, until that element's end tag. Text between children is
// ignored; unknown children are skipped.
func (r *Reader) readChildren(c *cursor, hs handlers) error {
	for {
		if err := c.next(); err != nil {
			return err
		}
		switch c.ev {
		case eventEnd:
			return nil
		case eventEOF:
			return c.mismatch("unexpected end of document")
		case eventText:
			continue
		}

		h, ok := hs[c.name]
		if !ok {
			if err := r.skip(c); err != nil {
				return err
			}
			continue
		}
		if err := h(c); err != nil {
			return err
		}
	}
}

// skip consumes the element under the cursor together with its subtree.
// Depth is tracked so nested elements of the same name do not end it early.
func (r *Reader) skip(c *cursor) error {
	if c.ev != eventStart {
		return c.mismatch("cannot skip from %s", c.ev)
	}
	r.logger.Debug("skipping unknown element", "element", c.name, "at", c.where())

	depth := 1
	for depth != 0 {
		if err := c.next(); err != nil {
			return err
		}
		switch c.ev {
		case eventStart:
			depth++
		case eventEnd:
			depth--
		case eventEOF:
			return c.mismatch("unexpected end of document")
		}
	}

	return nil
}

// readLeaf reads <name>text</name> and returns the raw text.
func readLeaf(c *cursor, name string) (string, error) {
	if err := c.require(eventStart, name); err != nil {
		return "", err
	}
	text, err := c.readText()
	if err != nil {
		return "", err
	}
	if err = c.require(eventEnd, name); err != nil {
		return "", err
	}

	return text, nil
}

// readIntLeaf reads an integer leaf.
func readIntLeaf(c *cursor, name string) (int, error) {
	text, err := readLeaf(c, name)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, c.valueError(ErrMalformedValue, "<%s> %q is not an integer", name, text)
	}

	return n, nil
}

// readFloatLeaf reads a floating-point leaf.
func readFloatLeaf(c *cursor, name string) (float64, error) {
	text, err := readLeaf(c, name)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, c.valueError(ErrMalformedValue, "<%s> %q is not a number", name, text)
	}

	return f, nil
}

// readRuneLeaf reads a leaf and keeps its first character.
func readRuneLeaf(c *cursor, name string) (rune, error) {
	text, err := readLeaf(c, name)
	if err != nil {
		return 0, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, c.valueError(ErrEmptyValue, "<%s> is empty", name)
	}
	ch, _ := utf8.DecodeRuneInString(text)

	return ch, nil
}

// seen records which children an element produced.
type seen map[string]bool

// requireAll fails with ErrStructuralMismatch naming the first missing child of elem.
func (s seen) requireAll(c *cursor, elem string, names ...string) error {
	for _, n := range names {
		if !s[n] {
			return c.mismatch("<%s> is missing <%s>", elem, n)
		}
	}

	return nil
}

// stringField returns a handler storing a string leaf into dst.
func stringField(s seen, name string, dst *string) func(c *cursor) error {
	return func(c *cursor) (err error) {
		if *dst, err = readLeaf(c, name); err == nil {
			s[name] = true
		}
		return err
	}
}

// intField returns a handler storing an integer leaf into dst.
func intField(s seen, name string, dst *int) func(c *cursor) error {
	return func(c *cursor) (err error) {
		if *dst, err = readIntLeaf(c, name); err == nil {
			s[name] = true
		}
		return err
	}
}

// floatField returns a handler storing a float leaf into dst.
func floatField(s seen, name string, dst *float64) func(c *cursor) error {
	return func(c *cursor) (err error) {
		if *dst, err = readFloatLeaf(c, name); err == nil {
			s[name] = true
		}
		return err
	}
}

// runeField returns a handler storing a single-character leaf into dst.
func runeField(s seen, name string, dst *rune) func(c *cursor) error {
	return func(c *cursor) (err error) {
		if *dst, err = readRuneLeaf(c, name); err == nil {
			s[name] = true
		}
		return err
	}
}
