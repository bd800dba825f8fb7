// SPDX-License-Identifier: MIT
// File: cursor.go
// Role: Pull-style event cursor over encoding/xml tokens.
// The cursor is the only mutable parse state and is passed explicitly to every reader.

package docreader

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// event is the kind of the token the cursor is positioned on.
type event int

const (
	eventStart event = iota
	eventEnd
	eventText
	eventEOF
)

func (e event) String() string {
	switch e {
	case eventStart:
		return "start tag"
	case eventEnd:
		return "end tag"
	case eventText:
		return "text"
	default:
		return "end of document"
	}
}

// cursor walks start, end and text events. Comments, processing instructions
// and directives never surface.
type cursor struct {
	dec  *xml.Decoder
	ev   event
	name string   // local name on start/end events
	text string   // content on text events
	path []string // open elements, innermost last
}

func newCursor(r io.Reader, charset CharsetReader) *cursor {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	if charset != nil {
		dec.CharsetReader = charset
	}

	return &cursor{dec: dec}
}

// next advances to the next event.
func (c *cursor) next() error {
	for {
		tok, err := c.dec.Token()
		if errors.Is(err, io.EOF) {
			c.ev, c.name, c.text = eventEOF, "", ""
			return nil
		}
		if err != nil {
			return c.decodeError(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			c.ev, c.name, c.text = eventStart, t.Name.Local, ""
			c.path = append(c.path, c.name)
			return nil
		case xml.EndElement:
			c.ev, c.name, c.text = eventEnd, t.Name.Local, ""
			if len(c.path) > 0 {
				c.path = c.path[:len(c.path)-1]
			}
			return nil
		case xml.CharData:
			c.ev, c.name, c.text = eventText, "", string(t)
			return nil
		}
	}
}

// nextTag advances past whitespace-only text to the next start or end tag.
func (c *cursor) nextTag() error {
	for {
		if err := c.next(); err != nil {
			return err
		}
		if c.ev == eventText && strings.TrimSpace(c.text) == "" {
			continue
		}
		if c.ev != eventStart && c.ev != eventEnd {
			return c.mismatch("expected a start or end tag, got %s", c.ev)
		}
		return nil
	}
}

// require fails unless the cursor sits on event ev for element name.
func (c *cursor) require(ev event, name string) error {
	if c.ev != ev || c.name != name {
		got := c.ev.String()
		if c.ev == eventStart || c.ev == eventEnd {
			got = fmt.Sprintf("%s <%s>", c.ev, c.name)
		}
		return c.mismatch("expected %s <%s>, got %s", ev, name, got)
	}

	return nil
}

// readText returns the text directly after a start tag, or "" if a tag follows.
// Adjacent text tokens (entities, CDATA, split by comments) are joined.
// On return the cursor sits on the first non-text event.
func (c *cursor) readText() (string, error) {
	if err := c.next(); err != nil {
		return "", err
	}
	if c.ev != eventText {
		return "", nil
	}

	var sb strings.Builder
	for c.ev == eventText {
		sb.WriteString(c.text)
		if err := c.next(); err != nil {
			return "", err
		}
	}

	return sb.String(), nil
}

// where renders the current element path and input position.
func (c *cursor) where() string {
	line, col := c.dec.InputPos()
	p := "/" + strings.Join(c.path, "/")
	if c.ev == eventEnd {
		p = strings.TrimSuffix(p, "/") + "/" + c.name
	}

	return fmt.Sprintf("%s at %d:%d", p, line, col)
}

// mismatch builds an ErrStructuralMismatch error with position context.
func (c *cursor) mismatch(format string, args ...any) error {
	return fmt.Errorf("%w: %s (%s)", ErrStructuralMismatch, fmt.Sprintf(format, args...), c.where())
}

// valueError wraps a conversion sentinel with position context.
func (c *cursor) valueError(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s (%s)", sentinel, fmt.Sprintf(format, args...), c.where())
}

// decodeError maps decoder failures: syntax errors are structural, the rest are stream errors.
func (c *cursor) decodeError(err error) error {
	var syn *xml.SyntaxError
	if errors.As(err, &syn) {
		return fmt.Errorf("%w: %s (line %d)", ErrStructuralMismatch, syn.Msg, syn.Line)
	}

	return fmt.Errorf("docreader: read: %w", err)
}
