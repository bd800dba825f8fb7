// SPDX-License-Identifier: MIT

package docreader

import (
	"errors"
	"io"
	"log/slog"
)

// Sentinel errors for document parsing.
var (
	// ErrStructuralMismatch indicates the document does not follow the expected tag nesting.
	ErrStructuralMismatch = errors.New("docreader: structural mismatch")

	// ErrMalformedValue indicates a numeric leaf whose text does not parse.
	ErrMalformedValue = errors.New("docreader: malformed value")

	// ErrEmptyValue indicates an empty leaf where a single character is required.
	ErrEmptyValue = errors.New("docreader: empty value")

	// ErrNilStream indicates a nil stream was passed to an entry point.
	ErrNilStream = errors.New("docreader: stream is nil")
)

// Element names of the document schema.
const (
	tagPlaces     = "places"
	tagPlace      = "place"
	tagBeacons    = "beacons"
	tagBeacon     = "beacon"
	tagEdges      = "edges"
	tagEdge       = "edge"
	tagNearPlaces = "nearPlaces"
	tagNearPlace  = "nearPlace"

	tagID                = "id"
	tagName              = "name"
	tagUniqueID          = "uniqueId"
	tagNamePlace         = "namePlace"
	tagV                 = "v"
	tagW                 = "w"
	tagWeight            = "weight"
	tagCompass           = "compass"
	tagIDPlace           = "idPlace"
	tagProximityDistance = "proximityDistance"
)

// CharsetReader converts a non-UTF-8 input to UTF-8, as in xml.Decoder.CharsetReader.
type CharsetReader func(charset string, input io.Reader) (io.Reader, error)

// Reader parses place and beacon documents. The zero value is not usable; call New.
// A Reader holds no per-document state and may be reused sequentially or concurrently.
type Reader struct {
	logger  *slog.Logger
	charset CharsetReader
}

// Option configures a Reader.
type Option func(r *Reader)

// WithLogger sets the logger used for debug output (skipped elements, counts).
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(r *Reader) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithCharsetReader installs a converter for documents declaring a non-UTF-8 encoding.
func WithCharsetReader(fn CharsetReader) Option {
	return func(r *Reader) { r.charset = fn }
}

// New returns a Reader configured by opts.
func New(opts ...Option) *Reader {
	r := &Reader{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(r)
	}

	return r
}
