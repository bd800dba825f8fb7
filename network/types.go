// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/beaconpath/core"
)

// Sentinel errors for network assembly.
var (
	// ErrDuplicateBeacon indicates two beacons share the same vertex id.
	ErrDuplicateBeacon = errors.New("network: duplicate beacon id")

	// ErrDuplicatePlace indicates two places share the same id.
	ErrDuplicatePlace = errors.New("network: duplicate place id")

	// ErrNilBeacon indicates a nil beacon in the input.
	ErrNilBeacon = errors.New("network: beacon is nil")

	// ErrDuplicateUniqueID indicates two beacons share the same transmitter id.
	ErrDuplicateUniqueID = errors.New("network: duplicate beacon unique id")

	// ErrVertexIDTooLarge indicates a beacon id at or above Options.MaxVertices.
	ErrVertexIDTooLarge = errors.New("network: beacon id exceeds vertex limit")
)

// DefaultMaxVertices bounds the graph size Build will allocate.
const DefaultMaxVertices = 1 << 20

// Options configures Build.
type Options struct {
	// MirrorDedup skips edges whose value key was already registered.
	MirrorDedup bool

	// Logger receives assembly diagnostics.
	Logger *slog.Logger

	// MaxVertices caps the vertex count; beacon ids must be below it.
	MaxVertices int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns MirrorDedup=true, a discarding logger and
// MaxVertices=DefaultMaxVertices.
func DefaultOptions() Options {
	return Options{
		MirrorDedup: true,
		Logger:      slog.New(slog.DiscardHandler),
		MaxVertices: DefaultMaxVertices,
	}
}

// WithMirrorDedup toggles value-key deduplication of edges across beacons.
func WithMirrorDedup(on bool) Option {
	return func(o *Options) { o.MirrorDedup = on }
}

// WithMaxVertices sets the vertex limit; non-positive values keep the default.
func WithMaxVertices(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxVertices = n
		}
	}
}

// WithLogger sets the assembly logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// edgeKey is the value identity of an undirected edge.
type edgeKey struct {
	lo, hi  int
	weight  float64
	compass rune
}

func keyOf(e *core.Edge) edgeKey {
	v := e.Either()
	w, _ := e.Other(v)
	if w < v {
		v, w = w, v
	}

	return edgeKey{lo: v, hi: w, weight: e.Weight(), compass: e.Compass()}
}

// Network is a built graph plus the beacons and places it was built from.
type Network struct {
	graph     *core.Graph
	beacons   map[int]*core.Beacon
	byUnique  map[string]*core.Beacon
	places    []core.Place
	placeByID map[string]core.Place
	skipped   int
}

// Summary is a read-only snapshot of a Network's sizes.
type Summary struct {
	Vertices       int
	Beacons        int
	Edges          int
	SkippedMirrors int
	NearPlaces     int
	Places         int
}
