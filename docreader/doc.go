// SPDX-License-Identifier: MIT

// Package docreader is a streaming, recursive-descent reader for the
// indoor-positioning XML document.
//
// Schema:
//
//	places     := place*
//	place      := id, name
//	beacons    := beacon*
//	beacon     := id, uniqueId, name, namePlace, edges?, nearPlaces?
//	edges      := edge*
//	edge       := v, w, weight, compass
//	nearPlaces := nearPlace*
//	nearPlace  := idPlace, proximityDistance, compass
//
// Entry points:
//
//	ParsePlaces(rc)   – root must be <places>, returns []core.Place.
//	ParseBeacons(rc)  – root must be <beacons>, returns []*core.Beacon with
//	                    their edges and near places attached.
//
// Both close rc exactly once, on success and on every failure path.
//
// A single token cursor is threaded through every nested reader function; there
// is no ambient parser state and no concurrency. Unknown elements at any depth
// are skipped together with their whole subtree. Namespaces are ignored and
// elements are matched by local name.
//
// Leaves:
//
//	The text following a leaf's start tag is its value; no text means "".
//	Surrounding whitespace is trimmed before numeric or rune conversion.
//	String leaves are kept verbatim. When a leaf repeats, the last one wins.
//
// Errors:
//
//	ErrStructuralMismatch – wrong root, mismatched or missing tags, missing required child.
//	ErrMalformedValue     – integer or float leaf that does not parse.
//	ErrEmptyValue         – empty compass leaf.
//	ErrNilStream          – nil stream passed to an entry point.
//
// Errors from edge construction (core.ErrNegativeVertex, core.ErrInvalidWeight)
// and from the underlying stream are wrapped and reachable through errors.Is.
package docreader
