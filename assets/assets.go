// SPDX-License-Identifier: MIT

// Package assets locates and opens the documents fed to docreader.
//
// Documents are plain XML files or zstd-compressed ones (".zst" suffix).
// Every byte handed to the parser is hashed with BLAKE3 on the way through, so
// a document's fingerprint is known once it has been read without a second pass.
package assets

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/klauspost/compress/zstd"
	"lukechampine.com/blake3"
)

// Sentinel errors for asset handling.
var (
	// ErrNoMatch indicates a glob pattern matched no file.
	ErrNoMatch = errors.New("assets: pattern matched no files")

	// ErrClosed indicates a read on a closed Document.
	ErrClosed = errors.New("assets: document closed")
)

// CompressedSuffix marks zstd-compressed documents.
const CompressedSuffix = ".zst"

// Document is an open asset. It implements io.ReadCloser; Close releases the
// decompressor and the file, and is safe to call more than once.
type Document struct {
	path   string
	file   *os.File
	dec    *zstd.Decoder
	src    io.Reader
	hasher *blake3.Hasher
	read   int64
	closed bool
}

// Open opens path for reading, transparently decompressing ".zst" files.
func Open(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: opening %s: %w", path, err)
	}

	d := &Document{path: path, file: f, src: f, hasher: blake3.New(32, nil)}
	if strings.HasSuffix(path, CompressedSuffix) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("assets: creating zstd decoder for %s: %w", path, err)
		}
		d.dec = dec
		d.src = dec
	}

	return d, nil
}

// Read reads decompressed document bytes and feeds them to the fingerprint.
func (d *Document) Read(p []byte) (int, error) {
	if d.closed {
		return 0, ErrClosed
	}
	n, err := d.src.Read(p)
	if n > 0 {
		_, _ = d.hasher.Write(p[:n])
		d.read += int64(n)
	}

	return n, err
}

// Close releases the decoder and the file. Later calls return nil.
func (d *Document) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if d.dec != nil {
		d.dec.Close()
	}
	if err := d.file.Close(); err != nil {
		return fmt.Errorf("assets: closing %s: %w", d.path, err)
	}

	return nil
}

// Path returns the path the document was opened from.
func (d *Document) Path() string { return d.path }

// Compressed reports whether the document is zstd-compressed on disk.
func (d *Document) Compressed() bool { return d.dec != nil }

// BytesRead returns the number of decompressed bytes read so far.
func (d *Document) BytesRead() int64 { return d.read }

// Fingerprint returns the hex BLAKE3-256 digest of the bytes read so far.
// After a full parse it identifies the document content.
func (d *Document) Fingerprint() string {
	return hex.EncodeToString(d.hasher.Sum(nil))
}

// Resolve expands doublestar glob patterns ("assets/**/*.xml") into a sorted,
// deduplicated list of file paths. Patterns without glob syntax must name an
// existing file.
func Resolve(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("assets: bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrNoMatch, pattern)
		}
		for _, m := range matches {
			m = filepath.Clean(m)
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	slices.Sort(out)

	return out, nil
}
