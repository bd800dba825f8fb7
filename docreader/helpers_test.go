// SPDX-License-Identifier: MIT

package docreader_test

import (
	"errors"
	"io"
	"strings"
)

var (
	errBoom  = errors.New("boom")
	errClose = errors.New("close failed")
)

// trackedStream counts Close calls on top of an arbitrary reader.
type trackedStream struct {
	io.Reader
	closes   int
	closeErr error
}

func (s *trackedStream) Close() error {
	s.closes++
	return s.closeErr
}

func stream(doc string) *trackedStream {
	return &trackedStream{Reader: strings.NewReader(doc)}
}
