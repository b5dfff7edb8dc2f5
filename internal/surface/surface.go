// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package surface

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/matt-FFFFFF/mantel/internal/color"
)

// ErrWrite is returned when writing to the underlying stream fails.
var ErrWrite = errors.New("surface write failed")

const (
	// clearCurrent returns the cursor to column zero and erases the line.
	clearCurrent = "\r\x1b[K"
	// clearAbove moves the cursor up one line and erases it.
	clearAbove = "\x1b[1A\x1b[K"
)

// Surface owns the cursor and line state of one terminal stream. It exposes
// the three primitives the coordinator needs: append a line, erase the last
// n lines, and flush. It is not safe for concurrent use; every call must be
// made while holding the coordinator's exclusive section.
//
// The first write failure marks the surface degraded, a sticky state in
// which erasure becomes a no-op and line writes are attempted best-effort
// in plain text. This stops crash loops against a torn-down terminal.
type Surface struct {
	base     io.Writer
	w        *bufio.Writer
	ansi     bool
	degraded bool
	err      error
}

// New creates a Surface over w. When ansi is false ClearLines is a no-op
// and redraw-style rendering degrades to append-only output.
func New(w io.Writer, ansi bool) *Surface {
	if w == nil {
		w = io.Discard
	}

	return &Surface{
		base: w,
		w:    bufio.NewWriter(w),
		ansi: ansi,
	}
}

// ANSI reports whether the surface may emit escape sequences.
func (s *Surface) ANSI() bool {
	return s.ansi && !s.degraded
}

// Degraded reports whether a write failure has permanently reduced this
// surface to best-effort plain output.
func (s *Surface) Degraded() bool {
	return s.degraded
}

// Err returns the error that degraded the surface, or nil.
func (s *Surface) Err() error {
	return s.err
}

// WriteLine appends one line of text, advancing the logical cursor. The
// text must not contain a newline; one is added. On a degraded surface the
// text is written best-effort with escape sequences stripped and no error
// is returned.
func (s *Surface) WriteLine(text string) error {
	if s.degraded {
		io.WriteString(s.base, color.Strip(text)+"\n") //nolint:errcheck
		return nil
	}

	if _, err := s.w.WriteString(text); err != nil {
		return s.degrade(err)
	}

	if err := s.w.WriteByte('\n'); err != nil {
		return s.degrade(err)
	}

	return nil
}

// ClearLines erases the n most recently written lines and leaves the cursor
// where the first of them began. It is a no-op when n is zero, when the
// stream does not honor escape sequences, or when the surface is degraded.
func (s *Surface) ClearLines(n int) error {
	if n <= 0 || !s.ansi || s.degraded {
		return nil
	}

	sb := strings.Builder{}
	sb.Grow(len(clearCurrent) + n*len(clearAbove))
	sb.WriteString(clearCurrent)

	for i := 0; i < n; i++ {
		sb.WriteString(clearAbove)
	}

	if _, err := s.w.WriteString(sb.String()); err != nil {
		return s.degrade(err)
	}

	return nil
}

// Flush drains buffered bytes to the OS stream.
func (s *Surface) Flush() error {
	if s.degraded {
		return nil
	}

	if err := s.w.Flush(); err != nil {
		return s.degrade(err)
	}

	return nil
}

// degrade records the first failure and flips the sticky flag. The failure
// is reported once; later operations absorb their errors.
func (s *Surface) degrade(err error) error {
	s.degraded = true
	s.err = errors.Join(ErrWrite, err)

	return s.err
}
