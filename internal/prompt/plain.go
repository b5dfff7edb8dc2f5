// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
)

// PlainReader reads answers from a non-terminal stream, such as a pipe or a
// test buffer. Lines are pumped by a single background goroutine, so a read
// abandoned on context cancellation leaves its line queued for the next
// prompt instead of losing it. The goroutine exits when the stream closes.
type PlainReader struct {
	in    io.Reader
	out   io.Writer
	once  sync.Once
	lines chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewPlainReader builds a reader taking answers from in and writing markers
// to out.
func NewPlainReader(in io.Reader, out io.Writer) *PlainReader {
	return &PlainReader{
		in:    in,
		out:   out,
		lines: make(chan readResult, 1),
	}
}

// ReadLine implements Reader.
func (r *PlainReader) ReadLine(ctx context.Context, marker string) (string, error) {
	r.once.Do(func() {
		go r.pump()
	})

	if _, err := io.WriteString(r.out, marker); err != nil {
		return "", fmt.Errorf("writing prompt marker: %w", err)
	}

	select {
	case res, ok := <-r.lines:
		if !ok {
			return "", ErrNoInput
		}

		if res.err != nil {
			return "", res.err
		}

		return res.line, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (r *PlainReader) pump() {
	scanner := bufio.NewScanner(r.in)

	for scanner.Scan() {
		r.lines <- readResult{line: scanner.Text()}
	}

	if err := scanner.Err(); err != nil {
		r.lines <- readResult{err: fmt.Errorf("reading prompt answer: %w", err)}
	}

	close(r.lines)
}
