// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package prompt

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainReaderReadsLines(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewPlainReader(strings.NewReader("yes\nno\n"), out)

	first, err := r.ReadLine(context.Background(), Marker)
	require.NoError(t, err)
	assert.Equal(t, "yes", first)

	second, err := r.ReadLine(context.Background(), Marker)
	require.NoError(t, err)
	assert.Equal(t, "no", second)

	assert.Equal(t, Marker+Marker, out.String())
}

func TestPlainReaderLastLineWithoutNewline(t *testing.T) {
	r := NewPlainReader(strings.NewReader("maybe"), io.Discard)

	answer, err := r.ReadLine(context.Background(), Marker)
	require.NoError(t, err)
	assert.Equal(t, "maybe", answer)

	_, err = r.ReadLine(context.Background(), Marker)
	assert.ErrorIs(t, err, ErrNoInput)
}

func TestPlainReaderNoInput(t *testing.T) {
	r := NewPlainReader(strings.NewReader(""), io.Discard)

	_, err := r.ReadLine(context.Background(), Marker)

	assert.ErrorIs(t, err, ErrNoInput)
}

func TestPlainReaderContextCancellation(t *testing.T) {
	pr, pw := io.Pipe()
	r := NewPlainReader(pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.ReadLine(ctx, Marker)
	assert.ErrorIs(t, err, context.Canceled)

	// The answer that arrives after the cancelled read is queued for the
	// next prompt rather than lost.
	go func() {
		_, _ = io.WriteString(pw, "late\n")
		_ = pw.Close()
	}()

	answer, err := r.ReadLine(context.Background(), Marker)
	require.NoError(t, err)
	assert.Equal(t, "late", answer)

	_, err = r.ReadLine(context.Background(), Marker)
	assert.ErrorIs(t, err, ErrNoInput)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("tty gone")
}

func TestPlainReaderMarkerWriteError(t *testing.T) {
	r := NewPlainReader(strings.NewReader("yes\n"), failWriter{})

	_, err := r.ReadLine(context.Background(), Marker)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt marker")
}
