// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package surface

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLine(t *testing.T) {
	buf := &bytes.Buffer{}
	s := New(buf, true)

	require.NoError(t, s.WriteLine("first"))
	require.NoError(t, s.WriteLine("second"))
	require.NoError(t, s.Flush())

	assert.Equal(t, "first\nsecond\n", buf.String())
}

func TestClearLines_ByteProtocol(t *testing.T) {
	buf := &bytes.Buffer{}
	s := New(buf, true)

	require.NoError(t, s.ClearLines(2))
	require.NoError(t, s.Flush())

	assert.Equal(t, "\r\x1b[K\x1b[1A\x1b[K\x1b[1A\x1b[K", buf.String())
}

func TestClearLines_NoOps(t *testing.T) {
	tests := []struct {
		name string
		ansi bool
		n    int
	}{
		{
			name: "zero lines",
			ansi: true,
			n:    0,
		},
		{
			name: "negative lines",
			ansi: true,
			n:    -1,
		},
		{
			name: "non-ansi surface",
			ansi: false,
			n:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			s := New(buf, tt.ansi)

			require.NoError(t, s.ClearLines(tt.n))
			require.NoError(t, s.Flush())
			assert.Empty(t, buf.String())
		})
	}
}

func TestNew_NilWriter(t *testing.T) {
	s := New(nil, false)

	require.NoError(t, s.WriteLine("into the void"))
	require.NoError(t, s.Flush())
	assert.False(t, s.Degraded())
}

// flakyWriter fails a fixed number of writes, then succeeds.
type flakyWriter struct {
	failures int
	buf      bytes.Buffer
}

func (w *flakyWriter) Write(p []byte) (int, error) {
	if w.failures > 0 {
		w.failures--
		return 0, errors.New("broken pipe")
	}

	return w.buf.Write(p)
}

func TestDegradation_Sticky(t *testing.T) {
	w := &flakyWriter{failures: 1}
	s := New(w, true)

	require.NoError(t, s.WriteLine("buffered"))

	err := s.Flush()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrite)
	assert.True(t, s.Degraded())
	assert.ErrorIs(t, s.Err(), ErrWrite)

	// Degraded operations absorb their errors.
	assert.NoError(t, s.ClearLines(2))
	assert.NoError(t, s.WriteLine("best effort"))
	assert.NoError(t, s.Flush())

	// The post-degradation write went straight to the stream.
	assert.Equal(t, "best effort\n", w.buf.String())
	assert.False(t, s.ANSI())
}

func TestDegradation_StripsEscapes(t *testing.T) {
	w := &flakyWriter{failures: 1}
	s := New(w, true)

	require.NoError(t, s.WriteLine("x"))
	require.Error(t, s.Flush())

	require.NoError(t, s.WriteLine("\x1b[31mred alert\x1b[0m"))
	assert.Equal(t, "red alert\n", w.buf.String())
}

func TestWriteLine_LargeFlushTriggersDegradation(t *testing.T) {
	w := &flakyWriter{failures: 100}
	s := New(w, true)

	// Exceed the internal buffer so the failure surfaces mid-write.
	big := strings.Repeat("a", 64*1024)

	err := s.WriteLine(big)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrite)
	assert.True(t, s.Degraded())
}
