// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matt-FFFFFF/mantel/internal/color"
	"github.com/matt-FFFFFF/mantel/internal/severity"
	"github.com/matt-FFFFFF/mantel/internal/surface"
	"github.com/matt-FFFFFF/mantel/internal/termcap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// Byte-exact expectations below assume uncolored prefixes whatever the
	// environment says.
	color.Apply(color.ModeNever)
	goleak.VerifyTestMain(m)
}

// clearSeq is the escape sequence that removes one live line.
const clearSeq = "\r\x1b[K\x1b[1A\x1b[K"

func ansiCaps() termcap.Capabilities {
	return termcap.Capabilities{
		Interactive: true,
		ANSI:        true,
		Width:       80,
		Height:      24,
	}
}

func newANSI(buf *bytes.Buffer, opts ...Option) *Coordinator {
	base := []Option{
		WithStreams(buf, buf),
		WithCapabilities(ansiCaps()),
		WithMinInterval(0),
	}

	return New(append(base, opts...)...)
}

// fakeClock advances a fixed step on every reading, making render timing
// deterministic.
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{
		now:  time.Unix(1700000000, 0),
		step: step,
	}
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.now = f.now.Add(f.step)

	return f.now
}

func TestStrategySelection(t *testing.T) {
	testCases := []struct {
		name string
		caps termcap.Capabilities
		want termcap.Strategy
	}{
		{
			name: "ansi terminal",
			caps: ansiCaps(),
			want: termcap.StrategyANSI,
		},
		{
			name: "dumb terminal",
			caps: termcap.Capabilities{Interactive: true},
			want: termcap.StrategyPlain,
		},
		{
			name: "not a terminal",
			caps: termcap.Capabilities{},
			want: termcap.StrategySilent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			c := New(WithStreams(buf, buf), WithCapabilities(tc.caps))

			assert.Equal(t, tc.want, c.Strategy())
			require.NoError(t, c.Close())
		})
	}
}

func TestPlainStreamsDetectAsSilent(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(WithStreams(buf, buf))

	assert.Equal(t, termcap.StrategySilent, c.Strategy())
	require.NoError(t, c.Close())
}

func TestNonInteractiveOutputHasNoANSI(t *testing.T) {
	buf := &bytes.Buffer{}
	c := New(WithStreams(buf, buf))

	h := c.Register("task", 5)
	c.Advance(h, 3)
	c.Log(severity.Info, "working")
	c.Advance(h, 2)
	c.Finish(h)

	require.NoError(t, c.Close())

	out := buf.String()

	assert.NotContains(t, out, "\x1b")
	assert.NotContains(t, out, "⠋", "no live frames on a silent stream")
	assert.Contains(t, out, "I] working")
	assert.Equal(t, 1, strings.Count(out, "⣿] [5/5] task: done"))
}

func TestCloseIsIdempotent(t *testing.T) {
	buf := &bytes.Buffer{}
	c := newANSI(buf)

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}

func TestCloseRendersInterrupted(t *testing.T) {
	buf := &bytes.Buffer{}
	c := newANSI(buf)

	h := c.Register("build", 10)
	c.Advance(h, 3)

	require.NoError(t, c.Close())

	assert.Equal(t, 1, strings.Count(buf.String(), "⣿] [3/10] build: interrupted"))
}

func TestRegisterAfterClosePanics(t *testing.T) {
	buf := &bytes.Buffer{}
	c := newANSI(buf)

	require.NoError(t, c.Close())

	assert.Panics(t, func() {
		c.Register("late", 1)
	})
}

func TestWrongCoordinatorHandlePanics(t *testing.T) {
	bufA := &bytes.Buffer{}
	bufB := &bytes.Buffer{}

	a := newANSI(bufA)
	b := newANSI(bufB)

	t.Cleanup(func() {
		_ = a.Close()
		_ = b.Close()
	})

	h := a.Register("mine", 10)

	assert.Panics(t, func() {
		b.Advance(h, 1)
	})
	assert.Panics(t, func() {
		b.Finish(nil)
	})
}

func TestHandleOpsAfterCloseAreNoOps(t *testing.T) {
	buf := &bytes.Buffer{}
	c := newANSI(buf)

	h := c.Register("job", 10)
	c.Advance(h, 2)

	require.NoError(t, c.Close())

	before := buf.Len()

	c.Advance(h, 1)
	c.SetLabel(h, "renamed")
	c.Finish(h)

	assert.Equal(t, before, buf.Len(), "closed coordinator writes nothing for handle ops")
}

func TestLogAfterCloseStillWritesPlain(t *testing.T) {
	buf := &bytes.Buffer{}
	c := newANSI(buf)

	require.NoError(t, c.Close())
	buf.Reset()

	c.Log(severity.Error, "late failure")

	assert.Equal(t, "E] late failure\n", buf.String())
}

func TestAnimationTickerAdvancesAndStops(t *testing.T) {
	buf := &bytes.Buffer{}
	c := newANSI(buf, WithAnimation(5*time.Millisecond))

	c.Register("job", 0)

	time.Sleep(60 * time.Millisecond)

	require.NoError(t, c.Close())

	// The initial render plus at least one ticker-driven render.
	assert.GreaterOrEqual(t, strings.Count(buf.String(), "job"), 2)
}

// failingWriter fails a fixed number of writes, then recovers. It mimics a
// terminal hiccup that must degrade the surface without killing the
// program.
type failingWriter struct {
	failures int
	buf      bytes.Buffer
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.failures > 0 {
		w.failures--
		return 0, errors.New("tty hiccup")
	}

	return w.buf.Write(p)
}

func TestDegradedSurfaceKeepsLogging(t *testing.T) {
	w := &failingWriter{failures: 1}
	c := New(
		WithStreams(w, w),
		WithCapabilities(ansiCaps()),
		WithMinInterval(0),
	)

	// The first render's flush hits the failing write and degrades the
	// surface.
	h := c.Register("job", 4)

	c.Advance(h, 2)
	c.Log(severity.Info, "still here")
	c.Finish(h)

	err := c.Close()

	require.Error(t, err)
	assert.ErrorIs(t, err, surface.ErrWrite)

	out := w.buf.String()

	assert.NotContains(t, out, "\x1b", "degraded output is plain text")
	assert.Contains(t, out, "I] still here")
	assert.Contains(t, out, "⣿] [2/4] job: done")
}
