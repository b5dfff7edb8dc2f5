// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/matt-FFFFFF/mantel/internal/severity"
	"github.com/prashantv/gostub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdvanceClampsAndFinishIsIdempotent(t *testing.T) {
	buf := &bytes.Buffer{}
	c := newANSI(buf)

	h := c.Register("job", 10)

	c.Advance(h, 7)
	c.Advance(h, 7)
	c.Finish(h)
	c.Finish(h)
	c.Advance(h, 1)

	require.NoError(t, c.Close())

	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, "⣿] [10/10] job: done"))
	assert.NotContains(t, out, "[11/10]")
	assert.NotContains(t, out, "interrupted")
}

// A hot loop of advances must reach the terminal as roughly two writes:
// the initial frame and the forced final render. The clock is stubbed so
// the 1000 advances span well under the minimum render interval.
func TestHotLoopCollapsesUnderRateLimit(t *testing.T) {
	clock := newFakeClock(10 * time.Microsecond)
	stub := gostub.Stub(&timeNow, clock.Now)
	defer stub.Reset()

	buf := &bytes.Buffer{}
	c := New(
		WithStreams(buf, buf),
		WithCapabilities(ansiCaps()),
		WithMinInterval(100*time.Millisecond),
	)

	h := c.Register("hot", 1000)

	for i := 0; i < 1000; i++ {
		c.Advance(h, 1)
	}

	c.Finish(h)

	require.NoError(t, c.Close())

	out := buf.String()

	assert.Equal(t, 1, strings.Count(out, "⣿] [1000/1000] hot: done"),
		"the final state always renders")
	assert.Equal(t, 2, strings.Count(out, "hot"),
		"initial frame and final line only")
}

// The full display cycle, byte for byte: a frame is cleared before a log
// line lands, redrawn beneath it, and the finished indicator's line is
// written exactly once and never cleared again.
func TestDisplayCycleByteStream(t *testing.T) {
	clock := newFakeClock(time.Millisecond)
	stub := gostub.Stub(&timeNow, clock.Now)
	defer stub.Reset()

	buf := &bytes.Buffer{}
	c := newANSI(buf)

	h := c.Register("build", 10)
	c.Advance(h, 3)
	c.Log(severity.Warn, "disk is slow")
	c.Advance(h, 7)
	c.Finish(h)

	require.NoError(t, c.Close())

	want := "⠋] [0/10] build: 0.00%\n" +
		clearSeq + "⠋] [3/10] build: 30.00%\n" +
		clearSeq + "W] disk is slow\n" +
		"⠋] [3/10] build: 30.00%\n" +
		clearSeq + "⠋] [10/10] build: 100.00%\n" +
		clearSeq + "⣿] [10/10] build: done\n"

	assert.Equal(t, want, buf.String())
}

func TestSetLabelChangesFrame(t *testing.T) {
	buf := &bytes.Buffer{}
	c := newANSI(buf)

	h := c.Register("download", 0)
	c.Advance(h, 1)
	c.SetLabel(h, "unpack")
	c.Finish(h)

	require.NoError(t, c.Close())

	out := buf.String()

	assert.Contains(t, out, "unpack")
	assert.Equal(t, 1, strings.Count(out, "⣿] [1] unpack: done"))
}

func TestMultipleIndicatorsRenderInCreationOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	c := newANSI(buf)

	a := c.Register("alpha", 10)
	b := c.Register("beta", 10)

	c.Advance(a, 1)
	c.Advance(b, 2)

	require.NoError(t, c.Close())

	// The last full frame has alpha above beta.
	out := buf.String()
	lastAlpha := strings.LastIndex(out, "alpha")
	lastBeta := strings.LastIndex(out, "beta")

	require.NotEqual(t, -1, lastAlpha)
	require.NotEqual(t, -1, lastBeta)
	assert.Less(t, lastAlpha, lastBeta)
}

func TestTickRenderAdvancesSpinner(t *testing.T) {
	buf := &bytes.Buffer{}
	c := newANSI(buf)

	c.Register("spin", 0)

	// Five renders move the spinner to its second glyph.
	for i := 0; i < 5; i++ {
		c.TickRender()
	}

	require.NoError(t, c.Close())

	assert.Contains(t, buf.String(), "⠙] [0] spin")
}

func TestTickRenderWithoutIndicatorsWritesNothing(t *testing.T) {
	buf := &bytes.Buffer{}
	c := newANSI(buf)

	c.TickRender()
	c.TickRender()

	assert.Zero(t, buf.Len())
	require.NoError(t, c.Close())
}
