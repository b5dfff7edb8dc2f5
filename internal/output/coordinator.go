// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package output

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/matt-FFFFFF/mantel/internal/color"
	"github.com/matt-FFFFFF/mantel/internal/progress"
	"github.com/matt-FFFFFF/mantel/internal/prompt"
	"github.com/matt-FFFFFF/mantel/internal/severity"
	"github.com/matt-FFFFFF/mantel/internal/surface"
	"github.com/matt-FFFFFF/mantel/internal/termcap"
)

// timeNow allows tests to stub the clock.
var timeNow = time.Now

// DefaultMinInterval is the minimum delay between two live-region renders
// when none was configured. High-frequency progress updates collapse into
// at most one terminal write per interval.
const DefaultMinInterval = 100 * time.Millisecond

// Coordinator owns a process's terminal output. All methods are safe for
// concurrent use; operations that touch the stream are totally ordered by
// one coarse mutex. Create one per terminal and close it before exit so the
// final state of every indicator reaches the stream.
type Coordinator struct {
	mu sync.Mutex

	logOut io.Writer
	errOut io.Writer
	input  io.Reader

	caps         termcap.Capabilities
	capsExplicit bool
	strategy     termcap.Strategy
	liveOut      io.Writer
	liveShared   bool
	surf         *surface.Surface

	registry    *progress.Registry
	styles      progress.Styles
	prefixes    prefixSet
	minInterval time.Duration

	level     atomic.Int32
	prompting atomic.Bool

	liveLines int
	closed    bool
	closeErr  error

	promptMode prompt.Mode
	reader     prompt.Reader

	animate  time.Duration
	done     chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithStreams sets the log and error streams. The default is stdout and
// stderr. Nil writers keep the default.
func WithStreams(out, errOut io.Writer) Option {
	return func(c *Coordinator) {
		if out != nil {
			c.logOut = out
		}

		if errOut != nil {
			c.errOut = errOut
		}
	}
}

// WithCapabilities fixes the terminal capabilities instead of detecting
// them from the streams. The capabilities describe the log stream, which
// also hosts the live region when interactive.
func WithCapabilities(caps termcap.Capabilities) Option {
	return func(c *Coordinator) {
		c.caps = caps
		c.capsExplicit = true
	}
}

// WithVerbosity sets the minimum severity that reaches the stream.
func WithVerbosity(s severity.Severity) Option {
	return func(c *Coordinator) {
		c.SetVerbosity(s)
	}
}

// WithMinInterval sets the minimum delay between live-region renders. Zero
// renders on every update.
func WithMinInterval(d time.Duration) Option {
	return func(c *Coordinator) {
		c.minInterval = d
	}
}

// WithAnimation starts a background ticker that re-renders the live region
// every d, keeping spinners moving between progress updates. Close stops
// it. Without this option the display only updates when state changes.
func WithAnimation(d time.Duration) Option {
	return func(c *Coordinator) {
		c.animate = d
	}
}

// WithPromptMode overrides the prompt mode. The default comes from
// prompt.DefaultMode.
func WithPromptMode(m prompt.Mode) Option {
	return func(c *Coordinator) {
		c.promptMode = m
	}
}

// WithInput supplies the stream prompts read answers from, bypassing the
// terminal reader. Intended for piped input and tests.
func WithInput(in io.Reader) Option {
	return func(c *Coordinator) {
		c.input = in
	}
}

// New creates a Coordinator. Capabilities are detected once from the
// streams unless fixed with WithCapabilities; the strategy never changes
// afterwards.
func New(opts ...Option) *Coordinator {
	c := &Coordinator{
		logOut:      os.Stdout,
		errOut:      os.Stderr,
		registry:    progress.NewRegistry(),
		minInterval: DefaultMinInterval,
		promptMode:  prompt.DefaultMode(),
	}
	c.SetVerbosity(severity.Default)

	for _, opt := range opts {
		opt(c)
	}

	c.resolve()

	if c.animate > 0 && c.surf != nil {
		c.startAnimation()
	}

	return c
}

// resolve selects the live target and strategy. The live region prefers
// the log stream when it is a terminal, falls back to the error stream,
// and otherwise stays silent.
func (c *Coordinator) resolve() {
	if c.capsExplicit {
		if c.caps.Interactive {
			c.liveOut = c.logOut
		}
	} else {
		c.caps = termcap.Capabilities{}

		if f, ok := c.logOut.(*os.File); ok {
			if caps := termcap.Detect(f); caps.Interactive {
				c.caps = caps
				c.liveOut = c.logOut
			}
		}

		if c.liveOut == nil {
			if f, ok := c.errOut.(*os.File); ok {
				if caps := termcap.Detect(f); caps.Interactive {
					c.caps = caps
					c.liveOut = c.errOut
				}
			}
		}
	}

	c.strategy = c.caps.Strategy()
	if c.strategy == termcap.StrategyANSI {
		c.surf = surface.New(c.liveOut, true)
	}

	c.liveShared = c.liveOut != nil && c.liveOut == c.logOut

	colored := c.strategy == termcap.StrategyANSI && color.Enabled()
	c.styles = progress.DefaultStyles(colored)
	c.prefixes = newPrefixSet(colored && c.liveShared)

	if c.reader != nil {
		return
	}

	markerOut := c.logOut
	if c.liveOut != nil {
		markerOut = c.liveOut
	}

	switch {
	case c.input != nil:
		c.reader = prompt.NewPlainReader(c.input, markerOut)
	case c.caps.Interactive:
		c.reader = prompt.TerminalReader{}
	default:
		c.reader = prompt.NewPlainReader(os.Stdin, markerOut)
	}
}

// Strategy returns the rendering strategy selected at construction.
func (c *Coordinator) Strategy() termcap.Strategy {
	return c.strategy
}

// Capabilities returns the capabilities the coordinator was built with.
func (c *Coordinator) Capabilities() termcap.Capabilities {
	return c.caps
}

// Verbosity returns the current minimum severity.
func (c *Coordinator) Verbosity() severity.Severity {
	return severity.Severity(c.level.Load())
}

// SetVerbosity changes the minimum severity at runtime. The filter is
// lock-free, so in-flight Log calls may use either value.
func (c *Coordinator) SetVerbosity(s severity.Severity) {
	c.level.Store(int32(s))
}

// Prompting reports whether a prompt session currently holds the exclusive
// section.
func (c *Coordinator) Prompting() bool {
	return c.prompting.Load()
}

// Close finishes every remaining indicator as interrupted, renders the
// final state of each one last time, stops the animation ticker and
// flushes. It is idempotent and safe to call concurrently; repeat calls
// return the first result. Any terminal failure absorbed while degraded is
// reported here.
func (c *Coordinator) Close() error {
	c.stopAnimation()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return c.closeErr
	}

	c.closed = true

	c.registry.InterruptRemaining()
	c.clearLiveLocked()
	c.writeFinalsLocked()

	var merr *multierror.Error

	if c.surf != nil {
		if err := c.surf.Flush(); err != nil {
			merr = multierror.Append(merr, err)
		}

		if err := c.surf.Err(); err != nil {
			merr = multierror.Append(merr, err)
		}
	}

	c.closeErr = merr.ErrorOrNil()

	return c.closeErr
}

func (c *Coordinator) startAnimation() {
	c.done = make(chan struct{})
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		ticker := time.NewTicker(c.animate)
		defer ticker.Stop()

		for {
			select {
			case <-c.done:
				return
			case <-ticker.C:
				c.TickRender()
			}
		}
	}()
}

func (c *Coordinator) stopAnimation() {
	if c.done == nil {
		return
	}

	c.stopOnce.Do(func() {
		close(c.done)
		c.wg.Wait()
	})
}

// renderLocked runs one clear-and-redraw cycle if the rate limiter allows
// it. force bypasses the limiter for state that must reach the stream,
// such as a finished indicator's last line.
func (c *Coordinator) renderLocked(force bool) {
	if c.surf == nil || c.surf.Degraded() {
		c.writeFinalsLocked()
		return
	}

	now := timeNow()

	if !force && !c.registry.ShouldRenderNow(now, c.minInterval) {
		return
	}

	c.clearLiveLocked()
	c.redrawLocked(now)
}

// clearLiveLocked removes the live region from the screen. Clearing and
// the redraw that follows are never observable as two steps because the
// surface buffers until Flush.
func (c *Coordinator) clearLiveLocked() {
	if c.surf != nil && c.liveLines > 0 {
		c.surf.ClearLines(c.liveLines)
	}

	c.liveLines = 0
}

// redrawLocked writes any permanent final lines followed by the current
// frame, then flushes. The caller has already cleared the previous frame.
func (c *Coordinator) redrawLocked(now time.Time) {
	c.writeFinalsLocked()

	if c.surf == nil || c.surf.Degraded() {
		return
	}

	lines := c.registry.Frame(now, c.caps.Width, c.caps.Height, c.styles)

	for _, line := range lines {
		_ = c.surf.WriteLine(line)
	}

	c.liveLines = len(lines)
	_ = c.surf.Flush()
	c.registry.MarkRendered(now)
}

// writeFinalsLocked emits the permanent line for every finished indicator
// and removes it from the registry. Final lines are written exactly once
// and are never part of the cleared live region.
func (c *Coordinator) writeFinalsLocked() {
	for _, h := range c.registry.CollectFinished() {
		line := h.FinalLine(c.caps.Width, c.styles)

		switch {
		case c.surf != nil:
			_ = c.surf.WriteLine(line)
		case c.liveOut != nil:
			_, _ = io.WriteString(c.liveOut, line+"\n")
		default:
			_, _ = io.WriteString(c.logOut, line+"\n")
		}
	}
}
