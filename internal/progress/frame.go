// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// etaMinElapsed is how long an indicator must have been running before an
// ETA estimate is shown. Early estimates are noise.
const etaMinElapsed = 2 * time.Second

// Styles carries the lipgloss styles applied to frame lines. Use
// DefaultStyles to build a set appropriate for the output capabilities.
type Styles struct {
	Spinner     lipgloss.Style
	Done        lipgloss.Style
	Interrupted lipgloss.Style
	Overflow    lipgloss.Style
}

// DefaultStyles returns the standard frame styles. With colored false every
// style is the identity, so rendered lines are plain text.
func DefaultStyles(colored bool) Styles {
	if !colored {
		plain := lipgloss.NewStyle()

		return Styles{
			Spinner:     plain,
			Done:        plain,
			Interrupted: plain,
			Overflow:    plain,
		}
	}

	return Styles{
		Spinner:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Done:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Interrupted: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Overflow:    lipgloss.NewStyle().Faint(true),
	}
}

// Frame renders the live indicator lines for the current render tick, in
// creation order. The frame is capped to fit the terminal height, with a
// summary line counting any indicators that did not fit. now drives ETA
// estimates and must come from the same clock as handle start times.
func (r *Registry) Frame(now time.Time, width, height int, st Styles) []string {
	live := make([]*Handle, 0, len(r.handles))

	for _, h := range r.handles {
		if !h.finished {
			live = append(live, h)
		}
	}

	if len(live) == 0 {
		return nil
	}

	glyph := spinnerGlyph(r.tick)

	shown := len(live)
	if limit := maxLiveLines(height); limit > 0 && shown > limit {
		shown = limit
	}

	lines := make([]string, 0, shown+1)

	for _, h := range live[:shown] {
		lines = append(lines, liveLine(h, glyph, now, width, st))
	}

	if hidden := len(live) - shown; hidden > 0 {
		lines = append(lines, st.Overflow.Render(fmt.Sprintf("… and %d more", hidden)))
	}

	return lines
}

// FinalLine renders the permanent line written when a handle leaves the
// live region: its last position, label and closing state.
func (h *Handle) FinalLine(width int, st Styles) string {
	state := "done"
	style := st.Done

	if h.interrupted {
		state = "interrupted"
		style = st.Interrupted
	}

	var body string

	if h.total > 0 {
		body = fmt.Sprintf("[%d/%d] %s: %s", h.position, h.total, h.label, state)
	} else {
		body = fmt.Sprintf("[%d] %s: %s", h.position, h.label, state)
	}

	return assemble(style, doneGlyph, body, width)
}

// maxLiveLines returns how many indicator lines fit on screen, keeping the
// live region to roughly the lower half of the terminal so scrollback stays
// readable. A non-positive height means the size is unknown and no cap
// applies.
func maxLiveLines(height int) int {
	if height <= 0 {
		return 0
	}

	limit := height/2 - 2
	if limit < 1 {
		limit = 1
	}

	return limit
}

func liveLine(h *Handle, glyph rune, now time.Time, width int, st Styles) string {
	var body string

	if h.total > 0 {
		percent := float64(h.position) / float64(h.total) * 100

		body = fmt.Sprintf("[%d/%d] %s: %.2f%%", h.position, h.total, h.label, percent)

		if secs, ok := eta(h, now); ok {
			body += fmt.Sprintf(" ETA %.2fs", secs)
		}
	} else {
		body = fmt.Sprintf("[%d] %s", h.position, h.label)
	}

	return assemble(st.Spinner, glyph, body, width)
}

// eta estimates the seconds remaining by extrapolating the observed rate.
func eta(h *Handle, now time.Time) (float64, bool) {
	if h.position == 0 || h.position >= h.total {
		return 0, false
	}

	elapsed := now.Sub(h.started)
	if elapsed < etaMinElapsed {
		return 0, false
	}

	perUnit := elapsed.Seconds() / float64(h.position)

	return perUnit * float64(h.total-h.position), true
}

// assemble joins the styled glyph prefix with the body, truncating the body
// so the whole line fits the terminal width. Only the prefix is styled, so
// width accounting never sees escape sequences.
func assemble(style lipgloss.Style, glyph rune, body string, width int) string {
	prefix := string(glyph) + "]"

	if width > 0 {
		avail := width - runewidth.StringWidth(prefix) - 1
		if avail < 0 {
			avail = 0
		}

		body = runewidth.Truncate(body, avail, "…")
	}

	var b strings.Builder

	b.WriteString(style.Render(prefix))
	b.WriteByte(' ')
	b.WriteString(body)

	return b.String()
}
