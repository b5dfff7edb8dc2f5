// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/matt-FFFFFF/mantel/internal/color"
	"github.com/matt-FFFFFF/mantel/internal/linewriter"
	"github.com/matt-FFFFFF/mantel/internal/severity"
)

const (
	prefixError  = "E]"
	prefixWarn   = "W]"
	prefixInfo   = "I]"
	prefixDebug  = "D]"
	prefixTrace  = "*]"
	prefixPrint  = "::"
	prefixPrompt = "!]"
)

// prefixSet holds the pre-rendered line prefixes. They are computed once at
// construction so the hot path is a string concatenation.
type prefixSet struct {
	err     string
	warn    string
	info    string
	debug   string
	trace   string
	print   string
	prompt  string
	colored bool
}

func newPrefixSet(colored bool) prefixSet {
	if !colored {
		return prefixSet{
			err:    prefixError,
			warn:   prefixWarn,
			info:   prefixInfo,
			debug:  prefixDebug,
			trace:  prefixTrace,
			print:  prefixPrint,
			prompt: prefixPrompt,
		}
	}

	return prefixSet{
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(prefixError),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render(prefixWarn),
		info:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Render(prefixInfo),
		debug:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(prefixDebug),
		trace:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Render(prefixTrace),
		print:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(prefixPrint),
		prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Render(prefixPrompt),
		colored: true,
	}
}

func (p prefixSet) bySeverity(s severity.Severity) string {
	switch s {
	case severity.Error:
		return p.err
	case severity.Warn:
		return p.warn
	case severity.Debug:
		return p.debug
	case severity.Trace:
		return p.trace
	}

	return p.info
}

// Log emits one line at the given severity. Records below the current
// verbosity are dropped without touching the lock or the stream.
func (c *Coordinator) Log(sev severity.Severity, msg string) {
	if !severity.ShouldEmit(sev, c.Verbosity()) {
		return
	}

	c.emitLine(c.prefixes.bySeverity(sev) + " " + msg)
}

// Logf is Log with fmt.Sprintf formatting. The format arguments are not
// evaluated for filtered records beyond the variadic capture.
func (c *Coordinator) Logf(sev severity.Severity, format string, args ...any) {
	if !severity.ShouldEmit(sev, c.Verbosity()) {
		return
	}

	c.emitLine(c.prefixes.bySeverity(sev) + " " + fmt.Sprintf(format, args...))
}

// Print emits user-facing output with the :: prefix. It bypasses the
// verbosity filter: command output is a result, not a log record.
func (c *Coordinator) Print(msg string) {
	c.emitLine(c.prefixes.print + " " + msg)
}

// RawLine emits one preformatted line through the exclusive section with
// no prefix and no filtering. The line must not contain a newline.
func (c *Coordinator) RawLine(line string) {
	c.emitLine(line)
}

// Writer returns a line-buffered writer that feeds complete lines through
// the coordinator at the given severity, for wiring foreign byte streams
// into the exclusive section. Call Flush on the returned writer when the
// stream ends to deliver a trailing unterminated line.
func (c *Coordinator) Writer(sev severity.Severity) *linewriter.Writer {
	return linewriter.New(func(line string) {
		if !severity.ShouldEmit(sev, c.Verbosity()) {
			return
		}

		c.RawLine(line)
	})
}

// emitLine routes one complete line through the exclusive section.
func (c *Coordinator) emitLine(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		_, _ = io.WriteString(c.logOut, color.Strip(line)+"\n")
		return
	}

	c.writeLineLocked(line)
}

// writeLineLocked writes a log line, cycling the live region when it
// shares the stream. On a separate or silent stream the line goes straight
// to the log writer.
func (c *Coordinator) writeLineLocked(line string) {
	if c.surf != nil && c.liveShared {
		if c.surf.Degraded() {
			_ = c.surf.WriteLine(line)
			return
		}

		c.clearLiveLocked()
		_ = c.surf.WriteLine(line)
		c.redrawLocked(timeNow())

		return
	}

	_, _ = io.WriteString(c.logOut, line+"\n")
}
