// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package output

import (
	"context"
	"io"

	"github.com/matt-FFFFFF/mantel/internal/prompt"
)

// PromptSession is one live prompt. It owns the coordinator's exclusive
// section from BeginPrompt until EndPrompt, so nothing else can write to
// the terminal while the user is typing.
type PromptSession struct {
	c      *Coordinator
	reader prompt.Reader
	ended  bool
}

// BeginPrompt acquires the exclusive section, clears the live region and
// writes the question line. The section is held for the session's
// lifetime: a concurrent BeginPrompt, Log or Advance blocks until
// EndPrompt rather than corrupting the prompt. The session owner must not
// touch the coordinator through any other method until the session ends.
// Panics if the coordinator is closed.
func (c *Coordinator) BeginPrompt(text string) *PromptSession {
	c.mu.Lock()

	if c.closed {
		c.mu.Unlock()
		panic("mantel: prompt on closed coordinator")
	}

	c.prompting.Store(true)
	c.clearLiveLocked()

	line := c.prefixes.prompt + " " + text

	if c.surf != nil {
		_ = c.surf.WriteLine(line)
		_ = c.surf.Flush()
	} else {
		target := c.logOut
		if c.liveOut != nil {
			target = c.liveOut
		}

		_, _ = io.WriteString(target, line+"\n")
	}

	return &PromptSession{c: c, reader: c.reader}
}

// ReadLine performs the blocking read for this session. The input marker
// is written by the reader. A closed input stream returns
// prompt.ErrNoInput, a user cancel prompt.ErrAborted.
func (s *PromptSession) ReadLine(ctx context.Context) (string, error) {
	return s.reader.ReadLine(ctx, prompt.Marker)
}

// EndPrompt redraws the live region and releases the exclusive section.
// It must be called on every exit path, including read errors and
// cancellation. Calling it twice is a no-op.
func (c *Coordinator) EndPrompt(s *PromptSession) {
	if s == nil || s.ended {
		return
	}

	if s.c != c {
		panic("mantel: prompt session does not belong to this coordinator")
	}

	s.ended = true

	c.redrawLocked(timeNow())
	c.prompting.Store(false)
	c.mu.Unlock()
}

// Prompt asks one question and returns the raw answer. The prompt mode
// can short-circuit it: assume-yes returns an empty answer without
// touching the terminal, refuse returns prompt.ErrRefused.
func (c *Coordinator) Prompt(ctx context.Context, text string) (string, error) {
	switch c.promptMode {
	case prompt.ModeAssumeYes:
		return "", nil
	case prompt.ModeRefuse:
		return "", prompt.ErrRefused
	}

	s := c.BeginPrompt(text)
	defer c.EndPrompt(s)

	return s.ReadLine(ctx)
}

// AskYesNo asks a yes/no question, suffixing it with the default. Empty
// input selects the default and unrecognized answers re-ask. When input is
// closed or prompting is disabled it returns the default alongside the
// sentinel error so callers can branch on the outcome.
func (c *Coordinator) AskYesNo(ctx context.Context, question string, def bool) (bool, error) {
	suffix := " [y/N]"
	if def {
		suffix = " [Y/n]"
	}

	for {
		answer, err := c.Prompt(ctx, question+suffix)
		if err != nil {
			return def, err
		}

		if v, ok := prompt.ParseYesNo(answer, def); ok {
			return v, nil
		}
	}
}
