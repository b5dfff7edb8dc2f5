// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package termcap

import (
	"os"

	"golang.org/x/term"
)

// maxDimension guards against pathological sizes reported by broken ptys.
const maxDimension = 400

// Stubbed in tests.
var (
	isTerminal   = term.IsTerminal
	terminalSize = term.GetSize
	getenv       = os.Getenv
)

// Capabilities describes what the attached output stream can do. It is the
// result of a one-time query at startup; the zero value means a
// non-interactive stream with unknown dimensions.
type Capabilities struct {
	// Interactive is true when the stream is a terminal.
	Interactive bool
	// ANSI is true when escape sequences (cursor movement, line clear) are
	// honored by the terminal. Never true when Interactive is false.
	ANSI bool
	// Width is the terminal width in cells, 0 when unknown.
	Width int
	// Height is the terminal height in rows, 0 when unknown.
	Height int
}

// Strategy is one of the closed set of render behaviors chosen from the
// detected capabilities. It is selected once at coordinator construction and
// never re-checked on the render path.
type Strategy int

const (
	// StrategyANSI redraws the live region in place using cursor movement.
	StrategyANSI Strategy = iota
	// StrategyPlain writes to an interactive terminal that does not honor
	// escape sequences; lines are appended, never erased.
	StrategyPlain
	// StrategySilent is a non-interactive stream. Progress is tracked
	// without output until a final state line is due.
	StrategySilent
)

// String implements the Stringer interface for Strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyANSI:
		return "ansi"
	case StrategyPlain:
		return "plain"
	case StrategySilent:
		return "silent"
	default:
		return "unknown"
	}
}

// Detect queries the stream once and returns its capabilities. There is no
// error path: any failure degrades to the non-interactive zero value. A nil
// file is treated as non-interactive.
func Detect(f *os.File) Capabilities {
	if f == nil {
		return Capabilities{}
	}

	fd := int(f.Fd())
	if !isTerminal(fd) {
		return Capabilities{}
	}

	caps := Capabilities{
		Interactive: true,
		ANSI:        ansiCapable(),
	}

	if w, h, err := terminalSize(fd); err == nil {
		caps.Width = clampDimension(w)
		caps.Height = clampDimension(h)
	}

	return caps
}

// Strategy returns the render strategy implied by the capabilities.
func (c Capabilities) Strategy() Strategy {
	switch {
	case c.Interactive && c.ANSI:
		return StrategyANSI
	case c.Interactive:
		return StrategyPlain
	default:
		return StrategySilent
	}
}

func ansiCapable() bool {
	switch getenv("TERM") {
	case "dumb":
		return false
	default:
		return true
	}
}

func clampDimension(v int) int {
	if v < 0 {
		return 0
	}

	if v > maxDimension {
		return maxDimension
	}

	return v
}
