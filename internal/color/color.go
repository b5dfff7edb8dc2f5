// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package color

import (
	"errors"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/term"
)

const (
	sbPadding = 16 // padding for the strings.Builder
)

// ErrUnknownMode is returned when a color mode string cannot be parsed.
var ErrUnknownMode = errors.New("unknown color mode")

// Code represents an ANSI control code for text formatting.
type Code int

const (
	// NoColor is the environment variable that disables color output.
	NoColor = "NO_COLOR"
	// ForceColor is the environment variable that forces color output.
	ForceColor = "FORCE_COLOR"
	reset      = "\033[0m"
	prefix     = "\033["
	suffix     = "m"
)

// Control codes for text formatting.
const (
	Reset Code = iota
	Bold
	Faint
	Italic
	Underline
)

// Foreground text colors.
const (
	FgBlack Code = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

// Foreground Hi-Intensity text colors.
const (
	FgHiBlack Code = iota + 90
	FgHiRed
	FgHiGreen
	FgHiYellow
	FgHiBlue
	FgHiMagenta
	FgHiCyan
	FgHiWhite
)

// Mode selects how the color decision is made.
type Mode int

const (
	// ModeAuto enables color for terminals, honoring NO_COLOR and FORCE_COLOR.
	ModeAuto Mode = iota
	// ModeAlways enables color unconditionally.
	ModeAlways
	// ModeNever disables color unconditionally.
	ModeNever
)

// ParseMode converts a --color style flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "always", "on":
		return ModeAlways, nil
	case "never", "off":
		return ModeNever, nil
	default:
		return ModeAuto, errors.Join(ErrUnknownMode, errors.New(s))
	}
}

var enabled bool

func init() {
	enabled = isColorCapable()
}

// Apply sets the process-wide color state from the given mode.
// ModeAuto re-runs the capability check.
func Apply(m Mode) {
	switch m {
	case ModeAlways:
		enabled = true
	case ModeNever:
		enabled = false
	default:
		enabled = isColorCapable()
	}
}

// Colorize returns a string with ANSI color codes applied.
// It appends the reset code at the end of the string to reset the color.
func Colorize(str string, colorCodes ...Code) string {
	// If color output is not enabled, return the string as is
	if !enabled {
		return str
	}

	sb := strings.Builder{}
	sb.Grow(len(str) + len(prefix) + len(suffix) + len(reset) + sbPadding)
	sb.WriteString(prefix)

	for i, code := range colorCodes {
		if i > 0 && i < len(colorCodes) {
			sb.WriteString(";")
		}

		sb.WriteString(strconv.Itoa(int(code)))
	}

	sb.WriteString(suffix)
	sb.WriteString(str)
	sb.WriteString(reset)

	return sb.String()
}

// Enabled is a function that indicates whether color output is enabled.
// It is initialized in package init() and adjusted by Apply.
//
// It is set to true if either the NO_COLOR environment variable is not set,
// and the FORCE_COLOR environment variable is set, or if the output is a terminal.
// Terminal detection is done using the golang.org/x/term package.
//
// It is set to false if the NO_COLOR environment variable is set, or if the
// output is not a terminal.
func Enabled() bool {
	return enabled
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")

// Strip removes ANSI escape sequences from a string.
func Strip(s string) string {
	if !strings.ContainsRune(s, '\x1b') {
		return s
	}

	return ansiPattern.ReplaceAllString(s, "")
}

func isColorCapable() bool {
	if nc := os.Getenv(NoColor); nc != "" {
		return false
	}

	if fc := os.Getenv(ForceColor); fc != "" {
		return true
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}
