// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package severity

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrUnknownSeverity is returned when a severity string cannot be parsed.
var ErrUnknownSeverity = errors.New("unknown severity")

// Severity classifies a log record. Severities form a total order and a
// record is emitted when its severity is at least the configured minimum.
type Severity int

const (
	// Trace is the most detailed severity, for per-iteration diagnostics.
	Trace Severity = iota
	// Debug is for information useful when diagnosing problems.
	Debug
	// Info is for routine operational messages.
	Info
	// Warn is for recoverable problems that deserve attention.
	Warn
	// Error is for failures. Error records are visible at every verbosity.
	Error
)

// Default is the minimum severity used when none has been configured.
const Default = Info

// LevelTrace extends the standard slog levels below Debug.
const LevelTrace = slog.Level(-8)

// String implements the Stringer interface for Severity.
func (s Severity) String() string {
	switch s {
	case Trace:
		return "trace"
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// ShouldEmit reports whether a record of severity s passes the configured
// minimum. It is pure and allocation-free so callers can use it on hot
// paths before acquiring any lock.
func ShouldEmit(s, minimum Severity) bool {
	return s >= minimum
}

// Parse converts a string such as "warn" or "WARN" into a Severity.
func Parse(str string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "trace":
		return Trace, nil
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warn", "warning":
		return Warn, nil
	case "error":
		return Error, nil
	default:
		return Default, fmt.Errorf("%w: %q", ErrUnknownSeverity, str)
	}
}

// ToSlogLevel maps a Severity onto the equivalent slog level.
func (s Severity) ToSlogLevel() slog.Level {
	switch s {
	case Trace:
		return LevelTrace
	case Debug:
		return slog.LevelDebug
	case Info:
		return slog.LevelInfo
	case Warn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// FromSlogLevel maps an slog level onto the closest Severity.
func FromSlogLevel(l slog.Level) Severity {
	switch {
	case l < slog.LevelDebug:
		return Trace
	case l < slog.LevelInfo:
		return Debug
	case l < slog.LevelWarn:
		return Info
	case l < slog.LevelError:
		return Warn
	default:
		return Error
	}
}
