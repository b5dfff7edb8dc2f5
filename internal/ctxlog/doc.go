// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog provides a context-aware logger that can be used to log messages.
// It uses the slog package for structured logging and supports different log levels,
// including a trace level below slog's debug.
//
// The default is a pretty console handler to format the log messages in a
// human-readable way. The initial level comes from an environment variable
// derived from the executable name, MANTEL_LOG_LEVEL for a binary called
// mantel, and can be changed at runtime through LevelVar.
package ctxlog
