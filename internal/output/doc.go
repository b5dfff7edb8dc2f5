// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package output serializes everything a process writes to its terminal:
// log lines, live progress frames, and interactive prompts. One coarse
// mutex guards the display state, the render surface, and the progress
// registry as a unit, so every byte sequence on the stream is a complete
// line and the live region is always cleared and redrawn atomically.
//
// A Coordinator picks one of three strategies at construction time. On an
// ANSI-capable terminal it maintains a live region of progress lines below
// the scrollback, clearing and redrawing it around each log line. On a
// plain terminal it emits only permanent lines. When no stream is a
// terminal it stays silent apart from log lines and the final state of
// each indicator, and its output never contains escape sequences.
package output
