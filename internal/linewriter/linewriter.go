// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package linewriter

import (
	"strings"
	"sync"
)

// Writer buffers arbitrary writes and delivers every complete line to a
// callback, one line at a time with the newline stripped. It is safe for
// concurrent use; partial data is held until its newline arrives.
type Writer struct {
	mu      sync.Mutex
	partial strings.Builder
	emit    func(line string)
}

// New creates a Writer delivering complete lines to emit.
func New(emit func(line string)) *Writer {
	return &Writer{emit: emit}
}

// Write implements io.Writer. It never fails; delivery problems are the
// callback's concern.
func (w *Writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.partial.Write(p)
	combined := w.partial.String()

	lines := strings.Split(combined, "\n")
	if len(lines) == 1 {
		// No newline yet, keep accumulating.
		return len(p), nil
	}

	for _, line := range lines[:len(lines)-1] {
		w.emit(line)
	}

	w.partial.Reset()
	w.partial.WriteString(lines[len(lines)-1])

	return len(p), nil
}

// Flush delivers any buffered partial data as a final line. Call it when
// the stream ends without a trailing newline.
func (w *Writer) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.partial.Len() == 0 {
		return
	}

	line := w.partial.String()
	w.partial.Reset()
	w.emit(line)
}
