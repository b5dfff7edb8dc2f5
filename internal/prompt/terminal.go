// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package prompt

import (
	"context"
	"errors"
	"io"

	"github.com/peterh/liner"
)

// TerminalReader reads answers from the controlling terminal with line
// editing. It puts the terminal into raw mode for the duration of the read,
// so it must only run while the caller holds exclusive use of the terminal.
type TerminalReader struct{}

// ReadLine implements Reader. Ctrl-C maps to ErrAborted and a closed
// terminal to ErrNoInput.
func (TerminalReader) ReadLine(ctx context.Context, marker string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	line := liner.NewLiner()
	defer func() {
		_ = line.Close()
	}()

	line.SetCtrlCAborts(true)

	input, err := line.Prompt(marker)

	switch {
	case err == nil:
		return input, nil
	case errors.Is(err, liner.ErrPromptAborted):
		return "", ErrAborted
	case errors.Is(err, io.EOF):
		return "", ErrNoInput
	}

	return "", err
}
