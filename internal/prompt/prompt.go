// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package prompt

import (
	"context"
	"errors"
	"strings"
)

// Marker is written where the user types their answer.
const Marker = "-: "

var (
	// ErrNoInput is returned when the input stream closes before an answer
	// was read. Callers treat this as "no answer", not as a failure.
	ErrNoInput = errors.New("prompt: input closed before an answer was read")

	// ErrAborted is returned when the user cancels the prompt.
	ErrAborted = errors.New("prompt: aborted by user")

	// ErrRefused is returned when the prompt mode forbids asking.
	ErrRefused = errors.New("prompt: prompting is disabled")
)

// Reader reads one line of user input, writing the marker first. The
// returned line has its trailing newline stripped. Implementations map a
// closed stream to ErrNoInput and a user cancel to ErrAborted.
type Reader interface {
	ReadLine(ctx context.Context, marker string) (string, error)
}

// ParseYesNo interprets an answer to a yes/no question. Empty input selects
// the default. It reports false in the second return when the answer is not
// recognized and the question should be asked again.
func ParseYesNo(answer string, def bool) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "":
		return def, true
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}

	return false, false
}
