// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package prompt

import "os"

// getenv allows tests to stub environment lookups.
var getenv = os.Getenv

// Mode controls whether prompts reach the user at all.
type Mode int

const (
	// ModeInteractive asks the user and waits for an answer.
	ModeInteractive Mode = iota

	// ModeAssumeYes answers every question with its default without
	// touching the terminal.
	ModeAssumeYes

	// ModeRefuse fails every prompt with ErrRefused. This is the default
	// in CI, where waiting on a human would hang the job.
	ModeRefuse
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeInteractive:
		return "interactive"
	case ModeAssumeYes:
		return "assume-yes"
	case ModeRefuse:
		return "refuse"
	}

	return "unknown"
}

// DefaultMode returns the mode to use when none was configured:
// ModeRefuse when the CI environment variable is set, ModeInteractive
// otherwise.
func DefaultMode() Mode {
	if getenv("CI") != "" {
		return ModeRefuse
	}

	return ModeInteractive
}
