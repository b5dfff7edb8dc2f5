// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

// Braille spinner animation. Each frame is held for frameHold render ticks
// so the spinner stays readable at high render rates.
var spinnerFrames = []rune{'⠋', '⠙', '⠸', '⠴', '⠦', '⠇'}

const (
	frameHold = 5

	// doneGlyph marks a completed indicator's permanent line.
	doneGlyph = '⣿'
)

// spinnerGlyph returns the spinner frame for a render tick. The mapping is
// pure so frames are reproducible for any tick value.
func spinnerGlyph(tick uint64) rune {
	return spinnerFrames[(tick/frameHold)%uint64(len(spinnerFrames))]
}
