// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matt-FFFFFF/mantel/internal/output"
	"github.com/matt-FFFFFF/mantel/internal/prompt"
	"github.com/matt-FFFFFF/mantel/internal/severity"
)

// prompting in the middle of live progress output.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	co := output.New()
	defer co.Close() //nolint:errcheck

	h := co.Register("warm caches", 10)

	for i := 0; i < 5; i++ {
		time.Sleep(200 * time.Millisecond)
		co.Advance(h, 1)
	}

	// The live region is cleared while the question is pending and redrawn
	// as soon as the answer arrives.
	ok, err := co.AskYesNo(ctx, "continue with the second half?", true)

	switch {
	case errors.Is(err, prompt.ErrNoInput):
		co.Log(severity.Warn, "input is closed, taking the default")
	case errors.Is(err, prompt.ErrRefused):
		co.Log(severity.Error, "prompting is disabled, stopping")
		return
	case err != nil:
		co.Logf(severity.Error, "prompt failed: %v", err)
		return
	}

	if !ok {
		co.Log(severity.Info, "stopping at the half-way point")
		return
	}

	for i := 0; i < 5; i++ {
		time.Sleep(200 * time.Millisecond)
		co.Advance(h, 1)
	}

	co.Finish(h)

	name, err := co.Prompt(ctx, "label for this run?")
	if err != nil || name == "" {
		name = "unnamed"
	}

	co.Print(fmt.Sprintf("run %q complete", name))
}
