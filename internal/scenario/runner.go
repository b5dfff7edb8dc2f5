// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package scenario

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matt-FFFFFF/mantel/internal/output"
	"github.com/matt-FFFFFF/mantel/internal/prompt"
	"github.com/matt-FFFFFF/mantel/internal/severity"
	"golang.org/x/sync/errgroup"
)

// Number of advances an indeterminate task spreads its duration over.
const indeterminateTicks = 20

// Runner executes a scenario against a coordinator: groups run in
// declaration order, the steps of each group concurrently.
type Runner struct {
	co *output.Coordinator
}

// NewRunner returns a Runner that drives the given coordinator.
func NewRunner(co *output.Coordinator) *Runner {
	return &Runner{co: co}
}

// Run executes every group in order. The first step error cancels the
// remaining steps of its group and stops the run.
func (r *Runner) Run(ctx context.Context, s *Scenario) error {
	if s.Name != "" {
		r.co.Print(s.Name)
	}

	for _, g := range s.Groups {
		if err := r.runGroup(ctx, g); err != nil {
			return err
		}
	}

	return nil
}

func (r *Runner) runGroup(ctx context.Context, g Group) error {
	r.co.Logf(severity.Debug, "starting group %s", g.Name)

	eg, egCtx := errgroup.WithContext(ctx)

	for _, st := range g.Steps {
		eg.Go(func() error {
			return r.runStep(egCtx, st)
		})
	}

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("group %q: %w", g.Name, err)
	}

	return nil
}

func (r *Runner) runStep(ctx context.Context, st Step) error {
	switch st.Type {
	case StepTask:
		return r.runTask(ctx, st)
	case StepLog:
		r.co.Log(st.ParsedSeverity(), st.Message)

		return nil
	case StepPrompt:
		return r.runPrompt(ctx, st)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStepType, st.Type)
	}
}

// runTask spreads the step duration over its advances. A cancelled context
// leaves the handle unfinished so Close reports it as interrupted.
func (r *Runner) runTask(ctx context.Context, st Step) error {
	h := r.co.Register(st.Label, st.Total)

	ticks := st.Total
	if ticks == 0 {
		ticks = indeterminateTicks
	}

	interval := st.ParsedDuration() / time.Duration(ticks)

	for i := uint64(0); i < ticks; i++ {
		if err := sleepCtx(ctx, interval); err != nil {
			return err
		}

		r.co.Advance(h, 1)
	}

	r.co.Finish(h)

	return nil
}

func (r *Runner) runPrompt(ctx context.Context, st Step) error {
	ans, err := r.co.AskYesNo(ctx, st.Label, st.Default)

	switch {
	case errors.Is(err, prompt.ErrNoInput):
		// closed input stream, fall back to the declared default
		ans = st.Default
	case err != nil:
		return err
	}

	r.co.Logf(severity.Info, "%s %s", st.Label, answerWord(ans))

	return nil
}

func answerWord(yes bool) string {
	if yes {
		return "yes"
	}

	return "no"
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
