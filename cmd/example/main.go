package main

import (
	"context"
	"time"

	"github.com/matt-FFFFFF/mantel/internal/ctxlog"
	"github.com/matt-FFFFFF/mantel/internal/output"
	"github.com/matt-FFFFFF/mantel/internal/severity"
	"github.com/matt-FFFFFF/mantel/internal/signalbroker"
	"golang.org/x/sync/errgroup"
)

type job struct {
	label string
	units uint64
	pace  time.Duration
}

func main() {
	// Create a context with a timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	defer cancel()

	// First Ctrl+C cancels the workers, a second one terminates forcefully.
	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	co := output.New()
	defer co.Close() //nolint:errcheck

	co.Print("starting three workers, press Ctrl+C to interrupt")

	jobs := []job{
		{label: "download", units: 40, pace: 150 * time.Millisecond},
		{label: "verify", units: 20, pace: 250 * time.Millisecond},
		// Zero units renders as an indeterminate counter.
		{label: "unpack", units: 0, pace: 400 * time.Millisecond},
	}

	eg, ctx := errgroup.WithContext(ctx)

	for _, j := range jobs {
		eg.Go(func() error {
			return work(ctx, co, j)
		})
	}

	if err := eg.Wait(); err != nil {
		// Unfinished bars are marked interrupted when the coordinator closes.
		co.Logf(severity.Warn, "workers stopped early: %v", err)
		return
	}

	co.Log(severity.Info, "all workers finished")
}

func work(ctx context.Context, co *output.Coordinator, j job) error {
	h := co.Register(j.label, j.units)

	ticks := j.units
	if ticks == 0 {
		ticks = 25
	}

	for i := uint64(0); i < ticks; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(j.pace):
		}

		co.Advance(h, 1)
	}

	co.Finish(h)
	co.Logf(severity.Debug, "%s finished", j.label)

	return nil
}
