package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/mantel/internal/ctxlog"
)

// ForceExitCode is the process exit status used when a repeat signal aborts
// the run before graceful shutdown completes.
const ForceExitCode = 130

var exit = os.Exit

// Watch monitors the signal channel and handles signals.
// The first signal cancels the context so that in-flight work can wind down
// and unfinished progress is reported as interrupted. Any further signal
// exits the process immediately with ForceExitCode.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	cancelled := false

	for sig := range sigCh {
		if !cancelled {
			ctxlog.Logger(ctx).Info("watchdog", "detail", "received signal, shutting down", "signal", sig.String())
			cancel()

			cancelled = true

			continue
		}

		ctxlog.Logger(ctx).Info("watchdog", "detail", "received repeat signal, forcefully terminating", "signal", sig.String())
		exit(ForceExitCode)

		return
	}
}
