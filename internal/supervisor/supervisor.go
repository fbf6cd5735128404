// Package supervisor restarts the API process when it exits with the
// quota code, up to a restart budget. It is the long-running entry
// point in deployments where provider quotas regularly run dry.
package supervisor

import (
	"context"
	"time"

	"resume-insight/internal/shared/telemetry"
	"resume-insight/internal/watchdog"
)

// Options controls restart behavior.
type Options struct {
	// MaxRestarts caps how many times the child is brought back up.
	MaxRestarts int
	// Backoff is the wait before restarting after a quota or error exit.
	Backoff time.Duration
	// ShortBackoff is the wait after an unexpected exit code.
	ShortBackoff time.Duration
}

// DefaultOptions mirrors the production restart budget.
func DefaultOptions() Options {
	return Options{
		MaxRestarts:  5,
		Backoff:      5 * time.Second,
		ShortBackoff: 3 * time.Second,
	}
}

// StartFunc launches one run of the child process and blocks until it
// exits, returning its exit code.
type StartFunc func(ctx context.Context) (int, error)

// Run supervises start until the child exits cleanly, the restart
// budget is spent, or the context is canceled.
func Run(ctx context.Context, opts Options, start StartFunc) error {
	if opts.MaxRestarts <= 0 {
		opts.MaxRestarts = DefaultOptions().MaxRestarts
	}
	if opts.Backoff <= 0 {
		opts.Backoff = DefaultOptions().Backoff
	}
	if opts.ShortBackoff <= 0 {
		opts.ShortBackoff = DefaultOptions().ShortBackoff
	}

	restarts := 0
	for {
		telemetry.Info("supervisor.start", map[string]any{
			"attempt":      restarts + 1,
			"max_restarts": opts.MaxRestarts,
		})

		code, err := start(ctx)
		if err != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			telemetry.Error("supervisor.start_failed", map[string]any{"error": err.Error()})
			code = 1
		}

		var delay time.Duration
		switch code {
		case 0:
			telemetry.Info("supervisor.clean_exit", nil)
			return nil
		case watchdog.QuotaExitCode:
			telemetry.Warn("supervisor.quota_restart", map[string]any{"exit_code": code})
			delay = opts.Backoff
		case 1:
			telemetry.Warn("supervisor.error_restart", map[string]any{"exit_code": code})
			delay = opts.Backoff
		default:
			telemetry.Warn("supervisor.unexpected_exit", map[string]any{"exit_code": code})
			delay = opts.ShortBackoff
		}

		restarts++
		if restarts >= opts.MaxRestarts {
			telemetry.Error("supervisor.budget_exhausted", map[string]any{
				"restarts": restarts,
			})
			return nil
		}

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
