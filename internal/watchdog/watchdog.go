// Package watchdog bounds model calls with a hard restart timer. A call
// that hangs past the limit takes the whole process down with the quota
// exit code so the supervisor brings up a fresh one.
package watchdog

import (
	"context"
	"os"
	"time"

	"resume-insight/internal/shared/telemetry"
)

// QuotaExitCode signals the supervisor that the process wants a restart
// against a fresh quota window.
const QuotaExitCode = 42

// softBuffer is how much earlier the call's context deadline fires than
// the hard restart timer, giving the handler a window to respond.
const softBuffer = 5 * time.Second

// Guard enforces a per-call time limit.
type Guard struct {
	// Timeout is the hard limit per guarded call. Zero disables the guard.
	Timeout time.Duration
	// Exit replaces os.Exit in tests.
	Exit func(code int)
}

// New constructs a Guard that exits the process on timeout.
func New(timeout time.Duration) *Guard {
	return &Guard{Timeout: timeout, Exit: os.Exit}
}

// Do runs fn under the restart timer. fn receives a context whose
// deadline is the soft limit; if fn still has not returned when the
// hard timer fires, the process exits with QuotaExitCode.
func (g *Guard) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if g == nil || g.Timeout <= 0 {
		return fn(ctx)
	}

	exit := g.Exit
	if exit == nil {
		exit = os.Exit
	}
	timer := time.AfterFunc(g.Timeout, func() {
		telemetry.Error("watchdog.hard_timeout", map[string]any{
			"timeout_seconds": g.Timeout.Seconds(),
		})
		exit(QuotaExitCode)
	})
	defer timer.Stop()

	soft := g.Timeout - softBuffer
	if soft <= 0 {
		soft = g.Timeout
	}
	softCtx, cancel := context.WithTimeout(ctx, soft)
	defer cancel()

	err := fn(softCtx)
	if err != nil && softCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
		// The call blew through the soft limit on its own clock.
		timer.Stop()
		telemetry.Error("watchdog.soft_timeout", map[string]any{
			"timeout_seconds": soft.Seconds(),
		})
		exit(QuotaExitCode)
	}
	return err
}

// ScheduleRestart exits with QuotaExitCode after the delay, leaving the
// caller time to flush its response first.
func (g *Guard) ScheduleRestart(delay time.Duration, reason string) {
	exit := os.Exit
	if g != nil && g.Exit != nil {
		exit = g.Exit
	}
	telemetry.Warn("watchdog.restart_scheduled", map[string]any{
		"delay_seconds": delay.Seconds(),
		"reason":        reason,
	})
	time.AfterFunc(delay, func() {
		exit(QuotaExitCode)
	})
}
