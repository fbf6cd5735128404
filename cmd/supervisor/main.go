package main

// Supervise the API process, restarting it on quota exits:
//   go run ./cmd/supervisor -- ./api

import (
	"context"
	"errors"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"resume-insight/internal/shared/config"
	"resume-insight/internal/supervisor"
)

func main() {
	cfg := config.Load()

	args := os.Args[1:]
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		log.Fatal("usage: supervisor [--] <command> [args...]")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := supervisor.Options{
		MaxRestarts: cfg.MaxRestarts,
		Backoff:     cfg.RestartBackoff,
	}

	err := supervisor.Run(ctx, opts, func(ctx context.Context) (int, error) {
		cmd := exec.CommandContext(ctx, args[0], args[1:]...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		cmd.Env = os.Environ()
		if err := cmd.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return exitErr.ExitCode(), nil
			}
			return 0, err
		}
		return 0, nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("supervisor error: %v", err)
	}
}
