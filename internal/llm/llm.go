// Package llm abstracts model providers behind a prompt-completion
// interface and classifies their failures. Every model call in the
// pipeline goes through Invoke, which pairs a completion with schema
// validation of the response.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-insight/internal/schema"
)

// Client abstracts LLM providers for prompt completion.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}

// QuotaError marks a provider failure that looks like quota exhaustion.
// It carries the guidance the handler returns to the caller before the
// process is restarted against a fresh quota window.
type QuotaError struct {
	Err                error
	ServerSwitchAdvice []string
}

func (e *QuotaError) Error() string {
	return "llm quota exceeded: " + e.Err.Error()
}

func (e *QuotaError) Unwrap() error { return e.Err }

// alternateServers is the advice attached to quota errors: aliases the
// caller can switch to while this process restarts.
var alternateServers = []string{"server2", "server3"}

// ClassifyError wraps quota-looking provider errors in a QuotaError.
// Detection is heuristic, by keyword substring, because providers encode
// quota exhaustion in free-form messages.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}
	var qe *QuotaError
	if errors.As(err, &qe) {
		return err
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "quota") || strings.Contains(msg, "limit") || strings.Contains(msg, "resource") {
		return &QuotaError{Err: err, ServerSwitchAdvice: alternateServers}
	}
	return err
}

// IsQuota reports whether the error chain contains a QuotaError.
func IsQuota(err error) bool {
	var qe *QuotaError
	return errors.As(err, &qe)
}

// Invoke completes the prompt and parses the raw response against the
// schema. Provider errors are classified; malformed output surfaces as a
// schema.ParseError.
func Invoke(ctx context.Context, client Client, fields schema.Response, prompt string) (map[string]any, error) {
	if client == nil {
		return nil, ErrNotConfigured
	}
	raw, err := client.Complete(ctx, prompt)
	if err != nil {
		return nil, ClassifyError(fmt.Errorf("llm complete: %w", err))
	}
	return fields.Parse(raw)
}
