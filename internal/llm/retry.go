package llm

import (
	"context"
	"errors"
	"log"
	"net"
	"strings"
	"time"
)

const retryBaseDelay = 300 * time.Millisecond

type retryingClient struct {
	base      Client
	requestID string
}

// WithRetry wraps the client with a single bounded retry on transient
// network and server errors. Quota errors are never retried: the quota
// window does not reset in 300ms and the extra call burns allowance.
func WithRetry(base Client, requestID string) Client {
	if base == nil {
		return nil
	}
	return retryingClient{base: base, requestID: requestID}
}

func (r retryingClient) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := r.base.Complete(ctx, prompt)
	if err == nil || !shouldRetry(err) {
		return resp, err
	}

	log.Printf("llm retry attempt=1 request_id=%s error=%s", r.requestID, err)
	select {
	case <-time.After(retryBaseDelay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	return r.base.Complete(ctx, prompt)
}

func shouldRetry(err error) bool {
	if err == nil {
		return false
	}
	if IsQuota(ClassifyError(err)) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "http status 5") || strings.Contains(msg, "server_error") || strings.Contains(msg, "unavailable") {
		return true
	}
	if strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "tls handshake timeout") ||
		strings.Contains(msg, "eof") {
		return true
	}

	return false
}
