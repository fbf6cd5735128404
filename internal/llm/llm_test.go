package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"resume-insight/internal/schema"
)

type stubClient struct {
	responses []string
	errs      []error
	calls     int
}

func (s *stubClient) Complete(ctx context.Context, prompt string) (string, error) {
	idx := s.calls
	s.calls++
	var err error
	if idx < len(s.errs) {
		err = s.errs[idx]
	}
	var resp string
	if idx < len(s.responses) {
		resp = s.responses[idx]
	}
	return resp, err
}

var invokeSchema = schema.Response{
	{Name: "Skills", Description: "List of skills"},
}

func TestClassifyErrorQuotaKeywords(t *testing.T) {
	for _, msg := range []string{
		"429 quota exceeded for project",
		"rate limit reached",
		"RESOURCE_EXHAUSTED: out of tokens",
	} {
		err := ClassifyError(errors.New(msg))
		if !IsQuota(err) {
			t.Fatalf("expected %q to classify as quota", msg)
		}
		var qe *QuotaError
		if !errors.As(err, &qe) {
			t.Fatalf("expected QuotaError in chain")
		}
		if len(qe.ServerSwitchAdvice) == 0 {
			t.Fatalf("expected alternate server advice")
		}
	}
}

func TestClassifyErrorPassThrough(t *testing.T) {
	base := errors.New("connection refused")
	if IsQuota(ClassifyError(base)) {
		t.Fatalf("generic error should not classify as quota")
	}
	if ClassifyError(nil) != nil {
		t.Fatalf("nil should stay nil")
	}
}

func TestInvokeParsesResponse(t *testing.T) {
	client := &stubClient{responses: []string{"```json\n{\"Skills\": [\"Go\"]}\n```"}}
	out, err := Invoke(context.Background(), client, invokeSchema, "prompt")
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if _, ok := out["Skills"]; !ok {
		t.Fatalf("expected Skills key, got %v", out)
	}
}

func TestInvokeMalformedOutput(t *testing.T) {
	client := &stubClient{responses: []string{"sorry, no JSON"}}
	_, err := Invoke(context.Background(), client, invokeSchema, "prompt")
	var perr *schema.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestInvokeClassifiesQuota(t *testing.T) {
	client := &stubClient{errs: []error{errors.New("quota exceeded")}}
	_, err := Invoke(context.Background(), client, invokeSchema, "prompt")
	if !IsQuota(err) {
		t.Fatalf("expected quota classification, got %v", err)
	}
}

func TestWithRetryTransientThenSuccess(t *testing.T) {
	client := &stubClient{
		errs:      []error{fmt.Errorf("http status 503: unavailable"), nil},
		responses: []string{"", `{"Skills": []}`},
	}
	wrapped := WithRetry(client, "req-1")

	resp, err := wrapped.Complete(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if resp != `{"Skills": []}` {
		t.Fatalf("unexpected response %q", resp)
	}
	if client.calls != 2 {
		t.Fatalf("expected 2 calls, got %d", client.calls)
	}
}

func TestWithRetrySkipsQuota(t *testing.T) {
	client := &stubClient{errs: []error{errors.New("quota exceeded")}}
	wrapped := WithRetry(client, "req-1")

	_, err := wrapped.Complete(context.Background(), "prompt")
	if err == nil {
		t.Fatalf("expected error")
	}
	if client.calls != 1 {
		t.Fatalf("quota errors must not retry, got %d calls", client.calls)
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"server1", ModelPro},
		{"server2", ModelFlash},
		{"", ModelFlash},
		{"Server1", ModelPro},
		{"server3", ModelFallback},
		{"anything-else", ModelFallback},
	}
	for _, tt := range tests {
		if got := ResolveModel(tt.alias); got != tt.want {
			t.Fatalf("ResolveModel(%q) = %q, want %q", tt.alias, got, tt.want)
		}
	}
}

func TestWithRetrySkipsNonTransient(t *testing.T) {
	client := &stubClient{errs: []error{errors.New("invalid api key")}}
	wrapped := WithRetry(client, "req-1")

	if _, err := wrapped.Complete(context.Background(), "prompt"); err == nil {
		t.Fatalf("expected error")
	}
	if client.calls != 1 {
		t.Fatalf("auth errors must not retry, got %d calls", client.calls)
	}
}
