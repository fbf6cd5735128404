package insight

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"resume-insight/internal/llm"
	"resume-insight/internal/prompts"
	"resume-insight/internal/resumes"
	"resume-insight/internal/schema"
	"resume-insight/internal/watchdog"
)

const sampleResumeText = `Jane Doe
jane.doe@example.com
(555) 123-4567
linkedin.com/in/janedoe

Senior Go engineer with five years of backend experience.`

// scriptedClient routes prompts to canned responses by sniffing the
// prompt text, the same way the pipeline's four stages differ.
type scriptedClient struct {
	mu      sync.Mutex
	calls   []string
	respond func(prompt string) (string, error)
}

func (c *scriptedClient) Complete(ctx context.Context, prompt string) (string, error) {
	c.mu.Lock()
	c.calls = append(c.calls, prompt)
	c.mu.Unlock()
	return c.respond(prompt)
}

func (c *scriptedClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// canned builds a schema-conforming JSON response so Parse accepts it.
func canned(fields schema.Response, overrides map[string]any) string {
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		out[f.Name] = "value for " + f.Name
	}
	for k, v := range overrides {
		out[k] = v
	}
	data, err := json.Marshal(out)
	if err != nil {
		panic(err)
	}
	return string(data)
}

func schemaForStage(stage string) schema.Response {
	switch stage {
	case "parse_resume":
		return prompts.ResumeParseSchema()
	case "parse_job":
		return prompts.JobDescriptionSchema()
	case "compare":
		return prompts.CompareSchema()
	case "visualize":
		return prompts.VisualizeSchema()
	}
	return nil
}

func stageFor(prompt string) string {
	switch {
	case strings.Contains(prompt, "professional resume parser"):
		return "parse_resume"
	case strings.Contains(prompt, "job description analyzer"):
		return "parse_job"
	case strings.Contains(prompt, "Professional job interviewer"):
		return "compare"
	case strings.Contains(prompt, "precise JSON-outputting assistant"):
		return "visualize"
	}
	return "unknown"
}

func happyClient(t *testing.T) *scriptedClient {
	t.Helper()
	return &scriptedClient{respond: func(prompt string) (string, error) {
		switch stageFor(prompt) {
		case "parse_resume":
			return canned(schemaForStage("parse_resume"), map[string]any{"Skills": []any{"Go", "SQL"}}), nil
		case "parse_job":
			return canned(schemaForStage("parse_job"), nil), nil
		case "compare":
			return canned(schemaForStage("compare"), map[string]any{"Match Percentage": "85%"}), nil
		case "visualize":
			return canned(schemaForStage("visualize"), map[string]any{"visual Match Percentage": "72%"}), nil
		}
		return "", errors.New("unrecognized prompt")
	}}
}

func newTestService(client llm.Client) *Service {
	store := resumes.NewService(resumes.NewMemoryRepo())
	return NewService(llm.StaticProvider{C: client}, store, nil, &watchdog.Guard{})
}

func baseRequest() Request {
	return Request{
		FileName:       "resume.txt",
		FileData:       []byte(sampleResumeText),
		MimeType:       "text/plain",
		JobDescription: "Go developer, five years experience, PostgreSQL",
		RequestID:      "req-1",
	}
}

func TestProcessFullPipeline(t *testing.T) {
	client := happyClient(t)
	svc := newTestService(client)

	result, err := svc.Process(context.Background(), baseRequest())
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if client.callCount() != 4 {
		t.Fatalf("expected 4 model calls, got %d", client.callCount())
	}
	if result.ResumeData == nil || result.JobData == nil || result.Comparison == nil || result.Analysis == nil {
		t.Fatalf("expected all stage results, got %+v", result)
	}
	if got := result.Comparison["Match Percentage"]; got != "85" {
		t.Fatalf("expected match percentage cleaned to 85, got %v", got)
	}
	if got := result.Analysis["visual Match Percentage"]; got != "72" {
		t.Fatalf("expected visual match percentage cleaned to 72, got %v", got)
	}
	if result.ModelName != llm.ModelFlash {
		t.Fatalf("expected default model %s, got %s", llm.ModelFlash, result.ModelName)
	}
	if result.Record.ID == "" {
		t.Fatalf("expected stored record")
	}
	if result.Record.PersonalInfo.Name != "Jane Doe" {
		t.Fatalf("expected personal info extraction, got %+v", result.Record.PersonalInfo)
	}

	stored, err := svc.Resumes.Get(context.Background(), result.Record.ID)
	if err != nil {
		t.Fatalf("stored record not retrievable: %v", err)
	}
	if stored.OriginalText == "" {
		t.Fatalf("expected stored original text")
	}
}

func TestProcessParseFailureDegrades(t *testing.T) {
	client := &scriptedClient{respond: func(prompt string) (string, error) {
		if stageFor(prompt) == "parse_resume" {
			return "", errors.New("model refused")
		}
		return canned(schemaForStage(stageFor(prompt)), nil), nil
	}}
	svc := newTestService(client)

	result, err := svc.Process(context.Background(), baseRequest())
	if err != nil {
		t.Fatalf("Process returned error: %v", err)
	}
	if result.ResumeData != nil {
		t.Fatalf("expected nil resume data after parse failure")
	}
	if result.JobData == nil {
		t.Fatalf("expected job parse to still run")
	}
	if result.Comparison != nil || result.Analysis != nil {
		t.Fatalf("comparison requires both parses, got %+v", result)
	}
	// parse_resume and parse_job only; compare and visualize skipped.
	if client.callCount() != 2 {
		t.Fatalf("expected 2 model calls, got %d", client.callCount())
	}
	if result.Record.ID == "" {
		t.Fatalf("expected record stored despite degraded stages")
	}
}

func TestProcessQuotaAborts(t *testing.T) {
	client := &scriptedClient{respond: func(prompt string) (string, error) {
		return "", errors.New("429 resource has been exhausted (quota)")
	}}
	svc := newTestService(client)

	result, err := svc.Process(context.Background(), baseRequest())
	if !llm.IsQuota(err) {
		t.Fatalf("expected quota error, got %v", err)
	}
	if client.callCount() != 1 {
		t.Fatalf("quota must abort on first call, got %d calls", client.callCount())
	}
	if result.Record.ID != "" {
		t.Fatalf("expected no record stored on quota abort")
	}
}

func TestProcessInputValidation(t *testing.T) {
	svc := newTestService(happyClient(t))

	req := baseRequest()
	req.FileData = nil
	if _, err := svc.Process(context.Background(), req); !IsInputError(err) {
		t.Fatalf("expected input error for missing file, got %v", err)
	}

	req = baseRequest()
	req.JobDescription = "   "
	if _, err := svc.Process(context.Background(), req); !IsInputError(err) {
		t.Fatalf("expected input error for empty job description, got %v", err)
	}
}

func TestProcessUnreadableUpload(t *testing.T) {
	svc := newTestService(happyClient(t))

	req := baseRequest()
	req.FileName = "resume.zip"
	req.FileData = []byte("PK\x03\x04 not a document")
	req.MimeType = "application/zip"

	_, err := svc.Process(context.Background(), req)
	if !IsInputError(err) {
		t.Fatalf("expected input error for unsupported upload, got %v", err)
	}
}
