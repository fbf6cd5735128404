// Package insight runs the resume-vs-job analysis pipeline: extract the
// uploaded resume, parse both sides with the model, compare them, and
// produce visualization statistics. Individual model stages may fail
// without failing the request; quota exhaustion aborts immediately.
package insight

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"resume-insight/internal/extract"
	"resume-insight/internal/llm"
	"resume-insight/internal/postprocess"
	"resume-insight/internal/prompts"
	"resume-insight/internal/resumes"
	"resume-insight/internal/schema"
	"resume-insight/internal/shared/storage/object"
	"resume-insight/internal/shared/telemetry"
	"resume-insight/internal/watchdog"
)

// InputError marks a request the caller can fix: missing upload, empty
// job description, unreadable file.
type InputError struct {
	Message string
}

func (e *InputError) Error() string { return e.Message }

// Request carries one analysis request through the pipeline.
type Request struct {
	FileName       string
	FileData       []byte
	MimeType       string
	JobDescription string
	SelectedServer string
	RequestID      string
}

// Result is the bundle returned to the caller. Stage maps are nil when
// that stage failed or was skipped.
type Result struct {
	ResumeData  map[string]any
	JobData     map[string]any
	Comparison  map[string]any
	Analysis    map[string]any
	Record      resumes.Record
	ModelName   string
}

// Service wires the pipeline dependencies.
type Service struct {
	Provider llm.Provider
	Resumes  *resumes.Service
	Uploads  object.ObjectStore
	Guard    *watchdog.Guard
}

// NewService constructs a Service.
func NewService(provider llm.Provider, store *resumes.Service, uploads object.ObjectStore, guard *watchdog.Guard) *Service {
	return &Service{Provider: provider, Resumes: store, Uploads: uploads, Guard: guard}
}

// Process runs the full pipeline. Parse, compare and visualize failures
// degrade the result instead of failing it; quota errors and input
// errors are returned to the caller.
func (s *Service) Process(ctx context.Context, req Request) (Result, error) {
	if len(req.FileData) == 0 {
		return Result{}, &InputError{Message: "resume file is required"}
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return Result{}, &InputError{Message: "job description is required"}
	}

	modelName := llm.ResolveModel(req.SelectedServer)
	client := llm.WithRetry(s.Provider.ClientFor(modelName), req.RequestID)

	s.archiveUpload(ctx, req)

	resumeText, err := extract.FromUpload(req.FileData, req.MimeType, req.FileName)
	if err != nil {
		return Result{}, &InputError{Message: fmt.Sprintf("resume extraction failed: %v", err)}
	}

	result := Result{ModelName: modelName}

	fields, prompt := prompts.ResumeParse(resumeText)
	result.ResumeData, err = s.stage(ctx, client, "parse_resume", fields, prompt, req.RequestID)
	if llm.IsQuota(err) {
		return result, err
	}

	fields, prompt = prompts.JobDescription(req.JobDescription)
	result.JobData, err = s.stage(ctx, client, "parse_job", fields, prompt, req.RequestID)
	if llm.IsQuota(err) {
		return result, err
	}

	if result.ResumeData != nil && result.JobData != nil {
		fields, prompt = prompts.Compare(result.ResumeData, result.JobData)
		result.Comparison, err = s.stage(ctx, client, "compare", fields, prompt, req.RequestID)
		if llm.IsQuota(err) {
			return result, err
		}
		postprocess.Apply(result.Comparison)

		fields, prompt = prompts.Visualize(result.ResumeData, result.JobData)
		result.Analysis, err = s.stage(ctx, client, "visualize", fields, prompt, req.RequestID)
		if llm.IsQuota(err) {
			return result, err
		}
		postprocess.Apply(result.Analysis)
	}

	record, err := s.Resumes.Store(ctx, req.FileName, resumeText, result.ResumeData)
	if err != nil {
		return result, fmt.Errorf("store resume: %w", err)
	}
	result.Record = record
	return result, nil
}

// stage runs one model call under the watchdog. A nil map with nil
// error means the stage failed and the pipeline should continue.
func (s *Service) stage(ctx context.Context, client llm.Client, name string, fields schema.Response, prompt string, requestID string) (map[string]any, error) {
	var out map[string]any
	err := s.Guard.Do(ctx, func(ctx context.Context) error {
		raw, err := client.Complete(ctx, prompt)
		if err != nil {
			return llm.ClassifyError(fmt.Errorf("llm complete: %w", err))
		}
		out, err = fields.Parse(raw)
		return err
	})
	if err == nil {
		return out, nil
	}
	telemetry.Error("insight.stage_failed", map[string]any{
		"stage":      name,
		"request_id": requestID,
		"error":      err.Error(),
	})
	if llm.IsQuota(err) {
		return nil, err
	}
	return nil, nil
}

// archiveUpload keeps a copy of the raw upload; failures only log.
func (s *Service) archiveUpload(ctx context.Context, req Request) {
	if s.Uploads == nil {
		return
	}
	key, size, _, err := s.Uploads.Save(ctx, req.FileName, bytes.NewReader(req.FileData))
	if err != nil {
		telemetry.Warn("insight.upload_archive_failed", map[string]any{
			"request_id": req.RequestID,
			"error":      err.Error(),
		})
		return
	}
	telemetry.Info("insight.upload_archived", map[string]any{
		"request_id": req.RequestID,
		"key":        key,
		"size_bytes": size,
	})
}

// IsInputError reports whether the error chain contains an InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
