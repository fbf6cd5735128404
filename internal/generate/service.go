// Package generate builds an improved resume document from a stored
// analysis, optional client-supplied data and optional reviewer
// feedback, and renders it to PDF and DOCX.
package generate

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"resume-insight/internal/llm"
	"resume-insight/internal/prompts"
	"resume-insight/internal/render"
	"resume-insight/internal/resumes"
	"resume-insight/internal/shared/telemetry"
	"resume-insight/internal/watchdog"
)

// Request carries one generation request.
type Request struct {
	ResumeID       string
	ResumeData     map[string]any
	Feedback       map[string]any
	SelectedServer string
	IncludeDOCX    bool
	RequestID      string
}

// Result is the rendered document bundle.
type Result struct {
	Resume      map[string]any
	TextVersion string
	PDFBase64   string
	DOCXBase64  string
	Filename    string
}

// Service wires generation dependencies. Provider may be nil, in which
// case the merged data is rendered without a model rewrite.
type Service struct {
	Provider llm.Provider
	Resumes  *resumes.Service
	Guard    *watchdog.Guard
}

// NewService constructs a Service.
func NewService(provider llm.Provider, store *resumes.Service, guard *watchdog.Guard) *Service {
	return &Service{Provider: provider, Resumes: store, Guard: guard}
}

// Generate merges the stored record with client data, optionally asks
// the model to rewrite the resume against the feedback, and renders the
// result. Client-supplied fields win over stored ones on collision.
func (s *Service) Generate(ctx context.Context, req Request) (Result, error) {
	final := make(map[string]any)

	if req.ResumeID != "" {
		record, err := s.Resumes.Get(ctx, req.ResumeID)
		if err != nil && !errors.Is(err, resumes.ErrNotFound) {
			return Result{}, fmt.Errorf("load resume %s: %w", req.ResumeID, err)
		}
		if err == nil {
			mergeInto(final, record.ParsedData)
			mergePersonalInfo(final, record.PersonalInfo)
		}
	}

	// Client data last so explicit fields override the stored snapshot.
	mergeInto(final, req.ResumeData)

	if contact := contactString(final); contact != "" {
		final["Contact Info"] = contact
	}

	if len(final) == 0 {
		return Result{}, errors.New("no resume data: provide resume_id or resumeText")
	}

	output := final
	if len(req.Feedback) > 0 && s.Provider != nil {
		rewritten, err := s.rewrite(ctx, req, final)
		if llm.IsQuota(err) {
			return Result{}, err
		}
		if err == nil {
			output = rewritten
		}
	}

	pdfData, err := render.ResumePDF(output)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Resume:      output,
		TextVersion: render.ResumeText(output),
		PDFBase64:   base64.StdEncoding.EncodeToString(pdfData),
		Filename:    documentName(output) + ".pdf",
	}

	if req.IncludeDOCX {
		docxData, err := render.ResumeDOCX(output)
		if err != nil {
			return Result{}, err
		}
		result.DOCXBase64 = base64.StdEncoding.EncodeToString(docxData)
	}
	return result, nil
}

// rewrite asks the model for an improved resume. Failures other than
// quota degrade to the merged data.
func (s *Service) rewrite(ctx context.Context, req Request, candidate map[string]any) (map[string]any, error) {
	modelName := llm.ResolveModel(req.SelectedServer)
	client := llm.WithRetry(s.Provider.ClientFor(modelName), req.RequestID)
	fields, prompt := prompts.Regenerate(req.Feedback, candidate)

	var out map[string]any
	err := s.Guard.Do(ctx, func(ctx context.Context) error {
		var invokeErr error
		out, invokeErr = llm.Invoke(ctx, client, fields, prompt)
		return invokeErr
	})
	if err != nil {
		telemetry.Error("generate.rewrite_failed", map[string]any{
			"request_id": req.RequestID,
			"error":      err.Error(),
		})
		return nil, err
	}
	return out, nil
}

func mergeInto(dst, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
}

func mergePersonalInfo(dst map[string]any, info resumes.PersonalInfo) {
	if info.Name != "" {
		dst["name"] = info.Name
		dst["Name"] = info.Name
	}
	if info.Email != "" {
		dst["email"] = info.Email
	}
	if info.Phone != "" {
		dst["phone"] = info.Phone
	}
	if info.LinkedIn != "" {
		dst["linkedin"] = info.LinkedIn
	}
}

// contactString assembles "Email: .. | Phone: .. | LinkedIn: .." from
// the lowercase personal-info keys.
func contactString(data map[string]any) string {
	var parts []string
	if v := stringValue(data, "email"); v != "" {
		parts = append(parts, "Email: "+v)
	}
	if v := stringValue(data, "phone"); v != "" {
		parts = append(parts, "Phone: "+v)
	}
	if v := stringValue(data, "linkedin"); v != "" {
		parts = append(parts, "LinkedIn: "+v)
	}
	return strings.Join(parts, " | ")
}

func documentName(resume map[string]any) string {
	name := stringValue(resume, "Name")
	if name == "" {
		name = "Generated_Resume"
	}
	return strings.ReplaceAll(name, " ", "_")
}

func stringValue(data map[string]any, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}
