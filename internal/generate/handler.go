package generate

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/llm"
	"resume-insight/internal/shared/metrics"
	"resume-insight/internal/shared/server/middleware"
	"resume-insight/internal/shared/server/respond"
	"resume-insight/internal/watchdog"
)

const restartGrace = 2 * time.Second

// Handler exposes resume generation over HTTP.
type Handler struct {
	Service *Service
	Guard   *watchdog.Guard
}

// NewHandler constructs a Handler.
func NewHandler(service *Service, guard *watchdog.Guard) *Handler {
	return &Handler{Service: service, Guard: guard}
}

type generateRequest struct {
	ResumeID       string         `json:"resume_id"`
	ResumeText     map[string]any `json:"resumeText"`
	Feedback       map[string]any `json:"feedback"`
	SelectedServer string         `json:"selectedServer"`
	IncludeDOCX    bool           `json:"includeDocx"`
}

// GenerateResume handles POST /api/generate-resume.
func (h *Handler) GenerateResume(c *gin.Context) {
	metrics.IncGenerateStarted()
	started := metrics.NowMillis()

	var body generateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		metrics.IncGenerateFailed()
		respond.Failure(c, "invalid request body: "+err.Error())
		return
	}
	if body.ResumeID != "" {
		c.Set("resumeId", body.ResumeID)
	}

	result, err := h.Service.Generate(c.Request.Context(), Request{
		ResumeID:       body.ResumeID,
		ResumeData:     body.ResumeText,
		Feedback:       body.Feedback,
		SelectedServer: body.SelectedServer,
		IncludeDOCX:    body.IncludeDOCX,
		RequestID:      middleware.RequestIDFromContext(c),
	})

	var quota *llm.QuotaError
	switch {
	case errors.As(err, &quota):
		metrics.IncGenerateFailed()
		metrics.IncQuotaError()
		h.Guard.ScheduleRestart(restartGrace, "quota_exceeded")
		respond.JSON(c, http.StatusOK, gin.H{
			"success":             false,
			"error_type":          "quota_exceeded",
			"message":             "Server quota exceeded. Auto-restarting... try to select different server",
			"auto_restarting":     true,
			"alternative_servers": quota.ServerSwitchAdvice,
		})
		return
	case err != nil:
		metrics.IncGenerateFailed()
		respond.Failure(c, err.Error())
		return
	}

	metrics.ObserveGenerateDurationMs(metrics.NowMillis() - started)

	payload := gin.H{
		"success":          true,
		"generated_resume": result.Resume,
		"improved_resume":  result.TextVersion,
		"pdf_base64":       result.PDFBase64,
		"filename":         result.Filename,
	}
	if result.DOCXBase64 != "" {
		payload["docx_base64"] = result.DOCXBase64
	}
	respond.OK(c, payload)
}
