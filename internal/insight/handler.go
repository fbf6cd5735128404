package insight

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/llm"
	"resume-insight/internal/resumes"
	"resume-insight/internal/shared/metrics"
	"resume-insight/internal/shared/server/middleware"
	"resume-insight/internal/shared/server/respond"
	"resume-insight/internal/watchdog"
)

// restartGrace is how long the process keeps serving after a quota
// error before it exits for a restart.
const restartGrace = 2 * time.Second

// Handler exposes the analysis pipeline over HTTP.
type Handler struct {
	Service *Service
	Guard   *watchdog.Guard
}

// NewHandler constructs a Handler.
func NewHandler(service *Service, guard *watchdog.Guard) *Handler {
	return &Handler{Service: service, Guard: guard}
}

// ProcessResume handles POST /api/process-resume.
func (h *Handler) ProcessResume(c *gin.Context) {
	metrics.IncAnalyzeStarted()
	started := metrics.NowMillis()

	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		metrics.IncAnalyzeFailed()
		respond.Failure(c, "resume file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		metrics.IncAnalyzeFailed()
		respond.Failure(c, "failed to read resume upload")
		return
	}

	jobDescription := c.PostForm("job_description")
	if jobDescription == "" {
		jobDescription = c.PostForm("jobDescription")
	}
	if jobDescription == "" {
		jobDescription = c.PostForm("jobUrl")
	}

	selectedServer := c.PostForm("selectedServer")
	if selectedServer == "" {
		selectedServer = llm.DefaultServer
	}

	req := Request{
		FileName:       header.Filename,
		FileData:       data,
		MimeType:       header.Header.Get("Content-Type"),
		JobDescription: jobDescription,
		SelectedServer: selectedServer,
		RequestID:      middleware.RequestIDFromContext(c),
	}

	result, err := h.Service.Process(c.Request.Context(), req)
	c.Set("modelName", result.ModelName)
	if result.Record.ID != "" {
		c.Set("resumeId", result.Record.ID)
	}

	var quota *llm.QuotaError
	switch {
	case errors.As(err, &quota):
		metrics.IncAnalyzeFailed()
		metrics.IncQuotaError()
		h.Guard.ScheduleRestart(restartGrace, "quota_exceeded")
		respond.JSON(c, http.StatusOK, gin.H{
			"success":                   false,
			"error_type":                "quota_exceeded",
			"message":                   "Server quota exceeded. Auto-restarting... try to select different server",
			"auto_restarting":           true,
			"restart_reason":            "quota_exceeded",
			"server_switch_recommended": true,
			"alternative_servers":       quota.ServerSwitchAdvice,
			"estimated_restart_time":    "30 seconds",
			"suggestion":                "Please switch to a different server or wait for restart.",
		})
		return
	case err != nil:
		metrics.IncAnalyzeFailed()
		respond.Failure(c, err.Error())
		return
	}

	metrics.IncAnalyzeCompleted()
	metrics.ObserveAnalyzeDurationMs(metrics.NowMillis() - started)

	respond.OK(c, gin.H{
		"success":          true,
		"compare_response": result.Comparison,
		"resume_text":      result.ResumeData,
		"job_description":  result.JobData,
		"analysis":         result.Analysis,
		"resume_id":        result.Record.ID,
		"personal_info":    result.Record.PersonalInfo,
	})
}

// DebugResume handles GET /api/debug/resume/:id.
func (h *Handler) DebugResume(c *gin.Context) {
	id := c.Param("id")
	record, err := h.Service.Resumes.Get(c.Request.Context(), id)
	if errors.Is(err, resumes.ErrNotFound) {
		respond.Failure(c, "no resume data found for ID: "+id)
		return
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", err.Error(), nil)
		return
	}
	respond.OK(c, gin.H{
		"success":       true,
		"resume_id":     record.ID,
		"stored_data":   record,
		"personal_info": record.PersonalInfo,
		"timestamp":     record.CreatedAt,
	})
}

// DebugStorage handles GET /api/debug/storage.
func (h *Handler) DebugStorage(c *gin.Context) {
	records, err := h.Service.Resumes.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", err.Error(), nil)
		return
	}
	ids := make([]string, 0, len(records))
	summary := make(map[string]gin.H, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
		summary[record.ID] = gin.H{
			"filename":          record.Filename,
			"timestamp":         record.CreatedAt,
			"has_personal_info": !record.PersonalInfo.Empty(),
			"personal_info":     record.PersonalInfo,
		}
	}
	respond.OK(c, gin.H{
		"success":         true,
		"total_stored":    len(records),
		"resume_ids":      ids,
		"storage_summary": summary,
	})
}
