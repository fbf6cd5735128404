package respond

import (
	"github.com/gin-gonic/gin"

	"resume-insight/internal/shared/telemetry"
)

// ErrorBody is the machine-readable error object returned on non-200
// responses.
type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps ErrorBody alongside the success flag the frontend
// branches on.
type ErrorResponse struct {
	Error   ErrorBody `json:"error"`
	Success bool      `json:"success"`
}

// Error logs and sends a non-200 error response, aborting the handler
// chain. Handled pipeline failures use Failure instead; Error is for
// infrastructure problems the caller cannot fix.
func Error(c *gin.Context, status int, code, message string, details interface{}) {
	telemetry.Error("http.error", map[string]any{
		"request_id": c.GetString("requestId"),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     status,
		"code":       code,
		"message":    message,
	})
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   ErrorBody{Code: code, Message: message, Details: details},
	})
}
