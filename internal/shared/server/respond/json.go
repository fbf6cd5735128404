package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes a JSON response with the given status.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK writes a 200 OK JSON response.
func OK(c *gin.Context, payload interface{}) {
	JSON(c, http.StatusOK, payload)
}

// Failure writes a 200 OK response carrying success=false and an error
// message. The pipeline endpoints never surface handled failures as 5xx;
// the frontend branches on the success flag.
func Failure(c *gin.Context, message string) {
	JSON(c, http.StatusOK, gin.H{
		"success": false,
		"error":   message,
	})
}
