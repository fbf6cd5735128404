// Package server assembles the Gin engine: middleware, API routes and
// the dev-only debug surface.
package server

import (
	"time"

	"github.com/gin-gonic/gin"

	"resume-insight/internal/generate"
	"resume-insight/internal/insight"
	"resume-insight/internal/llm"
	"resume-insight/internal/shared/config"
	"resume-insight/internal/shared/metrics"
	"resume-insight/internal/shared/server/middleware"
	"resume-insight/internal/shared/server/respond"
	"resume-insight/internal/watchdog"
)

// Handlers bundles the route handlers the router mounts.
type Handlers struct {
	Insight  *insight.Handler
	Generate *generate.Handler
	Guard    *watchdog.Guard
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	startedAt := time.Now().UTC()

	r.GET("/", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"message": "Resume Insight API",
			"status":  "running",
		})
	})

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"success":   true,
			"message":   "API is healthy",
			"status":    "200 OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	api.POST("/process-resume", h.Insight.ProcessResume)
	api.POST("/generate-resume", h.Generate.GenerateResume)

	api.GET("/server-status", func(c *gin.Context) {
		respond.OK(c, gin.H{
			"success":              true,
			"status":               "running",
			"uptime_seconds":       int(time.Since(startedAt).Seconds()),
			"default_server":       cfg.DefaultServer,
			"models": gin.H{
				"server1": llm.ModelPro,
				"server2": llm.ModelFlash,
				"default": llm.ModelFallback,
			},
			"auto_restart_enabled": cfg.WatchdogEnabled,
			"restart_info": gin.H{
				"watchdog_timeout_seconds": cfg.WatchdogTimeout.Seconds(),
				"max_restarts":             cfg.MaxRestarts,
				"restart_backoff_seconds":  cfg.RestartBackoff.Seconds(),
			},
		})
	})
	api.POST("/restart-server", func(c *gin.Context) {
		h.Guard.ScheduleRestart(time.Second, "manual")
		respond.OK(c, gin.H{
			"success":        true,
			"message":        "Server restart initiated",
			"restart_reason": "manual",
		})
	})

	if cfg.Env == "dev" {
		debug := api.Group("/debug")
		debug.GET("/resume/:id", h.Insight.DebugResume)
		debug.GET("/storage", h.Insight.DebugStorage)
		api.GET("/metrics", metrics.Handler())
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8503"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
