package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-summarizer/pkg/config"
	pkgmw "github.com/johnquangdev/meeting-summarizer/pkg/middleware"
)

const healthCheckTimeout = 2 * time.Second

// Pinger is a dependency the health check probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	summaryHandler *Summary
	archiveHandler *Archive
	checks         map[string]Pinger
}

// NewRouter creates a new router with all handlers. archiveHandler may be
// nil when storage is disabled.
func NewRouter(cfg *config.Config, summaryHandler *Summary, archiveHandler *Archive, checks map[string]Pinger) *Router {
	return &Router{
		cfg:            cfg,
		summaryHandler: summaryHandler,
		archiveHandler: archiveHandler,
		checks:         checks,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	rt.setupSummaryRoutes(v1)
}

// setupSummaryRoutes configures meeting summary routes
func (rt *Router) setupSummaryRoutes(g *echo.Group) {
	summaryGroup := g.Group("/meeting-summary")

	summaryGroup.POST("", rt.summaryHandler.Summarize)
	summaryGroup.POST("/local", rt.summaryHandler.SummarizeLocal)
	summaryGroup.POST("/render", rt.summaryHandler.Render)

	if rt.archiveHandler != nil {
		summaryGroup.GET("/:id/archive", rt.archiveHandler.Links, pkgmw.RequireUUIDParam("id"))
	} else {
		summaryGroup.GET("/:id/archive", rt.notImplemented)
	}
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not enabled",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Set STORAGE_ENABLED=true to archive summaries",
	})
}

// healthCheck returns health status. A failing dependency degrades the
// status but the service keeps answering, since every dependency is optional.
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
		Summarizer:  rt.cfg.Summarizer.Provider,
		Transcriber: rt.cfg.Transcription.Provider,
	}

	if len(rt.checks) > 0 {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		resp.Checks = make(map[string]string, len(rt.checks))
		for name, check := range rt.checks {
			if err := check.Ping(ctx); err != nil {
				resp.Checks[name] = err.Error()
				resp.Status = "degraded"
				continue
			}
			resp.Checks[name] = "ok"
		}
	}

	return c.JSON(http.StatusOK, resp)
}
