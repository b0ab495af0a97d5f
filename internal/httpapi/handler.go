// Package httpapi exposes the tracking core as a small JSON API for the
// single-page UI.
package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Services bundles the domain services the API serves.
type Services struct {
	Projects  ProjectService
	Dashboard DashboardService
	Notices   NoticeService
}

// Handler carries the API dependencies.
type Handler struct {
	svc    Services
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Handler.
type Option func(*Handler)

// WithClock overrides the clock used for schedule labels.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// NewHandler creates a new API handler.
func NewHandler(svc Services, logger *slog.Logger, opts ...Option) *Handler {
	h := &Handler{svc: svc, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Router assembles the gin engine with all API routes.
func (h *Handler) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	api := router.Group("/api")
	api.GET("/projects", h.listProjects)
	api.GET("/projects/template", h.projectTemplate)
	api.GET("/projects/:id", h.getProject)
	api.GET("/projects/:id/schedule", h.projectSchedule)
	api.POST("/projects", h.saveProject)
	api.DELETE("/projects/:id", h.deleteProject)
	api.GET("/dashboard", h.dashboard)
	api.GET("/notices", h.listNotices)

	return router
}

// fail logs the failure and writes the JSON error envelope.
func (h *Handler) fail(c *gin.Context, status int, err error) {
	if h.logger != nil {
		h.logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"error", err,
		)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
