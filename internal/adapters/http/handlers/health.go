// Package handlers provides the HTTP handlers of the storefront: blog pages,
// publisher account pages, and the operational /-/ endpoints.
package handlers

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/storefront-web/internal/ports"
)

// defaultReadinessTimeout bounds the upstream checks behind /-/ready.
const defaultReadinessTimeout = 3 * time.Second

// BuildInfo contains build-time information about the service.
// These values are typically injected at build time using ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo creates a BuildInfo with the Go version automatically set.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// HealthHandlerConfig contains the dependencies of the health handler.
type HealthHandlerConfig struct {
	// Registry holds the upstream API checks.
	Registry ports.HealthRegistry

	Build BuildInfo

	// Gatherer is exposed on /-/metrics. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer

	// ReadinessTimeout bounds the checks run by /-/ready.
	ReadinessTimeout time.Duration
}

// HealthHandler handles the operational endpoints.
type HealthHandler struct {
	registry         ports.HealthRegistry
	buildInfo        BuildInfo
	metrics          http.Handler
	readinessTimeout time.Duration
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(cfg HealthHandlerConfig) *HealthHandler {
	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	timeout := cfg.ReadinessTimeout
	if timeout <= 0 {
		timeout = defaultReadinessTimeout
	}

	return &HealthHandler{
		registry:         cfg.Registry,
		buildInfo:        cfg.Build,
		metrics:          promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		readinessTimeout: timeout,
	}
}

type livenessResponse struct {
	Status string `json:"status"`
}

// Liveness handles GET /-/live. It answers 200 while the process runs and
// never touches the remote APIs.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, livenessResponse{
		Status: "ok",
	})
}

type readinessResponse struct {
	Status string                        `json:"status"`
	Checks map[string]*ports.CheckResult `json:"checks,omitempty"`
}

// Readiness handles GET /-/ready. It checks the content and publisher APIs
// and answers 503 when any of them is unreachable or failing.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.readinessTimeout)
	defer cancel()

	result := h.registry.CheckAll(ctx)

	status := http.StatusOK
	if result.Status == ports.HealthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, readinessResponse{
		Status: string(result.Status),
		Checks: result.Checks,
	})
}

// BuildInfoHandler handles GET /-/build.
func (h *HealthHandler) BuildInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// RegisterHealthRoutes registers the operational routes on rg:
//   - GET /live - Liveness check
//   - GET /ready - Readiness check
//   - GET /build - Build information
//   - GET /metrics - Prometheus metrics
func (h *HealthHandler) RegisterHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/live", h.Liveness)
	rg.GET("/ready", h.Readiness)
	rg.GET("/build", h.BuildInfoHandler)
	rg.GET("/metrics", gin.WrapH(h.metrics))
}
