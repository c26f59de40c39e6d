package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	apperrors "skillgap-analyzer/internal/common/errors"
	"skillgap-analyzer/internal/http/dto"

	"github.com/gin-gonic/gin"
)

// Check probes one dependency for readiness.
type Check func(ctx context.Context) error

type HealthHandler struct {
	version string
	checks  map[string]Check
	timeout time.Duration
	errors  *ErrorWriter
}

func NewHealthHandler(version string, checks map[string]Check, errs *ErrorWriter) *HealthHandler {
	return &HealthHandler{
		version: version,
		checks:  checks,
		timeout: 3 * time.Second,
		errors:  errs,
	}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ServiceInfo{
		Message: "Skill-Gap Analyzer API",
		Version: h.version,
		Status:  "running",
	})
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "healthy"})
}

// Ready runs every check; any failure makes the service not ready.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := dto.HealthResponse{Status: "ready", Checks: make(map[string]string, len(names))}
	status := http.StatusOK
	for _, name := range names {
		if err := h.checks[name](ctx); err != nil {
			resp.Checks[name] = apperrors.AsStandardError(err).Details
			if resp.Checks[name] == "" {
				resp.Checks[name] = err.Error()
			}
			resp.Status = "not ready"
			status = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	c.JSON(status, resp)
}

// NotFound answers unmatched routes.
func (h *HealthHandler) NotFound(c *gin.Context) {
	h.errors.Write(c, apperrors.NewRouteNotFoundError(c.Request.URL.RequestURI()))
}
