package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/arka-001/portfolio-edge/internal/upstream"
)

type HealthResponse struct {
	Status            string     `json:"status"`
	Timestamp         time.Time  `json:"timestamp"`
	Service           string     `json:"service"`
	Version           string     `json:"version"`
	Upstream          string     `json:"upstream,omitempty"`
	UpstreamCheckedAt *time.Time `json:"upstream_checked_at,omitempty"`
}

type HealthHandler struct {
	serviceName string
	version     string
	probe       *upstream.Probe
}

func NewHealthHandler(serviceName, version string, probe *upstream.Probe) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		probe:       probe,
	}
}

// HealthCheck reports the edge's own liveness plus the last observed state
// of the content API. The edge is healthy even when the upstream is down;
// it just serves fallback content.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
		Upstream:  "disabled",
	}

	if h.probe != nil {
		status, checkedAt := h.probe.Status()
		resp.Upstream = string(status)
		if !checkedAt.IsZero() {
			resp.UpstreamCheckedAt = &checkedAt
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
