package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpapi "github.com/arka-001/portfolio-edge/internal/api/http"
	"github.com/arka-001/portfolio-edge/internal/upstream"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := httpapi.NewHealthHandler("portfolio-edge", "1.0.0", nil)
	handler.RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var response httpapi.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))

	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, "portfolio-edge", response.Service)
	assert.Equal(t, "1.0.0", response.Version)
	assert.Equal(t, "disabled", response.Upstream)
}

func TestHealthCheck_UpstreamUnknownBeforeFirstProbe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	probe := upstream.NewProbe("http://127.0.0.1:1")

	router := gin.New()
	handler := httpapi.NewHealthHandler("portfolio-edge", "1.0.0", probe)
	handler.RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var response httpapi.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))

	assert.Equal(t, "unknown", response.Upstream)
	assert.Nil(t, response.UpstreamCheckedAt)
}

func TestHealthCheck_UpstreamDownAfterProbe(t *testing.T) {
	gin.SetMode(gin.TestMode)

	probe := upstream.NewProbe("http://127.0.0.1:1")
	probe.Check()

	router := gin.New()
	handler := httpapi.NewHealthHandler("portfolio-edge", "1.0.0", probe)
	handler.RegisterRoutes(router)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var response httpapi.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))

	assert.Equal(t, "down", response.Upstream)
	assert.NotNil(t, response.UpstreamCheckedAt)
}
