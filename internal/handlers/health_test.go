package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stwalsh4118/heritage/internal/logger"
	"github.com/stwalsh4118/heritage/internal/middleware"
)

// stubProbe answers the readiness checks with fixed results.
type stubProbe struct {
	pingErr   error
	schemaErr error
	migrated  bool
}

func (s stubProbe) Ping(ctx context.Context) error {
	return s.pingErr
}

func (s stubProbe) HasColumn(ctx context.Context, table, column string) (bool, error) {
	return s.migrated, s.schemaErr
}

func setupHealthRouter(handler *HealthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger.Nop()))
	router.GET("/health", handler.Health)
	router.GET("/health/ready", handler.Ready)
	router.GET("/api/v1/info", handler.Info)
	return router
}

func TestHealthHandler_Health(t *testing.T) {
	router := setupHealthRouter(NewHealthHandler(nil, "test", false))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var response HealthResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, HealthResponse{Status: "healthy"}, response)
}

func TestHealthHandler_Ready(t *testing.T) {
	tests := []struct {
		name           string
		probe          stubProbe
		expectedStatus int
		expectedBody   ReadyResponse
	}{
		{
			name:           "returns 200 when database answers and schema exists",
			probe:          stubProbe{migrated: true},
			expectedStatus: http.StatusOK,
			expectedBody:   ReadyResponse{Status: "ready", Database: "connected", Schema: "migrated"},
		},
		{
			name:           "returns 503 when database is unreachable",
			probe:          stubProbe{pingErr: errors.New("connection refused")},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ReadyResponse{Status: "not_ready", Database: "disconnected", Schema: "unknown"},
		},
		{
			name:           "returns 503 when schema is not migrated",
			probe:          stubProbe{},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ReadyResponse{Status: "not_ready", Database: "connected", Schema: "missing"},
		},
		{
			name:           "returns 503 when schema check fails",
			probe:          stubProbe{schemaErr: errors.New("permission denied")},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   ReadyResponse{Status: "not_ready", Database: "connected", Schema: "unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupHealthRouter(NewHealthHandler(tt.probe, "test", false))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			var response ReadyResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, tt.expectedBody, response)
		})
	}
}

func TestHealthHandler_Info(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		spatial bool
	}{
		{name: "development without spatial column", env: "development"},
		{name: "production with spatial column", env: "production", spatial: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(nil, tt.env, tt.spatial)
			handler.startTime = time.Now().Add(-2 * time.Hour)
			router := setupHealthRouter(handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/info", nil))

			assert.Equal(t, http.StatusOK, w.Code)
			var response InfoResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
			assert.Equal(t, AppVersion, response.Version)
			assert.Equal(t, tt.env, response.Environment)
			assert.Equal(t, tt.spatial, response.Spatial)
			assert.Contains(t, response.Uptime, "2h")
			assert.Equal(t, []string{"csv", "xlsx", "pdf"}, response.Exports)
		})
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"formats seconds only", 45 * time.Second, "0h 0m 45s"},
		{"formats minutes and seconds", 5*time.Minute + 30*time.Second, "0h 5m 30s"},
		{"formats hours, minutes and seconds", 2*time.Hour + 15*time.Minute + 45*time.Second, "2h 15m 45s"},
		{"formats days", 3*24*time.Hour + 5*time.Hour + 30*time.Minute + 15*time.Second, "3d 5h 30m 15s"},
		{"formats exactly one day", 24 * time.Hour, "1d 0h 0m 0s"},
		{"drops fractions of a second", 90*time.Second + 700*time.Millisecond, "0h 1m 30s"},
		{"formats zero duration", 0, "0h 0m 0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatUptime(tt.duration))
		})
	}
}

func TestInfoResponse_JSON(t *testing.T) {
	data, err := json.Marshal(InfoResponse{Version: "1.0.0", Environment: "test", Uptime: "1h 30m 45s", Exports: []string{"csv"}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"1.0.0","environment":"test","uptime":"1h 30m 45s","spatial":false,"exports":["csv"]}`, string(data))
}
