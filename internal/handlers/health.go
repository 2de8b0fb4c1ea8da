package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/heritage/internal/middleware"
	"github.com/stwalsh4118/heritage/internal/reports"
)

const (
	// AppVersion is the current version of the application
	AppVersion = "1.0.0"
	// HealthCheckTimeout bounds the database checks of the readiness probe
	HealthCheckTimeout = 2 * time.Second
)

// Probe is the part of the database the readiness check needs.
// *database.Database satisfies it.
type Probe interface {
	Ping(ctx context.Context) error
	HasColumn(ctx context.Context, table, column string) (bool, error)
}

// HealthHandler serves the liveness, readiness and info endpoints.
type HealthHandler struct {
	db        Probe
	startTime time.Time
	env       string
	spatial   bool
}

// NewHealthHandler creates a new HealthHandler instance. spatial reports
// whether building geometries are maintained.
func NewHealthHandler(db Probe, env string, spatial bool) *HealthHandler {
	return &HealthHandler{db: db, startTime: time.Now(), env: env, spatial: spatial}
}

// HealthResponse is the liveness answer.
type HealthResponse struct {
	Status string `json:"status"`
}

// ReadyResponse is the readiness answer. Schema is "migrated" once the
// building table exists.
type ReadyResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Schema   string `json:"schema"`
}

// InfoResponse describes the running instance.
type InfoResponse struct {
	Version     string   `json:"version"`
	Environment string   `json:"environment"`
	Uptime      string   `json:"uptime"`
	Spatial     bool     `json:"spatial"`
	Exports     []string `json:"exports"`
}

// Health handles GET /health. No dependency is checked.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}

// Ready handles GET /health/ready: 200 when the database answers and the
// schema is in place, 503 otherwise.
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), HealthCheckTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.notReady(c, "Database ping failed", err, ReadyResponse{Status: "not_ready", Database: "disconnected", Schema: "unknown"})
		return
	}

	migrated, err := h.db.HasColumn(ctx, "building", "id")
	if err != nil {
		h.notReady(c, "Schema check failed", err, ReadyResponse{Status: "not_ready", Database: "connected", Schema: "unknown"})
		return
	}
	if !migrated {
		h.notReady(c, "Schema not migrated", nil, ReadyResponse{Status: "not_ready", Database: "connected", Schema: "missing"})
		return
	}

	c.JSON(http.StatusOK, ReadyResponse{Status: "ready", Database: "connected", Schema: "migrated"})
}

func (h *HealthHandler) notReady(c *gin.Context, msg string, err error, body ReadyResponse) {
	if log := middleware.GetLogger(c); log != nil {
		log.Error(msg, err, map[string]interface{}{"timeout": HealthCheckTimeout.String()})
	}
	c.JSON(http.StatusServiceUnavailable, body)
}

// Info handles GET /api/v1/info.
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, InfoResponse{
		Version:     AppVersion,
		Environment: h.env,
		Uptime:      formatUptime(time.Since(h.startTime)),
		Spatial:     h.spatial,
		Exports:     []string{reports.FormatCSV, reports.FormatExcel, reports.FormatPDF},
	})
}

// formatUptime renders d as "1d 2h 3m 4s", leaving out the day part when zero.
func formatUptime(d time.Duration) string {
	d = d.Truncate(time.Second)
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	seconds := (d - minutes*time.Minute) / time.Second

	clock := fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	if days > 0 {
		return fmt.Sprintf("%dd %s", days, clock)
	}
	return clock
}
