package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/stwalsh4118/heritage/internal/errors"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/services"
)

// DashboardHandler serves the summary page and its map data.
type DashboardHandler struct {
	*Pages
	service services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler instance.
func NewDashboardHandler(pages *Pages, service services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Pages: pages, service: service}
}

// MapResponse is the body of GET /api/v1/map.
type MapResponse struct {
	Buildings []models.MapBuilding `json:"buildings"`
	Count     int                  `json:"count"`
}

// MapQuery holds the optional map filters. Unlike the page filters, bad
// values are rejected rather than ignored.
type MapQuery struct {
	Zone  int64  `form:"zone" binding:"omitempty,gt=0"`
	Type  int64  `form:"type" binding:"omitempty,gt=0"`
	State string `form:"state" binding:"omitempty,oneof=Good Average Degraded Ruined"`
}

func (q MapQuery) filter() models.MapFilter {
	f := models.MapFilter{State: q.State}
	if q.Zone > 0 {
		f.ZoneID = &q.Zone
	}
	if q.Type > 0 {
		f.TypeID = &q.Type
	}
	return f
}

// Dashboard handles GET /.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	d, err := h.service.Build(c.Request.Context())
	if err != nil {
		h.readFailed(c, err, "/", "Dashboard")
		return
	}

	h.render(c, "dashboard", "dashboard", "Dashboard", gin.H{"Dashboard": d})
}

// Map handles GET /api/v1/map?zone=&type=&state=.
func (h *DashboardHandler) Map(c *gin.Context) {
	var q MapQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", map[string]interface{}{"error": err.Error()})
		return
	}

	buildings, err := h.service.MapBuildings(c.Request.Context(), q.filter())
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to load map data", err)
		return
	}
	if buildings == nil {
		buildings = []models.MapBuilding{}
	}

	c.JSON(http.StatusOK, MapResponse{Buildings: buildings, Count: len(buildings)})
}
