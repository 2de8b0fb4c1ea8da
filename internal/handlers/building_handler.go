package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/heritage/internal/flash"
	"github.com/stwalsh4118/heritage/internal/middleware"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/reports"
	"github.com/stwalsh4118/heritage/internal/repository"
	"github.com/stwalsh4118/heritage/internal/services"
)

const buildingsPath = "/buildings"

// BuildingHandler serves the building pages and export.
type BuildingHandler struct {
	*Pages
	service  services.BuildingService
	lookups  services.LookupService
	exporter reports.Exporter
}

// NewBuildingHandler creates a new BuildingHandler instance.
func NewBuildingHandler(pages *Pages, service services.BuildingService, lookups services.LookupService, exporter reports.Exporter) *BuildingHandler {
	return &BuildingHandler{Pages: pages, service: service, lookups: lookups, exporter: exporter}
}

// Register mounts the building routes on r.
func (h *BuildingHandler) Register(r gin.IRoutes) {
	r.GET("/", h.List)
	r.GET("/export", h.Export)
	r.GET("/add", h.AddForm)
	r.POST("/add", h.Create)
	r.GET("/view/:id", h.View)
	r.GET("/edit/:id", h.EditForm)
	r.POST("/edit/:id", h.Update)
	r.POST("/delete/:id", h.Delete)
}

// BuildingQuery holds the raw building list filters.
type BuildingQuery struct {
	Search     string `form:"search"`
	Zone       string `form:"zone"`
	Type       string `form:"type"`
	Protection string `form:"protection"`
	State      string `form:"state"`
}

func (q BuildingQuery) filter() models.BuildingFilter {
	return models.BuildingFilter{
		Search:       q.Search,
		ZoneID:       optionalID(q.Zone),
		TypeID:       optionalID(q.Type),
		ProtectionID: optionalID(q.Protection),
		State:        q.State,
	}
}

// List handles GET /buildings/.
func (h *BuildingHandler) List(c *gin.Context) {
	var q BuildingQuery
	_ = c.ShouldBindQuery(&q)

	ctx := c.Request.Context()
	rows, err := h.service.List(ctx, q.filter())
	if err != nil {
		h.readFailed(c, err, "/", "Buildings")
		return
	}

	options, err := h.lookups.Options(ctx, repository.ZoneOptions, repository.TypeOptions, repository.ProtectionOptions)
	if err != nil {
		h.readFailed(c, err, "/", "Buildings")
		return
	}
	values, err := h.lookups.Values(ctx, repository.InspectionStates)
	if err != nil {
		h.readFailed(c, err, "/", "Buildings")
		return
	}

	h.render(c, "buildings/list", "buildings", "Buildings", gin.H{
		"Rows":        rows,
		"Count":       len(rows),
		"Query":       q,
		"Zones":       options[repository.ZoneOptions],
		"Types":       options[repository.TypeOptions],
		"Protections": options[repository.ProtectionOptions],
		"States":      values[repository.InspectionStates],
	})
}

// Export handles GET /buildings/export with the list filters and ?format=.
func (h *BuildingHandler) Export(c *gin.Context) {
	var q BuildingQuery
	_ = c.ShouldBindQuery(&q)

	format := c.DefaultQuery("format", reports.FormatCSV)
	if !reports.Supported(format) {
		h.redirect(c, buildingsPath+"/", flash.Warning, fmt.Sprintf("Unsupported export format %q", format))
		return
	}

	rows, err := h.service.List(c.Request.Context(), q.filter())
	if err != nil {
		h.readFailed(c, err, "/", "Buildings")
		return
	}

	file, err := h.exporter.Export(format, reports.BuildingsTable(rows))
	if err != nil {
		h.readFailed(c, err, buildingsPath+"/", "Buildings")
		return
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Info("Buildings exported", map[string]interface{}{"format": format, "rows": len(rows)})
	}
	sendFile(c, file)
}

// View handles GET /buildings/view/:id.
func (h *BuildingHandler) View(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, buildingsPath+"/", "Building")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, buildingsPath+"/", "Building")
		return
	}

	h.render(c, "buildings/view", "buildings", detail.Name, gin.H{"Building": detail})
}

// AddForm handles GET /buildings/add.
func (h *BuildingHandler) AddForm(c *gin.Context) {
	h.form(c, "Add building", buildingsPath+"/add", &models.Building{})
}

// EditForm handles GET /buildings/edit/:id.
func (h *BuildingHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, buildingsPath+"/", "Building")
		return
	}

	building, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, buildingsPath+"/", "Building")
		return
	}

	h.form(c, "Edit building", fmt.Sprintf("%s/edit/%d", buildingsPath, id), building)
}

func (h *BuildingHandler) form(c *gin.Context, title, action string, building *models.Building) {
	options, err := h.lookups.Options(c.Request.Context(),
		repository.ZoneOptions, repository.TypeOptions, repository.ProtectionOptions, repository.OwnerOptions)
	if err != nil {
		h.readFailed(c, err, buildingsPath+"/", "Building")
		return
	}

	h.render(c, "buildings/form", "buildings", title, gin.H{
		"Action":      action,
		"Building":    building,
		"Zones":       options[repository.ZoneOptions],
		"Types":       options[repository.TypeOptions],
		"Protections": options[repository.ProtectionOptions],
		"Owners":      options[repository.OwnerOptions],
	})
}

// Create handles POST /buildings/add.
func (h *BuildingHandler) Create(c *gin.Context) {
	var form BuildingForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, buildingsPath+"/add")
		return
	}

	id, err := h.service.Create(c.Request.Context(), form.model(0))
	if err != nil {
		h.writeFailed(c, err, buildingsPath+"/", buildingsPath+"/add", "Building")
		return
	}

	h.redirect(c, viewPath(buildingsPath, id), flash.Success, "Building added")
}

// Update handles POST /buildings/edit/:id.
func (h *BuildingHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, buildingsPath+"/", "Building")
		return
	}
	back := fmt.Sprintf("%s/edit/%d", buildingsPath, id)

	var form BuildingForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, back)
		return
	}

	if err := h.service.Update(c.Request.Context(), form.model(id)); err != nil {
		h.writeFailed(c, err, buildingsPath+"/", back, "Building")
		return
	}

	h.redirect(c, viewPath(buildingsPath, id), flash.Success, "Building updated")
}

// Delete handles POST /buildings/delete/:id. Documents, interventions and
// inspections of the building go with it.
func (h *BuildingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, buildingsPath+"/", "Building")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeFailed(c, err, buildingsPath+"/", viewPath(buildingsPath, id), "Building")
		return
	}

	h.redirect(c, buildingsPath+"/", flash.Success, "Building deleted")
}

func viewPath(prefix string, id int64) string {
	return prefix + "/view/" + strconv.FormatInt(id, 10)
}

// sendFile answers with an export as an attachment.
func sendFile(c *gin.Context, file *reports.File) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
