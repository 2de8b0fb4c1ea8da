package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/heritage/internal/flash"
	"github.com/stwalsh4118/heritage/internal/middleware"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/reports"
	"github.com/stwalsh4118/heritage/internal/repository"
	"github.com/stwalsh4118/heritage/internal/services"
)

const interventionsPath = "/interventions"

// InterventionHandler serves the intervention pages, validation and export.
type InterventionHandler struct {
	*Pages
	service  services.InterventionService
	lookups  services.LookupService
	exporter reports.Exporter
}

// NewInterventionHandler creates a new InterventionHandler instance.
func NewInterventionHandler(pages *Pages, service services.InterventionService, lookups services.LookupService, exporter reports.Exporter) *InterventionHandler {
	return &InterventionHandler{Pages: pages, service: service, lookups: lookups, exporter: exporter}
}

// Register mounts the intervention routes on r.
func (h *InterventionHandler) Register(r gin.IRoutes) {
	r.GET("/", h.List)
	r.GET("/export", h.Export)
	r.GET("/add", h.AddForm)
	r.POST("/add", h.Create)
	r.GET("/view/:id", h.View)
	r.GET("/edit/:id", h.EditForm)
	r.POST("/edit/:id", h.Update)
	r.POST("/delete/:id", h.Delete)
	r.POST("/validate/:id", h.Validate)
}

// InterventionQuery holds the raw intervention list filters.
type InterventionQuery struct {
	Search    string `form:"search"`
	Status    string `form:"status"`
	Building  string `form:"building"`
	Provider  string `form:"provider"`
	Validated string `form:"validated"`
}

func (q InterventionQuery) filter() models.InterventionFilter {
	return models.InterventionFilter{
		Search:     q.Search,
		Status:     q.Status,
		BuildingID: optionalID(q.Building),
		ProviderID: optionalID(q.Provider),
		Validated:  oneOf(q.Validated, models.ValidatedYes, models.ValidatedNo),
	}
}

// List handles GET /interventions/.
func (h *InterventionHandler) List(c *gin.Context) {
	var q InterventionQuery
	_ = c.ShouldBindQuery(&q)

	ctx := c.Request.Context()
	rows, err := h.service.List(ctx, q.filter())
	if err != nil {
		h.readFailed(c, err, "/", "Interventions")
		return
	}

	options, err := h.lookups.Options(ctx, repository.BuildingOptions, repository.ProviderOptions)
	if err != nil {
		h.readFailed(c, err, "/", "Interventions")
		return
	}
	values, err := h.lookups.Values(ctx, repository.WorkStatuses)
	if err != nil {
		h.readFailed(c, err, "/", "Interventions")
		return
	}

	h.render(c, "interventions/list", "interventions", "Interventions", gin.H{
		"Rows":      rows,
		"Count":     len(rows),
		"Query":     q,
		"Buildings": options[repository.BuildingOptions],
		"Providers": options[repository.ProviderOptions],
		"Statuses":  values[repository.WorkStatuses],
	})
}

// Export handles GET /interventions/export with the list filters and ?format=.
func (h *InterventionHandler) Export(c *gin.Context) {
	var q InterventionQuery
	_ = c.ShouldBindQuery(&q)

	format := c.DefaultQuery("format", reports.FormatCSV)
	if !reports.Supported(format) {
		h.redirect(c, interventionsPath+"/", flash.Warning, fmt.Sprintf("Unsupported export format %q", format))
		return
	}

	rows, err := h.service.List(c.Request.Context(), q.filter())
	if err != nil {
		h.readFailed(c, err, "/", "Interventions")
		return
	}

	file, err := h.exporter.Export(format, reports.InterventionsTable(rows))
	if err != nil {
		h.readFailed(c, err, interventionsPath+"/", "Interventions")
		return
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Info("Interventions exported", map[string]interface{}{"format": format, "rows": len(rows)})
	}
	sendFile(c, file)
}

// View handles GET /interventions/view/:id.
func (h *InterventionHandler) View(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, interventionsPath+"/", "Intervention")
		return
	}

	intervention, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, interventionsPath+"/", "Intervention")
		return
	}

	h.render(c, "interventions/view", "interventions", "Intervention", gin.H{"Intervention": intervention})
}

// AddForm handles GET /interventions/add, optionally preselecting ?building=.
func (h *InterventionHandler) AddForm(c *gin.Context) {
	intervention := &models.Intervention{WorkStatus: models.WorkPlanned}
	if id := optionalID(c.Query("building")); id != nil {
		intervention.BuildingID = *id
	}
	h.form(c, "Add intervention", interventionsPath+"/add", intervention)
}

// EditForm handles GET /interventions/edit/:id.
func (h *InterventionHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, interventionsPath+"/", "Intervention")
		return
	}

	row, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, interventionsPath+"/", "Intervention")
		return
	}

	h.form(c, "Edit intervention", fmt.Sprintf("%s/edit/%d", interventionsPath, id), &row.Intervention)
}

func (h *InterventionHandler) form(c *gin.Context, title, action string, intervention *models.Intervention) {
	options, err := h.lookups.Options(c.Request.Context(), repository.BuildingOptions, repository.ProviderOptions)
	if err != nil {
		h.readFailed(c, err, interventionsPath+"/", "Intervention")
		return
	}

	h.render(c, "interventions/form", "interventions", title, gin.H{
		"Action":       action,
		"Intervention": intervention,
		"Buildings":    options[repository.BuildingOptions],
		"Providers":    options[repository.ProviderOptions],
		"Statuses":     models.WorkStatuses,
	})
}

// Create handles POST /interventions/add.
func (h *InterventionHandler) Create(c *gin.Context) {
	var form InterventionForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, interventionsPath+"/add")
		return
	}

	id, err := h.service.Create(c.Request.Context(), form.model(0))
	if err != nil {
		h.writeFailed(c, err, interventionsPath+"/", interventionsPath+"/add", "Intervention")
		return
	}

	h.redirect(c, viewPath(interventionsPath, id), flash.Success, "Intervention added")
}

// Update handles POST /interventions/edit/:id.
func (h *InterventionHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, interventionsPath+"/", "Intervention")
		return
	}
	back := fmt.Sprintf("%s/edit/%d", interventionsPath, id)

	var form InterventionForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, back)
		return
	}

	if err := h.service.Update(c.Request.Context(), form.model(id)); err != nil {
		h.writeFailed(c, err, interventionsPath+"/", back, "Intervention")
		return
	}

	h.redirect(c, viewPath(interventionsPath, id), flash.Success, "Intervention updated")
}

// Delete handles POST /interventions/delete/:id.
func (h *InterventionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, interventionsPath+"/", "Intervention")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeFailed(c, err, interventionsPath+"/", viewPath(interventionsPath, id), "Intervention")
		return
	}

	h.redirect(c, interventionsPath+"/", flash.Success, "Intervention deleted")
}

// Validate handles POST /interventions/validate/:id. Validating twice
// replaces the earlier stamp.
func (h *InterventionHandler) Validate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, interventionsPath+"/", "Intervention")
		return
	}
	back := viewPath(interventionsPath, id)

	var form ValidationForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, back)
		return
	}

	if err := h.service.Validate(c.Request.Context(), id, form.Comment); err != nil {
		h.writeFailed(c, err, interventionsPath+"/", back, "Intervention")
		return
	}

	h.redirect(c, back, flash.Success, "Intervention validated")
}
