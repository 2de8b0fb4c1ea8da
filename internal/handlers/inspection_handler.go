package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/heritage/internal/flash"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
	"github.com/stwalsh4118/heritage/internal/services"
)

const inspectionsPath = "/inspections"

// InspectionHandler serves the inspection pages.
type InspectionHandler struct {
	*Pages
	service services.InspectionService
	lookups services.LookupService
}

// NewInspectionHandler creates a new InspectionHandler instance.
func NewInspectionHandler(pages *Pages, service services.InspectionService, lookups services.LookupService) *InspectionHandler {
	return &InspectionHandler{Pages: pages, service: service, lookups: lookups}
}

// Register mounts the inspection routes on r.
func (h *InspectionHandler) Register(r gin.IRoutes) {
	r.GET("/", h.List)
	r.GET("/add", h.AddForm)
	r.POST("/add", h.Create)
	r.GET("/view/:id", h.View)
	r.GET("/edit/:id", h.EditForm)
	r.POST("/edit/:id", h.Update)
	r.POST("/delete/:id", h.Delete)
}

// InspectionQuery holds the raw inspection list filters.
type InspectionQuery struct {
	Search   string `form:"search"`
	State    string `form:"state"`
	Building string `form:"building"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
}

// List handles GET /inspections/.
func (h *InspectionHandler) List(c *gin.Context) {
	var q InspectionQuery
	_ = c.ShouldBindQuery(&q)

	ctx := c.Request.Context()
	rows, err := h.service.List(ctx, models.InspectionFilter{
		Search:     q.Search,
		State:      q.State,
		BuildingID: optionalID(q.Building),
		DateFrom:   optionalDate(q.DateFrom),
		DateTo:     optionalDate(q.DateTo),
	})
	if err != nil {
		h.readFailed(c, err, "/", "Inspections")
		return
	}

	options, err := h.lookups.Options(ctx, repository.BuildingOptions)
	if err != nil {
		h.readFailed(c, err, "/", "Inspections")
		return
	}
	values, err := h.lookups.Values(ctx, repository.InspectionStates)
	if err != nil {
		h.readFailed(c, err, "/", "Inspections")
		return
	}

	h.render(c, "inspections/list", "inspections", "Inspections", gin.H{
		"Rows":      rows,
		"Count":     len(rows),
		"Query":     q,
		"Buildings": options[repository.BuildingOptions],
		"States":    values[repository.InspectionStates],
	})
}

// View handles GET /inspections/view/:id.
func (h *InspectionHandler) View(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, inspectionsPath+"/", "Inspection")
		return
	}

	inspection, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, inspectionsPath+"/", "Inspection")
		return
	}

	h.render(c, "inspections/view", "inspections", "Inspection", gin.H{"Inspection": inspection})
}

// AddForm handles GET /inspections/add, optionally preselecting ?building=.
func (h *InspectionHandler) AddForm(c *gin.Context) {
	inspection := &models.Inspection{}
	if id := optionalID(c.Query("building")); id != nil {
		inspection.BuildingID = *id
	}
	h.form(c, "Add inspection", inspectionsPath+"/add", inspection)
}

// EditForm handles GET /inspections/edit/:id.
func (h *InspectionHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, inspectionsPath+"/", "Inspection")
		return
	}

	row, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, inspectionsPath+"/", "Inspection")
		return
	}

	h.form(c, "Edit inspection", fmt.Sprintf("%s/edit/%d", inspectionsPath, id), &row.Inspection)
}

func (h *InspectionHandler) form(c *gin.Context, title, action string, inspection *models.Inspection) {
	options, err := h.lookups.Options(c.Request.Context(), repository.BuildingOptions)
	if err != nil {
		h.readFailed(c, err, inspectionsPath+"/", "Inspection")
		return
	}

	h.render(c, "inspections/form", "inspections", title, gin.H{
		"Action":     action,
		"Inspection": inspection,
		"Buildings":  options[repository.BuildingOptions],
		"States":     models.ObservedStates,
	})
}

// Create handles POST /inspections/add.
func (h *InspectionHandler) Create(c *gin.Context) {
	var form InspectionForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, inspectionsPath+"/add")
		return
	}

	id, err := h.service.Create(c.Request.Context(), form.model(0))
	if err != nil {
		h.writeFailed(c, err, inspectionsPath+"/", inspectionsPath+"/add", "Inspection")
		return
	}

	h.redirect(c, viewPath(inspectionsPath, id), flash.Success, "Inspection recorded")
}

// Update handles POST /inspections/edit/:id.
func (h *InspectionHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, inspectionsPath+"/", "Inspection")
		return
	}
	back := fmt.Sprintf("%s/edit/%d", inspectionsPath, id)

	var form InspectionEditForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, back)
		return
	}

	if err := h.service.Update(c.Request.Context(), form.model(id)); err != nil {
		h.writeFailed(c, err, inspectionsPath+"/", back, "Inspection")
		return
	}

	h.redirect(c, viewPath(inspectionsPath, id), flash.Success, "Inspection updated")
}

// Delete handles POST /inspections/delete/:id.
func (h *InspectionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, inspectionsPath+"/", "Inspection")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeFailed(c, err, inspectionsPath+"/", viewPath(inspectionsPath, id), "Inspection")
		return
	}

	h.redirect(c, inspectionsPath+"/", flash.Success, "Inspection deleted")
}
