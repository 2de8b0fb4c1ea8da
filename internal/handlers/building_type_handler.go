package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/heritage/internal/flash"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/services"
)

const typesPath = "/types"

// BuildingTypeHandler serves the building type pages.
type BuildingTypeHandler struct {
	*Pages
	service services.BuildingTypeService
}

// NewBuildingTypeHandler creates a new BuildingTypeHandler instance.
func NewBuildingTypeHandler(pages *Pages, service services.BuildingTypeService) *BuildingTypeHandler {
	return &BuildingTypeHandler{Pages: pages, service: service}
}

// Register mounts the building type routes on r.
func (h *BuildingTypeHandler) Register(r gin.IRoutes) {
	r.GET("/", h.List)
	r.GET("/add", h.AddForm)
	r.POST("/add", h.Create)
	r.GET("/view/:id", h.View)
	r.GET("/edit/:id", h.EditForm)
	r.POST("/edit/:id", h.Update)
	r.POST("/delete/:id", h.Delete)
}

// List handles GET /types/.
func (h *BuildingTypeHandler) List(c *gin.Context) {
	search := c.Query("search")

	rows, err := h.service.List(c.Request.Context(), models.SearchFilter{Search: search})
	if err != nil {
		h.readFailed(c, err, "/", "Building types")
		return
	}

	h.render(c, "types/list", "types", "Building types", gin.H{
		"Rows":   rows,
		"Count":  len(rows),
		"Search": search,
	})
}

// View handles GET /types/view/:id.
func (h *BuildingTypeHandler) View(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, typesPath+"/", "Building type")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, typesPath+"/", "Building type")
		return
	}

	h.render(c, "types/view", "types", detail.Label, gin.H{"Type": detail})
}

// AddForm handles GET /types/add.
func (h *BuildingTypeHandler) AddForm(c *gin.Context) {
	h.render(c, "types/form", "types", "Add building type", gin.H{
		"Action": typesPath + "/add",
		"Type":   &models.BuildingType{},
	})
}

// EditForm handles GET /types/edit/:id.
func (h *BuildingTypeHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, typesPath+"/", "Building type")
		return
	}

	t, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, typesPath+"/", "Building type")
		return
	}

	h.render(c, "types/form", "types", "Edit building type", gin.H{
		"Action": fmt.Sprintf("%s/edit/%d", typesPath, id),
		"Type":   t,
	})
}

// Create handles POST /types/add.
func (h *BuildingTypeHandler) Create(c *gin.Context) {
	var form BuildingTypeForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, typesPath+"/add")
		return
	}

	id, err := h.service.Create(c.Request.Context(), &models.BuildingType{Label: strings.TrimSpace(form.Label)})
	if err != nil {
		h.writeFailed(c, err, typesPath+"/", typesPath+"/add", "Building type")
		return
	}

	h.redirect(c, viewPath(typesPath, id), flash.Success, "Building type added")
}

// Update handles POST /types/edit/:id.
func (h *BuildingTypeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, typesPath+"/", "Building type")
		return
	}
	back := fmt.Sprintf("%s/edit/%d", typesPath, id)

	var form BuildingTypeForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, back)
		return
	}

	t := &models.BuildingType{ID: id, Label: strings.TrimSpace(form.Label)}
	if err := h.service.Update(c.Request.Context(), t); err != nil {
		h.writeFailed(c, err, typesPath+"/", back, "Building type")
		return
	}

	h.redirect(c, viewPath(typesPath, id), flash.Success, "Building type updated")
}

// Delete handles POST /types/delete/:id.
func (h *BuildingTypeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, typesPath+"/", "Building type")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeFailed(c, err, typesPath+"/", viewPath(typesPath, id), "Building type")
		return
	}

	h.redirect(c, typesPath+"/", flash.Success, "Building type deleted")
}
