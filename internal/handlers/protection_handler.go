package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/heritage/internal/flash"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/services"
)

const protectionsPath = "/protections"

// ProtectionHandler serves the protection level pages.
type ProtectionHandler struct {
	*Pages
	service services.ProtectionService
}

// NewProtectionHandler creates a new ProtectionHandler instance.
func NewProtectionHandler(pages *Pages, service services.ProtectionService) *ProtectionHandler {
	return &ProtectionHandler{Pages: pages, service: service}
}

// Register mounts the protection level routes on r.
func (h *ProtectionHandler) Register(r gin.IRoutes) {
	r.GET("/", h.List)
	r.GET("/add", h.AddForm)
	r.POST("/add", h.Create)
	r.GET("/view/:id", h.View)
	r.GET("/edit/:id", h.EditForm)
	r.POST("/edit/:id", h.Update)
	r.POST("/delete/:id", h.Delete)
}

// List handles GET /protections/.
func (h *ProtectionHandler) List(c *gin.Context) {
	search := c.Query("search")

	rows, err := h.service.List(c.Request.Context(), models.SearchFilter{Search: search})
	if err != nil {
		h.readFailed(c, err, "/", "Protection levels")
		return
	}

	h.render(c, "protections/list", "protections", "Protection levels", gin.H{
		"Rows":   rows,
		"Count":  len(rows),
		"Search": search,
	})
}

// View handles GET /protections/view/:id.
func (h *ProtectionHandler) View(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, protectionsPath+"/", "Protection level")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, protectionsPath+"/", "Protection level")
		return
	}

	h.render(c, "protections/view", "protections", detail.Level, gin.H{"Protection": detail})
}

// AddForm handles GET /protections/add.
func (h *ProtectionHandler) AddForm(c *gin.Context) {
	h.render(c, "protections/form", "protections", "Add protection level", gin.H{
		"Action":     protectionsPath + "/add",
		"Protection": &models.ProtectionLevel{},
	})
}

// EditForm handles GET /protections/edit/:id.
func (h *ProtectionHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, protectionsPath+"/", "Protection level")
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, protectionsPath+"/", "Protection level")
		return
	}

	h.render(c, "protections/form", "protections", "Edit protection level", gin.H{
		"Action":     fmt.Sprintf("%s/edit/%d", protectionsPath, id),
		"Protection": p,
	})
}

// Create handles POST /protections/add.
func (h *ProtectionHandler) Create(c *gin.Context) {
	var form ProtectionForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, protectionsPath+"/add")
		return
	}

	id, err := h.service.Create(c.Request.Context(), &models.ProtectionLevel{Level: strings.TrimSpace(form.Level)})
	if err != nil {
		h.writeFailed(c, err, protectionsPath+"/", protectionsPath+"/add", "Protection level")
		return
	}

	h.redirect(c, viewPath(protectionsPath, id), flash.Success, "Protection level added")
}

// Update handles POST /protections/edit/:id.
func (h *ProtectionHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, protectionsPath+"/", "Protection level")
		return
	}
	back := fmt.Sprintf("%s/edit/%d", protectionsPath, id)

	var form ProtectionForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, back)
		return
	}

	p := &models.ProtectionLevel{ID: id, Level: strings.TrimSpace(form.Level)}
	if err := h.service.Update(c.Request.Context(), p); err != nil {
		h.writeFailed(c, err, protectionsPath+"/", back, "Protection level")
		return
	}

	h.redirect(c, viewPath(protectionsPath, id), flash.Success, "Protection level updated")
}

// Delete handles POST /protections/delete/:id.
func (h *ProtectionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, protectionsPath+"/", "Protection level")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeFailed(c, err, protectionsPath+"/", viewPath(protectionsPath, id), "Protection level")
		return
	}

	h.redirect(c, protectionsPath+"/", flash.Success, "Protection level deleted")
}
