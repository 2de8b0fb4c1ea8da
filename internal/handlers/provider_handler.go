package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/heritage/internal/flash"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
	"github.com/stwalsh4118/heritage/internal/services"
)

const providersPath = "/providers"

// ProviderHandler serves the provider pages.
type ProviderHandler struct {
	*Pages
	service services.ProviderService
	lookups services.LookupService
}

// NewProviderHandler creates a new ProviderHandler instance.
func NewProviderHandler(pages *Pages, service services.ProviderService, lookups services.LookupService) *ProviderHandler {
	return &ProviderHandler{Pages: pages, service: service, lookups: lookups}
}

// Register mounts the provider routes on r.
func (h *ProviderHandler) Register(r gin.IRoutes) {
	r.GET("/", h.List)
	r.GET("/add", h.AddForm)
	r.POST("/add", h.Create)
	r.GET("/view/:id", h.View)
	r.GET("/edit/:id", h.EditForm)
	r.POST("/edit/:id", h.Update)
	r.POST("/delete/:id", h.Delete)
}

// ProviderQuery holds the raw provider list filters.
type ProviderQuery struct {
	Search string `form:"search"`
	Role   string `form:"role"`
}

// List handles GET /providers/.
func (h *ProviderHandler) List(c *gin.Context) {
	var q ProviderQuery
	_ = c.ShouldBindQuery(&q)

	ctx := c.Request.Context()
	rows, err := h.service.List(ctx, models.ProviderFilter{Search: q.Search, Role: q.Role})
	if err != nil {
		h.readFailed(c, err, "/", "Providers")
		return
	}
	values, err := h.lookups.Values(ctx, repository.ProviderRoles)
	if err != nil {
		h.readFailed(c, err, "/", "Providers")
		return
	}

	h.render(c, "providers/list", "providers", "Providers", gin.H{
		"Rows":  rows,
		"Count": len(rows),
		"Query": q,
		"Roles": values[repository.ProviderRoles],
	})
}

// View handles GET /providers/view/:id.
func (h *ProviderHandler) View(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, providersPath+"/", "Provider")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, providersPath+"/", "Provider")
		return
	}

	h.render(c, "providers/view", "providers", detail.CompanyName, gin.H{"Provider": detail})
}

// AddForm handles GET /providers/add.
func (h *ProviderHandler) AddForm(c *gin.Context) {
	h.render(c, "providers/form", "providers", "Add provider", gin.H{
		"Action":   providersPath + "/add",
		"Provider": &models.Provider{},
	})
}

// EditForm handles GET /providers/edit/:id.
func (h *ProviderHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, providersPath+"/", "Provider")
		return
	}

	p, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, providersPath+"/", "Provider")
		return
	}

	h.render(c, "providers/form", "providers", "Edit provider", gin.H{
		"Action":   fmt.Sprintf("%s/edit/%d", providersPath, id),
		"Provider": p,
	})
}

// Create handles POST /providers/add.
func (h *ProviderHandler) Create(c *gin.Context) {
	var form ProviderForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, providersPath+"/add")
		return
	}

	id, err := h.service.Create(c.Request.Context(), form.model(0))
	if err != nil {
		h.writeFailed(c, err, providersPath+"/", providersPath+"/add", "Provider")
		return
	}

	h.redirect(c, viewPath(providersPath, id), flash.Success, "Provider added")
}

// Update handles POST /providers/edit/:id.
func (h *ProviderHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, providersPath+"/", "Provider")
		return
	}
	back := fmt.Sprintf("%s/edit/%d", providersPath, id)

	var form ProviderForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, back)
		return
	}

	if err := h.service.Update(c.Request.Context(), form.model(id)); err != nil {
		h.writeFailed(c, err, providersPath+"/", back, "Provider")
		return
	}

	h.redirect(c, viewPath(providersPath, id), flash.Success, "Provider updated")
}

// Delete handles POST /providers/delete/:id. A provider with interventions is kept.
func (h *ProviderHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, providersPath+"/", "Provider")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeFailed(c, err, providersPath+"/", viewPath(providersPath, id), "Provider")
		return
	}

	h.redirect(c, providersPath+"/", flash.Success, "Provider deleted")
}
