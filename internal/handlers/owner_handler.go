package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/heritage/internal/flash"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
	"github.com/stwalsh4118/heritage/internal/services"
)

const ownersPath = "/owners"

// OwnerHandler serves the owner pages.
type OwnerHandler struct {
	*Pages
	service services.OwnerService
	lookups services.LookupService
}

// NewOwnerHandler creates a new OwnerHandler instance.
func NewOwnerHandler(pages *Pages, service services.OwnerService, lookups services.LookupService) *OwnerHandler {
	return &OwnerHandler{Pages: pages, service: service, lookups: lookups}
}

// Register mounts the owner routes on r.
func (h *OwnerHandler) Register(r gin.IRoutes) {
	r.GET("/", h.List)
	r.GET("/add", h.AddForm)
	r.POST("/add", h.Create)
	r.GET("/view/:id", h.View)
	r.GET("/edit/:id", h.EditForm)
	r.POST("/edit/:id", h.Update)
	r.POST("/delete/:id", h.Delete)
}

// OwnerQuery holds the raw owner list filters.
type OwnerQuery struct {
	Search    string `form:"search"`
	OwnerType string `form:"owner_type"`
}

// List handles GET /owners/.
func (h *OwnerHandler) List(c *gin.Context) {
	var q OwnerQuery
	_ = c.ShouldBindQuery(&q)

	ctx := c.Request.Context()
	rows, err := h.service.List(ctx, models.OwnerFilter{Search: q.Search, OwnerType: q.OwnerType})
	if err != nil {
		h.readFailed(c, err, "/", "Owners")
		return
	}
	values, err := h.lookups.Values(ctx, repository.OwnerTypes)
	if err != nil {
		h.readFailed(c, err, "/", "Owners")
		return
	}

	h.render(c, "owners/list", "owners", "Owners", gin.H{
		"Rows":       rows,
		"Count":      len(rows),
		"Query":      q,
		"OwnerTypes": values[repository.OwnerTypes],
	})
}

// View handles GET /owners/view/:id.
func (h *OwnerHandler) View(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, ownersPath+"/", "Owner")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, ownersPath+"/", "Owner")
		return
	}

	h.render(c, "owners/view", "owners", detail.FullName, gin.H{"Owner": detail})
}

// AddForm handles GET /owners/add.
func (h *OwnerHandler) AddForm(c *gin.Context) {
	h.render(c, "owners/form", "owners", "Add owner", gin.H{"Action": ownersPath + "/add", "Owner": &models.Owner{}})
}

// EditForm handles GET /owners/edit/:id.
func (h *OwnerHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, ownersPath+"/", "Owner")
		return
	}

	owner, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, ownersPath+"/", "Owner")
		return
	}

	h.render(c, "owners/form", "owners", "Edit owner", gin.H{
		"Action": fmt.Sprintf("%s/edit/%d", ownersPath, id),
		"Owner":  owner,
	})
}

// Create handles POST /owners/add.
func (h *OwnerHandler) Create(c *gin.Context) {
	var form OwnerForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, ownersPath+"/add")
		return
	}

	id, err := h.service.Create(c.Request.Context(), form.model(0))
	if err != nil {
		h.writeFailed(c, err, ownersPath+"/", ownersPath+"/add", "Owner")
		return
	}

	h.redirect(c, viewPath(ownersPath, id), flash.Success, "Owner added")
}

// Update handles POST /owners/edit/:id.
func (h *OwnerHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, ownersPath+"/", "Owner")
		return
	}
	back := fmt.Sprintf("%s/edit/%d", ownersPath, id)

	var form OwnerForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, back)
		return
	}

	if err := h.service.Update(c.Request.Context(), form.model(id)); err != nil {
		h.writeFailed(c, err, ownersPath+"/", back, "Owner")
		return
	}

	h.redirect(c, viewPath(ownersPath, id), flash.Success, "Owner updated")
}

// Delete handles POST /owners/delete/:id.
func (h *OwnerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, ownersPath+"/", "Owner")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeFailed(c, err, ownersPath+"/", viewPath(ownersPath, id), "Owner")
		return
	}

	h.redirect(c, ownersPath+"/", flash.Success, "Owner deleted")
}
