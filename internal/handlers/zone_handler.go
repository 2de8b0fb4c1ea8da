package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/heritage/internal/flash"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
	"github.com/stwalsh4118/heritage/internal/services"
)

const zonesPath = "/zones"

// ZoneHandler serves the zone pages.
type ZoneHandler struct {
	*Pages
	service services.ZoneService
	lookups services.LookupService
}

// NewZoneHandler creates a new ZoneHandler instance.
func NewZoneHandler(pages *Pages, service services.ZoneService, lookups services.LookupService) *ZoneHandler {
	return &ZoneHandler{Pages: pages, service: service, lookups: lookups}
}

// Register mounts the zone routes on r.
func (h *ZoneHandler) Register(r gin.IRoutes) {
	r.GET("/", h.List)
	r.GET("/add", h.AddForm)
	r.POST("/add", h.Create)
	r.GET("/view/:id", h.View)
	r.GET("/edit/:id", h.EditForm)
	r.POST("/edit/:id", h.Update)
	r.POST("/delete/:id", h.Delete)
}

// ZoneQuery holds the raw zone list filters.
type ZoneQuery struct {
	Search   string `form:"search"`
	ZoneType string `form:"zone_type"`
}

// List handles GET /zones/.
func (h *ZoneHandler) List(c *gin.Context) {
	var q ZoneQuery
	_ = c.ShouldBindQuery(&q)

	ctx := c.Request.Context()
	rows, err := h.service.List(ctx, models.ZoneFilter{Search: q.Search, ZoneType: q.ZoneType})
	if err != nil {
		h.readFailed(c, err, "/", "Zones")
		return
	}
	values, err := h.lookups.Values(ctx, repository.ZoneTypes)
	if err != nil {
		h.readFailed(c, err, "/", "Zones")
		return
	}

	h.render(c, "zones/list", "zones", "Zones", gin.H{
		"Rows":      rows,
		"Count":     len(rows),
		"Query":     q,
		"ZoneTypes": values[repository.ZoneTypes],
	})
}

// View handles GET /zones/view/:id.
func (h *ZoneHandler) View(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, zonesPath+"/", "Zone")
		return
	}

	detail, err := h.service.Detail(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, zonesPath+"/", "Zone")
		return
	}

	h.render(c, "zones/view", "zones", detail.Name, gin.H{"Zone": detail})
}

// AddForm handles GET /zones/add.
func (h *ZoneHandler) AddForm(c *gin.Context) {
	h.render(c, "zones/form", "zones", "Add zone", gin.H{"Action": zonesPath + "/add", "Zone": &models.Zone{}})
}

// EditForm handles GET /zones/edit/:id.
func (h *ZoneHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, zonesPath+"/", "Zone")
		return
	}

	zone, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, zonesPath+"/", "Zone")
		return
	}

	h.render(c, "zones/form", "zones", "Edit zone", gin.H{
		"Action": fmt.Sprintf("%s/edit/%d", zonesPath, id),
		"Zone":   zone,
	})
}

// Create handles POST /zones/add.
func (h *ZoneHandler) Create(c *gin.Context) {
	var form ZoneForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, zonesPath+"/add")
		return
	}

	id, err := h.service.Create(c.Request.Context(), form.model(0))
	if err != nil {
		h.writeFailed(c, err, zonesPath+"/", zonesPath+"/add", "Zone")
		return
	}

	h.redirect(c, viewPath(zonesPath, id), flash.Success, "Zone added")
}

// Update handles POST /zones/edit/:id.
func (h *ZoneHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, zonesPath+"/", "Zone")
		return
	}
	back := fmt.Sprintf("%s/edit/%d", zonesPath, id)

	var form ZoneForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, back)
		return
	}

	if err := h.service.Update(c.Request.Context(), form.model(id)); err != nil {
		h.writeFailed(c, err, zonesPath+"/", back, "Zone")
		return
	}

	h.redirect(c, viewPath(zonesPath, id), flash.Success, "Zone updated")
}

// Delete handles POST /zones/delete/:id. A zone still holding buildings is kept.
func (h *ZoneHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, zonesPath+"/", "Zone")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeFailed(c, err, zonesPath+"/", viewPath(zonesPath, id), "Zone")
		return
	}

	h.redirect(c, zonesPath+"/", flash.Success, "Zone deleted")
}
