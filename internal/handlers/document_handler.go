package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/heritage/internal/flash"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
	"github.com/stwalsh4118/heritage/internal/services"
)

const documentsPath = "/documents"

// DocumentHandler serves the document pages.
type DocumentHandler struct {
	*Pages
	service   services.DocumentService
	buildings services.BuildingService
	lookups   services.LookupService
}

// NewDocumentHandler creates a new DocumentHandler instance.
func NewDocumentHandler(pages *Pages, service services.DocumentService, buildings services.BuildingService, lookups services.LookupService) *DocumentHandler {
	return &DocumentHandler{Pages: pages, service: service, buildings: buildings, lookups: lookups}
}

// Register mounts the document routes on r.
func (h *DocumentHandler) Register(r gin.IRoutes) {
	r.GET("/", h.List)
	r.GET("/building/:id", h.ForBuilding)
	r.GET("/add", h.AddForm)
	r.POST("/add", h.Create)
	r.GET("/view/:id", h.View)
	r.GET("/edit/:id", h.EditForm)
	r.POST("/edit/:id", h.Update)
	r.POST("/delete/:id", h.Delete)
}

// DocumentQuery holds the raw document list filters.
type DocumentQuery struct {
	Search   string `form:"search"`
	DocType  string `form:"doc_type"`
	Building string `form:"building"`
}

// List handles GET /documents/.
func (h *DocumentHandler) List(c *gin.Context) {
	var q DocumentQuery
	_ = c.ShouldBindQuery(&q)

	ctx := c.Request.Context()
	rows, err := h.service.List(ctx, models.DocumentFilter{
		Search:     q.Search,
		DocType:    q.DocType,
		BuildingID: optionalID(q.Building),
	})
	if err != nil {
		h.readFailed(c, err, "/", "Documents")
		return
	}

	options, err := h.lookups.Options(ctx, repository.BuildingOptions)
	if err != nil {
		h.readFailed(c, err, "/", "Documents")
		return
	}
	values, err := h.lookups.Values(ctx, repository.DocumentTypes)
	if err != nil {
		h.readFailed(c, err, "/", "Documents")
		return
	}

	h.render(c, "documents/list", "documents", "Documents", gin.H{
		"Rows":      rows,
		"Count":     len(rows),
		"Query":     q,
		"Buildings": options[repository.BuildingOptions],
		"DocTypes":  values[repository.DocumentTypes],
	})
}

// ForBuilding handles GET /documents/building/:id.
func (h *DocumentHandler) ForBuilding(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, buildingsPath+"/", "Building")
		return
	}

	ctx := c.Request.Context()
	building, err := h.buildings.Get(ctx, id)
	if err != nil {
		h.readFailed(c, err, buildingsPath+"/", "Building")
		return
	}

	rows, err := h.service.List(ctx, models.DocumentFilter{BuildingID: &id})
	if err != nil {
		h.readFailed(c, err, viewPath(buildingsPath, id), "Documents")
		return
	}

	h.render(c, "documents/building", "documents", "Documents of "+building.Name, gin.H{
		"Building": building,
		"Rows":     rows,
		"Count":    len(rows),
	})
}

// View handles GET /documents/view/:id.
func (h *DocumentHandler) View(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, documentsPath+"/", "Document")
		return
	}

	document, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, documentsPath+"/", "Document")
		return
	}

	h.render(c, "documents/view", "documents", document.Title, gin.H{"Document": document})
}

// AddForm handles GET /documents/add, optionally preselecting ?building=.
func (h *DocumentHandler) AddForm(c *gin.Context) {
	document := &models.Document{DocType: models.DocPhoto}
	if id := optionalID(c.Query("building")); id != nil {
		document.BuildingID = *id
	}
	h.form(c, "Add document", documentsPath+"/add", document)
}

// EditForm handles GET /documents/edit/:id.
func (h *DocumentHandler) EditForm(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, documentsPath+"/", "Document")
		return
	}

	row, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.readFailed(c, err, documentsPath+"/", "Document")
		return
	}

	h.form(c, "Edit document", fmt.Sprintf("%s/edit/%d", documentsPath, id), &row.Document)
}

func (h *DocumentHandler) form(c *gin.Context, title, action string, document *models.Document) {
	options, err := h.lookups.Options(c.Request.Context(), repository.BuildingOptions)
	if err != nil {
		h.readFailed(c, err, documentsPath+"/", "Document")
		return
	}

	h.render(c, "documents/form", "documents", title, gin.H{
		"Action":    action,
		"Document":  document,
		"Buildings": options[repository.BuildingOptions],
		"DocTypes":  models.DocumentTypes,
	})
}

// Create handles POST /documents/add and returns to the building page.
func (h *DocumentHandler) Create(c *gin.Context) {
	var form DocumentForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, addDocumentPath(form.BuildingID))
		return
	}

	if _, err := h.service.Create(c.Request.Context(), form.model(0)); err != nil {
		h.writeFailed(c, err, documentsPath+"/", addDocumentPath(form.BuildingID), "Document")
		return
	}

	h.redirect(c, viewPath(buildingsPath, form.BuildingID), flash.Success, "Document added")
}

// Update handles POST /documents/edit/:id.
func (h *DocumentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, documentsPath+"/", "Document")
		return
	}
	back := fmt.Sprintf("%s/edit/%d", documentsPath, id)

	var form DocumentForm
	if err := c.ShouldBind(&form); err != nil {
		h.bindFailed(c, err, back)
		return
	}

	if err := h.service.Update(c.Request.Context(), form.model(id)); err != nil {
		h.writeFailed(c, err, documentsPath+"/", back, "Document")
		return
	}

	h.redirect(c, viewPath(documentsPath, id), flash.Success, "Document updated")
}

// Delete handles POST /documents/delete/:id and returns to the owning building.
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		h.invalidID(c, documentsPath+"/", "Document")
		return
	}

	buildingID, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.writeFailed(c, err, documentsPath+"/", viewPath(documentsPath, id), "Document")
		return
	}

	location := documentsPath + "/"
	if buildingID > 0 {
		location = viewPath(buildingsPath, buildingID)
	}
	h.redirect(c, location, flash.Success, "Document deleted")
}

func addDocumentPath(buildingID int64) string {
	if buildingID > 0 {
		return fmt.Sprintf("%s/add?building=%d", documentsPath, buildingID)
	}
	return documentsPath + "/add"
}
