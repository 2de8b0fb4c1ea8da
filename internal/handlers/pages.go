package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	apierrors "github.com/stwalsh4118/heritage/internal/errors"
	"github.com/stwalsh4118/heritage/internal/flash"
	"github.com/stwalsh4118/heritage/internal/middleware"
	"github.com/stwalsh4118/heritage/internal/render"
	"github.com/stwalsh4118/heritage/internal/services"
)

// Pages renders HTML pages and carries one-shot notices across redirects.
// Every entity handler embeds it.
type Pages struct {
	renderer render.Renderer
	notices  *flash.Store
}

// NewPages creates the shared page helpers.
func NewPages(renderer render.Renderer, notices *flash.Store) *Pages {
	return &Pages{renderer: renderer, notices: notices}
}

// render shows a page with any pending notices.
func (p *Pages) render(c *gin.Context, page, section, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = title
	data["Section"] = section
	data["Notices"] = p.notices.Pop(c)
	data["RequestID"] = middleware.GetRequestID(c)
	p.renderer.HTML(c, http.StatusOK, page, data)
}

// redirect queues a notice and answers 303 See Other.
func (p *Pages) redirect(c *gin.Context, location, kind, message string) {
	if err := p.notices.Add(c, kind, message); err != nil {
		if log := middleware.GetLogger(c); log != nil {
			log.Warn("Failed to queue notice", map[string]interface{}{"error": err.Error()})
		}
	}
	c.Redirect(http.StatusSeeOther, location)
}

// readFailed handles a failed page load: a missing record sends the user to
// the list with a warning, anything else shows the error page with the raw
// database message. The request still completes with 200.
func (p *Pages) readFailed(c *gin.Context, err error, list, label string) {
	if errors.Is(err, services.ErrNotFound) {
		p.redirect(c, list, flash.Warning, label+" not found")
		return
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Error("Failed to load page", err, map[string]interface{}{"path": c.Request.URL.Path})
	}
	p.renderer.HTML(c, http.StatusOK, "error", gin.H{
		"Title":     "Error",
		"Message":   err.Error(),
		"RequestID": middleware.GetRequestID(c),
	})
}

// writeFailed handles a failed create, update, delete or validation. A
// missing record returns to the list; any other error is shown verbatim
// after returning to back.
func (p *Pages) writeFailed(c *gin.Context, err error, list, back, label string) {
	if errors.Is(err, services.ErrNotFound) {
		p.redirect(c, list, flash.Warning, label+" not found")
		return
	}
	p.redirect(c, back, flash.Danger, err.Error())
}

// bindFailed reports a form that could not be bound or validated.
func (p *Pages) bindFailed(c *gin.Context, err error, back string) {
	p.redirect(c, back, flash.Danger, apierrors.FormNotice(err))
}

// invalidID answers a request whose id segment is not a positive integer.
func (p *Pages) invalidID(c *gin.Context, list, label string) {
	p.redirect(c, list, flash.Warning, label+" not found")
}

// NotFound answers unmatched routes: the JSON error envelope under /api/,
// the error page everywhere else.
func (p *Pages) NotFound(c *gin.Context) {
	path := c.Request.URL.Path
	if strings.HasPrefix(path, "/api/") {
		apierrors.NotFound(c, "No route for "+c.Request.Method+" "+path)
		return
	}

	p.renderer.HTML(c, http.StatusNotFound, "error", gin.H{
		"Title":     "Not found",
		"Message":   "Page not found: " + path,
		"Notices":   p.notices.Pop(c),
		"RequestID": middleware.GetRequestID(c),
	})
}
