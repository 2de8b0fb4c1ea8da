// Package render turns page data into HTML documents.
package render

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	ginrender "github.com/gin-gonic/gin/render"
)

// Renderer produces the HTML document for a named page.
type Renderer interface {
	HTML(c *gin.Context, status int, page string, data gin.H)
}

const (
	layoutGlob   = "templates/layout/*.html"
	pagesDir     = "templates/pages"
	rootTemplate = "layout"
)

// Templates holds one parsed template set per page, each combined with the
// shared layout.
type Templates struct {
	pages map[string]*template.Template
}

// New parses every page under templates/pages of fsys. Page names are their
// paths relative to that directory without extension, e.g. "buildings/list".
func New(fsys fs.FS) (*Templates, error) {
	layouts, err := fs.Glob(fsys, layoutGlob)
	if err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	if len(layouts) == 0 {
		return nil, fmt.Errorf("no layout templates match %s", layoutGlob)
	}

	pages := make(map[string]*template.Template)
	err = fs.WalkDir(fsys, pagesDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path.Ext(p) != ".html" {
			return nil
		}

		name := strings.TrimSuffix(strings.TrimPrefix(p, pagesDir+"/"), ".html")
		files := append(append([]string{}, layouts...), p)
		tmpl, err := template.New(rootTemplate).Funcs(Funcs()).ParseFS(fsys, files...)
		if err != nil {
			return fmt.Errorf("failed to parse page %s: %w", name, err)
		}
		pages[name] = tmpl
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Templates{pages: pages}, nil
}

// Has reports whether a page exists.
func (t *Templates) Has(page string) bool {
	_, ok := t.pages[page]
	return ok
}

// HTML renders page inside the layout.
func (t *Templates) HTML(c *gin.Context, status int, page string, data gin.H) {
	tmpl, ok := t.pages[page]
	if !ok {
		c.String(http.StatusInternalServerError, "unknown page %q", page)
		return
	}
	c.Render(status, ginrender.HTML{Template: tmpl, Name: rootTemplate, Data: data})
}
