package render

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/web"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"templates/layout/base.html": {Data: []byte(
			`{{define "layout"}}<title>{{.Title}}</title>{{template "content" .}}{{end}}`)},
		"templates/pages/buildings/list.html": {Data: []byte(
			`{{define "content"}}{{range .Rows}}<li>{{.Name}} {{state .LatestState}}</li>{{end}}{{end}}`)},
		"templates/pages/dashboard.html": {Data: []byte(
			`{{define "content"}}<p>{{.Count}}</p>{{end}}`)},
	}
}

func TestNew_ParsesPages(t *testing.T) {
	tmpl, err := New(testFS())
	require.NoError(t, err)

	assert.True(t, tmpl.Has("buildings/list"))
	assert.True(t, tmpl.Has("dashboard"))
	assert.False(t, tmpl.Has("zones/list"))
}

func TestNew_RequiresLayout(t *testing.T) {
	_, err := New(fstest.MapFS{
		"templates/pages/dashboard.html": {Data: []byte(`{{define "content"}}{{end}}`)},
	})
	assert.ErrorContains(t, err, "no layout templates")
}

func TestHTML_RendersInsideLayout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tmpl, err := New(testFS())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	state := "Ruined"
	tmpl.HTML(c, http.StatusOK, "buildings/list", gin.H{
		"Title": "Buildings",
		"Rows": []models.BuildingRow{
			{Name: "Mairie <Centrale>"},
			{Name: "Tour", LatestState: &state},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<title>Buildings</title>")
	assert.Contains(t, body, "<li>Mairie &lt;Centrale&gt; Not inspected</li>")
	assert.Contains(t, body, "<li>Tour Ruined</li>")
}

func TestNew_ParsesEmbeddedPages(t *testing.T) {
	tmpl, err := New(web.FS)
	require.NoError(t, err)

	for _, page := range []string{
		"dashboard", "error",
		"buildings/list", "buildings/view", "buildings/form",
		"inspections/list", "inspections/view", "inspections/form",
		"interventions/list", "interventions/view", "interventions/form",
		"zones/list", "zones/view", "zones/form",
		"types/list", "types/view", "types/form",
		"protections/list", "protections/view", "protections/form",
		"owners/list", "owners/view", "owners/form",
		"providers/list", "providers/view", "providers/form",
		"documents/list", "documents/view", "documents/form", "documents/building",
	} {
		assert.True(t, tmpl.Has(page), page)
	}
}

func TestHTML_EmbeddedZonePage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tmpl, err := New(web.FS)
	require.NoError(t, err)

	ruined := "Ruined"
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	tmpl.HTML(c, http.StatusOK, "zones/view", gin.H{
		"Title":   "Centre",
		"Section": "zones",
		"Zone": &models.ZoneDetail{
			Zone: models.Zone{ID: 3, Name: "Centre"},
			Buildings: []models.BuildingSummary{
				{ID: 1, Name: "Tour", Street: "Rue Haute", LatestState: &ruined},
				{ID: 2, Name: "Halle", Street: "Place"},
			},
			Stats: models.ConditionStats{Total: 2, Urgent: 1},
		},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<a href="/zones/" class="active">Zones</a>`)
	assert.Contains(t, body, `action="/zones/delete/3"`)
	assert.Contains(t, body, `<span class="badge state-urgent">Ruined</span>`)
	assert.Contains(t, body, `<span class="badge state-none">Not inspected</span>`)
}

func TestHTML_EmbeddedErrorPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tmpl, err := New(web.FS)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	tmpl.HTML(c, http.StatusInternalServerError, "error", gin.H{"Title": "Error", "Message": "connection refused"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "connection refused")
}

func TestHTML_UnknownPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tmpl, err := New(testFS())
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	tmpl.HTML(c, http.StatusOK, "missing", gin.H{})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFuncs(t *testing.T) {
	s := "note"
	d := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	f := 48.8566
	id := int64(4)

	assert.Equal(t, "note", Text(&s))
	assert.Equal(t, "", Text((*string)(nil)))
	assert.Equal(t, "2023-06-15", Date(d))
	assert.Equal(t, "2023-06-15", Date(&d))
	assert.Equal(t, "", Date(time.Time{}))
	assert.Equal(t, "48.8566", Num(&f))
	assert.Equal(t, "48.86", Money(&f))
	assert.Equal(t, "150.00", Money(150.0))
	assert.Equal(t, "4", IDValue(&id))
	assert.True(t, Selected(&id, 4))
	assert.True(t, Selected("4", 4))
	assert.False(t, Selected((*int64)(nil), 4))
}

func TestStateClass(t *testing.T) {
	ruined := "Ruined"
	assert.Equal(t, "state-none", StateClass((*string)(nil)))
	assert.Equal(t, "state-urgent", StateClass(&ruined))
	assert.Equal(t, "state-good", StateClass(models.StateGood))
	assert.Equal(t, "state-average", StateClass("Average"))
	assert.Equal(t, "state-other", StateClass("Excellent"))
}
