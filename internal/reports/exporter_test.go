package reports

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/xuri/excelize/v2"
)

func fixedExporter() *exporter {
	return &exporter{now: func() time.Time { return time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC) }}
}

func ptr[T any](v T) *T { return &v }

func sampleBuildings() []models.BuildingRow {
	return []models.BuildingRow{
		{ID: 2, Name: "Église Saint-Jean", Street: "3 rue Haute", ZoneName: ptr("Centre"), Latitude: ptr(48.8566), Longitude: ptr(2.3522), LatestState: ptr("Ruined")},
		{ID: 1, Name: "Mairie Centrale", Street: "1 place de la Mairie"},
	}
}

func TestExportCSV(t *testing.T) {
	file, err := fixedExporter().Export(FormatCSV, BuildingsTable(sampleBuildings()))
	require.NoError(t, err)

	assert.Equal(t, "buildings_20240309_140500.csv", file.Filename)
	assert.Equal(t, ContentTypeCSV, file.ContentType)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "State", records[0][9])
	assert.Equal(t, []string{"2", "Église Saint-Jean", "3 rue Haute", "Centre", "", "", "", "48.856600", "2.352200", "Ruined"}, records[1])
	assert.Equal(t, "Not inspected", records[2][9])
}

func TestExportExcel(t *testing.T) {
	file, err := fixedExporter().Export(FormatExcel, BuildingsTable(sampleBuildings()))
	require.NoError(t, err)
	assert.Equal(t, ContentTypeExcel, file.ContentType)

	f, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Heritage buildings")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][1])
	assert.Equal(t, "Mairie Centrale", rows[2][1])
}

func TestExportPDF(t *testing.T) {
	file, err := fixedExporter().Export(FormatPDF, BuildingsTable(sampleBuildings()))
	require.NoError(t, err)

	assert.Equal(t, ContentTypePDF, file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
}

func TestExportUnsupportedFormat(t *testing.T) {
	file, err := fixedExporter().Export("docx", Table{Name: "buildings"})
	assert.Nil(t, file)
	assert.ErrorContains(t, err, "unsupported export format: docx")
	assert.False(t, Supported("docx"))
	assert.True(t, Supported(FormatPDF))
}

func TestInterventionsTable(t *testing.T) {
	start := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)
	table := InterventionsTable([]models.InterventionRow{
		{
			Intervention: models.Intervention{
				ID: 4, StartDate: &start, EstimatedCost: ptr(100.0), Validated: ptr(true), WorkStatus: models.WorkInProgress,
			},
			BuildingName: "Mairie Centrale",
			ProviderName: ptr("Pierre & Fils"),
		},
		{Intervention: models.Intervention{ID: 5, WorkStatus: models.WorkPlanned}, BuildingName: "Tour"},
	})

	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"4", "Mairie Centrale", "Pierre & Fils", "", "2022-03-01", "", "100.00", "In progress", "Yes"}, table.Rows[0])
	assert.Equal(t, "No", table.Rows[1][8])
}
