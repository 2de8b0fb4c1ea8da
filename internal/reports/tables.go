package reports

import (
	"strconv"
	"time"

	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/status"
)

// BuildingsTable lays out a building list for export.
func BuildingsTable(rows []models.BuildingRow) Table {
	t := Table{
		Name:    "buildings",
		Title:   "Heritage buildings",
		Headers: []string{"ID", "Name", "Street", "Zone", "Type", "Protection", "Owner", "Latitude", "Longitude", "State"},
		Widths:  []float64{12, 45, 50, 28, 28, 25, 30, 18, 18, 23},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, b := range rows {
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(b.ID, 10),
			b.Name,
			b.Street,
			text(b.ZoneName),
			text(b.TypeLabel),
			text(b.ProtectionLevel),
			text(b.OwnerName),
			coordinate(b.Latitude),
			coordinate(b.Longitude),
			status.Label(b.LatestState),
		})
	}
	return t
}

// InterventionsTable lays out an intervention list for export.
func InterventionsTable(rows []models.InterventionRow) Table {
	t := Table{
		Name:    "interventions",
		Title:   "Interventions",
		Headers: []string{"ID", "Building", "Provider", "Work type", "Start", "End", "Cost", "Status", "Validated"},
		Widths:  []float64{12, 50, 45, 35, 22, 22, 25, 25, 20},
		Rows:    make([][]string, 0, len(rows)),
	}
	for _, i := range rows {
		validated := "No"
		if i.IsValidated() {
			validated = "Yes"
		}
		t.Rows = append(t.Rows, []string{
			strconv.FormatInt(i.ID, 10),
			i.BuildingName,
			text(i.ProviderName),
			text(i.WorkType),
			day(i.StartDate),
			day(i.EndDate),
			cost(i.EstimatedCost),
			i.WorkStatus.Label(),
			validated,
		})
	}
	return t
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func coordinate(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', 6, 64)
}

func cost(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', 2, 64)
}

func day(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
