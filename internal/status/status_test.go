package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stwalsh4118/heritage/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func strPtr(s string) *string { return &s }

func TestLatestPicksMaxVisitDate(t *testing.T) {
	inspections := []models.Inspection{
		{ID: 1, VisitDate: day("2020-01-01"), ObservedState: models.StateGood},
		{ID: 2, VisitDate: day("2023-06-15"), ObservedState: models.StateDegraded},
	}

	latest := Latest(inspections)
	require.NotNil(t, latest)
	assert.Equal(t, int64(2), latest.ID)
	assert.Equal(t, "Degraded", Resolve(inspections))
}

func TestLatestOrderDoesNotMatter(t *testing.T) {
	inspections := []models.Inspection{
		{ID: 2, VisitDate: day("2023-06-15"), ObservedState: models.StateDegraded},
		{ID: 1, VisitDate: day("2020-01-01"), ObservedState: models.StateGood},
	}
	assert.Equal(t, "Degraded", Resolve(inspections))
}

func TestLatestTieBreaksOnHighestID(t *testing.T) {
	inspections := []models.Inspection{
		{ID: 7, VisitDate: day("2024-02-01"), ObservedState: models.StateRuined},
		{ID: 9, VisitDate: day("2024-02-01"), ObservedState: models.StateAverage},
		{ID: 8, VisitDate: day("2024-02-01"), ObservedState: models.StateGood},
	}
	assert.Equal(t, "Average", Resolve(inspections))
}

func TestResolveWithoutInspections(t *testing.T) {
	assert.Nil(t, Latest(nil))
	assert.Equal(t, NotInspected, Resolve(nil))
	assert.Equal(t, "Not inspected", NotInspected)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, NotInspected, Label(nil))
	assert.Equal(t, NotInspected, Label(strPtr("")))
	assert.Equal(t, "Ruined", Label(strPtr("Ruined")))
}

func TestSortUrgent(t *testing.T) {
	buildings := []models.UrgentBuilding{
		{Name: "Chapel", State: models.StateDegraded},
		{Name: "Tower", State: models.StateRuined},
		{Name: "Abbey", State: models.StateDegraded},
		{Name: "Mill", State: models.StateRuined},
	}

	SortUrgent(buildings)

	names := make([]string, len(buildings))
	for i, b := range buildings {
		names[i] = b.Name
	}
	assert.Equal(t, []string{"Mill", "Tower", "Abbey", "Chapel"}, names)
}

func TestStats(t *testing.T) {
	stats := Stats([]models.BuildingSummary{
		{LatestState: strPtr("Good")},
		{LatestState: strPtr("Average")},
		{LatestState: strPtr("Degraded")},
		{LatestState: strPtr("Ruined")},
		{LatestState: nil},
	})

	assert.Equal(t, models.ConditionStats{Total: 5, Good: 1, Average: 1, Urgent: 2}, stats)
}

func TestQueryShapesShareTieBreak(t *testing.T) {
	assert.Contains(t, LatestStateExpr("b.id"), "li.building_id = b.id")
	assert.Contains(t, LatestStateExpr("b.id"), "ORDER BY li.visit_date DESC, li.id DESC LIMIT 1")
	assert.Contains(t, LatestInspections, "ORDER BY building_id, visit_date DESC, id DESC")
	assert.Equal(t, "CASE s WHEN 'Ruined' THEN 0 WHEN 'Degraded' THEN 1 ELSE 2 END", UrgentOrder("s"))
}
