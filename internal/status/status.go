// Package status resolves a building's current conservation state: the
// observed state of its most recent inspection. Inspections sharing the
// latest visit date are ordered by highest id.
package status

import (
	"sort"

	"github.com/stwalsh4118/heritage/internal/models"
)

// NotInspected is reported for buildings without any inspection.
const NotInspected = models.StateNotInspected

// LatestStateExpr returns a correlated subquery selecting the latest observed
// state for the building whose id is buildingCol. It yields NULL when the
// building has no inspection.
func LatestStateExpr(buildingCol string) string {
	return `(SELECT li.observed_state FROM inspection li
		WHERE li.building_id = ` + buildingCol + `
		ORDER BY li.visit_date DESC, li.id DESC LIMIT 1)`
}

// LatestInspections is a derived table holding one row per inspected
// building: building_id, observed_state and visit_date of its latest
// inspection. Join it as "LEFT JOIN " + LatestInspections + " li ON ...".
const LatestInspections = `(SELECT DISTINCT ON (building_id) building_id, observed_state, visit_date
		FROM inspection
		ORDER BY building_id, visit_date DESC, id DESC)`

// UrgentOrder orders rows by severity, Ruined before Degraded, given the
// state column expression.
func UrgentOrder(stateCol string) string {
	return "CASE " + stateCol + " WHEN '" + string(models.StateRuined) + "' THEN 0 WHEN '" +
		string(models.StateDegraded) + "' THEN 1 ELSE 2 END"
}

// Latest returns the most recent inspection, or nil when there is none.
func Latest(inspections []models.Inspection) *models.Inspection {
	var latest *models.Inspection
	for i := range inspections {
		candidate := &inspections[i]
		if latest == nil || newer(candidate, latest) {
			latest = candidate
		}
	}
	return latest
}

// Resolve returns the current state label for a building's inspections.
func Resolve(inspections []models.Inspection) string {
	if latest := Latest(inspections); latest != nil {
		return string(latest.ObservedState)
	}
	return NotInspected
}

// Label renders a state selected from the database, NULL meaning not inspected.
func Label(state *string) string {
	if state == nil || *state == "" {
		return NotInspected
	}
	return *state
}

// Severity ranks urgent states for sorting. Non-urgent states rank last.
func Severity(state models.ObservedState) int {
	switch state {
	case models.StateRuined:
		return 0
	case models.StateDegraded:
		return 1
	default:
		return 2
	}
}

// SortUrgent orders urgent buildings by severity then name.
func SortUrgent(buildings []models.UrgentBuilding) {
	sort.SliceStable(buildings, func(i, j int) bool {
		si, sj := Severity(buildings[i].State), Severity(buildings[j].State)
		if si != sj {
			return si < sj
		}
		return buildings[i].Name < buildings[j].Name
	})
}

// Stats counts the latest states of a group of buildings.
func Stats(buildings []models.BuildingSummary) models.ConditionStats {
	stats := models.ConditionStats{Total: int64(len(buildings))}
	for _, b := range buildings {
		if b.LatestState == nil {
			continue
		}
		switch state := models.ObservedState(*b.LatestState); {
		case state == models.StateGood:
			stats.Good++
		case state == models.StateAverage:
			stats.Average++
		case state.Urgent():
			stats.Urgent++
		}
	}
	return stats
}

func newer(a, b *models.Inspection) bool {
	if !a.VisitDate.Equal(b.VisitDate) {
		return a.VisitDate.After(b.VisitDate)
	}
	return a.ID > b.ID
}
