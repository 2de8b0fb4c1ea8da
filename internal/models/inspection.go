package models

import "time"

// Inspection is one visit recording the observed state of a building.
type Inspection struct {
	ID            int64         `json:"id"`
	VisitDate     time.Time     `json:"visitDate"`
	ObservedState ObservedState `json:"observedState"`
	Report        *string       `json:"report,omitempty"`
	BuildingID    int64         `json:"buildingId"`
}

// InspectionRow is an inspection with its building name.
type InspectionRow struct {
	Inspection
	BuildingName string
}

// InspectionFilter holds the optional inspection list filters.
// Date bounds are inclusive.
type InspectionFilter struct {
	Search     string
	State      string
	BuildingID *int64
	DateFrom   *time.Time
	DateTo     *time.Time
}
