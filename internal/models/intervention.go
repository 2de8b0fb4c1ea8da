package models

import "time"

// Intervention is remediation work on a building carried out by a provider.
// Validation is one-way: once stamped, it is only ever re-stamped.
type Intervention struct {
	ID                int64      `json:"id"`
	StartDate         *time.Time `json:"startDate,omitempty"`
	EndDate           *time.Time `json:"endDate,omitempty"`
	WorkType          *string    `json:"workType,omitempty"`
	EstimatedCost     *float64   `json:"estimatedCost,omitempty"`
	Validated         *bool      `json:"validated,omitempty"`
	WorkStatus        WorkStatus `json:"workStatus"`
	BuildingID        int64      `json:"buildingId"`
	ProviderID        int64      `json:"providerId"`
	ValidationDate    *time.Time `json:"validationDate,omitempty"`
	ValidationComment *string    `json:"validationComment,omitempty"`
}

// IsValidated treats a NULL flag as not validated.
func (i Intervention) IsValidated() bool {
	return i.Validated != nil && *i.Validated
}

// InterventionRow is an intervention with its building and provider labels.
type InterventionRow struct {
	Intervention
	BuildingName string
	ProviderName *string
	ProviderRole *string
}

// Validated filter choices.
const (
	ValidatedYes = "yes"
	ValidatedNo  = "no"
)

// InterventionFilter holds the optional intervention list filters.
// Validated is "yes", "no" or empty for either.
type InterventionFilter struct {
	Search     string
	Status     string
	BuildingID *int64
	ProviderID *int64
	Validated  string
}
