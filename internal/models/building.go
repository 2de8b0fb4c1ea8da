package models

import "time"

// Building is a heritage building. Latitude and Longitude are optional and
// only meaningful together.
type Building struct {
	ID               int64      `json:"id"`
	Name             string     `json:"name"`
	Street           string     `json:"street"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	ConstructionDate *time.Time `json:"constructionDate,omitempty"`
	HistoricalNote   *string    `json:"historicalNote,omitempty"`
	ZoneID           *int64     `json:"zoneId,omitempty"`
	TypeID           *int64     `json:"typeId,omitempty"`
	ProtectionID     *int64     `json:"protectionId,omitempty"`
	OwnerID          *int64     `json:"ownerId,omitempty"`
}

// Location returns the building's point when both coordinates are set.
func (b Building) Location() (Point, bool) {
	if b.Latitude == nil || b.Longitude == nil {
		return Point{}, false
	}
	return NewPoint(*b.Latitude, *b.Longitude), true
}

// BuildingRow is a building as listed, with joined labels and latest state.
type BuildingRow struct {
	ID              int64
	Name            string
	Street          string
	ZoneName        *string
	TypeLabel       *string
	ProtectionLevel *string
	OwnerName       *string
	Latitude        *float64
	Longitude       *float64
	LatestState     *string
}

// BuildingDetail is a building with everything attached to it.
type BuildingDetail struct {
	Building
	ZoneName        *string
	TypeLabel       *string
	ProtectionLevel *string
	OwnerName       *string
	OwnerType       *string
	LatestState     *string
	Inspections     []Inspection
	Interventions   []InterventionRow
	Documents       []Document
}

// BuildingFilter holds the optional building list filters.
type BuildingFilter struct {
	Search       string
	ZoneID       *int64
	TypeID       *int64
	ProtectionID *int64
	State        string
}
