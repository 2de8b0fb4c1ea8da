package models

// Counts holds the headline totals of the dashboard.
type Counts struct {
	Buildings     int64 `json:"buildings"`
	Inspections   int64 `json:"inspections"`
	Interventions int64 `json:"interventions"`
}

// GroupCount is a labelled count, e.g. buildings per zone.
type GroupCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// UrgentBuilding is a building whose latest state is Degraded or Ruined.
type UrgentBuilding struct {
	ID     int64         `json:"id"`
	Name   string        `json:"name"`
	Street string        `json:"street"`
	State  ObservedState `json:"state"`
}

// YearCost is the estimated intervention cost started in one year.
type YearCost struct {
	Year  int     `json:"year"`
	Total float64 `json:"total"`
}

// MapBuilding is a geolocated building with display labels.
type MapBuilding struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Location   Point  `json:"location"`
	Zone       string `json:"zone"`
	Type       string `json:"type"`
	Protection string `json:"protection"`
	State      string `json:"state"`
}

// Dashboard aggregates cross-entity statistics as of request time.
type Dashboard struct {
	Counts       Counts
	ByZone       []GroupCount
	ByType       []GroupCount
	States       []GroupCount
	Urgent       []UrgentBuilding
	CostByYear   []YearCost
	MapBuildings []MapBuilding
}
