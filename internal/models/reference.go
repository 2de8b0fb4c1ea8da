package models

// Zone is an urban zone grouping buildings.
type Zone struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	ZoneType *string `json:"zoneType,omitempty"`
}

// ZoneRow is a zone as listed, with the number of buildings in it.
type ZoneRow struct {
	Zone
	BuildingCount int64 `json:"buildingCount"`
}

// BuildingType classifies buildings by use or architecture.
type BuildingType struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}

// BuildingTypeRow is a building type as listed, with its building count.
type BuildingTypeRow struct {
	BuildingType
	BuildingCount int64 `json:"buildingCount"`
}

// ProtectionLevel is a heritage-protection classification.
type ProtectionLevel struct {
	ID    int64  `json:"id"`
	Level string `json:"level"`
}

// ProtectionLevelRow is a protection level as listed, with its building count.
type ProtectionLevelRow struct {
	ProtectionLevel
	BuildingCount int64 `json:"buildingCount"`
}

// Owner holds one or more buildings.
type Owner struct {
	ID        int64   `json:"id"`
	FullName  string  `json:"fullName"`
	OwnerType *string `json:"ownerType,omitempty"`
	Contact   *string `json:"contact,omitempty"`
}

// OwnerRow is an owner as listed, with the number of buildings owned.
type OwnerRow struct {
	Owner
	BuildingCount int64 `json:"buildingCount"`
}

// Provider is a company carrying out interventions.
type Provider struct {
	ID          int64   `json:"id"`
	CompanyName string  `json:"companyName"`
	Role        *string `json:"role,omitempty"`
}

// ProviderRow is a provider as listed, with intervention totals.
type ProviderRow struct {
	Provider
	InterventionCount int64   `json:"interventionCount"`
	TotalCost         float64 `json:"totalCost"`
}

// Option is one entry of a select dropdown.
type Option struct {
	ID    int64
	Label string
}

// ConditionStats summarises the latest states of a group of buildings.
type ConditionStats struct {
	Total   int64
	Good    int64
	Average int64
	Urgent  int64
}

// BuildingSummary is a building as shown inside another entity's detail page.
type BuildingSummary struct {
	ID          int64
	Name        string
	Street      string
	ZoneName    *string
	TypeLabel   *string
	LatestState *string
}

// ZoneDetail is a zone with its buildings and their condition summary.
type ZoneDetail struct {
	Zone
	Buildings []BuildingSummary
	Stats     ConditionStats
}

// BuildingTypeDetail is a building type with its buildings and their condition summary.
type BuildingTypeDetail struct {
	BuildingType
	Buildings []BuildingSummary
	Stats     ConditionStats
}

// ProtectionLevelDetail is a protection level with the buildings it covers.
type ProtectionLevelDetail struct {
	ProtectionLevel
	Buildings []BuildingSummary
}

// OwnerDetail is an owner with the buildings it holds.
type OwnerDetail struct {
	Owner
	Buildings []BuildingSummary
}

// ProviderStats summarises a provider's interventions.
type ProviderStats struct {
	Total      int64
	Validated  int64
	InProgress int64
	Done       int64
	TotalCost  float64
}

// ProviderDetail is a provider with its interventions.
type ProviderDetail struct {
	Provider
	Interventions []InterventionRow
	Stats         ProviderStats
}
