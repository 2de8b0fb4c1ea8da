package models

// ZoneFilter holds the optional zone list filters.
type ZoneFilter struct {
	Search   string
	ZoneType string
}

// OwnerFilter holds the optional owner list filters.
type OwnerFilter struct {
	Search    string
	OwnerType string
}

// ProviderFilter holds the optional provider list filters.
type ProviderFilter struct {
	Search string
	Role   string
}

// SearchFilter is the filter of lists that only support free-text search.
type SearchFilter struct {
	Search string
}

// MapFilter narrows the map data. All fields are optional.
type MapFilter struct {
	ZoneID *int64
	TypeID *int64
	State  string
}
