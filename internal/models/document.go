package models

// Document is a file attached to a building.
type Document struct {
	ID         int64        `json:"id"`
	Title      string       `json:"title"`
	DocType    DocumentType `json:"docType"`
	FileURL    string       `json:"fileUrl"`
	BuildingID int64        `json:"buildingId"`
}

// DocumentRow is a document with its building name.
type DocumentRow struct {
	Document
	BuildingName string
}

// DocumentFilter holds the optional document list filters.
type DocumentFilter struct {
	Search     string
	DocType    string
	BuildingID *int64
}
