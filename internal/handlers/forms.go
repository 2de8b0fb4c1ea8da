package handlers

import (
	"strings"

	"github.com/stwalsh4118/heritage/internal/models"
)

// BuildingForm is the add/edit building submission.
type BuildingForm struct {
	Name             string `form:"name" binding:"required,max=255"`
	Street           string `form:"street" binding:"required,max=255"`
	Latitude         string `form:"latitude" binding:"omitempty,latitude"`
	Longitude        string `form:"longitude" binding:"omitempty,longitude"`
	ConstructionDate string `form:"construction_date" binding:"omitempty,datetime=2006-01-02"`
	HistoricalNote   string `form:"historical_note"`
	ZoneID           string `form:"zone_id" binding:"omitempty,numeric"`
	TypeID           string `form:"type_id" binding:"omitempty,numeric"`
	ProtectionID     string `form:"protection_id" binding:"omitempty,numeric"`
	OwnerID          string `form:"owner_id" binding:"omitempty,numeric"`
}

func (f BuildingForm) model(id int64) *models.Building {
	return &models.Building{
		ID:               id,
		Name:             strings.TrimSpace(f.Name),
		Street:           strings.TrimSpace(f.Street),
		Latitude:         optionalFloat(f.Latitude),
		Longitude:        optionalFloat(f.Longitude),
		ConstructionDate: optionalDate(f.ConstructionDate),
		HistoricalNote:   optionalText(f.HistoricalNote),
		ZoneID:           optionalID(f.ZoneID),
		TypeID:           optionalID(f.TypeID),
		ProtectionID:     optionalID(f.ProtectionID),
		OwnerID:          optionalID(f.OwnerID),
	}
}

// InspectionForm is the add inspection submission.
type InspectionForm struct {
	VisitDate     string `form:"visit_date" binding:"required,datetime=2006-01-02"`
	ObservedState string `form:"observed_state" binding:"required,oneof=Good Average Degraded Ruined"`
	Report        string `form:"report"`
	BuildingID    int64  `form:"building_id" binding:"required,gt=0"`
}

func (f InspectionForm) model(id int64) *models.Inspection {
	i := &models.Inspection{
		ID:            id,
		ObservedState: models.ObservedState(f.ObservedState),
		Report:        optionalText(f.Report),
		BuildingID:    f.BuildingID,
	}
	if d := optionalDate(f.VisitDate); d != nil {
		i.VisitDate = *d
	}
	return i
}

// InspectionEditForm is the edit inspection submission. The visit date is
// not part of it.
type InspectionEditForm struct {
	ObservedState string `form:"observed_state" binding:"required,oneof=Good Average Degraded Ruined"`
	Report        string `form:"report"`
	BuildingID    int64  `form:"building_id" binding:"required,gt=0"`
}

func (f InspectionEditForm) model(id int64) *models.Inspection {
	return &models.Inspection{
		ID:            id,
		ObservedState: models.ObservedState(f.ObservedState),
		Report:        optionalText(f.Report),
		BuildingID:    f.BuildingID,
	}
}

// InterventionForm is the add/edit intervention submission. Validation is a
// separate action and is not part of the form.
type InterventionForm struct {
	StartDate     string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate       string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	WorkType      string `form:"work_type" binding:"max=255"`
	EstimatedCost string `form:"estimated_cost" binding:"omitempty,numeric"`
	WorkStatus    string `form:"work_status" binding:"omitempty,oneof=Planned InProgress Done Cancelled"`
	BuildingID    int64  `form:"building_id" binding:"required,gt=0"`
	ProviderID    int64  `form:"provider_id" binding:"required,gt=0"`
}

func (f InterventionForm) model(id int64) *models.Intervention {
	return &models.Intervention{
		ID:            id,
		StartDate:     optionalDate(f.StartDate),
		EndDate:       optionalDate(f.EndDate),
		WorkType:      optionalText(f.WorkType),
		EstimatedCost: optionalFloat(f.EstimatedCost),
		WorkStatus:    models.WorkStatus(f.WorkStatus),
		BuildingID:    f.BuildingID,
		ProviderID:    f.ProviderID,
	}
}

// ValidationForm is the approval stamp submission. The comment may be empty.
type ValidationForm struct {
	Comment string `form:"comment" binding:"max=1000"`
}

// ProviderForm is the add/edit provider submission.
type ProviderForm struct {
	CompanyName string `form:"company_name" binding:"required,max=255"`
	Role        string `form:"role" binding:"max=255"`
}

func (f ProviderForm) model(id int64) *models.Provider {
	return &models.Provider{ID: id, CompanyName: strings.TrimSpace(f.CompanyName), Role: optionalText(f.Role)}
}

// OwnerForm is the add/edit owner submission.
type OwnerForm struct {
	FullName  string `form:"full_name" binding:"required,max=255"`
	OwnerType string `form:"owner_type" binding:"max=255"`
	Contact   string `form:"contact" binding:"max=255"`
}

func (f OwnerForm) model(id int64) *models.Owner {
	return &models.Owner{
		ID:        id,
		FullName:  strings.TrimSpace(f.FullName),
		OwnerType: optionalText(f.OwnerType),
		Contact:   optionalText(f.Contact),
	}
}

// ZoneForm is the add/edit zone submission.
type ZoneForm struct {
	Name     string `form:"name" binding:"required,max=255"`
	ZoneType string `form:"zone_type" binding:"max=255"`
}

func (f ZoneForm) model(id int64) *models.Zone {
	return &models.Zone{ID: id, Name: strings.TrimSpace(f.Name), ZoneType: optionalText(f.ZoneType)}
}

// BuildingTypeForm is the add/edit building type submission.
type BuildingTypeForm struct {
	Label string `form:"label" binding:"required,max=255"`
}

// ProtectionForm is the add/edit protection level submission.
type ProtectionForm struct {
	Level string `form:"level" binding:"required,max=255"`
}

// DocumentForm is the add/edit document submission.
type DocumentForm struct {
	Title      string `form:"title" binding:"required,max=255"`
	DocType    string `form:"doc_type" binding:"required,oneof=Photo Plan PDF Video Other"`
	FileURL    string `form:"file_url" binding:"required,url"`
	BuildingID int64  `form:"building_id" binding:"required,gt=0"`
}

func (f DocumentForm) model(id int64) *models.Document {
	return &models.Document{
		ID:         id,
		Title:      strings.TrimSpace(f.Title),
		DocType:    models.DocumentType(f.DocType),
		FileURL:    strings.TrimSpace(f.FileURL),
		BuildingID: f.BuildingID,
	}
}
