package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
)

// MockBuildingService is a mock implementation of BuildingService for testing
type MockBuildingService struct {
	mock.Mock
}

func (m *MockBuildingService) List(ctx context.Context, filter models.BuildingFilter) ([]models.BuildingRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.BuildingRow)
	return rows, args.Error(1)
}

func (m *MockBuildingService) Get(ctx context.Context, id int64) (*models.Building, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Building)
	return b, args.Error(1)
}

func (m *MockBuildingService) Detail(ctx context.Context, id int64) (*models.BuildingDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*models.BuildingDetail)
	return d, args.Error(1)
}

func (m *MockBuildingService) Create(ctx context.Context, b *models.Building) (int64, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBuildingService) Update(ctx context.Context, b *models.Building) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBuildingService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockZoneService is a mock implementation of ZoneService for testing
type MockZoneService struct {
	mock.Mock
}

func (m *MockZoneService) List(ctx context.Context, filter models.ZoneFilter) ([]models.ZoneRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.ZoneRow)
	return rows, args.Error(1)
}

func (m *MockZoneService) Detail(ctx context.Context, id int64) (*models.ZoneDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*models.ZoneDetail)
	return d, args.Error(1)
}

func (m *MockZoneService) Get(ctx context.Context, id int64) (*models.Zone, error) {
	args := m.Called(ctx, id)
	z, _ := args.Get(0).(*models.Zone)
	return z, args.Error(1)
}

func (m *MockZoneService) Create(ctx context.Context, zone *models.Zone) (int64, error) {
	args := m.Called(ctx, zone)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockZoneService) Update(ctx context.Context, zone *models.Zone) error {
	return m.Called(ctx, zone).Error(0)
}

func (m *MockZoneService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockInterventionService is a mock implementation of InterventionService for testing
type MockInterventionService struct {
	mock.Mock
}

func (m *MockInterventionService) List(ctx context.Context, filter models.InterventionFilter) ([]models.InterventionRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.InterventionRow)
	return rows, args.Error(1)
}

func (m *MockInterventionService) Get(ctx context.Context, id int64) (*models.InterventionRow, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*models.InterventionRow)
	return row, args.Error(1)
}

func (m *MockInterventionService) Create(ctx context.Context, i *models.Intervention) (int64, error) {
	args := m.Called(ctx, i)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInterventionService) Update(ctx context.Context, i *models.Intervention) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockInterventionService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockInterventionService) Validate(ctx context.Context, id int64, comment string) error {
	return m.Called(ctx, id, comment).Error(0)
}

// MockDocumentService is a mock implementation of DocumentService for testing
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) List(ctx context.Context, filter models.DocumentFilter) ([]models.DocumentRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.DocumentRow)
	return rows, args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, id int64) (*models.DocumentRow, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*models.DocumentRow)
	return row, args.Error(1)
}

func (m *MockDocumentService) Create(ctx context.Context, d *models.Document) (int64, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocumentService) Update(ctx context.Context, d *models.Document) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDocumentService) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockDashboardService is a mock implementation of DashboardService for testing
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Build(ctx context.Context) (*models.Dashboard, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).(*models.Dashboard)
	return d, args.Error(1)
}

func (m *MockDashboardService) MapBuildings(ctx context.Context, filter models.MapFilter) ([]models.MapBuilding, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.MapBuilding)
	return rows, args.Error(1)
}

// MockLookupService is a mock implementation of LookupService for testing
type MockLookupService struct {
	mock.Mock
}

func (m *MockLookupService) Options(ctx context.Context, sets ...repository.OptionSet) (map[repository.OptionSet][]models.Option, error) {
	args := m.Called(ctx, sets)
	out, _ := args.Get(0).(map[repository.OptionSet][]models.Option)
	return out, args.Error(1)
}

func (m *MockLookupService) Values(ctx context.Context, sets ...repository.ValueSet) (map[repository.ValueSet][]string, error) {
	args := m.Called(ctx, sets)
	out, _ := args.Get(0).(map[repository.ValueSet][]string)
	return out, args.Error(1)
}

// MockInspectionService is a mock implementation of InspectionService for testing
type MockInspectionService struct {
	mock.Mock
}

func (m *MockInspectionService) List(ctx context.Context, filter models.InspectionFilter) ([]models.InspectionRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.InspectionRow)
	return rows, args.Error(1)
}

func (m *MockInspectionService) Get(ctx context.Context, id int64) (*models.InspectionRow, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*models.InspectionRow)
	return row, args.Error(1)
}

func (m *MockInspectionService) Create(ctx context.Context, i *models.Inspection) (int64, error) {
	args := m.Called(ctx, i)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInspectionService) Update(ctx context.Context, i *models.Inspection) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockInspectionService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockOwnerService is a mock implementation of OwnerService for testing
type MockOwnerService struct {
	mock.Mock
}

func (m *MockOwnerService) List(ctx context.Context, filter models.OwnerFilter) ([]models.OwnerRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.OwnerRow)
	return rows, args.Error(1)
}

func (m *MockOwnerService) Detail(ctx context.Context, id int64) (*models.OwnerDetail, error) {
	args := m.Called(ctx, id)
	detail, _ := args.Get(0).(*models.OwnerDetail)
	return detail, args.Error(1)
}

func (m *MockOwnerService) Get(ctx context.Context, id int64) (*models.Owner, error) {
	args := m.Called(ctx, id)
	owner, _ := args.Get(0).(*models.Owner)
	return owner, args.Error(1)
}

func (m *MockOwnerService) Create(ctx context.Context, owner *models.Owner) (int64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOwnerService) Update(ctx context.Context, owner *models.Owner) error {
	return m.Called(ctx, owner).Error(0)
}

func (m *MockOwnerService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockProviderService is a mock implementation of ProviderService for testing
type MockProviderService struct {
	mock.Mock
}

func (m *MockProviderService) List(ctx context.Context, filter models.ProviderFilter) ([]models.ProviderRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.ProviderRow)
	return rows, args.Error(1)
}

func (m *MockProviderService) Detail(ctx context.Context, id int64) (*models.ProviderDetail, error) {
	args := m.Called(ctx, id)
	detail, _ := args.Get(0).(*models.ProviderDetail)
	return detail, args.Error(1)
}

func (m *MockProviderService) Get(ctx context.Context, id int64) (*models.Provider, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Provider)
	return p, args.Error(1)
}

func (m *MockProviderService) Create(ctx context.Context, p *models.Provider) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProviderService) Update(ctx context.Context, p *models.Provider) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProviderService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockBuildingTypeService is a mock implementation of BuildingTypeService for testing
type MockBuildingTypeService struct {
	mock.Mock
}

func (m *MockBuildingTypeService) List(ctx context.Context, filter models.SearchFilter) ([]models.BuildingTypeRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.BuildingTypeRow)
	return rows, args.Error(1)
}

func (m *MockBuildingTypeService) Detail(ctx context.Context, id int64) (*models.BuildingTypeDetail, error) {
	args := m.Called(ctx, id)
	detail, _ := args.Get(0).(*models.BuildingTypeDetail)
	return detail, args.Error(1)
}

func (m *MockBuildingTypeService) Get(ctx context.Context, id int64) (*models.BuildingType, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*models.BuildingType)
	return t, args.Error(1)
}

func (m *MockBuildingTypeService) Create(ctx context.Context, t *models.BuildingType) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBuildingTypeService) Update(ctx context.Context, t *models.BuildingType) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockBuildingTypeService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockProtectionService is a mock implementation of ProtectionService for testing
type MockProtectionService struct {
	mock.Mock
}

func (m *MockProtectionService) List(ctx context.Context, filter models.SearchFilter) ([]models.ProtectionLevelRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.ProtectionLevelRow)
	return rows, args.Error(1)
}

func (m *MockProtectionService) Detail(ctx context.Context, id int64) (*models.ProtectionLevelDetail, error) {
	args := m.Called(ctx, id)
	detail, _ := args.Get(0).(*models.ProtectionLevelDetail)
	return detail, args.Error(1)
}

func (m *MockProtectionService) Get(ctx context.Context, id int64) (*models.ProtectionLevel, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.ProtectionLevel)
	return p, args.Error(1)
}

func (m *MockProtectionService) Create(ctx context.Context, p *models.ProtectionLevel) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProtectionService) Update(ctx context.Context, p *models.ProtectionLevel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProtectionService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
