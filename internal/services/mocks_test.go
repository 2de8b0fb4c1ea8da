package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
)

// MockBuildingRepository is a mock implementation of BuildingRepository for testing
type MockBuildingRepository struct {
	mock.Mock
}

func (m *MockBuildingRepository) List(ctx context.Context, filter models.BuildingFilter) ([]models.BuildingRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.BuildingRow)
	return rows, args.Error(1)
}

func (m *MockBuildingRepository) Get(ctx context.Context, id int64) (*models.Building, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Building)
	return b, args.Error(1)
}

func (m *MockBuildingRepository) Detail(ctx context.Context, id int64) (*models.BuildingDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*models.BuildingDetail)
	return d, args.Error(1)
}

func (m *MockBuildingRepository) Create(ctx context.Context, b *models.Building) (int64, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBuildingRepository) Update(ctx context.Context, b *models.Building) error {
	return m.Called(ctx, b).Error(0)
}

func (m *MockBuildingRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockZoneRepository is a mock implementation of ZoneRepository for testing
type MockZoneRepository struct {
	mock.Mock
}

func (m *MockZoneRepository) List(ctx context.Context, filter models.ZoneFilter) ([]models.ZoneRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.ZoneRow)
	return rows, args.Error(1)
}

func (m *MockZoneRepository) Get(ctx context.Context, id int64) (*models.Zone, error) {
	args := m.Called(ctx, id)
	z, _ := args.Get(0).(*models.Zone)
	return z, args.Error(1)
}

func (m *MockZoneRepository) Buildings(ctx context.Context, id int64) ([]models.BuildingSummary, error) {
	args := m.Called(ctx, id)
	rows, _ := args.Get(0).([]models.BuildingSummary)
	return rows, args.Error(1)
}

func (m *MockZoneRepository) Create(ctx context.Context, zone *models.Zone) (int64, error) {
	args := m.Called(ctx, zone)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockZoneRepository) Update(ctx context.Context, zone *models.Zone) error {
	return m.Called(ctx, zone).Error(0)
}

func (m *MockZoneRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockInterventionRepository is a mock implementation of InterventionRepository for testing
type MockInterventionRepository struct {
	mock.Mock
}

func (m *MockInterventionRepository) List(ctx context.Context, filter models.InterventionFilter) ([]models.InterventionRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.InterventionRow)
	return rows, args.Error(1)
}

func (m *MockInterventionRepository) Get(ctx context.Context, id int64) (*models.InterventionRow, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*models.InterventionRow)
	return row, args.Error(1)
}

func (m *MockInterventionRepository) Create(ctx context.Context, i *models.Intervention) (int64, error) {
	args := m.Called(ctx, i)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInterventionRepository) Update(ctx context.Context, i *models.Intervention) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockInterventionRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockInterventionRepository) Validate(ctx context.Context, id int64, comment string) error {
	return m.Called(ctx, id, comment).Error(0)
}

// MockInspectionRepository is a mock implementation of InspectionRepository for testing
type MockInspectionRepository struct {
	mock.Mock
}

func (m *MockInspectionRepository) List(ctx context.Context, filter models.InspectionFilter) ([]models.InspectionRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.InspectionRow)
	return rows, args.Error(1)
}

func (m *MockInspectionRepository) Get(ctx context.Context, id int64) (*models.InspectionRow, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*models.InspectionRow)
	return row, args.Error(1)
}

func (m *MockInspectionRepository) Create(ctx context.Context, i *models.Inspection) (int64, error) {
	args := m.Called(ctx, i)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInspectionRepository) Update(ctx context.Context, i *models.Inspection) error {
	return m.Called(ctx, i).Error(0)
}

func (m *MockInspectionRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockDocumentRepository is a mock implementation of DocumentRepository for testing
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) List(ctx context.Context, filter models.DocumentFilter) ([]models.DocumentRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.DocumentRow)
	return rows, args.Error(1)
}

func (m *MockDocumentRepository) Get(ctx context.Context, id int64) (*models.DocumentRow, error) {
	args := m.Called(ctx, id)
	row, _ := args.Get(0).(*models.DocumentRow)
	return row, args.Error(1)
}

func (m *MockDocumentRepository) Create(ctx context.Context, d *models.Document) (int64, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocumentRepository) Update(ctx context.Context, d *models.Document) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockProviderRepository is a mock implementation of ProviderRepository for testing
type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) List(ctx context.Context, filter models.ProviderFilter) ([]models.ProviderRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.ProviderRow)
	return rows, args.Error(1)
}

func (m *MockProviderRepository) Get(ctx context.Context, id int64) (*models.Provider, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.Provider)
	return p, args.Error(1)
}

func (m *MockProviderRepository) Interventions(ctx context.Context, id int64) ([]models.InterventionRow, error) {
	args := m.Called(ctx, id)
	rows, _ := args.Get(0).([]models.InterventionRow)
	return rows, args.Error(1)
}

func (m *MockProviderRepository) Create(ctx context.Context, p *models.Provider) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProviderRepository) Update(ctx context.Context, p *models.Provider) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProviderRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockDashboardRepository is a mock implementation of DashboardRepository for testing
type MockDashboardRepository struct {
	mock.Mock
}

func (m *MockDashboardRepository) Counts(ctx context.Context) (models.Counts, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Counts), args.Error(1)
}

func (m *MockDashboardRepository) BuildingsByZone(ctx context.Context) ([]models.GroupCount, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.GroupCount)
	return rows, args.Error(1)
}

func (m *MockDashboardRepository) BuildingsByType(ctx context.Context) ([]models.GroupCount, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.GroupCount)
	return rows, args.Error(1)
}

func (m *MockDashboardRepository) StateDistribution(ctx context.Context) ([]models.GroupCount, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.GroupCount)
	return rows, args.Error(1)
}

func (m *MockDashboardRepository) Urgent(ctx context.Context) ([]models.UrgentBuilding, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.UrgentBuilding)
	return rows, args.Error(1)
}

func (m *MockDashboardRepository) CostByYear(ctx context.Context) ([]models.YearCost, error) {
	args := m.Called(ctx)
	rows, _ := args.Get(0).([]models.YearCost)
	return rows, args.Error(1)
}

func (m *MockDashboardRepository) MapBuildings(ctx context.Context, filter models.MapFilter) ([]models.MapBuilding, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.MapBuilding)
	return rows, args.Error(1)
}

// MockLookupRepository is a mock implementation of LookupRepository for testing
type MockLookupRepository struct {
	mock.Mock
}

func (m *MockLookupRepository) Options(ctx context.Context, set repository.OptionSet) ([]models.Option, error) {
	args := m.Called(ctx, set)
	rows, _ := args.Get(0).([]models.Option)
	return rows, args.Error(1)
}

func (m *MockLookupRepository) Values(ctx context.Context, set repository.ValueSet) ([]string, error) {
	args := m.Called(ctx, set)
	rows, _ := args.Get(0).([]string)
	return rows, args.Error(1)
}

// MockOwnerRepository is a mock implementation of OwnerRepository for testing
type MockOwnerRepository struct {
	mock.Mock
}

func (m *MockOwnerRepository) List(ctx context.Context, filter models.OwnerFilter) ([]models.OwnerRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.OwnerRow)
	return rows, args.Error(1)
}

func (m *MockOwnerRepository) Get(ctx context.Context, id int64) (*models.Owner, error) {
	args := m.Called(ctx, id)
	owner, _ := args.Get(0).(*models.Owner)
	return owner, args.Error(1)
}

func (m *MockOwnerRepository) Buildings(ctx context.Context, id int64) ([]models.BuildingSummary, error) {
	args := m.Called(ctx, id)
	rows, _ := args.Get(0).([]models.BuildingSummary)
	return rows, args.Error(1)
}

func (m *MockOwnerRepository) Create(ctx context.Context, owner *models.Owner) (int64, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOwnerRepository) Update(ctx context.Context, owner *models.Owner) error {
	return m.Called(ctx, owner).Error(0)
}

func (m *MockOwnerRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockProtectionRepository is a mock implementation of ProtectionRepository for testing
type MockProtectionRepository struct {
	mock.Mock
}

func (m *MockProtectionRepository) List(ctx context.Context, filter models.SearchFilter) ([]models.ProtectionLevelRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.ProtectionLevelRow)
	return rows, args.Error(1)
}

func (m *MockProtectionRepository) Get(ctx context.Context, id int64) (*models.ProtectionLevel, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*models.ProtectionLevel)
	return p, args.Error(1)
}

func (m *MockProtectionRepository) Buildings(ctx context.Context, id int64) ([]models.BuildingSummary, error) {
	args := m.Called(ctx, id)
	rows, _ := args.Get(0).([]models.BuildingSummary)
	return rows, args.Error(1)
}

func (m *MockProtectionRepository) Create(ctx context.Context, p *models.ProtectionLevel) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProtectionRepository) Update(ctx context.Context, p *models.ProtectionLevel) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockProtectionRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

// MockBuildingTypeRepository is a mock implementation of BuildingTypeRepository for testing
type MockBuildingTypeRepository struct {
	mock.Mock
}

func (m *MockBuildingTypeRepository) List(ctx context.Context, filter models.SearchFilter) ([]models.BuildingTypeRow, error) {
	args := m.Called(ctx, filter)
	rows, _ := args.Get(0).([]models.BuildingTypeRow)
	return rows, args.Error(1)
}

func (m *MockBuildingTypeRepository) Get(ctx context.Context, id int64) (*models.BuildingType, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*models.BuildingType)
	return t, args.Error(1)
}

func (m *MockBuildingTypeRepository) Buildings(ctx context.Context, id int64) ([]models.BuildingSummary, error) {
	args := m.Called(ctx, id)
	rows, _ := args.Get(0).([]models.BuildingSummary)
	return rows, args.Error(1)
}

func (m *MockBuildingTypeRepository) Create(ctx context.Context, t *models.BuildingType) (int64, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBuildingTypeRepository) Update(ctx context.Context, t *models.BuildingType) error {
	return m.Called(ctx, t).Error(0)
}

func (m *MockBuildingTypeRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
