package services

import (
	"context"

	"github.com/stwalsh4118/heritage/internal/logger"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
)

// BuildingService defines the business operations on buildings.
type BuildingService interface {
	List(ctx context.Context, filter models.BuildingFilter) ([]models.BuildingRow, error)

	// Get returns ErrNotFound when the building does not exist.
	Get(ctx context.Context, id int64) (*models.Building, error)

	// Detail returns the building with its inspections, interventions and documents.
	Detail(ctx context.Context, id int64) (*models.BuildingDetail, error)

	// Create returns ErrInvalidInput for a missing name or street or out-of-range coordinates.
	Create(ctx context.Context, b *models.Building) (int64, error)
	Update(ctx context.Context, b *models.Building) error

	// Delete removes the building together with its documents, interventions
	// and inspections.
	Delete(ctx context.Context, id int64) error
}

type buildingService struct {
	repo repository.BuildingRepository
	log  *logger.Logger
}

// NewBuildingService creates a new instance of BuildingService.
func NewBuildingService(repo repository.BuildingRepository, log *logger.Logger) BuildingService {
	return &buildingService{repo: repo, log: log.WithComponent("building_service")}
}

func (s *buildingService) List(ctx context.Context, filter models.BuildingFilter) ([]models.BuildingRow, error) {
	buildings, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list buildings", err, nil)
		return nil, err
	}

	s.log.Debug("Listed buildings", logger.Fields{"count": len(buildings), "search": filter.Search})
	return buildings, nil
}

func (s *buildingService) Get(ctx context.Context, id int64) (*models.Building, error) {
	building, err := s.repo.Get(ctx, id)
	if err != nil {
		s.log.Error("Failed to get building", err, logger.Fields{"building_id": id})
		return nil, err
	}
	if building == nil {
		return nil, notFound("building", id)
	}
	return building, nil
}

func (s *buildingService) Detail(ctx context.Context, id int64) (*models.BuildingDetail, error) {
	detail, err := s.repo.Detail(ctx, id)
	if err != nil {
		s.log.Error("Failed to load building detail", err, logger.Fields{"building_id": id})
		return nil, err
	}
	if detail == nil {
		return nil, notFound("building", id)
	}
	return detail, nil
}

func (s *buildingService) validate(b *models.Building) error {
	if err := requireText("name", b.Name); err != nil {
		return err
	}
	if err := requireText("street", b.Street); err != nil {
		return err
	}
	return validateCoordinates(b.Latitude, b.Longitude)
}

func (s *buildingService) Create(ctx context.Context, b *models.Building) (int64, error) {
	if err := s.validate(b); err != nil {
		s.log.Warn("Rejected building", logger.Fields{"error": err.Error()})
		return 0, err
	}

	id, err := s.repo.Create(ctx, b)
	if err != nil {
		s.log.Error("Failed to create building", err, logger.Fields{"name": b.Name})
		return 0, err
	}

	s.log.Info("Building created", logger.Fields{"building_id": id, "name": b.Name})
	return id, nil
}

func (s *buildingService) Update(ctx context.Context, b *models.Building) error {
	if err := s.validate(b); err != nil {
		s.log.Warn("Rejected building update", logger.Fields{"building_id": b.ID, "error": err.Error()})
		return err
	}

	if err := translate(s.repo.Update(ctx, b), "building", b.ID); err != nil {
		s.log.Error("Failed to update building", err, logger.Fields{"building_id": b.ID})
		return err
	}

	s.log.Info("Building updated", logger.Fields{"building_id": b.ID})
	return nil
}

func (s *buildingService) Delete(ctx context.Context, id int64) error {
	if err := translate(s.repo.Delete(ctx, id), "building", id); err != nil {
		s.log.Error("Failed to delete building", err, logger.Fields{"building_id": id})
		return err
	}

	s.log.Info("Building deleted with its dependents", logger.Fields{"building_id": id})
	return nil
}
