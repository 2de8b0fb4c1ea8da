package services

import (
	"context"

	"github.com/stwalsh4118/heritage/internal/logger"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
	"github.com/stwalsh4118/heritage/internal/status"
)

// BuildingTypeService defines the business operations on building types.
type BuildingTypeService interface {
	List(ctx context.Context, filter models.SearchFilter) ([]models.BuildingTypeRow, error)
	Detail(ctx context.Context, id int64) (*models.BuildingTypeDetail, error)
	Get(ctx context.Context, id int64) (*models.BuildingType, error)
	Create(ctx context.Context, t *models.BuildingType) (int64, error)
	Update(ctx context.Context, t *models.BuildingType) error
	Delete(ctx context.Context, id int64) error
}

type buildingTypeService struct {
	repo repository.BuildingTypeRepository
	log  *logger.Logger
}

// NewBuildingTypeService creates a new instance of BuildingTypeService.
func NewBuildingTypeService(repo repository.BuildingTypeRepository, log *logger.Logger) BuildingTypeService {
	return &buildingTypeService{repo: repo, log: log.WithComponent("building_type_service")}
}

func (s *buildingTypeService) List(ctx context.Context, filter models.SearchFilter) ([]models.BuildingTypeRow, error) {
	types, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list building types", err, nil)
		return nil, err
	}
	return types, nil
}

func (s *buildingTypeService) Get(ctx context.Context, id int64) (*models.BuildingType, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		s.log.Error("Failed to get building type", err, logger.Fields{"type_id": id})
		return nil, err
	}
	if t == nil {
		return nil, notFound("building type", id)
	}
	return t, nil
}

func (s *buildingTypeService) Detail(ctx context.Context, id int64) (*models.BuildingTypeDetail, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	buildings, err := s.repo.Buildings(ctx, id)
	if err != nil {
		s.log.Error("Failed to list buildings of type", err, logger.Fields{"type_id": id})
		return nil, err
	}

	return &models.BuildingTypeDetail{BuildingType: *t, Buildings: buildings, Stats: status.Stats(buildings)}, nil
}

func (s *buildingTypeService) Create(ctx context.Context, t *models.BuildingType) (int64, error) {
	if err := requireText("label", t.Label); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		s.log.Error("Failed to create building type", err, logger.Fields{"label": t.Label})
		return 0, err
	}

	s.log.Info("Building type created", logger.Fields{"type_id": id, "label": t.Label})
	return id, nil
}

func (s *buildingTypeService) Update(ctx context.Context, t *models.BuildingType) error {
	if err := requireText("label", t.Label); err != nil {
		return err
	}

	if err := translate(s.repo.Update(ctx, t), "building type", t.ID); err != nil {
		s.log.Error("Failed to update building type", err, logger.Fields{"type_id": t.ID})
		return err
	}

	s.log.Info("Building type updated", logger.Fields{"type_id": t.ID})
	return nil
}

func (s *buildingTypeService) Delete(ctx context.Context, id int64) error {
	if err := translate(s.repo.Delete(ctx, id), "building type", id); err != nil {
		s.log.Warn("Building type not deleted", logger.Fields{"type_id": id, "error": err.Error()})
		return err
	}

	s.log.Info("Building type deleted", logger.Fields{"type_id": id})
	return nil
}
