package services

import (
	"context"

	"github.com/stwalsh4118/heritage/internal/logger"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
	"github.com/stwalsh4118/heritage/internal/status"
)

// ZoneService defines the business operations on urban zones.
type ZoneService interface {
	List(ctx context.Context, filter models.ZoneFilter) ([]models.ZoneRow, error)

	// Detail returns the zone, its buildings and their condition summary.
	Detail(ctx context.Context, id int64) (*models.ZoneDetail, error)
	Get(ctx context.Context, id int64) (*models.Zone, error)
	Create(ctx context.Context, zone *models.Zone) (int64, error)
	Update(ctx context.Context, zone *models.Zone) error

	// Delete fails with ErrDeleteBlocked while buildings are in the zone.
	Delete(ctx context.Context, id int64) error
}

type zoneService struct {
	repo repository.ZoneRepository
	log  *logger.Logger
}

// NewZoneService creates a new instance of ZoneService.
func NewZoneService(repo repository.ZoneRepository, log *logger.Logger) ZoneService {
	return &zoneService{repo: repo, log: log.WithComponent("zone_service")}
}

func (s *zoneService) List(ctx context.Context, filter models.ZoneFilter) ([]models.ZoneRow, error) {
	zones, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list zones", err, nil)
		return nil, err
	}
	return zones, nil
}

func (s *zoneService) Get(ctx context.Context, id int64) (*models.Zone, error) {
	zone, err := s.repo.Get(ctx, id)
	if err != nil {
		s.log.Error("Failed to get zone", err, logger.Fields{"zone_id": id})
		return nil, err
	}
	if zone == nil {
		return nil, notFound("zone", id)
	}
	return zone, nil
}

func (s *zoneService) Detail(ctx context.Context, id int64) (*models.ZoneDetail, error) {
	zone, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	buildings, err := s.repo.Buildings(ctx, id)
	if err != nil {
		s.log.Error("Failed to list zone buildings", err, logger.Fields{"zone_id": id})
		return nil, err
	}

	return &models.ZoneDetail{Zone: *zone, Buildings: buildings, Stats: status.Stats(buildings)}, nil
}

func (s *zoneService) Create(ctx context.Context, zone *models.Zone) (int64, error) {
	if err := requireText("name", zone.Name); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, zone)
	if err != nil {
		s.log.Error("Failed to create zone", err, logger.Fields{"name": zone.Name})
		return 0, err
	}

	s.log.Info("Zone created", logger.Fields{"zone_id": id, "name": zone.Name})
	return id, nil
}

func (s *zoneService) Update(ctx context.Context, zone *models.Zone) error {
	if err := requireText("name", zone.Name); err != nil {
		return err
	}

	if err := translate(s.repo.Update(ctx, zone), "zone", zone.ID); err != nil {
		s.log.Error("Failed to update zone", err, logger.Fields{"zone_id": zone.ID})
		return err
	}

	s.log.Info("Zone updated", logger.Fields{"zone_id": zone.ID})
	return nil
}

func (s *zoneService) Delete(ctx context.Context, id int64) error {
	if err := translate(s.repo.Delete(ctx, id), "zone", id); err != nil {
		s.log.Warn("Zone not deleted", logger.Fields{"zone_id": id, "error": err.Error()})
		return err
	}

	s.log.Info("Zone deleted", logger.Fields{"zone_id": id})
	return nil
}
