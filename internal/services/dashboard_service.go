package services

import (
	"context"
	"time"

	"github.com/stwalsh4118/heritage/internal/logger"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
)

// DashboardService assembles the cross-entity summary.
type DashboardService interface {
	// Build runs every aggregate as of now.
	Build(ctx context.Context) (*models.Dashboard, error)

	// MapBuildings returns the geolocated buildings matching filter.
	MapBuildings(ctx context.Context, filter models.MapFilter) ([]models.MapBuilding, error)
}

type dashboardService struct {
	repo repository.DashboardRepository
	log  *logger.Logger
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(repo repository.DashboardRepository, log *logger.Logger) DashboardService {
	return &dashboardService{repo: repo, log: log.WithComponent("dashboard_service")}
}

func (s *dashboardService) Build(ctx context.Context) (*models.Dashboard, error) {
	start := time.Now()
	d := &models.Dashboard{}

	var err error
	if d.Counts, err = s.repo.Counts(ctx); err != nil {
		return nil, s.fail("counts", err)
	}
	if d.ByZone, err = s.repo.BuildingsByZone(ctx); err != nil {
		return nil, s.fail("buildings by zone", err)
	}
	if d.ByType, err = s.repo.BuildingsByType(ctx); err != nil {
		return nil, s.fail("buildings by type", err)
	}
	if d.States, err = s.repo.StateDistribution(ctx); err != nil {
		return nil, s.fail("state distribution", err)
	}
	if d.Urgent, err = s.repo.Urgent(ctx); err != nil {
		return nil, s.fail("urgent buildings", err)
	}
	if d.CostByYear, err = s.repo.CostByYear(ctx); err != nil {
		return nil, s.fail("cost by year", err)
	}
	if d.MapBuildings, err = s.repo.MapBuildings(ctx, models.MapFilter{}); err != nil {
		return nil, s.fail("map buildings", err)
	}

	s.log.Debug("Dashboard built", logger.Fields{
		"buildings": d.Counts.Buildings,
		"urgent":    len(d.Urgent),
		"took_ms":   time.Since(start).Milliseconds(),
	})
	return d, nil
}

func (s *dashboardService) MapBuildings(ctx context.Context, filter models.MapFilter) ([]models.MapBuilding, error) {
	if filter.State != "" && !models.ObservedState(filter.State).Known() {
		return nil, invalid("unknown observed state %q", filter.State)
	}

	buildings, err := s.repo.MapBuildings(ctx, filter)
	if err != nil {
		return nil, s.fail("map buildings", err)
	}
	return buildings, nil
}

func (s *dashboardService) fail(part string, err error) error {
	s.log.Error("Failed to aggregate dashboard", err, logger.Fields{"part": part})
	return err
}
