package services

import (
	"context"
	"time"

	"github.com/stwalsh4118/heritage/internal/logger"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
)

// InspectionService defines the business operations on inspections.
type InspectionService interface {
	List(ctx context.Context, filter models.InspectionFilter) ([]models.InspectionRow, error)
	Get(ctx context.Context, id int64) (*models.InspectionRow, error)

	// Create returns ErrInvalidInput for an unknown observed state or a missing visit date.
	Create(ctx context.Context, i *models.Inspection) (int64, error)

	// Update keeps the stored visit date. A zero VisitDate means unchanged;
	// any other date that differs from the stored one is ErrInvalidInput.
	Update(ctx context.Context, i *models.Inspection) error
	Delete(ctx context.Context, id int64) error
}

type inspectionService struct {
	repo repository.InspectionRepository
	log  *logger.Logger
}

// NewInspectionService creates a new instance of InspectionService.
func NewInspectionService(repo repository.InspectionRepository, log *logger.Logger) InspectionService {
	return &inspectionService{repo: repo, log: log.WithComponent("inspection_service")}
}

func (s *inspectionService) List(ctx context.Context, filter models.InspectionFilter) ([]models.InspectionRow, error) {
	if filter.DateFrom != nil && filter.DateTo != nil && filter.DateTo.Before(*filter.DateFrom) {
		s.log.Debug("Inspection date range is empty", logger.Fields{
			"from": filter.DateFrom.Format("2006-01-02"), "to": filter.DateTo.Format("2006-01-02"),
		})
	}

	inspections, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list inspections", err, nil)
		return nil, err
	}
	return inspections, nil
}

func (s *inspectionService) Get(ctx context.Context, id int64) (*models.InspectionRow, error) {
	inspection, err := s.repo.Get(ctx, id)
	if err != nil {
		s.log.Error("Failed to get inspection", err, logger.Fields{"inspection_id": id})
		return nil, err
	}
	if inspection == nil {
		return nil, notFound("inspection", id)
	}
	return inspection, nil
}

func validateInspection(i *models.Inspection) error {
	if i.VisitDate.IsZero() {
		return invalid("visit date is required")
	}
	if !i.ObservedState.Known() {
		return invalid("unknown observed state %q", i.ObservedState)
	}
	if i.BuildingID <= 0 {
		return invalid("building is required")
	}
	return nil
}

func (s *inspectionService) Create(ctx context.Context, i *models.Inspection) (int64, error) {
	if err := validateInspection(i); err != nil {
		s.log.Warn("Rejected inspection", logger.Fields{"error": err.Error()})
		return 0, err
	}

	id, err := s.repo.Create(ctx, i)
	if err != nil {
		s.log.Error("Failed to create inspection", err, logger.Fields{"building_id": i.BuildingID})
		return 0, err
	}

	s.log.Info("Inspection recorded", logger.Fields{
		"inspection_id": id, "building_id": i.BuildingID, "state": string(i.ObservedState),
	})
	return id, nil
}

func (s *inspectionService) Update(ctx context.Context, i *models.Inspection) error {
	current, err := s.Get(ctx, i.ID)
	if err != nil {
		return err
	}
	if !i.VisitDate.IsZero() && !sameDay(i.VisitDate, current.VisitDate) {
		s.log.Warn("Rejected visit date change", logger.Fields{
			"inspection_id": i.ID,
			"stored":        current.VisitDate.Format("2006-01-02"),
			"submitted":     i.VisitDate.Format("2006-01-02"),
		})
		return invalid("visit date of inspection %d cannot be changed", i.ID)
	}
	i.VisitDate = current.VisitDate

	if err := validateInspection(i); err != nil {
		s.log.Warn("Rejected inspection update", logger.Fields{"inspection_id": i.ID, "error": err.Error()})
		return err
	}

	if err := translate(s.repo.Update(ctx, i), "inspection", i.ID); err != nil {
		s.log.Error("Failed to update inspection", err, logger.Fields{"inspection_id": i.ID})
		return err
	}

	s.log.Info("Inspection updated", logger.Fields{"inspection_id": i.ID})
	return nil
}

func (s *inspectionService) Delete(ctx context.Context, id int64) error {
	if err := translate(s.repo.Delete(ctx, id), "inspection", id); err != nil {
		s.log.Error("Failed to delete inspection", err, logger.Fields{"inspection_id": id})
		return err
	}

	s.log.Info("Inspection deleted", logger.Fields{"inspection_id": id})
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
