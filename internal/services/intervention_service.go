package services

import (
	"context"

	"github.com/stwalsh4118/heritage/internal/logger"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
)

// InterventionService defines the business operations on interventions.
type InterventionService interface {
	List(ctx context.Context, filter models.InterventionFilter) ([]models.InterventionRow, error)
	Get(ctx context.Context, id int64) (*models.InterventionRow, error)

	// Create returns ErrInvalidInput for an unknown work status, a negative
	// cost or an end date before the start date.
	Create(ctx context.Context, i *models.Intervention) (int64, error)
	Update(ctx context.Context, i *models.Intervention) error
	Delete(ctx context.Context, id int64) error

	// Validate stamps the intervention as approved today. Validating again
	// overwrites the previous stamp.
	Validate(ctx context.Context, id int64, comment string) error
}

type interventionService struct {
	repo repository.InterventionRepository
	log  *logger.Logger
}

// NewInterventionService creates a new instance of InterventionService.
func NewInterventionService(repo repository.InterventionRepository, log *logger.Logger) InterventionService {
	return &interventionService{repo: repo, log: log.WithComponent("intervention_service")}
}

func (s *interventionService) List(ctx context.Context, filter models.InterventionFilter) ([]models.InterventionRow, error) {
	interventions, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list interventions", err, nil)
		return nil, err
	}
	return interventions, nil
}

func (s *interventionService) Get(ctx context.Context, id int64) (*models.InterventionRow, error) {
	intervention, err := s.repo.Get(ctx, id)
	if err != nil {
		s.log.Error("Failed to get intervention", err, logger.Fields{"intervention_id": id})
		return nil, err
	}
	if intervention == nil {
		return nil, notFound("intervention", id)
	}
	return intervention, nil
}

func validateIntervention(i *models.Intervention) error {
	if i.WorkStatus == "" {
		i.WorkStatus = models.WorkPlanned
	}
	if !i.WorkStatus.Known() {
		return invalid("unknown work status %q", i.WorkStatus)
	}
	if i.BuildingID <= 0 {
		return invalid("building is required")
	}
	if i.ProviderID <= 0 {
		return invalid("provider is required")
	}
	if i.EstimatedCost != nil && *i.EstimatedCost < 0 {
		return invalid("estimated cost cannot be negative")
	}
	if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
		return invalid("end date is before start date")
	}
	return nil
}

func (s *interventionService) Create(ctx context.Context, i *models.Intervention) (int64, error) {
	if err := validateIntervention(i); err != nil {
		s.log.Warn("Rejected intervention", logger.Fields{"error": err.Error()})
		return 0, err
	}

	id, err := s.repo.Create(ctx, i)
	if err != nil {
		s.log.Error("Failed to create intervention", err, logger.Fields{"building_id": i.BuildingID})
		return 0, err
	}

	s.log.Info("Intervention created", logger.Fields{
		"intervention_id": id, "building_id": i.BuildingID, "provider_id": i.ProviderID,
	})
	return id, nil
}

func (s *interventionService) Update(ctx context.Context, i *models.Intervention) error {
	if err := validateIntervention(i); err != nil {
		s.log.Warn("Rejected intervention update", logger.Fields{"intervention_id": i.ID, "error": err.Error()})
		return err
	}

	if err := translate(s.repo.Update(ctx, i), "intervention", i.ID); err != nil {
		s.log.Error("Failed to update intervention", err, logger.Fields{"intervention_id": i.ID})
		return err
	}

	s.log.Info("Intervention updated", logger.Fields{"intervention_id": i.ID})
	return nil
}

func (s *interventionService) Delete(ctx context.Context, id int64) error {
	if err := translate(s.repo.Delete(ctx, id), "intervention", id); err != nil {
		s.log.Error("Failed to delete intervention", err, logger.Fields{"intervention_id": id})
		return err
	}

	s.log.Info("Intervention deleted", logger.Fields{"intervention_id": id})
	return nil
}

func (s *interventionService) Validate(ctx context.Context, id int64, comment string) error {
	if err := translate(s.repo.Validate(ctx, id, comment), "intervention", id); err != nil {
		s.log.Error("Failed to validate intervention", err, logger.Fields{"intervention_id": id})
		return err
	}

	s.log.Info("Intervention validated", logger.Fields{"intervention_id": id})
	return nil
}
