package services

import (
	"context"

	"github.com/stwalsh4118/heritage/internal/logger"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
)

// ProviderService defines the business operations on providers.
type ProviderService interface {
	List(ctx context.Context, filter models.ProviderFilter) ([]models.ProviderRow, error)

	// Detail returns the provider with its interventions and their totals.
	Detail(ctx context.Context, id int64) (*models.ProviderDetail, error)
	Get(ctx context.Context, id int64) (*models.Provider, error)
	Create(ctx context.Context, p *models.Provider) (int64, error)
	Update(ctx context.Context, p *models.Provider) error

	// Delete fails with ErrDeleteBlocked while interventions reference the provider.
	Delete(ctx context.Context, id int64) error
}

type providerService struct {
	repo repository.ProviderRepository
	log  *logger.Logger
}

// NewProviderService creates a new instance of ProviderService.
func NewProviderService(repo repository.ProviderRepository, log *logger.Logger) ProviderService {
	return &providerService{repo: repo, log: log.WithComponent("provider_service")}
}

func (s *providerService) List(ctx context.Context, filter models.ProviderFilter) ([]models.ProviderRow, error) {
	providers, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list providers", err, nil)
		return nil, err
	}
	return providers, nil
}

func (s *providerService) Get(ctx context.Context, id int64) (*models.Provider, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		s.log.Error("Failed to get provider", err, logger.Fields{"provider_id": id})
		return nil, err
	}
	if p == nil {
		return nil, notFound("provider", id)
	}
	return p, nil
}

func (s *providerService) Detail(ctx context.Context, id int64) (*models.ProviderDetail, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	interventions, err := s.repo.Interventions(ctx, id)
	if err != nil {
		s.log.Error("Failed to list provider interventions", err, logger.Fields{"provider_id": id})
		return nil, err
	}

	return &models.ProviderDetail{
		Provider:      *p,
		Interventions: interventions,
		Stats:         ProviderStats(interventions),
	}, nil
}

// ProviderStats totals a provider's interventions. Missing costs count as zero.
func ProviderStats(interventions []models.InterventionRow) models.ProviderStats {
	stats := models.ProviderStats{Total: int64(len(interventions))}
	for _, i := range interventions {
		if i.IsValidated() {
			stats.Validated++
		}
		switch i.WorkStatus {
		case models.WorkInProgress:
			stats.InProgress++
		case models.WorkDone:
			stats.Done++
		}
		if i.EstimatedCost != nil {
			stats.TotalCost += *i.EstimatedCost
		}
	}
	return stats
}

func (s *providerService) Create(ctx context.Context, p *models.Provider) (int64, error) {
	if err := requireText("company name", p.CompanyName); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		s.log.Error("Failed to create provider", err, logger.Fields{"company": p.CompanyName})
		return 0, err
	}

	s.log.Info("Provider created", logger.Fields{"provider_id": id, "company": p.CompanyName})
	return id, nil
}

func (s *providerService) Update(ctx context.Context, p *models.Provider) error {
	if err := requireText("company name", p.CompanyName); err != nil {
		return err
	}

	if err := translate(s.repo.Update(ctx, p), "provider", p.ID); err != nil {
		s.log.Error("Failed to update provider", err, logger.Fields{"provider_id": p.ID})
		return err
	}

	s.log.Info("Provider updated", logger.Fields{"provider_id": p.ID})
	return nil
}

func (s *providerService) Delete(ctx context.Context, id int64) error {
	if err := translate(s.repo.Delete(ctx, id), "provider", id); err != nil {
		s.log.Warn("Provider not deleted", logger.Fields{"provider_id": id, "error": err.Error()})
		return err
	}

	s.log.Info("Provider deleted", logger.Fields{"provider_id": id})
	return nil
}
