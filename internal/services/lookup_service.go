package services

import (
	"context"

	"github.com/stwalsh4118/heritage/internal/logger"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
)

// LookupService feeds the dropdowns of filter bars and forms.
type LookupService interface {
	Options(ctx context.Context, sets ...repository.OptionSet) (map[repository.OptionSet][]models.Option, error)
	Values(ctx context.Context, sets ...repository.ValueSet) (map[repository.ValueSet][]string, error)
}

type lookupService struct {
	repo repository.LookupRepository
	log  *logger.Logger
}

// NewLookupService creates a new instance of LookupService.
func NewLookupService(repo repository.LookupRepository, log *logger.Logger) LookupService {
	return &lookupService{repo: repo, log: log.WithComponent("lookup_service")}
}

// Options loads each requested id/label set. Queries share the request
// connection, so they run one after another.
func (s *lookupService) Options(ctx context.Context, sets ...repository.OptionSet) (map[repository.OptionSet][]models.Option, error) {
	out := make(map[repository.OptionSet][]models.Option, len(sets))
	for _, set := range sets {
		options, err := s.repo.Options(ctx, set)
		if err != nil {
			s.log.Error("Failed to load options", err, logger.Fields{"set": string(set)})
			return nil, err
		}
		out[set] = options
	}
	return out, nil
}

func (s *lookupService) Values(ctx context.Context, sets ...repository.ValueSet) (map[repository.ValueSet][]string, error) {
	out := make(map[repository.ValueSet][]string, len(sets))
	for _, set := range sets {
		values, err := s.repo.Values(ctx, set)
		if err != nil {
			s.log.Error("Failed to load vocabulary", err, logger.Fields{"set": string(set)})
			return nil, err
		}
		out[set] = values
	}
	return out, nil
}
