package services

import (
	"context"

	"github.com/stwalsh4118/heritage/internal/logger"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
)

// ProtectionService defines the business operations on protection levels.
type ProtectionService interface {
	List(ctx context.Context, filter models.SearchFilter) ([]models.ProtectionLevelRow, error)
	Detail(ctx context.Context, id int64) (*models.ProtectionLevelDetail, error)
	Get(ctx context.Context, id int64) (*models.ProtectionLevel, error)
	Create(ctx context.Context, p *models.ProtectionLevel) (int64, error)
	Update(ctx context.Context, p *models.ProtectionLevel) error
	Delete(ctx context.Context, id int64) error
}

type protectionService struct {
	repo repository.ProtectionRepository
	log  *logger.Logger
}

// NewProtectionService creates a new instance of ProtectionService.
func NewProtectionService(repo repository.ProtectionRepository, log *logger.Logger) ProtectionService {
	return &protectionService{repo: repo, log: log.WithComponent("protection_service")}
}

func (s *protectionService) List(ctx context.Context, filter models.SearchFilter) ([]models.ProtectionLevelRow, error) {
	levels, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list protection levels", err, nil)
		return nil, err
	}
	return levels, nil
}

func (s *protectionService) Get(ctx context.Context, id int64) (*models.ProtectionLevel, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		s.log.Error("Failed to get protection level", err, logger.Fields{"protection_id": id})
		return nil, err
	}
	if p == nil {
		return nil, notFound("protection level", id)
	}
	return p, nil
}

func (s *protectionService) Detail(ctx context.Context, id int64) (*models.ProtectionLevelDetail, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	buildings, err := s.repo.Buildings(ctx, id)
	if err != nil {
		s.log.Error("Failed to list protected buildings", err, logger.Fields{"protection_id": id})
		return nil, err
	}
	return &models.ProtectionLevelDetail{ProtectionLevel: *p, Buildings: buildings}, nil
}

func (s *protectionService) Create(ctx context.Context, p *models.ProtectionLevel) (int64, error) {
	if err := requireText("level", p.Level); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		s.log.Error("Failed to create protection level", err, logger.Fields{"level": p.Level})
		return 0, err
	}

	s.log.Info("Protection level created", logger.Fields{"protection_id": id, "level": p.Level})
	return id, nil
}

func (s *protectionService) Update(ctx context.Context, p *models.ProtectionLevel) error {
	if err := requireText("level", p.Level); err != nil {
		return err
	}

	if err := translate(s.repo.Update(ctx, p), "protection level", p.ID); err != nil {
		s.log.Error("Failed to update protection level", err, logger.Fields{"protection_id": p.ID})
		return err
	}

	s.log.Info("Protection level updated", logger.Fields{"protection_id": p.ID})
	return nil
}

func (s *protectionService) Delete(ctx context.Context, id int64) error {
	if err := translate(s.repo.Delete(ctx, id), "protection level", id); err != nil {
		s.log.Warn("Protection level not deleted", logger.Fields{"protection_id": id, "error": err.Error()})
		return err
	}

	s.log.Info("Protection level deleted", logger.Fields{"protection_id": id})
	return nil
}
