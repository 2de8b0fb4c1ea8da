package services

import (
	"context"

	"github.com/stwalsh4118/heritage/internal/logger"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
)

// OwnerService defines the business operations on building owners.
type OwnerService interface {
	List(ctx context.Context, filter models.OwnerFilter) ([]models.OwnerRow, error)
	Detail(ctx context.Context, id int64) (*models.OwnerDetail, error)
	Get(ctx context.Context, id int64) (*models.Owner, error)
	Create(ctx context.Context, owner *models.Owner) (int64, error)
	Update(ctx context.Context, owner *models.Owner) error
	Delete(ctx context.Context, id int64) error
}

type ownerService struct {
	repo repository.OwnerRepository
	log  *logger.Logger
}

// NewOwnerService creates a new instance of OwnerService.
func NewOwnerService(repo repository.OwnerRepository, log *logger.Logger) OwnerService {
	return &ownerService{repo: repo, log: log.WithComponent("owner_service")}
}

func (s *ownerService) List(ctx context.Context, filter models.OwnerFilter) ([]models.OwnerRow, error) {
	owners, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list owners", err, nil)
		return nil, err
	}
	return owners, nil
}

func (s *ownerService) Get(ctx context.Context, id int64) (*models.Owner, error) {
	owner, err := s.repo.Get(ctx, id)
	if err != nil {
		s.log.Error("Failed to get owner", err, logger.Fields{"owner_id": id})
		return nil, err
	}
	if owner == nil {
		return nil, notFound("owner", id)
	}
	return owner, nil
}

func (s *ownerService) Detail(ctx context.Context, id int64) (*models.OwnerDetail, error) {
	owner, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	buildings, err := s.repo.Buildings(ctx, id)
	if err != nil {
		s.log.Error("Failed to list owned buildings", err, logger.Fields{"owner_id": id})
		return nil, err
	}
	return &models.OwnerDetail{Owner: *owner, Buildings: buildings}, nil
}

func (s *ownerService) Create(ctx context.Context, owner *models.Owner) (int64, error) {
	if err := requireText("full name", owner.FullName); err != nil {
		return 0, err
	}

	id, err := s.repo.Create(ctx, owner)
	if err != nil {
		s.log.Error("Failed to create owner", err, nil)
		return 0, err
	}

	s.log.Info("Owner created", logger.Fields{"owner_id": id})
	return id, nil
}

func (s *ownerService) Update(ctx context.Context, owner *models.Owner) error {
	if err := requireText("full name", owner.FullName); err != nil {
		return err
	}

	if err := translate(s.repo.Update(ctx, owner), "owner", owner.ID); err != nil {
		s.log.Error("Failed to update owner", err, logger.Fields{"owner_id": owner.ID})
		return err
	}

	s.log.Info("Owner updated", logger.Fields{"owner_id": owner.ID})
	return nil
}

func (s *ownerService) Delete(ctx context.Context, id int64) error {
	if err := translate(s.repo.Delete(ctx, id), "owner", id); err != nil {
		s.log.Warn("Owner not deleted", logger.Fields{"owner_id": id, "error": err.Error()})
		return err
	}

	s.log.Info("Owner deleted", logger.Fields{"owner_id": id})
	return nil
}
