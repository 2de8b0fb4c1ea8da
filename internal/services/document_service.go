package services

import (
	"context"
	"net/url"

	"github.com/stwalsh4118/heritage/internal/logger"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/repository"
)

// DocumentService defines the business operations on building documents.
type DocumentService interface {
	List(ctx context.Context, filter models.DocumentFilter) ([]models.DocumentRow, error)
	Get(ctx context.Context, id int64) (*models.DocumentRow, error)

	// Create returns ErrInvalidInput for an unknown type or a malformed URL.
	Create(ctx context.Context, d *models.Document) (int64, error)
	Update(ctx context.Context, d *models.Document) error

	// Delete returns the id of the building the document belonged to.
	Delete(ctx context.Context, id int64) (int64, error)
}

type documentService struct {
	repo repository.DocumentRepository
	log  *logger.Logger
}

// NewDocumentService creates a new instance of DocumentService.
func NewDocumentService(repo repository.DocumentRepository, log *logger.Logger) DocumentService {
	return &documentService{repo: repo, log: log.WithComponent("document_service")}
}

func (s *documentService) List(ctx context.Context, filter models.DocumentFilter) ([]models.DocumentRow, error) {
	documents, err := s.repo.List(ctx, filter)
	if err != nil {
		s.log.Error("Failed to list documents", err, nil)
		return nil, err
	}
	return documents, nil
}

func (s *documentService) Get(ctx context.Context, id int64) (*models.DocumentRow, error) {
	document, err := s.repo.Get(ctx, id)
	if err != nil {
		s.log.Error("Failed to get document", err, logger.Fields{"document_id": id})
		return nil, err
	}
	if document == nil {
		return nil, notFound("document", id)
	}
	return document, nil
}

func validateDocument(d *models.Document) error {
	if err := requireText("title", d.Title); err != nil {
		return err
	}
	if !d.DocType.Known() {
		return invalid("unknown document type %q", d.DocType)
	}
	if err := requireText("file URL", d.FileURL); err != nil {
		return err
	}
	if _, err := url.Parse(d.FileURL); err != nil {
		return invalid("file URL is malformed: %v", err)
	}
	if d.BuildingID <= 0 {
		return invalid("building is required")
	}
	return nil
}

func (s *documentService) Create(ctx context.Context, d *models.Document) (int64, error) {
	if err := validateDocument(d); err != nil {
		s.log.Warn("Rejected document", logger.Fields{"error": err.Error()})
		return 0, err
	}

	id, err := s.repo.Create(ctx, d)
	if err != nil {
		s.log.Error("Failed to create document", err, logger.Fields{"building_id": d.BuildingID})
		return 0, err
	}

	s.log.Info("Document attached", logger.Fields{"document_id": id, "building_id": d.BuildingID})
	return id, nil
}

func (s *documentService) Update(ctx context.Context, d *models.Document) error {
	if err := validateDocument(d); err != nil {
		s.log.Warn("Rejected document update", logger.Fields{"document_id": d.ID, "error": err.Error()})
		return err
	}

	if err := translate(s.repo.Update(ctx, d), "document", d.ID); err != nil {
		s.log.Error("Failed to update document", err, logger.Fields{"document_id": d.ID})
		return err
	}

	s.log.Info("Document updated", logger.Fields{"document_id": d.ID})
	return nil
}

func (s *documentService) Delete(ctx context.Context, id int64) (int64, error) {
	buildingID, err := s.repo.Delete(ctx, id)
	if err = translate(err, "document", id); err != nil {
		s.log.Error("Failed to delete document", err, logger.Fields{"document_id": id})
		return 0, err
	}

	s.log.Info("Document deleted", logger.Fields{"document_id": id, "building_id": buildingID})
	return buildingID, nil
}
