package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stwalsh4118/heritage/internal/database"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/query"
)

const documentSelect = `
	SELECT d.id, d.title, d.doc_type, d.file_url, d.building_id, COALESCE(b.name, '')
	FROM document d
	LEFT JOIN building b ON b.id = d.building_id`

func scanDocumentRow(rows pgx.Rows) (models.DocumentRow, error) {
	var d models.DocumentRow
	err := rows.Scan(&d.ID, &d.Title, &d.DocType, &d.FileURL, &d.BuildingID, &d.BuildingName)
	return d, err
}

// DocumentRepository defines data access for building documents.
type DocumentRepository interface {
	// List returns documents matching the filter, newest first.
	List(ctx context.Context, filter models.DocumentFilter) ([]models.DocumentRow, error)

	// Get returns nil, nil when the document does not exist.
	Get(ctx context.Context, id int64) (*models.DocumentRow, error)
	Create(ctx context.Context, d *models.Document) (int64, error)
	Update(ctx context.Context, d *models.Document) error

	// Delete removes the document and returns the building it belonged to.
	Delete(ctx context.Context, id int64) (int64, error)
}

type documentRepository struct{}

// NewDocumentRepository creates a new instance of DocumentRepository.
func NewDocumentRepository() DocumentRepository {
	return &documentRepository{}
}

func (r *documentRepository) List(ctx context.Context, filter models.DocumentFilter) ([]models.DocumentRow, error) {
	sql, args := query.New(documentSelect).
		Search(filter.Search, "d.title", "b.name").
		Equal("d.doc_type", filter.DocType).
		Equal("d.building_id", filter.BuildingID).
		OrderBy("d.id DESC").
		Build()

	documents, err := queryRows(ctx, sql, args, scanDocumentRow)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	return documents, nil
}

func (r *documentRepository) Get(ctx context.Context, id int64) (*models.DocumentRow, error) {
	sql, args := query.New(documentSelect).Equal("d.id", &id).Build()

	rows, err := queryRows(ctx, sql, args, scanDocumentRow)
	if err != nil {
		return nil, fmt.Errorf("failed to get document %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *documentRepository) Create(ctx context.Context, d *models.Document) (int64, error) {
	id, err := insertReturningID(ctx, `
		INSERT INTO document (title, doc_type, file_url, building_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		d.Title, string(d.DocType), d.FileURL, d.BuildingID)
	if err != nil {
		return 0, fmt.Errorf("failed to create document: %w", err)
	}
	return id, nil
}

func (r *documentRepository) Update(ctx context.Context, d *models.Document) error {
	err := execOne(ctx, `
		UPDATE document SET title = $1, doc_type = $2, file_url = $3, building_id = $4
		WHERE id = $5`,
		d.Title, string(d.DocType), d.FileURL, d.BuildingID, d.ID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to update document %d: %w", d.ID, err)
	}
	return err
}

func (r *documentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	var buildingID int64
	err := inTx(ctx, func(q database.Querier) error {
		return q.QueryRow(ctx, `DELETE FROM document WHERE id = $1 RETURNING building_id`, id).Scan(&buildingID)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("failed to delete document %d: %w", id, err)
	}
	return buildingID, nil
}
