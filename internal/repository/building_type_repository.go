package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/query"
)

// BuildingTypeRepository defines data access for building types.
type BuildingTypeRepository interface {
	List(ctx context.Context, filter models.SearchFilter) ([]models.BuildingTypeRow, error)

	// Get returns nil, nil when the type does not exist.
	Get(ctx context.Context, id int64) (*models.BuildingType, error)
	Buildings(ctx context.Context, id int64) ([]models.BuildingSummary, error)
	Create(ctx context.Context, t *models.BuildingType) (int64, error)
	Update(ctx context.Context, t *models.BuildingType) error

	// Delete is refused with a DeleteBlockedError while buildings have this type.
	Delete(ctx context.Context, id int64) error
}

type buildingTypeRepository struct{}

// NewBuildingTypeRepository creates a new instance of BuildingTypeRepository.
func NewBuildingTypeRepository() BuildingTypeRepository {
	return &buildingTypeRepository{}
}

func (r *buildingTypeRepository) List(ctx context.Context, filter models.SearchFilter) ([]models.BuildingTypeRow, error) {
	sql, args := query.New(`
		SELECT t.id, t.label, COUNT(b.id)
		FROM building_type t
		LEFT JOIN building b ON b.type_id = t.id`).
		Search(filter.Search, "t.label").
		GroupBy("t.id, t.label").
		OrderBy("t.label").
		Build()

	types, err := queryRows(ctx, sql, args, func(rows pgx.Rows) (models.BuildingTypeRow, error) {
		var t models.BuildingTypeRow
		err := rows.Scan(&t.ID, &t.Label, &t.BuildingCount)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list building types: %w", err)
	}
	return types, nil
}

func (r *buildingTypeRepository) Get(ctx context.Context, id int64) (*models.BuildingType, error) {
	q, err := conn(ctx)
	if err != nil {
		return nil, err
	}

	var t models.BuildingType
	err = q.QueryRow(ctx, `SELECT id, label FROM building_type WHERE id = $1`, id).Scan(&t.ID, &t.Label)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get building type %d: %w", id, err)
	}
	return &t, nil
}

func (r *buildingTypeRepository) Buildings(ctx context.Context, id int64) ([]models.BuildingSummary, error) {
	buildings, err := buildingSummaries(ctx, "type_id", id)
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings of type %d: %w", id, err)
	}
	return buildings, nil
}

func (r *buildingTypeRepository) Create(ctx context.Context, t *models.BuildingType) (int64, error) {
	id, err := insertReturningID(ctx, `INSERT INTO building_type (label) VALUES ($1) RETURNING id`, t.Label)
	if err != nil {
		return 0, fmt.Errorf("failed to create building type: %w", err)
	}
	return id, nil
}

func (r *buildingTypeRepository) Update(ctx context.Context, t *models.BuildingType) error {
	err := execOne(ctx, `UPDATE building_type SET label = $1 WHERE id = $2`, t.Label, t.ID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to update building type %d: %w", t.ID, err)
	}
	return err
}

func (r *buildingTypeRepository) Delete(ctx context.Context, id int64) error {
	return guardedDelete(ctx,
		DeleteBlockedError{Entity: "building type", Dependents: "building(s)"},
		`SELECT COUNT(*) FROM building WHERE type_id = $1`,
		`DELETE FROM building_type WHERE id = $1`,
		id)
}
