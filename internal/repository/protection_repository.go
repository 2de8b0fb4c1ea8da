package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/query"
)

// ProtectionRepository defines data access for protection levels.
type ProtectionRepository interface {
	List(ctx context.Context, filter models.SearchFilter) ([]models.ProtectionLevelRow, error)

	// Get returns nil, nil when the level does not exist.
	Get(ctx context.Context, id int64) (*models.ProtectionLevel, error)
	Buildings(ctx context.Context, id int64) ([]models.BuildingSummary, error)
	Create(ctx context.Context, p *models.ProtectionLevel) (int64, error)
	Update(ctx context.Context, p *models.ProtectionLevel) error

	// Delete is refused with a DeleteBlockedError while buildings carry this level.
	Delete(ctx context.Context, id int64) error
}

type protectionRepository struct{}

// NewProtectionRepository creates a new instance of ProtectionRepository.
func NewProtectionRepository() ProtectionRepository {
	return &protectionRepository{}
}

func (r *protectionRepository) List(ctx context.Context, filter models.SearchFilter) ([]models.ProtectionLevelRow, error) {
	sql, args := query.New(`
		SELECT p.id, p.level, COUNT(b.id)
		FROM protection_level p
		LEFT JOIN building b ON b.protection_id = p.id`).
		Search(filter.Search, "p.level").
		GroupBy("p.id, p.level").
		OrderBy("p.level").
		Build()

	levels, err := queryRows(ctx, sql, args, func(rows pgx.Rows) (models.ProtectionLevelRow, error) {
		var p models.ProtectionLevelRow
		err := rows.Scan(&p.ID, &p.Level, &p.BuildingCount)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list protection levels: %w", err)
	}
	return levels, nil
}

func (r *protectionRepository) Get(ctx context.Context, id int64) (*models.ProtectionLevel, error) {
	q, err := conn(ctx)
	if err != nil {
		return nil, err
	}

	var p models.ProtectionLevel
	err = q.QueryRow(ctx, `SELECT id, level FROM protection_level WHERE id = $1`, id).Scan(&p.ID, &p.Level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get protection level %d: %w", id, err)
	}
	return &p, nil
}

func (r *protectionRepository) Buildings(ctx context.Context, id int64) ([]models.BuildingSummary, error) {
	buildings, err := buildingSummaries(ctx, "protection_id", id)
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings of protection level %d: %w", id, err)
	}
	return buildings, nil
}

func (r *protectionRepository) Create(ctx context.Context, p *models.ProtectionLevel) (int64, error) {
	id, err := insertReturningID(ctx, `INSERT INTO protection_level (level) VALUES ($1) RETURNING id`, p.Level)
	if err != nil {
		return 0, fmt.Errorf("failed to create protection level: %w", err)
	}
	return id, nil
}

func (r *protectionRepository) Update(ctx context.Context, p *models.ProtectionLevel) error {
	err := execOne(ctx, `UPDATE protection_level SET level = $1 WHERE id = $2`, p.Level, p.ID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to update protection level %d: %w", p.ID, err)
	}
	return err
}

func (r *protectionRepository) Delete(ctx context.Context, id int64) error {
	return guardedDelete(ctx,
		DeleteBlockedError{Entity: "protection level", Dependents: "building(s)"},
		`SELECT COUNT(*) FROM building WHERE protection_id = $1`,
		`DELETE FROM protection_level WHERE id = $1`,
		id)
}
