package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/query"
)

// ZoneRepository defines data access for urban zones.
type ZoneRepository interface {
	// List returns zones matching the filter with their building count, by name.
	List(ctx context.Context, filter models.ZoneFilter) ([]models.ZoneRow, error)

	// Get returns nil, nil when the zone does not exist.
	Get(ctx context.Context, id int64) (*models.Zone, error)

	// Buildings returns the zone's buildings alphabetically with their latest state.
	Buildings(ctx context.Context, id int64) ([]models.BuildingSummary, error)

	Create(ctx context.Context, zone *models.Zone) (int64, error)
	Update(ctx context.Context, zone *models.Zone) error

	// Delete is refused with a DeleteBlockedError while buildings are in the zone.
	Delete(ctx context.Context, id int64) error
}

type zoneRepository struct{}

// NewZoneRepository creates a new instance of ZoneRepository.
func NewZoneRepository() ZoneRepository {
	return &zoneRepository{}
}

func (r *zoneRepository) List(ctx context.Context, filter models.ZoneFilter) ([]models.ZoneRow, error) {
	sql, args := query.New(`
		SELECT z.id, z.name, z.zone_type, COUNT(b.id)
		FROM zone z
		LEFT JOIN building b ON b.zone_id = z.id`).
		Search(filter.Search, "z.name", "z.zone_type").
		Equal("z.zone_type", filter.ZoneType).
		GroupBy("z.id, z.name, z.zone_type").
		OrderBy("z.name").
		Build()

	zones, err := queryRows(ctx, sql, args, func(rows pgx.Rows) (models.ZoneRow, error) {
		var z models.ZoneRow
		err := rows.Scan(&z.ID, &z.Name, &z.ZoneType, &z.BuildingCount)
		return z, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	return zones, nil
}

func (r *zoneRepository) Get(ctx context.Context, id int64) (*models.Zone, error) {
	q, err := conn(ctx)
	if err != nil {
		return nil, err
	}

	var z models.Zone
	err = q.QueryRow(ctx, `SELECT id, name, zone_type FROM zone WHERE id = $1`, id).
		Scan(&z.ID, &z.Name, &z.ZoneType)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get zone %d: %w", id, err)
	}
	return &z, nil
}

func (r *zoneRepository) Buildings(ctx context.Context, id int64) ([]models.BuildingSummary, error) {
	buildings, err := buildingSummaries(ctx, "zone_id", id)
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings of zone %d: %w", id, err)
	}
	return buildings, nil
}

func (r *zoneRepository) Create(ctx context.Context, zone *models.Zone) (int64, error) {
	id, err := insertReturningID(ctx,
		`INSERT INTO zone (name, zone_type) VALUES ($1, $2) RETURNING id`,
		zone.Name, zone.ZoneType)
	if err != nil {
		return 0, fmt.Errorf("failed to create zone: %w", err)
	}
	return id, nil
}

func (r *zoneRepository) Update(ctx context.Context, zone *models.Zone) error {
	err := execOne(ctx,
		`UPDATE zone SET name = $1, zone_type = $2 WHERE id = $3`,
		zone.Name, zone.ZoneType, zone.ID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to update zone %d: %w", zone.ID, err)
	}
	return err
}

func (r *zoneRepository) Delete(ctx context.Context, id int64) error {
	return guardedDelete(ctx,
		DeleteBlockedError{Entity: "zone", Dependents: "building(s)"},
		`SELECT COUNT(*) FROM building WHERE zone_id = $1`,
		`DELETE FROM zone WHERE id = $1`,
		id)
}
