package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stwalsh4118/heritage/internal/database"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/query"
	"github.com/stwalsh4118/heritage/internal/status"
)

// BuildingRepository defines data access for heritage buildings.
type BuildingRepository interface {
	// List returns buildings matching the filter with joined labels and
	// latest state, newest first.
	List(ctx context.Context, filter models.BuildingFilter) ([]models.BuildingRow, error)

	// Get returns nil, nil when the building does not exist.
	Get(ctx context.Context, id int64) (*models.Building, error)

	// Detail returns the building with its inspections, interventions and
	// documents, or nil, nil when it does not exist.
	Detail(ctx context.Context, id int64) (*models.BuildingDetail, error)

	Create(ctx context.Context, b *models.Building) (int64, error)
	Update(ctx context.Context, b *models.Building) error

	// Delete removes the building's documents, interventions and inspections,
	// then the building, in one transaction.
	Delete(ctx context.Context, id int64) error
}

type buildingRepository struct {
	spatial bool
}

// NewBuildingRepository creates a new instance of BuildingRepository. When
// spatial is true the building.geom column is kept in sync with the coordinates.
func NewBuildingRepository(spatial bool) BuildingRepository {
	return &buildingRepository{spatial: spatial}
}

var buildingListSelect = `
	SELECT b.id, b.name, COALESCE(b.street, ''), z.name, t.label, p.level, o.full_name,
	       b.latitude, b.longitude, ` + status.LatestStateExpr("b.id") + `
	FROM building b
	LEFT JOIN zone z ON z.id = b.zone_id
	LEFT JOIN building_type t ON t.id = b.type_id
	LEFT JOIN protection_level p ON p.id = b.protection_id
	LEFT JOIN owner o ON o.id = b.owner_id`

func (r *buildingRepository) List(ctx context.Context, filter models.BuildingFilter) ([]models.BuildingRow, error) {
	sql, args := query.New(buildingListSelect).
		Search(filter.Search, "b.name", "b.street", "z.name", "CAST(b.id AS TEXT)").
		Equal("b.zone_id", filter.ZoneID).
		Equal("b.type_id", filter.TypeID).
		Equal("b.protection_id", filter.ProtectionID).
		Equal(status.LatestStateExpr("b.id"), filter.State).
		OrderBy("b.id DESC").
		Build()

	buildings, err := queryRows(ctx, sql, args, func(rows pgx.Rows) (models.BuildingRow, error) {
		var b models.BuildingRow
		err := rows.Scan(&b.ID, &b.Name, &b.Street, &b.ZoneName, &b.TypeLabel, &b.ProtectionLevel,
			&b.OwnerName, &b.Latitude, &b.Longitude, &b.LatestState)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}
	return buildings, nil
}

func (r *buildingRepository) Get(ctx context.Context, id int64) (*models.Building, error) {
	q, err := conn(ctx)
	if err != nil {
		return nil, err
	}

	var b models.Building
	err = q.QueryRow(ctx, `
		SELECT id, name, COALESCE(street, ''), latitude, longitude, construction_date, historical_note,
		       zone_id, type_id, protection_id, owner_id
		FROM building WHERE id = $1`, id).
		Scan(&b.ID, &b.Name, &b.Street, &b.Latitude, &b.Longitude, &b.ConstructionDate, &b.HistoricalNote,
			&b.ZoneID, &b.TypeID, &b.ProtectionID, &b.OwnerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get building %d: %w", id, err)
	}
	return &b, nil
}

func (r *buildingRepository) Detail(ctx context.Context, id int64) (*models.BuildingDetail, error) {
	q, err := conn(ctx)
	if err != nil {
		return nil, err
	}

	var d models.BuildingDetail
	err = q.QueryRow(ctx, `
		SELECT b.id, b.name, COALESCE(b.street, ''), b.latitude, b.longitude, b.construction_date,
		       b.historical_note, b.zone_id, b.type_id, b.protection_id, b.owner_id,
		       z.name, t.label, p.level, o.full_name, o.owner_type, `+status.LatestStateExpr("b.id")+`
		FROM building b
		LEFT JOIN zone z ON z.id = b.zone_id
		LEFT JOIN building_type t ON t.id = b.type_id
		LEFT JOIN protection_level p ON p.id = b.protection_id
		LEFT JOIN owner o ON o.id = b.owner_id
		WHERE b.id = $1`, id).
		Scan(&d.ID, &d.Name, &d.Street, &d.Latitude, &d.Longitude, &d.ConstructionDate,
			&d.HistoricalNote, &d.ZoneID, &d.TypeID, &d.ProtectionID, &d.OwnerID,
			&d.ZoneName, &d.TypeLabel, &d.ProtectionLevel, &d.OwnerName, &d.OwnerType, &d.LatestState)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get building %d: %w", id, err)
	}

	d.Inspections, err = queryRows(ctx, `
		SELECT id, visit_date, observed_state, report, building_id
		FROM inspection WHERE building_id = $1
		ORDER BY visit_date DESC, id DESC`, []any{id},
		func(rows pgx.Rows) (models.Inspection, error) {
			var i models.Inspection
			err := rows.Scan(&i.ID, &i.VisitDate, &i.ObservedState, &i.Report, &i.BuildingID)
			return i, err
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections of building %d: %w", id, err)
	}

	sql, args := query.New(interventionSelect).
		Equal("i.building_id", &id).
		OrderBy("i.start_date DESC, i.id DESC").
		Build()
	d.Interventions, err = queryRows(ctx, sql, args, scanInterventionRow)
	if err != nil {
		return nil, fmt.Errorf("failed to list interventions of building %d: %w", id, err)
	}

	d.Documents, err = queryRows(ctx, `
		SELECT id, title, doc_type, file_url, building_id
		FROM document WHERE building_id = $1
		ORDER BY id DESC`, []any{id},
		func(rows pgx.Rows) (models.Document, error) {
			var doc models.Document
			err := rows.Scan(&doc.ID, &doc.Title, &doc.DocType, &doc.FileURL, &doc.BuildingID)
			return doc, err
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list documents of building %d: %w", id, err)
	}

	return &d, nil
}

func (r *buildingRepository) Create(ctx context.Context, b *models.Building) (int64, error) {
	var id int64
	err := inTx(ctx, func(q database.Querier) error {
		err := q.QueryRow(ctx, `
			INSERT INTO building (name, street, latitude, longitude, construction_date, historical_note,
			                      zone_id, type_id, protection_id, owner_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id`,
			b.Name, b.Street, b.Latitude, b.Longitude, b.ConstructionDate, b.HistoricalNote,
			b.ZoneID, b.TypeID, b.ProtectionID, b.OwnerID).Scan(&id)
		if err != nil {
			return err
		}
		return r.syncGeometry(ctx, q, id, b)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create building: %w", err)
	}
	return id, nil
}

func (r *buildingRepository) Update(ctx context.Context, b *models.Building) error {
	err := inTx(ctx, func(q database.Querier) error {
		tag, err := q.Exec(ctx, `
			UPDATE building
			SET name = $1, street = $2, latitude = $3, longitude = $4, construction_date = $5,
			    historical_note = $6, zone_id = $7, type_id = $8, protection_id = $9, owner_id = $10
			WHERE id = $11`,
			b.Name, b.Street, b.Latitude, b.Longitude, b.ConstructionDate,
			b.HistoricalNote, b.ZoneID, b.TypeID, b.ProtectionID, b.OwnerID, b.ID)
		if err := oneRow(tag, err); err != nil {
			return err
		}
		return r.syncGeometry(ctx, q, b.ID, b)
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to update building %d: %w", b.ID, err)
	}
	return err
}

// syncGeometry sets the point from the coordinates when both are present and
// clears it otherwise.
func (r *buildingRepository) syncGeometry(ctx context.Context, q database.Querier, id int64, b *models.Building) error {
	if !r.spatial {
		return nil
	}
	var point models.Point
	if location, ok := b.Location(); ok {
		point = location
	}
	_, err := q.Exec(ctx,
		`UPDATE building SET geom = ST_SetSRID(ST_GeomFromGeoJSON($1::text), 4326) WHERE id = $2`,
		point, id)
	return err
}

// cascadeOrder lists the dependent tables removed before a building.
var cascadeOrder = []string{"document", "intervention", "inspection"}

func (r *buildingRepository) Delete(ctx context.Context, id int64) error {
	err := inTx(ctx, func(q database.Querier) error {
		for _, table := range cascadeOrder {
			if _, err := q.Exec(ctx, `DELETE FROM `+table+` WHERE building_id = $1`, id); err != nil {
				return fmt.Errorf("failed to delete %s rows: %w", table, err)
			}
		}
		tag, err := q.Exec(ctx, `DELETE FROM building WHERE id = $1`, id)
		return oneRow(tag, err)
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to delete building %d: %w", id, err)
	}
	return err
}
