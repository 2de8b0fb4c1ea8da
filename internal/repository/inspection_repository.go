package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/query"
)

const inspectionSelect = `
	SELECT i.id, i.visit_date, i.observed_state, i.report, i.building_id, COALESCE(b.name, '')
	FROM inspection i
	LEFT JOIN building b ON b.id = i.building_id`

func scanInspectionRow(rows pgx.Rows) (models.InspectionRow, error) {
	var i models.InspectionRow
	err := rows.Scan(&i.ID, &i.VisitDate, &i.ObservedState, &i.Report, &i.BuildingID, &i.BuildingName)
	return i, err
}

// InspectionRepository defines data access for inspections.
type InspectionRepository interface {
	// List returns inspections matching the filter, most recent visit first.
	List(ctx context.Context, filter models.InspectionFilter) ([]models.InspectionRow, error)

	// Get returns nil, nil when the inspection does not exist.
	Get(ctx context.Context, id int64) (*models.InspectionRow, error)
	Create(ctx context.Context, i *models.Inspection) (int64, error)

	// Update rewrites state, report and building. The visit date is fixed
	// at creation.
	Update(ctx context.Context, i *models.Inspection) error
	Delete(ctx context.Context, id int64) error
}

type inspectionRepository struct{}

// NewInspectionRepository creates a new instance of InspectionRepository.
func NewInspectionRepository() InspectionRepository {
	return &inspectionRepository{}
}

func (r *inspectionRepository) List(ctx context.Context, filter models.InspectionFilter) ([]models.InspectionRow, error) {
	sql, args := query.New(inspectionSelect).
		Search(filter.Search, "b.name", "i.report", "CAST(i.id AS TEXT)").
		Equal("i.observed_state", filter.State).
		Equal("i.building_id", filter.BuildingID).
		Between("i.visit_date", filter.DateFrom, filter.DateTo).
		OrderBy("i.visit_date DESC, i.id DESC").
		Build()

	inspections, err := queryRows(ctx, sql, args, scanInspectionRow)
	if err != nil {
		return nil, fmt.Errorf("failed to list inspections: %w", err)
	}
	return inspections, nil
}

func (r *inspectionRepository) Get(ctx context.Context, id int64) (*models.InspectionRow, error) {
	sql, args := query.New(inspectionSelect).Equal("i.id", &id).Build()

	rows, err := queryRows(ctx, sql, args, scanInspectionRow)
	if err != nil {
		return nil, fmt.Errorf("failed to get inspection %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *inspectionRepository) Create(ctx context.Context, i *models.Inspection) (int64, error) {
	id, err := insertReturningID(ctx, `
		INSERT INTO inspection (visit_date, observed_state, report, building_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		i.VisitDate, string(i.ObservedState), i.Report, i.BuildingID)
	if err != nil {
		return 0, fmt.Errorf("failed to create inspection: %w", err)
	}
	return id, nil
}

func (r *inspectionRepository) Update(ctx context.Context, i *models.Inspection) error {
	err := execOne(ctx, `
		UPDATE inspection
		SET observed_state = $1, report = $2, building_id = $3
		WHERE id = $4`,
		string(i.ObservedState), i.Report, i.BuildingID, i.ID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to update inspection %d: %w", i.ID, err)
	}
	return err
}

func (r *inspectionRepository) Delete(ctx context.Context, id int64) error {
	err := execOne(ctx, `DELETE FROM inspection WHERE id = $1`, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to delete inspection %d: %w", id, err)
	}
	return err
}
