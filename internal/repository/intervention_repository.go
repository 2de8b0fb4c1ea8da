package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/query"
)

// interventionSelect joins each intervention with its building and provider labels.
const interventionSelect = `
	SELECT i.id, i.start_date, i.end_date, i.work_type, i.estimated_cost::float8, i.validated,
	       i.work_status, i.building_id, i.provider_id, i.validation_date, i.validation_comment,
	       COALESCE(b.name, ''), p.company_name, p.role
	FROM intervention i
	LEFT JOIN building b ON b.id = i.building_id
	LEFT JOIN provider p ON p.id = i.provider_id`

func scanInterventionRow(rows pgx.Rows) (models.InterventionRow, error) {
	var i models.InterventionRow
	err := rows.Scan(&i.ID, &i.StartDate, &i.EndDate, &i.WorkType, &i.EstimatedCost, &i.Validated,
		&i.WorkStatus, &i.BuildingID, &i.ProviderID, &i.ValidationDate, &i.ValidationComment,
		&i.BuildingName, &i.ProviderName, &i.ProviderRole)
	return i, err
}

// InterventionRepository defines data access for interventions.
type InterventionRepository interface {
	List(ctx context.Context, filter models.InterventionFilter) ([]models.InterventionRow, error)

	// Get returns nil, nil when the intervention does not exist.
	Get(ctx context.Context, id int64) (*models.InterventionRow, error)
	Create(ctx context.Context, i *models.Intervention) (int64, error)
	Update(ctx context.Context, i *models.Intervention) error
	Delete(ctx context.Context, id int64) error

	// Validate stamps the intervention as validated today with comment,
	// overwriting any earlier stamp.
	Validate(ctx context.Context, id int64, comment string) error
}

type interventionRepository struct{}

// NewInterventionRepository creates a new instance of InterventionRepository.
func NewInterventionRepository() InterventionRepository {
	return &interventionRepository{}
}

func (r *interventionRepository) List(ctx context.Context, filter models.InterventionFilter) ([]models.InterventionRow, error) {
	sql, args := query.New(interventionSelect).
		Search(filter.Search, "b.name", "i.work_type", "p.company_name").
		Equal("i.work_status", filter.Status).
		Equal("i.building_id", filter.BuildingID).
		Equal("i.provider_id", filter.ProviderID).
		Flag("i.validated", filter.Validated).
		OrderBy("i.start_date DESC, i.id DESC").
		Build()

	interventions, err := queryRows(ctx, sql, args, scanInterventionRow)
	if err != nil {
		return nil, fmt.Errorf("failed to list interventions: %w", err)
	}
	return interventions, nil
}

func (r *interventionRepository) Get(ctx context.Context, id int64) (*models.InterventionRow, error) {
	sql, args := query.New(interventionSelect).Equal("i.id", &id).Build()

	rows, err := queryRows(ctx, sql, args, scanInterventionRow)
	if err != nil {
		return nil, fmt.Errorf("failed to get intervention %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *interventionRepository) Create(ctx context.Context, i *models.Intervention) (int64, error) {
	id, err := insertReturningID(ctx, `
		INSERT INTO intervention (start_date, end_date, work_type, estimated_cost, work_status, building_id, provider_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		i.StartDate, i.EndDate, i.WorkType, i.EstimatedCost, string(i.WorkStatus), i.BuildingID, i.ProviderID)
	if err != nil {
		return 0, fmt.Errorf("failed to create intervention: %w", err)
	}
	return id, nil
}

func (r *interventionRepository) Update(ctx context.Context, i *models.Intervention) error {
	err := execOne(ctx, `
		UPDATE intervention
		SET start_date = $1, end_date = $2, work_type = $3, estimated_cost = $4,
		    work_status = $5, building_id = $6, provider_id = $7
		WHERE id = $8`,
		i.StartDate, i.EndDate, i.WorkType, i.EstimatedCost, string(i.WorkStatus), i.BuildingID, i.ProviderID, i.ID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to update intervention %d: %w", i.ID, err)
	}
	return err
}

func (r *interventionRepository) Delete(ctx context.Context, id int64) error {
	err := execOne(ctx, `DELETE FROM intervention WHERE id = $1`, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to delete intervention %d: %w", id, err)
	}
	return err
}

func (r *interventionRepository) Validate(ctx context.Context, id int64, comment string) error {
	err := execOne(ctx, `
		UPDATE intervention
		SET validated = TRUE, validation_date = CURRENT_DATE, validation_comment = $1
		WHERE id = $2`,
		comment, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to validate intervention %d: %w", id, err)
	}
	return err
}
