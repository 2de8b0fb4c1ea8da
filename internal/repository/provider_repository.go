package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/query"
)

// ProviderRepository defines data access for service providers.
type ProviderRepository interface {
	// List returns providers with their intervention count and total estimated cost.
	List(ctx context.Context, filter models.ProviderFilter) ([]models.ProviderRow, error)

	// Get returns nil, nil when the provider does not exist.
	Get(ctx context.Context, id int64) (*models.Provider, error)

	// Interventions returns the provider's interventions, most recent start first.
	Interventions(ctx context.Context, id int64) ([]models.InterventionRow, error)
	Create(ctx context.Context, p *models.Provider) (int64, error)
	Update(ctx context.Context, p *models.Provider) error

	// Delete is refused with a DeleteBlockedError while interventions reference the provider.
	Delete(ctx context.Context, id int64) error
}

type providerRepository struct{}

// NewProviderRepository creates a new instance of ProviderRepository.
func NewProviderRepository() ProviderRepository {
	return &providerRepository{}
}

func (r *providerRepository) List(ctx context.Context, filter models.ProviderFilter) ([]models.ProviderRow, error) {
	sql, args := query.New(`
		SELECT p.id, p.company_name, p.role, COUNT(i.id), COALESCE(SUM(i.estimated_cost), 0)::float8
		FROM provider p
		LEFT JOIN intervention i ON i.provider_id = p.id`).
		Search(filter.Search, "p.company_name", "p.role").
		Equal("p.role", filter.Role).
		GroupBy("p.id, p.company_name, p.role").
		OrderBy("p.company_name").
		Build()

	providers, err := queryRows(ctx, sql, args, func(rows pgx.Rows) (models.ProviderRow, error) {
		var p models.ProviderRow
		err := rows.Scan(&p.ID, &p.CompanyName, &p.Role, &p.InterventionCount, &p.TotalCost)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list providers: %w", err)
	}
	return providers, nil
}

func (r *providerRepository) Get(ctx context.Context, id int64) (*models.Provider, error) {
	q, err := conn(ctx)
	if err != nil {
		return nil, err
	}

	var p models.Provider
	err = q.QueryRow(ctx, `SELECT id, company_name, role FROM provider WHERE id = $1`, id).
		Scan(&p.ID, &p.CompanyName, &p.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get provider %d: %w", id, err)
	}
	return &p, nil
}

func (r *providerRepository) Interventions(ctx context.Context, id int64) ([]models.InterventionRow, error) {
	sql, args := query.New(interventionSelect).
		Equal("i.provider_id", &id).
		OrderBy("i.start_date DESC, i.id DESC").
		Build()

	interventions, err := queryRows(ctx, sql, args, scanInterventionRow)
	if err != nil {
		return nil, fmt.Errorf("failed to list interventions of provider %d: %w", id, err)
	}
	return interventions, nil
}

func (r *providerRepository) Create(ctx context.Context, p *models.Provider) (int64, error) {
	id, err := insertReturningID(ctx,
		`INSERT INTO provider (company_name, role) VALUES ($1, $2) RETURNING id`,
		p.CompanyName, p.Role)
	if err != nil {
		return 0, fmt.Errorf("failed to create provider: %w", err)
	}
	return id, nil
}

func (r *providerRepository) Update(ctx context.Context, p *models.Provider) error {
	err := execOne(ctx,
		`UPDATE provider SET company_name = $1, role = $2 WHERE id = $3`,
		p.CompanyName, p.Role, p.ID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to update provider %d: %w", p.ID, err)
	}
	return err
}

func (r *providerRepository) Delete(ctx context.Context, id int64) error {
	return guardedDelete(ctx,
		DeleteBlockedError{Entity: "provider", Dependents: "intervention(s)"},
		`SELECT COUNT(*) FROM intervention WHERE provider_id = $1`,
		`DELETE FROM provider WHERE id = $1`,
		id)
}
