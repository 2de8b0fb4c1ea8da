package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/query"
)

// OwnerRepository defines data access for building owners.
type OwnerRepository interface {
	List(ctx context.Context, filter models.OwnerFilter) ([]models.OwnerRow, error)

	// Get returns nil, nil when the owner does not exist.
	Get(ctx context.Context, id int64) (*models.Owner, error)
	Buildings(ctx context.Context, id int64) ([]models.BuildingSummary, error)
	Create(ctx context.Context, owner *models.Owner) (int64, error)
	Update(ctx context.Context, owner *models.Owner) error

	// Delete is refused with a DeleteBlockedError while the owner holds buildings.
	Delete(ctx context.Context, id int64) error
}

type ownerRepository struct{}

// NewOwnerRepository creates a new instance of OwnerRepository.
func NewOwnerRepository() OwnerRepository {
	return &ownerRepository{}
}

func (r *ownerRepository) List(ctx context.Context, filter models.OwnerFilter) ([]models.OwnerRow, error) {
	sql, args := query.New(`
		SELECT o.id, o.full_name, o.owner_type, o.contact, COUNT(b.id)
		FROM owner o
		LEFT JOIN building b ON b.owner_id = o.id`).
		Search(filter.Search, "o.full_name", "o.contact").
		Equal("o.owner_type", filter.OwnerType).
		GroupBy("o.id, o.full_name, o.owner_type, o.contact").
		OrderBy("o.full_name").
		Build()

	owners, err := queryRows(ctx, sql, args, func(rows pgx.Rows) (models.OwnerRow, error) {
		var o models.OwnerRow
		err := rows.Scan(&o.ID, &o.FullName, &o.OwnerType, &o.Contact, &o.BuildingCount)
		return o, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list owners: %w", err)
	}
	return owners, nil
}

func (r *ownerRepository) Get(ctx context.Context, id int64) (*models.Owner, error) {
	q, err := conn(ctx)
	if err != nil {
		return nil, err
	}

	var o models.Owner
	err = q.QueryRow(ctx, `SELECT id, full_name, owner_type, contact FROM owner WHERE id = $1`, id).
		Scan(&o.ID, &o.FullName, &o.OwnerType, &o.Contact)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get owner %d: %w", id, err)
	}
	return &o, nil
}

func (r *ownerRepository) Buildings(ctx context.Context, id int64) ([]models.BuildingSummary, error) {
	buildings, err := buildingSummaries(ctx, "owner_id", id)
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings of owner %d: %w", id, err)
	}
	return buildings, nil
}

func (r *ownerRepository) Create(ctx context.Context, owner *models.Owner) (int64, error) {
	id, err := insertReturningID(ctx,
		`INSERT INTO owner (full_name, owner_type, contact) VALUES ($1, $2, $3) RETURNING id`,
		owner.FullName, owner.OwnerType, owner.Contact)
	if err != nil {
		return 0, fmt.Errorf("failed to create owner: %w", err)
	}
	return id, nil
}

func (r *ownerRepository) Update(ctx context.Context, owner *models.Owner) error {
	err := execOne(ctx,
		`UPDATE owner SET full_name = $1, owner_type = $2, contact = $3 WHERE id = $4`,
		owner.FullName, owner.OwnerType, owner.Contact, owner.ID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("failed to update owner %d: %w", owner.ID, err)
	}
	return err
}

func (r *ownerRepository) Delete(ctx context.Context, id int64) error {
	return guardedDelete(ctx,
		DeleteBlockedError{Entity: "owner", Dependents: "building(s)"},
		`SELECT COUNT(*) FROM building WHERE owner_id = $1`,
		`DELETE FROM owner WHERE id = $1`,
		id)
}
