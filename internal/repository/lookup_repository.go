package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stwalsh4118/heritage/internal/models"
)

// OptionSet names an id/label dropdown.
type OptionSet string

const (
	ZoneOptions       OptionSet = "zones"
	TypeOptions       OptionSet = "types"
	ProtectionOptions OptionSet = "protections"
	OwnerOptions      OptionSet = "owners"
	ProviderOptions   OptionSet = "providers"
	BuildingOptions   OptionSet = "buildings"
)

var optionQueries = map[OptionSet]string{
	ZoneOptions:       `SELECT id, name FROM zone ORDER BY name`,
	TypeOptions:       `SELECT id, label FROM building_type ORDER BY label`,
	ProtectionOptions: `SELECT id, level FROM protection_level ORDER BY level`,
	OwnerOptions:      `SELECT id, full_name FROM owner ORDER BY full_name`,
	ProviderOptions:   `SELECT id, company_name FROM provider ORDER BY company_name`,
	BuildingOptions:   `SELECT id, name FROM building ORDER BY name`,
}

// ValueSet names a vocabulary of distinct stored values.
type ValueSet string

const (
	InspectionStates ValueSet = "inspection_states"
	WorkStatuses     ValueSet = "work_statuses"
	ProviderRoles    ValueSet = "provider_roles"
	ZoneTypes        ValueSet = "zone_types"
	OwnerTypes       ValueSet = "owner_types"
	DocumentTypes    ValueSet = "document_types"
)

var valueColumns = map[ValueSet]struct{ table, column string }{
	InspectionStates: {"inspection", "observed_state"},
	WorkStatuses:     {"intervention", "work_status"},
	ProviderRoles:    {"provider", "role"},
	ZoneTypes:        {"zone", "zone_type"},
	OwnerTypes:       {"owner", "owner_type"},
	DocumentTypes:    {"document", "doc_type"},
}

// LookupRepository feeds the filter and form dropdowns.
type LookupRepository interface {
	// Options returns id/label pairs in alphabetical order.
	Options(ctx context.Context, set OptionSet) ([]models.Option, error)

	// Values returns the distinct non-null values stored for a vocabulary.
	Values(ctx context.Context, set ValueSet) ([]string, error)
}

type lookupRepository struct{}

// NewLookupRepository creates a new instance of LookupRepository.
func NewLookupRepository() LookupRepository {
	return &lookupRepository{}
}

func (r *lookupRepository) Options(ctx context.Context, set OptionSet) ([]models.Option, error) {
	sql, ok := optionQueries[set]
	if !ok {
		return nil, fmt.Errorf("unknown option set %q", set)
	}

	options, err := queryRows(ctx, sql, nil, func(rows pgx.Rows) (models.Option, error) {
		var o models.Option
		err := rows.Scan(&o.ID, &o.Label)
		return o, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s options: %w", set, err)
	}
	return options, nil
}

func (r *lookupRepository) Values(ctx context.Context, set ValueSet) ([]string, error) {
	src, ok := valueColumns[set]
	if !ok {
		return nil, fmt.Errorf("unknown value set %q", set)
	}

	sql := fmt.Sprintf(`SELECT DISTINCT %[2]s FROM %[1]s WHERE %[2]s IS NOT NULL ORDER BY %[2]s`, src.table, src.column)
	values, err := queryRows(ctx, sql, nil, func(rows pgx.Rows) (string, error) {
		var v string
		err := rows.Scan(&v)
		return v, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", set, err)
	}
	return values, nil
}
