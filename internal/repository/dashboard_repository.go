package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/query"
	"github.com/stwalsh4118/heritage/internal/status"
)

// DashboardRepository runs the fixed read-only aggregate queries.
type DashboardRepository interface {
	Counts(ctx context.Context) (models.Counts, error)

	// BuildingsByZone counts buildings per zone, largest first. Empty zones are included.
	BuildingsByZone(ctx context.Context) ([]models.GroupCount, error)

	// BuildingsByType counts buildings per type, largest first. Empty types are included.
	BuildingsByType(ctx context.Context) ([]models.GroupCount, error)

	// StateDistribution counts inspected buildings by latest state.
	StateDistribution(ctx context.Context) ([]models.GroupCount, error)

	// Urgent lists buildings whose latest state is Ruined or Degraded, in that
	// order, then by name.
	Urgent(ctx context.Context) ([]models.UrgentBuilding, error)

	// CostByYear sums estimated cost by start year, latest year first.
	// Interventions without a start date are left out.
	CostByYear(ctx context.Context) ([]models.YearCost, error)

	// MapBuildings lists geolocated buildings matching filter with "N/A" and
	// "Not inspected" fallbacks.
	MapBuildings(ctx context.Context, filter models.MapFilter) ([]models.MapBuilding, error)
}

type dashboardRepository struct {
	spatial bool
}

// NewDashboardRepository creates a new instance of DashboardRepository.
// When spatial is true map locations are read from building.geom.
func NewDashboardRepository(spatial bool) DashboardRepository {
	return &dashboardRepository{spatial: spatial}
}

func (r *dashboardRepository) Counts(ctx context.Context) (models.Counts, error) {
	q, err := conn(ctx)
	if err != nil {
		return models.Counts{}, err
	}

	var c models.Counts
	err = q.QueryRow(ctx, `
		SELECT (SELECT COUNT(*) FROM building),
		       (SELECT COUNT(*) FROM inspection),
		       (SELECT COUNT(*) FROM intervention)`).
		Scan(&c.Buildings, &c.Inspections, &c.Interventions)
	if err != nil {
		return models.Counts{}, fmt.Errorf("failed to count records: %w", err)
	}
	return c, nil
}

func scanGroupCount(rows pgx.Rows) (models.GroupCount, error) {
	var g models.GroupCount
	err := rows.Scan(&g.Label, &g.Count)
	return g, err
}

func (r *dashboardRepository) BuildingsByZone(ctx context.Context) ([]models.GroupCount, error) {
	groups, err := queryRows(ctx, `
		SELECT z.name, COUNT(b.id)
		FROM zone z
		LEFT JOIN building b ON b.zone_id = z.id
		GROUP BY z.id, z.name
		ORDER BY COUNT(b.id) DESC, z.name`, nil, scanGroupCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count buildings by zone: %w", err)
	}
	return groups, nil
}

func (r *dashboardRepository) BuildingsByType(ctx context.Context) ([]models.GroupCount, error) {
	groups, err := queryRows(ctx, `
		SELECT t.label, COUNT(b.id)
		FROM building_type t
		LEFT JOIN building b ON b.type_id = t.id
		GROUP BY t.id, t.label
		ORDER BY COUNT(b.id) DESC, t.label`, nil, scanGroupCount)
	if err != nil {
		return nil, fmt.Errorf("failed to count buildings by type: %w", err)
	}
	return groups, nil
}

func (r *dashboardRepository) StateDistribution(ctx context.Context) ([]models.GroupCount, error) {
	groups, err := queryRows(ctx, `
		SELECT li.observed_state, COUNT(*)
		FROM `+status.LatestInspections+` li
		GROUP BY li.observed_state
		ORDER BY li.observed_state`, nil, scanGroupCount)
	if err != nil {
		return nil, fmt.Errorf("failed to compute state distribution: %w", err)
	}
	return groups, nil
}

func (r *dashboardRepository) Urgent(ctx context.Context) ([]models.UrgentBuilding, error) {
	buildings, err := queryRows(ctx, `
		SELECT b.id, b.name, COALESCE(b.street, ''), li.observed_state
		FROM building b
		JOIN `+status.LatestInspections+` li ON li.building_id = b.id
		WHERE li.observed_state IN ($1, $2)
		ORDER BY `+status.UrgentOrder("li.observed_state")+`, b.name`,
		[]any{string(models.StateRuined), string(models.StateDegraded)},
		func(rows pgx.Rows) (models.UrgentBuilding, error) {
			var u models.UrgentBuilding
			err := rows.Scan(&u.ID, &u.Name, &u.Street, &u.State)
			return u, err
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list urgent buildings: %w", err)
	}
	return buildings, nil
}

func (r *dashboardRepository) CostByYear(ctx context.Context) ([]models.YearCost, error) {
	costs, err := queryRows(ctx, `
		SELECT EXTRACT(YEAR FROM start_date)::int AS year, COALESCE(SUM(estimated_cost), 0)::float8
		FROM intervention
		WHERE start_date IS NOT NULL
		GROUP BY year
		ORDER BY year DESC`, nil,
		func(rows pgx.Rows) (models.YearCost, error) {
			var y models.YearCost
			err := rows.Scan(&y.Year, &y.Total)
			return y, err
		})
	if err != nil {
		return nil, fmt.Errorf("failed to sum cost by year: %w", err)
	}
	return costs, nil
}

func (r *dashboardRepository) MapBuildings(ctx context.Context, filter models.MapFilter) ([]models.MapBuilding, error) {
	location := `json_build_object('type', 'Point', 'coordinates', json_build_array(b.longitude, b.latitude))::text`
	if r.spatial {
		location = `COALESCE(ST_AsGeoJSON(b.geom), ` + location + `)`
	}
	latest := status.LatestStateExpr("b.id")

	sql, args := query.New(`
		SELECT b.id, b.name, `+location+`,
		       COALESCE(z.name, 'N/A'), COALESCE(t.label, 'N/A'), COALESCE(p.level, 'N/A'),
		       COALESCE(`+latest+`, '`+status.NotInspected+`')
		FROM building b
		LEFT JOIN zone z ON z.id = b.zone_id
		LEFT JOIN building_type t ON t.id = b.type_id
		LEFT JOIN protection_level p ON p.id = b.protection_id`).
		Where("b.latitude IS NOT NULL AND b.longitude IS NOT NULL").
		Equal("b.zone_id", filter.ZoneID).
		Equal("b.type_id", filter.TypeID).
		Equal(latest, filter.State).
		OrderBy("b.name").
		Build()

	buildings, err := queryRows(ctx, sql, args,
		func(rows pgx.Rows) (models.MapBuilding, error) {
			var m models.MapBuilding
			err := rows.Scan(&m.ID, &m.Name, &m.Location, &m.Zone, &m.Type, &m.Protection, &m.State)
			return m, err
		})
	if err != nil {
		return nil, fmt.Errorf("failed to list map buildings: %w", err)
	}
	return buildings, nil
}
