package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/stwalsh4118/heritage/internal/models"
	"github.com/stwalsh4118/heritage/internal/status"
)

// buildingSummarySelect lists buildings alphabetically with their zone, type
// and latest state. The caller supplies the WHERE clause on b.
var buildingSummarySelect = `
	SELECT b.id, b.name, COALESCE(b.street, ''), z.name, t.label, ` + status.LatestStateExpr("b.id") + `
	FROM building b
	LEFT JOIN zone z ON z.id = b.zone_id
	LEFT JOIN building_type t ON t.id = b.type_id
	WHERE `

// buildingSummaries returns the buildings whose column equals id.
func buildingSummaries(ctx context.Context, column string, id int64) ([]models.BuildingSummary, error) {
	sql := buildingSummarySelect + "b." + column + " = $1 ORDER BY b.name"
	return queryRows(ctx, sql, []any{id}, func(rows pgx.Rows) (models.BuildingSummary, error) {
		var s models.BuildingSummary
		err := rows.Scan(&s.ID, &s.Name, &s.Street, &s.ZoneName, &s.TypeLabel, &s.LatestState)
		return s, err
	})
}
