package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const base = "SELECT b.id FROM building b"

func int64Ptr(v int64) *int64 { return &v }

func TestBuildWithoutFilters(t *testing.T) {
	sql, args := New(base).OrderBy("b.id DESC").Build()

	assert.Equal(t, base+"\nORDER BY b.id DESC", sql)
	assert.Empty(t, args)
}

func TestAbsentFiltersLeaveStatementUnchanged(t *testing.T) {
	var empty *string
	blank := "   "

	withAbsent, absentArgs := New(base).
		Search("", "b.name").
		Search("  ", "b.name").
		Equal("b.zone_id", (*int64)(nil)).
		Equal("b.state", "").
		Equal("b.state", empty).
		Equal("b.state", &blank).
		Equal("b.state", nil).
		Between("i.visit_date", nil, nil).
		Flag("v.validated", "").
		Flag("v.validated", "maybe").
		WhereIf(false, "b.id = ?", 1).
		OrderBy("b.id DESC").
		Build()

	omitted, omittedArgs := New(base).OrderBy("b.id DESC").Build()

	assert.Equal(t, omitted, withAbsent)
	assert.Equal(t, omittedArgs, absentArgs)
	assert.NotContains(t, withAbsent, "WHERE")
	assert.NotContains(t, withAbsent, "$")
}

func TestPlaceholdersAreNumberedInOrder(t *testing.T) {
	from := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	sql, args := New(base).
		Search("Mai", "b.name", "b.street").
		Equal("b.zone_id", int64Ptr(3)).
		Between("i.visit_date", &from, &to).
		Build()

	assert.Equal(t, base+
		"\nWHERE (LOWER(b.name) LIKE LOWER($1) ESCAPE '\\' OR LOWER(b.street) LIKE LOWER($2) ESCAPE '\\')"+
		"\n  AND b.zone_id = $3"+
		"\n  AND i.visit_date >= $4"+
		"\n  AND i.visit_date <= $5", sql)
	assert.Equal(t, []any{"%Mai%", "%Mai%", int64(3), from, to}, args)
}

func TestBetweenAppliesBoundsIndependently(t *testing.T) {
	from := time.Date(2022, 3, 1, 0, 0, 0, 0, time.UTC)

	sql, args := New(base).Between("d", &from, nil).Build()
	assert.Equal(t, base+"\nWHERE d >= $1", sql)
	assert.Equal(t, []any{from}, args)

	sql, _ = New(base).Between("d", nil, &from).Build()
	assert.Equal(t, base+"\nWHERE d <= $1", sql)
}

func TestFlag(t *testing.T) {
	sql, args := New(base).Flag("v", "yes").Build()
	assert.Equal(t, base+"\nWHERE v = TRUE", sql)
	assert.Empty(t, args)

	sql, _ = New(base).Flag("v", "no").Build()
	assert.Equal(t, base+"\nWHERE (v = FALSE OR v IS NULL)", sql)
}

func TestEqualDereferencesPointers(t *testing.T) {
	state := "Good"
	_, args := New(base).
		Equal("a", &state).
		Equal("b", int64Ptr(7)).
		Equal("c", " Ruined ").
		Build()

	assert.Equal(t, []any{"Good", int64(7), "Ruined"}, args)
}

func TestSearchEscapesWildcards(t *testing.T) {
	_, args := New(base).Search(`50%_off\`, "b.name").Build()
	assert.Equal(t, []any{`%50\%\_off\\%`}, args)
}

func TestGroupByComesBeforeOrderBy(t *testing.T) {
	sql, _ := New("SELECT z.id, COUNT(b.id) FROM zone z LEFT JOIN building b ON b.zone_id = z.id").
		Search("north", "z.name").
		GroupBy("z.id").
		OrderBy("z.name").
		Build()

	assert.Contains(t, sql, "WHERE (LOWER(z.name) LIKE LOWER($1) ESCAPE '\\')\nGROUP BY z.id\nORDER BY z.name")
}

func TestWherePanicsOnPlaceholderMismatch(t *testing.T) {
	assert.Panics(t, func() { New(base).Where("a = ? AND b = ?", 1) })
}

func TestBuildReturnsCopyOfArgs(t *testing.T) {
	b := New(base).Equal("a", "x")
	_, args := b.Build()
	args[0] = "mutated"

	_, again := b.Build()
	assert.Equal(t, []any{"x"}, again)
}
