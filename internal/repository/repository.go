// Package repository holds the SQL data access for every entity. Repositories
// are stateless: each call runs on the request-scoped connection carried by
// the context.
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stwalsh4118/heritage/internal/database"
)

// ErrNotFound is returned by updates and deletes that match no row.
var ErrNotFound = errors.New("record not found")

// ErrDeleteBlocked matches any DeleteBlockedError through errors.Is.
var ErrDeleteBlocked = errors.New("delete blocked by dependent records")

// DeleteBlockedError reports a delete refused because other rows still
// reference the record.
type DeleteBlockedError struct {
	Entity     string
	Dependents string
	Count      int64
}

func (e *DeleteBlockedError) Error() string {
	return fmt.Sprintf("Cannot delete this %s: %d %s still reference it", e.Entity, e.Count, e.Dependents)
}

// Is makes errors.Is(err, ErrDeleteBlocked) true.
func (e *DeleteBlockedError) Is(target error) bool {
	return target == ErrDeleteBlocked
}

// conn returns the request-scoped connection.
func conn(ctx context.Context) (database.Querier, error) {
	scope, err := database.ScopeFrom(ctx)
	if err != nil {
		return nil, err
	}
	return scope.Conn, nil
}

// inTx runs fn in a transaction on the request-scoped connection.
func inTx(ctx context.Context, fn func(q database.Querier) error) error {
	scope, err := database.ScopeFrom(ctx)
	if err != nil {
		return err
	}
	return scope.InTx(ctx, fn)
}

// queryRows runs sql on the scoped connection and scans every row with scan.
func queryRows[T any](ctx context.Context, sql string, args []any, scan func(pgx.Rows) (T, error)) ([]T, error) {
	q, err := conn(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}
	return results, rows.Err()
}

// insertReturningID runs an INSERT ... RETURNING id in its own transaction.
func insertReturningID(ctx context.Context, sql string, args ...any) (int64, error) {
	var id int64
	err := inTx(ctx, func(q database.Querier) error {
		return q.QueryRow(ctx, sql, args...).Scan(&id)
	})
	return id, err
}

// execOne runs a single-row UPDATE or DELETE in its own transaction and
// reports ErrNotFound when no row matched.
func execOne(ctx context.Context, sql string, args ...any) error {
	return inTx(ctx, func(q database.Querier) error {
		tag, err := q.Exec(ctx, sql, args...)
		return oneRow(tag, err)
	})
}

func oneRow(tag pgconn.CommandTag, err error) error {
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// guardedDelete refuses to delete the row while countSQL finds dependents,
// then deletes it. Both statements run in one transaction.
func guardedDelete(ctx context.Context, guard DeleteBlockedError, countSQL, deleteSQL string, id int64) error {
	return inTx(ctx, func(q database.Querier) error {
		var count int64
		if err := q.QueryRow(ctx, countSQL, id).Scan(&count); err != nil {
			return fmt.Errorf("failed to count %s: %w", guard.Dependents, err)
		}
		if count > 0 {
			guard.Count = count
			return &guard
		}

		tag, err := q.Exec(ctx, deleteSQL, id)
		return oneRow(tag, err)
	})
}
