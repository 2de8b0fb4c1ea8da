package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoScope is returned when a repository runs without a request-scoped connection.
var ErrNoScope = errors.New("no database scope in context")

// Querier is the statement surface shared by an acquired connection and a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Scope is one connection acquired for the lifetime of a request.
type Scope struct {
	Conn *pgxpool.Conn
}

// Acquire takes a connection from the pool. The returned Scope MUST be closed
// with defer scope.Close().
func (db *Database) Acquire(ctx context.Context) (*Scope, error) {
	conn, err := db.Pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire connection: %w", err)
	}
	return &Scope{Conn: conn}, nil
}

// Close releases the connection back to the pool. Safe to call more than once.
func (s *Scope) Close() {
	if s == nil || s.Conn == nil {
		return
	}
	s.Conn.Release()
	s.Conn = nil
}

// InTx runs fn inside a transaction on the scoped connection. The transaction
// commits when fn returns nil and rolls back on any error or panic.
func (s *Scope) InTx(ctx context.Context, fn func(q Querier) error) (err error) {
	tx, err := s.Conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				err = fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type contextKey string

const scopeKey contextKey = "dbScope"

// WithScope stores the request-scoped connection in ctx.
func WithScope(ctx context.Context, scope *Scope) context.Context {
	return context.WithValue(ctx, scopeKey, scope)
}

// ScopeFrom retrieves the request-scoped connection from ctx.
func ScopeFrom(ctx context.Context) (*Scope, error) {
	scope, ok := ctx.Value(scopeKey).(*Scope)
	if !ok || scope == nil || scope.Conn == nil {
		return nil, ErrNoScope
	}
	return scope, nil
}
