// Package testhelpers starts a disposable PostGIS database for integration tests.
package testhelpers

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stwalsh4118/heritage/internal/config"
	"github.com/stwalsh4118/heritage/internal/database"
	"github.com/stwalsh4118/heritage/internal/logger"
	"github.com/stwalsh4118/heritage/migrations"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostGISImage is the database image used by integration tests.
const PostGISImage = "postgis/postgis:16-3.4"

// tables lists every application table, truncated between tests.
var tables = "document, intervention, inspection, building, owner, provider, protection_level, building_type, zone"

// TestDB holds the shared test container and its migrated database.
type TestDB struct {
	Container testcontainers.Container
	DB        *database.Database
	URL       string
}

var (
	sharedTestDB     *TestDB
	sharedTestDBOnce sync.Once
	sharedTestDBErr  error
)

// GetTestDB returns a shared PostGIS container with migrations applied.
// The container is created once and reused across all tests in the run.
func GetTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	sharedTestDBOnce.Do(func() {
		sharedTestDB, sharedTestDBErr = setupTestDB()
	})

	if sharedTestDBErr != nil {
		t.Fatalf("Failed to setup test database: %v", sharedTestDBErr)
	}

	return sharedTestDB
}

func setupTestDB() (*TestDB, error) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        PostGISImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "heritage_test",
			"POSTGRES_USER":     "heritage",
			"POSTGRES_PASSWORD": "test_password",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(90 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start test container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	url := fmt.Sprintf("postgres://heritage:test_password@%s:%s/heritage_test?sslmode=disable", host, port.Port())

	if err := database.RunMigrations(url, migrations.FS, logger.Nop()); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	db, err := database.NewPostgresPool(ctx, config.DatabaseConfig{URL: url, PoolMin: 1, PoolMax: 5})
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	return &TestDB{Container: container, DB: db, URL: url}, nil
}

// Reset empties every table and restarts the id sequences.
func (tdb *TestDB) Reset(t *testing.T) {
	t.Helper()

	if _, err := tdb.DB.Pool.Exec(context.Background(), "TRUNCATE "+tables+" RESTART IDENTITY CASCADE"); err != nil {
		t.Fatalf("Failed to reset test database: %v", err)
	}
}

// Context returns a context carrying a request-scoped connection, released
// when the test ends.
func (tdb *TestDB) Context(t *testing.T) context.Context {
	t.Helper()

	ctx := context.Background()
	scope, err := tdb.DB.Acquire(ctx)
	if err != nil {
		t.Fatalf("Failed to acquire connection: %v", err)
	}
	t.Cleanup(scope.Close)

	return database.WithScope(ctx, scope)
}

// Spatial reports whether the migrated schema carries the building.geom column.
func (tdb *TestDB) Spatial(t *testing.T) bool {
	t.Helper()

	ok, err := tdb.DB.HasColumn(context.Background(), "building", "geom")
	if err != nil {
		t.Fatalf("Failed to inspect schema: %v", err)
	}
	return ok
}
