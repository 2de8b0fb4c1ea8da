package database

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver used by the migration runner
	"github.com/rs/zerolog"
	"github.com/stwalsh4118/heritage/internal/logger"
)

// migrateLogger routes golang-migrate's progress lines into the
// application log.
type migrateLogger struct {
	zlog *zerolog.Logger
}

func (l migrateLogger) Printf(format string, v ...interface{}) {
	l.zlog.Info().Str("component", "migrate").Msgf(strings.TrimRight(format, "\n"), v...)
}

func (l migrateLogger) Verbose() bool {
	return l.zlog.GetLevel() <= zerolog.DebugLevel
}

// RunMigrations applies every pending migration found in source against the
// database at url. It is idempotent: an up-to-date schema is not an error.
func RunMigrations(url string, source fs.FS, log *logger.Logger) error {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	src, err := iofs.New(source, ".")
	if err != nil {
		return fmt.Errorf("failed to open migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}
	m.Log = migrateLogger{zlog: log.GetZerolog()}

	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Warn("Failed to close migration source", map[string]interface{}{"error": srcErr.Error()})
		}
		if dbErr != nil {
			log.Warn("Failed to close migration database", map[string]interface{}{"error": dbErr.Error()})
		}
	}()

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("No migrations to apply (database up-to-date)", nil)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, _, _ := m.Version()
	log.Info("Applied migrations successfully", map[string]interface{}{"version": version})
	return nil
}
