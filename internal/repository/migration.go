// filepath: internal/repository/migration.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"payinfo/internal/db/migrations"
	"payinfo/internal/logging"

	"github.com/pressly/goose/v3"
)

// The embedded migrations are at the root of the FS.
const migrationsDir = "."

func configureGoose() error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(logging.Log)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// Migrate runs a goose command ("up", "down" or "status") against the database.
func (r *Repository) Migrate(command string) error {
	if err := configureGoose(); err != nil {
		return err
	}

	var err error
	switch command {
	case "up":
		err = goose.Up(r.DB, migrationsDir)
	case "down":
		err = goose.Down(r.DB, migrationsDir)
	case "status":
		err = goose.Status(r.DB, migrationsDir)
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// EnsureSchemaBootstrapped migrates a fresh database to the latest version.
// A database that already has a goose version table is left alone so that
// upgrades stay an explicit 'migrate up'.
func (r *Repository) EnsureSchemaBootstrapped() error {
	var name string
	err := r.DB.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='goose_db_version'").Scan(&name)
	if err == nil {
		logging.Log.Debug("Schema version table found, skipping bootstrap.")
		return nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	logging.Log.Info("Fresh database detected, applying all migrations.")
	return r.Migrate("up")
}

// ValidateSchema fails if the database is behind the embedded migrations.
func (r *Repository) ValidateSchema() error {
	if err := configureGoose(); err != nil {
		return err
	}

	current, err := goose.GetDBVersion(r.DB)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	all, err := goose.CollectMigrations(migrationsDir, 0, goose.MaxVersion)
	if err != nil {
		return fmt.Errorf("failed to collect migrations: %w", err)
	}
	latest, err := all.Last()
	if err != nil {
		return fmt.Errorf("failed to determine latest migration: %w", err)
	}

	if current < latest.Version {
		return fmt.Errorf("database schema is outdated (version %d, required %d); run 'payinfo migrate up'", current, latest.Version)
	}
	return nil
}
