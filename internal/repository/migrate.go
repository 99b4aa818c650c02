// filepath: internal/repository/migrate.go
package repository

import (
	"fmt"

	"apodapi/internal/config"
	"apodapi/internal/db/migrations"
	"apodapi/internal/logging"

	"github.com/pressly/goose/v3"
)

// The embedded migrations live at the root of migrations.FS.
const migrationsDir = "."

func (s *Repository) gooseDialect() string {
	if s.Driver == config.DriverPostgres {
		return "postgres"
	}
	return "sqlite3"
}

func (s *Repository) setupGoose() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect(s.gooseDialect()); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// Migrate runs a goose command ("up", "down" or "status") against the store.
func (s *Repository) Migrate(command string) error {
	if err := s.setupGoose(); err != nil {
		return err
	}

	logging.Log.Infof("Running migration command: %s", command)

	var err error
	switch command {
	case "up":
		err = goose.Up(s.DB.DB, migrationsDir)
	case "down":
		err = goose.Down(s.DB.DB, migrationsDir)
	case "status":
		err = goose.Status(s.DB.DB, migrationsDir)
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// MigrateUp applies all pending migrations.
func (s *Repository) MigrateUp() error { return s.Migrate("up") }

// MigrateDown rolls back one migration.
func (s *Repository) MigrateDown() error { return s.Migrate("down") }

// ValidateSchema fails when the database is behind the embedded migrations.
func (s *Repository) ValidateSchema() error {
	if err := s.setupGoose(); err != nil {
		return err
	}

	current, err := goose.GetDBVersion(s.DB.DB)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	all, err := goose.CollectMigrations(migrationsDir, 0, goose.MaxVersion)
	if err != nil {
		return fmt.Errorf("failed to collect migrations: %w", err)
	}
	last, err := all.Last()
	if err != nil {
		return fmt.Errorf("failed to read latest migration: %w", err)
	}

	if current < last.Version {
		return fmt.Errorf("database schema is outdated (version %d, expected %d); run 'migrate up'", current, last.Version)
	}
	return nil
}

// EnsureSchemaBootstrapped migrates a database that has never been migrated.
// A database that already carries a goose version table is left alone.
func (s *Repository) EnsureSchemaBootstrapped() error {
	exists, err := s.versionTableExists()
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	logging.Log.Info("Fresh database detected, applying migrations")
	return s.MigrateUp()
}

func (s *Repository) versionTableExists() (bool, error) {
	q := s.Builder.Select("COUNT(*)")
	if s.Driver == config.DriverPostgres {
		q = q.From("information_schema.tables").Where("table_name = ?", goose.TableName())
	} else {
		q = q.From("sqlite_master").Where("type = 'table' AND name = ?", goose.TableName())
	}

	query, args, err := q.ToSql()
	if err != nil {
		return false, err
	}
	var n int
	if err := s.DB.Get(&n, query, args...); err != nil {
		return false, fmt.Errorf("failed to inspect schema: %w", err)
	}
	return n > 0, nil
}
