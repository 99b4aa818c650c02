// filepath: internal/repository/repository.go
package repository

import (
	"fmt"

	"apodapi/internal/config"
	"apodapi/internal/logging"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib" // Postgres driver, registered as "pgx"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver, registered as "sqlite"
)

const picturesTable = "pictures"

// Repository is the store for picture records. One instance is opened at
// start-up and shared by every request.
type Repository struct {
	DB      *sqlx.DB
	Builder squirrel.StatementBuilderType // SQL Query Builder
	Driver  string
}

// NewRepository opens the database selected by cfg.Database.
func NewRepository(cfg *config.Config) (*Repository, error) {
	var sqlDriver string
	switch cfg.Database.Driver {
	case config.DriverSQLite, "":
		sqlDriver = "sqlite"
	case config.DriverPostgres:
		sqlDriver = "pgx"
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	db, err := sqlx.Connect(sqlDriver, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	driver := cfg.Database.Driver
	if driver == "" {
		driver = config.DriverSQLite
	}

	logging.Log.WithField("driver", driver).Debug("Database connection opened")
	return NewRepositoryFromDB(db, driver), nil
}

// NewRepositoryFromDB wraps an already opened handle.
func NewRepositoryFromDB(db *sqlx.DB, driver string) *Repository {
	builder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
	if driver == config.DriverPostgres {
		builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return &Repository{DB: db, Builder: builder, Driver: driver}
}

// Close releases the database handle.
func (s *Repository) Close() error {
	return s.DB.Close()
}
