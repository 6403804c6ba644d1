package migrations

import (
	"database/sql"
	_ "embed"

	"github.com/goran-ethernal/DomainIndexor/internal/db"
	"github.com/goran-ethernal/DomainIndexor/internal/logger"
)

//go:embed 001_checkpoints.sql
var mig001 string

//go:embed 002_event_queue.sql
var mig002 string

//go:embed 003_names.sql
var mig003 string

// All returns the schema migrations in the order they must be applied.
func All() []db.Migration {
	return []db.Migration{
		{ID: "001_checkpoints.sql", SQL: mig001},
		{ID: "002_event_queue.sql", SQL: mig002},
		{ID: "003_names.sql", SQL: mig003},
	}
}

// RunMigrations applies the schema to the database at dbPath.
func RunMigrations(dbPath string) error {
	return db.RunMigrations(dbPath, All())
}

// RunMigrationsDB applies the schema to an open database.
func RunMigrationsDB(log *logger.Logger, sqlDB *sql.DB) error {
	return db.RunMigrationsDB(log, sqlDB, All())
}
