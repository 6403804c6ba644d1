package db

import (
	"database/sql"
	"fmt"
	"strings"

	migrate "github.com/rubenv/sql-migrate"

	"github.com/goran-ethernal/DomainIndexor/internal/logger"
)

const (
	UpDownSeparator   = "-- +migrate Up"
	downMarker        = "-- +migrate Down"
	dbPrefixReplacer  = "/*dbprefix*/"
	NoLimitMigrations = 0 // indicate that there is no limit on the number of migrations to run
)

// Migration is a single embedded SQL migration.
// SQL holds a Down section followed by an Up section, separated by "-- +migrate Up".
type Migration struct {
	ID     string
	SQL    string
	Prefix string
}

// RunMigrations opens dbPath and applies every pending migration.
func RunMigrations(dbPath string, migrations []Migration) error {
	db, err := NewSQLiteDB(dbPath)
	if err != nil {
		return fmt.Errorf("error creating DB %w", err)
	}
	defer db.Close()

	return RunMigrationsDB(logger.GetDefaultLogger(), db, migrations)
}

// RunMigrationsDB applies every pending migration on an open database.
func RunMigrationsDB(log *logger.Logger, db *sql.DB, migrations []Migration) error {
	return RunMigrationsDBExtended(log, db, migrations, migrate.Up, NoLimitMigrations)
}

// RunMigrationsDBExtended applies at most maxMigrations in the given direction.
// Pass NoLimitMigrations to apply all of them.
func RunMigrationsDBExtended(log *logger.Logger,
	db *sql.DB,
	migrations []Migration,
	dir migrate.MigrationDirection,
	maxMigrations int) error {
	source := &migrate.MemoryMigrationSource{}

	for _, m := range migrations {
		parsed, err := parseMigration(m)
		if err != nil {
			return err
		}
		source.Migrations = append(source.Migrations, parsed)
	}

	ids := make([]string, 0, len(source.Migrations))
	for _, m := range source.Migrations {
		ids = append(ids, m.Id)
	}
	list := strings.Join(ids, ", ")

	log.Debugf("running migrations: (max %d/%d) migrations: %s", maxMigrations, len(ids), list)

	applied, err := migrate.ExecMax(db, driverName, source, dir, maxMigrations)
	if err != nil {
		return fmt.Errorf("error executing migration (max %d/%d) migrations: %s . Err: %w",
			maxMigrations, len(ids), list, err)
	}

	log.Infof("successfully ran %d migrations from migrations: %s", applied, list)
	return nil
}

func parseMigration(m Migration) (*migrate.Migration, error) {
	prefixed := strings.ReplaceAll(m.SQL, dbPrefixReplacer, m.Prefix)

	down, up, found := strings.Cut(prefixed, UpDownSeparator)
	if !found {
		return nil, fmt.Errorf("migration %s missing '%s' separator", m.ID, UpDownSeparator)
	}

	if _, after, ok := strings.Cut(down, downMarker); ok {
		down = after
	}

	return &migrate.Migration{
		Id:   m.Prefix + m.ID,
		Up:   []string{strings.TrimSpace(up)},
		Down: []string{strings.TrimSpace(down)},
	}, nil
}
