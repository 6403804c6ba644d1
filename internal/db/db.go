package db

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/goran-ethernal/DomainIndexor/pkg/config"
)

const driverName = "sqlite3"

// sidecarSuffixes are the files SQLite keeps next to the main database file in WAL mode.
var sidecarSuffixes = []string{"-wal", "-shm"}

func connString(path, journalMode string, busyTimeout int) string {
	// _txlock=immediate takes the write lock at BEGIN, so two writers never deadlock on upgrade.
	return fmt.Sprintf(
		"file:%s?_txlock=immediate&_foreign_keys=on&_journal_mode=%s&_busy_timeout=%d",
		path, journalMode, busyTimeout,
	)
}

// NewSQLiteDB opens a SQLite database with WAL journaling and a generous busy timeout.
func NewSQLiteDB(dbPath string) (*sql.DB, error) {
	return sql.Open(driverName, connString(dbPath, "WAL", 30000)) //nolint:mnd
}

// NewSQLiteDBFromConfig opens a SQLite database with the given configuration.
func NewSQLiteDBFromConfig(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(driverName, connString(cfg.Path, cfg.JournalMode, cfg.BusyTimeout))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConnections)

	pragmas := []string{
		fmt.Sprintf("PRAGMA synchronous = %s", cfg.Synchronous),
		fmt.Sprintf("PRAGMA cache_size = %d", cfg.CacheSize),
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	return db, nil
}

// DBTotalSize returns the combined size of the database file and its WAL sidecars.
// Missing files count as zero.
func DBTotalSize(dbPath string) (int64, error) {
	var total int64

	for _, path := range append([]string{dbPath}, sidecarPaths(dbPath)...) {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return 0, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		total += info.Size()
	}

	return total, nil
}

func sidecarPaths(dbPath string) []string {
	paths := make([]string, 0, len(sidecarSuffixes))
	for _, suffix := range sidecarSuffixes {
		paths = append(paths, dbPath+suffix)
	}
	return paths
}

// isWALMode reports whether the database runs in WAL journal mode.
func isWALMode(db *sql.DB) (bool, error) {
	var mode string
	if err := db.QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		return false, err
	}
	return strings.EqualFold(mode, "wal"), nil
}

// Vacuum truncates the WAL (when in WAL mode) and rebuilds the database file.
// The caller must make sure no transaction is open on db.
func Vacuum(db *sql.DB) error {
	wal, err := isWALMode(db)
	if err != nil {
		return fmt.Errorf("failed to check journal mode: %w", err)
	}

	if wal {
		if _, err := db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
			return fmt.Errorf("failed to checkpoint WAL: %w", err)
		}
	}

	if _, err := db.Exec("VACUUM"); err != nil {
		if strings.Contains(err.Error(), "database is locked") {
			return fmt.Errorf("cannot vacuum: database is locked (retry later)")
		}
		return fmt.Errorf("vacuum failed: %w", err)
	}

	if wal {
		// VACUUM in WAL mode writes the rebuilt pages to the WAL first.
		if _, err := db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
			return fmt.Errorf("failed to checkpoint WAL after vacuum: %w", err)
		}
	}

	return nil
}
