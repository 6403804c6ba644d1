package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goran-ethernal/DomainIndexor/internal/common"
	"github.com/goran-ethernal/DomainIndexor/internal/logger"
	"github.com/goran-ethernal/DomainIndexor/pkg/config"
)

// Maintenance serializes database housekeeping against regular operations.
type Maintenance interface {
	// Start begins background maintenance if enabled.
	Start(ctx context.Context) error
	// Stop stops background maintenance and waits for completion.
	Stop() error
	// AcquireOperationLock acquires a shared lock for a database operation.
	// The returned function releases it.
	AcquireOperationLock() func()
	// GetMetrics returns current maintenance metrics.
	GetMetrics() MaintenanceMetrics
	// RunMaintenance performs a WAL checkpoint and VACUUM immediately.
	RunMaintenance(ctx context.Context) error
}

// MaintenanceMetrics provides visibility into maintenance operations.
type MaintenanceMetrics struct {
	LastMaintenanceTime  time.Time
	MaintenanceCount     uint64
	LastMaintenanceError error
}

// NoOpMaintenance is used when maintenance is not configured.
type NoOpMaintenance struct{}

func (m *NoOpMaintenance) Start(ctx context.Context) error          { return nil }
func (m *NoOpMaintenance) Stop() error                              { return nil }
func (m *NoOpMaintenance) RunMaintenance(ctx context.Context) error { return nil }
func (m *NoOpMaintenance) AcquireOperationLock() func()             { return func() {} }
func (m *NoOpMaintenance) GetMetrics() MaintenanceMetrics           { return MaintenanceMetrics{} }

// MaintenanceCoordinator runs periodic WAL checkpoints and VACUUM.
// Store operations hold the read side of opLock; maintenance takes the write side,
// so it only ever runs between transactions.
type MaintenanceCoordinator struct {
	db     *sql.DB
	config config.MaintenanceConfig
	dbPath string
	log    *logger.Logger

	opLock sync.RWMutex

	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu      sync.Mutex
	metrics MaintenanceMetrics
}

// NewMaintenanceCoordinator returns a coordinator for db, or a no-op when cfg is nil.
func NewMaintenanceCoordinator(
	dbPath string,
	db *sql.DB,
	cfg *config.MaintenanceConfig,
	log *logger.Logger,
) Maintenance {
	if cfg == nil {
		return &NoOpMaintenance{}
	}

	return newMaintenanceCoordinator(dbPath, db, *cfg, log)
}

func newMaintenanceCoordinator(
	dbPath string,
	db *sql.DB,
	cfg config.MaintenanceConfig,
	log *logger.Logger,
) *MaintenanceCoordinator {
	return &MaintenanceCoordinator{
		db:     db,
		config: cfg,
		dbPath: dbPath,
		log:    log.WithComponent(common.ComponentMaintenance),
	}
}

// Start begins background maintenance if enabled.
func (m *MaintenanceCoordinator) Start(ctx context.Context) error {
	if !m.config.Enabled {
		m.log.Info("background maintenance is disabled")
		return nil
	}

	if m.config.CheckInterval.Duration <= 0 {
		return fmt.Errorf("maintenance check interval must be positive, got %v", m.config.CheckInterval.Duration)
	}

	ctx, m.cancel = context.WithCancel(ctx)

	if m.config.VacuumOnStartup {
		if err := m.RunMaintenance(ctx); err != nil {
			m.log.Warnw("startup maintenance failed", "error", err)
		}
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		ticker := time.NewTicker(m.config.CheckInterval.Duration)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := m.RunMaintenance(ctx); err != nil {
					m.log.Warnw("periodic maintenance failed", "error", err)
				}
			}
		}
	}()

	m.log.Infow("background maintenance started",
		"interval", m.config.CheckInterval.Duration,
		"checkpoint_mode", m.config.WALCheckpointMode,
	)

	return nil
}

// Stop stops background maintenance and waits for the worker to exit.
func (m *MaintenanceCoordinator) Stop() error {
	if m.cancel == nil {
		return nil
	}

	m.cancel()
	m.wg.Wait()
	m.log.Info("background maintenance stopped")

	return nil
}

// RunMaintenance takes the exclusive lock and compacts the database.
func (m *MaintenanceCoordinator) RunMaintenance(ctx context.Context) error {
	start := time.Now()
	MaintenanceRunsInc()

	m.opLock.Lock()
	defer m.opLock.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	sizeBefore, err := DBTotalSize(m.dbPath)
	if err != nil {
		m.log.Warnw("failed to read database size", "error", err)
	}

	runErr := m.walCheckpoint()
	if err := m.vacuum(); err != nil {
		if runErr == nil {
			runErr = err
		}
	} else if runErr == nil {
		// VACUUM in WAL mode rewrites the whole database into the WAL
		runErr = m.walCheckpoint()
	}

	sizeAfter, err := DBTotalSize(m.dbPath)
	if err != nil {
		m.log.Warnw("failed to read database size", "error", err)
	}

	elapsed := time.Since(start)
	MaintenanceDurationLog(elapsed)
	MaintenanceLastRunLog()
	DBSizeLog(sizeAfter)

	m.mu.Lock()
	m.metrics.LastMaintenanceTime = time.Now().UTC()
	m.metrics.MaintenanceCount++
	m.metrics.LastMaintenanceError = runErr
	m.mu.Unlock()

	if runErr != nil {
		MaintenanceErrorInc()
		m.log.Warnw("maintenance completed with errors", "duration", elapsed, "error", runErr)
		return runErr
	}

	MaintenanceSuccessInc()

	var reclaimed uint64
	if sizeBefore > sizeAfter {
		reclaimed = uint64(sizeBefore - sizeAfter)
	}
	MaintenanceSpaceReclaimedLog(reclaimed)

	m.log.Infow("maintenance completed",
		"duration", elapsed,
		"reclaimed_mb", common.BytesToMB(reclaimed),
	)

	return nil
}

func (m *MaintenanceCoordinator) walCheckpoint() error {
	wal, err := isWALMode(m.db)
	if err != nil {
		return fmt.Errorf("failed to check journal mode: %w", err)
	}
	if !wal {
		return nil
	}

	var busy, logFrames, checkpointed int
	query := fmt.Sprintf("PRAGMA wal_checkpoint(%s)", m.config.WALCheckpointMode)
	if err := m.db.QueryRow(query).Scan(&busy, &logFrames, &checkpointed); err != nil {
		return fmt.Errorf("WAL checkpoint failed: %w", err)
	}

	WALCheckpointInc(strings.ToLower(m.config.WALCheckpointMode))

	if busy > 0 {
		m.log.Warnw("WAL checkpoint left busy pages", "busy", busy)
	}
	m.log.Debugw("WAL checkpoint complete",
		"mode", m.config.WALCheckpointMode,
		"log_frames", logFrames,
		"checkpointed", checkpointed,
	)

	return nil
}

func (m *MaintenanceCoordinator) vacuum() error {
	if _, err := m.db.Exec("VACUUM"); err != nil {
		if strings.Contains(err.Error(), "database is locked") {
			return fmt.Errorf("cannot vacuum: database is locked (retry later)")
		}
		return fmt.Errorf("VACUUM failed: %w", err)
	}

	VacuumRunsInc()

	return nil
}

// AcquireOperationLock acquires the shared side of the maintenance lock.
func (m *MaintenanceCoordinator) AcquireOperationLock() func() {
	m.opLock.RLock()
	return m.opLock.RUnlock
}

// GetMetrics returns current maintenance metrics.
func (m *MaintenanceCoordinator) GetMetrics() MaintenanceMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.metrics
}
