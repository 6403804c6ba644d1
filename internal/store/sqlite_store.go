package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/russross/meddler"

	"github.com/goran-ethernal/DomainIndexor/internal/common"
	"github.com/goran-ethernal/DomainIndexor/internal/db"
	"github.com/goran-ethernal/DomainIndexor/internal/logger"
	"github.com/goran-ethernal/DomainIndexor/pkg/config"
	"github.com/goran-ethernal/DomainIndexor/pkg/event"
	pkgstore "github.com/goran-ethernal/DomainIndexor/pkg/store"
)

// Compile-time check to ensure SQLiteStore implements pkgstore.Store interface.
var _ pkgstore.Store = (*SQLiteStore)(nil)

var errTxClosed = errors.New("transaction already finished")

// querier is implemented by both *sql.DB and *sql.Tx.
type querier interface {
	meddler.DB
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLiteStore is the SQLite backed implementation of pkgstore.Store.
type SQLiteStore struct {
	db          *sql.DB
	log         *logger.Logger
	maintenance db.Maintenance
}

// NewSQLiteStore wraps an already migrated database.
func NewSQLiteStore(sqlDB *sql.DB, maintenance db.Maintenance, log *logger.Logger) *SQLiteStore {
	if maintenance == nil {
		maintenance = &db.NoOpMaintenance{}
	}

	return &SQLiteStore{
		db:          sqlDB,
		log:         log.WithComponent(common.ComponentStore),
		maintenance: maintenance,
	}
}

// DB returns the underlying database handle.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// GetCheckpoint returns the highest checkpoint written.
func (s *SQLiteStore) GetCheckpoint(ctx context.Context) (uint64, bool, error) {
	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	return getCheckpoint(ctx, s.db)
}

// NextQueuedEvent returns the oldest queued event or nil.
func (s *SQLiteStore) NextQueuedEvent(ctx context.Context) (*event.Event, error) {
	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	return nextQueuedEvent(s.db)
}

// GetName returns a single registry entry.
func (s *SQLiteStore) GetName(ctx context.Context, hash string) (*pkgstore.Name, error) {
	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	return getName(s.db, hash)
}

// QueueDepth returns the number of queued events.
func (s *SQLiteStore) QueueDepth(ctx context.Context) (int64, error) {
	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM event_queue`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count queued events: %w", err)
	}

	return n, nil
}

// Status reports checkpoint, queue depth and registry size.
func (s *SQLiteStore) Status(ctx context.Context) (*pkgstore.Status, error) {
	checkpoint, ok, err := s.GetCheckpoint(ctx)
	if err != nil {
		return nil, err
	}

	depth, err := s.QueueDepth(ctx)
	if err != nil {
		return nil, err
	}

	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	var names int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM names`).Scan(&names); err != nil {
		return nil, fmt.Errorf("failed to count names: %w", err)
	}

	return &pkgstore.Status{
		Checkpoint:    checkpoint,
		HasCheckpoint: ok,
		QueueDepth:    depth,
		Names:         names,
	}, nil
}

// SearchNames runs a substring search over revealed names.
func (s *SQLiteStore) SearchNames(ctx context.Context, q pkgstore.NameQuery) ([]*pkgstore.Name, int64, error) {
	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	var (
		where []string
		args  []any
	)

	if q.Search != "" {
		where = append(where, `name LIKE ? ESCAPE '\'`)
		args = append(args, "%"+escapeLike(q.Search)+"%")
	}
	if q.Owner != nil {
		where = append(where, `owner = ?`)
		args = append(args, q.Owner.Hex())
	}

	whereClause := ""
	if len(where) > 0 {
		whereClause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM names`+whereClause, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count names: %w", err)
	}

	order := "ASC"
	if q.Order == pkgstore.SortDesc {
		order = "DESC"
	}

	limit := q.Limit
	if limit <= 0 || limit > config.MaxSearchResults {
		limit = config.MaxSearchResults
	}
	offset := max(q.Offset, 0)

	query := fmt.Sprintf(`SELECT %s FROM names%s ORDER BY name %s, hash ASC LIMIT ? OFFSET ?`,
		nameColumns, whereClause, order)

	var names []*pkgstore.Name
	if err := meddler.QueryAll(s.db, &names, query, append(args, limit, offset)...); err != nil {
		return nil, 0, fmt.Errorf("failed to search names: %w", err)
	}

	return names, total, nil
}

// WithTransaction runs fn inside a single SQLite transaction.
func (s *SQLiteStore) WithTransaction(ctx context.Context, fn func(tx pkgstore.Tx) error) error {
	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	start := time.Now()

	sqlTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	t := &tx{q: sqlTx, log: s.log}

	committed := false
	defer func() {
		t.close()
		if !committed {
			if err := sqlTx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				s.log.Errorw("failed to roll back transaction", "error", err)
			}
			t.forgetEnqueued()
		}
		TransactionLog(committed, time.Since(start))
	}()

	if err := fn(t); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true

	return nil
}

// tx implements pkgstore.Tx on top of *sql.Tx.
type tx struct {
	q      querier
	log    *logger.Logger
	closed bool

	// events that received ids in this transaction
	enqueued []*event.Event
}

func (t *tx) close() {
	t.closed = true
}

// forgetEnqueued clears the ids handed out by a transaction that did not commit.
func (t *tx) forgetEnqueued() {
	for _, ev := range t.enqueued {
		ev.ID = 0
	}
	t.enqueued = nil
}

func (t *tx) GetCheckpoint(ctx context.Context) (uint64, bool, error) {
	if t.closed {
		return 0, false, errTxClosed
	}
	return getCheckpoint(ctx, t.q)
}

func (t *tx) NextQueuedEvent(ctx context.Context) (*event.Event, error) {
	if t.closed {
		return nil, errTxClosed
	}
	return nextQueuedEvent(t.q)
}

func (t *tx) GetName(ctx context.Context, hash string) (*pkgstore.Name, error) {
	if t.closed {
		return nil, errTxClosed
	}
	return getName(t.q, hash)
}

func (t *tx) SetCheckpoint(ctx context.Context, block uint64) error {
	if t.closed {
		return errTxClosed
	}

	current, ok, err := getCheckpoint(ctx, t.q)
	if err != nil {
		return err
	}
	if ok && block < current {
		return fmt.Errorf("%w: %d is below current checkpoint %d", pkgstore.ErrCheckpointRegression, block, current)
	}

	if _, err := t.q.ExecContext(ctx, `INSERT INTO checkpoints (block_number) VALUES (?)`, block); err != nil {
		return fmt.Errorf("failed to insert checkpoint: %w", err)
	}

	if _, err := t.q.ExecContext(ctx, `DELETE FROM checkpoints WHERE block_number < ?`, block); err != nil {
		return fmt.Errorf("failed to prune checkpoints: %w", err)
	}

	t.log.Debugw("checkpoint set", "block", block)

	return nil
}

func (t *tx) EnqueueEvents(ctx context.Context, events []*event.Event) error {
	if t.closed {
		return errTxClosed
	}

	rows := make([]*queuedEvent, 0, len(events))
	for _, ev := range events {
		if ev.Persisted() {
			return fmt.Errorf("event %s is already queued", ev)
		}

		row, err := newQueuedEvent(ev)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	}

	for _, row := range rows {
		if err := meddler.Insert(t.q, "event_queue", row); err != nil {
			return fmt.Errorf("failed to enqueue %s event at block %d (tx %d, log %d): %w",
				row.Kind, row.BlockNumber, row.TransactionIndex, row.LogIndex, err)
		}
	}

	// ids are only handed out once every insert succeeded
	for i, row := range rows {
		events[i].ID = row.ID
	}
	t.enqueued = append(t.enqueued, events...)

	EventsEnqueuedAdd(len(rows))

	return nil
}

func (t *tx) RemoveQueuedEvent(ctx context.Context, id int64) error {
	if t.closed {
		return errTxClosed
	}

	res, err := t.q.ExecContext(ctx, `DELETE FROM event_queue WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to remove queued event %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to remove queued event %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("queued event %d: %w", id, pkgstore.ErrNotFound)
	}

	return nil
}

const upsertNameSQL = `
	INSERT INTO names (hash, name, owner, expiry) VALUES (?, ?, ?, ?)
	ON CONFLICT (hash) DO UPDATE SET
		owner      = COALESCE(excluded.owner, names.owner),
		expiry     = COALESCE(excluded.expiry, names.expiry),
		name       = COALESCE(names.name, excluded.name),
		updated_at = CURRENT_TIMESTAMP
`

func (t *tx) UpsertName(ctx context.Context, hash string, update pkgstore.NameUpdate) error {
	if t.closed {
		return errTxClosed
	}
	if hash == "" {
		return fmt.Errorf("name hash is required")
	}

	if update.IsEmpty() {
		if _, err := t.q.ExecContext(ctx, `INSERT OR IGNORE INTO names (hash) VALUES (?)`, hash); err != nil {
			return fmt.Errorf("failed to create name %s: %w", hash, err)
		}
		return nil
	}

	var owner, expiry any
	if update.Owner != nil {
		owner = update.Owner.Hex()
	}
	if update.Expiry != nil {
		expiry = update.Expiry.String()
	}

	if _, err := t.q.ExecContext(ctx, upsertNameSQL, hash, update.Name, owner, expiry); err != nil {
		return fmt.Errorf("failed to upsert name %s: %w", hash, err)
	}

	NamesUpsertedInc()

	return nil
}

func getCheckpoint(ctx context.Context, q querier) (uint64, bool, error) {
	var block sql.NullInt64
	if err := q.QueryRowContext(ctx, `SELECT MAX(block_number) FROM checkpoints`).Scan(&block); err != nil {
		return 0, false, fmt.Errorf("failed to read checkpoint: %w", err)
	}

	if !block.Valid {
		return 0, false, nil
	}

	return uint64(block.Int64), true, nil
}

func nextQueuedEvent(q querier) (*event.Event, error) {
	var row queuedEvent
	err := meddler.QueryRow(q, &row, `SELECT `+queuedEventColumns+` FROM event_queue
		ORDER BY block_number ASC, transaction_index ASC, log_index ASC, id ASC
		LIMIT 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read queued event: %w", err)
	}

	return row.toEvent()
}

func getName(q querier, hash string) (*pkgstore.Name, error) {
	var name pkgstore.Name
	err := meddler.QueryRow(q, &name, `SELECT `+nameColumns+` FROM names WHERE hash = ?`, hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pkgstore.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read name %s: %w", hash, err)
	}

	return &name, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
