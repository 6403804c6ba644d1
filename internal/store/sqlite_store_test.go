package store

import (
	"context"
	"errors"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/goran-ethernal/DomainIndexor/internal/db"
	"github.com/goran-ethernal/DomainIndexor/internal/logger"
	"github.com/goran-ethernal/DomainIndexor/internal/migrations"
	"github.com/goran-ethernal/DomainIndexor/pkg/config"
	"github.com/goran-ethernal/DomainIndexor/pkg/event"
	pkgstore "github.com/goran-ethernal/DomainIndexor/pkg/store"
)

var (
	ownerA = common.HexToAddress("0x0000000000000000000000000000000000000aaa")
	ownerB = common.HexToAddress("0x0000000000000000000000000000000000000bbb")
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	cfg := config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "domains.sqlite")}
	cfg.ApplyDefaults()

	sqlDB, err := db.NewSQLiteDBFromConfig(cfg)
	require.NoError(t, err)

	log := logger.NewNopLogger()
	require.NoError(t, migrations.RunMigrationsDB(log, sqlDB))

	s := NewSQLiteStore(sqlDB, nil, log)
	t.Cleanup(func() { s.Close() })

	return s
}

func revealEvent(block uint64, txIndex, logIndex uint, hash int64) *event.Event {
	return &event.Event{
		BlockNumber:      block,
		BlockTimestamp:   1000,
		TransactionIndex: txIndex,
		LogIndex:         logIndex,
		TxHash:           common.BigToHash(big.NewInt(int64(block)*100 + int64(txIndex))),
		Payload:          event.RainbowTableReveal{Hash: big.NewInt(hash)},
	}
}

func strPtr(s string) *string { return &s }

func queueDepth(t *testing.T, s *SQLiteStore) int64 {
	t.Helper()

	n, err := s.QueueDepth(context.Background())
	require.NoError(t, err)
	return n
}

func TestCheckpoint(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, ok, err := s.GetCheckpoint(ctx)
	require.NoError(t, err)
	require.False(t, ok, "fresh store has no checkpoint")

	for _, block := range []uint64{101, 101, 2149} {
		require.NoError(t, s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
			return tx.SetCheckpoint(ctx, block)
		}))

		got, ok, err := s.GetCheckpoint(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, block, got)
	}

	err = s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
		return tx.SetCheckpoint(ctx, 100)
	})
	require.ErrorIs(t, err, pkgstore.ErrCheckpointRegression)

	got, _, err := s.GetCheckpoint(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(2149), got, "a rejected write leaves the checkpoint unchanged")

	var rows int
	require.NoError(t, s.DB().QueryRow(`SELECT COUNT(*) FROM checkpoints`).Scan(&rows))
	require.Equal(t, 1, rows, "older checkpoints are pruned")
}

func TestEnqueueEvents_AssignsIDsAndOrders(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	// fetch order is not chain order
	events := []*event.Event{
		revealEvent(10, 1, 4, 1),
		revealEvent(11, 0, 0, 2),
		revealEvent(10, 0, 2, 3),
	}

	require.NoError(t, s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
		return tx.EnqueueEvents(ctx, events)
	}))

	for i, ev := range events {
		require.True(t, ev.Persisted())
		if i > 0 {
			require.Greater(t, ev.ID, events[i-1].ID, "ids follow insertion order")
		}
	}

	var drained []int64
	for {
		next, err := s.NextQueuedEvent(ctx)
		require.NoError(t, err)
		if next == nil {
			break
		}

		drained = append(drained, next.Payload.(event.RainbowTableReveal).Hash.Int64())
		require.NoError(t, s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
			return tx.RemoveQueuedEvent(ctx, next.ID)
		}))
	}

	require.Equal(t, []int64{3, 1, 2}, drained)
}

func TestEnqueueEvents_RejectsQueuedEvent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	ev := revealEvent(10, 0, 0, 1)
	ev.ID = 7

	err := s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
		return tx.EnqueueEvents(ctx, []*event.Event{ev})
	})
	require.ErrorContains(t, err, "already queued")
}

func TestPersist_Atomicity(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
		return tx.SetCheckpoint(ctx, 100)
	}))

	// the third event collides with the first on (block, tx index, log index)
	events := []*event.Event{
		revealEvent(100, 0, 0, 1),
		revealEvent(100, 1, 0, 2),
		revealEvent(100, 0, 0, 3),
	}

	err := s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
		if err := tx.EnqueueEvents(ctx, events); err != nil {
			return err
		}
		return tx.SetCheckpoint(ctx, 200)
	})
	require.Error(t, err)

	require.Zero(t, queueDepth(t, s), "no event of the failed batch may remain queued")

	checkpoint, _, err := s.GetCheckpoint(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(100), checkpoint)

	for _, ev := range events {
		require.False(t, ev.Persisted(), "ids are not assigned when the batch fails")
	}
}

func TestPersist_RollbackClearsAssignedIDs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
		return tx.SetCheckpoint(ctx, 100)
	}))

	events := []*event.Event{revealEvent(100, 0, 0, 1), revealEvent(100, 1, 0, 2)}

	err := s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
		if err := tx.EnqueueEvents(ctx, events); err != nil {
			return err
		}
		for _, ev := range events {
			require.True(t, ev.Persisted())
		}
		return tx.SetCheckpoint(ctx, 50)
	})
	require.ErrorIs(t, err, pkgstore.ErrCheckpointRegression)

	require.Zero(t, queueDepth(t, s))
	for _, ev := range events {
		require.False(t, ev.Persisted(), "a rolled back enqueue must not leave ids behind")
	}

	// the same events can be queued again once the ids are cleared
	require.NoError(t, s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
		return tx.EnqueueEvents(ctx, events)
	}))
	require.Equal(t, int64(2), queueDepth(t, s))
}

func TestGetName(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	_, err := s.GetName(ctx, "1001")
	require.ErrorIs(t, err, pkgstore.ErrNotFound)

	require.NoError(t, s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
		return tx.UpsertName(ctx, "1001", pkgstore.NameUpdate{Owner: &ownerA, Expiry: big.NewInt(4600)})
	}))

	name, err := s.GetName(ctx, "1001")
	require.NoError(t, err)
	require.Equal(t, "1001", name.Hash)
	require.Equal(t, ownerA, *name.Owner)
	require.Zero(t, name.Expiry.Cmp(big.NewInt(4600)))
	require.Nil(t, name.Name)

	names, total, err := s.SearchNames(ctx, pkgstore.NameQuery{Limit: 10, Order: pkgstore.SortAsc})
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, names, 1)
	require.Equal(t, "1001", names[0].Hash)
}

func TestWithTransaction_PropagatesAndRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	boom := errors.New("boom")

	err := s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
		require.NoError(t, tx.EnqueueEvents(ctx, []*event.Event{revealEvent(5, 0, 0, 1)}))
		require.NoError(t, tx.UpsertName(ctx, "1", pkgstore.NameUpdate{Owner: &ownerA}))
		require.NoError(t, tx.SetCheckpoint(ctx, 6))
		return boom
	})
	require.ErrorIs(t, err, boom)

	require.Zero(t, queueDepth(t, s))

	_, ok, err := s.GetCheckpoint(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = s.GetName(ctx, "1")
	require.ErrorIs(t, err, pkgstore.ErrNotFound)
}

func TestWithTransaction_TxUnusableAfterReturn(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	var leaked pkgstore.Tx
	require.NoError(t, s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
		leaked = tx
		return nil
	}))

	require.ErrorIs(t, leaked.SetCheckpoint(ctx, 1), errTxClosed)
	require.ErrorIs(t, leaked.UpsertName(ctx, "1", pkgstore.NameUpdate{}), errTxClosed)
}

func TestRemoveQueuedEvent_Missing(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	err := s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
		return tx.RemoveQueuedEvent(ctx, 42)
	})
	require.ErrorIs(t, err, pkgstore.ErrNotFound)
}

func TestUpsertName_Merge(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	upsert := func(hash string, u pkgstore.NameUpdate) {
		t.Helper()
		require.NoError(t, s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
			return tx.UpsertName(ctx, hash, u)
		}))
	}

	get := func(hash string) *pkgstore.Name {
		t.Helper()
		n, err := s.GetName(ctx, hash)
		require.NoError(t, err)
		return n
	}

	hash := new(big.Int).Lsh(big.NewInt(1), 200).String()

	// register
	upsert(hash, pkgstore.NameUpdate{Owner: &ownerA, Expiry: big.NewInt(4600)})
	n := get(hash)
	require.Equal(t, hash, n.Hash)
	require.Equal(t, ownerA, *n.Owner)
	require.Equal(t, "4600", n.Expiry.String())
	require.Nil(t, n.Name)
	require.False(t, n.CreatedAt.IsZero())

	// transfer keeps expiry
	upsert(hash, pkgstore.NameUpdate{Owner: &ownerB})
	n = get(hash)
	require.Equal(t, ownerB, *n.Owner)
	require.Equal(t, "4600", n.Expiry.String())

	// reveal is idempotent and the name is fixed once set
	upsert(hash, pkgstore.NameUpdate{Name: strPtr("alice")})
	upsert(hash, pkgstore.NameUpdate{Name: strPtr("alice")})
	upsert(hash, pkgstore.NameUpdate{Name: strPtr("mallory")})
	n = get(hash)
	require.Equal(t, "alice", *n.Name)
	require.Equal(t, ownerB, *n.Owner)

	// an empty update only creates missing entries
	upsert("7", pkgstore.NameUpdate{})
	n = get("7")
	require.Nil(t, n.Owner)
	require.Nil(t, n.Expiry)
	require.Nil(t, n.Name)
}

func TestSearchNames(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	entries := map[string]pkgstore.NameUpdate{
		"1": {Name: strPtr("alice.avax"), Owner: &ownerA},
		"2": {Name: strPtr("bob.avax"), Owner: &ownerB},
		"3": {Name: strPtr("malice.avax"), Owner: &ownerA},
		"4": {Name: strPtr("100%_real.avax"), Owner: &ownerB},
		"5": {Owner: &ownerA},
	}
	require.NoError(t, s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
		for hash, u := range entries {
			if err := tx.UpsertName(ctx, hash, u); err != nil {
				return err
			}
		}
		return nil
	}))

	names := func(res []*pkgstore.Name) []string {
		out := make([]string, 0, len(res))
		for _, n := range res {
			if n.Name == nil {
				out = append(out, "<unrevealed>")
				continue
			}
			out = append(out, *n.Name)
		}
		return out
	}

	tests := []struct {
		name     string
		query    pkgstore.NameQuery
		expected []string
		total    int64
	}{
		{
			name:     "substring match ordered by name",
			query:    pkgstore.NameQuery{Search: "lice"},
			expected: []string{"alice.avax", "malice.avax"},
			total:    2,
		},
		{
			name:     "descending",
			query:    pkgstore.NameQuery{Search: "lice", Order: pkgstore.SortDesc},
			expected: []string{"malice.avax", "alice.avax"},
			total:    2,
		},
		{
			name:     "wildcards are literal",
			query:    pkgstore.NameQuery{Search: "%_"},
			expected: []string{"100%_real.avax"},
			total:    1,
		},
		{
			name:     "owner filter",
			query:    pkgstore.NameQuery{Owner: &ownerA},
			expected: []string{"<unrevealed>", "alice.avax", "malice.avax"},
			total:    3,
		},
		{
			name:     "paging",
			query:    pkgstore.NameQuery{Search: ".avax", Limit: 2, Offset: 1},
			expected: []string{"alice.avax", "bob.avax"},
			total:    4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, total, err := s.SearchNames(ctx, tt.query)
			require.NoError(t, err)
			require.Equal(t, tt.total, total)
			require.Equal(t, tt.expected, names(res))
		})
	}
}

func TestQueuedEvent_WideIntegersSurvive(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	wide := new(big.Int).Lsh(big.NewInt(1), 200)
	ev := &event.Event{
		BlockNumber:    100,
		BlockTimestamp: 1000,
		Payload: event.DomainRegister{
			Registrant:  ownerA,
			To:          ownerA,
			Name:        wide,
			LeaseLength: big.NewInt(3600),
		},
	}

	require.NoError(t, s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
		return tx.EnqueueEvents(ctx, []*event.Event{ev})
	}))

	next, err := s.NextQueuedEvent(ctx)
	require.NoError(t, err)
	require.NotNil(t, next)
	require.Equal(t, ev.ID, next.ID)
	require.Equal(t, event.KindDomainRegister, next.Kind())

	payload := next.Payload.(event.DomainRegister)
	require.Zero(t, wide.Cmp(payload.Name))
	require.Equal(t, ownerA, payload.Registrant)
}

func TestStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.WithTransaction(ctx, func(tx pkgstore.Tx) error {
		if err := tx.EnqueueEvents(ctx, []*event.Event{revealEvent(1, 0, 0, 1), revealEvent(1, 1, 0, 2)}); err != nil {
			return err
		}
		if err := tx.UpsertName(ctx, "9", pkgstore.NameUpdate{Owner: &ownerA}); err != nil {
			return err
		}
		return tx.SetCheckpoint(ctx, 2)
	}))

	status, err := s.Status(ctx)
	require.NoError(t, err)
	require.Equal(t, &pkgstore.Status{Checkpoint: 2, HasCheckpoint: true, QueueDepth: 2, Names: 1}, status)
}
