// Package store defines the durable state of the indexer: the scan checkpoint,
// the queue of captured but not yet applied events, and the materialized name registry.
package store

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/goran-ethernal/DomainIndexor/pkg/event"
)

var (
	// ErrNotFound is returned when a registry entry does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCheckpointRegression is returned when a checkpoint lower than the current one is written.
	ErrCheckpointRegression = errors.New("checkpoint regression")
)

// Name is one registry entry. Hash is the decimal form of the uint256 name hash.
type Name struct {
	Hash      string          `meddler:"hash" json:"hash"`
	Name      *string         `meddler:"name" json:"name"`
	Owner     *common.Address `meddler:"owner,address" json:"owner"`
	Expiry    *big.Int        `meddler:"expiry,bigint" json:"expiry"`
	CreatedAt time.Time       `meddler:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `meddler:"updated_at" json:"updatedAt"`
}

// NameUpdate carries the fields to merge into a registry entry. Nil fields are left untouched.
type NameUpdate struct {
	Owner  *common.Address
	Expiry *big.Int
	Name   *string
}

// IsEmpty reports whether the update carries no fields.
func (u NameUpdate) IsEmpty() bool {
	return u.Owner == nil && u.Expiry == nil && u.Name == nil
}

// SortOrder is the ordering applied to name searches.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// NameQuery filters and pages a registry search.
type NameQuery struct {
	// Search is matched as a substring of the revealed name. Empty matches all entries.
	Search string
	// Owner restricts results to one owner.
	Owner  *common.Address
	Limit  int
	Offset int
	Order  SortOrder
}

// Status summarizes the indexing progress.
type Status struct {
	Checkpoint    uint64 `json:"checkpoint"`
	HasCheckpoint bool   `json:"hasCheckpoint"`
	QueueDepth    int64  `json:"queueDepth"`
	Names         int64  `json:"names"`
}

// Reader exposes the queries available both inside and outside transactions.
type Reader interface {
	// GetCheckpoint returns the highest checkpoint written, and false if none exists.
	GetCheckpoint(ctx context.Context) (uint64, bool, error)
	// NextQueuedEvent returns the oldest queued event in chain order, or nil when the queue is empty.
	NextQueuedEvent(ctx context.Context) (*event.Event, error)
	// GetName returns the registry entry for hash or ErrNotFound.
	GetName(ctx context.Context, hash string) (*Name, error)
}

// Tx is a unit of work. All writes made through it commit or roll back together.
type Tx interface {
	Reader

	// SetCheckpoint records block as the next block to scan. Older checkpoints are pruned.
	SetCheckpoint(ctx context.Context, block uint64) error
	// EnqueueEvents appends events in the given order and assigns their ids.
	EnqueueEvents(ctx context.Context, events []*event.Event) error
	// RemoveQueuedEvent deletes an applied event.
	RemoveQueuedEvent(ctx context.Context, id int64) error
	// UpsertName creates the entry for hash or merges update into it.
	UpsertName(ctx context.Context, hash string, update NameUpdate) error
}

// Store is the durable state used by the indexer and the read API.
type Store interface {
	Reader

	// QueueDepth returns the number of events waiting to be applied.
	QueueDepth(ctx context.Context) (int64, error)
	// SearchNames returns one page of matching entries and the total match count.
	SearchNames(ctx context.Context, query NameQuery) ([]*Name, int64, error)
	// Status reports checkpoint, queue depth and registry size.
	Status(ctx context.Context) (*Status, error)
	// WithTransaction runs fn in a transaction. An error from fn rolls back every write
	// and is returned unchanged; otherwise the transaction is committed.
	WithTransaction(ctx context.Context, fn func(tx Tx) error) error
	Close() error
}
