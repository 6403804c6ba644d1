package indexer

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/goran-ethernal/DomainIndexor/internal/common"
	"github.com/goran-ethernal/DomainIndexor/internal/logger"
	"github.com/goran-ethernal/DomainIndexor/pkg/config"
	"github.com/goran-ethernal/DomainIndexor/pkg/event"
	"github.com/goran-ethernal/DomainIndexor/pkg/fetcher"
	"github.com/goran-ethernal/DomainIndexor/pkg/resolver"
	"github.com/goran-ethernal/DomainIndexor/pkg/store"
)

// Config holds the run loop parameters.
type Config struct {
	// GenesisBlock is scanned first when the store has no checkpoint
	GenesisBlock uint64
	// MaxRange bounds the block window of one scan: to = min(from + MaxRange, head)
	MaxRange uint64
	// PollInterval is the wait applied when the scan has caught up with the head
	PollInterval time.Duration
}

// ConfigFromIndexerConfig extracts the run loop parameters from the indexer section.
func ConfigFromIndexerConfig(cfg config.IndexerConfig) Config {
	return Config{
		GenesisBlock: cfg.GenesisBlock,
		MaxRange:     cfg.MaxRange,
		PollInterval: cfg.PollInterval.Duration,
	}
}

// Indexer drives the capture and apply loop.
// It drains the durable queue into the registry, then scans the next block
// window and persists the captured events together with the new checkpoint.
// Each step runs in its own store transaction, so a crash at any point
// resumes from the durable state without losing or duplicating events.
type Indexer struct {
	cfg      Config
	store    store.Store
	source   fetcher.EventSource
	resolver resolver.NameResolver
	log      *logger.Logger
}

// New creates a new Indexer.
func New(
	cfg Config,
	st store.Store,
	source fetcher.EventSource,
	nameResolver resolver.NameResolver,
	log *logger.Logger,
) (*Indexer, error) {
	if st == nil {
		return nil, errors.New("store is required")
	}
	if source == nil {
		return nil, errors.New("event source is required")
	}
	if nameResolver == nil {
		return nil, errors.New("name resolver is required")
	}
	if log == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.MaxRange == 0 {
		cfg.MaxRange = config.DefaultMaxRange
	}

	return &Indexer{
		cfg:      cfg,
		store:    st,
		source:   source,
		resolver: nameResolver,
		log:      log.WithComponent(common.ComponentIndexer),
	}, nil
}

// Run loops over Drain and ScanAndPersist until ctx is cancelled or a step fails.
// A failed step is returned as *UnrecoverableError; cancellation returns ctx.Err().
// Cancellation is only observed between steps, so a running transaction always
// finishes or rolls back before Run returns.
func (i *Indexer) Run(ctx context.Context) error {
	status, err := i.store.Status(ctx)
	if err != nil {
		return fmt.Errorf("failed to read store status: %w", err)
	}

	QueueDepthSet(int(status.QueueDepth))
	if status.HasCheckpoint {
		CheckpointSet(status.Checkpoint)
	}

	i.log.Infow("starting indexer",
		"checkpoint", status.Checkpoint,
		"has_checkpoint", status.HasCheckpoint,
		"queue_depth", status.QueueDepth,
		"genesis_block", i.cfg.GenesisBlock,
		"max_range", i.cfg.MaxRange,
	)

	for {
		if err := ctx.Err(); err != nil {
			i.log.Info("indexer stopped")
			return err
		}

		if _, err := i.Drain(ctx); err != nil {
			return i.halt(err)
		}

		if err := ctx.Err(); err != nil {
			i.log.Info("indexer stopped")
			return err
		}

		if _, err := i.ScanAndPersist(ctx); err != nil {
			return i.halt(err)
		}
	}
}

func (i *Indexer) halt(err error) error {
	var unrecoverable *UnrecoverableError
	if errors.As(err, &unrecoverable) {
		i.log.Errorw("indexer halted", unrecoverable.LogFields()...)
		return err
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		i.log.Info("indexer stopped")
	}

	return err
}

// Drain applies queued events oldest first until the queue is empty.
// It returns the number of events applied.
func (i *Indexer) Drain(ctx context.Context) (int, error) {
	applied := 0

	for {
		if applied > 0 {
			if err := ctx.Err(); err != nil {
				return applied, err
			}
		}

		ok, err := i.applyNext(ctx)
		if err != nil {
			return applied, err
		}
		if !ok {
			break
		}
		applied++
	}

	if applied > 0 {
		i.log.Infow("drained event queue", "applied", applied)
	}
	QueueDepthSet(0)

	return applied, nil
}

// applyNext applies and removes the oldest queued event in one transaction.
// It returns false when the queue is empty.
func (i *Indexer) applyNext(ctx context.Context) (bool, error) {
	txCtx := context.WithoutCancel(ctx)

	var next *event.Event
	err := i.store.WithTransaction(txCtx, func(tx store.Tx) error {
		ev, err := tx.NextQueuedEvent(txCtx)
		if err != nil {
			return fmt.Errorf("failed to read next queued event: %w", err)
		}
		if ev == nil {
			return nil
		}
		next = ev

		if err := i.Apply(txCtx, tx, ev); err != nil {
			return err
		}

		if err := tx.RemoveQueuedEvent(txCtx, ev.ID); err != nil {
			return fmt.Errorf("failed to remove queued event: %w", err)
		}

		return nil
	})
	if err != nil {
		return false, drainError(next, err)
	}
	if next == nil {
		return false, nil
	}

	EventAppliedInc(next.Kind().String())
	QueueDepthDec()

	i.log.Debugw("event applied",
		"id", next.ID,
		"kind", next.Kind().String(),
		"block", next.BlockNumber,
		"tx_index", next.TransactionIndex,
		"log_index", next.LogIndex,
	)

	return true, nil
}

// Apply merges the effect of ev into the registry through tx.
//   - DomainRegister sets the owner to the registrant and the expiry to block timestamp plus lease length
//   - DomainTransfer sets the owner to the recipient
//   - RainbowTableReveal resolves the plaintext of the hash and sets the name
func (i *Indexer) Apply(ctx context.Context, tx store.Tx, ev *event.Event) error {
	hash, update, err := i.updateFor(ctx, ev)
	if err != nil {
		return err
	}

	if err := tx.UpsertName(ctx, hash, update); err != nil {
		return fmt.Errorf("failed to update name %s: %w", hash, err)
	}

	return nil
}

func (i *Indexer) updateFor(ctx context.Context, ev *event.Event) (string, store.NameUpdate, error) {
	switch p := ev.Payload.(type) {
	case event.DomainRegister:
		owner := p.Registrant
		expiry := new(big.Int).SetUint64(ev.BlockTimestamp)
		expiry.Add(expiry, p.LeaseLength)
		return p.Name.String(), store.NameUpdate{Owner: &owner, Expiry: expiry}, nil

	case event.DomainTransfer:
		owner := p.To
		return p.TokenID.String(), store.NameUpdate{Owner: &owner}, nil

	case event.RainbowTableReveal:
		name, err := i.resolver.Resolve(ctx, p.Hash)
		if err != nil {
			return "", store.NameUpdate{}, fmt.Errorf("failed to resolve name for hash %s: %w", p.Hash, err)
		}
		return p.Hash.String(), store.NameUpdate{Name: &name}, nil

	default:
		return "", store.NameUpdate{}, fmt.Errorf("unsupported payload %T", ev.Payload)
	}
}

// ScanAndPersist fetches the next block window and persists its events
// together with the advanced checkpoint. It returns false without writing
// anything when the scan has caught up with the head, after waiting PollInterval.
func (i *Indexer) ScanAndPersist(ctx context.Context) (bool, error) {
	from, err := i.nextBlock(ctx)
	if err != nil {
		return false, rangeError(PhaseScan, 0, 0, err)
	}

	head, err := i.source.Head(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, rangeError(PhaseScan, from, from, fmt.Errorf("failed to read head: %w", err))
	}

	if from > head {
		i.log.Debugw("caught up with head", "next_block", from, "head", head)
		return false, i.wait(ctx)
	}

	to := head
	if head-from > i.cfg.MaxRange {
		to = from + i.cfg.MaxRange
	}

	start := time.Now()

	events, err := i.source.GetEventsInRange(ctx, from, to)
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, rangeError(PhaseScan, from, to, err)
	}

	if err := i.persist(ctx, events, to+1); err != nil {
		return false, rangeError(PhasePersist, from, to, err)
	}

	for _, ev := range events {
		EventCapturedInc(ev.Kind().String())
	}
	CheckpointSet(to + 1)
	QueueDepthSet(len(events))
	ScanLog(to-from+1, time.Since(start))

	i.log.Infow("scanned block range",
		"from_block", from,
		"to_block", to,
		"head", head,
		"events", len(events),
	)

	return true, nil
}

// nextBlock returns the checkpoint, or the genesis block when none was written.
func (i *Indexer) nextBlock(ctx context.Context) (uint64, error) {
	checkpoint, ok, err := i.store.GetCheckpoint(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read checkpoint: %w", err)
	}
	if !ok {
		return i.cfg.GenesisBlock, nil
	}
	return checkpoint, nil
}

func (i *Indexer) persist(ctx context.Context, events []*event.Event, checkpoint uint64) error {
	txCtx := context.WithoutCancel(ctx)

	return i.store.WithTransaction(txCtx, func(tx store.Tx) error {
		if len(events) > 0 {
			if err := tx.EnqueueEvents(txCtx, events); err != nil {
				return fmt.Errorf("failed to enqueue events: %w", err)
			}
		}

		if err := tx.SetCheckpoint(txCtx, checkpoint); err != nil {
			return fmt.Errorf("failed to set checkpoint: %w", err)
		}

		return nil
	})
}

func (i *Indexer) wait(ctx context.Context) error {
	if i.cfg.PollInterval <= 0 {
		return nil
	}

	timer := time.NewTimer(i.cfg.PollInterval)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
