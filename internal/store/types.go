package store

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/goran-ethernal/DomainIndexor/pkg/event"
)

const queuedEventColumns = `id, kind, block_number, block_timestamp, transaction_index, log_index, tx_hash, args`

const nameColumns = `hash, name, owner, expiry, created_at, updated_at`

// queuedEvent is the event_queue row.
type queuedEvent struct {
	ID               int64       `meddler:"id,pk"`
	Kind             string      `meddler:"kind"`
	BlockNumber      uint64      `meddler:"block_number"`
	BlockTimestamp   uint64      `meddler:"block_timestamp"`
	TransactionIndex uint        `meddler:"transaction_index"`
	LogIndex         uint        `meddler:"log_index"`
	TxHash           common.Hash `meddler:"tx_hash,hash"`
	Args             string      `meddler:"args"`
}

func newQueuedEvent(ev *event.Event) (*queuedEvent, error) {
	args, err := ev.MarshalArgs()
	if err != nil {
		return nil, fmt.Errorf("failed to encode args of %s: %w", ev, err)
	}

	return &queuedEvent{
		Kind:             ev.Kind().String(),
		BlockNumber:      ev.BlockNumber,
		BlockTimestamp:   ev.BlockTimestamp,
		TransactionIndex: ev.TransactionIndex,
		LogIndex:         ev.LogIndex,
		TxHash:           ev.TxHash,
		Args:             string(args),
	}, nil
}

func (q *queuedEvent) toEvent() (*event.Event, error) {
	kind, err := event.ParseKind(q.Kind)
	if err != nil {
		return nil, fmt.Errorf("queued event %d: %w", q.ID, err)
	}

	payload, err := event.UnmarshalPayload(kind, []byte(q.Args))
	if err != nil {
		return nil, fmt.Errorf("queued event %d: %w", q.ID, err)
	}

	return &event.Event{
		ID:               q.ID,
		BlockNumber:      q.BlockNumber,
		BlockTimestamp:   q.BlockTimestamp,
		TransactionIndex: q.TransactionIndex,
		LogIndex:         q.LogIndex,
		TxHash:           q.TxHash,
		Payload:          payload,
	}, nil
}
