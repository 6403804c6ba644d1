// Package fetcher defines how the indexer obtains decoded registry events from the chain.
package fetcher

import (
	"context"

	"github.com/goran-ethernal/DomainIndexor/pkg/event"
)

// EventSource turns contract logs into registry events.
type EventSource interface {
	// GetEventsInRange returns every registry event emitted in [fromBlock, toBlock],
	// each stamped with its block timestamp, in chain order. The events carry no id.
	GetEventsInRange(ctx context.Context, fromBlock, toBlock uint64) ([]*event.Event, error)

	// Head returns the highest block that may be scanned.
	Head(ctx context.Context) (uint64, error)
}
