package fetcher

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/sync/errgroup"

	"github.com/goran-ethernal/DomainIndexor/internal/contracts"
	"github.com/goran-ethernal/DomainIndexor/internal/logger"
	irpc "github.com/goran-ethernal/DomainIndexor/internal/rpc"
	itypes "github.com/goran-ethernal/DomainIndexor/internal/types"
	"github.com/goran-ethernal/DomainIndexor/pkg/config"
	"github.com/goran-ethernal/DomainIndexor/pkg/event"
	"github.com/goran-ethernal/DomainIndexor/pkg/fetcher"
	"github.com/goran-ethernal/DomainIndexor/pkg/rpc"
)

// Compile-time check to ensure LogFetcher implements fetcher.EventSource interface.
var _ fetcher.EventSource = (*LogFetcher)(nil)

// LogFetcherConfig contains configuration for the LogFetcher.
type LogFetcherConfig struct {
	// Finality selects the head the scan may reach
	Finality itypes.BlockFinality

	// Confirmations is subtracted from the head
	Confirmations uint64

	// TimestampConcurrency bounds the parallel header requests of one call
	TimestampConcurrency int

	// Filters are queried in order, one eth_getLogs per filter and range
	Filters []EventFilter
}

// LogFetcher fetches registry logs, stamps them with block timestamps and decodes them.
// It keeps no state between calls.
type LogFetcher struct {
	cfg LogFetcherConfig
	rpc rpc.EthClient
	log *logger.Logger
}

// NewLogFetcher creates a new LogFetcher instance.
func NewLogFetcher(cfg LogFetcherConfig, log *logger.Logger, rpcClient rpc.EthClient) *LogFetcher {
	return &LogFetcher{
		cfg: cfg,
		rpc: rpcClient,
		log: log,
	}
}

// NewLogFetcherFromConfig builds the filters from the contracts section and the fetcher from the indexer section.
func NewLogFetcherFromConfig(cfg *config.Config, log *logger.Logger, rpcClient rpc.EthClient) (*LogFetcher, error) {
	abis, err := contracts.LoadABIs(cfg.Contracts.ABIDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load contract ABIs: %w", err)
	}

	filters, err := NewEventFilters(cfg.Contracts, abis)
	if err != nil {
		return nil, err
	}

	finality, err := itypes.ParseBlockFinality(cfg.Indexer.Finality)
	if err != nil {
		return nil, err
	}

	return NewLogFetcher(LogFetcherConfig{
		Finality:             finality,
		Confirmations:        cfg.Indexer.Confirmations,
		TimestampConcurrency: cfg.Indexer.TimestampConcurrency,
		Filters:              filters,
	}, log, rpcClient), nil
}

// Head returns the block number of the selected head minus the configured confirmations.
func (lf *LogFetcher) Head(ctx context.Context) (uint64, error) {
	header, err := lf.cfg.Finality.Header(ctx, lf.rpc)
	if err != nil {
		return 0, fmt.Errorf("failed to get %s block header: %w", lf.cfg.Finality, err)
	}
	if header == nil || header.Number == nil {
		return 0, fmt.Errorf("node returned no %s block header", lf.cfg.Finality)
	}

	head := header.Number.Uint64()
	if head > lf.cfg.Confirmations {
		head -= lf.cfg.Confirmations
	} else {
		head = 0
	}

	HeadBlockSet(head)

	return head, nil
}

type fetchedLog struct {
	filter EventFilter
	log    types.Log
}

// GetEventsInRange fetches and decodes the registry events of [fromBlock, toBlock].
// Logs flagged as removed are skipped. The result is sorted in chain order.
func (lf *LogFetcher) GetEventsInRange(ctx context.Context, fromBlock, toBlock uint64) ([]*event.Event, error) {
	if fromBlock > toBlock {
		return nil, fmt.Errorf("invalid block range: from %d is after to %d", fromBlock, toBlock)
	}

	rng := BlockRange{FromBlock: fromBlock, ToBlock: toBlock}

	var fetched []fetchedLog
	for _, f := range lf.cfg.Filters {
		logs, err := lf.fetchLogsCovering(ctx, f, rng)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s logs in %s: %w", f.Kind, rng, err)
		}

		kept := 0
		for _, lg := range logs {
			if lg.Removed {
				RemovedLogSkippedInc()
				continue
			}
			fetched = append(fetched, fetchedLog{filter: f, log: lg})
			kept++
		}
		LogsFetchedAdd(f.Kind.String(), kept)
	}

	timestamps, err := lf.resolveTimestamps(ctx, fetched)
	if err != nil {
		return nil, err
	}

	events := make([]*event.Event, 0, len(fetched))
	for _, fl := range fetched {
		ev, err := decodeLog(fl.filter, fl.log, timestamps[fl.log.BlockNumber])
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	slices.SortStableFunc(events, compareEvents)

	lf.log.Debugf("fetched %d events in %s", len(events), rng)

	return events, nil
}

// fetchLogsCovering queries one filter over r. When the provider caps the result size the
// range is split (on the suggested sub-range when one is given, in halves otherwise) and
// every piece is fetched, so the logs always cover all of r.
func (lf *LogFetcher) fetchLogsCovering(ctx context.Context, f EventFilter, r BlockRange) ([]types.Log, error) {
	logs, err := lf.rpc.GetLogs(ctx, f.Query(r))
	if err == nil {
		return logs, nil
	}

	tooMany, errData := irpc.IsTooManyResultsError(err)
	if !tooMany {
		return nil, err
	}

	parts, ok := splitRange(r, errData)
	if !ok {
		return nil, fmt.Errorf("cannot split range further, single block %d has too many logs: %w", r.FromBlock, err)
	}

	RangeSplitInc(f.Kind.String())
	lf.log.Infof("too many %s logs in %s, retrying as %v", f.Kind, r, parts)

	var all []types.Log
	for _, part := range parts {
		partLogs, err := lf.fetchLogsCovering(ctx, f, part)
		if err != nil {
			return nil, err
		}
		all = append(all, partLogs...)
	}

	return all, nil
}

func splitRange(r BlockRange, errData string) ([]BlockRange, bool) {
	if from, to, ok := irpc.ParseSuggestedBlockRange(errData); ok {
		if parts, ok := r.Partition(BlockRange{FromBlock: from, ToBlock: to}); ok {
			return parts, true
		}
	}

	lower, upper, ok := r.Halves()
	if !ok {
		return nil, false
	}

	return []BlockRange{lower, upper}, true
}

// resolveTimestamps fetches the header of every distinct block once, with bounded concurrency.
func (lf *LogFetcher) resolveTimestamps(ctx context.Context, fetched []fetchedLog) (map[uint64]uint64, error) {
	blocks := make(map[uint64]struct{}, len(fetched))
	for _, fl := range fetched {
		blocks[fl.log.BlockNumber] = struct{}{}
	}

	var (
		mu         sync.Mutex
		timestamps = make(map[uint64]uint64, len(blocks))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(lf.cfg.TimestampConcurrency, 1))

	for _, num := range slices.Sorted(maps.Keys(blocks)) {
		g.Go(func() error {
			header, err := lf.rpc.GetBlockHeader(gctx, num)
			if err != nil {
				return fmt.Errorf("failed to get header of block %d: %w", num, err)
			}
			if header == nil {
				return fmt.Errorf("node returned no header for block %d", num)
			}

			mu.Lock()
			timestamps[num] = header.Time
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return timestamps, nil
}

func compareEvents(a, b *event.Event) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}
