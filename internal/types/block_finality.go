package types

import (
	"context"
	"fmt"

	ethtypes "github.com/ethereum/go-ethereum/core/types"

	pkgrpc "github.com/goran-ethernal/DomainIndexor/pkg/rpc"
)

// BlockFinality selects which chain head the indexer scans up to.
type BlockFinality string

const (
	// FinalityFinalized uses the finalized block tag
	FinalityFinalized BlockFinality = "finalized"

	// FinalitySafe uses the safe block tag
	FinalitySafe BlockFinality = "safe"

	// FinalityLatest uses the latest block tag
	FinalityLatest BlockFinality = "latest"
)

func (f BlockFinality) String() string {
	return string(f)
}

// IsValid checks if the BlockFinality value is valid.
func (f BlockFinality) IsValid() bool {
	switch f {
	case FinalityFinalized, FinalitySafe, FinalityLatest:
		return true
	default:
		return false
	}
}

// Header fetches the head header matching the finality mode.
func (f BlockFinality) Header(ctx context.Context, client pkgrpc.EthClient) (*ethtypes.Header, error) {
	switch f {
	case FinalityFinalized:
		return client.GetFinalizedBlockHeader(ctx)
	case FinalitySafe:
		return client.GetSafeBlockHeader(ctx)
	case FinalityLatest:
		return client.GetLatestBlockHeader(ctx)
	default:
		return nil, fmt.Errorf("invalid block finality: %s", f)
	}
}

// ParseBlockFinality parses a string into a BlockFinality type.
func ParseBlockFinality(s string) (BlockFinality, error) {
	f := BlockFinality(s)
	if !f.IsValid() {
		return "", fmt.Errorf("invalid block finality: %s (must be one of: finalized, safe, latest)", s)
	}
	return f, nil
}
