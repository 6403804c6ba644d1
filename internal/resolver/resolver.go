// Package resolver implements name resolution for revealed hashes.
package resolver

import (
	"fmt"

	"github.com/goran-ethernal/DomainIndexor/internal/contracts"
	"github.com/goran-ethernal/DomainIndexor/internal/logger"
	"github.com/goran-ethernal/DomainIndexor/pkg/config"
	pkgresolver "github.com/goran-ethernal/DomainIndexor/pkg/resolver"
	"github.com/goran-ethernal/DomainIndexor/pkg/rpc"
)

// NewFromConfig builds the configured resolver, wrapped in a cache unless the cache size is negative.
func NewFromConfig(cfg *config.Config, rpcClient rpc.EthClient, log *logger.Logger) (pkgresolver.NameResolver, error) {
	var (
		base pkgresolver.NameResolver
		err  error
	)

	switch cfg.Resolver.Type {
	case config.ResolverTypeStatic:
		base, err = NewStaticResolver(cfg.Resolver.Names)
	case config.ResolverTypeContract:
		var abis *contracts.ABIs
		abis, err = contracts.LoadABIs(cfg.Contracts.ABIDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load contract ABIs: %w", err)
		}
		base, err = NewContractResolver(rpcClient, cfg.Contracts.RainbowTableAddress(), abis.RainbowTable, log)
	default:
		return nil, fmt.Errorf("unknown resolver type %q", cfg.Resolver.Type)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Resolver.CacheSize <= 0 {
		log.Infof("using %s name resolver without cache", cfg.Resolver.Type)
		return base, nil
	}

	cached, err := NewCachedResolver(base, cfg.Resolver.CacheSize)
	if err != nil {
		return nil, err
	}

	log.Infof("using %s name resolver with a cache of %d names", cfg.Resolver.Type, cfg.Resolver.CacheSize)
	return cached, nil
}
