package resolver

import (
	"context"
	"fmt"
	"math/big"
	"time"

	pkgresolver "github.com/goran-ethernal/DomainIndexor/pkg/resolver"
)

const staticResolverName = "static"

// Compile-time check to ensure StaticResolver implements pkgresolver.NameResolver interface.
var _ pkgresolver.NameResolver = (*StaticResolver)(nil)

// StaticResolver answers from a fixed table of names.
type StaticResolver struct {
	names map[string]string
}

// NewStaticResolver builds the table. Keys are decimal or 0x-prefixed hex hashes.
func NewStaticResolver(names map[string]string) (*StaticResolver, error) {
	table := make(map[string]string, len(names))
	for key, name := range names {
		hash, ok := new(big.Int).SetString(key, 0)
		if !ok || hash.Sign() < 0 {
			return nil, fmt.Errorf("invalid name hash %q", key)
		}
		table[hash.String()] = name
	}

	return &StaticResolver{names: table}, nil
}

func (r *StaticResolver) Resolve(_ context.Context, hash *big.Int) (string, error) {
	start := time.Now()

	name, ok := r.names[hash.String()]
	if !ok {
		ResolutionObserve(staticResolverName, resultNotFound, time.Since(start))
		return "", fmt.Errorf("hash %s: %w", hash, pkgresolver.ErrNameNotFound)
	}

	ResolutionObserve(staticResolverName, resultResolved, time.Since(start))
	return name, nil
}
