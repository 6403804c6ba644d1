package resolver

import (
	"context"
	"fmt"
	"math/big"

	lru "github.com/hashicorp/golang-lru/v2"

	pkgresolver "github.com/goran-ethernal/DomainIndexor/pkg/resolver"
)

// Compile-time check to ensure CachedResolver implements pkgresolver.NameResolver interface.
var _ pkgresolver.NameResolver = (*CachedResolver)(nil)

// CachedResolver keeps recently resolved names in an LRU cache.
// A revealed name never changes, so only successful resolutions are cached.
type CachedResolver struct {
	inner pkgresolver.NameResolver
	cache *lru.Cache[string, string]
}

// NewCachedResolver wraps inner with a cache holding up to size names.
func NewCachedResolver(inner pkgresolver.NameResolver, size int) (*CachedResolver, error) {
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create name cache: %w", err)
	}

	return &CachedResolver{inner: inner, cache: cache}, nil
}

func (r *CachedResolver) Resolve(ctx context.Context, hash *big.Int) (string, error) {
	key := hash.String()
	if name, ok := r.cache.Get(key); ok {
		CacheHitInc()
		return name, nil
	}
	CacheMissInc()

	name, err := r.inner.Resolve(ctx, hash)
	if err != nil {
		return "", err
	}

	r.cache.Add(key, name)
	return name, nil
}

// Len returns the number of cached names.
func (r *CachedResolver) Len() int {
	return r.cache.Len()
}
