// Package resolver defines the name resolution capability used when a hash is revealed.
package resolver

import (
	"context"
	"errors"
	"math/big"
)

// ErrNameNotFound is returned when no plaintext is known for a hash.
var ErrNameNotFound = errors.New("name not found")

// NameResolver returns the plaintext name behind a name hash.
type NameResolver interface {
	Resolve(ctx context.Context, hash *big.Int) (string, error)
}
