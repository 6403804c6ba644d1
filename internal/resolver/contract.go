package resolver

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/goran-ethernal/DomainIndexor/internal/contracts"
	"github.com/goran-ethernal/DomainIndexor/internal/logger"
	pkgresolver "github.com/goran-ethernal/DomainIndexor/pkg/resolver"
	"github.com/goran-ethernal/DomainIndexor/pkg/rpc"
)

const (
	contractResolverName = "contract"
	wordSize             = 32
)

// Compile-time check to ensure ContractResolver implements pkgresolver.NameResolver interface.
var _ pkgresolver.NameResolver = (*ContractResolver)(nil)

// ContractResolver reads preimages from the rainbow table contract.
type ContractResolver struct {
	rpc     rpc.EthClient
	address common.Address
	abi     abi.ABI
	log     *logger.Logger
}

// NewContractResolver creates a resolver calling lookup on the rainbow table at address.
func NewContractResolver(rpcClient rpc.EthClient, address common.Address, rainbowABI abi.ABI,
	log *logger.Logger) (*ContractResolver, error) {
	if _, ok := rainbowABI.Methods[contracts.LookupMethod]; !ok {
		return nil, fmt.Errorf("rainbow table ABI has no %s method", contracts.LookupMethod)
	}

	return &ContractResolver{
		rpc:     rpcClient,
		address: address,
		abi:     rainbowABI,
		log:     log,
	}, nil
}

// Resolve calls lookup(hash) and decodes the returned words into the name.
func (r *ContractResolver) Resolve(ctx context.Context, hash *big.Int) (string, error) {
	start := time.Now()

	name, err := r.resolve(ctx, hash)

	result := resultResolved
	switch {
	case errors.Is(err, pkgresolver.ErrNameNotFound):
		result = resultNotFound
	case err != nil:
		result = resultError
	}
	ResolutionObserve(contractResolverName, result, time.Since(start))

	return name, err
}

func (r *ContractResolver) resolve(ctx context.Context, hash *big.Int) (string, error) {
	input, err := r.abi.Pack(contracts.LookupMethod, hash)
	if err != nil {
		return "", fmt.Errorf("failed to pack %s call: %w", contracts.LookupMethod, err)
	}

	output, err := r.rpc.CallContract(ctx, ethereum.CallMsg{To: &r.address, Data: input}, nil)
	if err != nil {
		return "", fmt.Errorf("%s(%s) call failed: %w", contracts.LookupMethod, hash, err)
	}

	values, err := r.abi.Unpack(contracts.LookupMethod, output)
	if err != nil {
		return "", fmt.Errorf("failed to unpack %s result: %w", contracts.LookupMethod, err)
	}
	if len(values) != 1 {
		return "", fmt.Errorf("%s returned %d values, expected 1", contracts.LookupMethod, len(values))
	}

	words, ok := values[0].([]*big.Int)
	if !ok {
		return "", fmt.Errorf("%s returned %T, expected uint256[]", contracts.LookupMethod, values[0])
	}

	name, err := decodePreimage(words)
	if err != nil {
		return "", fmt.Errorf("hash %s: %w", hash, err)
	}

	r.log.Debugf("resolved hash %s to %q", hash, name)

	return name, nil
}

// decodePreimage joins the words as big-endian 32-byte chunks and strips the trailing NUL padding.
func decodePreimage(words []*big.Int) (string, error) {
	if len(words) == 0 {
		return "", pkgresolver.ErrNameNotFound
	}

	buf := make([]byte, 0, len(words)*wordSize)
	for i, w := range words {
		if w.Sign() < 0 || w.BitLen() > wordSize*8 { //nolint:mnd
			return "", fmt.Errorf("preimage word %d does not fit in %d bytes", i, wordSize)
		}
		buf = append(buf, w.FillBytes(make([]byte, wordSize))...)
	}

	name := strings.TrimRight(string(buf), "\x00")
	if name == "" {
		return "", pkgresolver.ErrNameNotFound
	}
	if !utf8.ValidString(name) {
		return "", errors.New("preimage is not valid UTF-8")
	}

	return name, nil
}
