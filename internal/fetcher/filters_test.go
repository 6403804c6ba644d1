package fetcher

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/goran-ethernal/DomainIndexor/internal/contracts"
	"github.com/goran-ethernal/DomainIndexor/pkg/config"
	"github.com/goran-ethernal/DomainIndexor/pkg/event"
)

const (
	testDomainAddress  = "0x1ea4e7A798557001b99D88D6b4ba7F7fc79406A9"
	testRainbowAddress = "0x87ba8A1BEC5AF0bA0c7C4d5C6a3F8a93652a0B10"
)

func testContractsConfig() config.ContractsConfig {
	return config.ContractsConfig{
		Domain:       testDomainAddress,
		RainbowTable: testRainbowAddress,
	}
}

func TestNewEventFilters(t *testing.T) {
	cfg := testContractsConfig()

	filters, err := NewEventFilters(cfg, contracts.MustLoadDefault())
	require.NoError(t, err)
	require.Len(t, filters, 3)

	require.Equal(t, event.KindDomainRegister, filters[0].Kind)
	require.Equal(t, cfg.DomainAddress(), filters[0].Address)
	require.Equal(t, crypto.Keccak256Hash([]byte("Register(address,address,uint256,uint256)")), filters[0].Topic())

	require.Equal(t, event.KindDomainTransfer, filters[1].Kind)
	require.Equal(t, cfg.DomainAddress(), filters[1].Address)
	require.Equal(t, crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)")), filters[1].Topic())

	require.Equal(t, event.KindRainbowTableReveal, filters[2].Kind)
	require.Equal(t, cfg.RainbowTableAddress(), filters[2].Address)
	require.Equal(t, crypto.Keccak256Hash([]byte("Revealed(uint256)")), filters[2].Topic())
}

func TestNewEventFilters_EventOverride(t *testing.T) {
	cfg := testContractsConfig()

	cfg.Events = map[string]string{event.KindDomainTransfer.String(): "ownerOf"}
	_, err := NewEventFilters(cfg, contracts.MustLoadDefault())
	require.ErrorContains(t, err, "event ownerOf for DomainTransfer not found")

	cfg.Events = map[string]string{event.KindDomainTransfer.String(): "Register"}
	filters, err := NewEventFilters(cfg, contracts.MustLoadDefault())
	require.NoError(t, err)
	require.Equal(t, filters[0].Topic(), filters[1].Topic())
}

func TestEventFilter_Query(t *testing.T) {
	filters, err := NewEventFilters(testContractsConfig(), contracts.MustLoadDefault())
	require.NoError(t, err)

	q := filters[2].Query(BlockRange{FromBlock: 10, ToBlock: 20})
	require.Equal(t, uint64(10), q.FromBlock.Uint64())
	require.Equal(t, uint64(20), q.ToBlock.Uint64())
	require.Equal(t, filters[2].Address, q.Addresses[0])
	require.Equal(t, filters[2].Topic(), q.Topics[0][0])
}
