package fetcher

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	ethcommon "github.com/ethereum/go-ethereum/common"

	"github.com/goran-ethernal/DomainIndexor/internal/contracts"
	"github.com/goran-ethernal/DomainIndexor/pkg/config"
	"github.com/goran-ethernal/DomainIndexor/pkg/event"
)

// defaultEventNames maps each kind to the ABI event it is decoded from.
var defaultEventNames = map[event.Kind]string{
	event.KindDomainRegister:     "Register",
	event.KindDomainTransfer:     "Transfer",
	event.KindRainbowTableReveal: "Revealed",
}

// EventFilter selects the logs of one event kind.
type EventFilter struct {
	Kind    event.Kind
	Address ethcommon.Address
	Event   abi.Event
}

// Topic returns the event signature hash matched against the first log topic.
func (f EventFilter) Topic() ethcommon.Hash {
	return f.Event.ID
}

// Query builds the eth_getLogs filter for the range.
func (f EventFilter) Query(r BlockRange) ethereum.FilterQuery {
	return ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(r.FromBlock),
		ToBlock:   new(big.Int).SetUint64(r.ToBlock),
		Addresses: []ethcommon.Address{f.Address},
		Topics:    [][]ethcommon.Hash{{f.Topic()}},
	}
}

// NewEventFilters builds one filter per event kind, in the fixed kind order.
func NewEventFilters(cfg config.ContractsConfig, abis *contracts.ABIs) ([]EventFilter, error) {
	filters := make([]EventFilter, 0, len(event.AllKinds))

	for _, kind := range event.AllKinds {
		contractABI, address := abis.Domain, cfg.DomainAddress()
		if kind == event.KindRainbowTableReveal {
			contractABI, address = abis.RainbowTable, cfg.RainbowTableAddress()
		}

		name := defaultEventNames[kind]
		if override, ok := cfg.Events[kind.String()]; ok && override != "" {
			name = override
		}

		ev, ok := contractABI.Events[name]
		if !ok {
			return nil, fmt.Errorf("event %s for %s not found in ABI", name, kind)
		}

		filters = append(filters, EventFilter{Kind: kind, Address: address, Event: ev})
	}

	return filters, nil
}
