package fetcher

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/goran-ethernal/DomainIndexor/pkg/event"
)

var errTopicMismatch = errors.New("log topic does not match the event signature")

// decodeLog turns a raw log into an event of the filter's kind.
// Any mismatch between the log and the ABI is returned as *event.DecodeError.
func decodeLog(f EventFilter, lg types.Log, blockTimestamp uint64) (*event.Event, error) {
	fields, err := unpackLog(f.Event, lg)
	if err == nil {
		var ev *event.Event
		ev, err = event.New(f.Kind, lg.BlockNumber, blockTimestamp, lg.TxIndex, lg.Index, lg.TxHash, fields)
		if err == nil {
			return ev, nil
		}
	}

	return nil, &event.DecodeError{
		Kind:        f.Kind,
		BlockNumber: lg.BlockNumber,
		TxHash:      lg.TxHash,
		LogIndex:    lg.Index,
		Err:         err,
	}
}

func unpackLog(ev abi.Event, lg types.Log) (map[string]any, error) {
	if len(lg.Topics) == 0 || lg.Topics[0] != ev.ID {
		return nil, errTopicMismatch
	}

	var indexed abi.Arguments
	for _, input := range ev.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}

	fields := make(map[string]any, len(ev.Inputs))
	if err := abi.ParseTopicsIntoMap(fields, indexed, lg.Topics[1:]); err != nil {
		return nil, fmt.Errorf("indexed arguments: %w", err)
	}

	if err := ev.Inputs.UnpackIntoMap(fields, lg.Data); err != nil {
		return nil, fmt.Errorf("data arguments: %w", err)
	}

	return fields, nil
}
