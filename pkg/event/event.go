package event

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Event is one decoded contract log.
// ID is zero until the event has been written to the queue.
type Event struct {
	ID               int64
	BlockNumber      uint64
	BlockTimestamp   uint64
	TransactionIndex uint
	LogIndex         uint
	TxHash           common.Hash
	Payload          Payload
}

// New builds an unqueued event from decoded log fields.
func New(kind Kind, blockNumber, blockTimestamp uint64, txIndex, logIndex uint,
	txHash common.Hash, fields map[string]any) (*Event, error) {
	payload, err := PayloadFromFields(kind, fields)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}

	return &Event{
		BlockNumber:      blockNumber,
		BlockTimestamp:   blockTimestamp,
		TransactionIndex: txIndex,
		LogIndex:         logIndex,
		TxHash:           txHash,
		Payload:          payload,
	}, nil
}

// Kind returns the kind of the payload.
func (e *Event) Kind() Kind {
	return e.Payload.Kind()
}

// Persisted reports whether the event has been assigned a queue id.
func (e *Event) Persisted() bool {
	return e.ID != 0
}

// Less orders events by block, then transaction index, then log index.
func (e *Event) Less(other *Event) bool {
	if e.BlockNumber != other.BlockNumber {
		return e.BlockNumber < other.BlockNumber
	}
	if e.TransactionIndex != other.TransactionIndex {
		return e.TransactionIndex < other.TransactionIndex
	}
	return e.LogIndex < other.LogIndex
}

// MarshalArgs serializes the payload arguments.
func (e *Event) MarshalArgs() ([]byte, error) {
	return EncodeArgs(e.Payload.Fields())
}

// UnmarshalPayload restores a payload of the given kind from serialized args.
func UnmarshalPayload(kind Kind, data []byte) (Payload, error) {
	fields, err := DecodeArgs(data)
	if err != nil {
		return nil, err
	}

	return PayloadFromFields(kind, fields)
}

func (e *Event) String() string {
	return fmt.Sprintf("%s(id=%d block=%d tx=%d log=%d)",
		e.Kind(), e.ID, e.BlockNumber, e.TransactionIndex, e.LogIndex)
}

// DecodeError reports a log that does not match the interface of its event kind.
type DecodeError struct {
	Kind        Kind
	BlockNumber uint64
	TxHash      common.Hash
	LogIndex    uint
	Err         error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s log at block %d (tx %s, log %d): %v",
		e.Kind, e.BlockNumber, e.TxHash.Hex(), e.LogIndex, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
