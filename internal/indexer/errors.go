package indexer

import (
	"errors"
	"fmt"

	"github.com/goran-ethernal/DomainIndexor/pkg/event"
)

// Phase names the step of the run loop that failed.
type Phase string

const (
	PhaseDrain   Phase = "drain"
	PhaseScan    Phase = "scan"
	PhasePersist Phase = "persist"
)

// UnrecoverableError is returned when the run loop must halt.
// The durable state is left as it was before the failing step.
type UnrecoverableError struct {
	Phase     Phase
	EventID   int64
	EventKind event.Kind
	FromBlock uint64
	ToBlock   uint64
	Err       error
}

func (e *UnrecoverableError) Error() string {
	if e.Phase == PhaseDrain {
		return fmt.Sprintf("%s failed for event %d (%s): %v", e.Phase, e.EventID, e.EventKind, e.Err)
	}
	return fmt.Sprintf("%s failed for blocks [%d, %d]: %v", e.Phase, e.FromBlock, e.ToBlock, e.Err)
}

func (e *UnrecoverableError) Unwrap() error {
	return e.Err
}

// LogFields returns the context of the failure as key/value pairs for structured logging.
func (e *UnrecoverableError) LogFields() []any {
	fields := []any{"phase", string(e.Phase), "error", e.Err}
	if e.Phase == PhaseDrain {
		return append(fields, "event_id", e.EventID, "event_kind", e.EventKind.String())
	}
	return append(fields, "from_block", e.FromBlock, "to_block", e.ToBlock)
}

// IsUnrecoverable reports whether err carries an UnrecoverableError.
func IsUnrecoverable(err error) bool {
	var target *UnrecoverableError
	return errors.As(err, &target)
}

func drainError(ev *event.Event, err error) error {
	e := &UnrecoverableError{Phase: PhaseDrain, Err: err}
	if ev != nil {
		e.EventID = ev.ID
		e.EventKind = ev.Kind()
		e.FromBlock = ev.BlockNumber
		e.ToBlock = ev.BlockNumber
	}
	UnrecoverableErrorInc(PhaseDrain)
	return e
}

func rangeError(phase Phase, from, to uint64, err error) error {
	UnrecoverableErrorInc(phase)
	return &UnrecoverableError{Phase: phase, FromBlock: from, ToBlock: to, Err: err}
}
