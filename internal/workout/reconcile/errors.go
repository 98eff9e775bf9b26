package reconcile

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/2beens/fittrack/internal/workout/draft"
)

type FailedOperation struct {
	Op  Operation
	Err error
}

// PartialCommitError is returned when one or more remote operations of a
// commit failed. Operations that succeeded are not rolled back, so the remote
// store may reflect only part of the draft.
type PartialCommitError struct {
	Failed    []FailedOperation
	Succeeded []Operation
	Total     int

	// SessionID is the session the commit worked on, 0 if a new session
	// could not be created.
	SessionID int64
	// Created maps provisional identities to the remote ids created so far.
	Created map[draft.Identity]int64
}

func (e *PartialCommitError) Error() string {
	if len(e.Failed) == 1 {
		return fmt.Sprintf("commit: [%s] failed (%d/%d operations succeeded): %s",
			e.Failed[0].Op, len(e.Succeeded), e.Total, e.Failed[0].Err)
	}
	return fmt.Sprintf("commit: %d of %d operations failed", len(e.Failed), e.Total)
}

// Unwrap exposes the combined causes, so errors.Is and errors.As reach the
// transport or remote errors.
func (e *PartialCommitError) Unwrap() error {
	var combined error
	for _, f := range e.Failed {
		combined = multierr.Append(combined, f.Err)
	}
	return combined
}

// FailedOps returns the operations that did not succeed.
func (e *PartialCommitError) FailedOps() []Operation {
	ops := make([]Operation, 0, len(e.Failed))
	for _, f := range e.Failed {
		ops = append(ops, f.Op)
	}
	return ops
}
