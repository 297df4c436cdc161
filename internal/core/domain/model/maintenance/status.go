package maintenance

import (
	"fmt"

	"fleet/internal/pkg/errs"
)

// Status represents the lifecycle state of a maintenance record.
//
// State transitions:
//
//	InProgress ──(order parts)──> WaitingForParts ──(order parts)──> WaitingForParts
//	InProgress ──(complete)──> Completed
//	WaitingForParts ──(complete)──> Completed
//
// Completed is terminal: ordering parts against a completed record leaves the
// status untouched, and completing twice is a no-op.
//
// The integer values are a wire contract shared with the orchestrator's own
// lookup tables and must never be renumbered.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = 0

	// InProgress is the initial status when maintenance starts.
	InProgress Status = 1

	// WaitingForParts indicates at least one part order is outstanding.
	WaitingForParts Status = 2

	// Completed is the terminal status once maintenance is closed out.
	Completed Status = 3
)

// Validate checks if the Status value is one of the defined codes.
func (s Status) Validate() error {
	switch s {
	case InProgress, WaitingForParts, Completed:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case WaitingForParts:
		return "WaitingForParts"
	case Completed:
		return "Completed"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further transition leaves this status.
func (s Status) IsTerminal() bool {
	return s == Completed
}

// RequestParts returns the status after a part order is placed. Open records
// move to (or stay in) WaitingForParts; a completed record is never revived.
func (s Status) RequestParts() Status {
	if s == Completed {
		return Completed
	}
	return WaitingForParts
}

// Complete returns the terminal Completed status. Completing an already
// completed record is a harmless no-op.
func (s Status) Complete() Status {
	return Completed
}
