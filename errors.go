package fairshare

import "github.com/mkarlen/fairshare/types"

// Sentinel errors returned by the Engine.
//
// These are aliases for the sentinels in the types subpackage, re-exported so
// callers can match them with errors.Is without importing types directly.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrSinkRequired is returned when ApplySuggestion is called on an
	// engine configured without an assignment sink.
	ErrSinkRequired = types.ErrSinkRequired

	// ErrInvalidWindow is returned when a window's end is not after its start.
	ErrInvalidWindow = types.ErrInvalidWindow

	// ErrNoEligibleMembers is returned when no member qualifies for a task.
	// This is a first-class outcome: surface it as "assign manually".
	ErrNoEligibleMembers = types.ErrNoEligibleMembers

	// ErrTaskNotFound is returned when the sink has no record of a task.
	ErrTaskNotFound = types.ErrTaskNotFound

	// ErrTaskReassigned is returned when a compare-and-swap reassignment
	// loses to a concurrent writer.
	ErrTaskReassigned = types.ErrTaskReassigned
)
