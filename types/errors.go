package types

import "errors"

// Sentinel errors for the fairshare library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap external errors with context using fmt.Errorf("%s: %w", msg, err).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (Engine, Optimizer, Applier)
//   - Use consistent messages across similar error types

// Engine errors - Public API errors returned by the Engine facade.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSinkRequired is returned when an operation needs an assignment
	// sink and none was configured.
	ErrSinkRequired = errors.New("assignment sink is required")

	// ErrInvalidWindow is returned when a window's end is not after its start.
	ErrInvalidWindow = errors.New("window end must be after start")
)

// Optimizer errors - Assignment selection errors.
var (
	// ErrNoEligibleMembers is returned when no member qualifies for a
	// task. This is a first-class outcome, not a failure: callers surface
	// it as "no available member, assign manually".
	ErrNoEligibleMembers = errors.New("no eligible members for task")
)

// Applier errors - Suggestion application errors.
var (
	// ErrTaskNotFound is returned when the sink has no record of the task.
	ErrTaskNotFound = errors.New("task not found")

	// ErrTaskReassigned is returned when a compare-and-swap reassignment
	// loses to a concurrent writer.
	ErrTaskReassigned = errors.New("task assignee changed concurrently")
)
