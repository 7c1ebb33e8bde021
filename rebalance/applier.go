package rebalance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mkarlen/fairshare/availability"
	"github.com/mkarlen/fairshare/internal/logging"
	"github.com/mkarlen/fairshare/internal/metrics"
	"github.com/mkarlen/fairshare/types"
	"github.com/mkarlen/fairshare/weight"
)

// Applier commits confirmed rebalance suggestions.
//
// Applying is the engine's only write path: the task's assignee changes
// through the AssignmentSink (compare-and-swap on the expected current
// assignee) and an audit record is appended. Everything is re-validated
// against live state first; a suggestion computed from a stale snapshot
// is refused with a typed reason rather than silently overwriting.
type Applier struct {
	sink    types.AssignmentSink
	audit   types.AuditStore
	model   *weight.Model
	logger  types.Logger
	metrics types.RebalanceMetrics
	now     func() time.Time
}

// ApplierOption configures an Applier.
type ApplierOption func(*Applier)

// WithApplierLogger sets the logger for apply tracing.
func WithApplierLogger(logger types.Logger) ApplierOption {
	return func(a *Applier) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithApplierMetrics sets the metrics collector for apply outcomes.
func WithApplierMetrics(m types.RebalanceMetrics) ApplierOption {
	return func(a *Applier) {
		if m != nil {
			a.metrics = m
		}
	}
}

// WithApplierModel overrides the weight model used for the target's
// capacity re-check.
func WithApplierModel(model *weight.Model) ApplierOption {
	return func(a *Applier) {
		if model != nil {
			a.model = model
		}
	}
}

// withApplierClock fixes the audit timestamp source. Test hook.
func withApplierClock(now func() time.Time) ApplierOption {
	return func(a *Applier) {
		a.now = now
	}
}

// NewApplier creates an applier.
//
// Parameters:
//   - sink: Assignment sink the reassignment is written through
//   - audit: Store receiving the audit record
//   - opts: Optional configuration
//
// Returns:
//   - *Applier: Initialized applier
func NewApplier(sink types.AssignmentSink, audit types.AuditStore, opts ...ApplierOption) *Applier {
	a := &Applier{
		sink:    sink,
		audit:   audit,
		model:   weight.NewModel(),
		logger:  logging.NewNop(),
		metrics: metrics.NewNop(),
		now:     time.Now,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	return a
}

// Apply commits one suggestion after re-validating it against live state.
//
// Validation order:
//  1. The task must still exist (ErrTaskNotFound surfaces as an error).
//  2. A completed task refuses with RejectTaskCompleted.
//  3. An assignee differing from the suggestion's source refuses with
//     RejectTaskReassigned.
//  4. The target member must still be eligible for the task, including
//     the weekly capacity check against the supplied week loads;
//     otherwise RejectTargetIneligible.
//
// The reassignment itself is compare-and-swap: losing to a concurrent
// writer between validation and commit also refuses with
// RejectTaskReassigned. Refusals are outcomes, not errors; the error
// return carries lookups and transport failures only.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//   - suggestion: Confirmed suggestion to commit
//   - members: Current household members (target is looked up here)
//   - weekLoads: Current-week load per member ID for the capacity check
//   - actorID: Who confirmed the suggestion, recorded in the audit entry
//
// Returns:
//   - types.ApplyResult: Applied flag, refusal reason, and audit record
//   - error: Lookup, sink, or audit store failure
func (a *Applier) Apply(
	ctx context.Context,
	suggestion types.RebalanceSuggestion,
	members []types.Member,
	weekLoads map[string]int,
	actorID string,
) (types.ApplyResult, error) {
	task, err := a.sink.Lookup(ctx, suggestion.TaskID)
	if err != nil {
		return types.ApplyResult{}, fmt.Errorf("lookup task %s: %w", suggestion.TaskID, err)
	}

	if task.Completed() {
		return a.reject(suggestion, types.RejectTaskCompleted), nil
	}

	if task.AssigneeID != suggestion.FromMemberID {
		return a.reject(suggestion, types.RejectTaskReassigned), nil
	}

	target, ok := findMember(members, suggestion.ToMemberID)
	points := a.model.Points(task)
	if !ok || !availability.IsEligible(target, task, assignmentDate(task, a.now()), points, weekLoads[target.ID]) {
		return a.reject(suggestion, types.RejectTargetIneligible), nil
	}

	err = a.sink.Reassign(ctx, suggestion.TaskID, suggestion.FromMemberID, suggestion.ToMemberID)
	if errors.Is(err, types.ErrTaskReassigned) {
		return a.reject(suggestion, types.RejectTaskReassigned), nil
	}
	if err != nil {
		return types.ApplyResult{}, fmt.Errorf("reassign task %s: %w", suggestion.TaskID, err)
	}

	record := types.AuditRecord{
		ID:               uuid.NewString(),
		TaskID:           suggestion.TaskID,
		PreviousAssignee: suggestion.FromMemberID,
		NewAssignee:      suggestion.ToMemberID,
		Reason: fmt.Sprintf("rebalance: imbalance ratio %.2f, projected %.2f",
			suggestion.SnapshotRatio, suggestion.ProjectedRatio),
		ActorID:   actorID,
		Timestamp: a.now(),
	}

	if err := a.audit.Append(ctx, record); err != nil {
		// The reassignment already committed; the result reports it even
		// though the audit write failed.
		a.logger.Error("audit append failed after committed reassignment",
			"task_id", suggestion.TaskID, "audit_id", record.ID, "error", err)

		return types.ApplyResult{Applied: true, Audit: &record},
			fmt.Errorf("append audit record: %w", err)
	}

	a.logger.Info("rebalance suggestion applied",
		"task_id", suggestion.TaskID,
		"from", suggestion.FromMemberID,
		"to", suggestion.ToMemberID,
		"actor_id", actorID,
	)
	a.metrics.RecordApplyResult(true, types.RejectNone)

	return types.ApplyResult{Applied: true, Audit: &record}, nil
}

func (a *Applier) reject(suggestion types.RebalanceSuggestion, reason types.RejectReason) types.ApplyResult {
	a.logger.Info("rebalance suggestion refused",
		"task_id", suggestion.TaskID,
		"from", suggestion.FromMemberID,
		"to", suggestion.ToMemberID,
		"reason", string(reason),
	)
	a.metrics.RecordApplyResult(false, reason)

	return types.ApplyResult{Applied: false, Reason: reason}
}

func findMember(members []types.Member, id string) (types.Member, bool) {
	for _, m := range members {
		if m.ID == id {
			return m, true
		}
	}

	return types.Member{}, false
}
