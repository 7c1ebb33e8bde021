package types

import (
	"context"
	"time"
)

// RebalanceSuggestion is a proposed, not-yet-applied task reassignment
// intended to reduce the household imbalance ratio.
//
// Suggestions are transient: they only materialize into a persisted
// reassignment when explicitly applied, and the applier re-validates
// against live state at that moment.
type RebalanceSuggestion struct {
	// ID is a stable content-derived identifier (same task/source/target
	// always hashes to the same ID, so recomputed lists are idempotent).
	ID string `json:"id"`

	// TaskID is the task proposed to move.
	TaskID string `json:"taskId"`

	// FromMemberID is the current assignee.
	FromMemberID string `json:"fromMemberId"`

	// ToMemberID is the proposed assignee.
	ToMemberID string `json:"toMemberId"`

	// WeightDelta is the load (points) that would move with the task.
	WeightDelta int `json:"weightDelta"`

	// ProjectedRatio is the household imbalance ratio if the move were
	// applied to the snapshot the suggestion was computed from.
	ProjectedRatio float64 `json:"projectedRatio"`

	// SnapshotRatio is the imbalance ratio of that snapshot, kept for
	// explaining the suggestion to users.
	SnapshotRatio float64 `json:"snapshotRatio"`
}

// RejectReason is the typed explanation for a refused apply operation.
type RejectReason string

// Apply rejection reasons.
const (
	// RejectNone means the suggestion was applied.
	RejectNone RejectReason = ""

	// RejectTaskCompleted means the task was completed after the
	// suggestion was computed.
	RejectTaskCompleted RejectReason = "task already completed"

	// RejectTaskReassigned means the task's assignee changed after the
	// suggestion was computed.
	RejectTaskReassigned RejectReason = "task already reassigned"

	// RejectTargetIneligible means the proposed assignee is no longer
	// eligible for the task.
	RejectTargetIneligible RejectReason = "target no longer eligible"
)

// ApplyResult reports the outcome of applying a suggestion.
type ApplyResult struct {
	// Applied is true when the reassignment was committed.
	Applied bool `json:"applied"`

	// Reason explains a refusal. RejectNone when Applied is true.
	Reason RejectReason `json:"reason,omitempty"`

	// Audit is the recorded audit entry. Nil when the apply was refused.
	Audit *AuditRecord `json:"audit,omitempty"`
}

// AuditRecord is the durable trace of one applied reassignment.
type AuditRecord struct {
	// ID uniquely identifies the audit entry.
	ID string `json:"id"`

	// TaskID is the reassigned task.
	TaskID string `json:"taskId"`

	// PreviousAssignee is the member the task was taken from.
	PreviousAssignee string `json:"previousAssignee"`

	// NewAssignee is the member the task was given to.
	NewAssignee string `json:"newAssignee"`

	// Reason describes why the reassignment happened.
	Reason string `json:"reason"`

	// ActorID identifies who confirmed the suggestion.
	ActorID string `json:"actorId"`

	// Timestamp records when the reassignment was committed.
	Timestamp time.Time `json:"timestamp"`
}

// AssignmentSink persists reassignment decisions. It is the engine's only
// write path for task state.
//
// Implementations must make Reassign atomic: the assignee change either
// fully commits or leaves the task untouched, and a concurrent conflicting
// reassignment must surface as ErrTaskReassigned rather than silently win.
type AssignmentSink interface {
	// Lookup returns the current task record.
	//
	// Parameters:
	//   - ctx: Context for timeout/cancellation
	//   - taskID: Task to fetch
	//
	// Returns:
	//   - Task: Current task state
	//   - error: ErrTaskNotFound when the task does not exist
	Lookup(ctx context.Context, taskID string) (Task, error)

	// Reassign atomically moves the task from one assignee to another.
	// The move fails with ErrTaskReassigned when the task's current
	// assignee is no longer fromMember (compare-and-swap semantics).
	//
	// Parameters:
	//   - ctx: Context for timeout/cancellation
	//   - taskID: Task to reassign
	//   - fromMember: Expected current assignee
	//   - toMember: New assignee
	//
	// Returns:
	//   - error: ErrTaskNotFound, ErrTaskReassigned, or a transport error
	Reassign(ctx context.Context, taskID, fromMember, toMember string) error
}

// AuditStore persists audit records for applied reassignments.
type AuditStore interface {
	// Append stores one audit record.
	Append(ctx context.Context, record AuditRecord) error

	// List returns all stored records ordered by timestamp ascending.
	List(ctx context.Context) ([]AuditRecord, error)
}

// RotationStore remembers which member most recently received a task in
// each category, preventing one member from becoming the permanent
// default for a category.
//
// The engine supplies no built-in expiry; retention is a store concern
// (for example a KV bucket TTL).
type RotationStore interface {
	// LastAssignee returns the member last assigned a task in the
	// category ("" when no assignment is on record).
	LastAssignee(ctx context.Context, category Category) (string, error)

	// RecordAssignment remembers the member as last assigned for the
	// category.
	RecordAssignment(ctx context.Context, category Category, memberID string) error
}

// AssignmentStrategy selects the best member for a task from a set of
// eligible candidates.
//
// Implementations must be deterministic: identical inputs always produce
// the identical pick (ties broken by ascending member ID).
type AssignmentStrategy interface {
	// SelectAssignee picks a member from the candidate list.
	//
	// Parameters:
	//   - task: Task being assigned
	//   - candidates: Eligible members with their current load points
	//   - lastAssignee: Member last assigned a task in this category
	//     ("" when unknown)
	//
	// Returns:
	//   - string: Selected member ID
	//   - error: ErrNoEligibleMembers when candidates is empty
	SelectAssignee(task Task, candidates []Candidate, lastAssignee string) (string, error)
}

// Candidate pairs an eligible member with the load the strategy should
// score against.
type Candidate struct {
	// Member is the eligible member.
	Member Member

	// CurrentLoad is the member's load in points from the caller's
	// snapshot.
	CurrentLoad int
}
