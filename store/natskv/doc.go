// Package natskv backs the engine's persistence interfaces with NATS
// JetStream KeyValue buckets.
//
// Three stores map onto three buckets:
//
//   - Tasks implements the AssignmentSink. Each task is one JSON value
//     keyed by task ID; Reassign is compare-and-swap on the entry
//     revision, so a concurrent conflicting reassignment surfaces as
//     types.ErrTaskReassigned instead of silently winning.
//   - Audit appends one immutable JSON record per applied reassignment.
//   - Rotation keeps the last assignee per category. Retention is the
//     bucket's concern: configure a TTL on the bucket to expire rotation
//     memory.
//
// Buckets are created or opened through kvutil.EnsureBucket; see the
// Config bucket names at the library root.
package natskv
