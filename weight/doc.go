// Package weight maps task attributes to comparable effort scores.
//
// The model is pure: given the same task and reference date it always
// produces the same score, and it never mutates the task.
//
// Two weight representations are supported and reconciled onto one point
// scale. A four-dimension breakdown scores as the sum of its clamped
// dimensions (range 4-20). A flat scalar in [1,5] scores as the scalar
// times FlatEquivalenceFactor, so flat 2 lines up with a breakdown
// summing to 8.
//
// Urgency (critical flag, overdue due date) only influences ranking
// weight, never the stored score.
package weight
