// Package alert turns balance classifications into structured alerts and
// periodic household digests.
//
// Alerts are data, not prose: each carries a type, a severity, the
// affected members, a numeric evidence map, and a suggested-action
// template key. The notification layer renders locale-specific text from
// the evidence, so the same finding is testable independently of wording.
//
// Digests summarize completed work per member over a period and compare
// the period's imbalance ratio against the prior equal-length period to
// derive a trend.
package alert
