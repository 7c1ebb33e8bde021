// Package strategy provides built-in assignment strategy implementations.
//
// Assignment strategies determine which eligible member receives a task.
// The package includes two built-in strategies:
//
//   - LeastLoaded: Load-aware scoring with preference bonus and rotation
//     penalty (recommended, and the engine default)
//   - RoundRobin: Pure per-category rotation, ignoring load
//
// # Strategy Selection Guide
//
// LeastLoaded:
//   - Use for fair long-run load distribution
//   - Scores each candidate as currentLoad - preferenceBonus + rotationPenalty
//   - Preference bonus favors members who like the task's category
//   - Rotation penalty keeps one member from becoming the permanent
//     default for a category when loads are nominally equal
//   - Configuration: preference bonus, rotation penalty
//
// RoundRobin:
//   - Use when load fairness is handled elsewhere and only spread matters
//   - Hands each category to the next member after the last assignee
//   - No configuration
//
// Both strategies are deterministic: identical inputs always produce the
// identical pick, with ties broken by ascending member ID.
//
// Custom strategies can be implemented by satisfying the
// types.AssignmentStrategy interface.
package strategy
