// Package types provides core type definitions and interfaces for the fairshare library.
//
// This package contains shared types that are used across multiple packages in the
// fairshare library. By keeping these types in a separate package, we avoid import
// cycles between the main fairshare package and its internal implementations.
//
// Key types:
//   - Task, Member, ExclusionPeriod: household snapshot inputs
//   - LoadProfile, Distribution, BalanceState: derived load views
//   - RebalanceSuggestion, ApplyResult, AuditRecord: rebalancing outputs
//   - Alert, Digest: notification payloads
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
