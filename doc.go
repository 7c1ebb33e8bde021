// Package fairshare provides a Go library for measuring, classifying, and
// rebalancing household chore load across members.
//
// Fairshare turns a snapshot of household tasks into per-member load
// profiles, classifies how evenly the load is distributed, selects the
// fairest assignee for new tasks, and proposes concrete task moves that
// reduce imbalance. Moves are never applied silently: suggestions only
// commit through an explicit, audited apply step.
//
// # Quick Start
//
// Basic usage with default settings:
//
//	import "github.com/mkarlen/fairshare"
//
//	cfg := fairshare.DefaultConfig()
//	cfg.HouseholdID = "hh-42"
//
//	engine, err := fairshare.NewEngine(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	dist, state, err := engine.ComputeLoadDistribution(tasks, members, window, fairshare.ViewCompleted)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	suggestions := engine.SuggestRebalance(tasks, members, dist.Profiles, window.End, 0)
//
// # Key Features
//
//   - Dual Weight Model: Flat 1-5 weights and four-dimension breakdowns
//     (mental/time/emotional/physical) on one comparable point scale
//   - Balance Classification: Imbalance ratio with balanced/warning/critical
//     bands plus per-member overload and inactivity detection
//   - Fair Assignment: Least-loaded selection with category preference bonus
//     and rotation penalty, honoring exclusions and weekly caps
//   - Suggested Rebalancing: Deterministic greedy move proposals with
//     projected ratios, applied only after explicit confirmation (CAS-safe)
//   - Alerts and Digests: Structured, renderer-agnostic alerts and period
//     summaries, optionally published over NATS
//
// # Architecture
//
// Data flows through the engine in one direction:
//
//	tasks → aggregate → classify → suggest → (confirm) → apply → audit
//
// The engine holds no task state of its own. Callers pass snapshots; the
// only write path is the AssignmentSink, and every committed reassignment
// leaves an audit record.
//
// # Advanced Usage
//
// Custom strategy and KV-backed persistence:
//
//	import (
//	    "github.com/mkarlen/fairshare"
//	    "github.com/mkarlen/fairshare/store/natskv"
//	    "github.com/mkarlen/fairshare/strategy"
//	)
//
//	tasksKV := natskv.NewTasks(kv)
//
//	engine, err := fairshare.NewEngine(&cfg,
//	    fairshare.WithStrategy(strategy.NewRoundRobin()),
//	    fairshare.WithSink(tasksKV),
//	    fairshare.WithAuditStore(natskv.NewAudit(auditKV)),
//	)
//
// See the examples/ directory for complete working examples.
package fairshare
