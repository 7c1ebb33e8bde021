// Package rebalance proposes and applies task reassignments that reduce
// the household imbalance ratio.
//
// The package splits the flow in two:
//
//   - Suggester computes a list of proposed moves from an input snapshot.
//     Suggestions are pure output: nothing is written, and the same
//     snapshot always yields the same list.
//   - Applier commits one confirmed suggestion. It re-validates against
//     live task state, performs the reassignment through the
//     AssignmentSink (compare-and-swap on the current assignee), and
//     records an audit entry.
//
// The suggester is greedy: each round it finds the most-loaded member,
// walks that member's pending tasks from lightest to heaviest, and picks
// the move that most reduces the projected ratio without pushing any
// other member into overload. It stops at the suggestion budget, when the
// household reaches the balanced threshold, or when no improving move
// remains.
//
// Example:
//
//	suggester := rebalance.NewSuggester(nil, balance.Thresholds{})
//	suggestions := suggester.Suggest(tasks, members, dist.Profiles, time.Now(), 3)
//
//	applier := rebalance.NewApplier(sink, auditStore)
//	result, err := applier.Apply(ctx, suggestions[0], members, weekLoads, "parent-1")
package rebalance
