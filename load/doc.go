// Package load folds weighted tasks into per-member load profiles.
//
// An aggregation covers exactly one view: completed tasks inside a window
// (historical load) or tasks still pending (current load). The two views
// are never mixed in one call; the caller picks.
//
// Output ordering is deterministic: profiles sort by descending total
// weight with ties broken by ascending member ID, so repeated runs over
// the same snapshot produce identical results.
package load
