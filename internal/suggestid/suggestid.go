// Package suggestid derives stable identifiers for rebalance suggestions.
//
// A suggestion's identity is the move it proposes: the same task moved
// between the same pair of members always hashes to the same ID, so
// repeated suggestion runs over an unchanged household produce the same
// IDs and downstream consumers can deduplicate.
package suggestid

import (
	"fmt"

	"github.com/zeebo/xxh3"
)

// separator keeps distinct field tuples from colliding when fields share
// prefixes (e.g. task "a" + member "bc" vs task "ab" + member "c").
// NUL cannot appear in task or member IDs.
const separator = "\x00"

// For generates the stable ID for a proposed move.
//
// Parameters:
//   - taskID: Task being moved
//   - fromMemberID: Current assignee (empty for unassigned tasks)
//   - toMemberID: Proposed new assignee
//
// Returns:
//   - string: 16 hex character identifier, stable across runs and processes
func For(taskID, fromMemberID, toMemberID string) string {
	h := xxh3.HashString(taskID + separator + fromMemberID + separator + toMemberID)
	return fmt.Sprintf("%016x", h)
}
