package strategy

import (
	"slices"
	"strings"

	"github.com/mkarlen/fairshare/types"
)

// RoundRobin implements simple per-category rotation.
type RoundRobin struct{}

var _ types.AssignmentStrategy = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin strategy.
//
// The strategy hands each category to the member after the last assignee
// in member-ID order, ignoring load entirely. This gives a predictable
// spread but no load fairness; prefer LeastLoaded unless fairness is
// handled elsewhere.
//
// Returns:
//   - *RoundRobin: Initialized round-robin strategy
//
// Example:
//
//	st := strategy.NewRoundRobin()
//	engine, err := fairshare.NewEngine(&cfg, fairshare.WithStrategy(st))
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// SelectAssignee rotates through candidates in member-ID order.
//
// The algorithm:
//  1. Sort candidate IDs ascending for deterministic rotation
//  2. Pick the first ID after lastAssignee, wrapping around
//  3. When lastAssignee is unknown or absent, pick the first ID
//
// Parameters:
//   - task: Task being assigned (only used for the category, which the
//     caller already keyed lastAssignee by)
//   - candidates: Eligible members
//   - lastAssignee: Member last assigned in this category ("" if none)
//
// Returns:
//   - string: Selected member ID
//   - error: ErrNoEligibleMembers when candidates is empty
func (rr *RoundRobin) SelectAssignee(_ types.Task, candidates []types.Candidate, lastAssignee string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoEligibleMembers
	}

	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.Member.ID)
	}
	slices.Sort(ids)

	if lastAssignee == "" {
		return ids[0], nil
	}

	// First ID strictly after the last assignee, wrapping to the start.
	idx, _ := slices.BinarySearchFunc(ids, lastAssignee, strings.Compare)
	if idx < len(ids) && ids[idx] == lastAssignee {
		idx++
	}
	if idx >= len(ids) {
		idx = 0
	}

	return ids[idx], nil
}
