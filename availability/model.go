package availability

import (
	"math"
	"time"

	"github.com/mkarlen/fairshare/types"
)

// Unlimited is returned by RemainingWeeklyCapacity for members without a
// weekly cap.
const Unlimited = math.MaxInt

// IsEligible reports whether the member may receive the task on the date.
//
// The checks, in order:
//  1. Deactivated members are never eligible.
//  2. The task's category must not be in the member's blocked set. Block
//     wins over preference when data lists a category in both.
//  3. The date must not fall inside any exclusion period (both endpoints
//     inclusive; overlapping periods are idempotent).
//  4. Adding taskPoints to currentWeekLoad must not exceed the member's
//     weekly cap strictly (exactly reaching the cap is allowed). The
//     unlimited sentinel never triggers this check.
//
// Parameters:
//   - member: Candidate member
//   - task: Task to place
//   - date: Assignment date (the task's due date, or "today" if undated)
//   - taskPoints: The task's weight in points
//   - currentWeekLoad: The member's load already accrued this week
//
// Returns:
//   - bool: true when every check passes
func IsEligible(member types.Member, task types.Task, date time.Time, taskPoints, currentWeekLoad int) bool {
	if member.Inactive {
		return false
	}

	if member.Blocks(task.NormalizedCategory()) {
		return false
	}

	if member.ExcludedOn(date) {
		return false
	}

	if member.MaxWeeklyLoad > types.UnlimitedWeeklyLoad {
		if currentWeekLoad+taskPoints > member.MaxWeeklyLoad {
			return false
		}
	}

	return true
}

// RemainingWeeklyCapacity returns how many points the member can still
// take this week.
//
// Parameters:
//   - member: Member to check
//   - currentWeekLoad: The member's load already accrued this week
//
// Returns:
//   - int: Remaining points (never negative), or Unlimited for members
//     without a cap
func RemainingWeeklyCapacity(member types.Member, currentWeekLoad int) int {
	if member.MaxWeeklyLoad <= types.UnlimitedWeeklyLoad {
		return Unlimited
	}

	remaining := member.MaxWeeklyLoad - currentWeekLoad
	if remaining < 0 {
		return 0
	}

	return remaining
}

// EligibleMembers filters members down to those eligible for the task,
// preserving input order.
//
// Parameters:
//   - members: Candidate members
//   - task: Task to place
//   - date: Assignment date
//   - taskPoints: The task's weight in points
//   - weekLoads: Current-week load per member ID (missing entries read 0)
//
// Returns:
//   - []types.Member: Eligible members in input order
func EligibleMembers(members []types.Member, task types.Task, date time.Time, taskPoints int, weekLoads map[string]int) []types.Member {
	eligible := make([]types.Member, 0, len(members))
	for _, m := range members {
		if IsEligible(m, task, date, taskPoints, weekLoads[m.ID]) {
			eligible = append(eligible, m)
		}
	}

	return eligible
}
