package load

import (
	"math"
	"slices"
	"strings"

	"github.com/mkarlen/fairshare/types"
	"github.com/mkarlen/fairshare/weight"
)

// Aggregator computes load distributions from task and member snapshots.
type Aggregator struct {
	model *weight.Model
}

// NewAggregator creates an aggregator backed by the given weight model.
//
// Parameters:
//   - model: Weight model used to score tasks (nil uses a default model)
//
// Returns:
//   - *Aggregator: Initialized aggregator
func NewAggregator(model *weight.Model) *Aggregator {
	if model == nil {
		model = weight.NewModel()
	}

	return &Aggregator{model: model}
}

// Aggregate folds the task snapshot into per-member load profiles.
//
// The algorithm:
//  1. Filter tasks to the requested view: completed-in-window, or pending.
//  2. Group by assignee; unassigned tasks accumulate separately so the
//     household total remains auditable.
//  3. Compute integer percentages of the household total (all zero when
//     the total is zero).
//  4. Sort profiles by descending total weight, ties by ascending member ID.
//
// Each profile's LastCompletedAt reflects the member's most recent
// completion anywhere in the snapshot, independent of the view and window,
// so inactivity classification works from pending-view distributions too.
//
// Deactivated members are excluded entirely; their tasks count toward the
// unassigned remainder rather than a phantom profile.
//
// Parameters:
//   - tasks: Task snapshot
//   - members: Household members (inactive ones are ignored)
//   - window: Time window for the completed view
//   - view: ViewCompleted or ViewPending
//
// Returns:
//   - types.Distribution: Profiles in deterministic order plus unassigned load
//   - error: ErrInvalidWindow when the completed view gets a malformed window
func (a *Aggregator) Aggregate(tasks []types.Task, members []types.Member, window types.Window, view types.LoadView) (types.Distribution, error) {
	if view == types.ViewCompleted && !window.End.After(window.Start) {
		return types.Distribution{}, types.ErrInvalidWindow
	}

	active := types.ActiveMembers(members)
	known := make(map[string]bool, len(active))
	for _, m := range active {
		known[m.ID] = true
	}

	profiles := make(map[string]*types.LoadProfile, len(active))
	for _, m := range active {
		profiles[m.ID] = &types.LoadProfile{
			MemberID:   m.ID,
			ByCategory: make(map[types.Category]int),
		}
	}

	dist := types.Distribution{View: view, Window: window}

	for _, task := range tasks {
		// Completion recency feeds the inactivity classification, so it is
		// tracked from every completed task in the snapshot regardless of
		// the requested view or window.
		if task.CompletedAt != nil {
			if profile, ok := profiles[task.AssigneeID]; ok {
				if profile.LastCompletedAt == nil || task.CompletedAt.After(*profile.LastCompletedAt) {
					ts := *task.CompletedAt
					profile.LastCompletedAt = &ts
				}
			}
		}

		if !a.inView(task, window, view) {
			continue
		}

		points := a.model.Points(task)

		profile, ok := profiles[task.AssigneeID]
		if task.AssigneeID == "" || !ok || !known[task.AssigneeID] {
			dist.Unassigned.TotalWeight += points
			dist.Unassigned.TaskCount++

			continue
		}

		profile.TotalWeight += points
		profile.TaskCount++
		profile.ByCategory[task.NormalizedCategory()] += points
	}

	dist.Profiles = make([]types.LoadProfile, 0, len(profiles))
	householdTotal := 0
	for _, p := range profiles {
		householdTotal += p.TotalWeight
		dist.Profiles = append(dist.Profiles, *p)
	}

	for i := range dist.Profiles {
		dist.Profiles[i].Percentage = percentage(dist.Profiles[i].TotalWeight, householdTotal)
	}

	slices.SortFunc(dist.Profiles, func(p, q types.LoadProfile) int {
		if p.TotalWeight != q.TotalWeight {
			if p.TotalWeight > q.TotalWeight {
				return -1
			}

			return 1
		}

		return strings.Compare(p.MemberID, q.MemberID)
	})

	return dist, nil
}

// WeekLoads returns the current-week pending load per member, used by the
// availability cap check. The week window is caller-supplied so week
// boundary policy stays at the boundary.
//
// Parameters:
//   - tasks: Task snapshot
//   - week: The week window (pending tasks due inside it, or undated
//     pending tasks, count toward the load)
//
// Returns:
//   - map[string]int: Member ID to pending points this week
func (a *Aggregator) WeekLoads(tasks []types.Task, week types.Window) map[string]int {
	loads := make(map[string]int)
	for _, task := range tasks {
		if task.Completed() || task.AssigneeID == "" {
			continue
		}
		if task.DueDate != nil && !week.Contains(*task.DueDate) {
			continue
		}

		loads[task.AssigneeID] += a.model.Points(task)
	}

	return loads
}

func (a *Aggregator) inView(task types.Task, window types.Window, view types.LoadView) bool {
	switch view {
	case types.ViewCompleted:
		return task.CompletedAt != nil && window.Contains(*task.CompletedAt)
	case types.ViewPending:
		return task.Pending()
	default:
		return false
	}
}

// percentage rounds memberTotal's share of householdTotal to the nearest
// integer. Zero totals yield zero, never NaN.
func percentage(memberTotal, householdTotal int) int {
	if householdTotal == 0 {
		return 0
	}

	return int(math.Round(float64(memberTotal) / float64(householdTotal) * 100))
}
