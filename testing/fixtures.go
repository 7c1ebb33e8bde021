package testing

import (
	"time"

	"github.com/mkarlen/fairshare/types"
)

// Household returns a canonical three-member household used across
// integration tests: alice prefers education, bob prefers logistics, and
// carol carries a weekly cap of 20 points.
//
// Returns:
//   - []types.Member: Fresh member slice, safe to mutate per test
func Household() []types.Member {
	return []types.Member{
		{
			ID:                  "alice",
			Name:                "Alice",
			PreferredCategories: []types.Category{types.CategoryEducation},
		},
		{
			ID:                  "bob",
			Name:                "Bob",
			PreferredCategories: []types.Category{types.CategoryLogistics},
			BlockedCategories:   []types.Category{types.CategoryHealth},
		},
		{
			ID:            "carol",
			Name:          "Carol",
			MaxWeeklyLoad: 20,
		},
	}
}

// FlatTask builds a pending task with a flat weight.
//
// Parameters:
//   - id: Task ID
//   - category: Task category
//   - flat: Flat weight in [1,5]
//   - assignee: Assignee member ID ("" = unassigned)
//
// Returns:
//   - types.Task: The task fixture
func FlatTask(id string, category types.Category, flat int, assignee string) types.Task {
	return types.Task{
		ID:         id,
		Title:      id,
		Category:   category,
		Recurrence: types.RecurrenceWeekly,
		Weight:     types.Weight{Flat: flat},
		AssigneeID: assignee,
	}
}

// CompletedTask builds a completed task with a flat weight.
//
// Parameters:
//   - id: Task ID
//   - category: Task category
//   - flat: Flat weight in [1,5]
//   - assignee: Member who completed the task
//   - completedAt: Completion timestamp
//
// Returns:
//   - types.Task: The task fixture
func CompletedTask(id string, category types.Category, flat int, assignee string, completedAt time.Time) types.Task {
	task := FlatTask(id, category, flat, assignee)
	task.CompletedAt = &completedAt

	return task
}

// Week returns the window covering the seven days starting at the given
// date (midnight UTC), matching how weekly load caps are evaluated.
//
// Parameters:
//   - year, month, day: The window's first day
//
// Returns:
//   - types.Window: [start, start+7d)
func Week(year int, month time.Month, day int) types.Window {
	start := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return types.Window{Start: start, End: start.AddDate(0, 0, 7)}
}
