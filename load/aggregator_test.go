package load

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mkarlen/fairshare/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func julyWindow() types.Window {
	return types.Window{Start: date(2025, time.July, 1), End: date(2025, time.August, 1)}
}

func completedTask(id, assignee string, flat int, done time.Time) types.Task {
	return types.Task{
		ID:          id,
		AssigneeID:  assignee,
		Weight:      types.Weight{Flat: flat},
		CompletedAt: &done,
		Category:    types.CategoryDaily,
	}
}

func pendingTask(id, assignee string, flat int) types.Task {
	return types.Task{
		ID:         id,
		AssigneeID: assignee,
		Weight:     types.Weight{Flat: flat},
		Category:   types.CategoryDaily,
	}
}

func TestAggregator_Aggregate(t *testing.T) {
	agg := NewAggregator(nil)
	members := []types.Member{{ID: "alice"}, {ID: "bob"}}

	t.Run("groups completed tasks by assignee within window", func(t *testing.T) {
		tasks := []types.Task{
			completedTask("t1", "alice", 2, date(2025, time.July, 5)),
			completedTask("t2", "alice", 1, date(2025, time.July, 10)),
			completedTask("t3", "bob", 3, date(2025, time.July, 12)),
			completedTask("t4", "alice", 5, date(2025, time.June, 20)), // outside window
		}

		dist, err := agg.Aggregate(tasks, members, julyWindow(), types.ViewCompleted)

		require.NoError(t, err)
		require.Len(t, dist.Profiles, 2)

		// alice: 2*4 + 1*4 = 12, bob: 3*4 = 12. Tie broken by member ID ascending.
		require.Equal(t, "alice", dist.Profiles[0].MemberID)
		require.Equal(t, 12, dist.Profiles[0].TotalWeight)
		require.Equal(t, 2, dist.Profiles[0].TaskCount)
		require.Equal(t, "bob", dist.Profiles[1].MemberID)
		require.Equal(t, 12, dist.Profiles[1].TotalWeight)
	})

	t.Run("pending view ignores the window and completed tasks", func(t *testing.T) {
		tasks := []types.Task{
			pendingTask("t1", "alice", 2),
			completedTask("t2", "alice", 5, date(2025, time.July, 5)),
		}

		dist, err := agg.Aggregate(tasks, members, types.Window{}, types.ViewPending)

		require.NoError(t, err)
		alice, ok := dist.Profile("alice")
		require.True(t, ok)
		require.Equal(t, 8, alice.TotalWeight)
		require.Equal(t, 1, alice.TaskCount)
	})

	t.Run("unassigned tasks are reported separately", func(t *testing.T) {
		tasks := []types.Task{
			pendingTask("t1", "alice", 2),
			pendingTask("t2", "", 3),
		}

		dist, err := agg.Aggregate(tasks, members, types.Window{}, types.ViewPending)

		require.NoError(t, err)
		require.Equal(t, 12, dist.Unassigned.TotalWeight)
		require.Equal(t, 1, dist.Unassigned.TaskCount)
		require.Equal(t, 8, dist.HouseholdTotal())
	})

	t.Run("tasks of deactivated members count as unassigned", func(t *testing.T) {
		withInactive := []types.Member{{ID: "alice"}, {ID: "bob", Inactive: true}}
		tasks := []types.Task{pendingTask("t1", "bob", 2)}

		dist, err := agg.Aggregate(tasks, withInactive, types.Window{}, types.ViewPending)

		require.NoError(t, err)
		require.Len(t, dist.Profiles, 1)
		require.Equal(t, 8, dist.Unassigned.TotalWeight)
	})

	t.Run("percentages sum to about one hundred", func(t *testing.T) {
		three := []types.Member{{ID: "alice"}, {ID: "bob"}, {ID: "carol"}}
		tasks := []types.Task{
			pendingTask("t1", "alice", 1),
			pendingTask("t2", "bob", 1),
			pendingTask("t3", "carol", 1),
		}

		dist, err := agg.Aggregate(tasks, three, types.Window{}, types.ViewPending)

		require.NoError(t, err)
		sum := 0
		for _, p := range dist.Profiles {
			sum += p.Percentage
		}
		require.InDelta(t, 100, sum, 1)
	})

	t.Run("zero load yields zero percentages not NaN", func(t *testing.T) {
		dist, err := agg.Aggregate(nil, members, types.Window{}, types.ViewPending)

		require.NoError(t, err)
		for _, p := range dist.Profiles {
			require.Zero(t, p.Percentage)
			require.Zero(t, p.TotalWeight)
		}
	})

	t.Run("ordering is deterministic across runs", func(t *testing.T) {
		tasks := []types.Task{
			pendingTask("t1", "bob", 3),
			pendingTask("t2", "alice", 1),
		}

		first, err := agg.Aggregate(tasks, members, types.Window{}, types.ViewPending)
		require.NoError(t, err)
		second, err := agg.Aggregate(tasks, members, types.Window{}, types.ViewPending)
		require.NoError(t, err)

		require.Equal(t, first, second)
		require.Equal(t, "bob", first.Profiles[0].MemberID)
	})

	t.Run("completed view rejects malformed window", func(t *testing.T) {
		_, err := agg.Aggregate(nil, members, types.Window{}, types.ViewCompleted)

		require.ErrorIs(t, err, types.ErrInvalidWindow)
	})

	t.Run("records most recent completion per member", func(t *testing.T) {
		tasks := []types.Task{
			completedTask("t1", "alice", 1, date(2025, time.July, 3)),
			completedTask("t2", "alice", 1, date(2025, time.July, 20)),
		}

		dist, err := agg.Aggregate(tasks, members, julyWindow(), types.ViewCompleted)

		require.NoError(t, err)
		alice, _ := dist.Profile("alice")
		require.NotNil(t, alice.LastCompletedAt)
		require.Equal(t, date(2025, time.July, 20), *alice.LastCompletedAt)
	})

	t.Run("pending view still records completion recency", func(t *testing.T) {
		tasks := []types.Task{
			pendingTask("t1", "alice", 2),
			completedTask("t2", "alice", 1, date(2025, time.July, 10)),
		}

		dist, err := agg.Aggregate(tasks, members, types.Window{}, types.ViewPending)

		require.NoError(t, err)
		alice, _ := dist.Profile("alice")
		require.Equal(t, 8, alice.TotalWeight) // completed task excluded from load
		require.NotNil(t, alice.LastCompletedAt)
		require.Equal(t, date(2025, time.July, 10), *alice.LastCompletedAt)
	})

	t.Run("completions outside the window still count for recency", func(t *testing.T) {
		tasks := []types.Task{
			completedTask("t1", "alice", 2, date(2025, time.June, 20)),
		}

		dist, err := agg.Aggregate(tasks, members, julyWindow(), types.ViewCompleted)

		require.NoError(t, err)
		alice, _ := dist.Profile("alice")
		require.Zero(t, alice.TotalWeight)
		require.NotNil(t, alice.LastCompletedAt)
		require.Equal(t, date(2025, time.June, 20), *alice.LastCompletedAt)
	})

	t.Run("category breakdown accumulates points", func(t *testing.T) {
		tasks := []types.Task{
			pendingTask("t1", "alice", 2),
			{ID: "t2", AssigneeID: "alice", Category: types.CategoryAdmin, Weight: types.Weight{Flat: 1}},
		}

		dist, err := agg.Aggregate(tasks, members, types.Window{}, types.ViewPending)

		require.NoError(t, err)
		alice, _ := dist.Profile("alice")
		require.Equal(t, 8, alice.ByCategory[types.CategoryDaily])
		require.Equal(t, 4, alice.ByCategory[types.CategoryAdmin])
	})
}

func TestAggregator_WeekLoads(t *testing.T) {
	agg := NewAggregator(nil)
	week := types.Window{Start: date(2025, time.July, 7), End: date(2025, time.July, 14)}

	t.Run("sums pending load per member", func(t *testing.T) {
		due := date(2025, time.July, 9)
		tasks := []types.Task{
			{ID: "t1", AssigneeID: "alice", Weight: types.Weight{Flat: 2}, DueDate: &due},
			pendingTask("t2", "alice", 1), // undated counts
			completedTask("t3", "alice", 5, date(2025, time.July, 8)),
		}

		loads := agg.WeekLoads(tasks, week)

		require.Equal(t, 12, loads["alice"])
	})

	t.Run("tasks due outside the week do not count", func(t *testing.T) {
		due := date(2025, time.July, 20)
		tasks := []types.Task{{ID: "t1", AssigneeID: "alice", Weight: types.Weight{Flat: 2}, DueDate: &due}}

		loads := agg.WeekLoads(tasks, week)

		require.Zero(t, loads["alice"])
	})
}
