package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mkarlen/fairshare/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsEligible(t *testing.T) {
	task := types.Task{ID: "t1", Category: types.CategoryDaily}
	today := date(2025, time.July, 5)

	t.Run("member with no constraints is eligible", func(t *testing.T) {
		m := types.Member{ID: "alice"}

		require.True(t, IsEligible(m, task, today, 4, 0))
	})

	t.Run("deactivated member is never eligible", func(t *testing.T) {
		m := types.Member{ID: "alice", Inactive: true}

		require.False(t, IsEligible(m, task, today, 4, 0))
	})

	t.Run("blocked category makes member ineligible", func(t *testing.T) {
		m := types.Member{ID: "alice", BlockedCategories: []types.Category{types.CategoryDaily}}

		require.False(t, IsEligible(m, task, today, 4, 0))
	})

	t.Run("block wins when a category is both preferred and blocked", func(t *testing.T) {
		m := types.Member{
			ID:                  "alice",
			PreferredCategories: []types.Category{types.CategoryDaily},
			BlockedCategories:   []types.Category{types.CategoryDaily},
		}

		require.False(t, IsEligible(m, task, today, 4, 0))
	})

	t.Run("exclusion period covers both endpoints", func(t *testing.T) {
		m := types.Member{ID: "alice", ExclusionPeriods: []types.ExclusionPeriod{
			{Start: date(2025, time.July, 1), End: date(2025, time.July, 10)},
		}}

		require.False(t, IsEligible(m, task, date(2025, time.July, 1), 4, 0))
		require.False(t, IsEligible(m, task, date(2025, time.July, 5), 4, 0))
		require.False(t, IsEligible(m, task, date(2025, time.July, 10), 4, 0))
		require.True(t, IsEligible(m, task, date(2025, time.July, 11), 4, 0))
	})

	t.Run("weekly cap is exceeded strictly", func(t *testing.T) {
		m := types.Member{ID: "alice", MaxWeeklyLoad: 20}

		// 19 + 5 = 24 > 20: ineligible. 19 + 1 = 20: exactly at cap, allowed.
		require.False(t, IsEligible(m, task, today, 5, 19))
		require.True(t, IsEligible(m, task, today, 1, 19))
	})

	t.Run("unlimited sentinel never triggers the cap", func(t *testing.T) {
		m := types.Member{ID: "alice", MaxWeeklyLoad: types.UnlimitedWeeklyLoad}

		require.True(t, IsEligible(m, task, today, 100, 10_000))
	})
}

func TestRemainingWeeklyCapacity(t *testing.T) {
	t.Run("returns remaining points under the cap", func(t *testing.T) {
		m := types.Member{ID: "alice", MaxWeeklyLoad: 20}

		require.Equal(t, 5, RemainingWeeklyCapacity(m, 15))
	})

	t.Run("never goes negative", func(t *testing.T) {
		m := types.Member{ID: "alice", MaxWeeklyLoad: 20}

		require.Equal(t, 0, RemainingWeeklyCapacity(m, 25))
	})

	t.Run("uncapped member reports unlimited", func(t *testing.T) {
		m := types.Member{ID: "alice"}

		require.Equal(t, Unlimited, RemainingWeeklyCapacity(m, 999))
	})
}

func TestEligibleMembers(t *testing.T) {
	task := types.Task{ID: "t1", Category: types.CategoryAdmin}
	today := date(2025, time.July, 5)

	t.Run("filters while preserving order", func(t *testing.T) {
		members := []types.Member{
			{ID: "alice"},
			{ID: "bob", BlockedCategories: []types.Category{types.CategoryAdmin}},
			{ID: "carol", MaxWeeklyLoad: 10},
		}
		weekLoads := map[string]int{"carol": 9}

		eligible := EligibleMembers(members, task, today, 4, weekLoads)

		// carol: 9 + 4 = 13 > 10, out. bob: blocked, out.
		require.Len(t, eligible, 1)
		require.Equal(t, "alice", eligible[0].ID)
	})

	t.Run("missing week load reads as zero", func(t *testing.T) {
		members := []types.Member{{ID: "alice", MaxWeeklyLoad: 10}}

		eligible := EligibleMembers(members, task, today, 4, nil)

		require.Len(t, eligible, 1)
	})
}
