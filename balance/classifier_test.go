package balance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mkarlen/fairshare/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func profile(memberID string, total int) types.LoadProfile {
	return types.LoadProfile{MemberID: memberID, TotalWeight: total}
}

func TestClassifier_HouseholdLevel(t *testing.T) {
	c := NewClassifier(Thresholds{})
	ref := date(2025, time.July, 15)

	t.Run("ratio four is critical", func(t *testing.T) {
		state := c.Classify([]types.LoadProfile{profile("alice", 40), profile("bob", 10)}, ref)

		require.InDelta(t, 4.0, state.ImbalanceRatio, 0.001)
		require.Equal(t, types.AlertLevelCritical, state.AlertLevel)
		require.False(t, state.IsBalanced)
	})

	t.Run("ratio two is warning", func(t *testing.T) {
		state := c.Classify([]types.LoadProfile{profile("alice", 20), profile("bob", 10)}, ref)

		require.InDelta(t, 2.0, state.ImbalanceRatio, 0.001)
		require.Equal(t, types.AlertLevelWarning, state.AlertLevel)
		require.False(t, state.IsBalanced)
	})

	t.Run("ratio at the balanced bound is balanced", func(t *testing.T) {
		state := c.Classify([]types.LoadProfile{profile("alice", 15), profile("bob", 10)}, ref)

		require.InDelta(t, 1.5, state.ImbalanceRatio, 0.001)
		require.Equal(t, types.AlertLevelNone, state.AlertLevel)
		require.True(t, state.IsBalanced)
	})

	t.Run("single member household is always balanced", func(t *testing.T) {
		state := c.Classify([]types.LoadProfile{profile("alice", 999)}, ref)

		require.True(t, state.IsBalanced)
		require.InDelta(t, 1.0, state.ImbalanceRatio, 0.001)
		require.Equal(t, types.AlertLevelNone, state.AlertLevel)
	})

	t.Run("empty household is balanced", func(t *testing.T) {
		state := c.Classify(nil, ref)

		require.True(t, state.IsBalanced)
		require.InDelta(t, 1.0, state.ImbalanceRatio, 0.001)
	})

	t.Run("members with zero load do not distort the ratio", func(t *testing.T) {
		state := c.Classify([]types.LoadProfile{
			profile("alice", 12), profile("bob", 10), profile("carol", 0),
		}, ref)

		require.InDelta(t, 1.2, state.ImbalanceRatio, 0.001)
		require.True(t, state.IsBalanced)
	})

	t.Run("ratio is symmetric in member order", func(t *testing.T) {
		a := c.Classify([]types.LoadProfile{profile("alice", 40), profile("bob", 10)}, ref)
		b := c.Classify([]types.LoadProfile{profile("bob", 10), profile("alice", 40)}, ref)

		require.Equal(t, a.ImbalanceRatio, b.ImbalanceRatio)
	})

	t.Run("classification is idempotent", func(t *testing.T) {
		profiles := []types.LoadProfile{profile("alice", 40), profile("bob", 10)}

		first := c.Classify(profiles, ref)
		second := c.Classify(profiles, ref)

		require.Equal(t, first, second)
	})
}

func TestClassifier_Overload(t *testing.T) {
	c := NewClassifier(Thresholds{})
	ref := date(2025, time.July, 15)

	t.Run("absolute threshold triggers overload", func(t *testing.T) {
		// avg = (32+30)/2 = 31; alice at 32 exceeds the absolute 30 but
		// not the average multiple.
		state := c.Classify([]types.LoadProfile{profile("alice", 32), profile("bob", 30)}, ref)

		require.Equal(t, types.MemberStateOverloaded, memberState(t, state, "alice").State)
		require.Equal(t, types.AlertLevelWarning, memberState(t, state, "alice").Severity)
	})

	t.Run("average multiple triggers overload independently", func(t *testing.T) {
		// alice 20 < absolute 30, but avg = 7.33 and 20 > 1.5*7.33.
		state := c.Classify([]types.LoadProfile{
			profile("alice", 20), profile("bob", 1), profile("carol", 1),
		}, ref)

		require.Equal(t, types.MemberStateOverloaded, memberState(t, state, "alice").State)
	})

	t.Run("overload escalates to critical at the critical factor", func(t *testing.T) {
		// 1.5 * 30 = 45; 46 is critical.
		state := c.Classify([]types.LoadProfile{profile("alice", 46), profile("bob", 30)}, ref)

		require.Equal(t, types.AlertLevelCritical, memberState(t, state, "alice").Severity)
	})

	t.Run("everyone busy is not overload", func(t *testing.T) {
		state := c.Classify([]types.LoadProfile{profile("alice", 28), profile("bob", 27)}, ref)

		require.Equal(t, types.MemberStateNormal, memberState(t, state, "alice").State)
		require.Equal(t, types.MemberStateNormal, memberState(t, state, "bob").State)
	})
}

func TestClassifier_Inactivity(t *testing.T) {
	c := NewClassifier(Thresholds{})
	ref := date(2025, time.July, 21)

	t.Run("twenty days inactive is critical", func(t *testing.T) {
		last := date(2025, time.July, 1)
		p := types.LoadProfile{MemberID: "alice", TotalWeight: 4, LastCompletedAt: &last}

		state := c.Classify([]types.LoadProfile{p}, ref)

		ms := memberState(t, state, "alice")
		require.Equal(t, types.MemberStateInactive, ms.State)
		require.Equal(t, types.AlertLevelCritical, ms.Severity)
		require.Equal(t, 20, ms.DaysSinceActivity)
	})

	t.Run("eight days inactive is warning", func(t *testing.T) {
		last := date(2025, time.July, 13)
		p := types.LoadProfile{MemberID: "alice", TotalWeight: 4, LastCompletedAt: &last}

		state := c.Classify([]types.LoadProfile{p}, ref)

		ms := memberState(t, state, "alice")
		require.Equal(t, types.MemberStateInactive, ms.State)
		require.Equal(t, types.AlertLevelWarning, ms.Severity)
	})

	t.Run("recent activity is normal", func(t *testing.T) {
		last := date(2025, time.July, 19)
		p := types.LoadProfile{MemberID: "alice", TotalWeight: 4, LastCompletedAt: &last}

		state := c.Classify([]types.LoadProfile{p}, ref)

		require.Equal(t, types.MemberStateNormal, memberState(t, state, "alice").State)
	})

	t.Run("never active member is flagged with zero days", func(t *testing.T) {
		p := types.LoadProfile{MemberID: "alice"}

		state := c.Classify([]types.LoadProfile{p}, ref)

		ms := memberState(t, state, "alice")
		require.Equal(t, types.MemberStateInactive, ms.State)
		require.True(t, ms.NeverActive)
		require.Zero(t, ms.DaysSinceActivity)
	})

	t.Run("overload takes precedence over inactivity", func(t *testing.T) {
		last := date(2025, time.June, 1)
		p := types.LoadProfile{MemberID: "alice", TotalWeight: 50, LastCompletedAt: &last}

		state := c.Classify([]types.LoadProfile{p, profile("bob", 40)}, ref)

		require.Equal(t, types.MemberStateOverloaded, memberState(t, state, "alice").State)
	})
}

func TestClassifier_CustomThresholds(t *testing.T) {
	t.Run("thresholds are configurable", func(t *testing.T) {
		c := NewClassifier(Thresholds{BalancedMaxRatio: 3.0, WarningMaxRatio: 5.0})
		ref := date(2025, time.July, 15)

		state := c.Classify([]types.LoadProfile{profile("alice", 25), profile("bob", 10)}, ref)

		require.True(t, state.IsBalanced)
	})
}

func memberState(t *testing.T, state types.BalanceState, memberID string) types.MemberState {
	t.Helper()

	for _, ms := range state.Members {
		if ms.MemberID == memberID {
			return ms
		}
	}

	t.Fatalf("no member state for %s", memberID)

	return types.MemberState{}
}
