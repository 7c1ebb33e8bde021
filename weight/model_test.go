package weight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mkarlen/fairshare/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestModel_Score(t *testing.T) {
	model := NewModel()

	t.Run("breakdown total is sum of dimensions", func(t *testing.T) {
		task := types.Task{Weight: types.Weight{Breakdown: &types.WeightBreakdown{
			Mental: 2, Time: 3, Emotional: 1, Physical: 4,
		}}}

		s := model.Score(task)

		require.Equal(t, 10, s.Total)
		require.Equal(t, s.Mental+s.Time+s.Emotional+s.Physical, s.Total)
	})

	t.Run("dimensions are clamped to the valid range", func(t *testing.T) {
		task := types.Task{Weight: types.Weight{Breakdown: &types.WeightBreakdown{
			Mental: 0, Time: 9, Emotional: -3, Physical: 3,
		}}}

		s := model.Score(task)

		require.Equal(t, 1, s.Mental)
		require.Equal(t, 5, s.Time)
		require.Equal(t, 1, s.Emotional)
		require.Equal(t, 3, s.Physical)
		require.Equal(t, 10, s.Total)
	})

	t.Run("flat weight maps onto the breakdown scale", func(t *testing.T) {
		task := types.Task{Weight: types.Weight{Flat: 2}}

		s := model.Score(task)

		// Flat 2 must be comparable to a breakdown summing to 8.
		require.Equal(t, 2*FlatEquivalenceFactor, s.Total)
	})

	t.Run("flat weight is clamped", func(t *testing.T) {
		require.Equal(t, 5*FlatEquivalenceFactor, model.Points(types.Task{Weight: types.Weight{Flat: 12}}))
		require.Equal(t, 1*FlatEquivalenceFactor, model.Points(types.Task{Weight: types.Weight{Flat: -1}}))
	})

	t.Run("weightless task scores as flat one", func(t *testing.T) {
		require.Equal(t, FlatEquivalenceFactor, model.Points(types.Task{}))
	})

	t.Run("breakdown takes precedence over flat", func(t *testing.T) {
		task := types.Task{Weight: types.Weight{
			Flat:      5,
			Breakdown: &types.WeightBreakdown{Mental: 1, Time: 1, Emotional: 1, Physical: 1},
		}}

		require.Equal(t, 4, model.Points(task))
	})
}

func TestModel_RankingWeight(t *testing.T) {
	model := NewModel()
	ref := date(2025, time.July, 15)

	t.Run("critical task receives the urgency multiplier", func(t *testing.T) {
		task := types.Task{Critical: true, Weight: types.Weight{Flat: 2}}

		require.InDelta(t, 8*DefaultUrgencyMultiplier, model.RankingWeight(task, ref), 0.001)
	})

	t.Run("overdue pending task receives the urgency multiplier", func(t *testing.T) {
		due := date(2025, time.July, 1)
		task := types.Task{DueDate: &due, Weight: types.Weight{Flat: 2}}

		require.InDelta(t, 8*DefaultUrgencyMultiplier, model.RankingWeight(task, ref), 0.001)
	})

	t.Run("routine task ranks at its plain points", func(t *testing.T) {
		task := types.Task{Weight: types.Weight{Flat: 2}}

		require.InDelta(t, 8, model.RankingWeight(task, ref), 0.001)
	})

	t.Run("ranking never touches the stored score", func(t *testing.T) {
		task := types.Task{Critical: true, Weight: types.Weight{Flat: 2}}

		_ = model.RankingWeight(task, ref)

		require.Equal(t, 8, model.Points(task))
	})

	t.Run("custom multiplier below one is clamped", func(t *testing.T) {
		m := NewModel(WithUrgencyMultiplier(0.5))
		task := types.Task{Critical: true, Weight: types.Weight{Flat: 1}}

		require.InDelta(t, 4, m.RankingWeight(task, ref), 0.001)
	})
}

func TestModel_Determinism(t *testing.T) {
	t.Run("same input always yields the same score", func(t *testing.T) {
		model := NewModel()
		task := types.Task{Weight: types.Weight{Breakdown: &types.WeightBreakdown{
			Mental: 3, Time: 2, Emotional: 4, Physical: 1,
		}}}

		first := model.Score(task)
		second := model.Score(task)

		require.Equal(t, first, second)
	})
}
