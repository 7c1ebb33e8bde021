package weight

import (
	"time"

	"github.com/mkarlen/fairshare/types"
)

const (
	// minDimension and maxDimension bound every weight dimension.
	// Out-of-range input is clamped, not rejected: the boundary validates,
	// the model defends.
	minDimension = 1
	maxDimension = 5

	// FlatEquivalenceFactor maps the flat scalar path onto the breakdown
	// point scale. A flat weight of N is comparable to a breakdown whose
	// dimensions sum to FlatEquivalenceFactor*N (flat 2 ≈ sum 8).
	FlatEquivalenceFactor = 4

	// DefaultUrgencyMultiplier is applied to the ranking weight of
	// critical tasks and pending tasks whose due date has passed.
	DefaultUrgencyMultiplier = 1.5
)

// Score is a multi-dimensional effort score with a scalar total.
//
// Total is always the sum of the four dimensions, whichever input path
// produced them.
type Score struct {
	Mental    int `json:"mental"`
	Time      int `json:"time"`
	Emotional int `json:"emotional"`
	Physical  int `json:"physical"`
	Total     int `json:"total"`
}

// Model computes effort scores. The zero value is not usable; construct
// with NewModel.
type Model struct {
	urgencyMultiplier float64
}

// Option configures a Model.
type Option func(*Model)

// WithUrgencyMultiplier overrides the ranking multiplier for critical and
// overdue tasks. Values below 1 are clamped to 1 (urgency never discounts).
func WithUrgencyMultiplier(m float64) Option {
	return func(model *Model) {
		model.urgencyMultiplier = m
	}
}

// NewModel creates a weight model.
//
// Parameters:
//   - opts: Optional configuration (WithUrgencyMultiplier)
//
// Returns:
//   - *Model: Initialized model ready for use
func NewModel(opts ...Option) *Model {
	m := &Model{urgencyMultiplier: DefaultUrgencyMultiplier}

	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}

	if m.urgencyMultiplier < 1 {
		m.urgencyMultiplier = 1
	}

	return m
}

// Score computes the task's effort score.
//
// Breakdown tasks score each clamped dimension; flat tasks spread the
// clamped scalar evenly across all four dimensions, which realizes the
// FlatEquivalenceFactor mapping (total = 4 * flat). Tasks with no weight
// at all score as flat 1.
//
// Parameters:
//   - task: Task to score
//
// Returns:
//   - Score: Dimension scores and their total in points
func (m *Model) Score(task types.Task) Score {
	if b := task.Weight.Breakdown; b != nil {
		s := Score{
			Mental:    clampDimension(b.Mental),
			Time:      clampDimension(b.Time),
			Emotional: clampDimension(b.Emotional),
			Physical:  clampDimension(b.Physical),
		}
		s.Total = s.Mental + s.Time + s.Emotional + s.Physical

		return s
	}

	flat := clampDimension(task.Weight.Flat)
	s := Score{Mental: flat, Time: flat, Emotional: flat, Physical: flat}
	s.Total = flat * FlatEquivalenceFactor

	return s
}

// Points returns the task's scalar load in points.
//
// Parameters:
//   - task: Task to score
//
// Returns:
//   - int: Total points on the unified scale
func (m *Model) Points(task types.Task) int {
	return m.Score(task).Total
}

// RankingWeight returns the urgency-adjusted weight used for ordering
// candidates in suggestion and assignment flows.
//
// Critical tasks and pending tasks past their due date receive the
// urgency multiplier. The adjusted value is never written back to the
// task; it exists only for ranking.
//
// Parameters:
//   - task: Task to rank
//   - ref: Reference date for the overdue check
//
// Returns:
//   - float64: Points, multiplied when the task is urgent
func (m *Model) RankingWeight(task types.Task, ref time.Time) float64 {
	points := float64(m.Points(task))
	if task.Critical || task.Overdue(ref) {
		return points * m.urgencyMultiplier
	}

	return points
}

func clampDimension(v int) int {
	if v < minDimension {
		return minDimension
	}
	if v > maxDimension {
		return maxDimension
	}

	return v
}
