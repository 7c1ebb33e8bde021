package strategy

import (
	"github.com/mkarlen/fairshare/internal/logging"
	"github.com/mkarlen/fairshare/types"
)

const (
	defaultPreferenceBonus = 5.0
	defaultRotationPenalty = 3.0
)

// LeastLoaded implements load-aware assignment with preference and
// rotation adjustments.
type LeastLoaded struct {
	preferenceBonus float64
	rotationPenalty float64
	logger          types.Logger
}

var _ types.AssignmentStrategy = (*LeastLoaded)(nil)

// LeastLoadedOption configures a LeastLoaded strategy.
type LeastLoadedOption func(*LeastLoaded)

// NewLeastLoaded creates a new least-loaded strategy.
//
// The strategy scores every candidate and picks the lowest score:
//
//	score = currentLoad - preferenceBonus + rotationPenalty
//
// where preferenceBonus applies when the task's category is in the
// candidate's preferred set and rotationPenalty applies when the
// candidate was the last member assigned a task in this category.
//
// Parameters:
//   - opts: Optional configuration (WithPreferenceBonus, WithRotationPenalty, WithLogger)
//
// Returns:
//   - *LeastLoaded: Initialized strategy ready for use
//
// Example:
//
//	st := strategy.NewLeastLoaded(strategy.WithPreferenceBonus(8))
//	engine, err := fairshare.NewEngine(&cfg, fairshare.WithStrategy(st))
func NewLeastLoaded(opts ...LeastLoadedOption) *LeastLoaded {
	ll := &LeastLoaded{
		preferenceBonus: defaultPreferenceBonus,
		rotationPenalty: defaultRotationPenalty,
		logger:          logging.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(ll)
		}
	}

	ll.normalizeConfig()

	return ll
}

// WithPreferenceBonus sets the score reduction for preferred categories.
func WithPreferenceBonus(bonus float64) LeastLoadedOption {
	return func(ll *LeastLoaded) {
		ll.preferenceBonus = bonus
	}
}

// WithRotationPenalty sets the score increase for the last-assigned member.
func WithRotationPenalty(penalty float64) LeastLoadedOption {
	return func(ll *LeastLoaded) {
		ll.rotationPenalty = penalty
	}
}

// WithLogger sets the logger used for configuration warnings and debug diagnostics.
func WithLogger(logger types.Logger) LeastLoadedOption {
	return func(ll *LeastLoaded) {
		ll.logger = logger
	}
}

// SelectAssignee picks the candidate with the lowest score.
//
// The algorithm:
//  1. Return ErrNoEligibleMembers for an empty candidate set; the caller
//     surfaces this as "no available member" rather than forcing a pick.
//  2. Score each candidate: currentLoad, minus the preference bonus when
//     the category is preferred, plus the rotation penalty when the
//     candidate was last assigned in this category.
//  3. Pick the lowest score; ties break by ascending member ID so the
//     decision is reproducible.
//
// Parameters:
//   - task: Task being assigned
//   - candidates: Eligible members with current load points
//   - lastAssignee: Member last assigned in the task's category ("" if none)
//
// Returns:
//   - string: Selected member ID
//   - error: ErrNoEligibleMembers when candidates is empty
func (ll *LeastLoaded) SelectAssignee(task types.Task, candidates []types.Candidate, lastAssignee string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoEligibleMembers
	}

	category := task.NormalizedCategory()

	best := ""
	bestScore := 0.0
	for _, c := range candidates {
		score := float64(c.CurrentLoad)
		if c.Member.Prefers(category) && !c.Member.Blocks(category) {
			score -= ll.preferenceBonus
		}
		if lastAssignee != "" && c.Member.ID == lastAssignee {
			score += ll.rotationPenalty
		}

		if best == "" || score < bestScore || (score == bestScore && c.Member.ID < best) {
			best = c.Member.ID
			bestScore = score
		}
	}

	ll.logger.Debug(
		"least loaded strategy selected assignee",
		"task_id", task.ID,
		"category", string(category),
		"member_id", best,
		"score", bestScore,
		"candidates", len(candidates),
	)

	return best, nil
}

func (ll *LeastLoaded) normalizeConfig() {
	if ll.logger == nil {
		ll.logger = logging.NewNop()
	}

	if ll.preferenceBonus < 0 {
		ll.logger.Warn("preference bonus must be non-negative; clamping to 0", "provided", ll.preferenceBonus, "using", 0)
		ll.preferenceBonus = 0
	}

	if ll.rotationPenalty < 0 {
		ll.logger.Warn("rotation penalty must be non-negative; clamping to 0", "provided", ll.rotationPenalty, "using", 0)
		ll.rotationPenalty = 0
	}
}
