package balance

import (
	"time"

	"github.com/mkarlen/fairshare/types"
)

// Default classification thresholds. All of them are configurable through
// Thresholds; these values apply when a field is left zero.
const (
	// DefaultBalancedMaxRatio is the highest imbalance ratio still
	// considered balanced.
	DefaultBalancedMaxRatio = 1.5

	// DefaultWarningMaxRatio is the highest ratio classified as warning;
	// anything above is critical.
	DefaultWarningMaxRatio = 2.5

	// DefaultOverloadPoints is the absolute per-member load that marks a
	// member overloaded.
	DefaultOverloadPoints = 30

	// DefaultOverloadAverageFactor marks a member overloaded when their
	// load exceeds this multiple of the household average. This
	// distinguishes "one person is swamped" from "everyone is busy".
	DefaultOverloadAverageFactor = 1.5

	// DefaultOverloadCriticalFactor escalates overload severity to
	// critical at this multiple of the overload threshold.
	DefaultOverloadCriticalFactor = 1.5

	// DefaultInactivityWarningDays and DefaultInactivityCriticalDays
	// bound the inactivity classification.
	DefaultInactivityWarningDays  = 7
	DefaultInactivityCriticalDays = 14
)

// Thresholds parameterizes the classifier. The zero value of any field
// falls back to the package default.
type Thresholds struct {
	// BalancedMaxRatio is the inclusive upper bound for "balanced".
	BalancedMaxRatio float64 `yaml:"balancedMaxRatio"`

	// WarningMaxRatio is the inclusive upper bound for "warning".
	WarningMaxRatio float64 `yaml:"warningMaxRatio"`

	// OverloadPoints is the absolute overload threshold.
	OverloadPoints int `yaml:"overloadPoints"`

	// OverloadAverageFactor is the household-average overload multiple.
	// Either overload condition triggering suffices; the two are
	// independent.
	OverloadAverageFactor float64 `yaml:"overloadAverageFactor"`

	// OverloadCriticalFactor escalates overload to critical severity.
	OverloadCriticalFactor float64 `yaml:"overloadCriticalFactor"`

	// InactivityWarningDays and InactivityCriticalDays bound the
	// inactivity classification.
	InactivityWarningDays  int `yaml:"inactivityWarningDays"`
	InactivityCriticalDays int `yaml:"inactivityCriticalDays"`
}

// WithDefaults returns a copy with zero fields replaced by the package
// defaults. Callers that evaluate thresholds outside a Classifier (the
// rebalance suggester's stop conditions, for example) should normalize
// through this first.
func (t Thresholds) WithDefaults() Thresholds {
	if t.BalancedMaxRatio == 0 {
		t.BalancedMaxRatio = DefaultBalancedMaxRatio
	}
	if t.WarningMaxRatio == 0 {
		t.WarningMaxRatio = DefaultWarningMaxRatio
	}
	if t.OverloadPoints == 0 {
		t.OverloadPoints = DefaultOverloadPoints
	}
	if t.OverloadAverageFactor == 0 {
		t.OverloadAverageFactor = DefaultOverloadAverageFactor
	}
	if t.OverloadCriticalFactor == 0 {
		t.OverloadCriticalFactor = DefaultOverloadCriticalFactor
	}
	if t.InactivityWarningDays == 0 {
		t.InactivityWarningDays = DefaultInactivityWarningDays
	}
	if t.InactivityCriticalDays == 0 {
		t.InactivityCriticalDays = DefaultInactivityCriticalDays
	}

	return t
}

// Classifier maps load profiles to a balance state.
type Classifier struct {
	thresholds Thresholds
}

// NewClassifier creates a classifier.
//
// Parameters:
//   - thresholds: Classification thresholds (zero fields use defaults)
//
// Returns:
//   - *Classifier: Initialized classifier
func NewClassifier(thresholds Thresholds) *Classifier {
	return &Classifier{thresholds: thresholds.WithDefaults()}
}

// Classify derives the household balance state from a set of profiles.
//
// The imbalance ratio is the highest member total divided by
// max(lowest member total, 1), computed over members with nonzero load.
// Households with fewer than two loaded members are trivially balanced
// with ratio 1.
//
// Inactivity is derived from each profile's LastCompletedAt relative to
// the reference date. A member with no completion on record is inactive
// with DaysSinceActivity 0 and NeverActive set, so renderers can phrase
// the two cases differently.
//
// Parameters:
//   - profiles: Load profiles from one aggregation call
//   - ref: Reference date for inactivity day counts
//
// Returns:
//   - types.BalanceState: Household and per-member classification
func (c *Classifier) Classify(profiles []types.LoadProfile, ref time.Time) types.BalanceState {
	state := types.BalanceState{
		IsBalanced:     true,
		ImbalanceRatio: 1,
		AlertLevel:     types.AlertLevelNone,
	}

	loaded := 0
	maxLoad, minLoad := 0, 0
	total := 0
	for _, p := range profiles {
		total += p.TotalWeight
		if p.TotalWeight == 0 {
			continue
		}
		if loaded == 0 || p.TotalWeight > maxLoad {
			maxLoad = p.TotalWeight
		}
		if loaded == 0 || p.TotalWeight < minLoad {
			minLoad = p.TotalWeight
		}
		loaded++
	}

	if len(profiles) > 0 {
		state.HouseholdAverage = float64(total) / float64(len(profiles))
	}

	if loaded >= 2 {
		floor := minLoad
		if floor < 1 {
			floor = 1
		}
		state.ImbalanceRatio = float64(maxLoad) / float64(floor)

		switch {
		case state.ImbalanceRatio <= c.thresholds.BalancedMaxRatio:
			state.AlertLevel = types.AlertLevelNone
		case state.ImbalanceRatio <= c.thresholds.WarningMaxRatio:
			state.AlertLevel = types.AlertLevelWarning
			state.IsBalanced = false
		default:
			state.AlertLevel = types.AlertLevelCritical
			state.IsBalanced = false
		}
	}

	state.Members = make([]types.MemberState, 0, len(profiles))
	for _, p := range profiles {
		state.Members = append(state.Members, c.classifyMember(p, state.HouseholdAverage, ref))
	}

	return state
}

// classifyMember derives one member's state. Overload takes precedence
// over inactivity when both hold: a swamped member is the more actionable
// finding.
func (c *Classifier) classifyMember(p types.LoadProfile, avg float64, ref time.Time) types.MemberState {
	ms := types.MemberState{
		MemberID:    p.MemberID,
		State:       types.MemberStateNormal,
		Severity:    types.AlertLevelNone,
		TotalWeight: p.TotalWeight,
	}

	if p.LastCompletedAt != nil {
		ms.DaysSinceActivity = daysBetween(*p.LastCompletedAt, ref)
	} else {
		ms.NeverActive = true
	}

	if over, severity := c.overloaded(p.TotalWeight, avg); over {
		ms.State = types.MemberStateOverloaded
		ms.Severity = severity

		return ms
	}

	if inactive, severity := c.inactive(ms); inactive {
		ms.State = types.MemberStateInactive
		ms.Severity = severity
	}

	return ms
}

// overloaded applies the two independent overload conditions: the
// absolute threshold and the household-average multiple. Either triggers.
func (c *Classifier) overloaded(totalWeight int, avg float64) (bool, types.AlertLevel) {
	overAbsolute := totalWeight > c.thresholds.OverloadPoints
	overAverage := avg > 0 && float64(totalWeight) > avg*c.thresholds.OverloadAverageFactor

	if !overAbsolute && !overAverage {
		return false, types.AlertLevelNone
	}

	critical := float64(totalWeight) > float64(c.thresholds.OverloadPoints)*c.thresholds.OverloadCriticalFactor
	if critical {
		return true, types.AlertLevelCritical
	}

	return true, types.AlertLevelWarning
}

func (c *Classifier) inactive(ms types.MemberState) (bool, types.AlertLevel) {
	if ms.NeverActive {
		return true, types.AlertLevelWarning
	}

	switch {
	case ms.DaysSinceActivity >= c.thresholds.InactivityCriticalDays:
		return true, types.AlertLevelCritical
	case ms.DaysSinceActivity >= c.thresholds.InactivityWarningDays:
		return true, types.AlertLevelWarning
	default:
		return false, types.AlertLevelNone
	}
}

// daysBetween counts whole calendar days from earlier to later, never
// negative.
func daysBetween(earlier, later time.Time) int {
	d := int(later.Sub(earlier).Hours() / 24)
	if d < 0 {
		return 0
	}

	return d
}
