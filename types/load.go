package types

import "time"

// LoadView selects which task population an aggregation covers.
//
// The caller chooses exactly one view per call; the aggregator never mixes
// completed and pending load inside a single computation.
type LoadView string

// Load views.
const (
	// ViewCompleted aggregates tasks completed inside the window
	// (historical load).
	ViewCompleted LoadView = "completed"

	// ViewPending aggregates tasks that are still open (current load).
	ViewPending LoadView = "pending"
)

// Window is a half-open time interval [Start, End) used to bound
// historical aggregation.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether the timestamp falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Duration returns the window length.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Previous returns the equal-length window immediately preceding this one.
// Used by digest trend computation.
func (w Window) Previous() Window {
	d := w.Duration()

	return Window{Start: w.Start.Add(-d), End: w.Start}
}

// LoadProfile is the aggregated load of one member over a window.
//
// Profiles are derived values, recomputed per request, never persisted.
type LoadProfile struct {
	// MemberID identifies the member the profile belongs to.
	MemberID string `json:"memberId"`

	// TotalWeight is the member's load in points.
	TotalWeight int `json:"totalWeight"`

	// TaskCount is the number of tasks contributing to TotalWeight.
	TaskCount int `json:"taskCount"`

	// Percentage is the member's share of the household total, rounded to
	// the nearest integer. All percentages are 0 when the household total
	// is 0.
	Percentage int `json:"percentage"`

	// ByCategory breaks TotalWeight down per category.
	ByCategory map[Category]int `json:"byCategory,omitempty"`

	// LastCompletedAt is the member's most recent completion timestamp in
	// the task snapshot, tracked independently of the view and window so
	// inactivity classification stays accurate. Nil when the member never
	// completed a task.
	LastCompletedAt *time.Time `json:"lastCompletedAt,omitempty"`
}

// UnassignedLoad reports load carried by tasks with no assignee so
// household totals remain auditable.
type UnassignedLoad struct {
	TotalWeight int `json:"totalWeight"`
	TaskCount   int `json:"taskCount"`
}

// Distribution is the result of one aggregation call: per-member profiles
// in deterministic order plus the unassigned remainder.
type Distribution struct {
	// Profiles are sorted by descending TotalWeight, ties broken by
	// ascending MemberID.
	Profiles []LoadProfile `json:"profiles"`

	// Unassigned is the load not attributable to any member.
	Unassigned UnassignedLoad `json:"unassigned"`

	// View records which task population was aggregated.
	View LoadView `json:"view"`

	// Window is the aggregation window.
	Window Window `json:"window"`
}

// HouseholdTotal returns the sum of all member totals (excludes unassigned).
func (d Distribution) HouseholdTotal() int {
	total := 0
	for _, p := range d.Profiles {
		total += p.TotalWeight
	}

	return total
}

// Profile looks up a member's profile by ID.
//
// Returns:
//   - LoadProfile: The member's profile (zero value if absent)
//   - bool: true when the member has a profile
func (d Distribution) Profile(memberID string) (LoadProfile, bool) {
	for _, p := range d.Profiles {
		if p.MemberID == memberID {
			return p, true
		}
	}

	return LoadProfile{}, false
}

// AlertLevel classifies household-level imbalance severity.
type AlertLevel string

// Household alert levels.
const (
	AlertLevelNone     AlertLevel = "none"
	AlertLevelWarning  AlertLevel = "warning"
	AlertLevelCritical AlertLevel = "critical"
)

// MemberStateKind classifies one member's situation.
type MemberStateKind string

// Member state kinds.
const (
	MemberStateNormal     MemberStateKind = "normal"
	MemberStateOverloaded MemberStateKind = "overloaded"
	MemberStateInactive   MemberStateKind = "inactive"
)

// MemberState is the per-member portion of a balance classification.
type MemberState struct {
	// MemberID identifies the member.
	MemberID string `json:"memberId"`

	// State is the member's classification.
	State MemberStateKind `json:"state"`

	// Severity escalates overload and inactivity findings. AlertLevelNone
	// for members in the normal state.
	Severity AlertLevel `json:"severity"`

	// DaysSinceActivity counts days since the member's last completed
	// task. 0 for members who never completed one; NeverActive
	// distinguishes the two cases.
	DaysSinceActivity int `json:"daysSinceActivity"`

	// NeverActive marks members with no completed task on record.
	NeverActive bool `json:"neverActive,omitempty"`

	// TotalWeight is the member's load used for the classification.
	TotalWeight int `json:"totalWeight"`
}

// BalanceState is the outcome of classifying a household's load profiles.
type BalanceState struct {
	// IsBalanced is true when the imbalance ratio is at or below the
	// balanced threshold. Households with fewer than two loaded members
	// are trivially balanced.
	IsBalanced bool `json:"isBalanced"`

	// ImbalanceRatio is highest member total divided by max(lowest member
	// total, 1), computed over members with nonzero load. 1.0 when fewer
	// than two members carry load.
	ImbalanceRatio float64 `json:"imbalanceRatio"`

	// AlertLevel is the household-level severity.
	AlertLevel AlertLevel `json:"alertLevel"`

	// Members holds per-member classifications in profile order.
	Members []MemberState `json:"members"`

	// HouseholdAverage is the mean member load used by the overload check.
	HouseholdAverage float64 `json:"householdAverage"`
}
