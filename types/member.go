package types

import "time"

// UnlimitedWeeklyLoad is the MaxWeeklyLoad sentinel meaning "no cap".
//
// A member with MaxWeeklyLoad <= 0 never fails the weekly capacity check.
const UnlimitedWeeklyLoad = 0

// ExclusionPeriod is a closed date interval during which a member cannot
// receive new task assignments (travel, illness, and similar).
//
// Both endpoints are inclusive. Periods may overlap; overlap is idempotent,
// a date inside two overlapping periods is excluded exactly once.
type ExclusionPeriod struct {
	// Start is the first excluded date (inclusive).
	Start time.Time `json:"startDate"`

	// End is the last excluded date (inclusive).
	End time.Time `json:"endDate"`

	// Reason is an optional human-readable explanation.
	Reason string `json:"reason,omitempty"`
}

// Contains reports whether the given date falls inside the period,
// inclusive of both endpoints. Comparison is at day granularity so a
// timestamp on the end date still counts as excluded.
//
// Parameters:
//   - date: Date to test
//
// Returns:
//   - bool: true when date is within [Start, End]
func (e ExclusionPeriod) Contains(date time.Time) bool {
	d := dayOf(date)

	return !d.Before(dayOf(e.Start)) && !d.After(dayOf(e.End))
}

// Valid reports whether the period is well-formed (End not before Start).
func (e ExclusionPeriod) Valid() bool {
	return !dayOf(e.End).Before(dayOf(e.Start))
}

// dayOf truncates a timestamp to its calendar day in UTC.
func dayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Member is an adult household member eligible to own tasks.
type Member struct {
	// ID uniquely identifies the member within the household.
	ID string `json:"userId"`

	// Name is the display name. Informational only.
	Name string `json:"name"`

	// PreferredCategories are categories the member likes to take.
	// Preference never gates eligibility; it only improves the member's
	// score during assignment selection.
	PreferredCategories []Category `json:"preferredCategories,omitempty"`

	// BlockedCategories are categories the member must not receive.
	// Block takes precedence over preference when data lists a category
	// in both sets.
	BlockedCategories []Category `json:"blockedCategories,omitempty"`

	// MaxWeeklyLoad is the maximum load points the member may carry in a
	// week. UnlimitedWeeklyLoad (<= 0) disables the cap.
	MaxWeeklyLoad int `json:"maxWeeklyLoad,omitempty"`

	// ExclusionPeriods are date ranges during which the member cannot
	// receive new assignments.
	ExclusionPeriods []ExclusionPeriod `json:"exclusionPeriods,omitempty"`

	// Inactive marks deactivated members. Inactive members are excluded
	// from every computation.
	Inactive bool `json:"inactive,omitempty"`
}

// Prefers reports whether the category is in the member's preferred set.
func (m Member) Prefers(c Category) bool {
	for _, p := range m.PreferredCategories {
		if p == c {
			return true
		}
	}

	return false
}

// Blocks reports whether the category is in the member's blocked set.
func (m Member) Blocks(c Category) bool {
	for _, b := range m.BlockedCategories {
		if b == c {
			return true
		}
	}

	return false
}

// ExcludedOn reports whether the date falls inside any exclusion period.
// Overlapping periods are idempotent.
//
// Parameters:
//   - date: Date to test
//
// Returns:
//   - bool: true when the member is excluded on the given date
func (m Member) ExcludedOn(date time.Time) bool {
	for _, p := range m.ExclusionPeriods {
		if p.Contains(date) {
			return true
		}
	}

	return false
}

// ActiveMembers filters out deactivated members while preserving order.
//
// Parameters:
//   - members: Member list to filter
//
// Returns:
//   - []Member: Members with Inactive == false
func ActiveMembers(members []Member) []Member {
	active := make([]Member, 0, len(members))
	for _, m := range members {
		if !m.Inactive {
			active = append(active, m)
		}
	}

	return active
}
