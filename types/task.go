package types

import "time"

// Category classifies the kind of household effort a task represents.
//
// The set is closed: the engine only reasons about the categories below.
// Unknown values are treated as CategoryOther.
type Category string

// Task categories.
const (
	CategoryEducation Category = "education"
	CategoryHealth    Category = "health"
	CategoryAdmin     Category = "admin"
	CategorySocial    Category = "social"
	CategoryLogistics Category = "logistics"
	CategoryDaily     Category = "daily"
	CategoryOther     Category = "other"
)

// Categories returns all known task categories in declaration order.
//
// Returns:
//   - []Category: The closed category enumeration
func Categories() []Category {
	return []Category{
		CategoryEducation,
		CategoryHealth,
		CategoryAdmin,
		CategorySocial,
		CategoryLogistics,
		CategoryDaily,
		CategoryOther,
	}
}

// Recurrence describes how often a task repeats.
type Recurrence string

// Recurrence kinds.
const (
	RecurrenceNone     Recurrence = "none"
	RecurrenceDaily    Recurrence = "daily"
	RecurrenceWeekly   Recurrence = "weekly"
	RecurrenceMonthly  Recurrence = "monthly"
	RecurrenceYearly   Recurrence = "yearly"
	RecurrenceSeasonal Recurrence = "seasonal"
)

// WeightBreakdown is a four-dimension effort measure. Each dimension is
// expected in [1,5]; the weight model clamps out-of-range values rather
// than trusting callers.
type WeightBreakdown struct {
	Mental    int `json:"mental"`
	Time      int `json:"time"`
	Emotional int `json:"emotional"`
	Physical  int `json:"physical"`
}

// Weight is the tagged effort measure of a task: either a flat 1-5 scalar
// or a four-dimension breakdown. When Breakdown is non-nil it takes
// precedence over Flat.
//
// The two representations are reconciled by a fixed equivalence factor
// (see the weight package): a flat weight of N is comparable to a
// breakdown summing to 4*N, so flat 2 lines up with a breakdown sum of 8.
type Weight struct {
	// Flat is the scalar weight in [1,5]. Ignored when Breakdown is set.
	Flat int `json:"flat,omitempty"`

	// Breakdown is the optional multi-dimensional weight.
	Breakdown *WeightBreakdown `json:"breakdown,omitempty"`
}

// Task is a household obligation record as supplied by the task repository.
//
// The engine treats tasks as read-only snapshot data; the only mutation
// path is a reassignment written through the AssignmentSink.
type Task struct {
	// ID uniquely identifies the task within its household.
	ID string `json:"id"`

	// Title is the human-readable task name. Informational only.
	Title string `json:"title"`

	// Category is the task's effort category (closed enumeration).
	Category Category `json:"category"`

	// Recurrence describes how often the task repeats.
	Recurrence Recurrence `json:"recurrence"`

	// Critical marks tasks that cannot be skipped. Critical tasks receive
	// an urgency multiplier for ranking purposes.
	Critical bool `json:"critical"`

	// Weight is the effort measure (flat scalar or breakdown).
	Weight Weight `json:"weight"`

	// DueDate is the optional due date. Nil for undated tasks.
	DueDate *time.Time `json:"dueDate,omitempty"`

	// CompletedAt is the completion timestamp. Nil while pending.
	// Invariant: a completed task has both CompletedAt and AssigneeID set.
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	// AssigneeID is the member the task is assigned to ("" = unassigned).
	AssigneeID string `json:"assigneeId,omitempty"`

	// EstimatedMinutes is an optional duration estimate. Informational only.
	EstimatedMinutes int `json:"estimatedMinutes,omitempty"`
}

// Completed reports whether the task has a completion timestamp.
func (t Task) Completed() bool {
	return t.CompletedAt != nil
}

// Pending reports whether the task is still open.
func (t Task) Pending() bool {
	return t.CompletedAt == nil
}

// Overdue reports whether the task is pending with a due date strictly
// before the reference date.
//
// Parameters:
//   - ref: Reference date for the comparison
//
// Returns:
//   - bool: true when the task is pending and past due
func (t Task) Overdue(ref time.Time) bool {
	return t.Pending() && t.DueDate != nil && t.DueDate.Before(ref)
}

// NormalizedCategory maps unknown category values to CategoryOther so the
// closed enumeration holds throughout the engine.
func (t Task) NormalizedCategory() Category {
	switch t.Category {
	case CategoryEducation, CategoryHealth, CategoryAdmin,
		CategorySocial, CategoryLogistics, CategoryDaily, CategoryOther:
		return t.Category
	default:
		return CategoryOther
	}
}
