package fairshare

import "github.com/mkarlen/fairshare/types"

// Re-export types from the internal types package.
//
// This file provides a stable, backward-compatible public API for the library's
// core types and interfaces. It uses type aliases to re-export definitions
// from the `types` subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing internal packages
// to depend on `types` without depending on the root `fairshare` package, while
// still providing a convenient `fairshare.Task`, `fairshare.Member`, etc. for
// users.
type (
	Task            = types.Task
	Weight          = types.Weight
	WeightBreakdown = types.WeightBreakdown
	Category        = types.Category
	Recurrence      = types.Recurrence

	Member          = types.Member
	ExclusionPeriod = types.ExclusionPeriod

	Window         = types.Window
	LoadView       = types.LoadView
	LoadProfile    = types.LoadProfile
	UnassignedLoad = types.UnassignedLoad
	Distribution   = types.Distribution

	BalanceState    = types.BalanceState
	MemberState     = types.MemberState
	MemberStateKind = types.MemberStateKind
	AlertLevel      = types.AlertLevel

	RebalanceSuggestion = types.RebalanceSuggestion
	ApplyResult         = types.ApplyResult
	RejectReason        = types.RejectReason
	AuditRecord         = types.AuditRecord
	Candidate           = types.Candidate

	Alert          = types.Alert
	AlertType      = types.AlertType
	Severity       = types.Severity
	Digest         = types.Digest
	DigestEntry    = types.DigestEntry
	TrendDirection = types.TrendDirection
)

// Re-export interfaces from the internal types package for convenience.
type (
	AssignmentStrategy = types.AssignmentStrategy
	AssignmentSink     = types.AssignmentSink
	AuditStore         = types.AuditStore
	RotationStore      = types.RotationStore
	AlertPublisher     = types.AlertPublisher
	MetricsCollector   = types.MetricsCollector
	Logger             = types.Logger
)

// Re-export category constants from the internal types package.
const (
	CategoryEducation = types.CategoryEducation
	CategoryHealth    = types.CategoryHealth
	CategoryAdmin     = types.CategoryAdmin
	CategorySocial    = types.CategorySocial
	CategoryLogistics = types.CategoryLogistics
	CategoryDaily     = types.CategoryDaily
	CategoryOther     = types.CategoryOther
)

// Re-export load view constants from the internal types package.
const (
	ViewCompleted = types.ViewCompleted
	ViewPending   = types.ViewPending
)

// Re-export balance constants from the internal types package.
const (
	AlertLevelNone     = types.AlertLevelNone
	AlertLevelWarning  = types.AlertLevelWarning
	AlertLevelCritical = types.AlertLevelCritical

	MemberStateNormal     = types.MemberStateNormal
	MemberStateOverloaded = types.MemberStateOverloaded
	MemberStateInactive   = types.MemberStateInactive
)

// Re-export alert constants from the internal types package.
const (
	AlertImbalance  = types.AlertImbalance
	AlertOverload   = types.AlertOverload
	AlertInactivity = types.AlertInactivity

	SeverityCritical = types.SeverityCritical
	SeverityWarning  = types.SeverityWarning
	SeverityInfo     = types.SeverityInfo

	TrendImproving = types.TrendImproving
	TrendStable    = types.TrendStable
	TrendWorsening = types.TrendWorsening
)

// Re-export apply rejection reasons from the internal types package.
const (
	RejectNone             = types.RejectNone
	RejectTaskCompleted    = types.RejectTaskCompleted
	RejectTaskReassigned   = types.RejectTaskReassigned
	RejectTargetIneligible = types.RejectTargetIneligible
)

// UnlimitedWeeklyLoad marks a member with no weekly capacity cap.
const UnlimitedWeeklyLoad = types.UnlimitedWeeklyLoad
