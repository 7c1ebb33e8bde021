package types

import (
	"context"
	"time"
)

// AlertType identifies the condition an alert reports.
type AlertType string

// Alert types.
const (
	AlertImbalance  AlertType = "imbalance"
	AlertOverload   AlertType = "overload"
	AlertInactivity AlertType = "inactivity"
)

// Severity orders alerts for presentation: critical first, then warning,
// then info.
type Severity string

// Alert severities.
const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// rank maps severities to sort keys (lower sorts first).
func (s Severity) rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// Less reports whether s sorts before other.
func (s Severity) Less(other Severity) bool {
	return s.rank() < other.rank()
}

// Alert is a structured balance finding. Message text is rendered from
// Evidence by the notification layer; the engine never hard-codes
// per-instance prose.
type Alert struct {
	// Type identifies the reported condition.
	Type AlertType `json:"type"`

	// Severity orders the alert relative to others.
	Severity Severity `json:"severity"`

	// MemberIDs lists affected members. Empty for household-level alerts.
	MemberIDs []string `json:"memberIds,omitempty"`

	// Evidence carries the numeric facts behind the finding
	// (e.g. "ratio", "totalWeight", "daysSinceActivity").
	Evidence map[string]float64 `json:"evidence"`

	// SuggestedAction is a non-judgmental template key for the
	// recommended next step (e.g. "review_rebalance_suggestions").
	SuggestedAction string `json:"suggestedAction"`
}

// TrendDirection compares a period's imbalance against the prior period.
type TrendDirection string

// Trend directions.
const (
	TrendImproving TrendDirection = "improving"
	TrendStable    TrendDirection = "stable"
	TrendWorsening TrendDirection = "worsening"
)

// DigestEntry summarizes one member's contribution over a digest period.
type DigestEntry struct {
	MemberID       string           `json:"memberId"`
	CompletedCount int              `json:"completedCount"`
	LoadPoints     int              `json:"loadPoints"`
	Percentage     int              `json:"percentage"`
	ByCategory     map[Category]int `json:"byCategory,omitempty"`
}

// Digest is a periodic household summary.
type Digest struct {
	// PeriodStart and PeriodEnd bound the digest window.
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`

	// Entries hold per-member summaries in profile order.
	Entries []DigestEntry `json:"entries"`

	// ImbalanceRatio is the period's household ratio.
	ImbalanceRatio float64 `json:"imbalanceRatio"`

	// PreviousRatio is the prior equal-length period's ratio.
	PreviousRatio float64 `json:"previousRatio"`

	// Trend is the sign of the ratio delta between the two periods.
	Trend TrendDirection `json:"trend"`
}

// AlertPublisher delivers alerts and digests to the notification boundary.
//
// Implementations should be non-blocking from the engine's perspective and
// must tolerate empty alert lists.
type AlertPublisher interface {
	// PublishAlerts delivers a batch of alerts for a household.
	PublishAlerts(ctx context.Context, householdID string, alerts []Alert) error

	// PublishDigest delivers a periodic digest for a household.
	PublishDigest(ctx context.Context, householdID string, digest Digest) error
}
