package alert

import (
	"math"
	"slices"
	"time"

	"github.com/mkarlen/fairshare/balance"
	"github.com/mkarlen/fairshare/internal/logging"
	"github.com/mkarlen/fairshare/types"
)

// Suggested-action template keys carried on alerts. The notification
// layer maps these to locale-specific, non-judgmental copy.
const (
	ActionReviewSuggestions = "review_rebalance_suggestions"
	ActionRedistribute      = "redistribute_tasks"
	ActionCheckIn           = "check_in_with_member"
)

// trendTolerance bounds ratio deltas still considered stable, absorbing
// float noise from the division.
const trendTolerance = 1e-9

// Generator builds alerts and digests from classification output.
type Generator struct {
	classifier *balance.Classifier
	logger     types.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger.
func WithLogger(logger types.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates an alert generator.
//
// Parameters:
//   - classifier: Balance classifier used for digest period ratios (nil
//     uses a classifier with default thresholds)
//   - opts: Optional configuration
//
// Returns:
//   - *Generator: Initialized generator
func NewGenerator(classifier *balance.Classifier, opts ...Option) *Generator {
	if classifier == nil {
		classifier = balance.NewClassifier(balance.Thresholds{})
	}

	g := &Generator{
		classifier: classifier,
		logger:     logging.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g
}

// BuildAlerts derives alerts from one balance classification.
//
// One household-level imbalance alert is emitted when the household is
// out of balance, then one alert per overloaded or inactive member. The
// returned list is ordered critical first, then warning, then info;
// alerts of equal severity keep insertion order (household alert before
// member alerts, members in classification order).
//
// Parameters:
//   - state: Classification output from one Classify call
//
// Returns:
//   - []types.Alert: Ordered alerts; empty for a balanced, quiet household
func (g *Generator) BuildAlerts(state types.BalanceState) []types.Alert {
	var alerts []types.Alert

	if !state.IsBalanced {
		alerts = append(alerts, types.Alert{
			Type:     types.AlertImbalance,
			Severity: severityOf(state.AlertLevel),
			Evidence: map[string]float64{
				"ratio":            state.ImbalanceRatio,
				"householdAverage": state.HouseholdAverage,
			},
			SuggestedAction: ActionReviewSuggestions,
		})
	}

	for _, ms := range state.Members {
		switch ms.State {
		case types.MemberStateOverloaded:
			alerts = append(alerts, types.Alert{
				Type:      types.AlertOverload,
				Severity:  severityOf(ms.Severity),
				MemberIDs: []string{ms.MemberID},
				Evidence: map[string]float64{
					"totalWeight":      float64(ms.TotalWeight),
					"householdAverage": state.HouseholdAverage,
				},
				SuggestedAction: ActionRedistribute,
			})
		case types.MemberStateInactive:
			evidence := map[string]float64{
				"daysSinceActivity": float64(ms.DaysSinceActivity),
			}
			if ms.NeverActive {
				evidence["neverActive"] = 1
			}
			alerts = append(alerts, types.Alert{
				Type:            types.AlertInactivity,
				Severity:        severityOf(ms.Severity),
				MemberIDs:       []string{ms.MemberID},
				Evidence:        evidence,
				SuggestedAction: ActionCheckIn,
			})
		case types.MemberStateNormal:
		}
	}

	slices.SortStableFunc(alerts, func(a, b types.Alert) int {
		switch {
		case a.Severity.Less(b.Severity):
			return -1
		case b.Severity.Less(a.Severity):
			return 1
		default:
			return 0
		}
	})

	g.logger.Debug("alerts built", "count", len(alerts), "ratio", state.ImbalanceRatio)

	return alerts
}

// BuildDigest summarizes a period and compares it with the prior period.
//
// The entries mirror the current period's profiles (completed-view
// aggregation over [periodStart, periodEnd)). The trend is the sign of
// the imbalance ratio delta against the previous profiles: a lower ratio
// is improving, a higher one worsening, an unchanged one stable.
//
// Parameters:
//   - current: Completed-view profiles for the digest period
//   - previous: Completed-view profiles for the prior equal-length period
//   - periodStart: Digest period start (inclusive)
//   - periodEnd: Digest period end (exclusive)
//
// Returns:
//   - types.Digest: The assembled digest
func (g *Generator) BuildDigest(current, previous []types.LoadProfile, periodStart, periodEnd time.Time) types.Digest {
	digest := types.Digest{
		PeriodStart:    periodStart,
		PeriodEnd:      periodEnd,
		ImbalanceRatio: g.classifier.Classify(current, periodEnd).ImbalanceRatio,
		PreviousRatio:  g.classifier.Classify(previous, periodStart).ImbalanceRatio,
	}

	digest.Entries = make([]types.DigestEntry, 0, len(current))
	for _, p := range current {
		digest.Entries = append(digest.Entries, types.DigestEntry{
			MemberID:       p.MemberID,
			CompletedCount: p.TaskCount,
			LoadPoints:     p.TotalWeight,
			Percentage:     p.Percentage,
			ByCategory:     p.ByCategory,
		})
	}

	delta := digest.ImbalanceRatio - digest.PreviousRatio
	switch {
	case math.Abs(delta) <= trendTolerance:
		digest.Trend = types.TrendStable
	case delta < 0:
		digest.Trend = types.TrendImproving
	default:
		digest.Trend = types.TrendWorsening
	}

	return digest
}

// severityOf maps a classification alert level to a presentation severity.
func severityOf(level types.AlertLevel) types.Severity {
	switch level {
	case types.AlertLevelCritical:
		return types.SeverityCritical
	case types.AlertLevelWarning:
		return types.SeverityWarning
	default:
		return types.SeverityInfo
	}
}
