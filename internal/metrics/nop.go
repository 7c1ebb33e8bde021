package metrics

import "github.com/mkarlen/fairshare/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	collector := metrics.NewNop()
//	eng, err := fairshare.NewEngine(&cfg, fairshare.WithMetrics(collector))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// AggregationMetrics implementation

// RecordAggregation discards the aggregation run metric.
func (n *NopMetrics) RecordAggregation(_ /* view */ types.LoadView, _ /* taskCount */, _ /* memberCount */ int, _ /* duration */ float64) {
	// No-op
}

// ClassificationMetrics implementation

// RecordClassification discards the household classification metric.
func (n *NopMetrics) RecordClassification(_ /* level */ types.AlertLevel, _ /* ratio */ float64) {
	// No-op
}

// RecordMemberState discards the member state metric.
func (n *NopMetrics) RecordMemberState(_ /* state */ types.MemberStateKind) {
	// No-op
}

// AssignmentMetrics implementation

// RecordAssignmentDecision discards the assignment decision metric.
func (n *NopMetrics) RecordAssignmentDecision(_ /* category */ types.Category, _ /* candidates */ int) {
	// No-op
}

// RecordNoEligibleMember discards the failed selection counter.
func (n *NopMetrics) RecordNoEligibleMember(_ /* category */ types.Category) {
	// No-op
}

// RebalanceMetrics implementation

// RecordSuggestions discards the suggestion computation metric.
func (n *NopMetrics) RecordSuggestions(_ /* produced */ int, _ /* startRatio */, _ /* endRatio */ float64) {
	// No-op
}

// RecordApplyResult discards the apply outcome metric.
func (n *NopMetrics) RecordApplyResult(_ /* applied */ bool, _ /* reason */ types.RejectReason) {
	// No-op
}
