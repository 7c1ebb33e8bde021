package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mkarlen/fairshare/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are registered lazily on first use so that constructing a collector
// never panics on duplicate registration in tests.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	aggregationRuns     *prometheus.CounterVec
	aggregationDuration *prometheus.HistogramVec
	aggregationTasks    *prometheus.HistogramVec

	classificationResults *prometheus.CounterVec
	imbalanceRatio        prometheus.Gauge
	memberStates          *prometheus.CounterVec

	assignmentDecisions *prometheus.CounterVec
	candidateSetSize    prometheus.Histogram
	noEligibleMembers   *prometheus.CounterVec

	suggestionsProduced prometheus.Histogram
	ratioImprovement    prometheus.Histogram
	applyResults        *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "fairshare" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "fairshare"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.aggregationRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "load",
			Name:      "aggregations_total",
			Help:      "Total load aggregation runs by view (completed, pending).",
		}, []string{"view"})

		p.aggregationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "load",
			Name:      "aggregation_duration_seconds",
			Help:      "Duration of load aggregation runs in seconds by view.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 10), // 1ms .. ~0.5s
		}, []string{"view"})

		p.aggregationTasks = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "load",
			Name:      "aggregation_tasks",
			Help:      "Number of tasks folded into each aggregation run by view.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500},
		}, []string{"view"})

		p.classificationResults = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "balance",
			Name:      "classifications_total",
			Help:      "Total classification outcomes by household alert level.",
		}, []string{"level"})

		p.imbalanceRatio = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "balance",
			Name:      "imbalance_ratio",
			Help:      "Most recently computed household imbalance ratio.",
		})

		p.memberStates = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "balance",
			Name:      "member_states_total",
			Help:      "Total per-member classification outcomes by state (normal, overloaded, inactive).",
		}, []string{"state"})

		p.assignmentDecisions = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "decisions_total",
			Help:      "Total assignment decisions by task category.",
		}, []string{"category"})

		p.candidateSetSize = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "candidate_set_size",
			Help:      "Size of the eligible member set each decision was made from.",
			Buckets:   []float64{1, 2, 3, 4, 5, 8, 12},
		})

		p.noEligibleMembers = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "assignment",
			Name:      "no_eligible_members_total",
			Help:      "Total selections that found no eligible member, by category.",
		}, []string{"category"})

		p.suggestionsProduced = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "rebalance",
			Name:      "suggestions_produced",
			Help:      "Number of suggestions returned per computation.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8},
		})

		p.ratioImprovement = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "rebalance",
			Name:      "ratio_improvement",
			Help:      "Imbalance ratio improvement (start minus projected end) per computation.",
			Buckets:   []float64{0, 0.25, 0.5, 1, 1.5, 2, 3, 5},
		})

		p.applyResults = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "rebalance",
			Name:      "apply_results_total",
			Help:      "Total suggestion apply outcomes by result (applied, rejected) and reason.",
		}, []string{"result", "reason"})

		p.reg.MustRegister(p.aggregationRuns)
		p.reg.MustRegister(p.aggregationDuration)
		p.reg.MustRegister(p.aggregationTasks)
		p.reg.MustRegister(p.classificationResults)
		p.reg.MustRegister(p.imbalanceRatio)
		p.reg.MustRegister(p.memberStates)
		p.reg.MustRegister(p.assignmentDecisions)
		p.reg.MustRegister(p.candidateSetSize)
		p.reg.MustRegister(p.noEligibleMembers)
		p.reg.MustRegister(p.suggestionsProduced)
		p.reg.MustRegister(p.ratioImprovement)
		p.reg.MustRegister(p.applyResults)
	})
}

// AggregationMetrics implementation

// RecordAggregation records one load aggregation run.
func (p *PrometheusCollector) RecordAggregation(view types.LoadView, taskCount, _ int, duration float64) {
	p.ensureRegistered()
	p.aggregationRuns.WithLabelValues(string(view)).Inc()
	p.aggregationDuration.WithLabelValues(string(view)).Observe(duration)
	p.aggregationTasks.WithLabelValues(string(view)).Observe(float64(taskCount))
}

// ClassificationMetrics implementation

// RecordClassification records a household classification outcome and the
// latest imbalance ratio.
func (p *PrometheusCollector) RecordClassification(level types.AlertLevel, ratio float64) {
	p.ensureRegistered()
	p.classificationResults.WithLabelValues(string(level)).Inc()
	p.imbalanceRatio.Set(ratio)
}

// RecordMemberState records one member's classification outcome.
func (p *PrometheusCollector) RecordMemberState(state types.MemberStateKind) {
	p.ensureRegistered()
	p.memberStates.WithLabelValues(string(state)).Inc()
}

// AssignmentMetrics implementation

// RecordAssignmentDecision records one optimizer pick.
func (p *PrometheusCollector) RecordAssignmentDecision(category types.Category, candidates int) {
	p.ensureRegistered()
	p.assignmentDecisions.WithLabelValues(string(category)).Inc()
	p.candidateSetSize.Observe(float64(candidates))
}

// RecordNoEligibleMember records a selection that found nobody eligible.
func (p *PrometheusCollector) RecordNoEligibleMember(category types.Category) {
	p.ensureRegistered()
	p.noEligibleMembers.WithLabelValues(string(category)).Inc()
}

// RebalanceMetrics implementation

// RecordSuggestions records one suggestion computation.
func (p *PrometheusCollector) RecordSuggestions(produced int, startRatio, endRatio float64) {
	p.ensureRegistered()
	p.suggestionsProduced.Observe(float64(produced))
	p.ratioImprovement.Observe(startRatio - endRatio)
}

// RecordApplyResult records the outcome of one apply operation.
func (p *PrometheusCollector) RecordApplyResult(applied bool, reason types.RejectReason) {
	p.ensureRegistered()
	result := "applied"
	if !applied {
		result = "rejected"
	}
	p.applyResults.WithLabelValues(result, string(reason)).Inc()
}
