package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods may be called concurrently and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	AggregationMetrics
	ClassificationMetrics
	AssignmentMetrics
	RebalanceMetrics
}

// AggregationMetrics defines metrics for load aggregation operations.
type AggregationMetrics interface {
	// RecordAggregation records one load aggregation run.
	//
	// Parameters:
	//   - view: Aggregated view ("completed" or "pending")
	//   - taskCount: Number of tasks folded into the distribution
	//   - memberCount: Number of active members profiled
	//   - duration: Time taken in seconds
	RecordAggregation(view LoadView, taskCount, memberCount int, duration float64)
}

// ClassificationMetrics defines metrics for balance classification.
type ClassificationMetrics interface {
	// RecordClassification records a household classification outcome.
	//
	// Parameters:
	//   - level: Resulting household alert level
	//   - ratio: Computed imbalance ratio
	RecordClassification(level AlertLevel, ratio float64)

	// RecordMemberState records one member's classification outcome.
	//
	// Parameters:
	//   - state: Member state kind ("normal", "overloaded", "inactive")
	RecordMemberState(state MemberStateKind)
}

// AssignmentMetrics defines metrics for assignment selection.
type AssignmentMetrics interface {
	// RecordAssignmentDecision records one optimizer pick.
	//
	// Parameters:
	//   - category: Task category assigned
	//   - candidates: Size of the eligible set the pick was made from
	RecordAssignmentDecision(category Category, candidates int)

	// RecordNoEligibleMember records a selection that found nobody
	// eligible.
	//
	// Parameters:
	//   - category: Task category that could not be assigned
	RecordNoEligibleMember(category Category)
}

// RebalanceMetrics defines metrics for suggestion and apply operations.
type RebalanceMetrics interface {
	// RecordSuggestions records one suggestion computation.
	//
	// Parameters:
	//   - produced: Number of suggestions returned
	//   - startRatio: Imbalance ratio before the proposed moves
	//   - endRatio: Projected ratio after the final proposed move
	RecordSuggestions(produced int, startRatio, endRatio float64)

	// RecordApplyResult records the outcome of one apply operation.
	//
	// Parameters:
	//   - applied: true when the reassignment committed
	//   - reason: Rejection reason (RejectNone when applied)
	RecordApplyResult(applied bool, reason RejectReason)
}
