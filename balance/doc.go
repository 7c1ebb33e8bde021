// Package balance classifies household load distributions.
//
// The classifier derives an imbalance ratio (highest member load over
// lowest, floored at 1) and maps it onto three household levels:
// balanced, warning, critical. Per member it detects overload (absolute
// threshold or household-average multiple, either condition suffices) and
// inactivity (days since last completed task against warning and critical
// thresholds).
//
// Classification is a pure function of its inputs: calling it twice on
// the same profiles yields identical output.
package balance
