package fairshare

import (
	"context"
	"fmt"
	"time"

	"github.com/mkarlen/fairshare/alert"
	"github.com/mkarlen/fairshare/availability"
	"github.com/mkarlen/fairshare/balance"
	"github.com/mkarlen/fairshare/internal/logging"
	"github.com/mkarlen/fairshare/internal/metrics"
	"github.com/mkarlen/fairshare/load"
	"github.com/mkarlen/fairshare/notify"
	"github.com/mkarlen/fairshare/rebalance"
	"github.com/mkarlen/fairshare/store/memory"
	"github.com/mkarlen/fairshare/strategy"
	"github.com/mkarlen/fairshare/weight"
)

// Engine is the main entry point of the fairshare library. It composes the
// domain packages into one facade:
//   - Load aggregation and balance classification
//   - Assignment selection with preference and rotation scoring
//   - Rebalance suggestion and confirmed application
//   - Alert and digest generation with optional publishing
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - The engine holds no mutable task state; callers pass snapshots and
//     persistence goes through the configured stores
//
// Lifecycle:
//   - Create with NewEngine()
//   - Call the compute/suggest/apply methods as task data arrives
//   - There is no Start/Stop: the engine is a pure computation facade over
//     its stores
type Engine struct {
	cfg Config

	logger  Logger
	metrics MetricsCollector

	model      *weight.Model
	aggregator *load.Aggregator
	classifier *balance.Classifier
	strategy   AssignmentStrategy
	suggester  *rebalance.Suggester
	applier    *rebalance.Applier
	generator  *alert.Generator

	rotation  RotationStore
	publisher AlertPublisher

	now func() time.Time
}

// NewEngine creates an Engine from the provided configuration.
//
// Returns a concrete *Engine struct following the "accept interfaces,
// return structs" principle. Consumers can define their own interfaces
// for testing if needed.
//
// The engine works without persistence: audit and rotation stores default
// to in-memory implementations, the publisher defaults to a no-op, and
// without an assignment sink the engine is read-only (ApplySuggestion
// returns ErrSinkRequired).
//
// Parameters:
//   - cfg: Engine configuration (missing values are defaulted)
//   - opts: Optional dependencies (logger, metrics, strategy, stores, publisher)
//
// Returns:
//   - *Engine: Initialized engine instance
//   - error: Validation error if configuration is invalid
//
// Example:
//
//	cfg := fairshare.DefaultConfig()
//	cfg.HouseholdID = "hh-42"
//	engine, err := fairshare.NewEngine(&cfg)
func NewEngine(cfg *Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// Apply options
	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logging.NewNop()
	}

	// Validate with warnings after logger is available
	cfg.ValidateWithWarnings(loggerInstance)

	model := weight.NewModel(weight.WithUrgencyMultiplier(cfg.Weights.UrgencyMultiplier))

	assignStrategy := options.strategy
	if assignStrategy == nil {
		assignStrategy = strategy.NewLeastLoaded(
			strategy.WithPreferenceBonus(cfg.Strategy.PreferenceBonus),
			strategy.WithRotationPenalty(cfg.Strategy.RotationPenalty),
			strategy.WithLogger(loggerInstance),
		)
	}

	rotation := options.rotation
	audit := options.audit
	if rotation == nil || audit == nil {
		fallback := memory.New()
		if rotation == nil {
			rotation = fallback
		}
		if audit == nil {
			audit = fallback
		}
	}

	publisher := options.publisher
	if publisher == nil {
		publisher = notify.NewNop()
	}

	classifier := balance.NewClassifier(cfg.Thresholds)

	e := &Engine{
		cfg:        *cfg,
		logger:     loggerInstance,
		metrics:    metricsCollector,
		model:      model,
		aggregator: load.NewAggregator(model),
		classifier: classifier,
		strategy:   assignStrategy,
		suggester: rebalance.NewSuggester(model, cfg.Thresholds,
			rebalance.WithSuggesterLogger(loggerInstance),
			rebalance.WithSuggesterMetrics(metricsCollector),
		),
		generator: alert.NewGenerator(classifier, alert.WithLogger(loggerInstance)),
		rotation:  rotation,
		publisher: publisher,
		now:       time.Now,
	}

	if options.sink != nil {
		e.applier = rebalance.NewApplier(options.sink, audit,
			rebalance.WithApplierModel(model),
			rebalance.WithApplierLogger(loggerInstance),
			rebalance.WithApplierMetrics(metricsCollector),
		)
	}

	return e, nil
}

// ComputeLoadDistribution aggregates task load over a window and
// classifies the household's balance.
//
// The classification's reference date is the window end, so inactivity
// day counts line up with the period being reported on.
//
// Parameters:
//   - tasks: Household task snapshot
//   - members: Household members (deactivated members are excluded)
//   - window: Aggregation window [Start, End)
//   - view: ViewCompleted for retrospective load, ViewPending for open load
//
// Returns:
//   - Distribution: Per-member load profiles plus the unassigned remainder
//   - BalanceState: Household and per-member classification
//   - error: ErrInvalidWindow when the completed view gets a malformed window
func (e *Engine) ComputeLoadDistribution(
	tasks []Task,
	members []Member,
	window Window,
	view LoadView,
) (Distribution, BalanceState, error) {
	start := e.now()
	dist, err := e.aggregator.Aggregate(tasks, members, window, view)
	if err != nil {
		return Distribution{}, BalanceState{}, err
	}
	e.metrics.RecordAggregation(view, len(tasks), len(dist.Profiles), e.now().Sub(start).Seconds())

	state := e.classifier.Classify(dist.Profiles, window.End)
	e.metrics.RecordClassification(state.AlertLevel, state.ImbalanceRatio)
	for _, ms := range state.Members {
		e.metrics.RecordMemberState(ms.State)
	}

	e.logger.Debug("load distribution computed",
		"view", view,
		"members", len(dist.Profiles),
		"ratio", state.ImbalanceRatio,
		"alertLevel", state.AlertLevel,
	)

	return dist, state, nil
}

// WeekLoads sums pending load points per member over a week window,
// suited for the weekly capacity checks in SelectAssignee and
// ApplySuggestion.
//
// Parameters:
//   - tasks: Household task snapshot
//   - week: The week window [Start, End)
//
// Returns:
//   - map[string]int: Load points keyed by member ID
func (e *Engine) WeekLoads(tasks []Task, week Window) map[string]int {
	return e.aggregator.WeekLoads(tasks, week)
}

// SelectAssignee picks the best member for a new task.
//
// Eligibility filters out deactivated members, members blocking the
// task's category, members excluded on the task's date, and members whose
// weekly cap the task would exceed. The configured strategy scores the
// remaining candidates; the default least-loaded strategy prefers low
// current load, rewards category preference, and penalizes the member who
// received the last task in this category.
//
// Rotation state is best-effort: a rotation store failure is logged and
// selection proceeds without it.
//
// Parameters:
//   - ctx: Context for rotation store access
//   - task: Task to assign
//   - members: Household members
//   - weekLoads: Current-week load per member ID (from WeekLoads)
//
// Returns:
//   - string: Selected member ID
//   - error: ErrNoEligibleMembers when nobody qualifies ("assign manually")
func (e *Engine) SelectAssignee(
	ctx context.Context,
	task Task,
	members []Member,
	weekLoads map[string]int,
) (string, error) {
	category := task.NormalizedCategory()
	points := e.model.Points(task)

	eligible := availability.EligibleMembers(members, task, e.assignmentDate(task), points, weekLoads)
	if len(eligible) == 0 {
		e.metrics.RecordNoEligibleMember(category)
		e.logger.Info("no eligible members for task", "taskId", task.ID, "category", category)

		return "", ErrNoEligibleMembers
	}

	candidates := make([]Candidate, 0, len(eligible))
	for _, m := range eligible {
		candidates = append(candidates, Candidate{Member: m, CurrentLoad: weekLoads[m.ID]})
	}

	lastAssignee, err := e.rotation.LastAssignee(ctx, category)
	if err != nil {
		e.logger.Warn("rotation lookup failed, selecting without rotation state",
			"category", category, "error", err)
		lastAssignee = ""
	}

	selected, err := e.strategy.SelectAssignee(task, candidates, lastAssignee)
	if err != nil {
		return "", err
	}
	e.metrics.RecordAssignmentDecision(category, len(candidates))

	// Best-effort: a lost rotation write only weakens the next rotation
	// penalty, it never invalidates the pick.
	if err := e.rotation.RecordAssignment(ctx, category, selected); err != nil {
		e.logger.Warn("failed to record rotation state",
			"category", category, "memberId", selected, "error", err)
	}

	e.logger.Debug("assignee selected",
		"taskId", task.ID,
		"category", category,
		"memberId", selected,
		"candidates", len(candidates),
	)

	return selected, nil
}

// SuggestRebalance proposes up to maxSuggestions task moves that reduce
// the household imbalance ratio.
//
// Suggestions are transient and deterministic: the same snapshot always
// yields the same ordered list with the same content-derived IDs. Pass
// maxSuggestions <= 0 to use the configured default.
//
// Parameters:
//   - tasks: Household task snapshot
//   - members: Household members
//   - profiles: Load profiles from ComputeLoadDistribution
//   - ref: Reference date for eligibility of undated tasks
//   - maxSuggestions: Upper bound on proposed moves (<= 0 = config default)
//
// Returns:
//   - []RebalanceSuggestion: Proposed moves in application order (nil when
//     the household is already balanced or no improving move exists)
func (e *Engine) SuggestRebalance(
	tasks []Task,
	members []Member,
	profiles []LoadProfile,
	ref time.Time,
	maxSuggestions int,
) []RebalanceSuggestion {
	if maxSuggestions <= 0 {
		maxSuggestions = e.cfg.MaxSuggestions
	}

	return e.suggester.Suggest(tasks, members, profiles, ref, maxSuggestions)
}

// ApplySuggestion commits a confirmed rebalance suggestion through the
// assignment sink.
//
// The suggestion is re-validated against live task state: a completed or
// already-reassigned task and an ineligible target each produce a refusal
// with a typed reason rather than an error. The committed reassignment is
// recorded in the audit store.
//
// Parameters:
//   - ctx: Context for sink and audit store access
//   - suggestion: The confirmed suggestion
//   - members: Household members for target re-validation
//   - weekLoads: Current-week load per member ID for the capacity check
//   - actorID: Who confirmed the suggestion, recorded in the audit entry
//
// Returns:
//   - ApplyResult: Applied flag, refusal reason, and audit record
//   - error: ErrSinkRequired without a sink, ErrTaskNotFound for unknown
//     tasks, or a transport failure
func (e *Engine) ApplySuggestion(
	ctx context.Context,
	suggestion RebalanceSuggestion,
	members []Member,
	weekLoads map[string]int,
	actorID string,
) (ApplyResult, error) {
	if e.applier == nil {
		return ApplyResult{}, ErrSinkRequired
	}

	return e.applier.Apply(ctx, suggestion, members, weekLoads, actorID)
}

// BuildAlerts derives actionable alerts from a balance classification.
//
// Alerts carry structured evidence and an action key instead of prose;
// renderers own the wording. A balanced, fully active household yields an
// empty slice.
//
// Parameters:
//   - state: Classification from ComputeLoadDistribution
//
// Returns:
//   - []Alert: Alerts ordered critical first, then warning, then info
func (e *Engine) BuildAlerts(state BalanceState) []Alert {
	return e.generator.BuildAlerts(state)
}

// BuildDigest summarizes a period against the previous one, reporting
// per-member load shares and the household trend direction.
//
// Parameters:
//   - current: Profiles for the period being summarized
//   - previous: Profiles for the preceding period (may be empty)
//   - periodStart: Inclusive period start
//   - periodEnd: Exclusive period end
//
// Returns:
//   - Digest: Period summary with trend
func (e *Engine) BuildDigest(current, previous []LoadProfile, periodStart, periodEnd time.Time) Digest {
	return e.generator.BuildDigest(current, previous, periodStart, periodEnd)
}

// PublishAlerts sends alerts through the configured publisher, scoped to
// the configured household. A no-op without a publisher option.
//
// Parameters:
//   - ctx: Context for publish timeout/cancellation
//   - alerts: Alerts from BuildAlerts (empty batches publish nothing)
//
// Returns:
//   - error: Publish failure
func (e *Engine) PublishAlerts(ctx context.Context, alerts []Alert) error {
	return e.publisher.PublishAlerts(ctx, e.cfg.HouseholdID, alerts)
}

// PublishDigest sends a digest through the configured publisher, scoped
// to the configured household. A no-op without a publisher option.
//
// Parameters:
//   - ctx: Context for publish timeout/cancellation
//   - digest: Digest from BuildDigest
//
// Returns:
//   - error: Publish failure
func (e *Engine) PublishDigest(ctx context.Context, digest Digest) error {
	return e.publisher.PublishDigest(ctx, e.cfg.HouseholdID, digest)
}

// assignmentDate resolves the date eligibility is checked against: the
// task's due date when present, otherwise the current time.
func (e *Engine) assignmentDate(task Task) time.Time {
	if task.DueDate != nil {
		return *task.DueDate
	}

	return e.now()
}
