package fairshare

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	logger    Logger
	metrics   MetricsCollector
	strategy  AssignmentStrategy
	sink      AssignmentSink
	audit     AuditStore
	rotation  RotationStore
	publisher AlertPublisher
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	engine, _ := fairshare.NewEngine(&cfg, fairshare.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	collector := metrics.NewPrometheusCollector(registry)
//	engine, _ := fairshare.NewEngine(&cfg, fairshare.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithStrategy sets a custom assignment strategy, replacing the default
// least-loaded strategy.
//
// Parameters:
//   - strategy: AssignmentStrategy implementation
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	engine, _ := fairshare.NewEngine(&cfg, fairshare.WithStrategy(strategy.NewRoundRobin()))
func WithStrategy(strategy AssignmentStrategy) Option {
	return func(o *engineOptions) {
		o.strategy = strategy
	}
}

// WithSink sets the assignment sink that ApplySuggestion commits
// reassignments through. Without a sink the engine is read-only:
// ApplySuggestion returns ErrSinkRequired.
//
// Parameters:
//   - sink: AssignmentSink implementation (e.g. natskv.Tasks or memory.Store)
//
// Returns:
//   - Option: Functional option for NewEngine
func WithSink(sink AssignmentSink) Option {
	return func(o *engineOptions) {
		o.sink = sink
	}
}

// WithAuditStore sets the store that receives reassignment audit records.
// Defaults to an in-memory store.
//
// Parameters:
//   - audit: AuditStore implementation
//
// Returns:
//   - Option: Functional option for NewEngine
func WithAuditStore(audit AuditStore) Option {
	return func(o *engineOptions) {
		o.audit = audit
	}
}

// WithRotationStore sets the store that remembers the last assignee per
// category, consulted by the default strategy's rotation penalty.
// Defaults to an in-memory store.
//
// Parameters:
//   - rotation: RotationStore implementation
//
// Returns:
//   - Option: Functional option for NewEngine
func WithRotationStore(rotation RotationStore) Option {
	return func(o *engineOptions) {
		o.rotation = rotation
	}
}

// WithPublisher sets the publisher used by PublishAlerts and
// PublishDigest. Defaults to a no-op publisher.
//
// Parameters:
//   - publisher: AlertPublisher implementation (e.g. notify.NATSPublisher)
//
// Returns:
//   - Option: Functional option for NewEngine
//
// Example:
//
//	pub := notify.NewNATSPublisher(conn)
//	engine, _ := fairshare.NewEngine(&cfg, fairshare.WithPublisher(pub))
func WithPublisher(publisher AlertPublisher) Option {
	return func(o *engineOptions) {
		o.publisher = publisher
	}
}
