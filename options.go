package teammate

// Option configures a Coordinator with optional dependencies.
type Option func(*coordinatorOptions)

// coordinatorOptions holds optional Coordinator configuration.
type coordinatorOptions struct {
	logger        Logger
	metrics       MetricsCollector
	strategy      TeamStrategy
	strategySet   bool
	hooks         *Hooks
	reader        RecordReader
	writer        RecordWriter
	teamWriter    TeamWriter
	authenticator Authenticator
	publisher     EventPublisher
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (slog-compatible key/value style)
//
// Returns:
//   - Option: Functional option for NewCoordinator
func WithLogger(logger Logger) Option {
	return func(o *coordinatorOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "teammate")
//	coord, err := teammate.NewCoordinator(cfg, teammate.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *coordinatorOptions) {
		o.metrics = metrics
	}
}

// WithStrategy sets the team assignment strategy used by FormTeams.
// Defaults to strategy.NewSkillBalanced().
//
// Example:
//
//	coord, err := teammate.NewCoordinator(cfg, teammate.WithStrategy(strategy.NewRoundRobin()))
func WithStrategy(s TeamStrategy) Option {
	return func(o *coordinatorOptions) {
		o.strategy = s
		o.strategySet = true
	}
}

// WithHooks sets lifecycle event hooks.
//
// Example:
//
//	hooks := &teammate.Hooks{
//	    OnTeamsFormed: func(ctx context.Context, teams []*teammate.Team) error {
//	        return notify(teams)
//	    },
//	}
//	coord, err := teammate.NewCoordinator(cfg, teammate.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *coordinatorOptions) {
		o.hooks = hooks
	}
}

// WithRecordReader sets the participant record reader used by
// ImportParticipants. Defaults to a csv.Handler.
func WithRecordReader(reader RecordReader) Option {
	return func(o *coordinatorOptions) {
		o.reader = reader
	}
}

// WithRecordWriter sets the append writer used to persist completed
// participants. Defaults to a csv.Handler, which serializes concurrent
// callers.
func WithRecordWriter(writer RecordWriter) Option {
	return func(o *coordinatorOptions) {
		o.writer = writer
	}
}

// WithTeamWriter sets the batch writer used by SaveTeams. Defaults to a
// csv.Handler.
func WithTeamWriter(writer TeamWriter) Option {
	return func(o *coordinatorOptions) {
		o.teamWriter = writer
	}
}

// WithAuthenticator sets the organizer credential check used by Login.
// Defaults to a plaintext check against the configured credential pair.
func WithAuthenticator(authenticator Authenticator) Option {
	return func(o *coordinatorOptions) {
		o.authenticator = authenticator
	}
}

// WithEventPublisher sets an event publisher notified on participant
// registration and team formation. No events are published by default.
//
// Example:
//
//	pub, err := events.NewNATSPublisher(ctx, nc)
//	if err != nil { ... }
//	coord, err := teammate.NewCoordinator(cfg, teammate.WithEventPublisher(pub))
func WithEventPublisher(publisher EventPublisher) Option {
	return func(o *coordinatorOptions) {
		o.publisher = publisher
	}
}
