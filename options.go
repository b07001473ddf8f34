package grouping

// Option configures a Matcher with optional dependencies.
type Option func(*matcherOptions)

// matcherOptions holds optional Matcher configuration.
type matcherOptions struct {
	strategy GroupStrategy
	logger   Logger
	penalty  PenaltyOption
}

// PenaltyOption carries a scorer penalty function through matcher options
// without the root package depending on scorer internals at call sites.
type PenaltyOption func(count int) float64

// WithStrategy sets a custom group builder.
//
// The default is the greedy builder. Use strategy.NewSampling to select the
// candidate-draw builder, or provide any types.GroupStrategy.
//
// Example:
//
//	m, err := grouping.NewMatcher(&cfg, grouping.WithStrategy(strategy.NewSampling(500)))
func WithStrategy(s GroupStrategy) Option {
	return func(o *matcherOptions) {
		o.strategy = s
	}
}

// WithLogger sets a logger.
//
// The default logs via log/slog at info level. Pass a logger from the
// testing package to capture output in tests.
func WithLogger(logger Logger) Option {
	return func(o *matcherOptions) {
		o.logger = logger
	}
}

// WithPenalty sets the penalty applied to raw co-occurrence counts when
// scoring pairs. The function must be non-decreasing; the default is the
// identity (plain cumulative counting).
func WithPenalty(fn PenaltyOption) Option {
	return func(o *matcherOptions) {
		o.penalty = fn
	}
}
