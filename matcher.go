package grouping

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/timmens/random-grouping/internal/hash"
	"github.com/timmens/random-grouping/internal/logging"
	"github.com/timmens/random-grouping/scorer"
	"github.com/timmens/random-grouping/strategy"
	"github.com/timmens/random-grouping/types"
)

// Matcher turns a roster and a matching history into a new grouping.
//
// A Matcher owns no persistent state: CreateMatching is a pure function of
// (roster, history, configuration, seed). The roster and history arguments
// are never mutated; the updated history is returned as a new value and the
// caller is the sole writer of the persisted record.
//
// Lifecycle:
//   - Create with NewMatcher()
//   - Call CreateMatching once per meeting
//   - Persist Result.History and Result.Grouping via the store package
type Matcher struct {
	cfg      Config
	strategy GroupStrategy
	logger   Logger
	penalty  PenaltyOption

	// now is overridable in tests for clock-derived seeds.
	now func() time.Time
}

// Result is the outcome of one matching run.
type Result struct {
	// Meeting is the index the run was recorded under.
	Meeting int

	// Grouping is the new partition of the active participants.
	Grouping Grouping

	// History contains every prior entry plus the new grouping.
	History *History

	// Excluded lists participants left out to satisfy a hard maximum
	// group size, most-matched first. Empty unless maxSize == minSize and
	// the active count is not a multiple of it.
	Excluded []Participant
}

// NewMatcher creates a Matcher from the given configuration.
//
// Defaults are applied to zero-valued config fields and the configuration is
// validated up front; a Matcher that constructs successfully cannot fail on
// configuration grounds later except for roster-dependent checks.
//
// The default builder is the greedy strategy; when cfg.Candidates is set and
// no strategy is supplied, the sampling builder is selected instead.
//
// Parameters:
//   - cfg: Matching configuration; nil selects DefaultConfig
//   - opts: Optional dependencies (WithStrategy, WithLogger, WithPenalty)
//
// Returns:
//   - *Matcher: Initialized matcher
//   - error: Configuration error wrapping ErrInvalidConfig
func NewMatcher(cfg *Config, opts ...Option) (*Matcher, error) {
	var conf Config
	if cfg != nil {
		conf = *cfg
	}
	ApplyDefaults(&conf)
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	options := &matcherOptions{}
	for _, opt := range opts {
		opt(options)
	}

	if options.strategy == nil {
		if conf.Candidates > 0 {
			options.strategy = strategy.NewSampling(conf.Candidates)
		} else {
			options.strategy = strategy.NewGreedy()
		}
	}
	if options.logger == nil {
		options.logger = logging.NewSlogDefault(0)
	}

	return &Matcher{
		cfg:      conf,
		strategy: options.strategy,
		logger:   options.logger,
		penalty:  options.penalty,
		now:      time.Now,
	}, nil
}

// CreateMatching produces a new grouping of the active roster and the
// updated history.
//
// All validation happens before any scoring: multiplier keys are checked
// against the roster's attributes and every history ID must be present on
// the roster. Once validated, the build cannot fail and either a complete
// grouping plus updated history is returned or nothing is.
//
// An empty active set yields an empty grouping and the history unchanged.
//
// Parameters:
//   - roster: Current participant table (never mutated)
//   - history: Prior groupings; nil means first-time use
//
// Returns:
//   - *Result: Grouping, updated history, meeting index, exclusions
//   - error: Configuration or data-integrity error
func (m *Matcher) CreateMatching(roster *Roster, history *History) (*Result, error) {
	if roster == nil {
		return nil, ErrRosterRequired
	}
	if m.strategy == nil {
		return nil, ErrStrategyRequired
	}
	if history == nil {
		history = types.NewHistory(nil)
	}

	if err := m.validate(roster, history); err != nil {
		return nil, err
	}

	active := roster.Active()
	meeting := history.NextMeeting()

	minSize, err := m.resolveMinSize(len(active))
	if err != nil {
		return nil, err
	}

	sc := m.newScorer(roster, history)

	var excluded []Participant
	if m.cfg.MaxSize > 0 && m.cfg.MaxSize == minSize {
		active, excluded = m.excludeOverflow(active, sc)
		for _, p := range excluded {
			m.logger.Warn("participant excluded to satisfy maximum group size",
				"id", p.ID, "name", p.Name)
		}
	}

	ids := make([]string, len(active))
	for i, p := range active {
		ids[i] = p.ID
	}

	if len(ids) == 0 {
		m.logger.Warn("no active participants, nothing to group", "meeting", meeting)
		return &Result{Meeting: meeting, Grouping: Grouping{}, History: history}, nil
	}

	matrix := sc.Matrix(ids)
	rng := m.newRNG(meeting)

	groups, err := m.strategy.Build(ids, matrix, minSize, rng)
	if err != nil {
		return nil, fmt.Errorf("building groups: %w", err)
	}

	newGrouping := types.NewGrouping(groups)
	updated := history.Append(newGrouping, meeting)

	m.logger.Info("created matching",
		"meeting", meeting,
		"participants", len(ids),
		"groups", len(newGrouping),
		"minSize", minSize,
		"excluded", len(excluded))

	return &Result{
		Meeting:  meeting,
		Grouping: newGrouping,
		History:  updated,
		Excluded: excluded,
	}, nil
}

// validate runs the roster-dependent checks: multiplier keys must name
// roster attributes and history IDs must exist on the roster.
func (m *Matcher) validate(roster *Roster, history *History) error {
	if len(m.cfg.Multipliers) > 0 {
		attrs := make(map[string]struct{})
		for _, name := range roster.AttributeNames() {
			attrs[name] = struct{}{}
		}
		for name := range m.cfg.Multipliers {
			if _, ok := attrs[name]; !ok {
				return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, ErrUnknownAttribute, name)
			}
		}
	}

	for id := range history.IDs() {
		if !roster.Contains(id) {
			return fmt.Errorf("%w: %q", ErrUnknownHistoryID, id)
		}
	}

	return nil
}

// resolveMinSize returns the effective minimum group size, deriving it from
// NGroups when requested.
func (m *Matcher) resolveMinSize(activeCount int) (int, error) {
	minSize := m.cfg.MinSize
	if m.cfg.NGroups > 0 {
		derived := activeCount / m.cfg.NGroups
		if derived < 1 {
			return 0, fmt.Errorf("%w: %d active for %d groups",
				ErrNotEnoughParticipants, activeCount, m.cfg.NGroups)
		}
		if minSize > derived {
			return 0, fmt.Errorf("%w: %d active cannot fill %d groups of at least %d",
				ErrNotEnoughParticipants, activeCount, m.cfg.NGroups, minSize)
		}
		minSize = derived
	}

	if m.cfg.MaxSize > 0 && m.cfg.MaxSize < minSize {
		return 0, fmt.Errorf("%w: %w (min %d, max %d)",
			ErrInvalidConfig, ErrInvalidMaxSize, minSize, m.cfg.MaxSize)
	}

	return minSize, nil
}

// excludeOverflow drops the active-count remainder modulo MaxSize, picking
// the participants with the most recorded matchings first; ties keep roster
// order.
func (m *Matcher) excludeOverflow(active []Participant, sc *scorer.Scorer) (kept, excluded []Participant) {
	n := len(active) % m.cfg.MaxSize
	if n == 0 {
		return active, nil
	}

	ids := make([]string, len(active))
	for i, p := range active {
		ids[i] = p.ID
	}
	totals := sc.TotalCounts(ids)

	order := make([]Participant, len(active))
	copy(order, active)
	sort.SliceStable(order, func(i, j int) bool {
		return totals[order[i].ID] > totals[order[j].ID]
	})

	drop := make(map[string]struct{}, n)
	for _, p := range order[:n] {
		drop[p.ID] = struct{}{}
		excluded = append(excluded, p)
	}

	for _, p := range active {
		if _, ok := drop[p.ID]; !ok {
			kept = append(kept, p)
		}
	}

	return kept, excluded
}

// newScorer builds the affinity scorer for one run.
func (m *Matcher) newScorer(roster *Roster, history *History) *scorer.Scorer {
	var opts []scorer.Option
	if m.penalty != nil {
		opts = append(opts, scorer.WithPenalty(scorer.PenaltyFunc(m.penalty)))
	}

	return scorer.New(roster, history, m.cfg.Multipliers, opts...)
}

// newRNG seeds the run's random source. The configured seed and the meeting
// index are folded together so repeated runs for the same meeting reproduce
// exactly while consecutive meetings diverge.
func (m *Matcher) newRNG(meeting int) *rand.Rand {
	base := m.cfg.Seed
	if base == 0 {
		base = uint64(m.now().UnixNano()) //nolint:gosec
	}
	seed := hash.SeedFor(base, meeting)

	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
