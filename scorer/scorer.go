package scorer

import (
	"math"
	"sort"

	"github.com/timmens/random-grouping/types"
)

// PenaltyFunc maps a raw co-occurrence count to the base cost term.
//
// Any non-decreasing function preserves the scorer's monotonicity guarantee:
// a pair grouped together more often never scores lower than one grouped
// together less often, all else equal.
type PenaltyFunc func(count int) float64

// LinearPenalty is the default base term: the raw repeat count.
func LinearPenalty(count int) float64 {
	return float64(count)
}

// ExpPenalty punishes repeat pairings exponentially, so one pair meeting
// five times costs far more than five pairs meeting once.
func ExpPenalty(count int) float64 {
	return math.Exp(float64(count)) - 1
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithPenalty sets the penalty function applied to the co-occurrence count.
// The default is LinearPenalty. The function must be non-decreasing.
func WithPenalty(fn PenaltyFunc) Option {
	return func(s *Scorer) {
		if fn != nil {
			s.penalty = fn
		}
	}
}

// Scorer computes the pairwise grouping cost for active participants.
//
// The cost of a pair combines two signals:
//   - how often the pair shared a group in past meetings (always
//     non-decreasing in the count), and
//   - per-attribute mixing adjustments: for every attribute present on both
//     participants with differing categories, the attribute's multiplier is
//     subtracted when both are willing to mix and added when either is not.
//
// A negative multiplier flips both effects. Attributes missing on either
// side contribute nothing.
//
// A Scorer is immutable after construction and safe for concurrent reads.
type Scorer struct {
	counts      map[types.Pair]int
	byID        map[string]types.Participant
	multipliers map[string]float64
	attrOrder   []string
	penalty     PenaltyFunc
}

// New creates a scorer over the given roster and history.
//
// Parameters:
//   - roster: Validated roster; attribute and preference lookups come from here
//   - history: Past groupings; co-occurrence counts are derived once here
//   - multipliers: Per-attribute mixing multipliers; missing attributes are
//     neutral (zero)
//
// Returns:
//   - *Scorer: Ready-to-use scorer
func New(roster *types.Roster, history *types.History, multipliers map[string]float64, opts ...Option) *Scorer {
	s := &Scorer{
		counts:      history.PairCounts(),
		byID:        make(map[string]types.Participant, roster.Len()),
		multipliers: make(map[string]float64, len(multipliers)),
		penalty:     LinearPenalty,
	}
	for _, p := range roster.Participants() {
		s.byID[p.ID] = p
	}
	for name, m := range multipliers {
		s.multipliers[name] = m
	}

	// Adjustments are applied in sorted attribute order; float summation
	// must not depend on map iteration order.
	s.attrOrder = make([]string, 0, len(s.multipliers))
	for name := range s.multipliers {
		s.attrOrder = append(s.attrOrder, name)
	}
	sort.Strings(s.attrOrder)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Score returns the grouping cost for the unordered pair (i, j).
func (s *Scorer) Score(i, j string) float64 {
	score := s.penalty(s.counts[types.PairOf(i, j)])

	pi, iOK := s.byID[i]
	pj, jOK := s.byID[j]
	if !iOK || !jOK {
		return score
	}

	for _, name := range s.attrOrder {
		m := s.multipliers[name]
		vi, ok := pi.Attribute(name)
		if !ok {
			continue
		}
		vj, ok := pj.Attribute(name)
		if !ok || vi == vj {
			continue
		}

		if pi.WantsMixingOn(name) && pj.WantsMixingOn(name) {
			score -= m
		} else {
			score += m
		}
	}

	return score
}

// Matrix computes the full pairwise score matrix for the given IDs.
//
// Parameters:
//   - ids: Active participant IDs
//
// Returns:
//   - types.ScoreMatrix: Cost for every unordered pair of ids
func (s *Scorer) Matrix(ids []string) types.ScoreMatrix {
	matrix := make(types.ScoreMatrix, len(ids)*(len(ids)-1)/2)
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			matrix[types.PairOf(ids[i], ids[j])] = s.Score(ids[i], ids[j])
		}
	}

	return matrix
}

// TotalCounts returns, for each given ID, the total number of past
// co-occurrences with anyone in the history. Used to pick which
// participants to exclude when a hard maximum group size forces exclusion.
func (s *Scorer) TotalCounts(ids []string) map[string]int {
	totals := make(map[string]int, len(ids))
	for _, id := range ids {
		totals[id] = 0
	}
	for pair, n := range s.counts {
		if _, ok := totals[pair.A]; ok {
			totals[pair.A] += n
		}
		if _, ok := totals[pair.B]; ok {
			totals[pair.B] += n
		}
	}

	return totals
}
