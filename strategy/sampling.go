package strategy

import (
	"math/rand/v2"

	"github.com/timmens/random-grouping/types"
)

// DefaultCandidates is the number of random partitions Sampling draws when
// none is configured.
const DefaultCandidates = 1000

// Sampling implements candidate-draw group assembly: draw many uniformly
// random partitions and keep the one with the lowest total within-group
// pairwise score.
//
// Compared to Greedy this explores whole partitions at once, which can
// escape locally bad seedings at the price of doing candidates×pairs score
// lookups. Ties keep the earliest-drawn candidate, so the result is
// deterministic under a fixed seed.
type Sampling struct {
	candidates int
}

var _ types.GroupStrategy = (*Sampling)(nil)

// NewSampling creates a sampling builder drawing the given number of
// candidate partitions. Non-positive values fall back to DefaultCandidates.
func NewSampling(candidates int) *Sampling {
	if candidates < 1 {
		candidates = DefaultCandidates
	}

	return &Sampling{candidates: candidates}
}

// Build draws candidate partitions and returns the cheapest one.
//
// Group sizes follow the same GroupSizes rule as the greedy builder, so the
// minimum-size invariant holds for every candidate.
func (s *Sampling) Build(ids []string, scores types.ScoreMatrix, minSize int, rng *rand.Rand) ([][]string, error) {
	if minSize < 1 {
		return nil, ErrMinSize
	}
	if len(ids) == 0 {
		return nil, nil
	}

	sizes := GroupSizes(len(ids), minSize)

	var best [][]string
	bestCost := 0.0

	buf := make([]string, len(ids))
	copy(buf, ids)

	for c := 0; c < s.candidates; c++ {
		rng.Shuffle(len(buf), func(i, j int) {
			buf[i], buf[j] = buf[j], buf[i]
		})

		candidate := chunk(buf, sizes)
		cost := partitionCost(candidate, scores)
		if best == nil || cost < bestCost {
			best = candidate
			bestCost = cost
		}
	}

	return best, nil
}

// chunk slices ids into consecutive groups of the given sizes, copying so
// later shuffles of the buffer cannot alias a kept candidate.
func chunk(ids []string, sizes []int) [][]string {
	groups := make([][]string, len(sizes))
	at := 0
	for i, size := range sizes {
		groups[i] = make([]string, size)
		copy(groups[i], ids[at:at+size])
		at += size
	}

	return groups
}

// partitionCost sums the pairwise scores inside every group.
func partitionCost(groups [][]string, scores types.ScoreMatrix) float64 {
	total := 0.0
	for _, members := range groups {
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				total += scores.Score(members[i], members[j])
			}
		}
	}

	return total
}
