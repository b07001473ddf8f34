package strategy

import (
	"math/rand/v2"

	"github.com/timmens/random-grouping/types"
)

// Greedy implements seeded-random greedy group assembly.
//
// This is the default builder: fast, deterministic under a fixed seed, and
// strongly biased against repeat pairings without searching for a global
// optimum.
type Greedy struct{}

var _ types.GroupStrategy = (*Greedy)(nil)

// NewGreedy creates a new greedy builder.
//
// The algorithm:
//  1. Compute target group sizes from the id count and minSize
//  2. Shuffle the ids with the supplied rng
//  3. Seed each group with one participant from the shuffled order
//  4. Assign each remaining participant, in shuffled order, to the open
//     group with the lowest total pairwise score against its current
//     members; ties go to the earliest group
//
// Returns:
//   - *Greedy: Initialized greedy builder
func NewGreedy() *Greedy {
	return &Greedy{}
}

// Build partitions ids into groups of at least minSize members.
//
// Every id appears in exactly one group, group sizes match GroupSizes, and
// the result is a pure function of (ids, scores, minSize, rng state). An
// empty id list yields an empty partition; fewer ids than minSize yield a
// single undersized group.
func (g *Greedy) Build(ids []string, scores types.ScoreMatrix, minSize int, rng *rand.Rand) ([][]string, error) {
	if minSize < 1 {
		return nil, ErrMinSize
	}
	if len(ids) == 0 {
		return nil, nil
	}

	sizes := GroupSizes(len(ids), minSize)

	shuffled := make([]string, len(ids))
	copy(shuffled, ids)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	groups := make([][]string, len(sizes))
	for i := range groups {
		groups[i] = append(groups[i], shuffled[i])
	}

	for _, id := range shuffled[len(sizes):] {
		best := -1
		bestCost := 0.0
		for gi, members := range groups {
			if len(members) >= sizes[gi] {
				continue
			}
			cost := scores.GroupCost(id, members)
			if best == -1 || cost < bestCost {
				best = gi
				bestCost = cost
			}
		}
		groups[best] = append(groups[best], id)
	}

	return groups, nil
}

// GroupSizes computes the target group sizes for n participants and a
// minimum group size.
//
// The number of groups is k = max(1, n/minSize); the n mod k remainder is
// distributed one per group across the first groups, so every group has
// size n/k or n/k + 1 and none falls below minSize except in the
// single-group case n < minSize.
func GroupSizes(n, minSize int) []int {
	if n == 0 {
		return nil
	}

	k := n / minSize
	if k < 1 {
		k = 1
	}

	base := n / k
	rem := n % k

	sizes := make([]int, k)
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}

	return sizes
}
