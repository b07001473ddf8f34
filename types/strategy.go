package types

import "math/rand/v2"

// GroupStrategy assembles a partition of the active participants into
// groups of at least minSize members.
//
// Strategy implementations should:
//   - Be pure functions of (ids, scores, minSize, rng): identical inputs and
//     an identically seeded rng must produce identical output
//   - Favor grouping low-scoring pairs together without requiring global
//     optimality (the exact problem is NP-hard)
//   - Never rely on map iteration order; all tie-breaks follow the order of
//     the ids slice and the rng draw sequence
//   - Handle edge cases: an empty id list yields an empty partition, and
//     fewer ids than minSize yields a single undersized group
type GroupStrategy interface {
	// Build partitions ids into ordered member lists.
	//
	// Parameters:
	//   - ids: Active participant IDs in roster order
	//   - scores: Pairwise grouping costs from the affinity scorer
	//   - minSize: Minimum group size (>= 1)
	//   - rng: Seeded random source driving shuffles and draws
	//
	// Returns:
	//   - [][]string: Groups in construction order; every id appears in
	//     exactly one group
	//   - error: Non-nil when minSize < 1
	Build(ids []string, scores ScoreMatrix, minSize int, rng *rand.Rand) ([][]string, error)
}
