package types

// Pair is a normalized unordered pair of participant IDs: A is always the
// lexicographically smaller ID. Using a normalized key keeps the sparse
// score and count maps symmetric by construction.
type Pair struct {
	A string
	B string
}

// PairOf normalizes (i, j) into a Pair.
func PairOf(i, j string) Pair {
	if j < i {
		i, j = j, i
	}

	return Pair{A: i, B: j}
}

// ScoreMatrix holds the pairwise grouping cost for every unordered pair of
// active participants. Missing pairs score zero.
type ScoreMatrix map[Pair]float64

// Score returns the cost for the unordered pair (i, j).
func (m ScoreMatrix) Score(i, j string) float64 {
	return m[PairOf(i, j)]
}

// GroupCost returns the cost of adding id to a group: the sum of pairwise
// scores between id and every current member.
func (m ScoreMatrix) GroupCost(id string, members []string) float64 {
	total := 0.0
	for _, member := range members {
		total += m.Score(id, member)
	}

	return total
}
