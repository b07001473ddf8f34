package strategy

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timmens/random-grouping/types"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

func idList(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%d", i+1)
	}

	return ids
}

func requireValidPartition(t *testing.T, groups [][]string, ids []string) {
	t.Helper()

	seen := make(map[string]int)
	for _, members := range groups {
		require.NotEmpty(t, members)
		for _, id := range members {
			seen[id]++
		}
	}
	require.Len(t, seen, len(ids))
	for _, id := range ids {
		require.Equal(t, 1, seen[id], "id %s must appear exactly once", id)
	}
}

func TestGroupSizes(t *testing.T) {
	tests := []struct {
		n       int
		minSize int
		want    []int
	}{
		{n: 0, minSize: 3, want: nil},
		{n: 6, minSize: 2, want: []int{2, 2, 2}},
		{n: 10, minSize: 3, want: []int{4, 3, 3}},
		{n: 11, minSize: 3, want: []int{4, 4, 3}},
		{n: 3, minSize: 2, want: []int{3}},
		{n: 2, minSize: 5, want: []int{2}},
		{n: 9, minSize: 4, want: []int{5, 4}},
		{n: 5, minSize: 1, want: []int{1, 1, 1, 1, 1}},
		// Even split can run past minSize+1 when the remainder is large.
		{n: 14, minSize: 5, want: []int{7, 7}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("n=%d min=%d", tt.n, tt.minSize), func(t *testing.T) {
			require.Equal(t, tt.want, GroupSizes(tt.n, tt.minSize))
		})
	}
}

func TestGreedy_Build(t *testing.T) {
	g := NewGreedy()

	t.Run("rejects non-positive min size", func(t *testing.T) {
		_, err := g.Build(idList(4), nil, 0, newRNG(1))
		require.ErrorIs(t, err, ErrMinSize)
	})

	t.Run("empty id list yields empty partition", func(t *testing.T) {
		groups, err := g.Build(nil, nil, 3, newRNG(1))
		require.NoError(t, err)
		require.Empty(t, groups)
	})

	t.Run("partition is complete and sized", func(t *testing.T) {
		for seed := uint64(1); seed <= 50; seed++ {
			ids := idList(10)
			groups, err := g.Build(ids, types.ScoreMatrix{}, 3, newRNG(seed))
			require.NoError(t, err)

			requireValidPartition(t, groups, ids)
			require.Len(t, groups, 3)
			for _, members := range groups {
				require.GreaterOrEqual(t, len(members), 3)
				require.LessOrEqual(t, len(members), 4)
			}
		}
	})

	t.Run("six participants with min size two give three pairs", func(t *testing.T) {
		ids := []string{"A", "B", "C", "D", "E", "F"}
		groups, err := g.Build(ids, types.ScoreMatrix{}, 2, newRNG(7))
		require.NoError(t, err)

		requireValidPartition(t, groups, ids)
		require.Len(t, groups, 3)
		for _, members := range groups {
			require.Len(t, members, 2)
		}
	})

	t.Run("three participants with min size two form one group", func(t *testing.T) {
		ids := []string{"A", "B", "C"}
		groups, err := g.Build(ids, types.ScoreMatrix{}, 2, newRNG(3))
		require.NoError(t, err)

		require.Len(t, groups, 1)
		require.Len(t, groups[0], 3)
	})

	t.Run("fewer participants than min size fall back to one group", func(t *testing.T) {
		ids := []string{"A", "B"}
		groups, err := g.Build(ids, types.ScoreMatrix{}, 5, newRNG(3))
		require.NoError(t, err)

		require.Len(t, groups, 1)
		requireValidPartition(t, groups, ids)
	})

	t.Run("deterministic under a fixed seed", func(t *testing.T) {
		ids := idList(12)
		scores := types.ScoreMatrix{
			types.PairOf("p1", "p2"): 4,
			types.PairOf("p3", "p7"): 1,
		}

		first, err := g.Build(ids, scores, 3, newRNG(99))
		require.NoError(t, err)
		second, err := g.Build(ids, scores, 3, newRNG(99))
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("different seeds usually differ", func(t *testing.T) {
		ids := idList(12)
		a, err := g.Build(ids, types.ScoreMatrix{}, 3, newRNG(1))
		require.NoError(t, err)

		differs := false
		for seed := uint64(2); seed <= 10 && !differs; seed++ {
			b, err := g.Build(ids, types.ScoreMatrix{}, 3, newRNG(seed))
			require.NoError(t, err)
			differs = fmt.Sprint(a) != fmt.Sprint(b)
		}
		require.True(t, differs)
	})

	t.Run("never co-groups the expensive pair when zero-cost partners exist", func(t *testing.T) {
		// A and B met in all five prior meetings; everyone else never met.
		// In a 2+2 split the partition avoiding the A-B cost always
		// separates them, whatever the shuffle.
		ids := []string{"A", "B", "C", "D"}
		scores := types.ScoreMatrix{types.PairOf("A", "B"): 5}

		for seed := uint64(1); seed <= 200; seed++ {
			groups, err := g.Build(ids, scores, 2, newRNG(seed))
			require.NoError(t, err)
			requireValidPartition(t, groups, ids)

			for _, members := range groups {
				has := map[string]bool{}
				for _, id := range members {
					has[id] = true
				}
				require.False(t, has["A"] && has["B"],
					"seed %d grouped the repeat pair: %v", seed, groups)
			}
		}
	})
}
