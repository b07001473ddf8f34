package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrouping(t *testing.T) {
	t.Run("assigns 1-based labels and skips empty groups", func(t *testing.T) {
		g := NewGrouping([][]string{{"a", "b"}, nil, {"c"}})

		require.Len(t, g, 2)
		require.Equal(t, "1", g[0].Label)
		require.Equal(t, []string{"a", "b"}, g[0].Members)
		require.Equal(t, "2", g[1].Label)
		require.Equal(t, 3, g.Size())
		require.True(t, g.Contains("c"))
		require.False(t, g.Contains("d"))
	})

	t.Run("assignments map members to labels", func(t *testing.T) {
		g := NewGrouping([][]string{{"a", "b"}, {"c"}})

		require.Equal(t, GroupAssignment{"a": "1", "b": "1", "c": "2"}, g.Assignments())
	})
}

func TestHistory_Append(t *testing.T) {
	t.Run("returns a new value and keeps prior entries", func(t *testing.T) {
		h1 := NewHistory(nil)
		g1 := NewGrouping([][]string{{"a", "b"}})

		h2 := h1.Append(g1, 1)
		require.Equal(t, 0, h1.Len())
		require.Equal(t, 1, h2.Len())

		g2 := NewGrouping([][]string{{"a"}, {"b"}})
		h3 := h2.Append(g2, 2)
		require.Equal(t, 1, h2.Len())
		require.Equal(t, 2, h3.Len())

		entries := h3.Entries()
		require.Equal(t, 1, entries[0].Meeting)
		require.Equal(t, GroupAssignment{"a": "1", "b": "1"}, entries[0].Groups)
		require.Equal(t, 2, entries[1].Meeting)
	})

	t.Run("entries copies are independent", func(t *testing.T) {
		h := NewHistory(nil).Append(NewGrouping([][]string{{"a", "b"}}), 1)

		entries := h.Entries()
		entries[0].Groups["a"] = "changed"

		require.Equal(t, "1", h.Entries()[0].Groups["a"])
	})
}

func TestHistory_NextMeeting(t *testing.T) {
	h := NewHistory(nil)
	require.Equal(t, 1, h.NextMeeting())

	h = h.Append(NewGrouping([][]string{{"a"}}), 1)
	require.Equal(t, 2, h.NextMeeting())

	// Gaps in the record do not reuse indices.
	h = h.Append(NewGrouping([][]string{{"a"}}), 5)
	require.Equal(t, 6, h.NextMeeting())
}

func TestHistory_PairCounts(t *testing.T) {
	h := NewHistory(nil).
		Append(NewGrouping([][]string{{"a", "b", "c"}, {"d", "e"}}), 1).
		Append(NewGrouping([][]string{{"a", "b"}, {"c", "d", "e"}}), 2)

	counts := h.PairCounts()
	require.Equal(t, 2, counts[PairOf("a", "b")])
	require.Equal(t, 1, counts[PairOf("a", "c")])
	require.Equal(t, 2, counts[PairOf("e", "d")])
	require.Equal(t, 1, counts[PairOf("c", "d")])
	require.Zero(t, counts[PairOf("a", "d")])
}

func TestHistory_IDs(t *testing.T) {
	h := NewHistory(nil).Append(NewGrouping([][]string{{"a", "b"}}), 1)

	ids := h.IDs()
	require.Len(t, ids, 2)
	require.Contains(t, ids, "a")
	require.Contains(t, ids, "b")
}

func TestPairOf(t *testing.T) {
	require.Equal(t, PairOf("a", "b"), PairOf("b", "a"))
	require.Equal(t, Pair{A: "a", B: "b"}, PairOf("b", "a"))
}

func TestScoreMatrix(t *testing.T) {
	m := ScoreMatrix{PairOf("a", "b"): 2.5}

	require.Equal(t, 2.5, m.Score("b", "a"))
	require.Zero(t, m.Score("a", "c"))
	require.Equal(t, 2.5, m.GroupCost("a", []string{"b", "c"}))
}
