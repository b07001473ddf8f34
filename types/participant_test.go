package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRoster(t *testing.T) {
	t.Run("accepts unique ids and preserves order", func(t *testing.T) {
		roster, err := NewRoster([]Participant{
			{ID: "b", Name: "Bob", Active: true},
			{ID: "a", Name: "Alice", Active: false},
		})
		require.NoError(t, err)
		require.Equal(t, 2, roster.Len())

		ps := roster.Participants()
		require.Equal(t, "b", ps[0].ID)
		require.Equal(t, "a", ps[1].ID)
	})

	t.Run("rejects duplicate ids", func(t *testing.T) {
		_, err := NewRoster([]Participant{
			{ID: "a", Name: "Alice"},
			{ID: "a", Name: "Other Alice"},
		})
		require.ErrorIs(t, err, ErrDuplicateID)
		require.ErrorContains(t, err, `"a"`)
	})

	t.Run("rejects empty ids", func(t *testing.T) {
		_, err := NewRoster([]Participant{{Name: "Nameless"}})
		require.ErrorIs(t, err, ErrEmptyID)
	})

	t.Run("copies the input slice", func(t *testing.T) {
		in := []Participant{{ID: "a", Name: "Alice"}}
		roster, err := NewRoster(in)
		require.NoError(t, err)

		in[0].Name = "changed"
		p, ok := roster.ByID("a")
		require.True(t, ok)
		require.Equal(t, "Alice", p.Name)
	})
}

func TestRoster_Active(t *testing.T) {
	roster, err := NewRoster([]Participant{
		{ID: "a", Active: true},
		{ID: "b", Active: false},
		{ID: "c", Active: true},
	})
	require.NoError(t, err)

	require.Equal(t, []string{"a", "c"}, roster.ActiveIDs())
	require.Len(t, roster.Active(), 2)
	require.True(t, roster.Contains("b"))
	require.False(t, roster.Contains("d"))
}

func TestRoster_AttributeNames(t *testing.T) {
	roster, err := NewRoster([]Participant{
		{ID: "a", Attributes: map[string]string{"status": "faculty"}},
		{ID: "b", Attributes: map[string]string{"status2": "red", "status": "student"}},
		{ID: "c"},
	})
	require.NoError(t, err)

	require.Equal(t, []string{"status", "status2"}, roster.AttributeNames())
}

func TestParticipant_WantsMixingOn(t *testing.T) {
	p := Participant{
		ID:          "a",
		WantsMixing: map[string]bool{"status": false},
	}

	require.False(t, p.WantsMixingOn("status"))
	// Absent preference counts as willing.
	require.True(t, p.WantsMixingOn("status2"))
}
