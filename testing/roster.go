package testing

import (
	"fmt"

	"github.com/timmens/random-grouping/types"
)

// NewActiveRoster builds a roster of n active participants with IDs "p1"
// through "pn" and matching display names, no attributes. Panics on invalid
// input; intended for tests only.
func NewActiveRoster(n int) *types.Roster {
	participants := make([]types.Participant, n)
	for i := range participants {
		participants[i] = types.Participant{
			ID:     fmt.Sprintf("p%d", i+1),
			Name:   fmt.Sprintf("Person %d", i+1),
			Active: true,
		}
	}

	roster, err := types.NewRoster(participants)
	if err != nil {
		panic(err)
	}

	return roster
}

// NewRosterFromIDs builds a roster of active participants with the given
// IDs. Panics on invalid input; intended for tests only.
func NewRosterFromIDs(ids ...string) *types.Roster {
	participants := make([]types.Participant, len(ids))
	for i, id := range ids {
		participants[i] = types.Participant{ID: id, Name: id, Active: true}
	}

	roster, err := types.NewRoster(participants)
	if err != nil {
		panic(err)
	}

	return roster
}

// HistoryOf builds a history from groupings given as member-ID sets, one
// grouping per meeting starting at meeting 1.
func HistoryOf(meetings ...[][]string) *types.History {
	h := types.NewHistory(nil)
	for i, groups := range meetings {
		h = h.Append(types.NewGrouping(groups), i+1)
	}

	return h
}
