package types

import "strconv"

// Group is one discussion group within a grouping.
type Group struct {
	// Label identifies the group within its meeting. Labels are unique
	// per meeting and stable for the lifetime of the output; they carry
	// no matching semantics.
	Label string `json:"label"`

	// Members are the participant IDs assigned to this group.
	Members []string `json:"members"`
}

// Size returns the number of members in the group.
func (g Group) Size() int {
	return len(g.Members)
}

// Grouping is one meeting's partition of the active participants into
// disjoint, non-empty groups.
type Grouping []Group

// NewGrouping builds a grouping from ordered member sets, assigning 1-based
// decimal labels in order. Empty member sets are skipped.
func NewGrouping(groups [][]string) Grouping {
	out := make(Grouping, 0, len(groups))
	for _, members := range groups {
		if len(members) == 0 {
			continue
		}
		m := make([]string, len(members))
		copy(m, members)
		out = append(out, Group{
			Label:   strconv.Itoa(len(out) + 1),
			Members: m,
		})
	}

	return out
}

// Size returns the total number of assigned participants.
func (g Grouping) Size() int {
	n := 0
	for _, group := range g {
		n += len(group.Members)
	}

	return n
}

// Contains reports whether the ID is assigned to any group.
func (g Grouping) Contains(id string) bool {
	for _, group := range g {
		for _, m := range group.Members {
			if m == id {
				return true
			}
		}
	}

	return false
}

// Assignments returns the grouping as an ID-to-label mapping, the form in
// which one meeting is recorded in the history.
func (g Grouping) Assignments() GroupAssignment {
	out := make(GroupAssignment, g.Size())
	for _, group := range g {
		for _, m := range group.Members {
			out[m] = group.Label
		}
	}

	return out
}
