package types

// GroupAssignment records, for one meeting, which group label each
// participating ID received.
type GroupAssignment map[string]string

// Entry is one meeting in the history.
type Entry struct {
	// Meeting is the 1-based meeting index.
	Meeting int `json:"meeting"`

	// Groups maps participant ID to the group label assigned at this
	// meeting.
	Groups GroupAssignment `json:"groups"`
}

// History is the ordered, append-only log of past groupings.
//
// History values are immutable: Append returns a new History and never
// touches the receiver's entries. The pairwise co-occurrence counts consumed
// by the scorer are derived from the log on demand, never cached across runs.
type History struct {
	entries []Entry
}

// NewHistory creates a history from existing entries, typically loaded from
// the persisted record. A nil or empty slice is a valid first-time history.
func NewHistory(entries []Entry) *History {
	h := &History{entries: make([]Entry, len(entries))}
	for i, e := range entries {
		groups := make(GroupAssignment, len(e.Groups))
		for id, label := range e.Groups {
			groups[id] = label
		}
		h.entries[i] = Entry{Meeting: e.Meeting, Groups: groups}
	}

	return h
}

// Len returns the number of recorded meetings.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of all entries in meeting order.
func (h *History) Entries() []Entry {
	out := make([]Entry, len(h.entries))
	for i, e := range h.entries {
		groups := make(GroupAssignment, len(e.Groups))
		for id, label := range e.Groups {
			groups[id] = label
		}
		out[i] = Entry{Meeting: e.Meeting, Groups: groups}
	}

	return out
}

// NextMeeting returns the index the next appended meeting will receive:
// one past the highest recorded index, or 1 for an empty history.
func (h *History) NextMeeting() int {
	next := 1
	for _, e := range h.entries {
		if e.Meeting >= next {
			next = e.Meeting + 1
		}
	}

	return next
}

// Append returns a new history containing all prior entries plus the given
// grouping recorded under the given meeting index. The receiver is left
// unchanged.
func (h *History) Append(g Grouping, meeting int) *History {
	out := NewHistory(h.entries)
	out.entries = append(out.entries, Entry{
		Meeting: meeting,
		Groups:  g.Assignments(),
	})

	return out
}

// IDs returns the set of participant IDs referenced anywhere in the history.
func (h *History) IDs() map[string]struct{} {
	out := make(map[string]struct{})
	for _, e := range h.entries {
		for id := range e.Groups {
			out[id] = struct{}{}
		}
	}

	return out
}

// PairCounts derives the symmetric co-occurrence counts from the log:
// count(i, j) is the number of past meetings in which i and j shared a
// group label.
func (h *History) PairCounts() map[Pair]int {
	counts := make(map[Pair]int)
	for _, e := range h.entries {
		byLabel := make(map[string][]string)
		for id, label := range e.Groups {
			byLabel[label] = append(byLabel[label], id)
		}
		for _, members := range byLabel {
			for i := 0; i < len(members); i++ {
				for j := i + 1; j < len(members); j++ {
					counts[PairOf(members[i], members[j])]++
				}
			}
		}
	}

	return counts
}
