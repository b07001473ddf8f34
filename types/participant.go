package types

import (
	"fmt"
	"sort"
)

// Participant is one row of the roster.
//
// A participant carries zero or more categorical attributes (for example
// "status" or "status2") and, per attribute, an optional preference about
// being grouped with holders of a different category.
type Participant struct {
	// ID uniquely identifies the participant across meetings.
	// It is the join key between the roster and the matching history.
	ID string `json:"id"`

	// Name is the display name. It is never used in any computation.
	Name string `json:"name"`

	// Active reports whether the participant joins the current meeting.
	// Only active participants are eligible for grouping.
	Active bool `json:"active"`

	// Attributes maps attribute name to categorical value.
	Attributes map[string]string `json:"attributes,omitempty"`

	// WantsMixing maps attribute name to the participant's mixing
	// preference for that attribute. A missing entry means the
	// participant does not object to mixing.
	WantsMixing map[string]bool `json:"wantsMixing,omitempty"`
}

// Attribute returns the participant's value for the named attribute and
// whether the attribute is present.
func (p Participant) Attribute(name string) (string, bool) {
	v, ok := p.Attributes[name]
	return v, ok
}

// WantsMixingOn reports whether the participant wants to be grouped across
// categories of the named attribute. Absent preference counts as willing.
func (p Participant) WantsMixingOn(name string) bool {
	if w, ok := p.WantsMixing[name]; ok {
		return w
	}

	return true
}

// Roster is a validated, ordered view of the participant table.
//
// Construction fails on duplicate IDs; the roster is immutable afterwards.
// Order is the order of the underlying table and is preserved so that
// tie-breaking rules depending on roster position stay reproducible.
type Roster struct {
	participants []Participant
	byID         map[string]int
}

// NewRoster creates a roster from a participant list.
//
// Returns ErrDuplicateID (wrapped with the offending ID) when two rows share
// an ID, and ErrEmptyID when a row has no ID. The input slice is copied.
func NewRoster(participants []Participant) (*Roster, error) {
	r := &Roster{
		participants: make([]Participant, len(participants)),
		byID:         make(map[string]int, len(participants)),
	}
	copy(r.participants, participants)

	for i, p := range r.participants {
		if p.ID == "" {
			return nil, fmt.Errorf("roster row %d: %w", i, ErrEmptyID)
		}
		if _, exists := r.byID[p.ID]; exists {
			return nil, fmt.Errorf("id %q: %w", p.ID, ErrDuplicateID)
		}
		r.byID[p.ID] = i
	}

	return r, nil
}

// Len returns the number of participants on the roster, active or not.
func (r *Roster) Len() int {
	return len(r.participants)
}

// Participants returns a copy of all roster rows in roster order.
func (r *Roster) Participants() []Participant {
	out := make([]Participant, len(r.participants))
	copy(out, r.participants)

	return out
}

// Active returns the active participants in roster order.
func (r *Roster) Active() []Participant {
	var out []Participant
	for _, p := range r.participants {
		if p.Active {
			out = append(out, p)
		}
	}

	return out
}

// ActiveIDs returns the IDs of the active participants in roster order.
func (r *Roster) ActiveIDs() []string {
	var out []string
	for _, p := range r.participants {
		if p.Active {
			out = append(out, p.ID)
		}
	}

	return out
}

// ByID looks up a participant by ID.
func (r *Roster) ByID(id string) (Participant, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Participant{}, false
	}

	return r.participants[i], true
}

// Contains reports whether an ID is present on the roster.
func (r *Roster) Contains(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// AttributeNames returns the sorted set of attribute names present on any
// roster row. Used to validate multiplier configuration against the roster.
func (r *Roster) AttributeNames() []string {
	seen := make(map[string]struct{})
	for _, p := range r.participants {
		for name := range p.Attributes {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
