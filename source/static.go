package source

import (
	"context"
	"sync"

	"github.com/timmens/random-grouping/types"
)

// Static implements a roster source with a fixed participant list.
type Static struct {
	mu           sync.RWMutex
	participants []types.Participant
}

var _ types.RosterSource = (*Static)(nil)

// NewStatic creates a new static roster source.
//
// The source validates and returns a fixed participant list. Useful for
// tests and for callers that already hold the roster in memory.
//
// Parameters:
//   - participants: Fixed participant list
//
// Returns:
//   - *Static: Initialized static source
func NewStatic(participants []types.Participant) *Static {
	s := &Static{}
	s.Update(participants)

	return s
}

// Load validates the participant list into a roster.
//
// Returns:
//   - *types.Roster: Validated roster
//   - error: Validation error (duplicate or empty IDs)
func (s *Static) Load(_ context.Context) (*types.Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return types.NewRoster(s.participants)
}

// Update replaces the participant list.
//
// This allows the static source to simulate roster changes between runs,
// which is useful for testing new-joiner scenarios.
func (s *Static) Update(participants []types.Participant) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.participants = make([]types.Participant, len(participants))
	copy(s.participants, participants)
}
