package types

import "context"

// RosterSource loads the current participant table.
//
// Implementations parse a tabular source (an in-memory fixture, a local CSV
// file, a CSV served over HTTP) into a validated Roster. The engine treats
// the returned roster as immutable for the duration of a run.
type RosterSource interface {
	// Load reads and validates the roster.
	//
	// Returns:
	//   - *Roster: Validated roster (duplicate IDs rejected)
	//   - error: Parse, validation, or transport error
	Load(ctx context.Context) (*Roster, error)
}
