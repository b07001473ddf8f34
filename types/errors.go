package types

import "errors"

// Sentinel errors for the grouping library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components wrap them with context using
// fmt.Errorf("...: %w", err).
//
// Taxonomy:
//   - Configuration errors: the run is aborted before any computation
//   - Data-integrity errors: the inputs are inconsistent; nothing is
//     silently dropped or deduplicated
//
// Fewer active participants than the minimum group size is not an error;
// the builder falls back to a single group.

// Configuration errors.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidMinSize is returned when the minimum group size is not positive.
	ErrInvalidMinSize = errors.New("minimum group size must be at least 1")

	// ErrInvalidMaxSize is returned when a maximum group size is smaller than the minimum.
	ErrInvalidMaxSize = errors.New("maximum group size must not be smaller than minimum")

	// ErrUnknownAttribute is returned when a mixing multiplier references an
	// attribute absent from the roster.
	ErrUnknownAttribute = errors.New("multiplier references unknown attribute")

	// ErrNotEnoughParticipants is returned when a requested group count
	// cannot be satisfied by the active roster.
	ErrNotEnoughParticipants = errors.New("not enough participants for requested group count")

	// ErrRosterRequired is returned when the roster is nil.
	ErrRosterRequired = errors.New("roster is required")

	// ErrStrategyRequired is returned when the group strategy is nil.
	ErrStrategyRequired = errors.New("group strategy is required")
)

// Data-integrity errors.
var (
	// ErrDuplicateID is returned when two roster rows share an ID.
	ErrDuplicateID = errors.New("duplicate participant id")

	// ErrEmptyID is returned when a roster row has no ID.
	ErrEmptyID = errors.New("participant id is empty")

	// ErrUnknownHistoryID is returned when the history references an ID that
	// is not present on the roster.
	ErrUnknownHistoryID = errors.New("history references unknown participant id")
)
