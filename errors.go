package grouping

import "github.com/timmens/random-grouping/types"

// Sentinel errors returned by the Matcher, re-exported from the types
// subpackage so callers can errors.Is against grouping.Err*.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrInvalidMinSize is returned when the minimum group size is not positive.
	ErrInvalidMinSize = types.ErrInvalidMinSize

	// ErrInvalidMaxSize is returned when the maximum group size is smaller than the minimum.
	ErrInvalidMaxSize = types.ErrInvalidMaxSize

	// ErrUnknownAttribute is returned when a multiplier references an attribute absent from the roster.
	ErrUnknownAttribute = types.ErrUnknownAttribute

	// ErrNotEnoughParticipants is returned when a requested group count cannot be satisfied.
	ErrNotEnoughParticipants = types.ErrNotEnoughParticipants

	// ErrRosterRequired is returned when the roster is nil.
	ErrRosterRequired = types.ErrRosterRequired

	// ErrStrategyRequired is returned when the group strategy is nil.
	ErrStrategyRequired = types.ErrStrategyRequired

	// ErrDuplicateID is returned when two roster rows share an ID.
	ErrDuplicateID = types.ErrDuplicateID

	// ErrUnknownHistoryID is returned when the history references an ID not on the roster.
	ErrUnknownHistoryID = types.ErrUnknownHistoryID
)
