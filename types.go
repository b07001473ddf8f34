package grouping

import "github.com/timmens/random-grouping/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces via type aliases. Subpackages (scorer, strategy, source,
// store) depend on `types` rather than on this root package, which keeps
// the import graph acyclic while callers can still write grouping.Roster,
// grouping.History, and so on.
type (
	Participant     = types.Participant
	Roster          = types.Roster
	Group           = types.Group
	Grouping        = types.Grouping
	GroupAssignment = types.GroupAssignment
	Entry           = types.Entry
	History         = types.History
	Pair            = types.Pair
	ScoreMatrix     = types.ScoreMatrix
)

// Re-export interfaces from the types subpackage for convenience.
type (
	GroupStrategy = types.GroupStrategy
	RosterSource  = types.RosterSource
	Logger        = types.Logger
)

// Re-export constructors commonly needed by callers.
var (
	NewRoster   = types.NewRoster
	NewHistory  = types.NewHistory
	NewGrouping = types.NewGrouping
	PairOf      = types.PairOf
)
