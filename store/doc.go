// Package store persists the matching history (CSV, one row per meeting
// and participant) and renders the human-readable group listing.
//
// The history file is append-only in content: saving after a run writes
// every prior entry unchanged plus the new meeting, in a stable row order
// so diffs between runs are exactly the appended meeting.
package store
