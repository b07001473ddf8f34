// Package types contains the core data model and interfaces for the
// random-grouping library.
//
// This package exists as a separate import root so that subpackages
// (scorer, strategy, source, store) can share the model without importing
// the top-level grouping package, avoiding import cycles. The grouping
// package re-exports the commonly used names via type aliases.
//
// The model is deliberately value-oriented and immutable: a Roster is
// validated once at construction, a History is never mutated in place
// (Append returns a new value), and the pairwise co-occurrence counts are
// derived from the history log on demand rather than cached.
package types
