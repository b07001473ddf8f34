// Package testing provides helpers for testing code that uses the grouping
// library: a testing.T-backed logger and roster/history fixture builders.
package testing
