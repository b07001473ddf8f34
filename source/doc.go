// Package source provides roster sources: parsers that turn a participant
// table (in-memory, local CSV file, or CSV over HTTP) into a validated
// types.Roster.
package source
