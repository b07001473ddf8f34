package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/timmens/random-grouping/types"
)

// Recognized roster columns. Any column named "status" with an optional
// suffix is treated as a categorical attribute; its mixing-preference
// column, when present, is "wants_mixing" with the same suffix (so
// "status2" pairs with "wants_mixing2"). Unrecognized columns are ignored.
const (
	colID     = "id"
	colName   = "name"
	colJoins  = "joins"
	attrStem  = "status"
	wantsStem = "wants_mixing"
)

// File implements a roster source reading a local CSV file.
type File struct {
	path string
}

var _ types.RosterSource = (*File)(nil)

// NewFile creates a roster source for the given CSV file path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Load reads and parses the roster file.
func (f *File) Load(_ context.Context) (*types.Roster, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("opening roster file: %w", err)
	}
	defer file.Close()

	roster, err := ParseRoster(file)
	if err != nil {
		return nil, fmt.Errorf("roster file %s: %w", f.path, err)
	}

	return roster, nil
}

// ParseRoster parses a participant table from CSV.
//
// The table must carry "id", "name", and "joins" columns. Attribute columns
// ("status", "status2", ...) and their preference columns ("wants_mixing",
// "wants_mixing2", ...) are optional. Empty attribute cells mean the
// attribute is absent for that row; empty preference cells leave the
// preference unset (the scorer treats that as willing to mix).
//
// Returns:
//   - *types.Roster: Validated roster (duplicate IDs rejected)
//   - error: Parse or validation error naming the offending row
func ParseRoster(r io.Reader) (*types.Roster, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty roster table")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols, attrs, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var participants []types.Participant
	row := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		row++

		p, err := parseParticipant(record, cols, attrs)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		participants = append(participants, p)
	}

	return types.NewRoster(participants)
}

// attrColumn pairs an attribute column index with its optional preference
// column index (-1 when absent).
type attrColumn struct {
	name     string
	valueIdx int
	wantsIdx int
}

func mapColumns(header []string) (map[string]int, []attrColumn, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.TrimSpace(strings.ToLower(h))] = i
	}

	cols := make(map[string]int, 3)
	for _, required := range []string{colID, colName, colJoins} {
		idx, ok := byName[required]
		if !ok {
			return nil, nil, fmt.Errorf("missing required column %q", required)
		}
		cols[required] = idx
	}

	var attrs []attrColumn
	for name, idx := range byName {
		if !strings.HasPrefix(name, attrStem) {
			continue
		}
		suffix := strings.TrimPrefix(name, attrStem)
		wantsIdx := -1
		if wi, ok := byName[wantsStem+suffix]; ok {
			wantsIdx = wi
		}
		attrs = append(attrs, attrColumn{name: name, valueIdx: idx, wantsIdx: wantsIdx})
	}

	return cols, attrs, nil
}

func parseParticipant(record []string, cols map[string]int, attrs []attrColumn) (types.Participant, error) {
	field := func(idx int) string {
		if idx < 0 || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	joins, err := parseFlag(field(cols[colJoins]))
	if err != nil {
		return types.Participant{}, fmt.Errorf("column %q: %w", colJoins, err)
	}

	p := types.Participant{
		ID:     field(cols[colID]),
		Name:   field(cols[colName]),
		Active: joins,
	}

	for _, attr := range attrs {
		value := field(attr.valueIdx)
		if value == "" {
			continue
		}
		if p.Attributes == nil {
			p.Attributes = make(map[string]string)
		}
		p.Attributes[attr.name] = value

		if attr.wantsIdx < 0 {
			continue
		}
		raw := field(attr.wantsIdx)
		if raw == "" {
			continue
		}
		wants, err := parseFlag(raw)
		if err != nil {
			return types.Participant{}, fmt.Errorf("column %q: %w", wantsStem+strings.TrimPrefix(attr.name, attrStem), err)
		}
		if p.WantsMixing == nil {
			p.WantsMixing = make(map[string]bool)
		}
		p.WantsMixing[attr.name] = wants
	}

	return p, nil
}

// parseFlag parses a {0,1} cell, accepting the usual boolean spellings.
// An empty cell is false.
func parseFlag(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid flag value %q", s)
	}

	return v, nil
}
