package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/timmens/random-grouping/types"
)

// historyHeader is the persisted history schema: one row per
// (meeting, participant) pair recording the assigned group label.
var historyHeader = []string{"meeting", "id", "group"}

// LoadHistory reads the persisted matching history.
//
// A missing file is first-time use and yields an empty history, not an
// error.
//
// Parameters:
//   - path: History CSV path
//
// Returns:
//   - *types.History: Ordered history (empty when the file does not exist)
//   - error: Read or parse error
func LoadHistory(path string) (*types.History, error) {
	file, err := os.Open(path)
	if os.IsNotExist(err) {
		return types.NewHistory(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening history file: %w", err)
	}
	defer file.Close()

	history, err := ParseHistory(file)
	if err != nil {
		return nil, fmt.Errorf("history file %s: %w", path, err)
	}

	return history, nil
}

// ParseHistory parses history CSV rows into a History.
func ParseHistory(r io.Reader) (*types.History, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = len(historyHeader)

	header, err := cr.Read()
	if err == io.EOF {
		return types.NewHistory(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i, want := range historyHeader {
		if header[i] != want {
			return nil, fmt.Errorf("unexpected header column %q, want %q", header[i], want)
		}
	}

	byMeeting := make(map[int]types.GroupAssignment)
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

		meeting, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid meeting index %q", row, record[0])
		}
		id, label := record[1], record[2]
		if id == "" || label == "" {
			return nil, fmt.Errorf("row %d: empty id or group label", row)
		}

		if byMeeting[meeting] == nil {
			byMeeting[meeting] = make(types.GroupAssignment)
		}
		byMeeting[meeting][id] = label
	}

	meetings := make([]int, 0, len(byMeeting))
	for m := range byMeeting {
		meetings = append(meetings, m)
	}
	sort.Ints(meetings)

	entries := make([]types.Entry, 0, len(meetings))
	for _, m := range meetings {
		entries = append(entries, types.Entry{Meeting: m, Groups: byMeeting[m]})
	}

	return types.NewHistory(entries), nil
}

// SaveHistory writes the full history, prior entries and new alike, in a
// stable order: by meeting, then group label, then participant ID. The
// persisted record therefore only ever grows by whole meetings.
//
// The record is written to a temp file in the target directory and renamed
// into place, so a failed write leaves the prior record untouched.
func SaveHistory(path string, history *types.History) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".history-*")
	if err != nil {
		return fmt.Errorf("creating history file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := WriteHistory(tmp, history); err != nil {
		tmp.Close()
		return fmt.Errorf("history file %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("history file %s: %w", path, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("history file %s: %w", path, err)
	}

	return os.Rename(tmp.Name(), path)
}

// WriteHistory writes history CSV rows to w.
func WriteHistory(w io.Writer, history *types.History) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(historyHeader); err != nil {
		return err
	}

	for _, entry := range history.Entries() {
		ids := make([]string, 0, len(entry.Groups))
		for id := range entry.Groups {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool {
			li, lj := entry.Groups[ids[i]], entry.Groups[ids[j]]
			if li != lj {
				return labelLess(li, lj)
			}
			return ids[i] < ids[j]
		})

		for _, id := range ids {
			record := []string{strconv.Itoa(entry.Meeting), id, entry.Groups[id]}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

// labelLess orders group labels numerically when both parse as integers, so
// "10" sorts after "2", and lexically otherwise.
func labelLess(a, b string) bool {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	if errA == nil && errB == nil {
		return na < nb
	}

	return a < b
}
