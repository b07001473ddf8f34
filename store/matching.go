package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/timmens/random-grouping/types"
)

// FormatMatching renders a grouping as a human-readable listing, one line
// per group, with member display names taken from the roster:
//
//	Group 1: Alice, Bob, Carol
//	Group 2: Dave, Erin
//
// Members appear in their group order; IDs without a roster entry fall back
// to the raw ID so the listing never drops anyone.
func FormatMatching(g types.Grouping, roster *types.Roster) string {
	var b strings.Builder
	for _, group := range g {
		names := make([]string, len(group.Members))
		for i, id := range group.Members {
			if p, ok := roster.ByID(id); ok && p.Name != "" {
				names[i] = p.Name
			} else {
				names[i] = id
			}
		}
		fmt.Fprintf(&b, "Group %s: %s\n", group.Label, strings.Join(names, ", "))
	}

	return b.String()
}

// WriteMatching writes the human-readable listing to path.
func WriteMatching(path string, g types.Grouping, roster *types.Roster) error {
	if err := os.WriteFile(path, []byte(FormatMatching(g, roster)), 0o644); err != nil {
		return fmt.Errorf("writing matching file: %w", err)
	}

	return nil
}
