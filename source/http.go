package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/timmens/random-grouping/types"
)

// HTTP implements a roster source fetching a CSV document over HTTP(S).
type HTTP struct {
	url    string
	client *http.Client
}

var _ types.RosterSource = (*HTTP)(nil)

// NewHTTP creates a roster source for the given URL. A nil client selects a
// default with a 30 second timeout.
func NewHTTP(url string, client *http.Client) *HTTP {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	return &HTTP{url: url, client: client}
}

// Load fetches and parses the roster.
func (h *HTTP) Load(ctx context.Context) (*types.Roster, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building roster request: %w", err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching roster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching roster from %s: unexpected status %s", h.url, resp.Status)
	}

	roster, err := ParseRoster(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("roster from %s: %w", h.url, err)
	}

	return roster, nil
}

// New picks a roster source for a path or URL: http(s) schemes fetch over
// the network, anything else reads a local file.
func New(pathOrURL string) types.RosterSource {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return NewHTTP(pathOrURL, nil)
	}

	return NewFile(pathOrURL)
}
