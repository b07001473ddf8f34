package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/timmens/random-grouping/types"
)

const sampleRoster = `id,name,joins,status,wants_mixing,status2,wants_mixing2
1,Alice,1,faculty,0,red,
2,Bob,0,student,1,,
3,Carol,1,,,blue,1
`

func TestParseRoster(t *testing.T) {
	t.Run("parses columns and attribute pairs", func(t *testing.T) {
		roster, err := ParseRoster(strings.NewReader(sampleRoster))
		require.NoError(t, err)
		require.Equal(t, 3, roster.Len())
		require.Equal(t, []string{"1", "3"}, roster.ActiveIDs())

		alice, ok := roster.ByID("1")
		require.True(t, ok)
		require.Equal(t, "Alice", alice.Name)
		require.True(t, alice.Active)
		require.Equal(t, map[string]string{"status": "faculty", "status2": "red"}, alice.Attributes)
		require.False(t, alice.WantsMixingOn("status"))
		// Empty wants cell leaves the preference unset: willing by default.
		require.True(t, alice.WantsMixingOn("status2"))

		bob, ok := roster.ByID("2")
		require.True(t, ok)
		require.False(t, bob.Active)
		require.Equal(t, map[string]string{"status": "student"}, bob.Attributes)

		carol, ok := roster.ByID("3")
		require.True(t, ok)
		// Empty status cell means the attribute is absent.
		_, hasStatus := carol.Attribute("status")
		require.False(t, hasStatus)
		require.Equal(t, map[string]string{"status2": "blue"}, carol.Attributes)
		require.True(t, carol.WantsMixingOn("status2"))
	})

	t.Run("attribute names come back from the roster", func(t *testing.T) {
		roster, err := ParseRoster(strings.NewReader(sampleRoster))
		require.NoError(t, err)
		require.Equal(t, []string{"status", "status2"}, roster.AttributeNames())
	})

	t.Run("missing required column", func(t *testing.T) {
		_, err := ParseRoster(strings.NewReader("id,name\n1,Alice\n"))
		require.ErrorContains(t, err, `missing required column "joins"`)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ParseRoster(strings.NewReader(""))
		require.ErrorContains(t, err, "empty roster table")
	})

	t.Run("invalid joins flag", func(t *testing.T) {
		_, err := ParseRoster(strings.NewReader("id,name,joins\n1,Alice,maybe\n"))
		require.ErrorContains(t, err, "row 2")
		require.ErrorContains(t, err, `"maybe"`)
	})

	t.Run("duplicate ids are rejected", func(t *testing.T) {
		_, err := ParseRoster(strings.NewReader("id,name,joins\n1,Alice,1\n1,Bob,0\n"))
		require.ErrorIs(t, err, types.ErrDuplicateID)
	})
}

func TestFile_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleRoster), 0o644))

	roster, err := NewFile(path).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 3, roster.Len())

	_, err = NewFile(filepath.Join(t.TempDir(), "missing.csv")).Load(context.Background())
	require.Error(t, err)
}

func TestHTTP_Load(t *testing.T) {
	t.Run("fetches and parses", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(sampleRoster))
		}))
		defer srv.Close()

		roster, err := NewHTTP(srv.URL, srv.Client()).Load(context.Background())
		require.NoError(t, err)
		require.Equal(t, 3, roster.Len())
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "gone", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := NewHTTP(srv.URL, srv.Client()).Load(context.Background())
		require.ErrorContains(t, err, "unexpected status")
	})
}

func TestNew(t *testing.T) {
	require.IsType(t, &HTTP{}, New("https://example.com/names.csv"))
	require.IsType(t, &HTTP{}, New("http://example.com/names.csv"))
	require.IsType(t, &File{}, New("data/names.csv"))
}

func TestStatic(t *testing.T) {
	src := NewStatic([]types.Participant{
		{ID: "a", Name: "Alice", Active: true},
		{ID: "b", Name: "Bob", Active: false},
	})

	roster, err := src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, roster.ActiveIDs())

	src.Update([]types.Participant{
		{ID: "a", Name: "Alice", Active: true},
		{ID: "c", Name: "Cleo", Active: true},
	})
	roster, err = src.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, roster.ActiveIDs())
}
