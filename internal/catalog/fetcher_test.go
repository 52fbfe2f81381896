package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	server    *httptest.Server
	files     map[string]string // name -> body; a nil-URL entry has no body
	noURL     []string
	listCalls atomic.Int64
	getCalls  atomic.Int64
	failWith  map[string]int // name -> HTTP status to return
}

func newFakeRemote(t *testing.T, files map[string]string) *fakeRemote {
	t.Helper()

	r := &fakeRemote{files: files, failWith: map[string]int{}}
	mux := http.NewServeMux()
	mux.HandleFunc("/list", func(w http.ResponseWriter, _ *http.Request) {
		r.listCalls.Add(1)

		names := make([]string, 0, len(r.files))
		for name := range r.files {
			names = append(names, name)
		}
		sort.Strings(names)

		entries := make([]map[string]any, 0, len(names)+len(r.noURL))
		for _, name := range names {
			entries = append(entries, map[string]any{
				"name":         name,
				"download_url": r.server.URL + "/raw/" + name,
			})
		}
		for _, name := range r.noURL {
			entries = append(entries, map[string]any{"name": name, "download_url": nil})
		}
		_ = json.NewEncoder(w).Encode(entries)
	})
	mux.HandleFunc("/raw/", func(w http.ResponseWriter, req *http.Request) {
		r.getCalls.Add(1)

		name := req.URL.Path[len("/raw/"):]
		if status, ok := r.failWith[name]; ok {
			w.WriteHeader(status)
			return
		}
		body, ok := r.files[name]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, body)
	})

	r.server = httptest.NewServer(mux)
	t.Cleanup(r.server.Close)
	return r
}

func (r *fakeRemote) fetcher() *Fetcher {
	return NewFetcher(Options{ListURL: r.server.URL + "/list"})
}

func themeFile(names ...string) string {
	out := "themes {\n"
	for _, n := range names {
		out += "    " + n + " {\n        fg 1 2 3\n    }\n"
	}
	return out + "}\n"
}

func TestFetchAccumulatesAcrossFiles(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote(t, map[string]string{
		"gruvbox.kdl":    themeFile("gruvbox-dark", "gruvbox-light"),
		"nord.kdl":       themeFile("nord"),
		"catppuccin.kdl": themeFile("catppuccin-mocha"),
		"README.md":      "not a theme",
	})

	themes, skipped, err := remote.fetcher().Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"catppuccin-mocha", "default", "gruvbox-dark", "gruvbox-light", "nord"}, themes)
	assert.Empty(t, skipped)
	assert.EqualValues(t, 1, remote.listCalls.Load())
	assert.EqualValues(t, 3, remote.getCalls.Load(), "README.md must not be downloaded")
}

func TestFetchSwallowsPerFileFailures(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote(t, map[string]string{
		"good-a.kdl": themeFile("alpha"),
		"broken.kdl": "themes {\n    oops {\n", // malformed on purpose
		"good-b.kdl": themeFile("beta"),
	})
	remote.failWith["good-b.kdl"] = http.StatusInternalServerError

	themes, skipped, err := remote.fetcher().Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"alpha", "default"}, themes)
	assert.ElementsMatch(t, []string{"broken.kdl", "good-b.kdl"}, skipped)
}

func TestFetchSkipsEntriesWithoutDownloadURL(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote(t, map[string]string{"nord.kdl": themeFile("nord")})
	remote.noURL = []string{"huge.kdl"}

	themes, skipped, err := remote.fetcher().Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"default", "nord"}, themes)
	assert.Equal(t, []string{"huge.kdl"}, skipped)
}

func TestFetchKeepsDuplicateNames(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote(t, map[string]string{
		"one.kdl": themeFile("solarized"),
		"two.kdl": themeFile("solarized"),
	})

	themes, _, err := remote.fetcher().Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"default", "solarized", "solarized"}, themes)
}

func TestFetchFileWithoutThemesNodeContributesNothing(t *testing.T) {
	t.Parallel()

	remote := newFakeRemote(t, map[string]string{
		"empty.kdl": "// reserved for later\n",
		"nord.kdl":  themeFile("nord"),
	})

	themes, skipped, err := remote.fetcher().Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"default", "nord"}, themes)
	assert.Empty(t, skipped, "a parsable file without a themes node is not a skip")
}

func TestFetchListingFailureIsFatal(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	_, _, err := NewFetcher(Options{ListURL: server.URL}).Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetchListingDecodeFailureIsFatal(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "<html>rate limited</html>")
	}))
	t.Cleanup(server.Close)

	_, _, err := NewFetcher(Options{ListURL: server.URL}).Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetchEmptyListingStillYieldsDefault(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "[]")
	}))
	t.Cleanup(server.Close)

	themes, skipped, err := NewFetcher(Options{ListURL: server.URL}).Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"default"}, themes)
	assert.Empty(t, skipped)
}
