package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lcault/zjthemes/internal/kdl"
	"github.com/lcault/zjthemes/internal/logger"
)

// DefaultTheme is the built-in sentinel every catalog contains. Zellij always
// knows how to render it even when no theme file exists locally.
const DefaultTheme = "default"

const themeFileExt = ".kdl"

// Options configures a Fetcher. Zero values select sane defaults.
type Options struct {
	ListURL     string
	UserAgent   string
	Timeout     time.Duration
	Concurrency int
	Logger      *logger.Logger
}

// Fetcher discovers theme names from a remote directory of KDL theme files,
// using the GitHub contents API: one call to list the directory, one call per
// matching file.
type Fetcher struct {
	client      *http.Client
	listURL     string
	userAgent   string
	concurrency int
	log         *logger.Logger
}

// remoteEntry is one entry of the contents listing. Entries may lack a
// download URL (directories, oversized files); those are skipped.
type remoteEntry struct {
	Name        string `json:"name"`
	DownloadURL string `json:"download_url"`
}

// NewFetcher creates a Fetcher from Options.
func NewFetcher(opts Options) *Fetcher {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = "zjthemes"
	}

	return &Fetcher{
		client:      &http.Client{Timeout: timeout},
		listURL:     opts.ListURL,
		userAgent:   userAgent,
		concurrency: concurrency,
		log:         opts.Logger,
	}
}

// Fetch resolves the remote catalog. The directory listing is fatal on any
// failure; individual file downloads are not, they only land in skipped. The
// returned catalog carries the sentinel "default" and is sorted
// lexicographically. Duplicate names across files are kept as-is.
func (f *Fetcher) Fetch(ctx context.Context) (themes []string, skipped []string, err error) {
	entries, err := f.listEntries(ctx)
	if err != nil {
		return nil, nil, err
	}

	var candidates []remoteEntry
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name, themeFileExt) {
			candidates = append(candidates, entry)
		}
	}
	f.log.WithFields(map[string]any{"entries": len(entries), "theme_files": len(candidates)}).Debug("remote listing fetched")

	perFile := make([][]string, len(candidates))
	failed := make([]bool, len(candidates))

	wg := sync.WaitGroup{}
	sem := make(chan struct{}, f.concurrency)

	for i, entry := range candidates {
		i := i
		entry := entry
		wg.Add(1)
		go func() {
			defer wg.Done()

			sem <- struct{}{}
			defer func() { <-sem }()

			names, err := f.fetchThemeNames(ctx, entry)
			if err != nil {
				f.log.WithFields(map[string]any{"file": entry.Name}).Error(err, "skipping theme file")
				failed[i] = true
				return
			}
			perFile[i] = names
		}()
	}

	wg.Wait()

	for i, entry := range candidates {
		if failed[i] {
			skipped = append(skipped, entry.Name)
			continue
		}
		themes = append(themes, perFile[i]...)
	}

	themes = append(themes, DefaultTheme)
	sort.Strings(themes)

	return themes, skipped, nil
}

func (f *Fetcher) listEntries(ctx context.Context) ([]remoteEntry, error) {
	body, err := f.get(ctx, f.listURL)
	if err != nil {
		return nil, fmt.Errorf("listing remote themes: %w", err)
	}

	var entries []remoteEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("decoding remote listing: %w", err)
	}

	return entries, nil
}

func (f *Fetcher) fetchThemeNames(ctx context.Context, entry remoteEntry) ([]string, error) {
	if entry.DownloadURL == "" {
		return nil, fmt.Errorf("no download url")
	}

	body, err := f.get(ctx, entry.DownloadURL)
	if err != nil {
		return nil, err
	}

	doc, err := kdl.Parse(string(body))
	if err != nil {
		return nil, err
	}

	return doc.ChildNames("themes"), nil
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
