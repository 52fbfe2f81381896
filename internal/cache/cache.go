package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// DefaultTTL is the staleness window for a cached catalog.
const DefaultTTL = time.Hour

// Snapshot is the last known theme catalog together with its capture time.
type Snapshot struct {
	Themes     []string
	CapturedAt time.Time
}

type cacheFile struct {
	Themes    []string `json:"themes"`
	Timestamp int64    `json:"timestamp"`
}

// Store persists theme catalog snapshots as a JSON file next to the Zellij
// config. Reads never fail: anything wrong with the file degrades to a miss
// so the caller falls back to a remote fetch.
type Store struct {
	path string
	ttl  time.Duration
	now  func() time.Time
}

// NewStore creates a Store for the given file path. A non-positive ttl
// selects DefaultTTL.
func NewStore(path string, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{path: path, ttl: ttl, now: time.Now}
}

// Read returns the cached snapshot when the file exists, parses, holds at
// least one theme and is younger than the TTL. Every failure mode reports a
// miss; a snapshot aged exactly the TTL is already stale.
func (s *Store) Read() (Snapshot, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Snapshot{}, false
	}

	var file cacheFile
	if err := json.Unmarshal(data, &file); err != nil {
		return Snapshot{}, false
	}
	if len(file.Themes) == 0 {
		return Snapshot{}, false
	}

	capturedAt := time.Unix(file.Timestamp, 0)
	if s.now().Sub(capturedAt) >= s.ttl {
		return Snapshot{}, false
	}

	return Snapshot{Themes: file.Themes, CapturedAt: capturedAt}, true
}

// Write overwrites the cache with a fresh snapshot stamped with the current
// time. The file is written to a temporary sibling and renamed so readers
// never observe a partial cache.
func (s *Store) Write(themes []string) error {
	file := cacheFile{
		Themes:    themes,
		Timestamp: s.now().Unix(),
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up temp file on failure
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
