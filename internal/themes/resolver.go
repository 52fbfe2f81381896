package themes

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lcault/zjthemes/internal/cache"
	"github.com/lcault/zjthemes/internal/kdl"
	"github.com/lcault/zjthemes/internal/logger"
	"github.com/lcault/zjthemes/internal/paths"
	apperrors "github.com/lcault/zjthemes/pkg/errors"
)

// themeNode is the top-level config node carrying the selected theme.
const themeNode = "theme"

// Catalog is an interface over the remote fetcher so the resolver can be
// tested without a network.
type Catalog interface {
	Fetch(ctx context.Context) (themes []string, skipped []string, err error)
}

// Resolver decides between the cached catalog and a remote fetch, and owns
// selection persistence into the Zellij config file.
type Resolver struct {
	paths   paths.Paths
	store   *cache.Store
	fetcher Catalog
	log     *logger.Logger

	skippedLastFetch []string
}

// NewResolver wires a Resolver from its collaborators.
func NewResolver(p paths.Paths, store *cache.Store, fetcher Catalog, log *logger.Logger) *Resolver {
	return &Resolver{paths: p, store: store, fetcher: fetcher, log: log}
}

// Resolve returns the theme catalog. Unless force is set, a fresh cache
// snapshot answers without any network traffic. On a miss (or force) the
// remote catalog is fetched and written through to the cache. When the fetch
// succeeds but the cache write fails, the catalog is returned together with a
// CacheWriteError so the caller can decide to keep going.
func (r *Resolver) Resolve(ctx context.Context, force bool) ([]string, error) {
	if !force {
		if snap, ok := r.store.Read(); ok {
			r.log.WithFields(map[string]any{"themes": len(snap.Themes), "captured_at": snap.CapturedAt}).Debug("catalog served from cache")
			return snap.Themes, nil
		}
	}

	themes, skipped, err := r.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	r.skippedLastFetch = skipped
	if len(skipped) > 0 {
		r.log.WithFields(map[string]any{"skipped": skipped}).Warn("some remote theme files were skipped")
	}

	if err := r.store.Write(themes); err != nil {
		return themes, apperrors.NewCacheWriteError(r.paths.Cache, err)
	}

	r.log.WithFields(map[string]any{"themes": len(themes)}).Debug("catalog fetched and cached")
	return themes, nil
}

// SkippedLastFetch lists the remote files the last Resolve skipped, if that
// call fetched at all.
func (r *Resolver) SkippedLastFetch() []string {
	return r.skippedLastFetch
}

// EnsureThemeDir creates the local theme directory and its parents when
// absent. Idempotent.
func (r *Resolver) EnsureThemeDir() error {
	if err := os.MkdirAll(r.paths.ThemeDir, 0755); err != nil {
		return fmt.Errorf("creating theme directory %s: %w", r.paths.ThemeDir, err)
	}
	return nil
}

// ApplySelection persists the chosen theme into the config file: read, parse,
// replace-or-append the theme node, serialize, atomic write. A config file
// that fails to parse is left untouched on disk.
func (r *Resolver) ApplySelection(name string) error {
	data, err := os.ReadFile(r.paths.Config)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", r.paths.Config, err)
	}

	doc, err := kdl.Parse(string(data))
	if err != nil {
		var parseErr *apperrors.ParseError
		if errors.As(err, &parseErr) {
			return apperrors.NewParseError(r.paths.Config, parseErr.Line, parseErr.Err)
		}
		return err
	}

	doc.SetScalar(themeNode, name)

	if err := writeFileAtomic(r.paths.Config, []byte(doc.String())); err != nil {
		return fmt.Errorf("writing config %s: %w", r.paths.Config, err)
	}

	r.log.WithFields(map[string]any{"theme": name}).Info("theme selection applied")
	return nil
}

// writeFileAtomic writes via a temporary sibling and rename so a crash never
// leaves a half-written config.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	return nil
}
