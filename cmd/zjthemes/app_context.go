package main

import (
	"github.com/lcault/zjthemes/internal/cache"
	"github.com/lcault/zjthemes/internal/catalog"
	"github.com/lcault/zjthemes/internal/logger"
	"github.com/lcault/zjthemes/internal/paths"
	"github.com/lcault/zjthemes/internal/settings"
	"github.com/lcault/zjthemes/internal/themes"
)

// AppContext bundles the wired components every command needs. Paths and
// settings are resolved once, here, and passed down explicitly.
type AppContext struct {
	Log      *logger.Logger
	Paths    paths.Paths
	Settings settings.Settings
	Resolver *themes.Resolver
}

func newAppContext(flags *rootFlags) (*AppContext, error) {
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return nil, err
	}

	p, err := paths.Resolve()
	if err != nil {
		return nil, err
	}

	s, err := settings.Load(p.Settings)
	if err != nil {
		return nil, err
	}

	fetcher := catalog.NewFetcher(catalog.Options{
		ListURL:     s.ListURL,
		UserAgent:   "zjthemes/" + version,
		Timeout:     s.Timeout,
		Concurrency: s.Concurrency,
		Logger:      log.WithComponent("catalog"),
	})
	store := cache.NewStore(p.Cache, s.CacheTTL)

	return &AppContext{
		Log:      log,
		Paths:    p,
		Settings: s,
		Resolver: themes.NewResolver(p, store, fetcher, log.WithComponent("resolver")),
	}, nil
}
