// Package app wires configuration, logging and the taxonomy adapters
// together for the wordnet binaries.
package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"wordnet/internal/adapters/filesystem"
	"wordnet/internal/adapters/sqlite"
	"wordnet/internal/application/commands"
	"wordnet/internal/config"
	"wordnet/internal/domain"
	"wordnet/internal/logging"
	"wordnet/internal/ports"
)

// App holds the adapters shared by one process
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Source ports.TaxonomySource

	cache       ports.TaxonomyCache
	cacheOpened bool
}

// New creates an App logging to logOut
func New(cfg *config.Config, logOut io.Writer) *App {
	return &App{
		Config: cfg,
		Logger: logging.New(cfg.LogLevel, cfg.LogFormat, logOut),
		Source: filesystem.NewSource(cfg.Synsets, cfg.Hypernyms),
	}
}

// Context returns ctx carrying the app logger
func (a *App) Context(ctx context.Context) context.Context {
	return logging.WithLogger(ctx, a.Logger)
}

// Cache opens the taxonomy cache on first use. It returns nil when caching
// is disabled or the database cannot be opened.
func (a *App) Cache() ports.TaxonomyCache {
	if a.cacheOpened {
		return a.cache
	}
	a.cacheOpened = true

	if !a.Config.Cache {
		return nil
	}

	c := sqlite.NewCache(a.Config.CacheDir)
	if err := c.Open(a.cacheName()); err != nil {
		a.Logger.Warn("taxonomy cache disabled", "error", err)
		return nil
	}
	a.Logger.Debug("taxonomy cache opened", "path", c.Path())
	a.cache = c
	return a.cache
}

// FreshCache returns the cache only if it matches the current source files
func (a *App) FreshCache() ports.TaxonomyCache {
	c := a.Cache()
	if c == nil {
		return nil
	}
	fp, err := a.Source.Fingerprint()
	if err != nil || c.NeedsRebuild(fp) {
		return nil
	}
	return c
}

// Load builds the WordNet, through the cache when enabled
func (a *App) Load(ctx context.Context, force bool) (*commands.LoadResult, error) {
	return commands.NewLoadCommand(a.Source, a.Cache(), force).Execute(a.Context(ctx))
}

// LoadWordNet is Load without the bookkeeping
func (a *App) LoadWordNet(ctx context.Context) (*domain.WordNet, error) {
	result, err := a.Load(ctx, false)
	if err != nil {
		return nil, err
	}
	return result.WordNet, nil
}

// Close releases the cache
func (a *App) Close() error {
	if a.cache != nil {
		return a.cache.Close()
	}
	return nil
}

// cacheName identifies the taxonomy by its absolute file paths
func (a *App) cacheName() string {
	abs := func(p string) string {
		if out, err := filepath.Abs(p); err == nil {
			return out
		}
		return p
	}
	return abs(a.Config.Synsets) + "|" + abs(a.Config.Hypernyms)
}
