package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/stockpile/internal/ctxlog"
	"github.com/vk/stockpile/internal/manifest"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	manifest *manifest.Manifest
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. Manifests are loaded
// here when a path is configured; a failure to load them is a fatal startup
// error and panics, which the entrypoint recovers into a clean exit.
func NewApp(outW, errW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var m *manifest.Manifest
	if cfg.ManifestsPath != "" {
		loaded, err := manifest.LoadDir(ctx, cfg.ManifestsPath)
		if err != nil {
			panic(fmt.Errorf("failed to load manifests: %w", err))
		}
		m = loaded
	}

	return &App{
		outW:     outW,
		logger:   logger,
		manifest: m,
	}
}

// Manifest returns the loaded manifest, or nil when no path was configured.
// This is primarily for testing.
func (a *App) Manifest() *manifest.Manifest {
	return a.manifest
}
