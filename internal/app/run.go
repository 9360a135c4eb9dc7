package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/stockpile/internal/command"
	"github.com/vk/stockpile/internal/ctxlog"
)

// Run dispatches the configured subcommand through the command registry.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	cmd, ok := command.Lookup(cfg.Command)
	if !ok {
		return fmt.Errorf("unknown command %q (available: %s)", cfg.Command, strings.Join(command.Names(), ", "))
	}

	a.logger.Debug("Dispatching command.", "command", cmd.Name)
	return cmd.Run(ctx, command.Env{
		Out:      a.outW,
		Manifest: a.manifest,
	})
}
