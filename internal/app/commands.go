package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/stockpile"
	"github.com/vk/stockpile/internal/command"
	"github.com/vk/stockpile/internal/inspect"
	"github.com/vk/stockpile/modules/checks"
)

// The built-in subcommands register themselves through stockpile like any
// other module.

var _ = stockpile.Submit(command.Registry, command.Command{
	Name:    "list",
	Summary: "print every linked registry and its entries",
	Run: func(ctx context.Context, env command.Env) error {
		return inspect.Report(ctx, env.Out)
	},
})

var _ = stockpile.Submit(command.Registry, command.Command{
	Name:    "validate",
	Summary: "check the loaded manifests against the linked registries",
	Run: func(ctx context.Context, env command.Env) error {
		if env.Manifest == nil {
			return errors.New("validate requires manifests; pass -manifests with a file or directory")
		}
		inspect.Uncovered(ctx, env.Manifest)
		if err := inspect.Validate(ctx, env.Manifest); err != nil {
			return err
		}
		_, err := fmt.Fprintln(env.Out, "manifest validation passed")
		return err
	},
})

var _ = stockpile.Submit(command.Registry, command.Command{
	Name:    "check",
	Summary: "run every registered health check",
	Run: func(ctx context.Context, env command.Env) error {
		if err := checks.RunAll(ctx); err != nil {
			return err
		}
		_, err := fmt.Fprintf(env.Out, "all %d checks passed\n", checks.Registry.Len())
		return err
	},
})
