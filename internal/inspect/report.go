package inspect

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/stockpile"
	"github.com/vk/stockpile/internal/ctxlog"
	"github.com/vk/stockpile/internal/manifest"
)

// Report writes a human-readable dump of every registry linked into this
// binary and the values it carries. Registries print in name order; value
// order within a registry is unspecified.
func Report(ctx context.Context, w io.Writer) error {
	views := stockpile.Registries()
	ctxlog.FromContext(ctx).Debug("Rendering registry report.", "registries", len(views))
	if len(views) == 0 {
		_, err := fmt.Fprintln(w, "no registries declared")
		return err
	}

	for _, view := range views {
		if _, err := fmt.Fprintf(w, "%s (%d entries)\n", view.Name(), view.Len()); err != nil {
			return err
		}
		for value := range view.Values() {
			if _, err := fmt.Fprintf(w, "  %+v\n", value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Uncovered returns the names of linked registries no manifest block
// describes. These are not errors; the caller decides whether to surface
// them.
func Uncovered(ctx context.Context, m *manifest.Manifest) []string {
	logger := ctxlog.FromContext(ctx)

	var names []string
	for _, view := range stockpile.Registries() {
		if _, ok := m.Registries[view.Name()]; !ok {
			names = append(names, view.Name())
		}
	}
	if len(names) > 0 {
		logger.Info("Registries without manifest coverage.", "names", names)
	}
	return names
}
