// Package checks aggregates health checks contributed by linked packages.
// Any package can submit a Check; RunAll executes every registered check and
// reports all failures together.
package checks

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vk/stockpile"
	"github.com/vk/stockpile/internal/ctxlog"
)

// Check is one registered health check. Run must be safe to call
// concurrently with other checks.
type Check struct {
	Name string                      `stockpile:"name"`
	Run  func(context.Context) error `stockpile:"-"`
}

// Registry aggregates every Check linked into the binary.
var Registry = stockpile.Collect[Check]()

// RunAll executes every registered check concurrently. It does not stop at
// the first failure; the returned error aggregates every check that failed.
func RunAll(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	var (
		mu       sync.Mutex
		failures []string
	)

	g, ctx := errgroup.WithContext(ctx)
	for check := range Registry.All() {
		g.Go(func() error {
			logger.Debug("Running check.", "name", check.Name)
			if err := check.Run(ctx); err != nil {
				mu.Lock()
				failures = append(failures, fmt.Sprintf("%s: %v", check.Name, err))
				mu.Unlock()
			}
			return nil
		})
	}
	// Checks report through the failures slice, so Wait cannot error here.
	_ = g.Wait()

	if len(failures) > 0 {
		return fmt.Errorf("%d of %d checks failed:\n- %s", len(failures), Registry.Len(), strings.Join(failures, "\n- "))
	}
	return nil
}
