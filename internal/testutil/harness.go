// Package testutil provides the shared harness for integration tests that
// exercise the full app: config, logger, manifest loading, and command
// dispatch, with captured output.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/stockpile/internal/app"
)

// Result holds the observable output of one app run.
type Result struct {
	Stdout string
	Logs   string
	Err    error
}

// RunApp wires a full App from cfg and runs its command, capturing stdout
// and log output. Startup panics (for example an unreadable manifest path)
// surface as Err rather than failing the test immediately, so failure cases
// can assert on them.
func RunApp(t *testing.T, cfg app.Config) (result *Result) {
	t.Helper()

	var out, logs strings.Builder
	result = &Result{}
	defer func() {
		result.Stdout = out.String()
		result.Logs = logs.String()
		if r := recover(); r != nil {
			err, ok := r.(error)
			require.True(t, ok, "startup panicked with a non-error: %v", r)
			result.Err = err
		}
	}()

	fullCfg, err := app.NewConfig(cfg)
	require.NoError(t, err)

	a := app.NewApp(&out, &logs, fullCfg)
	result.Err = a.Run(context.Background(), fullCfg)
	return result
}

// WriteManifestDir writes each named manifest body into a temp dir and
// returns the dir path.
func WriteManifestDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}
