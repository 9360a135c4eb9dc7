package cli_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/stockpile/internal/cli"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		args       []string
		wantExit   bool
		wantErr    string
		wantCmd    string
		wantPath   string
		wantFormat string
	}{
		{
			name:       "command with manifests",
			args:       []string{"-manifests", "testdata/manifests", "validate"},
			wantCmd:    "validate",
			wantPath:   "testdata/manifests",
			wantFormat: "text",
		},
		{
			name:       "json log format",
			args:       []string{"-log-format", "JSON", "list"},
			wantCmd:    "list",
			wantFormat: "json",
		},
		{
			name:     "no command prints usage",
			args:     nil,
			wantExit: true,
		},
		{
			name:    "too many arguments",
			args:    []string{"list", "extra"},
			wantErr: "expected one command",
		},
		{
			name:    "bad log format",
			args:    []string{"-log-format", "xml", "list"},
			wantErr: "invalid log-format",
		},
		{
			name:    "bad log level",
			args:    []string{"-log-level", "loud", "list"},
			wantErr: "invalid log-level",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out strings.Builder
			cfg, shouldExit, err := cli.Parse(tc.args, &out)

			if tc.wantErr != "" {
				require.Error(t, err)
				var exitErr *cli.ExitError
				require.ErrorAs(t, err, &exitErr)
				require.Equal(t, 2, exitErr.Code)
				require.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)

			if tc.wantExit {
				require.True(t, shouldExit)
				require.Contains(t, out.String(), "Usage:")
				return
			}

			require.False(t, shouldExit)
			require.Equal(t, tc.wantCmd, cfg.Command)
			require.Equal(t, tc.wantPath, cfg.ManifestsPath)
			require.Equal(t, tc.wantFormat, cfg.LogFormat)
		})
	}
}
