package manifest_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/stockpile/internal/manifest"
)

func writeManifests(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestLoadDir_Success(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		files    map[string]string
		validate func(t *testing.T, m *manifest.Manifest)
	}{
		{
			name: "full registry block",
			files: map[string]string{"flags.hcl": `
			registry "flags.Flag" {
				description = "command line flags"
				expect {
					min_entries = 1
				}
				field "name" {
					type = string
				}
				field "count" {
					type = number
				}
			}
			`},
			validate: func(t *testing.T, m *manifest.Manifest) {
				decl := m.Registries["flags.Flag"]
				require.NotNil(t, decl)
				require.Equal(t, "command line flags", decl.Description)
				require.Equal(t, 1, decl.Expect.MinEntries)
				require.Len(t, decl.Fields, 2)
				require.Equal(t, cty.String, decl.Fields["name"].Type)
				require.Equal(t, cty.Number, decl.Fields["count"].Type)
				require.Contains(t, decl.FilePath, "flags.hcl")
			},
		},
		{
			name: "minimal block without expect or fields",
			files: map[string]string{"codecs.hcl": `
			registry "codecs.Codec" {}
			`},
			validate: func(t *testing.T, m *manifest.Manifest) {
				decl := m.Registries["codecs.Codec"]
				require.NotNil(t, decl)
				require.Empty(t, decl.Description)
				require.Zero(t, decl.Expect.MinEntries)
				require.Empty(t, decl.Fields)
			},
		},
		{
			name: "any type and collection type",
			files: map[string]string{"misc.hcl": `
			registry "misc.Thing" {
				field "payload" {
					type = any
				}
				field "tags" {
					type = list(string)
				}
			}
			`},
			validate: func(t *testing.T, m *manifest.Manifest) {
				decl := m.Registries["misc.Thing"]
				require.NotNil(t, decl)
				require.Equal(t, cty.DynamicPseudoType, decl.Fields["payload"].Type)
				require.Equal(t, cty.List(cty.String), decl.Fields["tags"].Type)
			},
		},
		{
			name: "blocks merged across files",
			files: map[string]string{
				"a.hcl": `registry "a.A" {}`,
				"b.hcl": `registry "b.B" {}`,
			},
			validate: func(t *testing.T, m *manifest.Manifest) {
				require.Len(t, m.Registries, 2)
				require.Contains(t, m.Registries, "a.A")
				require.Contains(t, m.Registries, "b.B")
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			dir := writeManifests(t, tc.files)
			m, err := manifest.LoadDir(context.Background(), dir)
			require.NoError(t, err)
			tc.validate(t, m)
		})
	}
}

func TestLoadDir_Failure(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		files   map[string]string
		errLike string
	}{
		{
			name:    "malformed HCL",
			files:   map[string]string{"bad.hcl": `registry "x" {`},
			errLike: "failed to parse",
		},
		{
			name: "unknown type keyword",
			files: map[string]string{"bad.hcl": `
			registry "x.X" {
				field "name" {
					type = strng
				}
			}
			`},
			errLike: "registry \"x.X\"",
		},
		{
			name: "missing field type",
			files: map[string]string{"bad.hcl": `
			registry "x.X" {
				field "name" {}
			}
			`},
			errLike: "requires a type attribute",
		},
		{
			name: "duplicate field",
			files: map[string]string{"bad.hcl": `
			registry "x.X" {
				field "name" { type = string }
				field "name" { type = string }
			}
			`},
			errLike: "declared more than once",
		},
		{
			name: "duplicate registry across files",
			files: map[string]string{
				"a.hcl": `registry "x.X" {}`,
				"b.hcl": `registry "x.X" {}`,
			},
			errLike: "declared in both",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			dir := writeManifests(t, tc.files)
			_, err := manifest.LoadDir(context.Background(), dir)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errLike)
		})
	}
}

func TestLoadDir_EmptyDir(t *testing.T) {
	t.Parallel()

	m, err := manifest.LoadDir(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.Empty(t, m.Registries)
}
