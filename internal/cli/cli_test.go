package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specialistvlad/mkgraph/internal/app"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParse(t *testing.T) {
	t.Parallel()

	settings := writeSettings(t, `
file          = "from/settings/Makefile"
format        = "order"
select        = ["prog"]
phony_targets = true
log_level     = "debug"
`)

	testCases := []struct {
		name       string
		args       []string
		want       *app.Config
		wantExit   bool
		wantErr    string
		wantOutput string
	}{
		{
			name: "defaults",
			args: []string{},
			want: &app.Config{MakefilePath: "Makefile", Format: "dot", LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "positional path",
			args: []string{"build/Makefile"},
			want: &app.Config{MakefilePath: "build/Makefile", Format: "dot", LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "shorthand path and flags",
			args: []string{"-f", "src", "-format", "tree", "-phony-targets", "-log-format", "json", "-log-level", "warn"},
			want: &app.Config{MakefilePath: "src", Format: "tree", PhonyTargets: true, LogFormat: "json", LogLevel: "warn"},
		},
		{
			name: "repeated and comma separated select",
			args: []string{"-select", "prog", "-select", "*.o, lib/*"},
			want: &app.Config{MakefilePath: "Makefile", Format: "dot", Select: []string{"prog", "*.o", "lib/*"}, LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "settings file",
			args: []string{"-config", settings},
			want: &app.Config{MakefilePath: "from/settings/Makefile", Format: "order", Select: []string{"prog"}, PhonyTargets: true, LogFormat: "text", LogLevel: "debug"},
		},
		{
			name: "flags override settings file",
			args: []string{"-config", settings, "-format", "dot", "-select", "all", "-log-level", "error", "other/Makefile"},
			want: &app.Config{MakefilePath: "other/Makefile", Format: "dot", Select: []string{"all"}, PhonyTargets: true, LogFormat: "text", LogLevel: "error"},
		},
		{
			name:       "help",
			args:       []string{"-h"},
			wantExit:   true,
			wantOutput: "Usage:",
		},
		{
			name:    "unknown flag",
			args:    []string{"-nope"},
			wantErr: "flag provided but not defined: -nope",
		},
		{
			name:    "too many paths",
			args:    []string{"a", "b"},
			wantErr: "expected at most one path, got 2",
		},
		{
			name:    "invalid format",
			args:    []string{"-format", "svg"},
			wantErr: `invalid format "svg"`,
		},
		{
			name:    "missing settings file",
			args:    []string{"-config", filepath.Join(t.TempDir(), "missing.hcl")},
			wantErr: "could not read config file",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			got, shouldExit, err := Parse(tc.args, &out)

			if tc.wantErr != "" {
				require.Error(t, err)
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, 2, exitErr.Code)
				assert.Contains(t, exitErr.Message, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantExit, shouldExit)
			assert.Equal(t, tc.want, got)
			if tc.wantOutput != "" {
				assert.Contains(t, out.String(), tc.wantOutput)
			}
		})
	}
}
