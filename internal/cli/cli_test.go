package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- Command tree tests ----------

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand(nil)
	assert.Equal(t, "dev", root.Version)
}

func TestRootCommandFlags(t *testing.T) {
	root := newRootCommand(nil)
	for _, name := range []string{"all", "skip", "config", "db", "dry-run"} {
		assert.NotNil(t, root.Flags().Lookup(name), "missing flag: %s", name)
	}
	for _, name := range []string{"settings", "log-level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing persistent flag: %s", name)
	}
	assert.Equal(t, defaultConfigFile, root.Flags().Lookup("config").DefValue)
}

// ---------- Exit code tests ----------

func writeFixtures(t *testing.T) (string, string, string) {
	t.Helper()
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	dir := t.TempDir()
	for _, name := range []string{"poetry.lock", "pre-commit-config.yaml", "custom-mapping.json"} {
		data, err := os.ReadFile(filepath.Join(root, "fixtures", name))
		require.NoError(t, err)
		target := name
		if name == "pre-commit-config.yaml" {
			target = defaultConfigFile
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, target), data, 0644))
	}
	return dir, filepath.Join(dir, "poetry.lock"), filepath.Join(dir, defaultConfigFile)
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args func(dir, lock, config string) []string
		want int
	}{
		{
			name: "changes made",
			args: func(_, lock, config string) []string { return []string{lock, "--config", config} },
			want: 1,
		},
		{
			name: "nothing to change",
			args: func(_, lock, config string) []string {
				return []string{lock, "--config", config, "--skip", "mypy,flake8"}
			},
			want: 0,
		},
		{
			name: "missing lock file",
			args: func(dir, _, config string) []string {
				return []string{filepath.Join(dir, "missing.lock"), "--config", config}
			},
			want: exitLockError,
		},
		{
			name: "missing config",
			args: func(dir, lock, _ string) []string {
				return []string{lock, "--config", filepath.Join(dir, "missing.yaml")}
			},
			want: exitConfigError,
		},
		{
			name: "missing mapping file",
			args: func(dir, lock, config string) []string {
				return []string{lock, "--config", config, "--db", filepath.Join(dir, "missing.json")}
			},
			want: exitOtherError,
		},
		{
			name: "unknown flag",
			args: func(_, lock, _ string) []string { return []string{lock, "--no-such-flag"} },
			want: exitInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, lock, config := writeFixtures(t)
			assert.Equal(t, tt.want, run(tt.args(dir, lock, config)))
		})
	}
}

func TestRunDefaultsToWorkingDirectory(t *testing.T) {
	dir, _, config := writeFixtures(t)
	t.Chdir(dir)

	assert.Equal(t, 1, run([]string{"--all"}))
	data, err := os.ReadFile(config)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rev: 21.11b1")
	assert.Equal(t, 0, run([]string{"--all"}))
}

func TestRunMalformedConfig(t *testing.T) {
	_, lock, config := writeFixtures(t)
	require.NoError(t, os.WriteFile(config, []byte("repos: {}\n"), 0644))
	assert.Equal(t, exitConfigError, run([]string{lock, "--config", config}))
}

func TestRunSettingsFile(t *testing.T) {
	dir, lock, config := writeFixtures(t)
	settings := filepath.Join(dir, "hooksync.yaml")
	require.NoError(t, os.WriteFile(settings, []byte("all: true\nskip:\n  - flake8\n"), 0644))

	assert.Equal(t, 1, run([]string{lock, "--config", config, "--settings", settings}))
	data, err := os.ReadFile(config)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "rev: 21.11b1")
	assert.Contains(t, content, `rev: "3.9.0"`)
	assert.Contains(t, content, "rev: 'v0.910'")
}

func TestRunMalformedSettingsInWorkingDirectory(t *testing.T) {
	dir, lock, config := writeFixtures(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hooksync.yaml"), []byte("all: [\n"), 0644))
	t.Chdir(dir)

	assert.Equal(t, exitInvalidArgument, run([]string{lock, "--config", config}))
}

func TestRunDryRun(t *testing.T) {
	_, lock, config := writeFixtures(t)
	before, err := os.ReadFile(config)
	require.NoError(t, err)

	assert.Equal(t, 1, run([]string{lock, "--config", config, "--dry-run"}))
	after, err := os.ReadFile(config)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "lock error",
			err:  errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("lock file is malformed: poetry.lock"),
			want: exitLockError,
		},
		{
			name: "config error",
			err:  errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("pre-commit config not found: x"),
			want: exitConfigError,
		},
		{
			name: "mapping error",
			err:  errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("mapping file is malformed: db.json"),
			want: exitOtherError,
		},
		{
			name: "invalid argument",
			err:  errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("at least one lock file is required"),
			want: exitInvalidArgument,
		},
		{
			name: "internal",
			err:  errbuilder.New().WithCode(errbuilder.CodeInternal).WithMsg("rewrite changed the line count"),
			want: exitOtherError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeForError(tt.err))
		})
	}
}

// ---------- Helper function tests ----------

func newResolveCommand(t *testing.T) *cobra.Command {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("test-flag", "", "")
	cmd.Flags().StringSlice("test-list", nil, "")
	cmd.Flags().Bool("test-bool", false, "")
	return cmd
}

func TestResolveString(t *testing.T) {
	tests := []struct {
		name     string
		set      bool
		value    string
		expected string
	}{
		{name: "unset flag falls back to viper", value: "explicit", expected: "from-settings"},
		{name: "set flag wins over viper", set: true, value: "explicit", expected: "explicit"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newResolveCommand(t)
			viper.Set("test_key", "from-settings")
			if tt.set {
				require.NoError(t, cmd.Flags().Set("test-flag", tt.value))
			}
			assert.Equal(t, tt.expected, resolveString(cmd, tt.value, "test_key", "test-flag"))
		})
	}
}

func TestResolveStrings(t *testing.T) {
	cmd := newResolveCommand(t)
	viper.Set("test_key", []string{"black"})
	assert.Equal(t, []string{"black"}, resolveStrings(cmd, nil, "test_key", "test-list"))

	require.NoError(t, cmd.Flags().Set("test-list", "a,b"))
	assert.Equal(t, []string{"a", "b"}, resolveStrings(cmd, []string{"a", "b"}, "test_key", "test-list"))
}

func TestResolveBool(t *testing.T) {
	cmd := newResolveCommand(t)
	viper.Set("test_key", true)
	assert.True(t, resolveBool(cmd, false, "test_key", "test-bool"))

	require.NoError(t, cmd.Flags().Set("test-bool", "false"))
	assert.False(t, resolveBool(cmd, false, "test_key", "test-bool"))
}

func TestFlagChanged(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	assert.False(t, flagChanged(cmd, "missing"), "unknown flag")
	assert.False(t, flagChanged(cmd, "myflag"), "unchanged flag")
	require.NoError(t, cmd.Flags().Set("myflag", "value"))
	assert.True(t, flagChanged(cmd, "myflag"), "changed flag")
}
