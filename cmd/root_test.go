package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"al.essio.dev/pkg/shellescape"
	"github.com/google/shlex"
	"github.com/heroesofcode/devmenu/internal/action"
	"github.com/heroesofcode/devmenu/internal/config"
	"github.com/heroesofcode/devmenu/internal/menu"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateCLI points the config and log dirs at a fresh temp dir and returns it.
func isolateCLI(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DEVMENU_CONFIG_DIR", dir)
	t.Setenv("NO_COLOR", "1")
	return dir
}

// resetFlags restores every flag of c and its subcommands to its default,
// including the Changed marker cobra keeps between Execute calls.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCLI executes the root command with isolated config and log dirs.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	isolateCLI(t)
	return execCLI(t, stdin, args...)
}

// execCLI executes the root command in the current environment, starting
// from default flag values.
func execCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCommand(t *testing.T) {
	t.Run("exit quits with farewell", func(t *testing.T) {
		out, err := runCLI(t, "exit\n")
		require.NoError(t, err)
		assert.Contains(t, out, "6 - Upgrade Homebrew packages")
		assert.Contains(t, out, "Bye 👋")
	})

	t.Run("invalid choice still exits cleanly", func(t *testing.T) {
		out, err := runCLI(t, "\n")
		require.NoError(t, err)
		assert.Contains(t, out, "❌ This option does not exist")
		assert.Equal(t, 1, strings.Count(out, "Choose an option: "))
	})

	t.Run("loop flag re-renders until quit", func(t *testing.T) {
		out, err := runCLI(t, "9\nq\n", "--loop")
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(out, "Choose an option: "))
	})

	t.Run("config loop re-renders until quit", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		cfg := config.DefaultConfig()
		cfg.Loop = true
		require.NoError(t, cfg.Save(path))

		out, err := runCLI(t, "9\nq\n", "--config", path)
		require.NoError(t, err)
		assert.Equal(t, 2, strings.Count(out, "Choose an option: "))
	})

	t.Run("loop flag overrides config loop", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		cfg := config.DefaultConfig()
		cfg.Loop = true
		require.NoError(t, cfg.Save(path))

		out, err := runCLI(t, "9\nq\n", "--config", path, "--loop=false")
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(out, "Choose an option: "))
		assert.NotContains(t, out, "Bye")
	})

	t.Run("flags do not leak into the next run", func(t *testing.T) {
		_, err := runCLI(t, "9\nq\n", "--loop", "--config", filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)

		out, err := execCLI(t, "9\n")
		require.NoError(t, err)
		assert.Equal(t, 1, strings.Count(out, "Choose an option: "))
	})

	t.Run("closed input is an error", func(t *testing.T) {
		_, err := runCLI(t, "")
		assert.ErrorIs(t, err, menu.ErrInputClosed)
	})

	t.Run("config selects a three-action menu", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		cfg := config.DefaultConfig()
		cfg.Actions = []string{action.CloneRepos, action.Releasor, action.RustProject}
		require.NoError(t, cfg.Save(path))

		out, err := runCLI(t, "4\n", "--config", path)
		require.NoError(t, err)
		assert.Contains(t, out, "3 - Create rust project")
		assert.NotContains(t, out, "4 - ")
		assert.Contains(t, out, "does not exist")
	})

	t.Run("failing action exits with its error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		cfg := config.DefaultConfig()
		cfg.Commands[action.CloneRepos] = "false"
		require.NoError(t, cfg.Save(path))

		_, err := runCLI(t, "1\n", "--config", path)
		var actionErr *menu.ActionError
		require.ErrorAs(t, err, &actionErr)
		assert.Equal(t, action.CloneRepos, actionErr.Action)
		assert.Contains(t, err.Error(), "exited with status 1")
	})

	t.Run("prompted value reaches the process verbatim", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.json")
		cfg := config.DefaultConfig()
		cfg.Commands[action.Releasor] = "touch"
		require.NoError(t, cfg.Save(path))

		_, err := runCLI(t, "2\nmy pkg\n", "--config", path, "--workdir", dir)
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, "my pkg"))
	})
}

func TestBuildRegistry(t *testing.T) {
	t.Run("defaults to every built-in action", func(t *testing.T) {
		reg, err := buildRegistry(config.DefaultConfig(), action.Deps{})
		require.NoError(t, err)
		assert.Equal(t, len(action.IDs()), reg.Len())
	})

	t.Run("follows configured order", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Actions = []string{action.BrewUpgrade, action.CloneRepos}

		reg, err := buildRegistry(cfg, action.Deps{})
		require.NoError(t, err)
		first, _ := reg.Lookup(1)
		assert.Equal(t, action.BrewUpgrade, first.ID)
	})

	t.Run("rejects unknown actions", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Actions = []string{"deploy"}

		_, err := buildRegistry(cfg, action.Deps{})
		assert.ErrorContains(t, err, "invalid config")
	})
}

func TestInitCommand(t *testing.T) {
	for _, format := range []string{"json", "toml", "yaml"} {
		t.Run(format, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config."+format)

			_, err := runCLI(t, "", "init", "--config", path)
			require.NoError(t, err)

			cfg, err := config.Load(path)
			require.NoError(t, err)
			assert.Equal(t, action.IDs(), cfg.Actions)
			require.NoError(t, cfg.Validate(action.IDs()))

			argv, err := cfg.CommandFor(action.Releasor, nil)
			require.NoError(t, err)
			assert.Equal(t, []string{"releasor", "-f"}, argv)
		})
	}

	t.Run("format flag picks the default file", func(t *testing.T) {
		dir := isolateCLI(t)

		out, err := execCLI(t, "", "init", "--format", "toml")
		require.NoError(t, err)
		assert.Contains(t, out, filepath.Join(dir, "config.toml"))
		assert.FileExists(t, filepath.Join(dir, "config.toml"))
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		_, err := runCLI(t, "", "init", "--format", "ini", "--config", filepath.Join(t.TempDir(), "config.ini"))
		assert.ErrorContains(t, err, `unknown format "ini"`)
	})

	t.Run("rejects format that disagrees with the config extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")

		_, err := runCLI(t, "", "init", "--format", "toml", "--config", path)
		assert.ErrorContains(t, err, "does not match")
		assert.NoFileExists(t, path)
	})

	t.Run("force overwrites", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))

		_, err := runCLI(t, "", "init", "--config", path, "--force")
		require.NoError(t, err)
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, action.IDs(), cfg.Actions)
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))

		_, err := runCLI(t, "", "init", "--config", path)
		assert.ErrorContains(t, err, "already exists")
	})
}

// Commands written by init are read back with shlex.
func TestQuotedCommandsSplitBack(t *testing.T) {
	tests := [][]string{
		{"hoc", "clone"},
		{"gh", "repo", "create", "--description", "made with devmenu"},
		{"echo", "it's", `"quoted"`, `back\slash`, "#hash"},
	}
	for _, argv := range tests {
		split, err := shlex.Split(shellescape.QuoteCommand(argv))
		require.NoError(t, err)
		assert.Equal(t, argv, split)
	}
}
