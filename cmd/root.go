package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/heroesofcode/devmenu/internal/action"
	"github.com/heroesofcode/devmenu/internal/config"
	"github.com/heroesofcode/devmenu/internal/logging"
	"github.com/heroesofcode/devmenu/internal/menu"
	"github.com/spf13/cobra"
)

var (
	configPath string
	rootLoop   bool
	rootDir    string
)

var rootCmd = &cobra.Command{
	Use:   "devmenu",
	Short: "Interactive launcher for everyday developer tasks",
	Long: `devmenu shows a numbered menu of developer tasks (cloning the
HeroesOfCode repositories, releasing a package, scaffolding a Rust project,
installing Xcode, creating a GitHub repository, upgrading Homebrew) and runs
the one you pick.

Enter a number to run an action, or q, quit or exit to leave.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, cleanup := openLogger(cfg)
		defer cleanup()

		workdir, err := resolveWorkdir(cfg)
		if err != nil {
			return err
		}

		in, out := cmd.InOrStdin(), cmd.OutOrStdout()
		reader, err := menu.NewLineReader(in, out, menu.Interactive(in, out))
		if err != nil {
			return err
		}
		defer reader.Close()

		reg, err := buildRegistry(cfg, action.Deps{
			Runner:   action.NewExecRunner(logger),
			Prompter: menu.NewPrompt(reader, out),
			Workdir:  workdir,
			Logger:   logger,
		})
		if err != nil {
			return err
		}

		driver := menu.NewDriver(reg, reader, out, menu.NewStyles(out, menu.ColorEnabled(out)), logger)
		driver.Loop = cfg.Loop
		if cmd.Flags().Changed("loop") {
			driver.Loop = rootLoop
		}
		return driver.Run(cmd.Context())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig loads --config, or the default config file when the flag is
// unset. A missing default file means default settings.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		var err error
		if path, err = config.ConfigFilePath(); err != nil {
			return nil, err
		}
		return config.LoadOrDefault(path)
	}
	return config.Load(path)
}

func openLogger(cfg *config.Config) (*slog.Logger, func()) {
	logPath, err := config.LogFilePath()
	if err != nil {
		return logging.Discard(), func() {}
	}
	logger, cleanup, err := logging.Setup(logPath, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		return logging.Discard(), func() {}
	}
	return logging.RunLogger(logger), cleanup
}

func resolveWorkdir(cfg *config.Config) (string, error) {
	dir := rootDir
	if dir == "" {
		dir = cfg.Workdir
	}
	if dir == "" {
		return os.Getwd()
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve workdir: %w", err)
	}
	return abs, nil
}

// buildRegistry binds the configured actions, in configured order, to their
// implementations.
func buildRegistry(cfg *config.Config, deps action.Deps) (*menu.Registry, error) {
	if err := cfg.Validate(action.IDs()); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	ids := cfg.Actions
	if len(ids) == 0 {
		ids = action.IDs()
	}

	entries := make([]menu.Entry, 0, len(ids))
	for _, id := range ids {
		def, _ := action.Lookup(id)
		argv, err := cfg.CommandFor(id, def.Argv)
		if err != nil {
			return nil, err
		}
		act, err := action.New(def, argv, deps)
		if err != nil {
			return nil, err
		}
		entries = append(entries, menu.Entry{ID: def.ID, Label: def.Label, Action: act})
	}
	return menu.NewRegistry(entries)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: <config dir>/config.json)")
	rootCmd.Flags().BoolVar(&rootLoop, "loop", false, "Show the menu again after each action until you quit")
	rootCmd.Flags().StringVar(&rootDir, "workdir", "", "Directory actions run in (default: current directory)")
}
