package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"al.essio.dev/pkg/shellescape"
	"github.com/heroesofcode/devmenu/internal/action"
	"github.com/heroesofcode/devmenu/internal/config"
	"github.com/spf13/cobra"
)

var (
	initForce  bool
	initFormat string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default devmenu config file",
	Long: `Writes a config file listing every built-in action and its default
command, ready to be edited. Remove entries from "actions" to shorten the
menu, reorder them to renumber it, and edit "commands" to change what an
action runs (the prompted value, if any, is appended last).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := initTarget(cmd.Flags().Changed("format"))
		if err != nil {
			return err
		}

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		cfg := config.DefaultConfig()
		for _, def := range action.Definitions() {
			cfg.Actions = append(cfg.Actions, def.ID)
			cfg.Commands[def.ID] = shellescape.QuoteCommand(def.Argv)
		}
		if err := cfg.Save(path); err != nil {
			return fmt.Errorf("save config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

// initTarget picks the file init writes. With --config the extension decides
// the format, and an explicit --format must agree with it.
func initTarget(formatSet bool) (string, error) {
	switch initFormat {
	case "json", "toml", "yaml":
	default:
		return "", fmt.Errorf("unknown format %q (want json, toml or yaml)", initFormat)
	}
	if configPath != "" {
		if got := config.Format(configPath); formatSet && got != initFormat {
			return "", fmt.Errorf("--format %s does not match %s (the extension selects %s)", initFormat, configPath, got)
		}
		return configPath, nil
	}
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config."+initFormat), nil
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	initCmd.Flags().StringVar(&initFormat, "format", "json", "Config format: json, toml or yaml")
	rootCmd.AddCommand(initCmd)
}
