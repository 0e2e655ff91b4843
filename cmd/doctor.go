package cmd

import (
	"fmt"
	"os/exec"

	"github.com/heroesofcode/devmenu/internal/action"
	"github.com/heroesofcode/devmenu/internal/config"
	"github.com/heroesofcode/devmenu/internal/logging"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration and that each action's tool is installed",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		allOK := true

		// 1. Config file
		cfg, err := loadConfig()
		switch {
		case err != nil:
			fmt.Fprintf(out, "Config:  FAIL (%v)\n", err)
			cfg = config.DefaultConfig()
			allOK = false
		case configPath != "":
			fmt.Fprintf(out, "Config:  OK (%s)\n", configPath)
		default:
			path, _ := config.ConfigFilePath()
			fmt.Fprintf(out, "Config:  OK (%s, defaults if absent)\n", path)
		}

		if err := cfg.Validate(action.IDs()); err != nil {
			fmt.Fprintf(out, "Actions: FAIL (%v)\n", err)
			return fmt.Errorf("some checks failed")
		}

		// 2. Log file
		if logPath, err := config.LogFilePath(); err != nil {
			fmt.Fprintf(out, "Logs:    WARN (cannot determine path: %v)\n", err)
		} else if _, cleanup, err := logging.Setup(logPath, logging.ParseLevel(cfg.LogLevel)); err != nil {
			fmt.Fprintf(out, "Logs:    WARN (%v)\n", err)
		} else {
			cleanup()
			fmt.Fprintf(out, "Logs:    OK (%s)\n", logPath)
		}

		// 3. Tools in PATH
		ids := cfg.Actions
		if len(ids) == 0 {
			ids = action.IDs()
		}
		for _, id := range ids {
			def, _ := action.Lookup(id)
			argv, _ := cfg.CommandFor(id, def.Argv)
			if path, err := exec.LookPath(argv[0]); err != nil {
				fmt.Fprintf(out, "Action %s: WARN (command %q not found in PATH)\n", id, argv[0])
			} else {
				fmt.Fprintf(out, "Action %s: OK (%s)\n", id, path)
			}
		}

		if !allOK {
			return fmt.Errorf("some checks failed")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
