package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/heroesofcode/devmenu/internal/config"
	"github.com/spf13/cobra"
)

var (
	logsFollow bool
	logsLines  int
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show launcher logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		logFile, err := config.LogFilePath()
		if err != nil {
			return err
		}

		if _, err := os.Stat(logFile); os.IsNotExist(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "No log file found at", logFile)
			return nil
		}

		tailArgs := []string{"-n", strconv.Itoa(logsLines), logFile}
		if logsFollow {
			tailArgs = []string{"-f", logFile}
		}
		tailCmd := exec.CommandContext(cmd.Context(), "tail", tailArgs...)
		tailCmd.Stdout = cmd.OutOrStdout()
		tailCmd.Stderr = cmd.ErrOrStderr()
		return tailCmd.Run()
	},
}

func init() {
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "Follow log output")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", 50, "Number of lines to show")
	rootCmd.AddCommand(logsCmd)
}
