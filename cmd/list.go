package cmd

import (
	"github.com/heroesofcode/devmenu/internal/action"
	"github.com/heroesofcode/devmenu/internal/menu"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the menu without running anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		reg, err := buildRegistry(cfg, action.Deps{})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		menu.Render(out, reg, menu.NewStyles(out, menu.ColorEnabled(out)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
