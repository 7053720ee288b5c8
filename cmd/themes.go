package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func init() {
	themesCmd.AddCommand(themesSelectCmd)
	rootCmd.AddCommand(themesCmd)
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openThemeStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (using built-in themes)\n", err)
		}

		for _, t := range store.Themes() {
			mark := " "
			if t.Name == store.SelectedName() {
				mark = "*"
			}
			swatch := lipgloss.NewStyle().
				Foreground(lipgloss.Color(t.Text.Hex())).
				Background(lipgloss.Color(t.Background.Hex())).
				Render(" Aa ")
			fmt.Printf("%s %s %s\n", mark, swatch, t.Name)
		}
		return nil
	},
}

var themesSelectCmd = &cobra.Command{
	Use:   "select <name>",
	Short: "Set the active theme",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openThemeStore()
		if err != nil {
			return err
		}
		if err := store.Select(args[0]); err != nil {
			return err
		}
		fmt.Printf("theme set to %s\n", args[0])
		return nil
	},
}
