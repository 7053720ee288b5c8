package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/markprompt/markprompt/internal/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		path, _ := config.GetConfigPath()
		themesPath, _ := config.GetThemesPath()

		fmt.Printf("config file:  %s\n", path)
		fmt.Printf("themes file:  %s\n", themesPath)
		fmt.Println()
		fmt.Printf("scroll speed:       %g px/s\n", cfg.Scroll.Speed)
		fmt.Printf("pause at headings:  %t\n", cfg.Scroll.PauseAtHeadings)
		fmt.Printf("pause duration:     %g s\n", cfg.Scroll.PauseDuration)
		fmt.Printf("auto restart:       %t\n", cfg.Scroll.AutoRestart)
		fmt.Printf("font size:          %g px\n", cfg.Display.FontSize)
		theme := cfg.Theme.Name
		if theme == "" {
			theme = "(first theme)"
		}
		fmt.Printf("theme:              %s\n", theme)
		return nil
	},
}
