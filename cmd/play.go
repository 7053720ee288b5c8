package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/markprompt/markprompt/internal/config"
	"github.com/markprompt/markprompt/internal/document"
	"github.com/markprompt/markprompt/internal/scroll"
	"github.com/markprompt/markprompt/internal/theme"
	"github.com/markprompt/markprompt/internal/tui/prompter"
	"github.com/markprompt/markprompt/internal/watch"
)

var (
	playSpeed         float64
	playFontSize      float64
	playPauseHeadings bool
	playPauseDuration float64
	playAutoRestart   bool
	playThemeName     string
	playResetOnReload bool
	playNoWatch       bool
)

func init() {
	playCmd.Flags().Float64Var(&playSpeed, "speed", 0, "Scroll speed in px/s (10-500)")
	playCmd.Flags().Float64Var(&playFontSize, "font-size", 0, "Base row scale in px (8-72)")
	playCmd.Flags().BoolVar(&playPauseHeadings, "pause-at-headings", false, "Pause when a heading scrolls in")
	playCmd.Flags().Float64Var(&playPauseDuration, "pause-duration", 0, "Heading pause in seconds (0.5-10)")
	playCmd.Flags().BoolVar(&playAutoRestart, "auto-restart", false, "Jump back to the top at the end")
	playCmd.Flags().StringVar(&playThemeName, "theme", "", "Theme name from themes.toml")
	playCmd.Flags().BoolVar(&playResetOnReload, "reset-on-reload", false, "Scroll back to the top when the file changes")
	playCmd.Flags().BoolVar(&playNoWatch, "no-watch", false, "Do not reload when the file changes on disk")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <file.md>",
	Short: "Scroll a markdown file like a teleprompter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, args[0])
	},
}

func runPlay(cmd *cobra.Command, path string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	blocks, err := document.Load(path)
	if err != nil {
		return err
	}

	store, themeErr := openThemeStore()
	if themeErr != nil {
		// Never fatal: the store fell back to the built-in themes.
		fmt.Fprintf(os.Stderr, "warning: %v (using built-in themes)\n", themeErr)
	}
	name := cfg.Theme.Name
	if playThemeName != "" {
		name = playThemeName
	}
	if name != "" {
		if err := store.Select(name); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
	}

	ctrl := scroll.NewController()
	ctrl.SetSpeed(cfg.Scroll.Speed)
	ctrl.SetFontSize(cfg.Display.FontSize)
	ctrl.SetPauseDuration(cfg.Scroll.PauseDuration)
	ctrl.SetPauseAtHeadings(cfg.Scroll.PauseAtHeadings)
	ctrl.SetAutoRestart(cfg.Scroll.AutoRestart)
	applyPlayFlags(cmd, ctrl)

	var watcher *watch.Watcher
	if !playNoWatch {
		if watcher, err = watch.New(path); err != nil {
			fmt.Fprintf(os.Stderr, "warning: cannot watch %s: %v\n", path, err)
		} else {
			defer watcher.Close()
		}
	}

	model := prompter.New(prompter.Options{
		Path:          path,
		Blocks:        blocks,
		Controller:    ctrl,
		Store:         store,
		Watcher:       watcher,
		ResetOnReload: playResetOnReload,
	})

	out := termenv.NewOutput(os.Stdout)
	out.SetBackgroundColor(out.Color(store.Selected().Background.Hex()))
	defer out.Reset()

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("run teleprompter: %w", err)
	}

	// Persist where the user left the knobs.
	if m, ok := final.(*prompter.Model); ok {
		c := m.Controller()
		cfg.Scroll.Speed = c.Speed()
		cfg.Scroll.PauseAtHeadings = c.PauseAtHeadings()
		cfg.Scroll.PauseDuration = c.PauseDuration()
		cfg.Scroll.AutoRestart = c.AutoRestart()
		cfg.Display.FontSize = c.FontSize()
		cfg.Theme.Name = m.ThemeName()
		if err := config.Save(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "warning: save settings: %v\n", err)
		}
	}
	return nil
}

// applyPlayFlags layers explicitly set flags over the stored settings.
func applyPlayFlags(cmd *cobra.Command, ctrl *scroll.Controller) {
	if cmd.Flags().Changed("speed") {
		ctrl.SetSpeed(playSpeed)
	}
	if cmd.Flags().Changed("font-size") {
		ctrl.SetFontSize(playFontSize)
	}
	if cmd.Flags().Changed("pause-at-headings") {
		ctrl.SetPauseAtHeadings(playPauseHeadings)
	}
	if cmd.Flags().Changed("pause-duration") {
		ctrl.SetPauseDuration(playPauseDuration)
	}
	if cmd.Flags().Changed("auto-restart") {
		ctrl.SetAutoRestart(playAutoRestart)
	}
}

func openThemeStore() (*theme.Store, error) {
	path, err := config.GetThemesPath()
	if err != nil {
		return theme.FallbackStore(), err
	}
	return theme.Open(path)
}
