package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "markprompt",
	Short: "A terminal teleprompter for markdown",
	Long: `markprompt auto-scrolls a markdown file at a steady speed so you can
read prepared text hands-free.

Examples:
  markprompt talk.md                    # start the teleprompter
  markprompt play talk.md --speed 80    # scroll at 80 px/s
  markprompt themes                     # list color themes
  markprompt export talk.md > talk.html # render to HTML`,
	Version:           Version,
	Args:              cobra.MaximumNArgs(1),
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		// A bare file argument starts the teleprompter, same as play.
		if len(args) == 0 {
			return cmd.Help()
		}
		return runPlay(cmd, args[0])
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
