package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/markprompt/markprompt/internal/export"
)

var exportOutput string

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write HTML to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <file.md>",
	Short: "Render a markdown file to HTML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		html, err := export.HTML(source)
		if err != nil {
			return err
		}

		if exportOutput != "" {
			return os.WriteFile(exportOutput, []byte(html), 0644)
		}
		fmt.Print(html)
		return nil
	},
}
