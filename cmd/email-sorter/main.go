// Package main is the entry point for the email-sorter CLI, which
// classifies exported email records into delete, summarize and keep
// dispositions and reports the results.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/RebelliousSmile/email-to-markdown/internal/config"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd is the base command for the email-sorter CLI.
var rootCmd = &cobra.Command{
	Use:   "email-sorter",
	Short: "Classify exported email records into delete, summarize and keep",
	Long: `email-sorter scans a directory of exported email records (markdown files
with YAML frontmatter), scores each one against a configurable set of
weighted signals, assigns it a disposition (delete, summarize or keep), and
writes a JSON report with per-category breakdowns and statistics.

The scoring configuration lives in sort_config.json; application behaviour
(logging, workers, run history) comes from email-sorter.yaml.`,
}

func init() {
	cobra.OnInitialize(func() {
		if cfgFile != "" {
			config.SetFile(cfgFile)
		}
	})

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./email-sorter.yaml or /etc/email-sorter/)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
