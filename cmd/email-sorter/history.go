package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RebelliousSmile/email-to-markdown/internal/config"
	"github.com/RebelliousSmile/email-to-markdown/internal/core"
	"github.com/RebelliousSmile/email-to-markdown/internal/di"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent sort runs",
	RunE: func(cmd *cobra.Command, args []string) error {
		container, err := di.BuildContainer()
		if err != nil {
			return fmt.Errorf("failed to build container: %w", err)
		}

		return container.Invoke(func(cfg *config.Config, logger *zap.Logger, hist core.RunHistory) error {
			defer logger.Sync()
			defer hist.Close()

			limit := historyLimit
			if limit <= 0 {
				limit = cfg.GetHistory().Limit
			}

			runs, err := hist.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to load run history: %w", err)
			}
			if len(runs) == 0 {
				fmt.Println("No recorded runs.")
				return nil
			}

			for _, run := range runs {
				fmt.Printf("%s  %-30s total=%d delete=%d summarize=%d keep=%d skipped=%d errors=%d (%s)\n",
					run.StartedAt.Format("2006-01-02 15:04:05"),
					run.BaseDir,
					run.Total, run.Deleted, run.Summarized, run.Kept,
					run.Skipped, run.Errors,
					run.Duration.Round(time.Millisecond))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 0, "maximum runs to list (default: history.limit)")
}
