package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RebelliousSmile/email-to-markdown/internal/config"
	"github.com/RebelliousSmile/email-to-markdown/internal/core"
	"github.com/RebelliousSmile/email-to-markdown/internal/di"
	"github.com/RebelliousSmile/email-to-markdown/internal/scan"
)

var (
	sortOutput     string
	sortConfigPath string
	sortWorkers    int
	sortKeepAttach bool
	sortWhitelist  []string
)

var sortCmd = &cobra.Command{
	Use:   "sort <directory>",
	Short: "Scan a directory of records and write a sorting report",
	Args:  cobra.ExactArgs(1),
	RunE:  runSort,
}

func init() {
	rootCmd.AddCommand(sortCmd)

	sortCmd.Flags().StringVarP(&sortOutput, "output", "o", "sort_report.json", "report file name, written under the scanned directory")
	sortCmd.Flags().StringVar(&sortConfigPath, "sort-config", "", "path to sort_config.json (default: platform config dir)")
	sortCmd.Flags().IntVar(&sortWorkers, "workers", 4, "number of concurrent workers")
	sortCmd.Flags().BoolVar(&sortKeepAttach, "keep-with-attachments", true, "keep records that carry attachments")
	sortCmd.Flags().StringSliceVar(&sortWhitelist, "whitelist", nil, "extra whitelist patterns (exact, @domain, or prefix@)")
}

func runSort(cmd *cobra.Command, args []string) error {
	baseDir := args[0]

	container, err := di.BuildContainer()
	if err != nil {
		return fmt.Errorf("failed to build container: %w", err)
	}

	// Push explicit flags into the configuration before the rest of the
	// pipeline materializes from it.
	if err := container.Invoke(func(cfg *config.Config) {
		v := cfg.GetViper()
		if cmd.Flags().Changed("output") {
			v.Set("sort.report_name", sortOutput)
		}
		if cmd.Flags().Changed("sort-config") {
			v.Set("sort.config_path", sortConfigPath)
		}
		if cmd.Flags().Changed("workers") {
			v.Set("sort.workers", sortWorkers)
		}
		if cmd.Flags().Changed("keep-with-attachments") {
			v.Set("sort.overrides.keep_with_attachments", sortKeepAttach)
		}
		if cmd.Flags().Changed("whitelist") {
			v.Set("sort.overrides.whitelist", sortWhitelist)
		}
	}); err != nil {
		return err
	}

	return container.Invoke(func(cfg *config.Config, logger *zap.Logger, scanner *scan.Scanner, hist core.RunHistory) error {
		defer logger.Sync()
		defer hist.Close()

		// sort.timeout bounds the whole batch; zero means no limit
		ctx := cmd.Context()
		timeout, err := cfg.GetDuration("sort.timeout")
		if err != nil {
			return fmt.Errorf("invalid sort.timeout: %w", err)
		}
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		started := time.Now()

		agg := core.NewAggregator()
		summary, err := scanner.Run(ctx, baseDir, agg)
		if err != nil {
			return err
		}

		stats := agg.Stats()
		reporter := core.NewReporter(baseDir, logger)
		report := reporter.Build(stats, agg.Categories())

		path, err := reporter.Save(report, cfg.GetSortRun().ReportName)
		if err != nil {
			return err
		}

		reporter.WriteSummary(os.Stdout, stats)
		fmt.Printf("\nReport saved to: %s\n", path)

		if summary.Skipped > 0 || summary.Errors > 0 {
			logger.Info("Some files were not classified",
				zap.Int("skipped", summary.Skipped),
				zap.Int("errors", summary.Errors))
		}

		run := &core.RunRecord{
			BaseDir:    baseDir,
			StartedAt:  started,
			Duration:   time.Since(started),
			Total:      stats.TotalEmails,
			Deleted:    stats.ByCategory["delete"],
			Summarized: stats.ByCategory["summarize"],
			Kept:       stats.ByCategory["keep"],
			Skipped:    summary.Skipped,
			Errors:     summary.Errors,
			ReportPath: path,
		}
		if err := hist.Record(ctx, run); err != nil {
			logger.Warn("Failed to record run in history", zap.Error(err))
		}

		return nil
	})
}
