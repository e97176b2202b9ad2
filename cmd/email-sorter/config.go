package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/RebelliousSmile/email-to-markdown/internal/config"
	"github.com/RebelliousSmile/email-to-markdown/internal/logging"
)

var (
	configInitPath  string
	configInitForce bool
	configShowPath  string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the scoring configuration (sort_config.json)",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default scoring configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.InitConsoleLogger(verbose)
		if err != nil {
			return err
		}
		defer logger.Sync()

		path := configInitPath
		if path == "" {
			path = config.DefaultSortConfigPath()
		}
		logger.Debug("Resolved sort configuration path", zap.String("path", path))

		if _, err := os.Stat(path); err == nil && !configInitForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := config.DefaultSortConfig().Save(path); err != nil {
			return err
		}
		logger.Info("Wrote default sort configuration", zap.String("path", path))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved scoring configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := logging.InitConsoleLogger(verbose)
		if err != nil {
			return err
		}
		defer logger.Sync()

		path := configShowPath
		if path == "" {
			path = config.DefaultSortConfigPath()
		}
		logger.Debug("Loading sort configuration", zap.String("path", path))

		cfg, err := config.LoadSortConfig(path)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode sort config: %w", err)
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)

	configInitCmd.Flags().StringVar(&configInitPath, "path", "", "where to write sort_config.json (default: platform config dir)")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing file")
	configShowCmd.Flags().StringVar(&configShowPath, "path", "", "path to sort_config.json (default: platform config dir)")
}
