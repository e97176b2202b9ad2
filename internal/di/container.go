package di

import (
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/RebelliousSmile/email-to-markdown/internal/config"
	"github.com/RebelliousSmile/email-to-markdown/internal/core"
	"github.com/RebelliousSmile/email-to-markdown/internal/factory"
	"github.com/RebelliousSmile/email-to-markdown/internal/ingest"
	"github.com/RebelliousSmile/email-to-markdown/internal/logging"
	"github.com/RebelliousSmile/email-to-markdown/internal/scan"
	"github.com/RebelliousSmile/email-to-markdown/internal/utils"
	"github.com/RebelliousSmile/email-to-markdown/internal/whitelist"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register text processor
	if err := container.Provide(utils.NewTextProcessor); err != nil {
		return nil, err
	}

	// Register sort configuration: sort_config.json resolved against the
	// sort.overrides section of the application configuration
	if err := container.Provide(func(cfg *config.Config, logger *zap.Logger) (*config.SortConfig, error) {
		path := cfg.GetSortRun().ConfigPath
		sc, err := config.LoadSortConfig(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("Loaded sort configuration", zap.String("path", path))
		return sc.Merge(config.OverrideFromConfig(cfg)), nil
	}); err != nil {
		return nil, err
	}

	// Register whitelist matcher
	if err := container.Provide(func(sc *config.SortConfig, logger *zap.Logger) *whitelist.Matcher {
		return whitelist.NewMatcher(sc.Whitelist, logger)
	}); err != nil {
		return nil, err
	}

	// Register sorter
	if err := container.Provide(core.NewSorter); err != nil {
		return nil, err
	}

	// Register record parser
	if err := container.Provide(ingest.NewParser); err != nil {
		return nil, err
	}

	// Register batch scanner
	if err := container.Provide(func(parser *ingest.Parser, sorter *core.Sorter, cfg *config.Config, logger *zap.Logger) *scan.Scanner {
		run := cfg.GetSortRun()
		return scan.NewScanner(parser, sorter, logger, run.Extension, run.Workers)
	}); err != nil {
		return nil, err
	}

	// Register run history factory
	if err := container.Provide(factory.NewHistoryFactory); err != nil {
		return nil, err
	}

	// Register run history repository
	if err := container.Provide(func(f *factory.HistoryFactory) (core.RunHistory, error) {
		return f.CreateRunHistory()
	}); err != nil {
		return nil, err
	}

	return container, nil
}
