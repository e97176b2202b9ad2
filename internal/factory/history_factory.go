package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/RebelliousSmile/email-to-markdown/internal/adapters/history"
	"github.com/RebelliousSmile/email-to-markdown/internal/config"
	"github.com/RebelliousSmile/email-to-markdown/internal/core"
)

// HistoryFactory creates run history repositories based on configuration
type HistoryFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewHistoryFactory creates a new history factory
func NewHistoryFactory(cfg *config.Config, logger *zap.Logger) *HistoryFactory {
	return &HistoryFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateRunHistory creates a run history repository based on the configuration
func (f *HistoryFactory) CreateRunHistory() (core.RunHistory, error) {
	hc := f.cfg.GetHistory()
	if !hc.Enabled {
		return history.NewNopHistory(), nil
	}

	switch hc.Type {
	case "memory":
		return history.NewMemoryHistory(f.logger), nil
	case "sqlite":
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(hc.SQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		return history.NewSQLiteHistory(hc.SQLitePath, f.logger)
	case "mysql":
		return history.NewMySQLHistory(hc.MySQLDSN, f.logger)
	default:
		return nil, fmt.Errorf("unsupported history type: %s", hc.Type)
	}
}
