package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/RebelliousSmile/email-to-markdown/internal/core"
)

// MySQLHistory is a MySQL implementation of the RunHistory interface
type MySQLHistory struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLHistory creates a new MySQL run history
func NewMySQLHistory(dsn string, logger *zap.Logger) (*MySQLHistory, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	// Create table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS sort_runs (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			base_dir VARCHAR(1024),
			started_at VARCHAR(64),
			duration_ms BIGINT,
			total INT,
			deleted INT,
			summarized INT,
			kept INT,
			skipped INT,
			errors INT,
			report_path VARCHAR(1024)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLHistory{
		db:     db,
		logger: logger,
	}, nil
}

// Record stores a completed run
func (h *MySQLHistory) Record(ctx context.Context, run *core.RunRecord) error {
	res, err := h.db.ExecContext(ctx, `
		INSERT INTO sort_runs
			(base_dir, started_at, duration_ms, total, deleted, summarized, kept, skipped, errors, report_path)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.BaseDir, run.StartedAt.Format(time.RFC3339), run.Duration.Milliseconds(),
		run.Total, run.Deleted, run.Summarized, run.Kept, run.Skipped, run.Errors, run.ReportPath)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	if id, err := res.LastInsertId(); err == nil {
		run.ID = id
	}
	return nil
}

// Recent returns up to limit runs, newest first
func (h *MySQLHistory) Recent(ctx context.Context, limit int) ([]*core.RunRecord, error) {
	rows, err := h.db.QueryContext(ctx, `
		SELECT id, base_dir, started_at, duration_ms, total, deleted, summarized, kept, skipped, errors, report_path
		FROM sort_runs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	return scanRuns(rows, h.logger)
}

// Close closes the database connection
func (h *MySQLHistory) Close() error {
	return h.db.Close()
}
