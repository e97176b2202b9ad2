package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/RebelliousSmile/email-to-markdown/internal/core"
)

// SQLiteHistory is a SQLite implementation of the RunHistory interface
type SQLiteHistory struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteHistory creates a new SQLite run history
func NewSQLiteHistory(dbPath string, logger *zap.Logger) (*SQLiteHistory, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Create table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS sort_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			base_dir TEXT,
			started_at TIMESTAMP,
			duration_ms INTEGER,
			total INTEGER,
			deleted INTEGER,
			summarized INTEGER,
			kept INTEGER,
			skipped INTEGER,
			errors INTEGER,
			report_path TEXT
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &SQLiteHistory{
		db:     db,
		logger: logger,
	}, nil
}

// Record stores a completed run
func (h *SQLiteHistory) Record(ctx context.Context, run *core.RunRecord) error {
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
func (h *SQLiteHistory) Recent(ctx context.Context, limit int) ([]*core.RunRecord, error) {
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
func (h *SQLiteHistory) Close() error {
	return h.db.Close()
}

// scanRuns reads run rows in the column order used by both SQL backends.
func scanRuns(rows *sql.Rows, logger *zap.Logger) ([]*core.RunRecord, error) {
	var runs []*core.RunRecord
	for rows.Next() {
		var run core.RunRecord
		var startedAt string
		var durationMS int64

		if err := rows.Scan(&run.ID, &run.BaseDir, &startedAt, &durationMS,
			&run.Total, &run.Deleted, &run.Summarized, &run.Kept,
			&run.Skipped, &run.Errors, &run.ReportPath); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}

		t, err := time.Parse(time.RFC3339, startedAt)
		if err != nil {
			logger.Warn("Failed to parse started_at timestamp", zap.Error(err))
		} else {
			run.StartedAt = t
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond

		runs = append(runs, &run)
	}
	return runs, rows.Err()
}
