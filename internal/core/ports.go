package core

import (
	"context"
)

// RunHistory defines the interface for persisting completed batch runs
type RunHistory interface {
	// Record stores a completed run
	Record(ctx context.Context, run *RunRecord) error

	// Recent returns up to limit runs, newest first
	Recent(ctx context.Context, limit int) ([]*RunRecord, error)

	// Close releases any underlying resources
	Close() error
}
