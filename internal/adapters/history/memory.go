package history

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/RebelliousSmile/email-to-markdown/internal/core"
)

// MemoryHistory is an in-memory implementation of the RunHistory interface.
// Runs recorded here do not survive the process; it is the default backend.
type MemoryHistory struct {
	mu     sync.Mutex
	runs   []*core.RunRecord
	nextID int64
	logger *zap.Logger
}

// NewMemoryHistory creates a new in-memory run history
func NewMemoryHistory(logger *zap.Logger) *MemoryHistory {
	return &MemoryHistory{
		nextID: 1,
		logger: logger,
	}
}

// Record stores a completed run
func (h *MemoryHistory) Record(ctx context.Context, run *core.RunRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	run.ID = h.nextID
	h.nextID++
	h.runs = append(h.runs, run)
	return nil
}

// Recent returns up to limit runs, newest first
func (h *MemoryHistory) Recent(ctx context.Context, limit int) ([]*core.RunRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]*core.RunRecord, 0, limit)
	for i := len(h.runs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, h.runs[i])
	}
	return out, nil
}

// Close is a no-op for the in-memory history
func (h *MemoryHistory) Close() error {
	return nil
}
