package history

import (
	"context"

	"github.com/RebelliousSmile/email-to-markdown/internal/core"
)

// NopHistory discards runs. Used when history is disabled.
type NopHistory struct{}

// NewNopHistory creates a history that records nothing
func NewNopHistory() *NopHistory {
	return &NopHistory{}
}

// Record discards the run
func (h *NopHistory) Record(ctx context.Context, run *core.RunRecord) error {
	return nil
}

// Recent returns no runs
func (h *NopHistory) Recent(ctx context.Context, limit int) ([]*core.RunRecord, error) {
	return nil, nil
}

// Close is a no-op
func (h *NopHistory) Close() error {
	return nil
}
