package core

import (
	"go.uber.org/zap"

	"github.com/RebelliousSmile/email-to-markdown/internal/config"
	"github.com/RebelliousSmile/email-to-markdown/internal/whitelist"
)

// Sorter scores and categorizes email records against a scoring
// configuration. It is stateless and safe for concurrent use.
type Sorter struct {
	cfg       *config.SortConfig
	whitelist *whitelist.Matcher
	logger    *zap.Logger
}

// NewSorter creates a new sorter
func NewSorter(cfg *config.SortConfig, wl *whitelist.Matcher, logger *zap.Logger) *Sorter {
	return &Sorter{
		cfg:       cfg,
		whitelist: wl,
		logger:    logger,
	}
}

// Evaluate scores and categorizes a record in place and returns it.
// Evaluating the same record and body twice yields the same result.
func (s *Sorter) Evaluate(rec *EmailRecord, body string) *EmailRecord {
	rec.Score = s.Score(rec, body)
	rec.Category = s.Classify(rec, body)

	s.logger.Debug("Evaluated record",
		zap.String("file", rec.FileName),
		zap.String("sender", rec.Sender),
		zap.Int("score", rec.Score),
		zap.String("category", rec.Category.Label()))

	return rec
}
