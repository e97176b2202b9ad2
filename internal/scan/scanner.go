// Package scan runs the Ingest → Score → Classify pipeline over every
// record file in a directory tree and folds the results into an aggregator.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/RebelliousSmile/email-to-markdown/internal/core"
	"github.com/RebelliousSmile/email-to-markdown/internal/ingest"
)

// attachmentsDir names the subfolders excluded from a scan.
const attachmentsDir = "attachments"

// Scanner walks a base directory and classifies each record file. Files
// are processed by a bounded worker pool; the aggregator serializes the
// fold, so the final statistics do not depend on completion order.
type Scanner struct {
	parser    *ingest.Parser
	sorter    *core.Sorter
	logger    *zap.Logger
	extension string
	workers   int
}

// NewScanner creates a new batch scanner
func NewScanner(parser *ingest.Parser, sorter *core.Sorter, logger *zap.Logger, extension string, workers int) *Scanner {
	if workers < 1 {
		workers = 1
	}
	return &Scanner{
		parser:    parser,
		sorter:    sorter,
		logger:    logger,
		extension: extension,
		workers:   workers,
	}
}

// RunSummary reports what happened to the scanned files. Skipped counts
// files that were readable but not classifiable records; Errors counts
// files that could not be read at all.
type RunSummary struct {
	Files     int
	Processed int
	Skipped   int
	Errors    int
}

// Run scans baseDir and folds every classified record into agg. A failure
// to enumerate the directory is fatal; per-file failures are logged,
// counted, and do not abort the batch.
func (s *Scanner) Run(ctx context.Context, baseDir string, agg *core.Aggregator) (*RunSummary, error) {
	files, walkErrors, err := s.collect(baseDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", baseDir, err)
	}

	s.logger.Info("Scanning records",
		zap.String("dir", baseDir),
		zap.Int("files", len(files)),
		zap.Int("workers", s.workers))

	// One clock for the whole batch keeps age buckets consistent.
	now := time.Now()

	var processed, skipped, readErrors atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for _, path := range files {
		if ctx.Err() != nil {
			break
		}
		path := path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				s.logger.Warn("Failed to read record", zap.String("file", path), zap.Error(err))
				readErrors.Add(1)
				return nil
			}

			rec, body, ok := s.parser.Parse(path, int64(len(data)), string(data), now)
			if !ok {
				skipped.Add(1)
				return nil
			}

			agg.Add(s.sorter.Evaluate(rec, body))
			processed.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &RunSummary{
		Files:     len(files),
		Processed: int(processed.Load()),
		Skipped:   int(skipped.Load()),
		Errors:    int(readErrors.Load()) + walkErrors,
	}, nil
}

// collect gathers the record files under baseDir, excluding attachments
// subfolders. An error on the base directory itself is returned; errors on
// entries below it are logged and counted.
func (s *Scanner) collect(baseDir string) (files []string, walkErrors int, err error) {
	err = filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == baseDir {
				return walkErr
			}
			s.logger.Warn("Failed to visit path", zap.String("path", path), zap.Error(walkErr))
			walkErrors++
			return nil
		}
		if d.IsDir() {
			if d.Name() == attachmentsDir && path != baseDir {
				return fs.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != s.extension {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	return files, walkErrors, nil
}
