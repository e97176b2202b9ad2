package core

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
)

// Report is the persisted JSON report for one batch run.
type Report struct {
	Summary    ReportSummary             `json:"summary"`
	Details    ReportDetails             `json:"details"`
	Categories map[string][]EmailSummary `json:"categories"`
}

// ReportSummary holds totals and per-category recommendations.
type ReportSummary struct {
	TotalEmails     int               `json:"total_emails"`
	Categories      map[string]int    `json:"categories"`
	Recommendations map[string]string `json:"recommendations"`
}

// ReportDetails holds the type, sender and month breakdowns.
type ReportDetails struct {
	ByType   map[string]int `json:"by_type"`
	BySender []SenderCount  `json:"by_sender"`
	ByDate   map[string]int `json:"by_date"`
}

// SenderCount is one (sender, count) pair, serialized as a two-element
// array to keep the sender ordering in the document.
type SenderCount struct {
	Sender string
	Count  int
}

// MarshalJSON encodes the pair as ["sender", count].
func (s SenderCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{s.Sender, s.Count})
}

// UnmarshalJSON decodes a ["sender", count] pair.
func (s *SenderCount) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := json.Unmarshal(pair[0], &s.Sender); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &s.Count)
}

// EmailSummary is a compact per-record entry in the report.
type EmailSummary struct {
	File        string `json:"file"`
	Subject     string `json:"subject"`
	Sender      string `json:"sender"`
	Date        string `json:"date"`
	Score       int    `json:"score"`
	Type        string `json:"type"`
	Size        int64  `json:"size"`
	Attachments int    `json:"attachments"`
}

// unknownDate is the placeholder for records without a parsed date.
const unknownDate = "Unknown"

// dayKey is the date format for record summaries.
const dayKey = "2006-01-02"

// Reporter turns aggregated statistics into a report document and a
// console summary.
type Reporter struct {
	baseDir string
	logger  *zap.Logger
}

// NewReporter creates a reporter for a scanned base directory.
func NewReporter(baseDir string, logger *zap.Logger) *Reporter {
	return &Reporter{
		baseDir: baseDir,
		logger:  logger,
	}
}

// Build assembles the report from batch statistics and per-category
// record lists.
func (r *Reporter) Build(stats *Stats, categories map[Category][]*EmailRecord) *Report {
	total := stats.TotalEmails

	recommendations := make(map[string]string)
	if total > 0 {
		recommendations["delete"] = fmt.Sprintf("%.1f%% of emails can be deleted",
			percent(stats.ByCategory["delete"], total))
		recommendations["summarize"] = fmt.Sprintf("%.1f%% of emails can be summarized",
			percent(stats.ByCategory["summarize"], total))
		recommendations["keep"] = fmt.Sprintf("%.1f%% of emails should be kept in full",
			percent(stats.ByCategory["keep"], total))
	}

	byCategory := make(map[string][]EmailSummary, len(categories))
	for category, records := range categories {
		summaries := make([]EmailSummary, 0, len(records))
		for _, rec := range records {
			summaries = append(summaries, r.summarize(rec))
		}
		byCategory[category.Label()] = summaries
	}

	return &Report{
		Summary: ReportSummary{
			TotalEmails:     total,
			Categories:      stats.ByCategory,
			Recommendations: recommendations,
		},
		Details: ReportDetails{
			ByType:   stats.ByType,
			BySender: TopSenders(stats.BySender, 10),
			ByDate:   stats.ByDate,
		},
		Categories: byCategory,
	}
}

// summarize builds the compact report entry for one record.
func (r *Reporter) summarize(rec *EmailRecord) EmailSummary {
	file := rec.FilePath
	if rel, err := filepath.Rel(r.baseDir, rec.FilePath); err == nil {
		file = rel
	}

	date := unknownDate
	if rec.Date != nil {
		date = rec.Date.Format(dayKey)
	}

	return EmailSummary{
		File:        file,
		Subject:     rec.Subject,
		Sender:      rec.Sender,
		Date:        date,
		Score:       rec.Score,
		Type:        rec.Type.Label(),
		Size:        rec.FileSize,
		Attachments: rec.AttachmentCount,
	}
}

// Save writes the report as pretty-printed JSON under the base directory
// and returns the full path.
func (r *Reporter) Save(report *Report, name string) (string, error) {
	path := filepath.Join(r.baseDir, name)

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	r.logger.Info("Report saved", zap.String("path", path))
	return path, nil
}

// WriteSummary writes the plain-text console summary.
func (r *Reporter) WriteSummary(w io.Writer, stats *Stats) {
	rule := "=================================================="

	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "EMAIL SORTING SUMMARY")
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "Total emails analyzed: %d\n", stats.TotalEmails)
	fmt.Fprintf(w, "To delete: %d\n", stats.ByCategory["delete"])
	fmt.Fprintf(w, "To summarize: %d\n", stats.ByCategory["summarize"])
	fmt.Fprintf(w, "To keep: %d\n", stats.ByCategory["keep"])

	if stats.TotalEmails > 0 {
		fmt.Fprintln(w, "\nPercentages:")
		fmt.Fprintf(w, "   Delete: %.1f%%\n", percent(stats.ByCategory["delete"], stats.TotalEmails))
		fmt.Fprintf(w, "   Summarize: %.1f%%\n", percent(stats.ByCategory["summarize"], stats.TotalEmails))
		fmt.Fprintf(w, "   Keep: %.1f%%\n", percent(stats.ByCategory["keep"], stats.TotalEmails))
	}

	fmt.Fprintln(w, "\nEmail types found:")
	for _, tc := range sortedCounts(stats.ByType) {
		fmt.Fprintf(w, "   %s: %d\n", tc.Sender, tc.Count)
	}

	fmt.Fprintln(w, "\nTop senders:")
	for _, sc := range TopSenders(stats.BySender, 5) {
		fmt.Fprintf(w, "   %s: %d\n", sc.Sender, sc.Count)
	}

	fmt.Fprintln(w, rule)
}

// percent returns count as a percentage of total.
func percent(count, total int) float64 {
	return float64(count*100) / float64(total)
}

// TopSenders returns up to n senders ordered by descending count, ties
// broken by sender ascending so output is stable across runs.
func TopSenders(bySender map[string]int, n int) []SenderCount {
	counts := sortedCounts(bySender)
	if len(counts) > n {
		counts = counts[:n]
	}
	return counts
}

// sortedCounts flattens a counter map ordered by descending count, then
// ascending key.
func sortedCounts(m map[string]int) []SenderCount {
	counts := make([]SenderCount, 0, len(m))
	for k, v := range m {
		counts = append(counts, SenderCount{Sender: k, Count: v})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Sender < counts[j].Sender
	})
	return counts
}
