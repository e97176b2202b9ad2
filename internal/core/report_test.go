package core

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func reportFixture(t *testing.T) (*Reporter, *Aggregator, string) {
	t.Helper()
	dir := t.TempDir()

	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

	agg := NewAggregator()
	agg.Add(&EmailRecord{
		FilePath: filepath.Join(dir, "inbox", "spam.md"),
		Sender:   "spam@example.com", Subject: "Buy now",
		Category: CategoryDelete, Type: TypeNewsletter, Date: &jan,
		Score: -4, FileSize: 200,
	})
	agg.Add(&EmailRecord{
		FilePath: filepath.Join(dir, "inbox", "invoice.md"),
		Sender:   "billing@vendor.com", Subject: "Invoice",
		Category: CategoryKeep, Type: TypeDirect, Date: &jan,
		Score: 5, FileSize: 900, AttachmentCount: 1, HasAttachments: true,
	})
	agg.Add(&EmailRecord{
		FilePath: filepath.Join(dir, "inbox", "note.md"),
		Sender:   "friend@mail.com", Subject: "Catch up",
		Category: CategorySummarize, Type: TypeDirect,
		Score: 0, FileSize: 400,
	})

	return NewReporter(dir, zap.NewNop()), agg, dir
}

func TestReportSummary(t *testing.T) {
	reporter, agg, _ := reportFixture(t)
	report := reporter.Build(agg.Stats(), agg.Categories())

	assert.Equal(t, 3, report.Summary.TotalEmails)
	assert.Equal(t, map[string]int{"delete": 1, "summarize": 1, "keep": 1}, report.Summary.Categories)

	assert.Equal(t, "33.3% of emails can be deleted", report.Summary.Recommendations["delete"])
	assert.Equal(t, "33.3% of emails can be summarized", report.Summary.Recommendations["summarize"])
	assert.Equal(t, "33.3% of emails should be kept in full", report.Summary.Recommendations["keep"])

	// Percentages extracted from the recommendations sum to ~100
	sum := 0.0
	for _, text := range report.Summary.Recommendations {
		pct, err := strconv.ParseFloat(strings.SplitN(text, "%", 2)[0], 64)
		require.NoError(t, err)
		sum += pct
	}
	assert.InDelta(t, 100.0, sum, 0.2)
}

func TestReportDetails(t *testing.T) {
	reporter, agg, _ := reportFixture(t)
	report := reporter.Build(agg.Stats(), agg.Categories())

	assert.Equal(t, map[string]int{"newsletter": 1, "direct": 2}, report.Details.ByType)
	assert.Equal(t, map[string]int{"2024-01": 2}, report.Details.ByDate)

	require.Len(t, report.Details.BySender, 3)
	// Equal counts fall back to sender order
	assert.Equal(t, "billing@vendor.com", report.Details.BySender[0].Sender)
}

func TestReportRecordSummaries(t *testing.T) {
	reporter, agg, _ := reportFixture(t)
	report := reporter.Build(agg.Stats(), agg.Categories())

	keep := report.Categories["keep"]
	require.Len(t, keep, 1)
	assert.Equal(t, filepath.Join("inbox", "invoice.md"), keep[0].File)
	assert.Equal(t, "2024-01-15", keep[0].Date)
	assert.Equal(t, "direct", keep[0].Type)
	assert.Equal(t, 5, keep[0].Score)
	assert.Equal(t, int64(900), keep[0].Size)
	assert.Equal(t, 1, keep[0].Attachments)

	// Records without a parsed date carry the literal placeholder
	summarize := report.Categories["summarize"]
	require.Len(t, summarize, 1)
	assert.Equal(t, "Unknown", summarize[0].Date)
}

func TestReportEmptyBatch(t *testing.T) {
	dir := t.TempDir()
	reporter := NewReporter(dir, zap.NewNop())
	agg := NewAggregator()

	report := reporter.Build(agg.Stats(), agg.Categories())
	assert.Equal(t, 0, report.Summary.TotalEmails)
	assert.Empty(t, report.Summary.Recommendations)
	assert.Equal(t, map[string]int{"delete": 0, "summarize": 0, "keep": 0}, report.Summary.Categories)
}

func TestReportSaveRoundTrip(t *testing.T) {
	reporter, agg, dir := reportFixture(t)
	report := reporter.Build(agg.Stats(), agg.Categories())

	path, err := reporter.Save(report, "sort_report.json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sort_report.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded Report
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, report.Summary, loaded.Summary)
	assert.Equal(t, report.Details.BySender, loaded.Details.BySender)

	// Sender pairs serialize as two-element arrays
	var generic map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))
	pairs := generic["details"].(map[string]any)["by_sender"].([]any)
	first, ok := pairs[0].([]any)
	require.True(t, ok)
	assert.Equal(t, "billing@vendor.com", first[0])
	assert.Equal(t, float64(1), first[1])
}

func TestWriteSummary(t *testing.T) {
	reporter, agg, _ := reportFixture(t)

	var buf bytes.Buffer
	reporter.WriteSummary(&buf, agg.Stats())
	out := buf.String()

	assert.Contains(t, out, "EMAIL SORTING SUMMARY")
	assert.Contains(t, out, "Total emails analyzed: 3")
	assert.Contains(t, out, "To delete: 1")
	assert.Contains(t, out, "Delete: 33.3%")
	assert.Contains(t, out, "direct: 2")
	assert.Contains(t, out, "billing@vendor.com: 1")
}
