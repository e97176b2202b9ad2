package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/RebelliousSmile/email-to-markdown/internal/config"
	"github.com/RebelliousSmile/email-to-markdown/internal/whitelist"
)

// neutralConfig scores a plain mid-sized record at zero: no keywords, no
// sender lists, no type weights.
func neutralConfig() *config.SortConfig {
	return &config.SortConfig{
		SummarizeMaxLength:  5000,
		RecentThresholdDays: 30,
		OldThresholdDays:    365,
		SmallEmailThreshold: 500,
		LargeEmailThreshold: 10000,
		KeepWithAttachments: true,
		TypeWeights:         map[string]int{},
	}
}

func newTestSorter(cfg *config.SortConfig) *Sorter {
	return NewSorter(cfg, whitelist.NewMatcher(cfg.Whitelist, nil), zap.NewNop())
}

// neutralRecord contributes nothing to the score under neutralConfig.
func neutralRecord() *EmailRecord {
	return &EmailRecord{
		FileName:   "mail.md",
		Sender:     "someone@example.com",
		Subject:    "hello",
		BodyLength: 1000,
		Type:       TypeDirect,
	}
}

func days(n int64) *int64 { return &n }

func TestScoreNeutralRecordIsZero(t *testing.T) {
	s := newTestSorter(neutralConfig())
	assert.Equal(t, 0, s.Score(neutralRecord(), "nothing of note"))
}

func TestScoreTypeWeight(t *testing.T) {
	cfg := neutralConfig()
	cfg.TypeWeights = map[string]int{"newsletter": -2, "direct": 1}
	s := newTestSorter(cfg)

	rec := neutralRecord()
	rec.Type = TypeNewsletter
	assert.Equal(t, -2, s.Score(rec, ""))

	rec.Type = TypeDirect
	assert.Equal(t, 1, s.Score(rec, ""))

	// No entry for the type label means no contribution
	rec.Type = TypeGroup
	assert.Equal(t, 0, s.Score(rec, ""))
}

func TestScoreAgeFactors(t *testing.T) {
	s := newTestSorter(neutralConfig())

	tests := []struct {
		name string
		age  *int64
		want int
	}{
		{"recent", days(5), 2},
		{"at recent boundary", days(30), 2},
		{"between thresholds", days(100), 0},
		{"at old boundary", days(365), -1},
		{"old", days(400), -1},
		{"future date counts as recent", days(-3), 2},
		{"no date", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := neutralRecord()
			rec.AgeDays = tt.age
			assert.Equal(t, tt.want, s.Score(rec, ""))
		})
	}
}

func TestScoreSizeFactors(t *testing.T) {
	s := newTestSorter(neutralConfig())

	tests := []struct {
		name   string
		length int
		want   int
	}{
		{"small", 100, -1},
		{"at small boundary", 500, -1},
		{"medium", 1000, 0},
		{"at large boundary", 10000, 1},
		{"large", 50000, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := neutralRecord()
			rec.BodyLength = tt.length
			assert.Equal(t, tt.want, s.Score(rec, ""))
		})
	}
}

func TestScoreAttachments(t *testing.T) {
	rec := neutralRecord()
	rec.HasAttachments = true
	rec.AttachmentCount = 1

	cfg := neutralConfig()
	assert.Equal(t, 2, newTestSorter(cfg).Score(rec, ""))

	cfg.KeepWithAttachments = false
	assert.Equal(t, -1, newTestSorter(cfg).Score(rec, ""))
}

func TestScoreSubjectKeywordsAccumulate(t *testing.T) {
	cfg := neutralConfig()
	cfg.DeleteKeywords = []string{"sale", "offer"}
	cfg.KeepKeywords = []string{"invoice", "contract"}
	s := newTestSorter(cfg)

	rec := neutralRecord()
	rec.Subject = "Big SALE offer"
	assert.Equal(t, -2, s.Score(rec, ""))

	rec.Subject = "Invoice for contract work"
	assert.Equal(t, 4, s.Score(rec, ""))

	// One of each: -1 + 2
	rec.Subject = "Contract sale"
	assert.Equal(t, 1, s.Score(rec, ""))
}

func TestScoreSenderLists(t *testing.T) {
	cfg := neutralConfig()
	cfg.DeleteSenders = []string{"noreply@"}
	cfg.KeepSenders = []string{"@client.com"}
	s := newTestSorter(cfg)

	rec := neutralRecord()
	rec.Sender = "noreply@shop.com"
	assert.Equal(t, -3, s.Score(rec, ""))

	rec.Sender = "boss@client.com"
	assert.Equal(t, 3, s.Score(rec, ""))

	// Both lists can match the same sender and both apply
	rec.Sender = "noreply@client.com"
	assert.Equal(t, 0, s.Score(rec, ""))
}

func TestScoreBodyBonusIsFlat(t *testing.T) {
	s := newTestSorter(neutralConfig())
	rec := neutralRecord()

	// One term or many, the bonus is +2 once
	assert.Equal(t, 2, s.Score(rec, "the payment is due"))
	assert.Equal(t, 2, s.Score(rec, "contract, invoice and legal agreement with signature"))
	assert.Equal(t, 0, s.Score(rec, "see you at lunch"))
}

func TestScoreSumsAllTerms(t *testing.T) {
	cfg := neutralConfig()
	cfg.TypeWeights = map[string]int{"newsletter": -2}
	cfg.DeleteKeywords = []string{"newsletter"}
	s := newTestSorter(cfg)

	rec := neutralRecord()
	rec.Type = TypeNewsletter
	rec.Subject = "Weekly Newsletter"
	rec.AgeDays = days(400)
	rec.BodyLength = 100

	// type -2, delete keyword -1, old -1, small -1
	assert.Equal(t, -5, s.Score(rec, ""))
}
