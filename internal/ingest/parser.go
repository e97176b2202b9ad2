// Package ingest turns stored email records (markdown files with a YAML
// frontmatter block) into structured candidates for classification.
// Content that is not a classifiable record is skipped, never fatal.
package ingest

import (
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.yaml.in/yaml/v3"

	"github.com/RebelliousSmile/email-to-markdown/internal/core"
	"github.com/RebelliousSmile/email-to-markdown/internal/utils"
)

// delimiter marks the start and end of the frontmatter block.
const delimiter = "---"

// newsletterMarkers in the subject mark a record as a newsletter. Detection
// is subject-only; mailing_list, group and unknown types are representable
// but not produced here.
var newsletterMarkers = []string{"newsletter", "bulletin", "digest"}

// bodyPreviewLen bounds the body excerpt in debug logs.
const bodyPreviewLen = 120

// fallbackDateLayouts are tried, in order, after RFC 3339. Fallback
// matches keep only the calendar date, pinned to UTC midnight, so a
// time-of-day in the source cannot shift the derived age.
var fallbackDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"02/01/2006",
	"01/02/2006",
}

// Parser builds EmailRecords from raw record content.
type Parser struct {
	text   *utils.TextProcessor
	logger *zap.Logger
}

// NewParser creates a new record parser
func NewParser(text *utils.TextProcessor, logger *zap.Logger) *Parser {
	return &Parser{
		text:   text,
		logger: logger,
	}
}

// Parse builds a record candidate from file content. The second return
// value is the record body; ok is false when the content is not a
// classifiable record, which callers count as a skip rather than an error.
// The caller supplies now so a whole batch ages records consistently.
func (p *Parser) Parse(path string, fileSize int64, content string, now time.Time) (rec *core.EmailRecord, body string, ok bool) {
	content = p.text.SanitizeUTF8(content)

	// Empty or near-empty files
	if len(strings.TrimSpace(content)) < 10 {
		p.logger.Debug("Skipping empty record", zap.String("file", path))
		return nil, "", false
	}

	// Files with no frontmatter
	if !strings.HasPrefix(content, delimiter) {
		p.logger.Debug("Skipping record with no frontmatter", zap.String("file", path))
		return nil, "", false
	}

	frontmatter, body, found := extractFrontmatter(content)
	if !found {
		p.logger.Debug("Skipping record with unterminated frontmatter", zap.String("file", path))
		return nil, "", false
	}

	var fields map[string]any
	if err := yaml.Unmarshal([]byte(frontmatter), &fields); err != nil {
		p.logger.Debug("Skipping record with malformed frontmatter",
			zap.String("file", path),
			zap.Error(err))
		return nil, "", false
	}

	subject := stringField(fields, "subject")
	sender := stringField(fields, "from")
	attachments := sequenceLen(fields, "attachments")

	date := parseDate(stringField(fields, "date"))
	var ageDays *int64
	if date != nil {
		age := int64(now.Sub(*date).Hours() / 24)
		ageDays = &age
	}

	rec = &core.EmailRecord{
		FilePath:        path,
		FileName:        filepath.Base(path),
		FileSize:        fileSize,
		BodyLength:      len(body),
		HasAttachments:  attachments > 0,
		AttachmentCount: attachments,
		Date:            date,
		AgeDays:         ageDays,
		Sender:          sender,
		Subject:         subject,
		Tags:            stringSequence(fields, "tags"),
		Type:            detectType(subject),
	}

	p.logger.Debug("Parsed record",
		zap.String("file", path),
		zap.String("sender", sender),
		zap.String("body_preview", p.text.TruncateText(body, bodyPreviewLen)))

	return rec, body, true
}

// extractFrontmatter splits content into the frontmatter block and the
// body. The block is the text between the opening delimiter line and the
// first subsequent line that is exactly the delimiter; the body is
// everything after that line.
func extractFrontmatter(content string) (frontmatter, body string, found bool) {
	lines := strings.Split(content, "\n")

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delimiter {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n"), true
		}
	}
	return "", "", false
}

// detectType classifies the email type from the subject alone.
func detectType(subject string) core.EmailType {
	folded := utils.Fold(subject)
	for _, marker := range newsletterMarkers {
		if strings.Contains(folded, marker) {
			return core.TypeNewsletter
		}
	}
	return core.TypeDirect
}

// parseDate tries RFC 3339 first, then the fallback layouts in UTC with the
// time-of-day discarded. Returns nil when nothing matches.
func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t
	}

	for _, layout := range fallbackDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
			return &day
		}
	}

	return nil
}

// stringField returns the string value for key, or "" when the key is
// missing or not a string.
func stringField(fields map[string]any, key string) string {
	if s, ok := fields[key].(string); ok {
		return s
	}
	return ""
}

// sequenceLen returns the length of the sequence at key, or 0.
func sequenceLen(fields map[string]any, key string) int {
	if seq, ok := fields[key].([]any); ok {
		return len(seq)
	}
	return 0
}

// stringSequence returns the string entries of the sequence at key,
// ignoring anything else.
func stringSequence(fields map[string]any, key string) []string {
	seq, ok := fields[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(seq))
	for _, v := range seq {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
