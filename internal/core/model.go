package core

import (
	"time"
)

// Category is the classification outcome for a record.
type Category int

const (
	CategoryDelete Category = iota
	CategorySummarize
	CategoryKeep
)

// categoryLabels maps each category to its stable report label.
var categoryLabels = map[Category]string{
	CategoryDelete:    "delete",
	CategorySummarize: "summarize",
	CategoryKeep:      "keep",
}

// Categories lists all categories in report order.
var Categories = []Category{CategoryDelete, CategorySummarize, CategoryKeep}

// Label returns the stable string label used in reports and weight lookups.
func (c Category) Label() string {
	return categoryLabels[c]
}

// EmailType is the detected type of an email record.
type EmailType int

const (
	TypeNewsletter EmailType = iota
	TypeMailingList
	TypeGroup
	TypeDirect
	TypeUnknown
)

// emailTypeLabels is the explicit enumeration-to-label table. Type weights
// are configured by label, so every type must have an entry here for its
// configured weight to apply.
var emailTypeLabels = map[EmailType]string{
	TypeNewsletter:  "newsletter",
	TypeMailingList: "mailing_list",
	TypeGroup:       "group",
	TypeDirect:      "direct",
	TypeUnknown:     "unknown",
}

// Label returns the stable string label used in reports and weight lookups.
func (t EmailType) Label() string {
	return emailTypeLabels[t]
}

// EmailRecord is one analyzed email record. It is built once by the
// ingestor, scored and categorized once, and not mutated afterward.
type EmailRecord struct {
	FilePath        string
	FileName        string
	FileSize        int64
	BodyLength      int
	HasAttachments  bool
	AttachmentCount int
	Date            *time.Time
	AgeDays         *int64
	Sender          string
	Subject         string
	Tags            []string
	Type            EmailType
	Score           int
	Category        Category
}

// RunRecord is one completed batch run as stored in the run history.
type RunRecord struct {
	ID         int64
	BaseDir    string
	StartedAt  time.Time
	Duration   time.Duration
	Total      int
	Deleted    int
	Summarized int
	Kept       int
	Skipped    int
	Errors     int
	ReportPath string
}
