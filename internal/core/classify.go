package core

import (
	"github.com/RebelliousSmile/email-to-markdown/internal/utils"
)

// keepBodyTerms force a record toward Keep when any appears in the body.
// A narrower list than importantBodyTerms in score.go; the two are kept
// separate on purpose, see DESIGN.md.
var keepBodyTerms = []string{
	"contract", "invoice", "legal", "urgent", "important",
}

// Classify assigns a category to a scored record. The steps short-circuit
// in order: whitelist, keep indicators, delete indicators or a low score,
// high score or an oversized body, then Summarize as the default. Keep
// indicators are checked ahead of delete indicators, so a record matching
// both is kept.
func (s *Sorter) Classify(rec *EmailRecord, body string) Category {
	// Whitelisted senders are always kept, whatever the score says.
	if s.whitelist.Match(rec.Sender) {
		return CategoryKeep
	}

	subject := utils.Fold(rec.Subject)
	sender := utils.Fold(rec.Sender)
	folded := utils.Fold(body)

	deleteIndicators := rec.Type == TypeNewsletter ||
		containsAny(subject, s.cfg.DeleteKeywords) ||
		containsAny(sender, s.cfg.DeleteSenders)

	keepIndicators := containsAny(subject, s.cfg.KeepKeywords) ||
		containsAny(sender, s.cfg.KeepSenders) ||
		(rec.HasAttachments && s.cfg.KeepWithAttachments) ||
		containsAny(folded, keepBodyTerms)

	switch {
	case keepIndicators:
		return CategoryKeep
	case deleteIndicators || rec.Score <= -2:
		return CategoryDelete
	case rec.Score >= 2 || rec.BodyLength > s.cfg.SummarizeMaxLength:
		return CategoryKeep
	default:
		return CategorySummarize
	}
}
