package core

import (
	"strings"

	"github.com/RebelliousSmile/email-to-markdown/internal/utils"
)

// importantBodyTerms awards a single flat score bonus when any of them
// appears in the body. Deliberately broader than keepBodyTerms used by the
// classifier; see DESIGN.md before changing either list.
var importantBodyTerms = []string{
	"contract", "invoice", "legal", "urgent", "important",
	"confidential", "agreement", "signature", "payment",
}

// Score computes the desirability score for a record as the sum of
// independent weighted signals. Higher means more worth keeping; the value
// is unbounded in both directions.
func (s *Sorter) Score(rec *EmailRecord, body string) int {
	score := 0

	// Type weight
	if weight, ok := s.cfg.TypeWeights[rec.Type.Label()]; ok {
		score += weight
	}

	// Age factors
	if rec.AgeDays != nil {
		if *rec.AgeDays <= s.cfg.RecentThresholdDays {
			score += 2
		} else if *rec.AgeDays >= s.cfg.OldThresholdDays {
			score--
		}
	}

	// Size factors
	if rec.BodyLength <= s.cfg.SmallEmailThreshold {
		score--
	} else if rec.BodyLength >= s.cfg.LargeEmailThreshold {
		score++
	}

	// Attachment factors
	if rec.HasAttachments {
		if s.cfg.KeepWithAttachments {
			score += 2
		} else {
			score--
		}
	}

	// Subject keywords
	subject := utils.Fold(rec.Subject)
	for _, k := range s.cfg.DeleteKeywords {
		if strings.Contains(subject, utils.Fold(k)) {
			score--
		}
	}
	for _, k := range s.cfg.KeepKeywords {
		if strings.Contains(subject, utils.Fold(k)) {
			score += 2
		}
	}

	// Sender lists
	sender := utils.Fold(rec.Sender)
	if containsAny(sender, s.cfg.DeleteSenders) {
		score -= 3
	}
	if containsAny(sender, s.cfg.KeepSenders) {
		score += 3
	}

	// Body content
	if containsAny(utils.Fold(body), importantBodyTerms) {
		score += 2
	}

	return score
}

// containsAny reports whether the folded haystack contains any of the
// needles, compared case-insensitively.
func containsAny(folded string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(folded, utils.Fold(n)) {
			return true
		}
	}
	return false
}
