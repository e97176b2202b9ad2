package whitelist

import (
	"strings"

	"go.uber.org/zap"

	"github.com/RebelliousSmile/email-to-markdown/internal/utils"
)

// Matcher checks senders against a list of whitelist patterns. A pattern is
// either an exact address ("boss@company.com"), a domain suffix
// ("@company.com"), or an address prefix ("boss@").
type Matcher struct {
	patterns []string
	logger   *zap.Logger
}

// NewMatcher creates a new whitelist matcher
func NewMatcher(patterns []string, logger *zap.Logger) *Matcher {
	// Normalize patterns (case folded)
	normalized := make([]string, len(patterns))
	for i, p := range patterns {
		normalized[i] = utils.Fold(strings.TrimSpace(p))
	}

	if len(normalized) > 0 && logger != nil {
		logger.Info("Initialized whitelist matcher", zap.Strings("patterns", normalized))
	}

	return &Matcher{
		patterns: normalized,
		logger:   logger,
	}
}

// Match reports whether the sender matches any whitelist pattern.
func (m *Matcher) Match(sender string) bool {
	if sender == "" || len(m.patterns) == 0 {
		return false
	}

	folded := utils.Fold(sender)

	for _, p := range m.patterns {
		// Exact address match
		if folded == p {
			m.debugMatch(sender, p)
			return true
		}
		// Domain match (@company.com)
		if strings.HasPrefix(p, "@") && strings.HasSuffix(folded, p) {
			m.debugMatch(sender, p)
			return true
		}
		// Prefix match (boss@)
		if strings.HasSuffix(p, "@") && strings.HasPrefix(folded, p) {
			m.debugMatch(sender, p)
			return true
		}
	}

	return false
}

func (m *Matcher) debugMatch(sender, pattern string) {
	if m.logger != nil {
		m.logger.Debug("Sender is whitelisted",
			zap.String("sender", sender),
			zap.String("pattern", pattern))
	}
}
