package analyzer

import (
	"strings"

	"github.com/mikey/scam-check/internal/core"
	"github.com/mikey/scam-check/internal/lexicon"
)

// ClassifyRecord labels a stored email with a coarse category from
// keyword counts over its title and body. This is a cheap, separate
// decision tree from the numeric risk aggregation; it exists so that
// historical records can be labeled without running the full pipeline.
// Deterministic: the same record always yields the same category.
func ClassifyRecord(rec *core.EmailRecord, lex *lexicon.Set) core.Category {
	title := strings.ToLower(rec.Title)
	content := strings.ToLower(rec.Content)

	phishingCount := countRecordKeywords(title, content, lex.PhishingKeywords)
	spamCount := countRecordKeywords(title, content, lex.SpamKeywords)
	urgencyCount := countRecordKeywords(title, content, lex.RecordUrgencyKeywords)

	switch {
	case phishingCount >= 3 || (phishingCount >= 2 && urgencyCount >= 2):
		return core.CategoryPhishing
	case spamCount >= 3 || (spamCount >= 2 && urgencyCount >= 2):
		return core.CategorySpam
	case urgencyCount >= 2:
		return core.CategorySuspect
	default:
		return core.CategorySafe
	}
}

func countRecordKeywords(title, content string, words []string) int {
	count := 0
	for _, word := range words {
		if strings.Contains(title, word) || strings.Contains(content, word) {
			count++
		}
	}
	return count
}
