package analyzer

import (
	"regexp"
	"strings"

	"github.com/mikey/scam-check/internal/core"
	"github.com/mikey/scam-check/internal/lexicon"
)

var linkPattern = regexp.MustCompile(`https?://\S+`)

// AnalyzeContent scores free text. Each keyword category fires once, at
// a fixed weight, when at least two of its words appear; the weight is
// a binary "category present" signal, not proportional to the count.
// Embedded links are scanned separately and contribute at most once.
func AnalyzeContent(text string, lex *lexicon.Set) core.ScoreBreakdown {
	var result core.ScoreBreakdown
	lower := strings.ToLower(text)

	categories := []struct {
		words     []string
		weight    int
		indicator string
	}{
		{lex.UrgencyWords, 25, "urgency pressure in content"},
		{lex.FinancialWords, 20, "financial pressure in content"},
		{lex.CredentialWords, 30, "requests credentials or personal information"},
		{lex.TooGoodWords, 35, `"too good to be true" offer`},
	}
	for _, cat := range categories {
		if countKeywords(lower, cat.words) >= 2 {
			result.Add(cat.weight, cat.indicator)
		}
	}

	for _, link := range linkPattern.FindAllString(lower, -1) {
		if isSuspiciousLink(link, lex.LinkMarkers) {
			result.Add(25, "contains suspicious link")
			break
		}
	}

	return result
}

// isSuspiciousLink flags links carrying any of the lexicon's link
// markers (throwaway TLDs, credential-harvest path words).
func isSuspiciousLink(link string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(link, marker) {
			return true
		}
	}
	return false
}

// countKeywords counts how many distinct list entries occur in the
// text. Multiple occurrences of the same entry count once.
func countKeywords(lowerText string, words []string) int {
	count := 0
	for _, word := range words {
		if strings.Contains(lowerText, word) {
			count++
		}
	}
	return count
}
