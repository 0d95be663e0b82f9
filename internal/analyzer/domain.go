package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mikey/scam-check/internal/core"
	"github.com/mikey/scam-check/internal/lexicon"
)

var nonAlnumPattern = regexp.MustCompile(`[^a-z0-9]`)

// leetSubstitutions maps each letter to the digit commonly used to
// disguise it in typosquatted domains.
var leetSubstitutions = []struct {
	letter string
	digit  string
}{
	{"o", "0"},
	{"l", "1"},
	{"i", "1"},
	{"a", "4"},
	{"e", "3"},
	{"s", "5"},
}

// AnalyzeDomain scores a domain or hostname for suspicious TLDs,
// typosquatting against the legitimate-domain allowlist and
// security-themed keywords. Independent rules are additive.
func AnalyzeDomain(domain string, lex *lexicon.Set) core.ScoreBreakdown {
	var result core.ScoreBreakdown
	domain = strings.ToLower(domain)

	for _, tld := range lex.SuspiciousTLDs {
		if strings.HasSuffix(domain, tld) {
			result.Add(30, "suspicious TLD in domain")
			break
		}
	}

	for _, legit := range lex.LegitimateDomains {
		if isTyposquat(domain, legit) {
			result.Add(40, fmt.Sprintf("impersonates %s", legit))
			break
		}
	}

	for _, keyword := range lex.DomainKeywords {
		if strings.Contains(domain, keyword) {
			result.Add(20, "suspicious keyword in domain")
			break
		}
	}

	return result
}

// isTyposquat reports whether the candidate domain is a lookalike of a
// legitimate one. Both are normalized to lowercase alphanumerics, then
// the candidate is compared against leetspeak variants of the
// legitimate domain (the domain itself, each substitution applied on
// its own, and all substitutions at once) with bidirectional substring
// containment, so paypa1.com is caught as a lookalike of paypal.com
// and vice versa.
func isTyposquat(candidate, legitimate string) bool {
	cleanCandidate := nonAlnumPattern.ReplaceAllString(strings.ToLower(candidate), "")
	cleanLegit := nonAlnumPattern.ReplaceAllString(strings.ToLower(legitimate), "")
	if cleanCandidate == "" || cleanLegit == "" {
		return false
	}

	variants := make([]string, 0, len(leetSubstitutions)+2)
	variants = append(variants, cleanLegit)
	allSubstituted := cleanLegit
	for _, sub := range leetSubstitutions {
		variants = append(variants, strings.ReplaceAll(cleanLegit, sub.letter, sub.digit))
		allSubstituted = strings.ReplaceAll(allSubstituted, sub.letter, sub.digit)
	}
	variants = append(variants, allSubstituted)

	for _, variant := range variants {
		if strings.Contains(cleanCandidate, variant) || strings.Contains(variant, cleanCandidate) {
			return true
		}
	}
	return false
}
