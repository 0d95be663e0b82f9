package analyzer

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/mikey/scam-check/internal/core"
	"github.com/mikey/scam-check/internal/lexicon"
)

var (
	ipHostPattern   = regexp.MustCompile(`https?://(\d{1,3}\.){3}\d{1,3}`)
	schemeHostRegex = regexp.MustCompile(`https?://([^/]+)`)
)

// urlKeywordRules are matched against the lowercased URL as
// "<keyword> followed by .com" shapes. Every matching rule contributes.
var urlKeywordRules = []struct {
	pattern   *regexp.Regexp
	score     int
	indicator string
}{
	{regexp.MustCompile(`login.*\.com`), 25, `URL contains keyword "login"`},
	{regexp.MustCompile(`verify.*\.com`), 25, `URL contains keyword "verify"`},
	{regexp.MustCompile(`security.*\.com`), 20, `URL contains keyword "security"`},
	{regexp.MustCompile(`update.*\.com`), 20, `URL contains keyword "update"`},
	{regexp.MustCompile(`confirm.*\.com`), 20, `URL contains keyword "confirm"`},
	{regexp.MustCompile(`account.*\.com`), 20, `URL contains keyword "account"`},
	{regexp.MustCompile(`password.*\.com`), 30, `URL contains keyword "password"`},
	{regexp.MustCompile(`bank.*\.com`), 25, `URL contains keyword "bank"`},
	{regexp.MustCompile(`paypal.*\.com`), 25, `URL contains keyword "paypal"`},
	{regexp.MustCompile(`facebook.*\.com`), 25, `URL contains keyword "facebook"`},
}

// AnalyzeURLStructure scores the shape of a URL: literal IP hosts,
// suspicious keyword patterns, excessive length and encoded characters.
func AnalyzeURLStructure(rawURL string) core.ScoreBreakdown {
	var result core.ScoreBreakdown
	lower := strings.ToLower(rawURL)

	if ipHostPattern.MatchString(rawURL) {
		result.Add(30, "IP address used instead of domain")
	}

	for _, rule := range urlKeywordRules {
		if rule.pattern.MatchString(lower) {
			result.Add(rule.score, rule.indicator)
		}
	}

	if len(rawURL) > 200 {
		result.Add(15, "unusually long URL")
	}

	if strings.Contains(rawURL, "%") || strings.Contains(rawURL, "&amp;") {
		result.Add(10, "URL contains encoded characters")
	}

	return result
}

// AnalyzeURLKeywords runs the second, bucketed keyword pass over the
// URL text. Like the content analyzer, each bucket fires once at its
// fixed weight when two or more of its words appear; the buckets are
// kept separate from the content lists because they target URL text.
func AnalyzeURLKeywords(rawURL string, lex *lexicon.Set) core.ScoreBreakdown {
	var result core.ScoreBreakdown
	lower := strings.ToLower(rawURL)

	buckets := []struct {
		words     []string
		weight    int
		indicator string
	}{
		{lex.URLFinancialWords, 25, "multiple financial keywords in URL"},
		{lex.URLUrgencyWords, 20, "urgency keywords in URL"},
		{lex.URLPersonalWords, 30, "personal information keywords in URL"},
		{lex.URLTooGoodWords, 35, `"too good to be true" keywords in URL`},
	}
	for _, bucket := range buckets {
		if countKeywords(lower, bucket.words) >= 2 {
			result.Add(bucket.weight, bucket.indicator)
		}
	}

	return result
}

// ExtractHost pulls the hostname out of a URL, falling back to a bare
// scheme-prefix scan and finally to the raw input for schemeless
// strings like "verify-paypal-login.tk".
func ExtractHost(rawURL string) string {
	if parsed, err := url.Parse(rawURL); err == nil && parsed.Host != "" {
		return parsed.Hostname()
	}
	if m := schemeHostRegex.FindStringSubmatch(rawURL); m != nil {
		return m[1]
	}
	return rawURL
}
