package analyzer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mikey/scam-check/internal/core"
	"github.com/mikey/scam-check/internal/lexicon"
)

var nonDigitPattern = regexp.MustCompile(`\D`)

// phoneRule pairs a matcher with its weight and indicator. Matchers are
// plain functions because several rules need repeated-block detection
// that RE2 cannot express.
type phoneRule struct {
	match     func(digits string) bool
	score     int
	indicator string
}

func regexRule(expr string, score int, indicator string) phoneRule {
	re := regexp.MustCompile(expr)
	return phoneRule{match: re.MatchString, score: score, indicator: indicator}
}

func prefixRule(prefix string, score int, indicator string) phoneRule {
	return phoneRule{
		match:     func(digits string) bool { return strings.HasPrefix(digits, prefix) },
		score:     score,
		indicator: indicator,
	}
}

// Vietnamese mobile shapes. Matching a valid shape still adds a small
// positive score; product has signed off on keeping that asymmetry.
// The +84 row cannot fire after digit stripping but stays in the table
// to mirror the published rule set.
var vietnameseFormats = []phoneRule{
	regexRule(`^84[0-9]{9}$`, 5, "Vietnamese mobile (84 prefix)"),
	regexRule(`^0[0-9]{9}$`, 5, "Vietnamese mobile (0 prefix)"),
	regexRule(`^\+84[0-9]{9}$`, 5, "Vietnamese mobile (+84 prefix)"),
}

// Regressive, sequential and repeated-digit shapes. All matching rules
// contribute; there is no early exit.
var patternRules = []phoneRule{
	{func(d string) bool { return len(d) >= 8 && allSameDigit(d) }, 40, "single digit repeated throughout"},
	{func(d string) bool { return repeatedBlockFull(d, 2, 4) }, 35, "two-digit block repeated throughout"},
	regexRule(`^123456789`, 50, "ascending digit sequence"),
	regexRule(`^987654321`, 50, "descending digit sequence"),
	regexRule(`^000000`, 45, "leading run of zeros"),
	regexRule(`^111111`, 45, "leading run of ones"),
	{doubleRunPrefix, 30, "back-to-back repeated digit runs"},
	{func(d string) bool { return repeatedBlockPrefix(d, 3, 3) }, 25, "three-digit block repeated"},
	{func(d string) bool { return repeatedBlockPrefix(d, 4, 2) }, 20, "four-digit block repeated"},
}

// Prefixes commonly seen on made-up numbers.
var fakePrefixRules = []phoneRule{
	prefixRule("123", 15, "starts with 123"),
	prefixRule("456", 15, "starts with 456"),
	prefixRule("789", 15, "starts with 789"),
	prefixRule("999", 20, "starts with 999"),
	prefixRule("888", 20, "starts with 888"),
	prefixRule("777", 20, "starts with 777"),
	prefixRule("666", 25, "starts with 666"),
	prefixRule("000", 25, "starts with 000"),
	prefixRule("111", 25, "starts with 111"),
}

// Premium-rate prefixes checked in the suspicious stage.
var premiumPrefixRules = []phoneRule{
	prefixRule("1900", 20, "premium-rate call center prefix"),
	prefixRule("1800", 20, "premium-rate call center prefix"),
	prefixRule("090", 15, "high-cost mobile prefix"),
	prefixRule("091", 15, "high-cost mobile prefix"),
}

// Test-looking prefixes. Deliberately overlaps the fake-prefix table
// with its own weights; both stages contribute independently.
var testPrefixRules = []phoneRule{
	prefixRule("123", 20, "test-looking prefix (123)"),
	prefixRule("456", 20, "test-looking prefix (456)"),
	prefixRule("789", 20, "test-looking prefix (789)"),
	prefixRule("000", 25, "test-looking prefix (000)"),
	prefixRule("111", 25, "test-looking prefix (111)"),
	prefixRule("999", 25, "test-looking prefix (999)"),
}

// AnalyzePhone scores a phone number through three additive stages:
// format validation, digit-pattern detection and the known-number
// lists with fuzzy matching. Operates on digits only.
func AnalyzePhone(phone string, lex *lexicon.Set) core.ScoreBreakdown {
	var result core.ScoreBreakdown
	digits := nonDigitPattern.ReplaceAllString(phone, "")

	result.Merge(analyzePhoneFormat(digits))
	result.Merge(analyzePhonePattern(digits))
	result.Merge(analyzeSuspiciousPhone(digits, lex))

	return result
}

func analyzePhoneFormat(digits string) core.ScoreBreakdown {
	var result core.ScoreBreakdown

	for _, rule := range vietnameseFormats {
		if rule.match(digits) {
			result.Add(rule.score, rule.indicator)
			return result
		}
	}

	if len(digits) >= 10 && len(digits) <= 15 {
		result.Add(15, "international number")
	} else {
		result.Add(25, "invalid phone format")
	}
	return result
}

func analyzePhonePattern(digits string) core.ScoreBreakdown {
	var result core.ScoreBreakdown
	for _, rule := range patternRules {
		if rule.match(digits) {
			result.Add(rule.score, rule.indicator)
		}
	}
	for _, rule := range fakePrefixRules {
		if rule.match(digits) {
			result.Add(rule.score, rule.indicator)
		}
	}
	return result
}

func analyzeSuspiciousPhone(digits string, lex *lexicon.Set) core.ScoreBreakdown {
	var result core.ScoreBreakdown

	lists := []struct {
		numbers   []string
		score     int
		indicator string
	}{
		{lex.Phones.Spam, 60, "number listed as spam"},
		{lex.Phones.Scam, 80, "number reported for scams"},
		{lex.Phones.Premium, 70, "number listed as premium-rate scam"},
		{lex.Phones.FakeBank, 85, "number impersonates a bank line"},
		{lex.Phones.Lottery, 75, "number linked to lottery scams"},
		{lex.Phones.Investment, 80, "number linked to investment scams"},
	}
	for _, list := range lists {
		if containsNumber(list.numbers, digits) {
			result.Add(list.score, list.indicator)
		}
	}

	for _, rule := range premiumPrefixRules {
		if rule.match(digits) {
			result.Add(rule.score, rule.indicator)
		}
	}

	if len(digits) < 8 {
		result.Add(30, "number too short")
	}
	if len(digits) > 15 {
		result.Add(25, "number too long")
	}

	if len(digits) >= 2 && allSameDigit(digits) {
		result.Add(40, "every digit identical")
	}
	if repeatedBlockFull(digits, 2, 3) {
		result.Add(35, "repeating two-digit pattern")
	}

	for _, rule := range testPrefixRules {
		if rule.match(digits) {
			result.Add(rule.score, rule.indicator)
		}
	}

	if similar := countSimilarNumbers(digits, lex.Phones.All()); similar > 0 {
		result.Add(40, fmt.Sprintf("resembles %d flagged numbers", similar))
	}

	return result
}

// countSimilarNumbers counts known numbers of the same length that
// differ from the input in at most two digit positions.
func countSimilarNumbers(digits string, known []string) int {
	count := 0
	for _, number := range known {
		if len(number) != len(digits) {
			continue
		}
		diffs := 0
		for i := 0; i < len(number); i++ {
			if number[i] != digits[i] {
				diffs++
			}
		}
		if diffs <= 2 {
			count++
		}
	}
	return count
}

func containsNumber(numbers []string, digits string) bool {
	for _, n := range numbers {
		if n == digits {
			return true
		}
	}
	return false
}

func allSameDigit(digits string) bool {
	if digits == "" {
		return false
	}
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}

// repeatedBlockPrefix reports whether the leading block of the given
// size repeats at least minReps times consecutively from the start.
func repeatedBlockPrefix(digits string, size, minReps int) bool {
	if len(digits) < size*minReps {
		return false
	}
	block := digits[:size]
	for rep := 1; rep < minReps; rep++ {
		if digits[rep*size:(rep+1)*size] != block {
			return false
		}
	}
	return true
}

// repeatedBlockFull reports whether the whole string is the leading
// block repeated, with at least minReps repetitions.
func repeatedBlockFull(digits string, size, minReps int) bool {
	if len(digits) < size*minReps || len(digits)%size != 0 {
		return false
	}
	block := digits[:size]
	for i := size; i < len(digits); i += size {
		if digits[i:i+size] != block {
			return false
		}
	}
	return true
}

// doubleRunPrefix reports whether the number opens with a digit
// repeated at least three times immediately followed by a digit
// repeated at least three times (e.g. 111222...).
func doubleRunPrefix(digits string) bool {
	lead := runLength(digits, 0)
	if lead < 3 {
		return false
	}
	if lead >= 6 {
		return true
	}
	return runLength(digits, lead) >= 3
}

func runLength(digits string, start int) int {
	if start >= len(digits) {
		return 0
	}
	i := start + 1
	for i < len(digits) && digits[i] == digits[start] {
		i++
	}
	return i - start
}
