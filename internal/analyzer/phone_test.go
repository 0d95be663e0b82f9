package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mikey/scam-check/internal/lexicon"
)

func TestAnalyzePhone_ValidMobileOnly(t *testing.T) {
	lex := lexicon.Default()

	// A valid shape that trips no pattern, prefix or list rule ends up
	// with just the format score.
	result := AnalyzePhone("0352468179", lex)
	assert.Equal(t, 5, result.Score)
	assert.Equal(t, []string{"Vietnamese mobile (0 prefix)"}, result.Indicators)
}

func TestAnalyzePhone_StripsFormatting(t *testing.T) {
	lex := lexicon.Default()

	plain := AnalyzePhone("0352468179", lex)
	formatted := AnalyzePhone("035 246-8179", lex)
	assert.Equal(t, plain.Score, formatted.Score)
}

func TestAnalyzePhone_ListedScamNumber(t *testing.T) {
	lex := lexicon.Default()

	result := AnalyzePhone("0123456789", lex)
	assert.GreaterOrEqual(t, result.Score, 80)
	assert.Contains(t, result.Indicators, "Vietnamese mobile (0 prefix)")
	assert.Contains(t, result.Indicators, "number listed as spam")
	assert.Contains(t, result.Indicators, "number reported for scams")
}

func TestAnalyzePhone_FuzzyNearMiss(t *testing.T) {
	lex := lexicon.Default()

	// Two digits away from listed numbers but not listed itself.
	result := AnalyzePhone("0123456799", lex)
	found := false
	for _, ind := range result.Indicators {
		if len(ind) > 9 && ind[:9] == "resembles" {
			found = true
		}
	}
	assert.True(t, found, "expected a fuzzy-match indicator, got %v", result.Indicators)
	assert.NotContains(t, result.Indicators, "number reported for scams")
}

func TestAnalyzePhone_RepeatedDigits(t *testing.T) {
	lex := lexicon.Default()

	result := AnalyzePhone("1111111111", lex)
	assert.Contains(t, result.Indicators, "single digit repeated throughout")
	assert.Contains(t, result.Indicators, "every digit identical")
	assert.Contains(t, result.Indicators, "international number")
	assert.GreaterOrEqual(t, result.Score, 80)
}

func TestAnalyzePhone_TooShort(t *testing.T) {
	lex := lexicon.Default()

	result := AnalyzePhone("555", lex)
	assert.Contains(t, result.Indicators, "invalid phone format")
	assert.Contains(t, result.Indicators, "number too short")
}

func TestAnalyzePhone_TooLong(t *testing.T) {
	lex := lexicon.Default()

	result := AnalyzePhone("1234567890123456", lex)
	assert.Contains(t, result.Indicators, "invalid phone format")
	assert.Contains(t, result.Indicators, "number too long")
}

func TestAnalyzePhone_PremiumPrefix(t *testing.T) {
	lex := lexicon.Default()

	result := AnalyzePhone("1900555777", lex)
	assert.Contains(t, result.Indicators, "premium-rate call center prefix")
}

func TestAllSameDigit(t *testing.T) {
	assert.True(t, allSameDigit("7777"))
	assert.False(t, allSameDigit("7778"))
	assert.False(t, allSameDigit(""))
	assert.True(t, allSameDigit("9"))
}

func TestRepeatedBlockPrefix(t *testing.T) {
	assert.True(t, repeatedBlockPrefix("123123123456", 3, 3))
	assert.False(t, repeatedBlockPrefix("123123456789", 3, 3))
	assert.True(t, repeatedBlockPrefix("12341234", 4, 2))
	assert.False(t, repeatedBlockPrefix("1234", 4, 2))
}

func TestRepeatedBlockFull(t *testing.T) {
	assert.True(t, repeatedBlockFull("12121212", 2, 4))
	assert.False(t, repeatedBlockFull("1212121", 2, 4))
	assert.False(t, repeatedBlockFull("121212", 2, 4))
	assert.True(t, repeatedBlockFull("121212", 2, 3))
}

func TestDoubleRunPrefix(t *testing.T) {
	assert.True(t, doubleRunPrefix("111222333"))
	assert.True(t, doubleRunPrefix("000000123"))
	assert.False(t, doubleRunPrefix("112233445"))
	assert.False(t, doubleRunPrefix("123456789"))
}
