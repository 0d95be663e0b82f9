package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNormalize_TrimsWhitespace(t *testing.T) {
	n := NewNormalizer(zap.NewNop(), 0)
	assert.Equal(t, "0123456789", n.Normalize("  0123456789\n"))
}

func TestNormalize_ComposesNFC(t *testing.T) {
	n := NewNormalizer(zap.NewNop(), 0)
	// Decomposed e + combining acute must come out as a single rune.
	assert.Equal(t, "é", n.Normalize("é"))
}

func TestNormalize_Truncates(t *testing.T) {
	n := NewNormalizer(zap.NewNop(), 5)
	assert.Equal(t, "hello", n.Normalize("hello world"))
}

func TestNormalize_NoTruncationWhenDisabled(t *testing.T) {
	n := NewNormalizer(zap.NewNop(), 0)
	long := strings.Repeat("x", 100000)
	assert.Equal(t, long, n.Normalize(long))
}

func TestSanitizeUTF8(t *testing.T) {
	n := NewNormalizer(zap.NewNop(), 0)
	assert.Equal(t, "abcdef", n.SanitizeUTF8("abc\xffdef"))
	assert.Equal(t, "khẩn cấp", n.SanitizeUTF8("khẩn cấp"))
}

func TestTruncate_RespectsRuneBoundary(t *testing.T) {
	n := NewNormalizer(zap.NewNop(), 5)
	// Each two-byte rune must survive intact; the five-byte cut would
	// split the third one.
	assert.Equal(t, "\u00e9\u00e9", n.Truncate("\u00e9\u00e9\u00e9"))
}
