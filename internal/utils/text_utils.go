package utils

import (
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// Normalizer prepares raw input for analysis: trims surrounding
// whitespace, canonicalizes to NFC (Vietnamese lexicon entries are NFC),
// strips invalid UTF-8 and truncates oversized input.
type Normalizer struct {
	logger  *zap.Logger
	maxSize int
}

// NewNormalizer creates a Normalizer. maxSize <= 0 disables truncation.
func NewNormalizer(logger *zap.Logger, maxSize int) *Normalizer {
	return &Normalizer{
		logger:  logger,
		maxSize: maxSize,
	}
}

// Normalize runs the full pipeline in one call.
func (n *Normalizer) Normalize(text string) string {
	trimmed := strings.TrimSpace(text)
	composed := norm.NFC.String(n.SanitizeUTF8(trimmed))
	return n.Truncate(composed)
}

// SanitizeUTF8 drops invalid UTF-8 sequences.
func (n *Normalizer) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	result := make([]rune, 0, len(text))
	for i, r := range text {
		if r == utf8.RuneError {
			_, size := utf8.DecodeRuneInString(text[i:])
			if size == 1 {
				continue
			}
		}
		result = append(result, r)
	}

	n.logger.Debug("Input sanitized",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", len(string(result))))

	return string(result)
}

// Truncate cuts text to the configured byte limit, backing up to a
// valid UTF-8 boundary.
func (n *Normalizer) Truncate(text string) string {
	if n.maxSize <= 0 || len(text) <= n.maxSize {
		return text
	}

	truncated := text[:n.maxSize]
	for !utf8.ValidString(truncated) && len(truncated) > 0 {
		truncated = truncated[:len(truncated)-1]
	}

	n.logger.Debug("Input truncated",
		zap.Int("original_size", len(text)),
		zap.Int("truncated_size", len(truncated)),
		zap.Int("max_size", n.maxSize))

	return truncated
}
