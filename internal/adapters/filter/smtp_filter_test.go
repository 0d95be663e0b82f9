package filter

import (
	"bytes"
	"net/mail"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikey/scam-check/internal/core"
)

func TestShouldBlock(t *testing.T) {
	tests := []struct {
		name         string
		blockEnabled bool
		blockLevel   core.RiskLevel
		verdictLevel core.RiskLevel
		expected     bool
	}{
		{"disabled never blocks", false, core.LevelHigh, core.LevelCritical, false},
		{"below threshold", true, core.LevelCritical, core.LevelHigh, false},
		{"at threshold", true, core.LevelCritical, core.LevelCritical, true},
		{"above threshold", true, core.LevelHigh, core.LevelCritical, true},
		{"safe verdict", true, core.LevelLow, core.LevelSafe, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &SmtpFilter{blockEnabled: tt.blockEnabled, blockLevel: tt.blockLevel}
			verdict := &core.RiskVerdict{Level: tt.verdictLevel}
			assert.Equal(t, tt.expected, f.shouldBlock(verdict))
		})
	}
}

func TestExtractTextFromMessage_PlainText(t *testing.T) {
	raw := "From: a@b.com\r\nSubject: hi\r\n\r\nplain body here\r\n"
	msg, err := mail.ReadMessage(bytes.NewReader([]byte(raw)))
	require.NoError(t, err)

	text, err := extractTextFromMessage(msg)
	require.NoError(t, err)
	assert.Contains(t, text, "plain body here")
}

func TestExtractTextFromMessage_Multipart(t *testing.T) {
	raw := "From: a@b.com\r\n" +
		"Content-Type: multipart/alternative; boundary=xyz\r\n" +
		"\r\n" +
		"--xyz\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		"the text part\r\n" +
		"--xyz\r\n" +
		"Content-Type: text/html\r\n" +
		"\r\n" +
		"<b>the html part</b>\r\n" +
		"--xyz--\r\n"
	msg, err := mail.ReadMessage(bytes.NewReader([]byte(raw)))
	require.NoError(t, err)

	text, err := extractTextFromMessage(msg)
	require.NoError(t, err)
	assert.Contains(t, text, "the text part")
	assert.NotContains(t, text, "html part")
}

func TestExtractTextFromMessage_AttachmentOnlyMultipart(t *testing.T) {
	raw := "From: a@b.com\r\n" +
		"Content-Type: multipart/mixed; boundary=xyz\r\n" +
		"\r\n" +
		"--xyz\r\n" +
		"Content-Type: application/octet-stream\r\n" +
		"\r\n" +
		"binarybytes\r\n" +
		"--xyz--\r\n"
	msg, err := mail.ReadMessage(bytes.NewReader([]byte(raw)))
	require.NoError(t, err)

	text, err := extractTextFromMessage(msg)
	require.NoError(t, err)
	assert.Equal(t, "[No text content found in multipart message]", text)
}

func TestExtractTextFromMessage_UnparseableContentType(t *testing.T) {
	raw := "From: a@b.com\r\nContent-Type: ;;garbage\r\n\r\nstill the body\r\n"
	msg, err := mail.ReadMessage(bytes.NewReader([]byte(raw)))
	require.NoError(t, err)

	text, err := extractTextFromMessage(msg)
	require.NoError(t, err)
	assert.Contains(t, text, "still the body")
}

func TestDecodeEncodedHeader(t *testing.T) {
	decoded, err := decodeEncodedHeader("=?UTF-8?Q?Claim_your_prize?=")
	require.NoError(t, err)
	assert.Equal(t, "Claim your prize", decoded)

	// Plain headers pass through untouched.
	decoded, err = decodeEncodedHeader("Hello there")
	require.NoError(t, err)
	assert.Equal(t, "Hello there", decoded)
}
