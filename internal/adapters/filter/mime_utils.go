package filter

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"strings"
)

// readBody drains the remaining message body as-is.
func readBody(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// extractTextFromMessage pulls the scorable text out of a message: the
// raw body for simple messages, the concatenated text/plain parts for
// multipart ones. Attachments and nested multiparts are ignored;
// anything unparseable falls back to the raw body.
func extractTextFromMessage(msg *mail.Message) (string, error) {
	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return readBody(msg.Body)
	}
	boundary, ok := params["boundary"]
	if !ok {
		return readBody(msg.Body)
	}

	mr := multipart.NewReader(msg.Body, boundary)
	var text bytes.Buffer
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Keep what we have from a truncated multipart.
			if text.Len() > 0 {
				return text.String(), nil
			}
			return readBody(msg.Body)
		}

		partType := strings.ToLower(part.Header.Get("Content-Type"))
		if !strings.Contains(partType, "text/plain") {
			continue
		}
		if partBytes, err := io.ReadAll(part); err == nil {
			text.Write(partBytes)
			text.WriteString("\n")
		}
	}

	if text.Len() == 0 {
		return "[No text content found in multipart message]", nil
	}
	return text.String(), nil
}

// decodeEncodedHeader decodes an RFC 2047 encoded header value.
func decodeEncodedHeader(value string) (string, error) {
	dec := new(mime.WordDecoder)
	return dec.DecodeHeader(value)
}
