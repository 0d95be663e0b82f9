// Package analyzer implements the layered heuristic rules: input shape
// classification, domain/content/URL/phone scoring, the risk aggregator
// and the coarse stored-record classifier. Every function is pure over
// its arguments and the immutable lexicon.
package analyzer

import (
	"regexp"

	"github.com/mikey/scam-check/internal/core"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(\+84|84|0)[0-9]{9}$`)
	urlPattern   = regexp.MustCompile(`^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)
)

// ClassifyInput determines whether raw input looks like an email
// address, a Vietnamese phone number or a URL. Email wins over phone,
// phone over URL; anything else is unknown. Never fails.
func ClassifyInput(input string) core.InputType {
	switch {
	case emailPattern.MatchString(input):
		return core.InputEmail
	case phonePattern.MatchString(input):
		return core.InputPhone
	case urlPattern.MatchString(input):
		return core.InputURL
	default:
		return core.InputUnknown
	}
}
