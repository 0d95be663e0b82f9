// Package lexicon holds the static knowledge base the analyzers score
// against: keyword lists, the legitimate-domain allowlist and the known
// spam/scam phone number lists. Everything here is immutable after
// process start; there is no hot reload.
package lexicon

// Version identifies the shipped knowledge base revision.
const Version = "2025.08"

// PhoneLists groups the six known-number lists. A number may appear in
// several lists; membership checks score each list independently.
type PhoneLists struct {
	Spam       []string
	Scam       []string
	Premium    []string
	FakeBank   []string
	Lottery    []string
	Investment []string
}

// All returns the concatenation of every list, duplicates included, in
// a fixed order. Fuzzy matching counts duplicates on purpose: a number
// reported in three lists is three near-misses.
func (p *PhoneLists) All() []string {
	out := make([]string, 0, len(p.Spam)+len(p.Scam)+len(p.Premium)+len(p.FakeBank)+len(p.Lottery)+len(p.Investment))
	out = append(out, p.Spam...)
	out = append(out, p.Scam...)
	out = append(out, p.Premium...)
	out = append(out, p.FakeBank...)
	out = append(out, p.Lottery...)
	out = append(out, p.Investment...)
	return out
}

// Set is the full lexicon handed to the analyzers.
type Set struct {
	// Domain analysis.
	SuspiciousTLDs    []string
	LegitimateDomains []string
	DomainKeywords    []string

	// Free-text content analysis. Lists carry both English and
	// Vietnamese forms; matching is plain substring containment.
	UrgencyWords    []string
	FinancialWords  []string
	CredentialWords []string
	TooGoodWords    []string

	// Markers scanned inside links embedded in free text. Deliberately
	// narrower than SuspiciousTLDs and CredentialWords: a link is flagged
	// only on throwaway TLDs and the two credential-harvest path words.
	LinkMarkers []string

	// URL keyword buckets (distinct from the content lists: they target
	// URL text, not body text).
	URLFinancialWords []string
	URLUrgencyWords   []string
	URLPersonalWords  []string
	URLTooGoodWords   []string

	// Stored-record classification.
	PhishingKeywords      []string
	SpamKeywords          []string
	RecordUrgencyKeywords []string

	Phones PhoneLists
}

// Default returns the built-in lexicon.
func Default() *Set {
	return &Set{
		SuspiciousTLDs:    []string{".tk", ".ml", ".ga", ".cf", ".xyz", ".top", ".club"},
		LegitimateDomains: []string{"google.com", "facebook.com", "amazon.com", "paypal.com", "microsoft.com", "apple.com", "netflix.com", "spotify.com", "linkedin.com", "twitter.com"},
		DomainKeywords:    []string{"security", "verify", "login", "update", "confirm", "secure"},

		UrgencyWords:    []string{"urgent", "immediate", "now", "today", "limited", "expire", "deadline", "khẩn cấp", "ngay lập tức"},
		FinancialWords:  []string{"account", "bank", "payment", "credit", "debit", "tài khoản", "ngân hàng", "thanh toán"},
		CredentialWords: []string{"password", "login", "verify", "confirm", "mật khẩu", "đăng nhập", "xác minh"},
		TooGoodWords:    []string{"winner", "prize", "free", "lottery", "trúng thưởng", "miễn phí", "thắng"},
		LinkMarkers:     []string{".tk", ".ml", ".ga", "login", "verify"},

		URLFinancialWords: []string{"bank", "credit", "debit", "payment", "money", "transfer", "account"},
		URLUrgencyWords:   []string{"urgent", "immediate", "now", "today", "limited", "expire"},
		URLPersonalWords:  []string{"password", "login", "verify", "confirm", "personal", "private"},
		URLTooGoodWords:   []string{"winner", "prize", "free", "lottery", "bonus", "reward"},

		PhishingKeywords:      []string{"paypal", "facebook", "bank", "security", "verify", "login", "password", "account", "suspended", "locked"},
		SpamKeywords:          []string{"sale", "discount", "offer", "free", "winner", "lottery", "prize", "viagra", "medicine"},
		RecordUrgencyKeywords: []string{"urgent", "immediate", "now", "today", "limited", "expire", "deadline"},

		Phones: defaultPhones(),
	}
}
