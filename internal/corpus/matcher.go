// Package corpus looks an input up against the stored email corpus.
// The matcher derives several search terms from the input, queries the
// record provider once per term and keeps the most relevant candidate.
package corpus

import (
	"context"
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/mikey/scam-check/internal/core"
)

// MinRelevance is the default acceptance threshold. A candidate must
// score strictly above it to count as a hit.
const MinRelevance = 0.3

var alnumOnlyPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Matcher runs fuzzy lookups against a RecordProvider.
type Matcher struct {
	provider     core.RecordProvider
	logger       *zap.Logger
	searchLimit  int
	minRelevance float64
}

// NewMatcher creates a matcher. searchLimit caps candidates per search
// term; minRelevance <= 0 falls back to the default threshold.
func NewMatcher(provider core.RecordProvider, logger *zap.Logger, searchLimit int, minRelevance float64) *Matcher {
	if searchLimit <= 0 {
		searchLimit = 20
	}
	if minRelevance <= 0 {
		minRelevance = MinRelevance
	}
	return &Matcher{
		provider:     provider,
		logger:       logger,
		searchLimit:  searchLimit,
		minRelevance: minRelevance,
	}
}

// SearchTerms derives the lookup terms for an input: the raw string,
// its lowercased form, the email local part, the email domain part and
// an alphanumeric-only rendering. Terms of three characters or fewer
// are dropped.
func SearchTerms(input string) []string {
	candidates := []string{
		input,
		strings.ToLower(input),
	}
	if at := strings.Index(input, "@"); at >= 0 {
		candidates = append(candidates, input[:at], input[at+1:])
	}
	candidates = append(candidates, alnumOnlyPattern.ReplaceAllString(input, ""))

	terms := make([]string, 0, len(candidates))
	for _, term := range candidates {
		if len(term) > 2 {
			terms = append(terms, term)
		}
	}
	return terms
}

// BestMatch queries the provider once per derived term, waits for all
// queries, and returns the strictly best-scoring candidate above the
// relevance threshold. Ties keep the first-seen candidate in term
// order. Per-term query failures are logged and treated as empty
// result sets; a miss returns (nil, 0).
func (m *Matcher) BestMatch(ctx context.Context, input string) (*core.EmailRecord, float64) {
	terms := SearchTerms(input)
	if len(terms) == 0 {
		return nil, 0
	}

	// One query per term; all outstanding queries are awaited because a
	// later term may surface a better candidate.
	results := make([][]core.EmailRecord, len(terms))
	var wg sync.WaitGroup
	for i, term := range terms {
		wg.Add(1)
		go func(i int, term string) {
			defer wg.Done()
			records, err := m.provider.SearchRecords(ctx, term, 1, m.searchLimit)
			if err != nil {
				m.logger.Warn("Corpus search failed for term",
					zap.String("term", term),
					zap.Error(err))
				return
			}
			results[i] = records
		}(i, term)
	}
	wg.Wait()

	var best *core.EmailRecord
	bestScore := 0.0
	for _, records := range results {
		for i := range records {
			score := RelevanceScore(input, &records[i])
			if score > bestScore {
				bestScore = score
				best = &records[i]
			}
		}
	}

	if best == nil || bestScore <= m.minRelevance {
		return nil, 0
	}
	m.logger.Debug("Corpus hit",
		zap.Int64("record_id", best.ID),
		zap.Float64("relevance", bestScore))
	return best, bestScore
}

// RelevanceScore rates how well a stored record matches the input.
// Field-level mutual containment contributes 0.8 (sender), 0.7
// (recipient), 0.6 (title) and 0.5 (body); each input word longer than
// two characters adds 0.3 when it shares containment with a title word
// and 0.2 for a body word. The total is capped at 1.0. Empty record
// fields are skipped so they cannot match everything.
func RelevanceScore(input string, rec *core.EmailRecord) float64 {
	inputLower := strings.ToLower(input)
	fromLower := strings.ToLower(rec.FromEmail)
	toLower := strings.ToLower(rec.ToEmail)
	titleLower := strings.ToLower(rec.Title)
	contentLower := strings.ToLower(rec.Content)

	score := 0.0
	if mutualContains(fromLower, inputLower) {
		score += 0.8
	}
	if mutualContains(toLower, inputLower) {
		score += 0.7
	}
	if mutualContains(titleLower, inputLower) {
		score += 0.6
	}
	if mutualContains(contentLower, inputLower) {
		score += 0.5
	}

	titleWords := strings.Fields(titleLower)
	contentWords := strings.Fields(contentLower)
	for _, word := range strings.Fields(inputLower) {
		if len(word) <= 2 {
			continue
		}
		if anyMutualContains(titleWords, word) {
			score += 0.3
		}
		if anyMutualContains(contentWords, word) {
			score += 0.2
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func mutualContains(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

func anyMutualContains(words []string, word string) bool {
	for _, w := range words {
		if mutualContains(w, word) {
			return true
		}
	}
	return false
}
