package corpus

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikey/scam-check/internal/core"
)

// stubProvider serves canned records. With matchAll set it returns
// every record for any term, otherwise it mimics LIKE matching.
type stubProvider struct {
	records  []core.EmailRecord
	err      error
	matchAll bool
}

func (p *stubProvider) FetchRecords(_ context.Context, _, _ int) ([]core.EmailRecord, error) {
	return p.records, p.err
}

func (p *stubProvider) SearchRecords(_ context.Context, keyword string, _, _ int) ([]core.EmailRecord, error) {
	if p.err != nil {
		return nil, p.err
	}
	if p.matchAll {
		return p.records, nil
	}
	needle := strings.ToLower(keyword)
	var matched []core.EmailRecord
	for _, rec := range p.records {
		if strings.Contains(strings.ToLower(rec.FromEmail), needle) ||
			strings.Contains(strings.ToLower(rec.Title), needle) ||
			strings.Contains(strings.ToLower(rec.Content), needle) {
			matched = append(matched, rec)
		}
	}
	return matched, nil
}

func TestSearchTerms(t *testing.T) {
	terms := SearchTerms("User@Example.com")
	assert.Contains(t, terms, "User@Example.com")
	assert.Contains(t, terms, "user@example.com")
	assert.Contains(t, terms, "User")
	assert.Contains(t, terms, "Example.com")
	assert.Contains(t, terms, "UserExamplecom")
}

func TestSearchTerms_DropsShortTerms(t *testing.T) {
	// The local part "ab" is only two characters and must be dropped.
	terms := SearchTerms("ab@example.com")
	assert.NotContains(t, terms, "ab")
	assert.Contains(t, terms, "example.com")
}

func TestSearchTerms_EmptyInput(t *testing.T) {
	assert.Empty(t, SearchTerms(""))
	assert.Empty(t, SearchTerms("ab"))
}

func TestRelevanceScore(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		rec      core.EmailRecord
		expected float64
	}{
		{
			name:     "sender match",
			input:    "scam@evil.com",
			rec:      core.EmailRecord{FromEmail: "scam@evil.com"},
			expected: 0.8,
		},
		{
			name:     "recipient match",
			input:    "victim@corp.com",
			rec:      core.EmailRecord{ToEmail: "victim@corp.com"},
			expected: 0.7,
		},
		{
			name:     "title word overlap only",
			input:    "winner99",
			rec:      core.EmailRecord{Title: "winner announcement"},
			expected: 0.3,
		},
		{
			name:     "no overlap",
			input:    "innocuous@example.org",
			rec:      core.EmailRecord{FromEmail: "other@place.net", Title: "hello", Content: "world"},
			expected: 0,
		},
		{
			name:     "empty record never matches",
			input:    "anything",
			rec:      core.EmailRecord{},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RelevanceScore(tt.input, &tt.rec), 1e-9)
		})
	}
}

func TestRelevanceScore_CappedAtOne(t *testing.T) {
	input := "lottery scam"
	rec := core.EmailRecord{
		FromEmail: "lottery scam",
		ToEmail:   "lottery scam",
		Title:     "lottery scam",
		Content:   "lottery scam",
	}
	assert.Equal(t, 1.0, RelevanceScore(input, &rec))
}

func TestRelevanceScore_AppendingTitleRaisesTypicalMatch(t *testing.T) {
	// Pasting the stored title into the input picks up the title
	// containment bonus plus the per-word bonuses.
	rec := core.EmailRecord{Title: "lottery scam alert"}

	base := RelevanceScore("winner", &rec)
	extended := RelevanceScore("winner lottery scam alert", &rec)
	assert.GreaterOrEqual(t, extended, base)
	assert.Greater(t, extended, 0.3)
}

func TestRelevanceScore_FieldContainmentLostOnLongerInput(t *testing.T) {
	// Field containment is bidirectional and all-or-nothing: once the
	// input grows past a field that contained it, that field's bonus is
	// gone, and title words of two characters or fewer earn nothing
	// back. Growing the input can therefore lower the score.
	rec := core.EmailRecord{FromEmail: "xabcdefx", Title: "qq"}

	assert.InDelta(t, 0.8, RelevanceScore("abcdef", &rec), 1e-9)
	assert.InDelta(t, 0.6, RelevanceScore("abcdef qq", &rec), 1e-9)
}

func TestRelevanceScore_CaseInsensitive(t *testing.T) {
	rec := core.EmailRecord{FromEmail: "SCAM@EVIL.COM"}
	assert.InDelta(t, 0.8, RelevanceScore("scam@evil.com", &rec), 1e-9)
}

func TestBestMatch_Hit(t *testing.T) {
	provider := &stubProvider{records: []core.EmailRecord{
		{ID: 1, FromEmail: "scam@evil.com", Title: "Claim your prize"},
		{ID: 2, FromEmail: "other@place.net", Title: "Weekly digest"},
	}}
	m := NewMatcher(provider, zap.NewNop(), 20, 0.3)

	rec, relevance := m.BestMatch(context.Background(), "scam@evil.com")
	require.NotNil(t, rec)
	assert.Equal(t, int64(1), rec.ID)
	assert.Greater(t, relevance, 0.3)
}

func TestBestMatch_RejectsScoreAtThreshold(t *testing.T) {
	// A single title-word overlap scores exactly 0.3, which is not
	// strictly above the threshold.
	provider := &stubProvider{matchAll: true, records: []core.EmailRecord{
		{ID: 1, Title: "winner announcement"},
	}}
	m := NewMatcher(provider, zap.NewNop(), 20, 0.3)

	rec, relevance := m.BestMatch(context.Background(), "winner99")
	assert.Nil(t, rec)
	assert.Zero(t, relevance)
}

func TestBestMatch_Miss(t *testing.T) {
	provider := &stubProvider{records: []core.EmailRecord{
		{ID: 1, FromEmail: "other@place.net", Title: "Weekly digest"},
	}}
	m := NewMatcher(provider, zap.NewNop(), 20, 0.3)

	rec, relevance := m.BestMatch(context.Background(), "scam@evil.com")
	assert.Nil(t, rec)
	assert.Zero(t, relevance)
}

func TestBestMatch_ProviderErrorsAreSwallowed(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	m := NewMatcher(provider, zap.NewNop(), 20, 0.3)

	rec, relevance := m.BestMatch(context.Background(), "scam@evil.com")
	assert.Nil(t, rec)
	assert.Zero(t, relevance)
}

func TestBestMatch_PicksHighestRelevance(t *testing.T) {
	provider := &stubProvider{records: []core.EmailRecord{
		{ID: 1, Content: "mentions scam@evil.com in passing"},
		{ID: 2, FromEmail: "scam@evil.com", Title: "Claim your prize"},
	}}
	m := NewMatcher(provider, zap.NewNop(), 20, 0.3)

	rec, _ := m.BestMatch(context.Background(), "scam@evil.com")
	require.NotNil(t, rec)
	assert.Equal(t, int64(2), rec.ID)
}

func TestNewMatcher_Defaults(t *testing.T) {
	m := NewMatcher(&stubProvider{}, zap.NewNop(), 0, 0)
	assert.Equal(t, 20, m.searchLimit)
	assert.Equal(t, MinRelevance, m.minRelevance)
}
