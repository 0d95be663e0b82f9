package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikey/scam-check/internal/core"
)

func seedRecords() []core.EmailRecord {
	return []core.EmailRecord{
		{ID: 1, FromEmail: "alice@example.com", Title: "Weekly digest"},
		{ID: 2, FromEmail: "scam@evil.com", Title: "Claim your PRIZE now"},
		{ID: 3, FromEmail: "bob@example.com", Title: "Invoice attached", Content: "see the prize draw results"},
		{ID: 4, FromEmail: "carol@example.com", ToEmail: "prize@corp.com", Title: "Quarterly report"},
		{ID: 5, FromEmail: "dave@example.com", Title: "Standup moved"},
	}
}

func TestMemoryStore_FetchRecords(t *testing.T) {
	s := NewMemoryStore(seedRecords())
	ctx := context.Background()

	page1, err := s.FetchRecords(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page1, 2)
	assert.Equal(t, int64(1), page1[0].ID)

	page3, err := s.FetchRecords(ctx, 3, 2)
	require.NoError(t, err)
	require.Len(t, page3, 1)
	assert.Equal(t, int64(5), page3[0].ID)

	page4, err := s.FetchRecords(ctx, 4, 2)
	require.NoError(t, err)
	assert.Empty(t, page4)
}

func TestMemoryStore_FetchRecords_PageBelowOne(t *testing.T) {
	s := NewMemoryStore(seedRecords())

	page, err := s.FetchRecords(context.Background(), 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, int64(1), page[0].ID)
}

func TestMemoryStore_SearchRecords(t *testing.T) {
	s := NewMemoryStore(seedRecords())
	ctx := context.Background()

	// Case-insensitive, matches title, content and recipient fields.
	matched, err := s.SearchRecords(ctx, "prize", 1, 10)
	require.NoError(t, err)
	require.Len(t, matched, 3)
	assert.Equal(t, int64(2), matched[0].ID)
	assert.Equal(t, int64(3), matched[1].ID)
	assert.Equal(t, int64(4), matched[2].ID)
}

func TestMemoryStore_SearchRecords_Pagination(t *testing.T) {
	s := NewMemoryStore(seedRecords())
	ctx := context.Background()

	page2, err := s.SearchRecords(ctx, "prize", 2, 2)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, int64(4), page2[0].ID)
}

func TestMemoryStore_SearchRecords_NoMatch(t *testing.T) {
	s := NewMemoryStore(seedRecords())

	matched, err := s.SearchRecords(context.Background(), "nonexistent", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, matched)
}
