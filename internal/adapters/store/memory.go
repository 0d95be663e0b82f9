package store

import (
	"context"
	"strings"

	"github.com/mikey/scam-check/internal/core"
)

// MemoryStore is an in-memory RecordProvider for tests and development.
// Records keep their insertion order; search mirrors the SQL LIKE
// semantics with case-insensitive substring matching.
type MemoryStore struct {
	records []core.EmailRecord
}

// NewMemoryStore creates a store seeded with the given records.
func NewMemoryStore(records []core.EmailRecord) *MemoryStore {
	return &MemoryStore{records: records}
}

// FetchRecords returns one page of records.
func (s *MemoryStore) FetchRecords(_ context.Context, page, limit int) ([]core.EmailRecord, error) {
	offset := pageOffset(page, limit)
	if offset >= len(s.records) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.records) {
		end = len(s.records)
	}
	out := make([]core.EmailRecord, end-offset)
	copy(out, s.records[offset:end])
	return out, nil
}

// SearchRecords returns records whose fields contain the keyword.
func (s *MemoryStore) SearchRecords(_ context.Context, keyword string, page, limit int) ([]core.EmailRecord, error) {
	needle := strings.ToLower(keyword)
	var matched []core.EmailRecord
	for _, rec := range s.records {
		if strings.Contains(strings.ToLower(rec.Title), needle) ||
			strings.Contains(strings.ToLower(rec.Content), needle) ||
			strings.Contains(strings.ToLower(rec.FromEmail), needle) ||
			strings.Contains(strings.ToLower(rec.ToEmail), needle) {
			matched = append(matched, rec)
		}
	}

	offset := pageOffset(page, limit)
	if offset >= len(matched) {
		return nil, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}
