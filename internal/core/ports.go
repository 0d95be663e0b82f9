package core

import (
	"context"
	"time"
)

// RecordProvider exposes the external email store. Ordering is
// unspecified but stable for a given query.
type RecordProvider interface {
	// FetchRecords returns one page of stored emails.
	FetchRecords(ctx context.Context, page, limit int) ([]EmailRecord, error)

	// SearchRecords returns stored emails whose sender, recipient, title
	// or content contains the keyword.
	SearchRecords(ctx context.Context, keyword string, page, limit int) ([]EmailRecord, error)
}

// VerdictCache stores recent verdicts keyed by the normalized input.
type VerdictCache interface {
	// Get retrieves a cached verdict for an input.
	Get(ctx context.Context, input string) (*RiskVerdict, error)

	// Set stores a verdict with a TTL.
	Set(ctx context.Context, input string, verdict *RiskVerdict, ttl time.Duration) error

	// Delete removes a cached verdict.
	Delete(ctx context.Context, input string) error

	// Cleanup removes expired entries.
	Cleanup(ctx context.Context) error
}
