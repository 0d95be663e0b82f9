package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/mikey/scam-check/internal/core"
)

// SQLiteStore serves email records from a local SQLite snapshot of the
// corpus. Useful for offline runs and development; same schema as the
// MySQL store.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
	table  string
}

// NewSQLiteStore opens (and if needed initializes) a SQLite corpus
// snapshot.
func NewSQLiteStore(path string, table string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if table == "" {
		table = "incoming_emails"
	}

	_, err = db.Exec(fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			from_email TEXT NOT NULL,
			to_email TEXT NOT NULL,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			received_time TIMESTAMP NOT NULL
		)
	`, table))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger,
		table:  table,
	}, nil
}

// FetchRecords returns one page of records, newest first.
func (s *SQLiteStore) FetchRecords(ctx context.Context, page, limit int) ([]core.EmailRecord, error) {
	offset := pageOffset(page, limit)
	query := fmt.Sprintf(`
		SELECT id, from_email, to_email, title, content, received_time
		FROM %s
		ORDER BY received_time DESC
		LIMIT ? OFFSET ?
	`, s.table)

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}
	defer rows.Close()

	return scanSQLiteRecords(rows)
}

// SearchRecords returns records matching the keyword, newest first.
func (s *SQLiteStore) SearchRecords(ctx context.Context, keyword string, page, limit int) ([]core.EmailRecord, error) {
	offset := pageOffset(page, limit)
	pattern := "%" + keyword + "%"
	query := fmt.Sprintf(`
		SELECT id, from_email, to_email, title, content, received_time
		FROM %s
		WHERE title LIKE ? OR content LIKE ? OR from_email LIKE ? OR to_email LIKE ?
		ORDER BY received_time DESC
		LIMIT ? OFFSET ?
	`, s.table)

	rows, err := s.db.QueryContext(ctx, query, pattern, pattern, pattern, pattern, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search records: %w", err)
	}
	defer rows.Close()

	return scanSQLiteRecords(rows)
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close SQLite database: %w", err)
	}
	return nil
}

// scanSQLiteRecords scans rows with a TIMESTAMP column; the sqlite3
// driver returns time.Time directly for TIMESTAMP columns.
func scanSQLiteRecords(rows *sql.Rows) ([]core.EmailRecord, error) {
	var records []core.EmailRecord
	for rows.Next() {
		var rec core.EmailRecord
		if err := rows.Scan(&rec.ID, &rec.FromEmail, &rec.ToEmail, &rec.Title, &rec.Content, &rec.ReceivedTime); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return records, nil
}
