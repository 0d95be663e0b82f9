package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/mikey/scam-check/internal/core"
)

const timeLayout = "2006-01-02 15:04:05"

// MySQLStore reads email records from the incoming_emails table of the
// upstream MySQL database. The store is read-only.
type MySQLStore struct {
	db     *sql.DB
	logger *zap.Logger
	table  string
}

// NewMySQLStore opens the MySQL record store and verifies the
// connection.
func NewMySQLStore(dsn string, table string, logger *zap.Logger) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	if table == "" {
		table = "incoming_emails"
	}

	return &MySQLStore{
		db:     db,
		logger: logger,
		table:  table,
	}, nil
}

// FetchRecords returns one page of records, newest first.
func (s *MySQLStore) FetchRecords(ctx context.Context, page, limit int) ([]core.EmailRecord, error) {
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

	return scanRecords(rows)
}

// SearchRecords returns records whose title, content, sender or
// recipient contains the keyword, newest first.
func (s *MySQLStore) SearchRecords(ctx context.Context, keyword string, page, limit int) ([]core.EmailRecord, error) {
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

	return scanRecords(rows)
}

// Close closes the database connection.
func (s *MySQLStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close MySQL database: %w", err)
	}
	return nil
}

func pageOffset(page, limit int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * limit
}

func scanRecords(rows *sql.Rows) ([]core.EmailRecord, error) {
	var records []core.EmailRecord
	for rows.Next() {
		var rec core.EmailRecord
		var receivedTime string
		if err := rows.Scan(&rec.ID, &rec.FromEmail, &rec.ToEmail, &rec.Title, &rec.Content, &receivedTime); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		parsed, err := time.Parse(timeLayout, receivedTime)
		if err != nil {
			return nil, fmt.Errorf("failed to parse received_time: %w", err)
		}
		rec.ReceivedTime = parsed
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return records, nil
}
