package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockStore(t *testing.T) (*MySQLStore, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &MySQLStore{
		db:     db,
		logger: zap.NewNop(),
		table:  "incoming_emails",
	}, mock
}

func recordColumns() []string {
	return []string{"id", "from_email", "to_email", "title", "content", "received_time"}
}

func TestMySQLStore_FetchRecords(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows(recordColumns()).
		AddRow(1, "scam@evil.com", "victim@corp.com", "Claim your prize", "Click here", "2024-03-01 10:30:00").
		AddRow(2, "alice@example.com", "bob@example.com", "Weekly digest", "News inside", "2024-02-28 09:00:00")

	mock.ExpectQuery("SELECT id, from_email, to_email, title, content, received_time").
		WithArgs(2, 0).
		WillReturnRows(rows)

	records, err := s.FetchRecords(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, "scam@evil.com", records[0].FromEmail)
	assert.Equal(t, 2024, records[0].ReceivedTime.Year())
	assert.Equal(t, 30, records[0].ReceivedTime.Minute())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_FetchRecords_Offset(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, from_email, to_email, title, content, received_time").
		WithArgs(10, 20).
		WillReturnRows(sqlmock.NewRows(recordColumns()))

	records, err := s.FetchRecords(context.Background(), 3, 10)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_SearchRecords(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows(recordColumns()).
		AddRow(5, "scam@evil.com", "victim@corp.com", "Bank alert", "Verify now", "2024-03-02 12:00:00")

	mock.ExpectQuery("WHERE title LIKE \\? OR content LIKE \\? OR from_email LIKE \\? OR to_email LIKE \\?").
		WithArgs("%bank%", "%bank%", "%bank%", "%bank%", 20, 0).
		WillReturnRows(rows)

	records, err := s.SearchRecords(context.Background(), "bank", 1, 20)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Bank alert", records[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStore_FetchRecords_BadTimestamp(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows(recordColumns()).
		AddRow(1, "a@b.com", "c@d.com", "t", "c", "not-a-time")

	mock.ExpectQuery("SELECT id, from_email, to_email, title, content, received_time").
		WithArgs(2, 0).
		WillReturnRows(rows)

	_, err := s.FetchRecords(context.Background(), 1, 2)
	assert.Error(t, err)
}
