package postgre

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	repo "rag-intent-chat/internal/session/repository"
	"rag-intent-chat/pkg/log"
)

func newMockRepo(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	r := New(gdb, log.NewNop()).(*implRepository)
	r.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return r, mock
}

func TestGetOneSession(t *testing.T) {
	r, mock := newMockRepo(t)
	created := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "chat_sessions" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "user_id", "title", "created_at", "updated_at"}).
			AddRow("s1", "t1", "u1", "hello", created, created))

	s, err := r.GetOneSession(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", s.ID)
	assert.Equal(t, "t1", s.TenantID)
	assert.Equal(t, "hello", s.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOneSession_NotFound(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "chat_sessions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	s, err := r.GetOneSession(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, s.ID)
}

func TestGetOneSession_Error(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT \* FROM "chat_sessions"`).WillReturnError(errors.New("conn reset"))

	_, err := r.GetOneSession(context.Background(), "s1")
	assert.ErrorIs(t, err, repo.ErrFailedToGet)
}

func TestDeleteSession(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "chat_messages" WHERE session_id = \$1`).
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "chat_sessions" WHERE id = \$1`).
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, r.DeleteSession(context.Background(), "s1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSession_RollsBack(t *testing.T) {
	r, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "chat_messages"`).WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	assert.ErrorIs(t, r.DeleteSession(context.Background(), "s1"), repo.ErrFailedToDelete)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListMessages(t *testing.T) {
	r, mock := newMockRepo(t)
	at := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "chat_messages" WHERE session_id = \$1 ORDER BY created_at ASC`).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "session_id", "prompt", "completion", "label", "total_tokens", "created_at"}).
			AddRow("m1", "s1", "hi", "hello", "manual", 42, at).
			AddRow("m2", "s1", "more", "sure", "not_found", 7, at.Add(time.Minute)))

	msgs, err := r.ListMessages(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "m1", msgs[0].ID)
	assert.Equal(t, 42, msgs[0].TotalTokens)
	assert.Equal(t, "not_found", msgs[1].Label)
}
