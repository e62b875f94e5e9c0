package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"rag-intent-chat/pkg/log"
)

func TestNewGorm(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gdb, err := NewGorm(db, log.NewNop())
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT 1`).WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))

	var one int
	require.NoError(t, gdb.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormLogger_Levels(t *testing.T) {
	g := newGormLogger(log.NewNop(), time.Millisecond).(*gormLogger)
	assert.Equal(t, logger.Warn, g.level)

	silent := g.LogMode(logger.Silent).(*gormLogger)
	assert.Equal(t, logger.Silent, silent.level)
	assert.Equal(t, logger.Warn, g.level)

	called := false
	silent.Trace(context.Background(), time.Now(), func() (string, int64) {
		called = true
		return "", 0
	}, errors.New("boom"))
	assert.False(t, called)

	g.Trace(context.Background(), time.Now(), func() (string, int64) {
		called = true
		return "SELECT 1", 1
	}, errors.New("boom"))
	assert.True(t, called)
}
