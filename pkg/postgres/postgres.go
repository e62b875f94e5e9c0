// Package postgres opens the shared PostgreSQL pool used by the schema,
// session and pgvector repositories.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"rag-intent-chat/pkg/log"
)

// PoolOptions bounds the connection pool opened by Open.
type PoolOptions struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open opens a pgx-backed *sql.DB and verifies it with a ping.
func Open(ctx context.Context, dsn string, opt PoolOptions) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: open: %w", err)
	}
	db.SetMaxOpenConns(opt.MaxOpenConns)
	db.SetMaxIdleConns(opt.MaxIdleConns)
	db.SetConnMaxLifetime(opt.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	return db, nil
}

// NewGorm wraps an open pool in gorm. The pool stays owned by the caller.
func NewGorm(db *sql.DB, l log.Logger) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: newGormLogger(l, time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: gorm: %w", err)
	}
	return gdb, nil
}
