package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"rag-intent-chat/internal/schema"
	"rag-intent-chat/pkg/log"
)

// Options configures the schema repository.
type Options struct {
	DatabaseName string
	Description  string
	RowLimit     int
}

type implRepository struct {
	db       *sql.DB
	l        log.Logger
	dbName   string
	desc     string
	rowLimit int
}

// New creates a PostgreSQL-backed schema Repository.
func New(db *sql.DB, l log.Logger, opt Options) schema.Repository {
	if db == nil {
		panic("schema/repository/postgre: db is required")
	}
	if opt.RowLimit <= 0 {
		opt.RowLimit = schema.DefaultRowLimit
	}
	return &implRepository{
		db:       db,
		l:        l,
		dbName:   opt.DatabaseName,
		desc:     opt.Description,
		rowLimit: opt.RowLimit,
	}
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("schema/repository/postgre.%s", method)
}
