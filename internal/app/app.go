// Package app wires the chat pipeline from configuration.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rag-intent-chat/config"
	"rag-intent-chat/internal/artifact"
	"rag-intent-chat/internal/chat"
	"rag-intent-chat/internal/schema"
	"rag-intent-chat/internal/session"
	"rag-intent-chat/pkg/log"
)

// Pinger is a dependency checked by the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App holds the long-lived components built from Config.
type App struct {
	Chat      chat.UseCase
	Sessions  session.UseCase
	Schema    schema.Repository
	Store     artifact.Store
	Signer    artifact.Signer
	Generator artifact.Generator
	Pingers   map[string]Pinger

	l       log.Logger
	closers []func() error
}

// Build creates every component of the pipeline. Optional collaborators
// (sessions, artifacts) are left nil when not configured.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	a := &App{l: l, Pingers: make(map[string]Pinger)}

	db, err := a.openPostgres(ctx, cfg.Postgres.DSN, cfg.Postgres)
	if err != nil {
		return nil, err
	}
	a.Schema = newSchemaRepository(db, l, cfg)
	a.Pingers["postgres"] = a.Schema

	var gdb *gorm.DB
	if cfg.Search.Backend == "pgvector" || cfg.Session.Enabled {
		if gdb, err = newGorm(db, l); err != nil {
			a.Close()
			return nil, err
		}
	}

	searcher, err := newSearcher(cfg, gdb, l)
	if err != nil {
		a.Close()
		return nil, err
	}

	llm, err := newLLM(ctx, cfg, l)
	if err != nil {
		a.Close()
		return nil, err
	}

	if cfg.Session.Enabled {
		sessionDB := gdb
		if cfg.Session.DSN != cfg.Postgres.DSN {
			sdb, err := a.openPostgres(ctx, cfg.Session.DSN, cfg.Postgres)
			if err != nil {
				a.Close()
				return nil, err
			}
			if sessionDB, err = newGorm(sdb, l); err != nil {
				a.Close()
				return nil, err
			}
		}
		if a.Sessions, err = newSessions(ctx, cfg, sessionDB, l); err != nil {
			a.Close()
			return nil, err
		}
	}

	if err := a.buildArtifacts(ctx, cfg); err != nil {
		a.Close()
		return nil, err
	}

	if a.Chat, err = a.buildChat(cfg, llm, searcher); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) openPostgres(ctx context.Context, dsn string, cfg config.PostgresConfig) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.New("app: postgres.dsn is required")
	}
	db, err := openDB(ctx, dsn, cfg)
	if err != nil {
		return nil, fmt.Errorf("app: connect postgres: %w", err)
	}
	a.closers = append(a.closers, db.Close)
	return db, nil
}

// Shutdown waits for background work of the artifact Generator.
func (a *App) Shutdown(ctx context.Context) error {
	if a.Generator == nil {
		return nil
	}
	return a.Generator.Shutdown(ctx)
}

// Close releases connection pools in reverse order of creation.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.l.Warnf(context.Background(), "app.Close: %v", err)
		}
	}
	a.closers = nil
}
