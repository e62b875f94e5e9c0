package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rag-intent-chat/config"
	"rag-intent-chat/internal/agent/tools"
	gcsStore "rag-intent-chat/internal/artifact/repository/gcs"
	localStore "rag-intent-chat/internal/artifact/repository/local"
	artifactUC "rag-intent-chat/internal/artifact/usecase"
	"rag-intent-chat/internal/assembler"
	assemblerUC "rag-intent-chat/internal/assembler/usecase"
	"rag-intent-chat/internal/chat"
	chatUC "rag-intent-chat/internal/chat/usecase"
	"rag-intent-chat/internal/document"
	pgvectorSearch "rag-intent-chat/internal/document/repository/pgvector"
	qdrantSearch "rag-intent-chat/internal/document/repository/qdrant"
	"rag-intent-chat/internal/gateway"
	"rag-intent-chat/internal/intent"
	intentUC "rag-intent-chat/internal/intent/usecase"
	"rag-intent-chat/internal/schema"
	schemaRepo "rag-intent-chat/internal/schema/repository/postgre"
	"rag-intent-chat/internal/session"
	sessionRepo "rag-intent-chat/internal/session/repository/postgre"
	sessionUC "rag-intent-chat/internal/session/usecase"
	"rag-intent-chat/pkg/assistant"
	"rag-intent-chat/pkg/gcs"
	"rag-intent-chat/pkg/llmprovider"
	"rag-intent-chat/pkg/log"
	"rag-intent-chat/pkg/postgres"
	pkgQdrant "rag-intent-chat/pkg/qdrant"
	"rag-intent-chat/pkg/voyage"
)

func openDB(ctx context.Context, dsn string, cfg config.PostgresConfig) (*sql.DB, error) {
	return postgres.Open(ctx, dsn, postgres.PoolOptions{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
}

func newGorm(db *sql.DB, l log.Logger) (*gorm.DB, error) {
	gdb, err := postgres.NewGorm(db, l)
	if err != nil {
		return nil, fmt.Errorf("app: gorm: %w", err)
	}
	return gdb, nil
}

func newSchemaRepository(db *sql.DB, l log.Logger, cfg *config.Config) schema.Repository {
	return schemaRepo.New(db, l, schemaRepo.Options{
		DatabaseName: cfg.Postgres.DatabaseName,
		RowLimit:     cfg.Postgres.QueryRowLimit,
	})
}

func newSearcher(cfg *config.Config, gdb *gorm.DB, l log.Logger) (document.Searcher, error) {
	embedder, err := voyage.New(voyage.Config{
		APIKey:  cfg.Voyage.APIKey,
		Model:   cfg.Voyage.Model,
		BaseURL: cfg.Voyage.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("app: voyage: %w", err)
	}

	switch cfg.Search.Backend {
	case "pgvector":
		return pgvectorSearch.New(gdb, embedder, cfg.Search.PGTable, cfg.Search.TopK, l), nil
	default:
		client := pkgQdrant.NewClient(cfg.Qdrant.URL)
		return qdrantSearch.New(client, embedder, cfg.Qdrant.CollectionName, cfg.Search.TopK, l), nil
	}
}

func newLLM(ctx context.Context, cfg *config.Config, l log.Logger) (*llmprovider.Manager, error) {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, fmt.Errorf("app: llm providers: %w", err)
	}
	return llmprovider.NewManager(providers, llmprovider.ManagerConfig(&cfg.LLM), l), nil
}

func newSessions(ctx context.Context, cfg *config.Config, gdb *gorm.DB, l log.Logger) (session.UseCase, error) {
	if cfg.Session.AutoMigrate {
		if err := sessionRepo.Migrate(ctx, gdb); err != nil {
			return nil, fmt.Errorf("app: migrate sessions: %w", err)
		}
	}
	return sessionUC.New(sessionRepo.New(gdb, l), l), nil
}

// buildArtifacts leaves the Generator nil when no agent API key is set. The
// store and signer are still built so existing links keep resolving.
func (a *App) buildArtifacts(ctx context.Context, cfg *config.Config) error {
	if cfg.Artifact.SigningSecret == "" {
		a.l.Warnf(ctx, "app.buildArtifacts: artifact.signing_secret is empty, artifacts disabled")
		return nil
	}

	signer, err := artifactUC.NewSigner(cfg.Artifact.SigningSecret, cfg.Artifact.LinkTTL)
	if err != nil {
		return fmt.Errorf("app: signer: %w", err)
	}
	a.Signer = signer

	switch cfg.Artifact.Store {
	case "gcs":
		var client *gcs.Client
		if cfg.Artifact.CredentialsFile != "" {
			client, err = gcs.NewClientFromCredentialsFile(ctx, cfg.Artifact.Bucket, cfg.Artifact.CredentialsFile)
		} else {
			client, err = gcs.NewClient(ctx, cfg.Artifact.Bucket)
		}
		if err != nil {
			return fmt.Errorf("app: gcs: %w", err)
		}
		a.Store = gcsStore.New(client)
	default:
		if a.Store, err = localStore.New(cfg.Artifact.LocalDir); err != nil {
			return fmt.Errorf("app: local store: %w", err)
		}
	}

	if cfg.Assistant.APIKey == "" {
		a.l.Warnf(ctx, "app.buildArtifacts: assistant.api_key is empty, artifact generation disabled")
		return nil
	}
	client, err := assistant.New(assistant.Config{
		APIKey:     cfg.Assistant.APIKey,
		BaseURL:    cfg.Assistant.BaseURL,
		APIVersion: cfg.Assistant.APIVersion,
		Model:      cfg.Assistant.Model,
	})
	if err != nil {
		return fmt.Errorf("app: assistant: %w", err)
	}
	a.Generator = artifactUC.NewGenerator(a.l, client, artifactUC.GeneratorConfig{
		PollInterval: cfg.Assistant.PollInterval,
		MaxWait:      cfg.Assistant.MaxWait,
		Model:        cfg.Assistant.Model,
	})
	return nil
}

func (a *App) buildChat(cfg *config.Config, llm *llmprovider.Manager, searcher document.Searcher) (chat.UseCase, error) {
	categories := make([]intent.Category, 0, len(cfg.Domains))
	domains := make([]assembler.Domain, 0, len(cfg.Domains))
	toolDomains := make([]tools.Domain, 0, len(cfg.Domains))
	for _, d := range cfg.Domains {
		categories = append(categories, intent.Category{Label: d.Label, Description: d.Description, Examples: d.Examples})
		domains = append(domains, assembler.Domain{Label: d.Label, Description: d.Description, Tables: d.Tables})
		toolDomains = append(toolDomains, tools.Domain{Label: d.Label, Description: d.Description, Tables: d.Tables})
	}

	registry := tools.NewRegistry(searcher, a.Schema, toolDomains)
	gw := gateway.New(a.l, llm, registry, cfg.Answer.MaxToolSteps)

	ucCfg := chatUC.Config{
		Classifier: intentUC.New(a.l, gw, intentUC.Config{
			Samples:     cfg.Intent.Samples,
			Temperature: cfg.Intent.Temperature,
			Categories:  categories,
		}),
		Assembler: assemblerUC.New(a.l, searcher, a.Schema, domains),
		Gateway:   gw,
		Persona:   cfg.Chat.Persona,
		Answer: gateway.Sampling{
			Temperature: cfg.Answer.Temperature,
			TopP:        cfg.Answer.TopP,
			MaxTokens:   cfg.Answer.MaxTokens,
		},
		HandleTimeout: cfg.Chat.HandleTimeout,
	}
	if a.Generator != nil && a.Store != nil {
		ucCfg.Generator = a.Generator
		ucCfg.Publisher = artifactUC.NewPublisher(a.l, a.Store, a.Signer, cfg.Artifact.PublicBaseURL)
	}
	if a.Sessions != nil {
		ucCfg.Recorder = a.Sessions
	}

	uc, err := chatUC.New(a.l, ucCfg)
	if err != nil {
		return nil, errors.Join(errors.New("app: chat"), err)
	}
	return uc, nil
}
