package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"rag-intent-chat/internal/artifact"
	pkgLog "rag-intent-chat/pkg/log"
)

// GeneratorConfig bounds the agent run.
type GeneratorConfig struct {
	PollInterval time.Duration
	MaxWait      time.Duration
	Model        string
}

type implGenerator struct {
	l            pkgLog.Logger
	client       artifact.AgentClient
	pollInterval time.Duration
	maxWait      time.Duration
	model        string
	now          func() time.Time
	newID        func() string

	mu      sync.Mutex
	closed  bool
	cleanup sync.WaitGroup
}

// NewGenerator creates an artifact Generator over a code-execution agent API.
func NewGenerator(l pkgLog.Logger, client artifact.AgentClient, cfg GeneratorConfig) artifact.Generator {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = artifact.DefaultPollInterval
	}
	if cfg.MaxWait <= 0 {
		cfg.MaxWait = artifact.DefaultMaxWait
	}
	return &implGenerator{
		l:            l,
		client:       client,
		pollInterval: cfg.PollInterval,
		maxWait:      cfg.MaxWait,
		model:        cfg.Model,
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

type implPublisher struct {
	l             pkgLog.Logger
	store         artifact.Store
	signer        artifact.Signer
	publicBaseURL string
}

// NewPublisher creates an artifact Publisher. publicBaseURL is the externally
// reachable root of this service, without a trailing slash.
func NewPublisher(l pkgLog.Logger, store artifact.Store, signer artifact.Signer, publicBaseURL string) artifact.Publisher {
	return &implPublisher{
		l:             l,
		store:         store,
		signer:        signer,
		publicBaseURL: publicBaseURL,
	}
}
