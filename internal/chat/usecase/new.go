package usecase

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	"rag-intent-chat/internal/artifact"
	"rag-intent-chat/internal/assembler"
	"rag-intent-chat/internal/chat"
	"rag-intent-chat/internal/gateway"
	"rag-intent-chat/internal/intent"
	"rag-intent-chat/internal/session"
	pkgLog "rag-intent-chat/pkg/log"
)

// Config is the dependency bag passed to New.
type Config struct {
	Classifier intent.Classifier
	Assembler  assembler.Assembler
	Gateway    gateway.Gateway
	// Generator and Publisher are optional; without them the artifact stage is skipped.
	Generator artifact.Generator
	Publisher artifact.Publisher
	// Recorder is optional.
	Recorder session.Recorder

	Persona       string
	Answer        gateway.Sampling
	HandleTimeout time.Duration
}

type implUseCase struct {
	l          pkgLog.Logger
	classifier intent.Classifier
	assembler  assembler.Assembler
	gw         gateway.Gateway
	generator  artifact.Generator
	publisher  artifact.Publisher
	recorder   session.Recorder
	validate   *validator.Validate

	persona       string
	answer        gateway.Sampling
	handleTimeout time.Duration
}

// New creates the chat orchestrator.
func New(l pkgLog.Logger, cfg Config) (chat.UseCase, error) {
	switch {
	case cfg.Classifier == nil:
		return nil, errors.New("chat: classifier is required")
	case cfg.Assembler == nil:
		return nil, errors.New("chat: assembler is required")
	case cfg.Gateway == nil:
		return nil, errors.New("chat: gateway is required")
	}

	answer := cfg.Answer
	answer.ResultCount = 1
	answer.ToolAutoInvoke = true

	return &implUseCase{
		l:             l,
		classifier:    cfg.Classifier,
		assembler:     cfg.Assembler,
		gw:            cfg.Gateway,
		generator:     cfg.Generator,
		publisher:     cfg.Publisher,
		recorder:      cfg.Recorder,
		validate:      newValidator(),
		persona:       cfg.Persona,
		answer:        answer,
		handleTimeout: cfg.HandleTimeout,
	}, nil
}
