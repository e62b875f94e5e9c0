package usecase

import (
	"github.com/google/uuid"

	"rag-intent-chat/internal/session"
	"rag-intent-chat/internal/session/repository"
	"rag-intent-chat/pkg/log"
)

// implUseCase is the private implementation of session.UseCase.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	newID func() string
}

// New creates a new session UseCase implementation.
func New(repo repository.Repository, l log.Logger) session.UseCase {
	return &implUseCase{
		repo:  repo,
		l:     l,
		newID: uuid.NewString,
	}
}
