package usecase

import (
	"rag-intent-chat/internal/assembler"
	"rag-intent-chat/internal/document"
	"rag-intent-chat/internal/schema"
	pkgLog "rag-intent-chat/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	searcher  document.Searcher
	describer schema.Describer
	domains   map[string]assembler.Domain
}

// New creates a context Assembler. The domain table lists are fixed here.
func New(l pkgLog.Logger, searcher document.Searcher, describer schema.Describer, domains []assembler.Domain) assembler.Assembler {
	byLabel := make(map[string]assembler.Domain, len(domains))
	for _, d := range domains {
		d.Tables = append([]string(nil), d.Tables...)
		byLabel[d.Label] = d
	}
	return &implUseCase{
		l:         l,
		searcher:  searcher,
		describer: describer,
		domains:   byLabel,
	}
}
