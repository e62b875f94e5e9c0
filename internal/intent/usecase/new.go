package usecase

import (
	"rag-intent-chat/internal/gateway"
	"rag-intent-chat/internal/intent"
	pkgLog "rag-intent-chat/pkg/log"
)

// Config is the classifier sampling profile and taxonomy.
type Config struct {
	Samples     int
	Temperature float64
	Categories  []intent.Category
}

type implUseCase struct {
	l           pkgLog.Logger
	gw          gateway.Gateway
	samples     int
	temperature float64
	known       map[string]bool
	prompt      string
}

// New creates the majority-vote classifier. The system prompt is built once here.
func New(l pkgLog.Logger, gw gateway.Gateway, cfg Config) intent.Classifier {
	if cfg.Samples < 1 {
		cfg.Samples = intent.DefaultSamples
	}

	known := map[string]bool{
		intent.LabelManual:   true,
		intent.LabelNotFound: true,
	}
	for _, c := range cfg.Categories {
		known[c.Label] = true
	}

	return &implUseCase{
		l:           l,
		gw:          gw,
		samples:     cfg.Samples,
		temperature: cfg.Temperature,
		known:       known,
		prompt:      buildPrompt(cfg.Categories),
	}
}
