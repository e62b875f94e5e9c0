package gateway

import (
	"rag-intent-chat/internal/agent"
	pkgLog "rag-intent-chat/pkg/log"
)

type implGateway struct {
	l            pkgLog.Logger
	llm          generator
	registry     *agent.ToolRegistry
	maxToolSteps int
}

// New creates a Gateway over llm. registry may be nil when no tools are available.
func New(l pkgLog.Logger, llm generator, registry *agent.ToolRegistry, maxToolSteps int) Gateway {
	if maxToolSteps <= 0 {
		maxToolSteps = DefaultMaxToolSteps
	}
	return &implGateway{
		l:            l,
		llm:          llm,
		registry:     registry,
		maxToolSteps: maxToolSteps,
	}
}
