package gateway

const (
	// DefaultMaxToolSteps bounds the tool-calling loop.
	DefaultMaxToolSteps = 5

	roleAssistant = "assistant"
	roleTool      = "tool"
)
