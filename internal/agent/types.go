package agent

import (
	"context"
	"sort"

	"rag-intent-chat/pkg/llmprovider"
)

// Tool represents an agent tool that can be called by LLM.
type Tool interface {
	// Name returns the tool name (used in function calling).
	Name() string

	// Description returns what the tool does (for LLM).
	Description() string

	// Parameters returns JSON schema for tool parameters.
	Parameters() map[string]interface{}

	// Execute runs the tool with given parameters.
	Execute(ctx context.Context, params map[string]interface{}) (interface{}, error)
}

// ToolRegistry manages available tools. It is populated at startup and
// read concurrently afterwards.
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry. A later tool with the same name replaces the earlier one.
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// Len returns the number of registered tools.
func (r *ToolRegistry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.tools)
}

// List returns all registered tools sorted by name.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name() < tools[j].Name() })
	return tools
}

// ToFunctionDefinitions converts tools to LLM function calling format.
func (r *ToolRegistry) ToFunctionDefinitions() []llmprovider.Tool {
	list := r.List()
	tools := make([]llmprovider.Tool, 0, len(list))
	for _, tool := range list {
		tools = append(tools, llmprovider.Tool{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.Parameters(),
		})
	}
	return tools
}
