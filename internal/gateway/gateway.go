package gateway

import (
	"context"
	"fmt"

	"rag-intent-chat/pkg/llmprovider"
)

func (g *implGateway) Complete(ctx context.Context, input CompleteInput) (CompleteOutput, error) {
	if len(input.Messages) == 0 {
		return CompleteOutput{}, ErrEmptyConversation
	}

	count := input.Sampling.ResultCount
	if count < 1 {
		count = 1
	}

	if input.Sampling.ToolAutoInvoke && g.registry.Len() > 0 {
		if count > 1 {
			return CompleteOutput{}, ErrToolsWithMultipleResults
		}
		return g.completeWithTools(ctx, input)
	}
	return g.sample(ctx, input, count)
}

func (g *implGateway) request(input CompleteInput, messages []llmprovider.Message, candidates int) *llmprovider.Request {
	req := &llmprovider.Request{
		Messages:       messages,
		Temperature:    input.Sampling.Temperature,
		TopP:           input.Sampling.TopP,
		CandidateCount: candidates,
		MaxTokens:      input.Sampling.MaxTokens,
	}
	if input.System != "" {
		system := llmprovider.TextMessage("system", input.System)
		req.SystemInstruction = &system
	}
	return req
}

// sample collects count completions. Providers that return fewer candidates
// than asked for are called again for the remainder, at most count times.
func (g *implGateway) sample(ctx context.Context, input CompleteInput, count int) (CompleteOutput, error) {
	var out CompleteOutput

	for call := 0; call < count && len(out.Completions) < count; call++ {
		remaining := count - len(out.Completions)
		resp, err := g.llm.GenerateContent(ctx, g.request(input, input.Messages, remaining))
		if err != nil {
			return CompleteOutput{}, fmt.Errorf("gateway: generate: %w", err)
		}

		out.Usage.Add(resp.Usage)
		out.Provider, out.Model = resp.ProviderName, resp.ModelName
		for _, c := range resp.Candidates {
			if len(out.Completions) == count {
				break
			}
			out.Completions = append(out.Completions, Completion{Text: c.Text()})
		}
	}

	if len(out.Completions) == 0 {
		return CompleteOutput{}, ErrEmptyCompletion
	}
	if len(out.Completions) < count {
		g.l.Warnf(ctx, "gateway.sample: wanted %d completions, got %d", count, len(out.Completions))
	}
	return out, nil
}

// completeWithTools runs a reason/act/observe loop until the model answers in text.
func (g *implGateway) completeWithTools(ctx context.Context, input CompleteInput) (CompleteOutput, error) {
	var out CompleteOutput

	messages := make([]llmprovider.Message, len(input.Messages), len(input.Messages)+2*g.maxToolSteps)
	copy(messages, input.Messages)

	for step := 0; step < g.maxToolSteps; step++ {
		req := g.request(input, messages, 1)
		req.Tools = g.registry.ToFunctionDefinitions()

		resp, err := g.llm.GenerateContent(ctx, req)
		if err != nil {
			return CompleteOutput{}, fmt.Errorf("gateway: generate at step %d: %w", step+1, err)
		}
		out.Usage.Add(resp.Usage)
		out.Provider, out.Model = resp.ProviderName, resp.ModelName

		calls := resp.Content.FunctionCalls()
		if len(calls) == 0 {
			text := resp.Content.Text()
			if text == "" {
				return CompleteOutput{}, ErrEmptyCompletion
			}
			out.Completions = []Completion{{Text: text}}
			return out, nil
		}

		assistantTurn := resp.Content
		assistantTurn.Role = roleAssistant
		messages = append(messages, assistantTurn)

		for _, call := range calls {
			out.ToolCalls++
			g.l.Infof(ctx, "gateway.completeWithTools: step %d/%d calling tool %s", step+1, g.maxToolSteps, call.Name)
			messages = append(messages, llmprovider.Message{
				Role: roleTool,
				Parts: []llmprovider.Part{{
					FunctionResponse: &llmprovider.FunctionResponse{
						ID:       call.ID,
						Name:     call.Name,
						Response: g.invoke(ctx, call),
					},
				}},
			})
		}
	}

	g.l.Warnf(ctx, "gateway.completeWithTools: exceeded %d tool steps", g.maxToolSteps)
	return CompleteOutput{}, ErrToolStepsExceeded
}

func (g *implGateway) invoke(ctx context.Context, call *llmprovider.FunctionCall) interface{} {
	tool, ok := g.registry.Get(call.Name)
	if !ok {
		g.l.Warnf(ctx, "gateway.invoke: tool %s not found", call.Name)
		return map[string]string{"error": "tool not found"}
	}

	res, err := tool.Execute(ctx, call.Args)
	if err != nil {
		g.l.Warnf(ctx, "gateway.invoke: tool %s failed: %v", call.Name, err)
		return map[string]string{"error": err.Error()}
	}
	return res
}
