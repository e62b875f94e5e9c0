package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rag-intent-chat/internal/artifact"
	"rag-intent-chat/pkg/assistant"
)

const (
	agentNameTimeFormat = "20060102T150405"
	cleanupTimeout      = 30 * time.Second
	cancelTimeout       = 10 * time.Second
)

const defaultInstructions = "You are a data visualisation assistant. Use the code interpreter to turn the data " +
	"you are given into the requested file. Always attach exactly one output file to your final message."

func (g *implGenerator) Generate(ctx context.Context, input artifact.GenerateInput) artifact.GenerateOutput {
	out := artifact.GenerateOutput{FileType: input.FileType}

	instructions := input.Instructions
	if instructions == "" {
		instructions = defaultInstructions
	}

	agent, err := g.client.CreateAssistant(ctx, assistant.CreateAssistantRequest{
		Name:         g.agentName(),
		Instructions: instructions,
		Model:        g.model,
	})
	if err != nil {
		return g.fail(ctx, out, fmt.Errorf("create agent: %w", err))
	}
	out.AgentID = agent.ID
	defer g.deleteAgent(ctx, agent.ID)

	thread, err := g.client.CreateThread(ctx)
	if err != nil {
		return g.fail(ctx, out, fmt.Errorf("create thread: %w", err))
	}
	if _, err := g.client.CreateMessage(ctx, thread.ID, taskPrompt(input)); err != nil {
		return g.fail(ctx, out, fmt.Errorf("post task: %w", err))
	}

	run, err := g.client.CreateRun(ctx, thread.ID, agent.ID)
	if err != nil {
		return g.fail(ctx, out, fmt.Errorf("create run: %w", err))
	}

	status, err := g.wait(ctx, thread.ID, run.ID)
	out.Status = status
	if err != nil {
		return g.fail(ctx, out, err)
	}
	if status != assistant.RunStatusCompleted {
		return g.fail(ctx, out, fmt.Errorf("%w: %s", artifact.ErrRunNotCompleted, status))
	}

	data, err := g.download(ctx, thread.ID)
	if err != nil {
		return g.fail(ctx, out, err)
	}

	out.Success = true
	out.Data = data
	g.l.Infof(ctx, "artifact.usecase.Generate: agent %s produced %d bytes", agent.ID, len(data))
	return out
}

// wait polls the run until it leaves the queued/in_progress states. It is
// bounded by maxWait and ctx; on either the run is cancelled best effort.
func (g *implGenerator) wait(ctx context.Context, threadID, runID string) (assistant.RunStatus, error) {
	waitCtx, cancel := context.WithTimeout(ctx, g.maxWait)
	defer cancel()

	ticker := time.NewTicker(g.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-waitCtx.Done():
			g.cancelRun(ctx, threadID, runID)
			return "", fmt.Errorf("%w: %v", artifact.ErrRunTimeout, waitCtx.Err())
		case <-ticker.C:
		}

		run, err := g.client.GetRun(waitCtx, threadID, runID)
		if err != nil {
			if waitCtx.Err() != nil {
				continue
			}
			g.cancelRun(ctx, threadID, runID)
			return "", fmt.Errorf("poll run: %w", err)
		}

		if run.Status.Pending() {
			continue
		}
		if run.Status == assistant.RunStatusRequiresAction {
			g.cancelRun(ctx, threadID, runID)
		}
		if run.LastError != nil {
			g.l.Warnf(ctx, "artifact.usecase.wait: run %s %s: %s", runID, run.Status, run.LastError.Message)
		}
		return run.Status, nil
	}
}

// download fetches the first file of the newest message that carries one.
func (g *implGenerator) download(ctx context.Context, threadID string) ([]byte, error) {
	messages, err := g.client.ListMessages(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	for _, m := range messages {
		ids := m.FileIDs()
		if len(ids) == 0 {
			continue
		}
		data, err := g.client.FileContent(ctx, ids[0])
		if err != nil {
			return nil, fmt.Errorf("download file %s: %w", ids[0], err)
		}
		if len(data) == 0 {
			return nil, artifact.ErrEmptyData
		}
		return data, nil
	}
	return nil, artifact.ErrNoFile
}

func (g *implGenerator) fail(ctx context.Context, out artifact.GenerateOutput, err error) artifact.GenerateOutput {
	g.l.Warnf(ctx, "artifact.usecase.Generate: %v", err)
	out.Success = false
	out.Data = nil
	out.Err = fmt.Errorf("%w: %w", artifact.ErrGenerationFailed, err)
	return out
}

func (g *implGenerator) cancelRun(ctx context.Context, threadID, runID string) {
	cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cancelTimeout)
	defer cancel()
	if err := g.client.CancelRun(cctx, threadID, runID); err != nil {
		g.l.Warnf(ctx, "artifact.usecase.cancelRun: run %s: %v", runID, err)
	}
}

// deleteAgent removes the agent in the background. Shutdown waits for it;
// once Shutdown has started the delete runs inline instead.
func (g *implGenerator) deleteAgent(ctx context.Context, agentID string) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		g.removeAgent(ctx, agentID)
		return
	}
	g.cleanup.Add(1)
	g.mu.Unlock()

	go func() {
		defer g.cleanup.Done()
		g.removeAgent(ctx, agentID)
	}()
}

func (g *implGenerator) removeAgent(ctx context.Context, agentID string) {
	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()
	if err := g.client.DeleteAssistant(dctx, agentID); err != nil {
		g.l.Warnf(dctx, "artifact.usecase.deleteAgent: agent %s: %v", agentID, err)
	}
}

func (g *implGenerator) Shutdown(ctx context.Context) error {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()

	done := make(chan struct{})
	go func() {
		g.cleanup.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (g *implGenerator) agentName() string {
	id := strings.ReplaceAll(g.newID(), "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s-%s-%s", artifact.AgentNamePrefix, g.now().UTC().Format(agentNameTimeFormat), id)
}

func taskPrompt(input artifact.GenerateInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Create a %s file for the following request.\n\n", strings.ToUpper(input.FileType))
	fmt.Fprintf(&sb, "Request:\n%s\n\n", input.Utterance)
	fmt.Fprintf(&sb, "Data and findings to use:\n%s\n", input.AnswerText)
	return sb.String()
}
