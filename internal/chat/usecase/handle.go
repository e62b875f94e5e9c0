package usecase

import (
	"context"
	"errors"
	"fmt"

	"rag-intent-chat/internal/artifact"
	"rag-intent-chat/internal/chat"
	"rag-intent-chat/internal/gateway"
	"rag-intent-chat/internal/intent"
	"rag-intent-chat/internal/model"
	"rag-intent-chat/pkg/llmprovider"
)

func (uc *implUseCase) Handle(ctx context.Context, input chat.HandleInput) (chat.HandleOutput, error) {
	if err := uc.validateInput(input); err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Handle: %v", err)
		return chat.HandleOutput{}, err
	}

	if uc.handleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.handleTimeout)
		defer cancel()
	}

	t := newTracker(uc.l)
	var usage llmprovider.Usage

	res := uc.classifier.Classify(ctx, input.Prompt)
	usage.Add(&res.Usage)
	if res.Degraded {
		uc.l.Warnf(ctx, "chat.usecase.Handle: %v, continuing as %s", chat.ErrClassificationDegraded, res.Label)
	}
	uc.l.Infof(ctx, "chat.usecase.Handle: label=%s wants_artifact=%t votes=%d", res.Label, res.WantsArtifact, res.Votes)
	t.enter(ctx, stateClassified)

	conv := uc.buildContext(ctx, res.Label, input.Prompt)
	t.enter(ctx, stateContextBuilt)

	out := chat.HandleOutput{Label: res.Label, WantsArtifact: res.WantsArtifact}

	answer, err := uc.generateAnswer(ctx, conv, res.WantsArtifact, &usage)
	t.enter(ctx, stateAnswered)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.Handle: %v", err)
		out.AnswerText = chat.ApologyAnswer
		return uc.finish(ctx, t, input, out, usage), nil
	}
	out.AnswerText = answer
	if res.WantsArtifact {
		out.AnswerText = stripFileMarkers(answer)
		if out.AnswerText == "" {
			out.AnswerText = chat.FileOnlyAnswer
		}
	}

	fileType, ok := uc.artifactRequested(ctx, res, answer)
	if !ok {
		return uc.finish(ctx, t, input, out, usage), nil
	}

	t.enter(ctx, stateArtifactPending)
	uri, err := uc.produceArtifact(ctx, input.Prompt, out.AnswerText, fileType)
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.Handle: %v", err)
		return uc.finish(ctx, t, input, out, usage), nil
	}
	out.ArtifactURI = uri
	t.enter(ctx, stateArtifactAttached)

	return uc.finish(ctx, t, input, out, usage), nil
}

// buildContext seeds the conversation for the classified label. Retrieval
// failures degrade to the utterance alone; the answer call may still use tools.
func (uc *implUseCase) buildContext(ctx context.Context, label, utterance string) *conversationState {
	conv := &conversationState{}

	if label == intent.LabelNotFound {
		_ = conv.appendContext(
			llmprovider.TextMessage(roleSystem, chat.UnresolvedInstruction),
			llmprovider.TextMessage(roleUser, utterance),
		)
		return conv
	}

	assembled, err := uc.assembler.Assemble(ctx, label, utterance)
	if err == nil {
		err = conv.appendContext(assembled.Messages...)
	}
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.buildContext: label %s: %v", label, err)
		conv = &conversationState{}
		_ = conv.appendContext(llmprovider.TextMessage(roleUser, utterance))
		return conv
	}

	if assembled.Structured != nil {
		uc.l.Debugf(ctx, "chat.usecase.buildContext: schema for %s over %d tables", assembled.Structured.Domain, len(assembled.Structured.Tables))
	} else {
		uc.l.Debugf(ctx, "chat.usecase.buildContext: %d passages", assembled.Fragments)
	}
	return conv
}

func (uc *implUseCase) generateAnswer(ctx context.Context, conv *conversationState, wantsArtifact bool, usage *llmprovider.Usage) (string, error) {
	system := uc.persona
	if wantsArtifact {
		if system != "" {
			system += "\n\n"
		}
		system += chat.ArtifactInstruction
	}

	out, err := uc.gw.Complete(ctx, gateway.CompleteInput{
		System:   system,
		Messages: conv.messages,
		Sampling: uc.answer,
	})
	usage.Add(&out.Usage)
	if err != nil {
		return "", fmt.Errorf("%w: %w", chat.ErrAnswerGenerationFailed, err)
	}
	if out.Text() == "" {
		return "", fmt.Errorf("%w: %w", chat.ErrAnswerGenerationFailed, gateway.ErrEmptyCompletion)
	}
	if out.ToolCalls > 0 {
		uc.l.Infof(ctx, "chat.usecase.generateAnswer: %d tool calls via %s/%s", out.ToolCalls, out.Provider, out.Model)
	}
	return out.Text(), nil
}

func (uc *implUseCase) artifactRequested(ctx context.Context, res intent.Result, answer string) (string, bool) {
	if !res.WantsArtifact {
		return "", false
	}
	fileType, invalid := parseFileMarkers(answer)
	switch {
	case invalid:
		uc.l.Infof(ctx, "chat.usecase.Handle: answer declared an invalid file type, skipping artifact")
		return "", false
	case fileType == "":
		uc.l.Infof(ctx, "chat.usecase.Handle: no file type declared, skipping artifact")
		return "", false
	case uc.generator == nil || uc.publisher == nil:
		uc.l.Warnf(ctx, "chat.usecase.Handle: artifact stage not configured, skipping %s", fileType)
		return "", false
	}
	return fileType, true
}

func (uc *implUseCase) produceArtifact(ctx context.Context, utterance, answer, fileType string) (string, error) {
	gen := uc.generator.Generate(ctx, artifact.GenerateInput{
		AnswerText: answer,
		Utterance:  utterance,
		FileType:   fileType,
	})
	if !gen.Success {
		err := gen.Err
		if err == nil {
			err = chat.ErrArtifactGenerationFailed
		}
		return "", err
	}

	uri, err := uc.publisher.Publish(ctx, gen.Data, gen.AgentID, fileType)
	if err != nil {
		if !errors.Is(err, chat.ErrArtifactPublishFailed) {
			err = fmt.Errorf("%w: %w", chat.ErrArtifactPublishFailed, err)
		}
		return "", err
	}
	return uri, nil
}

func (uc *implUseCase) finish(ctx context.Context, t *tracker, input chat.HandleInput, out chat.HandleOutput, usage llmprovider.Usage) chat.HandleOutput {
	t.enter(ctx, stateDone)
	out.Usage = chat.Usage{
		InputTokens:  usage.InputTokens,
		OutputTokens: usage.OutputTokens,
		TotalTokens:  usage.TotalTokens,
	}
	uc.l.Infof(ctx, "chat.usecase.Handle: token usage input=%d output=%d total=%d",
		usage.InputTokens, usage.OutputTokens, usage.TotalTokens)

	uc.record(ctx, input, out)
	return out
}

// record persists the turn best effort. It outlives a cancelled request.
func (uc *implUseCase) record(ctx context.Context, input chat.HandleInput, out chat.HandleOutput) {
	if uc.recorder == nil {
		return
	}
	rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	err := uc.recorder.RecordTurn(rctx, input.Scope(), model.Turn{
		Prompt:       input.Prompt,
		Completion:   out.AnswerText,
		Label:        out.Label,
		ArtifactURI:  out.ArtifactURI,
		InputTokens:  out.Usage.InputTokens,
		OutputTokens: out.Usage.OutputTokens,
		TotalTokens:  out.Usage.TotalTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.record: %v", err)
	}
}
