package usecase

import (
	"context"
	"fmt"

	"rag-intent-chat/internal/assembler"
	"rag-intent-chat/internal/document"
	"rag-intent-chat/internal/intent"
	"rag-intent-chat/pkg/llmprovider"
)

func (uc *implUseCase) Assemble(ctx context.Context, label, utterance string) (assembler.Output, error) {
	if label == intent.LabelManual {
		return uc.assembleManual(ctx, utterance)
	}
	if d, ok := uc.domains[label]; ok {
		return uc.assembleStructured(ctx, d, utterance)
	}
	return assembler.Output{}, fmt.Errorf("%w: %s", assembler.ErrUnknownLabel, label)
}

func (uc *implUseCase) assembleManual(ctx context.Context, utterance string) (assembler.Output, error) {
	fragments, err := uc.searcher.Search(ctx, utterance)
	if err != nil {
		return assembler.Output{}, fmt.Errorf("%w: %v", assembler.ErrRetrievalFailed, err)
	}

	out := assembler.Output{Fragments: len(fragments)}
	if evidence := document.JoinChunks(fragments); evidence != "" {
		out.Messages = append(out.Messages, llmprovider.TextMessage("user", evidence))
	} else {
		uc.l.Warnf(ctx, "assembler.usecase.assembleManual: search returned no passages")
	}
	out.Messages = append(out.Messages, llmprovider.TextMessage("user", utterance))
	return out, nil
}

func (uc *implUseCase) assembleStructured(ctx context.Context, d assembler.Domain, utterance string) (assembler.Output, error) {
	doc, err := uc.describer.Describe(ctx, d.Tables)
	if err != nil {
		return assembler.Output{}, fmt.Errorf("%w: %v", assembler.ErrRetrievalFailed, err)
	}
	schemaJSON, err := doc.JSON()
	if err != nil {
		return assembler.Output{}, fmt.Errorf("%w: %v", assembler.ErrRetrievalFailed, err)
	}

	return assembler.Output{
		Messages: []llmprovider.Message{
			llmprovider.TextMessage("system", structuredPrompt(d.Label, d.Description, schemaJSON)),
			llmprovider.TextMessage("user", utterance),
		},
		Structured: &assembler.StructuredQueryContext{
			Domain: d.Label,
			Tables: append([]string(nil), d.Tables...),
			Schema: schemaJSON,
		},
	}, nil
}
