package usecase

import (
	"context"
	"strings"

	"rag-intent-chat/internal/gateway"
	"rag-intent-chat/internal/intent"
	"rag-intent-chat/pkg/llmprovider"
)

func (uc *implUseCase) Classify(ctx context.Context, utterance string) intent.Result {
	out, err := uc.gw.Complete(ctx, gateway.CompleteInput{
		System:   uc.prompt,
		Messages: []llmprovider.Message{llmprovider.TextMessage("user", utterance)},
		Sampling: gateway.Sampling{
			Temperature: uc.temperature,
			ResultCount: uc.samples,
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "intent.usecase.Classify: %v: %v", intent.ErrClassificationDegraded, err)
		return intent.Result{Label: intent.LabelNotFound, Degraded: true}
	}

	samples := make([]string, 0, len(out.Completions))
	for _, c := range out.Completions {
		samples = append(samples, c.Text)
	}

	result := uc.resolve(samples)
	result.Usage = out.Usage

	uc.l.Infof(ctx, "intent.usecase.Classify: label=%s wants_artifact=%t votes=%d/%d",
		result.Label, result.WantsArtifact, result.Votes, len(samples))
	return result
}

// resolve reduces raw samples to a Result. The artifact suffix is stripped
// before the label is checked against the taxonomy.
func (uc *implUseCase) resolve(samples []string) intent.Result {
	winner, votes, ok := tally(samples)
	if !ok {
		return intent.Result{Label: intent.LabelNotFound}
	}

	result := intent.Result{Label: winner, Votes: votes}
	if base, found := strings.CutSuffix(winner, intent.ArtifactSuffix); found {
		result.Label = base
		result.WantsArtifact = true
	}

	if !uc.known[result.Label] {
		result.Label = intent.LabelNotFound
	}
	return result
}
