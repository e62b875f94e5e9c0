package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rag-intent-chat/internal/gateway"
	"rag-intent-chat/internal/intent"
	"rag-intent-chat/pkg/llmprovider"
	pkgLog "rag-intent-chat/pkg/log"
)

type fakeGateway struct {
	texts  []string
	err    error
	inputs []gateway.CompleteInput
}

func (f *fakeGateway) Complete(ctx context.Context, input gateway.CompleteInput) (gateway.CompleteOutput, error) {
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return gateway.CompleteOutput{}, f.err
	}
	out := gateway.CompleteOutput{Usage: llmprovider.Usage{InputTokens: 100, OutputTokens: 3, TotalTokens: 103}}
	for _, t := range f.texts {
		out.Completions = append(out.Completions, gateway.Completion{Text: t})
	}
	return out, nil
}

var testCategories = []intent.Category{
	{Label: "customer", Description: "questions about customers", Examples: []string{"Who handles Contoso?"}},
	{Label: "product", Description: "questions about products."},
}

func newClassifier(gw gateway.Gateway) *implUseCase {
	return New(pkgLog.NewNop(), gw, Config{
		Samples:     3,
		Temperature: 0.9,
		Categories:  testCategories,
	}).(*implUseCase)
}

func TestTally(t *testing.T) {
	tests := []struct {
		name    string
		samples []string
		want    string
		count   int
		ok      bool
	}{
		{name: "majority", samples: []string{"alpha", "alpha", "beta"}, want: "alpha", count: 2, ok: true},
		{name: "tie goes to first group", samples: []string{"alpha", "beta"}, want: "alpha", count: 1, ok: true},
		{name: "tie order follows input", samples: []string{"beta", "alpha"}, want: "beta", count: 1, ok: true},
		{name: "later group needs strictly more", samples: []string{"beta", "alpha", "alpha", "beta", "alpha"}, want: "alpha", count: 3, ok: true},
		{name: "case folded", samples: []string{"Manual", "MANUAL", "customer"}, want: "manual", count: 2, ok: true},
		{name: "suffix kept in token", samples: []string{"customer-image", "customer-image", "customer"}, want: "customer-image", count: 2, ok: true},
		{name: "underscore kept in token", samples: []string{"not_found", "not_found", "manual"}, want: "not_found", count: 2, ok: true},
		{name: "short tokens vote", samples: []string{"a manual", "a manual", "a"}, want: "a", count: 3, ok: true},
		{name: "punctuation splits", samples: []string{"manual.", "(manual)", "product!"}, want: "manual", count: 2, ok: true},
		{name: "empty", samples: []string{"", " ", "."}, ok: false},
		{name: "no samples", samples: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count, ok := tally(tt.samples)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.count, count)
		})
	}
}

func TestTally_Deterministic(t *testing.T) {
	samples := []string{"alpha", "beta"}
	first, _, _ := tally(samples)
	for i := 0; i < 50; i++ {
		got, _, _ := tally(samples)
		require.Equal(t, first, got)
	}
}

func TestClassify_KnownLabelWithoutSuffix(t *testing.T) {
	for _, label := range []string{"manual", "customer", "product", "not_found"} {
		t.Run(label, func(t *testing.T) {
			gw := &fakeGateway{texts: []string{label, label, "manual"}}
			got := newClassifier(gw).Classify(context.Background(), "question")

			assert.Equal(t, label, got.Label)
			assert.False(t, got.WantsArtifact)
			assert.False(t, got.Degraded)
		})
	}
}

func TestClassify_ArtifactSuffix(t *testing.T) {
	gw := &fakeGateway{texts: []string{"customer-image", "customer-image", "customer"}}
	got := newClassifier(gw).Classify(context.Background(), "Plot customers per salesperson as a bar chart and save as PPT")

	assert.Equal(t, "customer", got.Label)
	assert.True(t, got.WantsArtifact)
	assert.True(t, got.IsStructured())
	assert.Equal(t, 2, got.Votes)
	assert.Equal(t, 103, got.Usage.TotalTokens)
}

func TestClassify_UnknownLabel(t *testing.T) {
	t.Run("plain", func(t *testing.T) {
		gw := &fakeGateway{texts: []string{"weather", "weather", "manual"}}
		got := newClassifier(gw).Classify(context.Background(), "q")
		assert.Equal(t, intent.LabelNotFound, got.Label)
		assert.False(t, got.WantsArtifact)
	})

	t.Run("suffixed", func(t *testing.T) {
		gw := &fakeGateway{texts: []string{"weather-image", "weather-image", "manual"}}
		got := newClassifier(gw).Classify(context.Background(), "q")
		assert.Equal(t, intent.LabelNotFound, got.Label)
		assert.True(t, got.WantsArtifact)
	})

	t.Run("no tokens", func(t *testing.T) {
		gw := &fakeGateway{texts: []string{"", "", ""}}
		got := newClassifier(gw).Classify(context.Background(), "q")
		assert.Equal(t, intent.LabelNotFound, got.Label)
		assert.False(t, got.Degraded)
	})
}

func TestClassify_GatewayErrorDegrades(t *testing.T) {
	gw := &fakeGateway{err: errors.New("rate limited")}
	got := newClassifier(gw).Classify(context.Background(), "q")

	assert.Equal(t, intent.Result{Label: intent.LabelNotFound, Degraded: true}, got)
}

func TestClassify_RequestShape(t *testing.T) {
	gw := &fakeGateway{texts: []string{"manual"}}
	newClassifier(gw).Classify(context.Background(), "How do I change the cabin air filter?")

	require.Len(t, gw.inputs, 1)
	in := gw.inputs[0]
	assert.Equal(t, 3, in.Sampling.ResultCount)
	assert.Equal(t, 0.9, in.Sampling.Temperature)
	assert.False(t, in.Sampling.ToolAutoInvoke)
	require.Len(t, in.Messages, 1)
	assert.Equal(t, "How do I change the cabin air filter?", in.Messages[0].Text())

	for _, want := range []string{"- manual:", "- customer: questions about customers.", "- product: questions about products.", "- not_found:", "-image", "Who handles Contoso?"} {
		assert.True(t, strings.Contains(in.System, want), "prompt missing %q", want)
	}
}

func TestNew_DefaultSamples(t *testing.T) {
	gw := &fakeGateway{texts: []string{"manual"}}
	New(pkgLog.NewNop(), gw, Config{}).Classify(context.Background(), "q")
	assert.Equal(t, intent.DefaultSamples, gw.inputs[0].Sampling.ResultCount)
}
