package intent

import "context"

// Classifier maps an utterance to exactly one taxonomy label.
type Classifier interface {
	// Classify never fails. A gateway failure yields Result{Label: LabelNotFound, Degraded: true}.
	Classify(ctx context.Context, utterance string) Result
}
