package intent

import "rag-intent-chat/pkg/llmprovider"

// Category is one structured-query domain of the taxonomy.
type Category struct {
	Label       string
	Description string
	Examples    []string
}

// Result is the outcome of one classification.
type Result struct {
	// Label is the suffix-free taxonomy label used for branching.
	Label string
	// WantsArtifact is set when the winning vote carried ArtifactSuffix.
	WantsArtifact bool
	// Degraded is set when the classifier call failed.
	Degraded bool
	// Votes is the winning vote count.
	Votes int
	Usage llmprovider.Usage
}

// IsStructured reports whether the result targets a structured-query domain.
func (r Result) IsStructured() bool {
	return r.Label != LabelManual && r.Label != LabelNotFound
}
