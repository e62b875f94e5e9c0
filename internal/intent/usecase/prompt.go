package usecase

import (
	"fmt"
	"strings"

	"rag-intent-chat/internal/intent"
)

var manualExamples = []string{
	"What type of battery does the car use?",
	"What are the major services required?",
	"How do I change the cabin air filter?",
}

func buildPrompt(categories []intent.Category) string {
	var sb strings.Builder

	sb.WriteString("Return the intent of the user. The intent must be one of the following strings:\n")
	sb.WriteString("- manual: questions answered by the product manuals.\n")
	for _, c := range categories {
		fmt.Fprintf(&sb, "- %s: %s.\n", c.Label, strings.TrimSuffix(c.Description, "."))
	}
	sb.WriteString("- not_found: use this intent if none of the above fits.\n\n")

	fmt.Fprintf(&sb, "If the user asks for a chart, image, plot, document or any file, append %q to the intent, "+
		"for example %q.\n\n", intent.ArtifactSuffix, intent.LabelManual+intent.ArtifactSuffix)

	writeExamples(&sb, intent.LabelManual, manualExamples)
	for _, c := range categories {
		writeExamples(&sb, c.Label, c.Examples)
	}

	sb.WriteString("Answer with the intent only.\nIntent:")
	return sb.String()
}

func writeExamples(sb *strings.Builder, label string, examples []string) {
	if len(examples) == 0 {
		return
	}
	fmt.Fprintf(sb, "[Examples for %s questions]\n", label)
	for _, e := range examples {
		fmt.Fprintf(sb, "User question: %s\nIntent: %s\n", e, label)
	}
	sb.WriteString("\n")
}
