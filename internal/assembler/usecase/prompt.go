package usecase

import (
	"fmt"

	"rag-intent-chat/internal/agent/tools"
)

func structuredPrompt(domain, description, schemaJSON string) string {
	return fmt.Sprintf(`You are a friendly assistant that answers questions from the company database.
The request is about %s: %s.
Follow these steps:
1. Write one PostgreSQL SELECT query that answers the question, using only the tables and columns in the schema below.
2. Execute it with the %s tool.
3. Summarize the returned rows for the user without using external knowledge. Use bullet points where possible.
If the schema cannot answer the question, say so and ask for more details. Don't guess.

Schema:
%s`, domain, description, tools.QueryToolName(domain), schemaJSON)
}
