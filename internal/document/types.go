package document

import "strings"

// Fragment is one ranked manual chunk.
type Fragment struct {
	Title string
	Chunk string
	Score float64
}

// JoinChunks concatenates fragment chunks in rank order, one per line.
func JoinChunks(fragments []Fragment) string {
	parts := make([]string, 0, len(fragments))
	for _, f := range fragments {
		if c := strings.TrimSpace(f.Chunk); c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, "\n")
}
