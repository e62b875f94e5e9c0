package usecase

import (
	"regexp"
	"strings"

	"rag-intent-chat/internal/chat"
)

var (
	fileTypePattern = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(chat.MarkerFileType) + `([A-Za-z0-9]+)`)
	markerPattern   = regexp.MustCompile(`(?i)` + chat.MarkerInvalidFileType + `(?:=[A-Za-z0-9]*)?|` +
		regexp.QuoteMeta(chat.MarkerFileType) + `[A-Za-z0-9]+`)
)

// parseFileMarkers finds the file-type markers by substring search. The
// invalid marker wins over a declaration; neither means no file was requested.
func parseFileMarkers(answer string) (fileType string, invalid bool) {
	if strings.Contains(strings.ToUpper(answer), chat.MarkerInvalidFileType) {
		return "", true
	}
	m := fileTypePattern.FindStringSubmatch(answer)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), false
}

// stripFileMarkers removes the markers so they are not shown to the user.
// Text on both sides of an inline marker stays separated by one space.
func stripFileMarkers(answer string) string {
	locs := markerPattern.FindAllStringIndex(answer, -1)
	if locs == nil {
		return answer
	}

	var b strings.Builder
	prev := 0
	for _, loc := range locs {
		joinSegment(&b, answer[prev:loc[0]])
		prev = loc[1]
	}
	joinSegment(&b, answer[prev:])
	return strings.TrimSpace(b.String())
}

func joinSegment(b *strings.Builder, seg string) {
	seg = strings.TrimLeft(seg, " \t")
	if b.Len() > 0 && seg != "" {
		written := b.String()
		if !strings.HasSuffix(written, "\n") && !strings.HasPrefix(seg, "\n") {
			b.WriteByte(' ')
		}
	}
	b.WriteString(strings.TrimRight(seg, " \t"))
}
