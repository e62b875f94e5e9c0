package usecase

import (
	"regexp"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[\w-]+`)

type vote struct {
	token string
	count int
}

// tally returns the most frequent token across samples. Groups keep their
// first-occurrence order and only a strictly higher count displaces the
// leader, so ties go to the group seen first. ok is false when no token votes.
func tally(samples []string) (winner string, count int, ok bool) {
	joined := strings.ToLower(strings.Join(samples, ", "))

	var groups []vote
	index := make(map[string]int)
	for _, tok := range tokenPattern.FindAllString(joined, -1) {
		if i, seen := index[tok]; seen {
			groups[i].count++
			continue
		}
		index[tok] = len(groups)
		groups = append(groups, vote{token: tok, count: 1})
	}

	if len(groups) == 0 {
		return "", 0, false
	}

	best := groups[0]
	for _, g := range groups[1:] {
		if g.count > best.count {
			best = g
		}
	}
	return best.token, best.count, true
}
