package ask

import "github.com/kailas-cloud/counsellor/internal/domain/match"

// Dedupe keeps the best-scoring match per source page.
// Groups appear in the order their page was first seen; on equal scores the
// earlier match wins. Applying it twice changes nothing.
func Dedupe(matches []match.Match) []match.Match {
	if len(matches) == 0 {
		return nil
	}

	pos := make(map[string]int, len(matches))
	out := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		key := m.PageKey()
		i, seen := pos[key]
		if !seen {
			pos[key] = len(out)
			out = append(out, m)
			continue
		}
		if m.Score() > out[i].Score() {
			out[i] = m
		}
	}
	return out
}
