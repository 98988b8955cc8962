package ask

import (
	"cmp"
	"slices"

	"github.com/kailas-cloud/counsellor/internal/domain/match"
)

// Aggregate orders matches by descending score and keeps at most limit of them.
// Equal scores keep their input order. limit <= 0 disables the cap.
func Aggregate(matches []match.Match, limit int) []match.Match {
	out := slices.Clone(matches)
	slices.SortStableFunc(out, func(a, b match.Match) int {
		return cmp.Compare(b.Score(), a.Score())
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
