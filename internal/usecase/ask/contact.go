package ask

import (
	"strings"

	"github.com/kailas-cloud/counsellor/internal/domain/match"
	"github.com/kailas-cloud/counsellor/internal/domain/namespace"
)

// ContactAnswer formats contact matches directly, without a model call.
// It applies only when there is at least one match and every match comes from
// the contact namespace. At most limit entries are listed.
func ContactAnswer(matches []match.Match, contact namespace.Name, org string, limit int) (string, bool) {
	if len(matches) == 0 || contact == "" {
		return "", false
	}
	for _, m := range matches {
		if m.Namespace() != contact {
			return "", false
		}
	}

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	lines := []string{"Here are " + org + " contact details that match your query:\n"}
	for _, m := range matches {
		name := m.Field(match.KeyBranchName)
		if name == "" {
			name = org + " Office"
		}
		lines = append(lines, "• "+name)
		lines = appendIf(lines, "  📍 ", m.Field(match.KeyAddress))
		lines = appendIf(lines, "  📞 ", m.Field(match.KeyPhone))
		lines = appendIf(lines, "  📧 ", m.Field(match.KeyEmail))
		lines = appendIf(lines, "  🔗 ", m.Field(match.KeyLink))
	}
	return strings.Join(lines, "\n"), true
}

func appendIf(lines []string, label, value string) []string {
	if value == "" {
		return lines
	}
	return append(lines, label+value)
}
