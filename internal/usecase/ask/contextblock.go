package ask

import (
	"strings"

	"github.com/kailas-cloud/counsellor/internal/domain/match"
)

const blockSeparator = "--------"

// BuildContext renders matches into the text block handed to the answer model.
// Each snippet is cut to snippetChars and the whole block to maxChars (in runes).
func BuildContext(matches []match.Match, snippetChars, maxChars int) string {
	var lines []string
	for _, m := range matches {
		header := "[" + string(m.Namespace()) + "] " + m.Title()
		if link := m.Link(); link != "" {
			header += " — " + link
		}
		lines = append(lines, header)

		lines = appendIf(lines, "Address: ", m.Field(match.KeyAddress))
		lines = appendIf(lines, "Phone: ", m.Field(match.KeyPhone))
		lines = appendIf(lines, "Email: ", m.Field(match.KeyEmail))

		text := strings.Join(strings.Fields(m.FirstField(match.KeyChunk, match.KeyContent, match.KeyIntro)), " ")
		if snippet := truncateRunes(text, snippetChars); snippet != "" {
			lines = append(lines, snippet)
		}
		lines = append(lines, blockSeparator)
	}

	return truncateRunes(strings.Join(lines, "\n"), maxChars)
}

// truncateRunes cuts s to at most n characters. n <= 0 leaves s intact.
func truncateRunes(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
