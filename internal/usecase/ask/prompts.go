package ask

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/counsellor/internal/domain/namespace"
)

// routerPrompt renders the classification directive from the catalog.
func routerPrompt(org string, cat namespace.Catalog) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a routing assistant for %s Bot.\n", org)
	b.WriteString("Decide which dataset(s) should be searched for the user's query.\n\nOptions:\n")

	width := 0
	for _, n := range cat.Names() {
		width = max(width, len(n))
	}
	for _, e := range cat.Entries() {
		fmt.Fprintf(&b, "- %-*s (%s)\n", width, e.Name(), e.Description())
	}

	b.WriteString("\nRules:\n")
	b.WriteString("- Return ONLY the dataset name(s) separated by ' + ' when multiple apply.\n")
	if contact, ok := cat.Contact(); ok {
		fmt.Fprintf(&b, "- If the query is contact/location/phone/email/branch/office oriented → include ONLY %s.\n", contact)
	}
	if services := entryNames(cat.ByRole(namespace.RoleServices)); len(services) > 0 {
		fmt.Fprintf(&b, "- If the query is specifically about %s services/process → %s.\n",
			org, strings.Join(services, " or "))
	}
	if blogs := cat.ByRole(namespace.RoleBlog); len(blogs) > 0 {
		fmt.Fprintf(&b, "- If the query is general guidance/scholarships/testing → %s",
			strings.Join(entryNames(blogs), " and/or "))
		if preferred, ok := firstPrimary(blogs); ok && len(blogs) > 1 {
			fmt.Fprintf(&b, " (prefer including %s if unsure)", preferred)
		}
		b.WriteString(".\n")
	}
	b.WriteString("- No extra words.\n")
	return b.String()
}

// answerPrompt renders the grounded-generation directive.
func answerPrompt(org string, cat namespace.Catalog) string {
	primary, secondary := cat.Partition()

	var b strings.Builder
	fmt.Fprintf(&b, "You are %s’s virtual counsellor.\n", org)
	b.WriteString("Answer clearly and concisely using ONLY the provided context.\n")
	if len(primary) > 0 {
		fmt.Fprintf(&b, "Prioritize %s sources (%s).", org, joinNames(primary, ", "))
	}
	if len(secondary) > 0 {
		fmt.Fprintf(&b, " You may use secondary sources (%s) to enrich neutral guidance, "+
			"but never promote them; keep the advice centered on %s.", joinNames(secondary, ", "), org)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "If the answer isn’t in the context, say you don’t have that information "+
		"and suggest contacting %s (use contact details from context if present).\n", org)
	b.WriteString("When relevant, mention the source title briefly in-line.\n")
	b.WriteString("Be friendly, precise, and avoid speculation.\n")
	return b.String()
}

func userMessage(query, contextText string) string {
	return fmt.Sprintf("User query:\n%s\n\nContext:\n%s", query, contextText)
}

func entryNames(entries []namespace.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = string(e.Name())
	}
	return out
}

func firstPrimary(entries []namespace.Entry) (namespace.Name, bool) {
	for _, e := range entries {
		if e.Primary() {
			return e.Name(), true
		}
	}
	return "", false
}

func joinNames(names []namespace.Name, sep string) string {
	return strings.Join(namespace.Route(names).Strings(), sep)
}
