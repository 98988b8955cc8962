package match

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/counsellor/internal/domain/namespace"
)

// Metadata keys read by the pipeline.
const (
	KeyTitle      = "title"
	KeySlug       = "slug"
	KeyLink       = "link"
	KeyURL        = "url"
	KeySource     = "source"
	KeyBranchName = "branch_name"
	KeyAddress    = "address"
	KeyPhone      = "phone"
	KeyEmail      = "email"
	KeyChunk      = "chunk"
	KeyContent    = "content"
	KeyIntro      = "intro"
)

// untitled is the display title of a match with no naming metadata.
const untitled = "Untitled"

// Match is a single retrieved chunk. It is an immutable value.
type Match struct {
	namespace namespace.Name
	id        string
	score     float64
	metadata  map[string]any
}

// New creates a Match. Nil metadata becomes an empty map.
func New(ns namespace.Name, id string, score float64, metadata map[string]any) Match {
	if metadata == nil {
		metadata = map[string]any{}
	}
	return Match{namespace: ns, id: id, score: score, metadata: metadata}
}

// Namespace returns the owning partition.
func (m Match) Namespace() namespace.Name { return m.namespace }

// ID returns the opaque chunk identifier.
func (m Match) ID() string { return m.id }

// Score returns the relevance score (higher is more relevant).
func (m Match) Score() float64 { return m.score }

// Metadata returns the metadata map (never nil).
func (m Match) Metadata() map[string]any {
	if m.metadata == nil {
		return map[string]any{}
	}
	return m.metadata
}

// Field returns a metadata value rendered as text.
// Missing keys, nil values and empty strings all yield "".
func (m Match) Field(key string) string {
	v, ok := m.metadata[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	}
	return fmt.Sprint(v)
}

// FirstField returns the first non-empty field among keys.
func (m Match) FirstField(keys ...string) string {
	for _, k := range keys {
		if v := m.Field(k); v != "" {
			return v
		}
	}
	return ""
}

// Title returns the display title: title, branch name, slug, or "Untitled".
func (m Match) Title() string {
	if t := m.FirstField(KeyTitle, KeyBranchName, KeySlug); t != "" {
		return t
	}
	return untitled
}

// Link returns the link or url field.
func (m Match) Link() string {
	return m.FirstField(KeyLink, KeyURL)
}

// PageKey identifies the source page a chunk belongs to: slug, link, url,
// and the display title as a last resort.
func (m Match) PageKey() string {
	if k := m.FirstField(KeySlug, KeyLink, KeyURL); k != "" {
		return k
	}
	return m.Title()
}

// SourceRef renders a short citation: title, [source] and (link) when present.
func (m Match) SourceRef() string {
	parts := []string{m.Title()}
	if src := m.Field(KeySource); src != "" {
		parts = append(parts, "["+src+"]")
	}
	if link := m.Link(); link != "" {
		parts = append(parts, "("+link+")")
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
