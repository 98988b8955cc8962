package match

import "testing"

func TestNew_NilMetadata(t *testing.T) {
	m := New("fes_blogs", "id-1", 0.5, nil)
	if m.Metadata() == nil {
		t.Fatal("Metadata() must never be nil")
	}
	if len(m.Metadata()) != 0 {
		t.Errorf("Metadata() = %v, want empty", m.Metadata())
	}
	if m.Namespace() != "fes_blogs" || m.ID() != "id-1" || m.Score() != 0.5 {
		t.Errorf("accessors mismatch: %+v", m)
	}
}

func TestZeroValue_Metadata(t *testing.T) {
	var m Match
	if m.Metadata() == nil {
		t.Fatal("zero Match Metadata() must never be nil")
	}
	if m.Field(KeyTitle) != "" {
		t.Error("zero Match Field() must be empty")
	}
}

func TestField_Heterogeneous(t *testing.T) {
	m := New("ns", "id", 1, map[string]any{
		"title":  "Study in UK",
		"empty":  "",
		"nil":    nil,
		"phone":  4211111337,
		"ok":     true,
		"mobile": float64(923001234567),
		"lat":    31.5204,
	})
	tests := map[string]string{
		"title":   "Study in UK",
		"empty":   "",
		"nil":     "",
		"missing": "",
		"phone":   "4211111337",
		"ok":      "true",
		"mobile":  "923001234567",
		"lat":     "31.5204",
	}
	for key, want := range tests {
		if got := m.Field(key); got != want {
			t.Errorf("Field(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestTitle_Fallbacks(t *testing.T) {
	tests := []struct {
		name string
		meta map[string]any
		want string
	}{
		{"title", map[string]any{"title": "T", "branch_name": "B", "slug": "s"}, "T"},
		{"branch", map[string]any{"branch_name": "Lahore", "slug": "s"}, "Lahore"},
		{"slug", map[string]any{"slug": "s"}, "s"},
		{"empty title skipped", map[string]any{"title": "", "slug": "s"}, "s"},
		{"untitled", nil, "Untitled"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := New("ns", "id", 0, tc.meta).Title(); got != tc.want {
				t.Errorf("Title() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPageKey_Precedence(t *testing.T) {
	tests := []struct {
		name string
		meta map[string]any
		want string
	}{
		{"slug wins", map[string]any{"slug": "s", "link": "l", "url": "u", "title": "t"}, "s"},
		{"link", map[string]any{"link": "l", "url": "u", "title": "t"}, "l"},
		{"url", map[string]any{"url": "u", "title": "t"}, "u"},
		{"title", map[string]any{"title": "t"}, "t"},
		{"branch name", map[string]any{"branch_name": "Karachi"}, "Karachi"},
		{"untitled", map[string]any{}, "Untitled"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := New("ns", "id", 0, tc.meta).PageKey(); got != tc.want {
				t.Errorf("PageKey() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestLink(t *testing.T) {
	if got := New("ns", "id", 0, map[string]any{"url": "u"}).Link(); got != "u" {
		t.Errorf("Link() = %q, want url fallback", got)
	}
	if got := New("ns", "id", 0, map[string]any{"link": "l", "url": "u"}).Link(); got != "l" {
		t.Errorf("Link() = %q, want link", got)
	}
}

func TestSourceRef(t *testing.T) {
	m := New("ns", "id", 0, map[string]any{"title": "IELTS tips", "source": "idp", "link": "https://x"})
	if got := m.SourceRef(); got != "IELTS tips [idp] (https://x)" {
		t.Errorf("SourceRef() = %q", got)
	}
	if got := New("ns", "id", 0, nil).SourceRef(); got != "Untitled" {
		t.Errorf("SourceRef() = %q", got)
	}
}
