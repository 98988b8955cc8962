package namespace

import (
	"reflect"
	"testing"
)

func mustEntry(t *testing.T, name string, role Role, primary bool) Entry {
	t.Helper()
	e, err := NewEntry(name, role, primary, name+" docs")
	if err != nil {
		t.Fatalf("NewEntry(%q): %v", name, err)
	}
	return e
}

func testCatalog(t *testing.T) Catalog {
	t.Helper()
	c, err := NewCatalog([]Entry{
		mustEntry(t, "fes_blogs", RoleBlog, true),
		mustEntry(t, "idp_blogs", RoleBlog, false),
		mustEntry(t, "fes_pages", RoleServices, true),
		mustEntry(t, "fes_contact_details", RoleContact, true),
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func TestRole_IsValid(t *testing.T) {
	for _, r := range []Role{RoleContact, RoleServices, RoleBlog} {
		if !r.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", r)
		}
	}
	for _, r := range []Role{"", "pages", "CONTACT"} {
		if r.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", r)
		}
	}
}

func TestNewEntry_Validation(t *testing.T) {
	tests := []struct {
		name string
		ns   string
		role Role
	}{
		{"empty name", "  ", RoleBlog},
		{"delimiter in name", "a+b", RoleBlog},
		{"bad role", "fes_blogs", "news"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewEntry(tc.ns, tc.role, false, ""); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewCatalog_Validation(t *testing.T) {
	if _, err := NewCatalog(nil); err == nil {
		t.Error("expected error for empty catalog")
	}

	dup := []Entry{mustEntry(t, "a", RoleBlog, true), mustEntry(t, "a", RoleServices, true)}
	if _, err := NewCatalog(dup); err == nil {
		t.Error("expected error for duplicate names")
	}

	twoContacts := []Entry{mustEntry(t, "a", RoleContact, true), mustEntry(t, "b", RoleContact, true)}
	if _, err := NewCatalog(twoContacts); err == nil {
		t.Error("expected error for two contact namespaces")
	}
}

func TestCatalog_Accessors(t *testing.T) {
	c := testCatalog(t)

	contact, ok := c.Contact()
	if !ok || contact != "fes_contact_details" {
		t.Errorf("Contact() = %q, %v", contact, ok)
	}
	if got := len(c.ByRole(RoleBlog)); got != 2 {
		t.Errorf("ByRole(blog) len = %d, want 2", got)
	}
	primary, secondary := c.Partition()
	if len(primary) != 3 || !reflect.DeepEqual(secondary, []Name{"idp_blogs"}) {
		t.Errorf("Partition() = %v, %v", primary, secondary)
	}
	if _, ok := c.Lookup("FES_BLOGS"); ok {
		t.Error("Lookup must be case-sensitive")
	}
}

func TestParseRoute(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		raw  string
		want Route
	}{
		{"fes_blogs + idp_blogs", Route{"fes_blogs", "idp_blogs"}},
		{"fes_pages", Route{"fes_pages"}},
		{" fes_blogs+idp_blogs ", Route{"fes_blogs", "idp_blogs"}},
		{"fes_blogs + fes_blogs", Route{"fes_blogs"}},
		{"fes_blogs + unknown_namespace", Route{"fes_blogs"}},
		{"unknown_namespace", nil},
		{"", nil},
		{"fes_pages + fes_contact_details", Route{"fes_contact_details"}},
		{"fes_contact_details", Route{"fes_contact_details"}},
	}
	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			got := c.ParseRoute(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ParseRoute(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestRoute_String(t *testing.T) {
	r := Route{"fes_blogs", "idp_blogs"}
	if r.String() != "fes_blogs + idp_blogs" {
		t.Errorf("String() = %q", r.String())
	}
	if !r.Contains("idp_blogs") || r.Contains("fes_pages") {
		t.Error("Contains mismatch")
	}
}
