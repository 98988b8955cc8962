package namespace

import (
	"fmt"
	"strings"
)

// Catalog is the fixed set of recognized namespaces, in configuration order.
type Catalog struct {
	entries []Entry
	index   map[Name]int
	contact Name
}

// NewCatalog validates entries and builds a Catalog.
// Names must be unique and at most one namespace may hold the contact role.
func NewCatalog(entries []Entry) (Catalog, error) {
	if len(entries) == 0 {
		return Catalog{}, fmt.Errorf("at least one namespace is required")
	}

	c := Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[Name]int, len(entries)),
	}
	for _, e := range entries {
		if _, dup := c.index[e.name]; dup {
			return Catalog{}, fmt.Errorf("duplicate namespace %q", e.name)
		}
		if e.role == RoleContact {
			if c.contact != "" {
				return Catalog{}, fmt.Errorf("namespaces %q and %q both have the contact role", c.contact, e.name)
			}
			c.contact = e.name
		}
		c.index[e.name] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	return c, nil
}

// Entries returns a copy of all entries.
func (c Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Names returns all namespace names.
func (c Catalog) Names() []Name {
	out := make([]Name, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.name
	}
	return out
}

// Lookup finds an entry by exact name.
func (c Catalog) Lookup(name string) (Entry, bool) {
	i, ok := c.index[Name(name)]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Contact returns the contact-records namespace, if one is configured.
func (c Catalog) Contact() (Name, bool) {
	return c.contact, c.contact != ""
}

// ByRole returns entries holding the given role.
func (c Catalog) ByRole(r Role) []Entry {
	var out []Entry
	for _, e := range c.entries {
		if e.role == r {
			out = append(out, e)
		}
	}
	return out
}

// Partition splits names into primary (organization) and secondary sources.
func (c Catalog) Partition() (primary, secondary []Name) {
	for _, e := range c.entries {
		if e.primary {
			primary = append(primary, e.name)
		} else {
			secondary = append(secondary, e.name)
		}
	}
	return primary, secondary
}

// ParseRoute turns raw router output into a Route.
// Tokens are split on "+", trimmed and matched exactly against the catalog;
// anything unrecognized is dropped. The contact namespace never shares a route:
// when it appears next to others the route collapses to it alone.
func (c Catalog) ParseRoute(raw string) Route {
	var route Route
	for _, tok := range strings.Split(raw, "+") {
		e, ok := c.Lookup(strings.TrimSpace(tok))
		if !ok || route.Contains(e.name) {
			continue
		}
		route = append(route, e.name)
	}

	if c.contact != "" && len(route) > 1 && route.Contains(c.contact) {
		return Route{c.contact}
	}
	return route
}
