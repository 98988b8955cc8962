package namespace

import (
	"fmt"
	"strings"
)

// Name identifies a logical partition of the vector index.
type Name string

// Role classifies the documents a namespace holds.
type Role string

// Namespace role constants.
const (
	// RoleContact holds structured contact records (branches, offices).
	RoleContact  Role = "contact"
	RoleServices Role = "services"
	RoleBlog     Role = "blog"
)

// IsValid checks if the role is one of the supported values.
func (r Role) IsValid() bool {
	return r == RoleContact || r == RoleServices || r == RoleBlog
}

// Entry is an immutable description of one recognized namespace.
type Entry struct {
	name        Name
	role        Role
	primary     bool
	description string
}

// NewEntry validates and creates an Entry.
// primary marks sources owned by the organization; secondary sources only enrich answers.
func NewEntry(name string, role Role, primary bool, description string) (Entry, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, fmt.Errorf("namespace name is required")
	}
	if strings.Contains(name, "+") {
		return Entry{}, fmt.Errorf("namespace name %q must not contain the route delimiter", name)
	}
	if !role.IsValid() {
		return Entry{}, fmt.Errorf("invalid role %q for namespace %q", role, name)
	}
	return Entry{name: Name(name), role: role, primary: primary, description: description}, nil
}

// Name returns the namespace identifier.
func (e Entry) Name() Name { return e.name }

// Role returns the namespace role.
func (e Entry) Role() Role { return e.role }

// Primary reports whether the namespace belongs to the organization itself.
func (e Entry) Primary() bool { return e.primary }

// Description returns the human description shown to the router model.
func (e Entry) Description() string { return e.description }

// Route is an ordered, duplicate-free set of namespaces selected for one query.
// An empty Route means nothing was selected, never "search everything".
type Route []Name

// Contains reports whether n is part of the route.
func (r Route) Contains(n Name) bool {
	for _, name := range r {
		if name == n {
			return true
		}
	}
	return false
}

// Strings returns the route as plain strings.
func (r Route) Strings() []string {
	out := make([]string, len(r))
	for i, n := range r {
		out[i] = string(n)
	}
	return out
}

// String renders the route in the router's own " + " notation.
func (r Route) String() string {
	return strings.Join(r.Strings(), " + ")
}
