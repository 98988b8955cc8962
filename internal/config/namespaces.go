package config

import (
	"fmt"

	"github.com/kailas-cloud/counsellor/internal/domain/namespace"
)

// Catalog builds the namespace catalog from the configured entries.
func (r RetrievalConfig) Catalog() (namespace.Catalog, error) {
	entries := make([]namespace.Entry, 0, len(r.Namespaces))
	for i, ns := range r.Namespaces {
		e, err := namespace.NewEntry(ns.Name, namespace.Role(ns.Role), ns.Primary, ns.Description)
		if err != nil {
			return namespace.Catalog{}, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	cat, err := namespace.NewCatalog(entries)
	if err != nil {
		return namespace.Catalog{}, fmt.Errorf("build catalog: %w", err)
	}
	return cat, nil
}
