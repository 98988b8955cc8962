package ask

// Options tune the pipeline. Zero fields fall back to DefaultOptions.
type Options struct {
	// Organization is the name the assistant speaks for ("FES").
	Organization string

	TopKPerNamespace     int
	MaxMatches           int
	MaxContextChars      int
	SnippetChars         int
	ContactShortcutLimit int

	// ParallelNamespaceQueries bounds concurrent namespace queries; 0 or 1 queries sequentially.
	ParallelNamespaceQueries int

	RouterModel       string
	RouterTemperature float32
	AnswerModel       string
	AnswerTemperature float32
}

// DefaultOptions returns the stock pipeline settings.
func DefaultOptions() Options {
	return Options{
		Organization:         "FES",
		TopKPerNamespace:     5,
		MaxMatches:           20,
		MaxContextChars:      9000,
		SnippetChars:         1200,
		ContactShortcutLimit: 5,
		RouterModel:          "gpt-4o-mini",
		RouterTemperature:    0,
		AnswerModel:          "gpt-4o-mini",
		AnswerTemperature:    0.2,
	}
}

// withDefaults fills zero-valued fields. Temperatures are taken as given.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Organization == "" {
		o.Organization = d.Organization
	}
	if o.TopKPerNamespace <= 0 {
		o.TopKPerNamespace = d.TopKPerNamespace
	}
	if o.MaxMatches <= 0 {
		o.MaxMatches = d.MaxMatches
	}
	if o.MaxContextChars <= 0 {
		o.MaxContextChars = d.MaxContextChars
	}
	if o.SnippetChars <= 0 {
		o.SnippetChars = d.SnippetChars
	}
	if o.ContactShortcutLimit <= 0 {
		o.ContactShortcutLimit = d.ContactShortcutLimit
	}
	if o.RouterModel == "" {
		o.RouterModel = d.RouterModel
	}
	if o.AnswerModel == "" {
		o.AnswerModel = d.AnswerModel
	}
	return o
}
