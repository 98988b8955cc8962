package db

// DefaultVectorField is the indexed vector attribute queried by KNN.
const DefaultVectorField = "vector"

// KNNQuery is the input for vector similarity search.
type KNNQuery struct {
	IndexName string
	Vector    []float32
	K         int
	// VectorField is the indexed vector attribute; DefaultVectorField when empty.
	VectorField string
	// ReturnFields limits the returned attributes; all stored attributes when empty.
	ReturnFields []string
}

// Field returns the vector attribute name the query targets.
func (q *KNNQuery) Field() string {
	if q.VectorField == "" {
		return DefaultVectorField
	}
	return q.VectorField
}

// ScoreField returns the attribute FT.SEARCH uses to report the KNN distance.
func (q *KNNQuery) ScoreField() string {
	return "__" + q.Field() + "_score"
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
// Score is a similarity: higher means closer.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
