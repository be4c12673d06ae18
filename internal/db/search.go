package db

// KNNQuery is the input for vector similarity search.
// Filter is a pre-filter FT query string ("*" when empty), e.g. `@label:{sql}`.
type KNNQuery struct {
	IndexName    string
	Filter       string
	Vector       []float32
	K            int
	ReturnFields []string
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single hit. Score is the raw cosine distance reported by
// the index (__vector_score); lower means more similar.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}
