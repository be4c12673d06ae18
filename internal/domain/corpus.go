package domain

// KeyPrefix namespaces all store keys owned by this service.
const KeyPrefix = "intentd:"

// Namespace is a logical partition of the vector index holding one entity type.
type Namespace string

const (
	// NamespaceExamples holds the labeled classification reference set.
	NamespaceExamples Namespace = "examples"
	// NamespaceChunks holds embedded document chunks.
	NamespaceChunks Namespace = "chunks"
)

// Example is a labeled classification reference item. Immutable once loaded;
// the live request path only ever reads it back as (label, distance) evidence.
type Example struct {
	Text          string
	Label         Label
	ExampleID     int
	TotalExamples int
	Vector        []float32
}

// ScoredExample pairs a stored example with its distance from a query vector.
type ScoredExample struct {
	Example  Example
	Distance float64
}

// ScoredChunk pairs a stored chunk with its distance from a query vector.
type ScoredChunk struct {
	Chunk    Chunk
	Distance float64
}

// Chunk is a bounded, sentence-boundary-respecting excerpt of a source
// document. Position is a 0-based index unique within Source; concatenating
// chunks in position order reconstructs the normalized source text.
type Chunk struct {
	Content     string
	Source      string
	Position    int
	TotalChunks int
	Vector      []float32
}
