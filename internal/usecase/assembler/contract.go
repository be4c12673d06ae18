package assembler

import (
	"context"

	"github.com/kailas-cloud/intentd/internal/domain"
)

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}

// ExampleSearcher finds the nearest labeled examples to a query vector.
type ExampleSearcher interface {
	SearchExamples(ctx context.Context, vector []float32, k int, label domain.Label) (
		[]domain.ScoredExample, error,
	)
}

// ChunkSearcher finds the nearest document chunks to a query vector.
type ChunkSearcher interface {
	SearchChunks(ctx context.Context, vector []float32, k int) ([]domain.ScoredChunk, error)
}
