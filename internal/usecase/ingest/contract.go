package ingest

import (
	"context"

	"github.com/kailas-cloud/intentd/internal/domain"
)

// BatchEmbedder vectorizes a batch of texts.
type BatchEmbedder interface {
	BatchEmbed(ctx context.Context, texts []string) (domain.BatchEmbeddingResult, error)
}

// CorpusWriter is the storage contract for the corpus build path.
type CorpusWriter interface {
	EnsureIndexes(ctx context.Context) error
	Reset(ctx context.Context, ns domain.Namespace) error
	InsertExamples(ctx context.Context, examples []domain.Example) error
	InsertChunks(ctx context.Context, chunks []domain.Chunk) error
	Count(ctx context.Context, ns domain.Namespace) (int, error)
}
