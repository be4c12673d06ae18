package ingest

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/kailas-cloud/intentd/internal/domain"
	"github.com/kailas-cloud/intentd/internal/logger"
)

// Options controls a corpus build run.
type Options struct {
	// Reset purges a namespace before loading into it.
	Reset bool
	// ChunkMaxLen caps document chunks, in runes.
	ChunkMaxLen int
}

// Summary reports what a build run did.
type Summary struct {
	ExamplesLoaded int
	FilesProcessed int
	FilesSkipped   []string
	ChunksLoaded   int
	TokensUsed     int
	// CorpusSize is the namespace entry count after the run. Larger than
	// the loaded count when a previous run's entries were kept (no -reset).
	CorpusSize int
}

// Service builds the example and chunk corpora.
type Service struct {
	embed  BatchEmbedder
	corpus CorpusWriter
}

// New creates a corpus build service.
func New(embed BatchEmbedder, corpus CorpusWriter) *Service {
	return &Service{embed: embed, corpus: corpus}
}

// LoadExamples embeds and stores a labeled example set. With opts.Reset the
// examples namespace is purged first.
func (s *Service) LoadExamples(ctx context.Context, examples []SeedExample, opts Options) (Summary, error) {
	log := logger.FromContext(ctx)

	if opts.Reset {
		if err := s.corpus.Reset(ctx, domain.NamespaceExamples); err != nil {
			return Summary{}, fmt.Errorf("reset examples: %w", err)
		}
	}
	if err := s.corpus.EnsureIndexes(ctx); err != nil {
		return Summary{}, fmt.Errorf("ensure indexes: %w", err)
	}

	if len(examples) == 0 {
		return Summary{}, nil
	}

	texts := make([]string, len(examples))
	for i, ex := range examples {
		texts[i] = ex.Text
	}

	result, err := s.embed.BatchEmbed(ctx, texts)
	if err != nil {
		return Summary{}, fmt.Errorf("embed examples: %w", err)
	}

	items := make([]domain.Example, len(examples))
	for i, ex := range examples {
		items[i] = domain.Example{
			Text:          ex.Text,
			Label:         ex.Label,
			ExampleID:     i,
			TotalExamples: len(examples),
			Vector:        result.Embeddings[i],
		}
	}

	if err := s.corpus.InsertExamples(ctx, items); err != nil {
		return Summary{}, fmt.Errorf("insert examples: %w", err)
	}

	total, err := s.corpus.Count(ctx, domain.NamespaceExamples)
	if err != nil {
		return Summary{}, fmt.Errorf("count examples: %w", err)
	}

	byLabel := make(map[string]int)
	for _, ex := range examples {
		byLabel[string(ex.Label)]++
	}
	log.Info("Examples loaded",
		zap.Int("count", len(items)),
		zap.Int("corpus_size", total),
		zap.Int("tokens", result.TotalTokens),
		zap.Any("by_label", byLabel),
	)

	return Summary{
		ExamplesLoaded: len(items),
		TokensUsed:     result.TotalTokens,
		CorpusSize:     total,
	}, nil
}

// LoadDocuments chunks, embeds, and stores every .txt and .pdf file under
// dir. A file that cannot be read or embedded is logged and skipped; one bad
// source must not abort the whole batch.
func (s *Service) LoadDocuments(ctx context.Context, dir string, opts Options) (Summary, error) {
	log := logger.FromContext(ctx)

	if opts.Reset {
		if err := s.corpus.Reset(ctx, domain.NamespaceChunks); err != nil {
			return Summary{}, fmt.Errorf("reset chunks: %w", err)
		}
	}
	if err := s.corpus.EnsureIndexes(ctx); err != nil {
		return Summary{}, fmt.Errorf("ensure indexes: %w", err)
	}

	files, err := ListDocuments(dir)
	if err != nil {
		return Summary{}, err
	}

	var summary Summary
	for _, path := range files {
		name := filepath.Base(path)

		chunks, tokens, err := s.loadOneDocument(ctx, path, name, opts.ChunkMaxLen)
		if err != nil {
			log.Warn("Skipping source document",
				zap.String("file", name),
				zap.Error(err),
			)
			summary.FilesSkipped = append(summary.FilesSkipped, name)
			continue
		}

		summary.FilesProcessed++
		summary.ChunksLoaded += chunks
		summary.TokensUsed += tokens
		log.Info("Document loaded",
			zap.String("file", name),
			zap.Int("chunks", chunks),
		)
	}

	total, err := s.corpus.Count(ctx, domain.NamespaceChunks)
	if err != nil {
		return Summary{}, fmt.Errorf("count chunks: %w", err)
	}
	summary.CorpusSize = total

	return summary, nil
}

func (s *Service) loadOneDocument(
	ctx context.Context, path, name string, chunkMaxLen int,
) (int, int, error) {
	text, err := ExtractText(path)
	if err != nil {
		return 0, 0, err
	}

	pieces := SplitText(text, chunkMaxLen)
	if len(pieces) == 0 {
		return 0, 0, fmt.Errorf("no text extracted")
	}

	result, err := s.embed.BatchEmbed(ctx, pieces)
	if err != nil {
		return 0, 0, fmt.Errorf("embed chunks: %w", err)
	}

	chunks := make([]domain.Chunk, len(pieces))
	for i, content := range pieces {
		chunks[i] = domain.Chunk{
			Content:     content,
			Source:      name,
			Position:    i,
			TotalChunks: len(pieces),
			Vector:      result.Embeddings[i],
		}
	}

	if err := s.corpus.InsertChunks(ctx, chunks); err != nil {
		return 0, 0, fmt.Errorf("insert chunks: %w", err)
	}

	return len(chunks), result.TotalTokens, nil
}
