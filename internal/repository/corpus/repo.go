package corpus

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kailas-cloud/intentd/internal/db"
	"github.com/kailas-cloud/intentd/internal/domain"
)

// store is the consumer interface for the corpus repository (ISP).
type store interface {
	HSetMulti(ctx context.Context, items []db.HashSetItem) error
	Del(ctx context.Context, key string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	DropIndex(ctx context.Context, name string) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	SearchList(ctx context.Context, index, query string, offset, limit int, fields []string) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// Repo stores and searches the two corpus namespaces.
type Repo struct {
	store  store
	params IndexParams
}

// New creates a corpus repository.
func New(s store, params IndexParams) *Repo {
	return &Repo{store: s, params: params}
}

// EnsureIndexes creates the example and chunk indexes when they do not exist.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	for _, def := range []*db.IndexDefinition{examplesIndex(r.params), chunksIndex(r.params)} {
		if err := def.Validate(); err != nil {
			return fmt.Errorf("index %s: %w", def.Name, err)
		}
		exists, err := r.store.IndexExists(ctx, def.Name)
		if err != nil {
			return fmt.Errorf("check index %s: %w", def.Name, err)
		}
		if exists {
			continue
		}
		if err := r.store.CreateIndex(ctx, def); err != nil && !errors.Is(err, db.ErrIndexExists) {
			return fmt.Errorf("create index %s: %w", def.Name, err)
		}
	}
	return nil
}

// Reset drops the namespace index and deletes every key under its prefix.
// Call EnsureIndexes afterwards to recreate the index.
func (r *Repo) Reset(ctx context.Context, ns domain.Namespace) error {
	idx := indexName(ns)

	exists, err := r.store.IndexExists(ctx, idx)
	if err != nil {
		return fmt.Errorf("check index %s: %w", idx, err)
	}
	if exists {
		if err := r.store.DropIndex(ctx, idx); err != nil && !errors.Is(err, db.ErrIndexNotFound) {
			return fmt.Errorf("drop index %s: %w", idx, err)
		}
	}

	keys, err := r.store.Scan(ctx, keyPrefix(ns)+"*")
	if err != nil {
		return fmt.Errorf("scan %s: %w", ns, err)
	}
	for _, key := range keys {
		if err := r.store.Del(ctx, key); err != nil {
			return fmt.Errorf("del %s: %w", key, err)
		}
	}
	return nil
}

// InsertExamples stores labeled examples under fresh UUID keys.
func (r *Repo) InsertExamples(ctx context.Context, examples []domain.Example) error {
	if len(examples) == 0 {
		return nil
	}

	items := make([]db.HashSetItem, 0, len(examples))
	for i := range examples {
		items = append(items, db.HashSetItem{
			Key:    entryKey(domain.NamespaceExamples, uuid.NewString()),
			Fields: exampleFields(&examples[i]),
		})
	}

	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("insert examples: %w", err)
	}
	return nil
}

// InsertChunks stores document chunks under fresh UUID keys.
func (r *Repo) InsertChunks(ctx context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}

	items := make([]db.HashSetItem, 0, len(chunks))
	for i := range chunks {
		items = append(items, db.HashSetItem{
			Key:    entryKey(domain.NamespaceChunks, uuid.NewString()),
			Fields: chunkFields(&chunks[i]),
		})
	}

	if err := r.store.HSetMulti(ctx, items); err != nil {
		return fmt.Errorf("insert chunks: %w", err)
	}
	return nil
}

// SearchExamples returns the k nearest labeled examples to the query vector,
// ordered by ascending distance. A non-empty label restricts the search to
// that label via a tag pre-filter.
func (r *Repo) SearchExamples(ctx context.Context, vector []float32, k int, label domain.Label) (
	[]domain.ScoredExample, error,
) {
	q := &db.KNNQuery{
		IndexName:    indexName(domain.NamespaceExamples),
		Vector:       vector,
		K:            k,
		ReturnFields: []string{fieldContent, fieldLabel, fieldExampleID, fieldTotalExamples},
	}
	if label != "" {
		q.Filter = fmt.Sprintf("@%s:{%s}", fieldLabel, label)
	}

	result, err := r.store.SearchKNN(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search examples: %w", err)
	}

	hits := make([]domain.ScoredExample, 0, len(result.Entries))
	for _, entry := range result.Entries {
		example, err := parseExample(entry.Fields)
		if err != nil {
			return nil, fmt.Errorf("parse example %s: %w", entry.Key, err)
		}
		hits = append(hits, domain.ScoredExample{
			Example:  example,
			Distance: entry.Score,
		})
	}
	return hits, nil
}

// SearchChunks returns the k nearest document chunks to the query vector,
// ordered by ascending distance.
func (r *Repo) SearchChunks(ctx context.Context, vector []float32, k int) ([]domain.ScoredChunk, error) {
	q := &db.KNNQuery{
		IndexName:    indexName(domain.NamespaceChunks),
		Vector:       vector,
		K:            k,
		ReturnFields: []string{fieldContent, fieldSource, fieldChunk, fieldTotalChunks},
	}

	result, err := r.store.SearchKNN(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search chunks: %w", err)
	}

	hits := make([]domain.ScoredChunk, 0, len(result.Entries))
	for _, entry := range result.Entries {
		hits = append(hits, domain.ScoredChunk{
			Chunk:    parseChunk(entry.Fields),
			Distance: entry.Score,
		})
	}
	return hits, nil
}

// Count returns the number of entries stored in a namespace.
func (r *Repo) Count(ctx context.Context, ns domain.Namespace) (int, error) {
	n, err := r.store.SearchCount(ctx, indexName(ns), "*")
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", ns, err)
	}
	return n, nil
}

// DumpEntry is one stored record with its raw metadata, used by exports.
type DumpEntry struct {
	Key     string
	Content string
	Meta    map[string]string
}

// defaultDumpLimit matches the original export tool's page size.
const defaultDumpLimit = 100

// Dump reads up to limit entries of a namespace via a paginated FT.SEARCH
// over its index. The vector blob is omitted from Meta.
func (r *Repo) Dump(ctx context.Context, ns domain.Namespace, limit int) ([]DumpEntry, error) {
	if limit <= 0 {
		limit = defaultDumpLimit
	}

	result, err := r.store.SearchList(ctx, indexName(ns), "*", 0, limit, nil)
	if err != nil {
		return nil, fmt.Errorf("dump %s: %w", ns, err)
	}

	entries := make([]DumpEntry, 0, len(result.Entries))
	for _, e := range result.Entries {
		meta := make(map[string]string, len(e.Fields))
		for k, v := range e.Fields {
			if k == fieldContent || k == fieldVector {
				continue
			}
			meta[k] = v
		}
		entries = append(entries, DumpEntry{Key: e.Key, Content: e.Fields[fieldContent], Meta: meta})
	}
	return entries, nil
}
