package assembler

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/intentd/internal/domain"
)

type mockEmbedder struct {
	result domain.EmbeddingResult
	err    error
}

func (m *mockEmbedder) Embed(_ context.Context, _ string) (domain.EmbeddingResult, error) {
	return m.result, m.err
}

type mockExampleSearcher struct {
	hits      []domain.ScoredExample
	err       error
	gotK      int
	gotFilter domain.Label
}

func (m *mockExampleSearcher) SearchExamples(
	_ context.Context, _ []float32, k int, label domain.Label,
) ([]domain.ScoredExample, error) {
	m.gotK = k
	m.gotFilter = label
	return m.hits, m.err
}

type mockChunkSearcher struct {
	hits []domain.ScoredChunk
	err  error
	gotK int
}

func (m *mockChunkSearcher) SearchChunks(
	_ context.Context, _ []float32, k int,
) ([]domain.ScoredChunk, error) {
	m.gotK = k
	return m.hits, m.err
}

func testParams() Params {
	return Params{ExampleTopK: 3, ExemplarCount: 2, DocTopK: 15, DocCharLimit: 500}
}

func decision(label domain.Label) domain.RoutingDecision {
	return domain.RoutingDecision{Label: label, BestDistance: 0.05}
}

func TestAssemble_Ambiguous_NoRetrieval(t *testing.T) {
	embed := &mockEmbedder{err: errors.New("must not be called")}
	svc := New(embed, &mockExampleSearcher{}, &mockChunkSearcher{}, testParams())

	pc := svc.Assemble(context.Background(), "dame info", decision(domain.LabelAmbiguous))

	if pc.Type != domain.ContextGeneral {
		t.Fatalf("expected general context, got %s", pc.Type)
	}
	if !strings.Contains(pc.Instructions, "clarifying") {
		t.Errorf("expected clarify instructions, got %q", pc.Instructions)
	}
	if len(pc.Docs) != 0 || len(pc.Examples) != 0 {
		t.Error("expected no retrieval artifacts for ambiguous context")
	}
}

func TestAssemble_SQL_FilteredExemplars(t *testing.T) {
	embed := &mockEmbedder{result: domain.EmbeddingResult{Embedding: []float32{1, 0}}}
	examples := &mockExampleSearcher{hits: []domain.ScoredExample{
		{Example: domain.Example{Text: "cuantos usuarios hay", Label: domain.LabelSQL}, Distance: 0.02},
		{Example: domain.Example{Text: "cuantos pedidos hay", Label: domain.LabelSQL}, Distance: 0.04},
		{Example: domain.Example{Text: "total de embarques", Label: domain.LabelSQL}, Distance: 0.09},
	}}
	svc := New(embed, examples, &mockChunkSearcher{}, testParams())

	pc := svc.Assemble(context.Background(), "cuantos usuarios", decision(domain.LabelSQL))

	if pc.Type != domain.ContextSQL {
		t.Fatalf("expected sql context, got %s", pc.Type)
	}
	if examples.gotFilter != domain.LabelSQL {
		t.Errorf("expected label filter sql, got %q", examples.gotFilter)
	}
	if examples.gotK != 3 {
		t.Errorf("expected k=3, got %d", examples.gotK)
	}
	// only the 2 closest texts make it into the prompt
	if len(pc.Examples) != 2 {
		t.Fatalf("expected 2 exemplars, got %d", len(pc.Examples))
	}
	if pc.Examples[0] != "cuantos usuarios hay" {
		t.Errorf("unexpected first exemplar: %q", pc.Examples[0])
	}
	if len(pc.Docs) != 0 {
		t.Error("expected no docs in sql context")
	}
}

func TestAssemble_SQL_FewerHitsThanExemplarCount(t *testing.T) {
	embed := &mockEmbedder{result: domain.EmbeddingResult{Embedding: []float32{1, 0}}}
	examples := &mockExampleSearcher{hits: []domain.ScoredExample{
		{Example: domain.Example{Text: "cuantos usuarios hay", Label: domain.LabelSQL}, Distance: 0.02},
	}}
	svc := New(embed, examples, &mockChunkSearcher{}, testParams())

	pc := svc.Assemble(context.Background(), "cuantos usuarios", decision(domain.LabelSQL))

	if len(pc.Examples) != 1 {
		t.Fatalf("expected 1 exemplar, got %d", len(pc.Examples))
	}
}

func TestAssemble_Docs_TruncatesExcerpts(t *testing.T) {
	long := strings.Repeat("ñ", 600)

	embed := &mockEmbedder{result: domain.EmbeddingResult{Embedding: []float32{1, 0}}}
	chunks := &mockChunkSearcher{hits: []domain.ScoredChunk{
		{Chunk: domain.Chunk{Content: long, Source: "manual.pdf", Position: 2}, Distance: 0.1},
		{Chunk: domain.Chunk{Content: "corto", Source: "faq.txt", Position: 0}, Distance: 0.2},
	}}
	svc := New(embed, &mockExampleSearcher{}, chunks, testParams())

	pc := svc.Assemble(context.Background(), "que es un embarque", decision(domain.LabelDocs))

	if pc.Type != domain.ContextDocs {
		t.Fatalf("expected docs context, got %s", pc.Type)
	}
	if chunks.gotK != 15 {
		t.Errorf("expected k=15, got %d", chunks.gotK)
	}
	if len(pc.Docs) != 2 {
		t.Fatalf("expected 2 excerpts, got %d", len(pc.Docs))
	}
	if n := len([]rune(pc.Docs[0].Content)); n != 500 {
		t.Errorf("expected 500-rune excerpt, got %d", n)
	}
	if pc.Docs[1].Content != "corto" {
		t.Errorf("short excerpt must pass through untouched, got %q", pc.Docs[1].Content)
	}
	if pc.Docs[0].Source != "manual.pdf" || pc.Docs[0].Position != 2 {
		t.Errorf("excerpt metadata lost: %+v", pc.Docs[0])
	}
	if len(pc.Examples) != 0 {
		t.Error("expected no exemplars in docs context")
	}
}

func TestAssemble_UnknownLabel_GenericContext(t *testing.T) {
	svc := New(&mockEmbedder{}, &mockExampleSearcher{}, &mockChunkSearcher{}, testParams())

	pc := svc.Assemble(context.Background(), "hola", decision(domain.Label("billing")))

	if pc.Type != domain.ContextGeneric {
		t.Fatalf("expected generic context, got %s", pc.Type)
	}
	if !strings.Contains(pc.Instructions, "billing") {
		t.Errorf("expected detected label acknowledged, got %q", pc.Instructions)
	}
}

func TestAssemble_RetrievalFailure_ErrorContext(t *testing.T) {
	embed := &mockEmbedder{result: domain.EmbeddingResult{Embedding: []float32{1, 0}}}
	chunks := &mockChunkSearcher{err: errors.New("index gone")}
	svc := New(embed, &mockExampleSearcher{}, chunks, testParams())

	pc := svc.Assemble(context.Background(), "que es un embarque", decision(domain.LabelDocs))

	if pc.Type != domain.ContextError {
		t.Fatalf("expected error context, got %s", pc.Type)
	}
	if !strings.Contains(pc.ErrorDetail, "index gone") {
		t.Errorf("expected error detail preserved, got %q", pc.ErrorDetail)
	}
}

func TestAssemble_EmbedFailure_ErrorContext(t *testing.T) {
	embed := &mockEmbedder{err: errors.New("provider down")}
	svc := New(embed, &mockExampleSearcher{}, &mockChunkSearcher{}, testParams())

	pc := svc.Assemble(context.Background(), "cuantos usuarios", decision(domain.LabelSQL))

	if pc.Type != domain.ContextError {
		t.Fatalf("expected error context, got %s", pc.Type)
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		in    string
		limit int
		want  string
	}{
		{"hola", 10, "hola"},
		{"hola", 2, "ho"},
		{"ñandú", 3, "ñan"},
		{"texto", 0, "texto"},
	}
	for _, tc := range tests {
		if got := truncateRunes(tc.in, tc.limit); got != tc.want {
			t.Errorf("truncateRunes(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
		}
	}
}
