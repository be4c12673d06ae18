package domain

import (
	"context"
	"errors"
	"math"
	"testing"
)

type stubEmbedder struct {
	calls []string
	err   error
}

func (s *stubEmbedder) Embed(_ context.Context, text string) (EmbeddingResult, error) {
	s.calls = append(s.calls, text)
	if s.err != nil {
		return EmbeddingResult{}, s.err
	}
	return EmbeddingResult{Embedding: []float32{1, 0}, TotalTokens: 2}, nil
}

func TestNormalize(t *testing.T) {
	v := []float32{3, 4}
	Normalize(v)

	var sum float64
	for _, f := range v {
		sum += float64(f) * float64(f)
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Errorf("expected unit norm, got %f", sum)
	}
}

func TestNormalize_ZeroVector(t *testing.T) {
	v := []float32{0, 0, 0}
	Normalize(v)
	for i, f := range v {
		if f != 0 {
			t.Errorf("zero vector changed at %d: %f", i, f)
		}
	}
}

func TestBatchFallback(t *testing.T) {
	emb := &stubEmbedder{}
	res, err := BatchFallback(context.Background(), emb, []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Embeddings) != 3 {
		t.Fatalf("expected 3 embeddings, got %d", len(res.Embeddings))
	}
	if res.TotalTokens != 6 {
		t.Errorf("expected 6 total tokens, got %d", res.TotalTokens)
	}
	if len(emb.calls) != 3 {
		t.Errorf("expected 3 Embed calls, got %d", len(emb.calls))
	}
}

func TestBatchFallback_PropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	emb := &stubEmbedder{err: wantErr}
	_, err := BatchFallback(context.Background(), emb, []string{"a"})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestInstructionEmbedder_PrependsInstruction(t *testing.T) {
	emb := &stubEmbedder{}
	ie := NewInstructionEmbedder(emb, "query: ")

	if _, err := ie.Embed(context.Background(), "hola"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(emb.calls) != 1 || emb.calls[0] != "query: hola" {
		t.Errorf("instruction not prepended: %v", emb.calls)
	}
}
