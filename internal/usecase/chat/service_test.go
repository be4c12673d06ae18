package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/kailas-cloud/intentd/internal/domain"
)

type mockRouter struct {
	decision domain.RoutingDecision
}

func (m *mockRouter) Route(_ context.Context, _ string) domain.RoutingDecision {
	return m.decision
}

type mockAssembler struct {
	pc domain.PromptContext
}

func (m *mockAssembler) Assemble(
	_ context.Context, _ string, _ domain.RoutingDecision,
) domain.PromptContext {
	return m.pc
}

type mockGenerator struct {
	response  string
	err       error
	gotPrompt string
}

func (m *mockGenerator) Generate(_ context.Context, p string) (string, error) {
	m.gotPrompt = p
	return m.response, m.err
}

func newTestService(gen *mockGenerator) *Service {
	router := &mockRouter{decision: domain.RoutingDecision{
		Label:        domain.LabelSQL,
		BestDistance: 0.05,
		Evidence:     []domain.Match{{Label: domain.LabelSQL, Distance: 0.05}},
	}}
	asm := &mockAssembler{pc: domain.PromptContext{
		Type:         domain.ContextSQL,
		Instructions: "Answer from operational data.",
		Examples:     []string{"cuantos usuarios hay"},
	}}
	return New(router, asm, gen)
}

func TestHandle_HappyPath(t *testing.T) {
	gen := &mockGenerator{response: "Hay 42 usuarios."}
	svc := newTestService(gen)

	res := svc.Handle(context.Background(), "cuantos usuarios tenemos")

	if !res.Valid {
		t.Fatal("expected valid result")
	}
	if res.Response != "Hay 42 usuarios." {
		t.Errorf("unexpected response: %q", res.Response)
	}
	if res.Label != domain.LabelSQL {
		t.Errorf("expected sql label, got %s", res.Label)
	}
	if res.Fallback {
		t.Error("expected no fallback on generator success")
	}
	if len(res.Evidence) != 1 {
		t.Errorf("expected evidence carried through, got %v", res.Evidence)
	}
	if !strings.Contains(gen.gotPrompt, "cuantos usuarios tenemos") {
		t.Errorf("expected message in prompt:\n%s", gen.gotPrompt)
	}
	if !strings.Contains(gen.gotPrompt, "- cuantos usuarios hay") {
		t.Errorf("expected exemplar section in prompt:\n%s", gen.gotPrompt)
	}
}

func TestHandle_EmptyMessage(t *testing.T) {
	gen := &mockGenerator{}
	svc := newTestService(gen)

	res := svc.Handle(context.Background(), "   \t\n ")

	if res.Valid {
		t.Fatal("expected invalid result for whitespace-only message")
	}
	if res.Response == "" {
		t.Error("expected a textual response even for invalid input")
	}
	if res.Prompt != "" {
		t.Error("expected no prompt built for invalid input")
	}
	if gen.gotPrompt != "" {
		t.Error("generator must not be called for invalid input")
	}
}

func TestHandle_GeneratorFailure_CannedFallback(t *testing.T) {
	gen := &mockGenerator{err: errors.New("quota exceeded")}
	svc := newTestService(gen)

	res := svc.Handle(context.Background(), "hola")

	if !res.Valid {
		t.Fatal("expected valid result despite generator failure")
	}
	if !res.Fallback {
		t.Fatal("expected fallback flag set")
	}
	if res.Response != "Hello! How can I help you today?" {
		t.Errorf("expected greeting canned response, got %q", res.Response)
	}
	// the prompt was still built and is exposed for debugging
	if res.Prompt == "" {
		t.Error("expected prompt preserved on fallback")
	}
}

func TestHandle_GeneratorFailure_QuestionFallback(t *testing.T) {
	gen := &mockGenerator{err: errors.New("timeout")}
	svc := newTestService(gen)

	res := svc.Handle(context.Background(), "cuantos pedidos hay?")

	if !strings.Contains(res.Response, "Interesting question about") {
		t.Errorf("expected question canned response, got %q", res.Response)
	}
}

func TestCannedResponse_Table(t *testing.T) {
	tests := []struct {
		message string
		want    string
	}{
		{"hola", "Hello! How can I help you today?"},
		{"say hello", "Hello! How can I help you today?"},
		{"como estas", "I'm doing great, thank you for asking! How are you?"},
		{"adios amigo", "Goodbye! Have a great day!"},
		{"que es un folio?", "Interesting question about 'que es un folio?'. Let me help you think about that."},
		{"dame el reporte", "I received your message: 'dame el reporte'. Is there something specific I can help you with?"},
	}

	for _, tc := range tests {
		if got := cannedResponse(tc.message); got != tc.want {
			t.Errorf("cannedResponse(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}
