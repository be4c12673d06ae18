package chat

import (
	"context"

	"github.com/kailas-cloud/intentd/internal/domain"
)

// Router resolves a label for a message. Total: it degrades internally
// instead of failing.
type Router interface {
	Route(ctx context.Context, message string) domain.RoutingDecision
}

// Assembler builds per-label supporting context. Total as well.
type Assembler interface {
	Assemble(ctx context.Context, message string, decision domain.RoutingDecision) domain.PromptContext
}

// Generator executes a prompt against the text generation provider.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
