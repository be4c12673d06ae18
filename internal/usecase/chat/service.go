package chat

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/kailas-cloud/intentd/internal/domain"
	"github.com/kailas-cloud/intentd/internal/logger"
	"github.com/kailas-cloud/intentd/internal/metrics"
	"github.com/kailas-cloud/intentd/internal/usecase/prompt"
)

const invalidMessageResponse = "Please type a message so I can help you."

// Service orchestrates the routing pipeline for one chat message.
type Service struct {
	router    Router
	assembler Assembler
	generator Generator
}

// New creates a chat orchestration service.
func New(router Router, assembler Assembler, generator Generator) *Service {
	return &Service{router: router, assembler: assembler, generator: generator}
}

// Handle runs route, assemble, build, generate for one message. It never
// returns an error: the collaborators fail open and a generator fault is
// answered from the canned table.
func (s *Service) Handle(ctx context.Context, message string) domain.ChatResult {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return domain.ChatResult{
			OriginalMessage: message,
			Valid:           false,
			Response:        invalidMessageResponse,
		}
	}

	decision := s.router.Route(ctx, trimmed)
	pc := s.assembler.Assemble(ctx, trimmed, decision)
	built := prompt.Build(message, decision, pc)

	result := domain.ChatResult{
		OriginalMessage: message,
		Valid:           true,
		Prompt:          built,
		Label:           decision.Label,
		Evidence:        decision.Evidence,
		Context:         pc,
	}

	response, err := s.generator.Generate(ctx, built)
	if err != nil {
		logger.FromContext(ctx).Warn("Generation failed, serving canned response",
			zap.String("label", string(decision.Label)),
			zap.Error(err),
		)
		metrics.GenerationFallbacksTotal.Inc()
		result.Response = cannedResponse(trimmed)
		result.Fallback = true
		return result
	}

	result.Response = response
	return result
}
