package assembler

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/intentd/internal/domain"
	"github.com/kailas-cloud/intentd/internal/logger"
)

// Fixed per-branch instruction strings rendered into the prompt.
const (
	sqlInstructions = "The user is asking about operational data. Answer as if you had " +
		"queried the platform database. Base your answer on the query patterns shown " +
		"in the examples section."
	sqlGuidance = "Answer with concrete figures and keep the wording close to the examples."

	docsInstructions = "The user is asking about platform concepts or procedures. Answer " +
		"strictly from the documentation excerpts below. If the excerpts do not cover " +
		"the question, say so."
	docsGuidance = "Cite the source document when it helps the user find more detail."

	clarifyInstructions = "The intent of the message is unclear. Ask one short clarifying " +
		"question to find out whether the user needs operational data or documentation. " +
		"Do not guess an answer."

	errorInstructions = "Supporting context could not be retrieved. Give a brief, polite " +
		"general answer and suggest the user try again."
)

// Params bounds the per-branch retrieval.
type Params struct {
	// ExampleTopK is the filtered k-NN depth for the exemplar branch.
	ExampleTopK int
	// ExemplarCount is how many of the closest example texts go into the prompt.
	ExemplarCount int
	// DocTopK is the k-NN depth for the documentation branch.
	DocTopK int
	// DocCharLimit caps each excerpt, in runes, to bound prompt size.
	DocCharLimit int
}

// Service assembles per-label supporting context for the prompt builder.
type Service struct {
	embed    Embedder
	examples ExampleSearcher
	chunks   ChunkSearcher
	params   Params
}

// New creates a context assembly service.
func New(embed Embedder, examples ExampleSearcher, chunks ChunkSearcher, params Params) *Service {
	return &Service{embed: embed, examples: examples, chunks: chunks, params: params}
}

// Assemble builds the supporting context for a routed message. It never
// fails: retrieval faults collapse into an error-typed context so the
// pipeline always reaches the generator.
func (s *Service) Assemble(
	ctx context.Context, message string, decision domain.RoutingDecision,
) domain.PromptContext {
	pc, err := s.assemble(ctx, message, decision)
	if err != nil {
		logger.FromContext(ctx).Warn("Context assembly degraded",
			zap.String("label", string(decision.Label)),
			zap.Error(err),
		)
		return domain.PromptContext{
			Type:         domain.ContextError,
			Instructions: errorInstructions,
			ErrorDetail:  err.Error(),
		}
	}
	return pc
}

func (s *Service) assemble(
	ctx context.Context, message string, decision domain.RoutingDecision,
) (domain.PromptContext, error) {
	switch decision.Label {
	case domain.LabelAmbiguous:
		return domain.PromptContext{
			Type:         domain.ContextGeneral,
			Instructions: clarifyInstructions,
		}, nil
	case domain.LabelSQL:
		return s.assembleSQL(ctx, message)
	case domain.LabelDocs:
		return s.assembleDocs(ctx, message)
	default:
		return domain.PromptContext{
			Type: domain.ContextGeneric,
			Instructions: fmt.Sprintf(
				"The message was classified as %q. Answer helpfully in general terms.",
				decision.Label),
		}, nil
	}
}

// assembleSQL retrieves the closest same-label exemplars and passes their
// texts verbatim.
func (s *Service) assembleSQL(ctx context.Context, message string) (domain.PromptContext, error) {
	embResult, err := s.embed.Embed(ctx, message)
	if err != nil {
		return domain.PromptContext{}, fmt.Errorf("vectorize message: %w", err)
	}

	hits, err := s.examples.SearchExamples(
		ctx, embResult.Embedding, s.params.ExampleTopK, domain.LabelSQL,
	)
	if err != nil {
		return domain.PromptContext{}, fmt.Errorf("search exemplars: %w", err)
	}

	count := s.params.ExemplarCount
	if count > len(hits) {
		count = len(hits)
	}
	examples := make([]string, 0, count)
	for _, h := range hits[:count] {
		examples = append(examples, h.Example.Text)
	}

	return domain.PromptContext{
		Type:         domain.ContextSQL,
		Instructions: sqlInstructions,
		Guidance:     sqlGuidance,
		Examples:     examples,
	}, nil
}

// assembleDocs retrieves the nearest chunks and truncates each excerpt.
func (s *Service) assembleDocs(ctx context.Context, message string) (domain.PromptContext, error) {
	embResult, err := s.embed.Embed(ctx, message)
	if err != nil {
		return domain.PromptContext{}, fmt.Errorf("vectorize message: %w", err)
	}

	hits, err := s.chunks.SearchChunks(ctx, embResult.Embedding, s.params.DocTopK)
	if err != nil {
		return domain.PromptContext{}, fmt.Errorf("search chunks: %w", err)
	}

	docs := make([]domain.DocExcerpt, 0, len(hits))
	for _, h := range hits {
		docs = append(docs, domain.DocExcerpt{
			Content:  truncateRunes(h.Chunk.Content, s.params.DocCharLimit),
			Source:   h.Chunk.Source,
			Position: h.Chunk.Position,
		})
	}

	return domain.PromptContext{
		Type:         domain.ContextDocs,
		Instructions: docsInstructions,
		Guidance:     docsGuidance,
		Docs:         docs,
	}, nil
}

// truncateRunes cuts s to at most limit runes. A byte cut could split a
// multibyte character in the Spanish corpus.
func truncateRunes(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
