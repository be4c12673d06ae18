package router

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/kailas-cloud/intentd/internal/domain"
	"github.com/kailas-cloud/intentd/internal/logger"
	"github.com/kailas-cloud/intentd/internal/metrics"
)

// Policy holds the classification thresholds. Both distances are cosine
// distances over unit vectors, in [0, 2].
type Policy struct {
	// AmbiguousThreshold is the maximum nearest-example distance for a
	// confident verdict. Above it the message is out of corpus coverage.
	AmbiguousThreshold float64
	// CloseMargin is the minimum gap between the two nearest distances when
	// their labels disagree. Below it neither label wins.
	CloseMargin float64
	// TopK is how many nearest examples to retrieve as evidence.
	TopK int
}

// Service classifies messages by k-NN vote over the labeled example corpus.
type Service struct {
	embed    Embedder
	examples ExampleSearcher
	policy   Policy
}

// New creates a routing service.
func New(embed Embedder, examples ExampleSearcher, policy Policy) *Service {
	return &Service{embed: embed, examples: examples, policy: policy}
}

// Route resolves a label for the message. It never fails: any internal error
// degrades to the ambiguous verdict, which downstream turns into a
// clarification request rather than a wrong answer.
func (s *Service) Route(ctx context.Context, message string) domain.RoutingDecision {
	decision, err := s.classify(ctx, message)
	if err != nil {
		logger.FromContext(ctx).Warn("Routing degraded to ambiguous",
			zap.Error(err),
		)
		metrics.RoutingDegradedTotal.Inc()
		decision = domain.AmbiguousDecision()
	}

	metrics.RoutingDecisionsTotal.WithLabelValues(string(decision.Label)).Inc()
	if !math.IsInf(decision.BestDistance, 1) {
		metrics.RoutingNearestDistance.Observe(decision.BestDistance)
	}

	return decision
}

func (s *Service) classify(ctx context.Context, message string) (domain.RoutingDecision, error) {
	embResult, err := s.embed.Embed(ctx, message)
	if err != nil {
		return domain.RoutingDecision{}, fmt.Errorf("vectorize message: %w", err)
	}

	hits, err := s.examples.SearchExamples(ctx, embResult.Embedding, s.policy.TopK, "")
	if err != nil {
		return domain.RoutingDecision{}, fmt.Errorf("search examples: %w", err)
	}

	// Empty corpus: nothing to vote with.
	if len(hits) == 0 {
		return domain.AmbiguousDecision(), nil
	}

	evidence := make([]domain.Match, len(hits))
	for i, h := range hits {
		evidence[i] = domain.Match{Label: h.Example.Label, Distance: h.Distance}
	}

	decision := domain.RoutingDecision{
		Label:        hits[0].Example.Label,
		BestDistance: hits[0].Distance,
		Evidence:     evidence,
	}

	// The nearest example is still too far: out of corpus coverage.
	if decision.BestDistance > s.policy.AmbiguousThreshold {
		decision.Label = domain.LabelAmbiguous
		return decision, nil
	}

	// Two labels within the close margin: neither wins.
	if len(hits) >= 2 &&
		hits[1].Example.Label != hits[0].Example.Label &&
		hits[1].Distance-hits[0].Distance < s.policy.CloseMargin {
		decision.Label = domain.LabelAmbiguous
		return decision, nil
	}

	return decision, nil
}
