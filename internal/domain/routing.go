package domain

import "math"

// Match is one nearest-neighbor hit from the example corpus.
// Distance is cosine distance in [0, 2]; lower means more similar.
type Match struct {
	Label    Label
	Distance float64
}

// RoutingDecision is the router's verdict for a single message.
// Evidence carries the top-k matches in ascending distance order.
type RoutingDecision struct {
	Label        Label
	BestDistance float64
	Evidence     []Match
}

// AmbiguousDecision is the fail-open routing outcome: no label, no usable
// evidence. Used when the example corpus is empty or routing degraded.
func AmbiguousDecision() RoutingDecision {
	return RoutingDecision{
		Label:        LabelAmbiguous,
		BestDistance: math.Inf(1),
	}
}
