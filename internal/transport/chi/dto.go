package chi

import "github.com/kailas-cloud/intentd/internal/domain"

// ChatRequest is the POST /chat request body.
type ChatRequest struct {
	Message string `json:"message"`
}

// MatchDTO is one piece of routing evidence.
type MatchDTO struct {
	Label    string  `json:"label"`
	Distance float64 `json:"distance"`
}

// DocExcerptDTO is one retrieved documentation fragment.
type DocExcerptDTO struct {
	Content  string `json:"content"`
	Source   string `json:"source"`
	Position int    `json:"position"`
}

// ContextDTO describes the assembled context.
type ContextDTO struct {
	Type         string          `json:"type"`
	Instructions string          `json:"instructions,omitempty"`
	Guidance     string          `json:"guidance,omitempty"`
	Docs         []DocExcerptDTO `json:"docs,omitempty"`
	Examples     []string        `json:"examples,omitempty"`
	ErrorDetail  string          `json:"error_detail,omitempty"`
}

// ChatResponse is the POST /chat response body.
type ChatResponse struct {
	OriginalMessage string      `json:"original_message"`
	Valid           bool        `json:"valid"`
	Response        string      `json:"response"`
	Prompt          string      `json:"prompt,omitempty"`
	Label           string      `json:"label,omitempty"`
	Evidence        []MatchDTO  `json:"evidence,omitempty"`
	Context         *ContextDTO `json:"context,omitempty"`
	Fallback        bool        `json:"fallback"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is the GET /health response body.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func chatResultToDTO(res domain.ChatResult) ChatResponse {
	out := ChatResponse{
		OriginalMessage: res.OriginalMessage,
		Valid:           res.Valid,
		Response:        res.Response,
		Prompt:          res.Prompt,
		Label:           string(res.Label),
		Fallback:        res.Fallback,
	}

	if len(res.Evidence) > 0 {
		out.Evidence = make([]MatchDTO, len(res.Evidence))
		for i, m := range res.Evidence {
			out.Evidence[i] = MatchDTO{Label: string(m.Label), Distance: m.Distance}
		}
	}

	if res.Valid {
		ctx := ContextDTO{
			Type:         string(res.Context.Type),
			Instructions: res.Context.Instructions,
			Guidance:     res.Context.Guidance,
			Examples:     res.Context.Examples,
			ErrorDetail:  res.Context.ErrorDetail,
		}
		for _, d := range res.Context.Docs {
			ctx.Docs = append(ctx.Docs, DocExcerptDTO{
				Content:  d.Content,
				Source:   d.Source,
				Position: d.Position,
			})
		}
		out.Context = &ctx
	}

	return out
}
