package sdk

// ChatResult is the outcome of a chat turn.
type ChatResult struct {
	OriginalMessage string         `json:"original_message"`
	Valid           bool           `json:"valid"`
	Response        string         `json:"response"`
	Prompt          string         `json:"prompt,omitempty"`
	Label           string         `json:"label,omitempty"`
	Evidence        []Match        `json:"evidence,omitempty"`
	Context         *PromptContext `json:"context,omitempty"`
	Fallback        bool           `json:"fallback"`
}

// Match is one nearest-neighbor classification hit.
type Match struct {
	Label    string  `json:"label"`
	Distance float64 `json:"distance"`
}

// PromptContext is the retrieved material the response was grounded on.
type PromptContext struct {
	Type         string       `json:"type"`
	Instructions string       `json:"instructions,omitempty"`
	Guidance     string       `json:"guidance,omitempty"`
	Examples     []string     `json:"examples,omitempty"`
	Docs         []DocExcerpt `json:"docs,omitempty"`
	ErrorDetail  string       `json:"error_detail,omitempty"`
}

// DocExcerpt is a truncated documentation chunk with provenance.
type DocExcerpt struct {
	Content  string `json:"content"`
	Source   string `json:"source"`
	Position int    `json:"position"`
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
