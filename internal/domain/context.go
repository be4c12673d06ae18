package domain

// ContextType names the shape of assembled prompt context.
type ContextType string

const (
	// ContextSQL carries structured-query exemplars.
	ContextSQL ContextType = "sql"
	// ContextDocs carries retrieved document excerpts.
	ContextDocs ContextType = "docs"
	// ContextGeneral instructs the generator to ask a clarifying question.
	ContextGeneral ContextType = "general"
	// ContextGeneric acknowledges a label with no dedicated branch.
	ContextGeneric ContextType = "generic"
	// ContextError carries the fallback instructions after a retrieval failure.
	ContextError ContextType = "error"
)

// DocExcerpt is a retrieved document fragment, content already truncated to
// the configured character cap.
type DocExcerpt struct {
	Content  string
	Source   string
	Position int
}

// PromptContext is the assembled supporting material for one message.
// Produced by the assembler, consumed only by the prompt builder.
type PromptContext struct {
	Type         ContextType
	Instructions string
	Docs         []DocExcerpt
	Examples     []string
	Guidance     string
	ErrorDetail  string
}
