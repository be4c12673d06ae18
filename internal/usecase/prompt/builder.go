package prompt

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/intentd/internal/domain"
)

const (
	personaLine      = "You are the assistant of a logistics platform."
	closingDirective = "Respond now, following the instructions above."
)

// Build renders the final prompt. Pure and deterministic: the same inputs
// always produce byte-identical output, and sections with no content are
// omitted entirely rather than rendered as empty headers.
func Build(message string, decision domain.RoutingDecision, pc domain.PromptContext) string {
	var b strings.Builder

	b.WriteString(personaLine)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Detected intent: %s\n", decision.Label)

	if pc.Instructions != "" {
		b.WriteString("\nInstructions: ")
		b.WriteString(pc.Instructions)
		b.WriteString("\n")
	}

	if pc.Guidance != "" {
		b.WriteString("\nGuidance: ")
		b.WriteString(pc.Guidance)
		b.WriteString("\n")
	}

	if len(pc.Docs) > 0 {
		b.WriteString("\nDocumentation:\n")
		for _, d := range pc.Docs {
			fmt.Fprintf(&b, "[%s#%d] %s\n", d.Source, d.Position, d.Content)
		}
	}

	if len(pc.Examples) > 0 {
		b.WriteString("\nExamples:\n")
		for _, ex := range pc.Examples {
			fmt.Fprintf(&b, "- %s\n", ex)
		}
	}

	b.WriteString("\nUser message: ")
	b.WriteString(message)
	b.WriteString("\n\n")
	b.WriteString(closingDirective)

	return b.String()
}
