package chat

import (
	"fmt"
	"strings"
)

// cannedResponse picks a deterministic reply by simple substring checks.
// This is the last line of defense when the generator is unavailable; the
// user must still get a coherent answer.
func cannedResponse(message string) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "hello"), strings.Contains(lower, "hi"),
		strings.Contains(lower, "hola"):
		return "Hello! How can I help you today?"
	case strings.Contains(lower, "how are you"), strings.Contains(lower, "como estas"):
		return "I'm doing great, thank you for asking! How are you?"
	case strings.Contains(lower, "bye"), strings.Contains(lower, "goodbye"),
		strings.Contains(lower, "adios"):
		return "Goodbye! Have a great day!"
	case strings.Contains(message, "?"):
		return fmt.Sprintf("Interesting question about '%s'. Let me help you think about that.", message)
	default:
		return fmt.Sprintf("I received your message: '%s'. Is there something specific I can help you with?", message)
	}
}
