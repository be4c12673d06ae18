package domain

// ChatResult is the full outcome of handling one message. Handle always
// returns one; Valid is false only for input-invalid messages, and Fallback
// is true when the canned response table answered instead of the generator.
type ChatResult struct {
	OriginalMessage string
	Valid           bool
	Response        string
	Prompt          string
	Label           Label
	Evidence        []Match
	Context         PromptContext
	Fallback        bool
}
