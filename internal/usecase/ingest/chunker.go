package ingest

import (
	"strings"
	"unicode/utf8"
)

// SplitText splits a document into chunks of at most maxLen runes, packing
// whole sentences greedily. Sentences end at ". ", "! " or "? "; a single
// sentence longer than maxLen becomes its own oversized chunk rather than
// being cut mid-idea.
func SplitText(text string, maxLen int) []string {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	if text == "" {
		return nil
	}

	var chunks []string
	current := ""

	for _, sentence := range splitSentences(text) {
		if utf8.RuneCountInString(current)+utf8.RuneCountInString(sentence) > maxLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSpace(current))
			}
			current = sentence
		} else {
			current += " " + sentence
		}
	}

	if current != "" {
		chunks = append(chunks, strings.TrimSpace(current))
	}

	return chunks
}

// splitSentences cuts text after terminal punctuation followed by spaces,
// keeping the punctuation with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	start := 0

	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' && c != '!' && c != '?' {
			continue
		}
		if i+1 >= len(text) || text[i+1] != ' ' {
			continue
		}

		sentences = append(sentences, text[start:i+1])

		j := i + 1
		for j < len(text) && text[j] == ' ' {
			j++
		}
		start = j
		i = j - 1
	}

	if start < len(text) {
		sentences = append(sentences, text[start:])
	}

	return sentences
}
