package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kailas-cloud/intentd/internal/domain"
	"github.com/kailas-cloud/intentd/internal/repository/corpus"
)

// formatReport renders dump entries as a plain-text inspection report.
// Lengths are in characters, not bytes; the corpus is mostly Spanish.
func formatReport(ns domain.Namespace, entries []corpus.DumpEntry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== CHUNKS EXPORT - Namespace: %s ===\n", ns)
	fmt.Fprintf(&b, "Total chunks retrieved: %d\n", len(entries))
	b.WriteString(strings.Repeat("=", 60) + "\n\n")

	for i, e := range entries {
		fmt.Fprintf(&b, "CHUNK #%d\n", i+1)
		fmt.Fprintf(&b, "Source: %s\n", metaOr(e.Meta, "source", "Unknown"))
		fmt.Fprintf(&b, "Chunk ID: %s\n", metaOr(e.Meta, "chunk", "Unknown"))
		fmt.Fprintf(&b, "Length: %d characters\n", utf8.RuneCountInString(e.Content))
		b.WriteString(strings.Repeat("-", 40) + "\n")
		b.WriteString(e.Content + "\n")
		b.WriteString(strings.Repeat("-", 40) + "\n\n")
	}

	return b.String()
}

func metaOr(meta map[string]string, key, fallback string) string {
	if v, ok := meta[key]; ok && v != "" {
		return v
	}
	return fallback
}
