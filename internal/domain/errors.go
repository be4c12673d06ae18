package domain

import "errors"

var (
	// ErrUnknownLabel signals a label outside the closed set.
	ErrUnknownLabel = errors.New("unknown label")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
	// ErrGenerationUnavailable signals a chat generation provider failure.
	ErrGenerationUnavailable = errors.New("generation unavailable")
)
