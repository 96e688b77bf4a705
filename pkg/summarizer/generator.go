package summarizer

import (
	"context"
)

// Generator is the external text generation capability.
//
// The (text, error) pair is the result: a non-nil error or blank text is a
// failure, and the Summarizer falls back to its deterministic digest.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts an ordinary function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

// Generate calls f(ctx, prompt).
func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// Unavailable is the fallback-only generator used when no credential is
// configured. It never performs I/O.
type Unavailable struct{}

// Generate always fails with ErrGeneratorUnavailable.
func (Unavailable) Generate(context.Context, string) (string, error) {
	return "", ErrGeneratorUnavailable
}

func isUnavailable(g Generator) bool {
	switch g.(type) {
	case nil, Unavailable, *Unavailable:
		return true
	}
	return false
}
