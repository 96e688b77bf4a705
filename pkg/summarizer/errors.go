package summarizer

import "errors"

var (
	// ErrGeneratorUnavailable is returned by the Unavailable generator.
	ErrGeneratorUnavailable = errors.New("text generator is not configured")

	// ErrEmptyGeneration is reported when the generator returns blank text.
	ErrEmptyGeneration = errors.New("text generator returned an empty response")

	// ErrGenerationTimeout is reported when the generator misses its deadline.
	ErrGenerationTimeout = errors.New("text generation timed out")

	// ErrGeneratorPanic is reported when the generator panics.
	ErrGeneratorPanic = errors.New("text generator panicked")
)
