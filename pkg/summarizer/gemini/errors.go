package gemini

import "errors"

var (
	// ErrMissingAPIKey is returned by New when no API key is configured.
	ErrMissingAPIKey = errors.New("gemini API key is not set")

	// ErrClientInit is returned when the Gemini client cannot be created.
	ErrClientInit = errors.New("failed to create gemini client")

	// ErrEmptyResponse is returned when the model produced no text.
	ErrEmptyResponse = errors.New("empty response from gemini")
)
