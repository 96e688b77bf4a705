package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// DefaultModel is used when Config.Model is empty.
const DefaultModel = "gemini-2.5-flash"

// Config holds the Gemini API settings.
type Config struct {
	APIKey string
	Model  string
}

// models is the subset of *genai.Models the generator needs.
type models interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator produces summaries with a Gemini model.
type Generator struct {
	models models
	model  string
}

// New creates a Generator. It returns ErrMissingAPIKey when no key is set
// so that callers can switch to fallback-only mode.
func New(ctx context.Context, cfg Config) (*Generator, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Join(ErrClientInit, err)
	}

	return newGenerator(client.Models, cfg.Model), nil
}

func newGenerator(m models, model string) *Generator {
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultModel
	}
	return &Generator{models: m, model: model}
}

// Model returns the model identifier requests are sent to.
func (g *Generator) Model() string {
	return g.model
}

// Generate sends prompt as a single user turn and returns the response text.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate (%s): %w", g.model, err)
	}
	if resp == nil {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
