package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ananyap2024/focus-flow/pkg/logger"
	"github.com/ananyap2024/focus-flow/pkg/notification"
)

// DefaultTimeout bounds a single generator call.
const DefaultTimeout = 15 * time.Second

// EmptyText is returned when there is nothing to summarize.
const EmptyText = "No notifications to summarize."

// Source tells how a summary text was produced.
type Source string

const (
	SourceEmpty     Source = "empty"
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

// Summary is the digest of a batch of notifications.
type Summary struct {
	Text   string
	Source Source
}

// FallbackText returns the deterministic digest for n notifications.
func FallbackText(n int) string {
	return fmt.Sprintf("You missed %d notifications while focusing.", n)
}

// Summarizer turns a batch of notifications into a digest.
// Callers never observe a failure: any generator problem resolves to the
// deterministic fallback.
type Summarizer struct {
	generator Generator
	timeout   time.Duration
	logger    *slog.Logger
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithTimeout bounds each generator call. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(s *Summarizer) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithLogger sets the logger used to report generator failures.
func WithLogger(l *slog.Logger) Option {
	return func(s *Summarizer) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Summarizer. A nil generator means fallback-only mode.
func New(gen Generator, opts ...Option) *Summarizer {
	if gen == nil {
		gen = Unavailable{}
	}
	s := &Summarizer{
		generator: gen,
		timeout:   DefaultTimeout,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generative reports whether an external generator is configured.
func (s *Summarizer) Generative() bool {
	return !isUnavailable(s.generator)
}

// Summarize produces the digest for ns. The generator is tried once; there
// are no retries.
func (s *Summarizer) Summarize(ctx context.Context, ns []notification.Notification) Summary {
	if len(ns) == 0 {
		return Summary{Text: EmptyText, Source: SourceEmpty}
	}

	fallback := Summary{Text: FallbackText(len(ns)), Source: SourceFallback}
	if !s.Generative() {
		return fallback
	}

	text, err := s.generate(ctx, BuildPrompt(ns))
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelError, "Summary generation failed, using fallback",
			logger.Component("summarizer"),
			logger.Count(len(ns)),
			logger.Error(err),
		)
		return fallback
	}

	return Summary{Text: text, Source: SourceGenerated}
}

type generation struct {
	text string
	err  error
}

// generate runs the generator in its own goroutine so the deadline holds even
// for generators that ignore ctx. A call that outlives the deadline is
// abandoned and its result discarded.
func (s *Summarizer) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	done := make(chan generation, 1)
	go func() {
		var g generation
		defer func() {
			if r := recover(); r != nil {
				g = generation{err: fmt.Errorf("%w: %v", ErrGeneratorPanic, r)}
			}
			done <- g
		}()
		g.text, g.err = s.generator.Generate(ctx, prompt)
	}()

	var g generation
	select {
	case g = <-done:
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", errors.Join(ErrGenerationTimeout, ctx.Err())
		}
		return "", ctx.Err()
	}

	if g.err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", errors.Join(ErrGenerationTimeout, g.err)
		}
		return "", g.err
	}
	if strings.TrimSpace(g.text) == "" {
		return "", ErrEmptyGeneration
	}

	s.logger.LogAttrs(ctx, slog.LevelDebug, "Summary generated",
		logger.Component("summarizer"),
		logger.Duration(time.Since(start)),
	)
	return g.text, nil
}
