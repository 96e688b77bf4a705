package summarizer_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ananyap2024/focus-flow/pkg/notification"
	"github.com/ananyap2024/focus-flow/pkg/summarizer"
)

// MockGenerator for testing Summarizer
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func batch(apps ...string) []notification.Notification {
	out := make([]notification.Notification, len(apps))
	for i, app := range apps {
		out[i] = notification.Notification{AppName: app, Title: "title", Message: "msg " + app}
	}
	return out
}

func quietLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	gen := &MockGenerator{}
	s := summarizer.New(gen)

	sum := s.Summarize(context.Background(), nil)
	assert.Equal(t, "No notifications to summarize.", sum.Text)
	assert.Equal(t, summarizer.SourceEmpty, sum.Source)
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestSummarize_FallbackOnly(t *testing.T) {
	t.Parallel()

	for _, gen := range []summarizer.Generator{nil, summarizer.Unavailable{}, &summarizer.Unavailable{}} {
		s := summarizer.New(gen)
		assert.False(t, s.Generative())

		sum := s.Summarize(context.Background(), batch("Instagram", "Mail", "Twitter"))
		assert.Equal(t, "You missed 3 notifications while focusing.", sum.Text)
		assert.Equal(t, summarizer.SourceFallback, sum.Source)
	}
}

func TestSummarize_Generated(t *testing.T) {
	t.Parallel()

	ns := batch("Instagram", "Mail")
	gen := &MockGenerator{}
	gen.On("Generate", mock.Anything, summarizer.BuildPrompt(ns)).Return("Two social updates.", nil).Once()

	s := summarizer.New(gen)
	assert.True(t, s.Generative())

	sum := s.Summarize(context.Background(), ns)
	assert.Equal(t, "Two social updates.", sum.Text)
	assert.Equal(t, summarizer.SourceGenerated, sum.Source)
	gen.AssertExpectations(t)
}

func TestSummarize_GeneratorFailures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		err     error
		wantLog string
	}{
		{name: "error", err: errors.New("quota exceeded"), wantLog: "quota exceeded"},
		{name: "empty text", text: "", wantLog: "empty response"},
		{name: "whitespace text", text: "  \n", wantLog: "empty response"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}
			gen := &MockGenerator{}
			gen.On("Generate", mock.Anything, mock.Anything).Return(tt.text, tt.err).Once()

			s := summarizer.New(gen, summarizer.WithLogger(quietLogger(buf)))
			sum := s.Summarize(context.Background(), batch("a", "b"))

			assert.Equal(t, "You missed 2 notifications while focusing.", sum.Text)
			assert.Equal(t, summarizer.SourceFallback, sum.Source)
			assert.Contains(t, buf.String(), "level=ERROR")
			assert.Contains(t, buf.String(), tt.wantLog)
			gen.AssertNumberOfCalls(t, "Generate", 1)
		})
	}
}

func TestSummarize_Timeout(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	gen := summarizer.GeneratorFunc(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	s := summarizer.New(gen,
		summarizer.WithTimeout(20*time.Millisecond),
		summarizer.WithLogger(quietLogger(buf)),
	)

	start := time.Now()
	sum := s.Summarize(context.Background(), batch("a"))

	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Equal(t, "You missed 1 notifications while focusing.", sum.Text)
	assert.Equal(t, summarizer.SourceFallback, sum.Source)
	assert.Contains(t, buf.String(), "timed out")
}

func TestSummarize_TimeoutIgnoredByGenerator(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	buf := &bytes.Buffer{}
	gen := summarizer.GeneratorFunc(func(context.Context, string) (string, error) {
		<-release
		return "late", nil
	})

	s := summarizer.New(gen,
		summarizer.WithTimeout(50*time.Millisecond),
		summarizer.WithLogger(quietLogger(buf)),
	)

	start := time.Now()
	sum := s.Summarize(context.Background(), batch("a", "b"))

	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, "You missed 2 notifications while focusing.", sum.Text)
	assert.Equal(t, summarizer.SourceFallback, sum.Source)
	assert.Contains(t, buf.String(), "timed out")
}

func TestSummarize_Panic(t *testing.T) {
	t.Parallel()

	gen := summarizer.GeneratorFunc(func(context.Context, string) (string, error) {
		panic("sdk bug")
	})
	s := summarizer.New(gen, summarizer.WithLogger(quietLogger(&bytes.Buffer{})))

	var sum summarizer.Summary
	require.NotPanics(t, func() {
		sum = s.Summarize(context.Background(), batch("a", "b", "c", "d"))
	})
	assert.Equal(t, "You missed 4 notifications while focusing.", sum.Text)
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	prompt := summarizer.BuildPrompt([]notification.Notification{
		{AppName: "Instagram", Title: "like", Message: "x liked your post"},
		{AppName: "Mail", Title: "Weekly Report", Message: "Review requested"},
	})

	lines := strings.Split(strings.TrimRight(prompt, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "Summarize the following missed notifications"))
	assert.Empty(t, lines[1])
	assert.Equal(t, "- App: Instagram, Title: like, Message: x liked your post", lines[2])
	assert.Equal(t, "- App: Mail, Title: Weekly Report, Message: Review requested", lines[3])
}

func TestFallbackText(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "You missed 1 notifications while focusing.", summarizer.FallbackText(1))
	assert.Equal(t, "You missed 12 notifications while focusing.", summarizer.FallbackText(12))
}
