package triage

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ananyap2024/focus-flow/pkg/classifier"
	"github.com/ananyap2024/focus-flow/pkg/deferred"
	"github.com/ananyap2024/focus-flow/pkg/focus"
	"github.com/ananyap2024/focus-flow/pkg/logger"
	"github.com/ananyap2024/focus-flow/pkg/notification"
	"github.com/ananyap2024/focus-flow/pkg/summarizer"
)

// Outcome is the result of submitting a notification.
type Outcome struct {
	Notification notification.Notification
	Decision     notification.Decision
	Reason       string
}

// SummaryResult is returned by DrainSummary.
type SummaryResult struct {
	TotalNotifications int    `json:"total_notifications"`
	Summary            string `json:"summary"`
}

// Service composes focus evaluation, classification, the deferred queue and
// the summarizer. One instance is shared by every request handler.
type Service struct {
	classifier *classifier.Classifier
	queue      *deferred.Queue
	summarizer *summarizer.Summarizer
	logger     *slog.Logger

	// drainMu serializes drains so two concurrent summaries never report the
	// same entries. It is separate from the queue lock; submits proceed while
	// a summary is being generated.
	drainMu sync.Mutex
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for the Service.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a triage service from its collaborators.
func New(c *classifier.Classifier, q *deferred.Queue, sum *summarizer.Summarizer, opts ...Option) *Service {
	s := &Service{
		classifier: c,
		queue:      q,
		summarizer: sum,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit classifies n and queues it when the decision is QUEUE.
// The only possible error is deferred.ErrQueueFull from a bounded queue
// configured to reject.
func (s *Service) Submit(ctx context.Context, n notification.Notification, fc focus.Context) (Outcome, error) {
	focused := focus.IsFocused(fc)
	res := s.classifier.Classify(n, focused)

	out := Outcome{
		Notification: n,
		Decision:     res.Decision,
		Reason:       res.Reason,
	}

	if res.Decision != notification.DecisionQueue {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "Notification allowed",
			logger.AppName(n.AppName),
			slog.Bool("focused", focused),
		)
		return out, nil
	}

	entry, err := s.queue.Add(n)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "Failed to queue notification",
			logger.AppName(n.AppName),
			logger.Error(err),
		)
		return Outcome{}, err
	}

	s.logger.LogAttrs(ctx, slog.LevelDebug, "Notification queued",
		logger.AppName(n.AppName),
		logger.EntryID(entry.ID),
	)
	return out, nil
}

// DrainSummary summarizes every queued notification and removes exactly
// those from the queue. Notifications submitted while the summary is being
// produced stay queued for the next drain.
func (s *Service) DrainSummary(ctx context.Context) SummaryResult {
	s.drainMu.Lock()
	defer s.drainMu.Unlock()

	start := time.Now()
	batch := s.queue.Snapshot()
	sum := s.summarizer.Summarize(ctx, batch.Notifications())
	s.queue.DiscardThrough(batch.Through)

	s.logger.LogAttrs(ctx, slog.LevelInfo, "Deferred queue drained",
		logger.Count(batch.Len()),
		logger.SummarySource(string(sum.Source)),
		logger.Duration(time.Since(start)),
	)

	return SummaryResult{
		TotalNotifications: batch.Len(),
		Summary:            sum.Text,
	}
}

// Pending returns the number of notifications waiting for the next summary.
func (s *Service) Pending() int {
	return s.queue.Count()
}
