package deferred

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// OverflowPolicy decides what a bounded queue does when it is full.
type OverflowPolicy string

const (
	// OverflowDropOldest evicts the head to make room for the new entry.
	OverflowDropOldest OverflowPolicy = "drop_oldest"
	// OverflowReject refuses the new entry with ErrQueueFull.
	OverflowReject OverflowPolicy = "reject"
)

// ParseOverflowPolicy converts a config value into an OverflowPolicy.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch p := OverflowPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return OverflowDropOldest, nil
	case OverflowDropOldest, OverflowReject:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOverflowPolicy, s)
	}
}

// Option configures a Queue.
type Option func(*Queue)

// WithCapacity bounds the queue. Zero or negative means unbounded.
func WithCapacity(n int) Option {
	return func(q *Queue) {
		if n < 0 {
			n = 0
		}
		q.capacity = n
	}
}

// WithOverflow sets the policy applied when a bounded queue is full.
func WithOverflow(p OverflowPolicy) Option {
	return func(q *Queue) {
		if p != "" {
			q.overflow = p
		}
	}
}

// WithLogger sets the logger used to report evictions.
func WithLogger(l *slog.Logger) Option {
	return func(q *Queue) {
		if l != nil {
			q.logger = l
		}
	}
}

// WithClock overrides the time source used for Entry.QueuedAt.
func WithClock(now func() time.Time) Option {
	return func(q *Queue) {
		if now != nil {
			q.now = now
		}
	}
}
