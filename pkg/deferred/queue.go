package deferred

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ananyap2024/focus-flow/pkg/logger"
	"github.com/ananyap2024/focus-flow/pkg/notification"
)

// Entry is a queued notification with its bookkeeping.
type Entry struct {
	Seq          uint64
	ID           string
	Notification notification.Notification
	QueuedAt     time.Time
}

// Batch is a point-in-time copy of the queue.
// Through is the highest sequence number in the batch, or zero when empty.
type Batch struct {
	Entries []Entry
	Through uint64
}

// Len returns the number of entries in the batch.
func (b Batch) Len() int {
	return len(b.Entries)
}

// Notifications returns the batch payloads in insertion order.
func (b Batch) Notifications() []notification.Notification {
	out := make([]notification.Notification, len(b.Entries))
	for i, e := range b.Entries {
		out[i] = e.Notification
	}
	return out
}

// Queue is an in-memory FIFO holding deferred notifications.
// All methods are safe for concurrent use.
type Queue struct {
	mu      sync.Mutex
	entries []Entry
	lastSeq uint64

	capacity int
	overflow OverflowPolicy
	now      func() time.Time
	logger   *slog.Logger
}

// New creates an unbounded queue unless WithCapacity is supplied.
func New(opts ...Option) *Queue {
	q := &Queue{
		overflow: OverflowDropOldest,
		now:      time.Now,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Add appends n to the tail of the queue.
// It only fails when the queue is bounded with OverflowReject and full.
func (q *Queue) Add(n notification.Notification) (Entry, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.capacity > 0 && len(q.entries) >= q.capacity {
		if q.overflow == OverflowReject {
			return Entry{}, ErrQueueFull
		}
		evicted := q.entries[0]
		q.entries[0] = Entry{}
		q.entries = q.entries[1:]
		q.logger.LogAttrs(context.Background(), slog.LevelWarn, "Deferred queue full, dropped oldest notification",
			logger.EntryID(evicted.ID),
			logger.AppName(evicted.Notification.AppName),
			slog.Int("capacity", q.capacity),
		)
	}

	q.lastSeq++
	e := Entry{
		Seq:          q.lastSeq,
		ID:           uuid.NewString(),
		Notification: n,
		QueuedAt:     q.now(),
	}
	q.entries = append(q.entries, e)
	return e, nil
}

// GetAll returns the queued notifications in insertion order without
// modifying the queue.
func (q *Queue) GetAll() []notification.Notification {
	return q.Snapshot().Notifications()
}

// Snapshot returns a copy of every queued entry.
func (q *Queue) Snapshot() Batch {
	q.mu.Lock()
	defer q.mu.Unlock()

	b := Batch{Entries: slices.Clone(q.entries)}
	if n := len(b.Entries); n > 0 {
		b.Through = b.Entries[n-1].Seq
	}
	return b
}

// DiscardThrough removes every entry with a sequence number up to and
// including seq and returns how many were removed. Entries appended after
// a snapshot keep higher sequence numbers and survive.
func (q *Queue) DiscardThrough(seq uint64) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := 0
	for n < len(q.entries) && q.entries[n].Seq <= seq {
		n++
	}
	if n == 0 {
		return 0
	}
	q.entries = slices.Clone(q.entries[n:])
	return n
}

// Clear removes all entries. Calling it on an empty queue is a no-op.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.entries = nil
}

// Count returns the current number of queued notifications.
func (q *Queue) Count() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.entries)
}

// Capacity returns the configured bound, zero meaning unbounded.
func (q *Queue) Capacity() int {
	return q.capacity
}
