// Package deferred holds notifications suppressed during focus mode until
// the next summary drains them.
//
// The queue is FIFO and preserves insertion order. It is mutated only by
// appends and by removing a drained prefix:
//
//	q := deferred.New()
//	q.Add(n)
//
//	batch := q.Snapshot()
//	summarize(batch.Notifications()) // no lock held here
//	q.DiscardThrough(batch.Through)
//
// Removing by sequence number instead of clearing everything guarantees that
// notifications added while a summary is being produced are neither lost nor
// reported twice.
//
// By default the queue is unbounded. WithCapacity bounds it; WithOverflow
// selects between evicting the oldest entry and rejecting with ErrQueueFull.
package deferred
