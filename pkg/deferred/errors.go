package deferred

import "errors"

var (
	// ErrQueueFull is returned by Add when a bounded queue rejects new entries.
	ErrQueueFull = errors.New("deferred queue is full")

	// ErrUnknownOverflowPolicy is returned for unrecognized overflow policy names.
	ErrUnknownOverflowPolicy = errors.New("unknown overflow policy")
)
