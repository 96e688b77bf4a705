package notification

import (
	"time"
)

// Decision tells the caller what to do with an incoming notification.
type Decision string

const (
	// DecisionAllow delivers the notification immediately.
	DecisionAllow Decision = "ALLOW"
	// DecisionQueue defers the notification until the next summary.
	DecisionQueue Decision = "QUEUE"
)

func (d Decision) String() string {
	return string(d)
}

// Notification is the core domain value. It has no identity beyond its
// fields and is never mutated after ingestion.
type Notification struct {
	AppName   string     `json:"app_name"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

