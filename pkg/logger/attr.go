package logger

import (
	"log/slog"
	"time"
)

// Error records err under the key "error". Nil errors yield an empty Attr,
// which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// AppName records the notification's source app under the key "app_name".
func AppName(name string) slog.Attr {
	return slog.String("app_name", name)
}

// Decision records a triage decision under the key "decision".
func Decision(d string) slog.Attr {
	return slog.String("decision", d)
}

// EntryID records a deferred queue entry identifier under the key "entry_id".
func EntryID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("entry_id", id)
}

// Count records a number of notifications under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records elapsed time under the key "duration".
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// SummarySource records how a summary was produced under the key "summary_source".
func SummarySource(src string) slog.Attr {
	return slog.String("summary_source", src)
}
