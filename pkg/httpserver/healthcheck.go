package httpserver

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ananyap2024/focus-flow/pkg/logger"
)

// CheckFunc reports whether a dependency is usable.
type CheckFunc func(context.Context) error

// HealthCheckHandler answers {"status":"ok"} with 200 when every check
// passes (or none are given) and {"status":"unavailable"} with 503 otherwise.
func HealthCheckHandler(log *slog.Logger, checks ...CheckFunc) http.HandlerFunc {
	if log == nil {
		log = slog.Default()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := "ok", http.StatusOK
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.LogAttrs(r.Context(), slog.LevelError, "Health check failed", logger.Error(err))
				status, code = "unavailable", http.StatusServiceUnavailable
				break
			}
		}

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(map[string]string{"status": status})
	}
}
