package handler

import (
	"log/slog"
	"net/http"

	"github.com/ananyap2024/focus-flow/pkg/logger"
)

// NewErrorHandler returns an ErrorHandler that logs the failure and writes a
// JSON error body. Client errors log at warn, server errors at error.
// Request ids are attached by the logger's context extractors.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(w http.ResponseWriter, r *http.Request, err error) {
		status, _ := ErrorToDetail(err)

		level := slog.LevelWarn
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		log.LogAttrs(r.Context(), level, "request error",
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Component("error_handler"),
		)

		if renderErr := JSONError(err).Render(w, r); renderErr != nil {
			log.LogAttrs(r.Context(), slog.LevelError, "failed to render error response",
				logger.Error(renderErr),
				logger.Component("error_handler"),
			)
		}
	}
}
