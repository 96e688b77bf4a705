package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ananyap2024/focus-flow/handler"
	"github.com/ananyap2024/focus-flow/pkg/httpserver"
	"github.com/ananyap2024/focus-flow/pkg/requestid"
	"github.com/ananyap2024/focus-flow/svc/triage"
)

// Option configures the router.
type Option func(*options)

type options struct {
	logger         *slog.Logger
	allowedOrigins []string
}

// WithLogger sets the logger used for request and error logging.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithAllowedOrigins sets the CORS origins. Empty means any origin.
func WithAllowedOrigins(origins ...string) Option {
	return func(o *options) {
		if len(origins) > 0 {
			o.allowedOrigins = origins
		}
	}
}

// NewRouter builds the HTTP surface over svc.
//
//	POST /api/notify?focus_mode=bool  classify and maybe queue a notification
//	GET  /api/summary                 drain the deferred queue into a summary
//	GET  /api/queue                   number of pending notifications
//	GET  /                            welcome message
//	GET  /health                      liveness
func NewRouter(svc *triage.Service, opts ...Option) http.Handler {
	o := &options{
		logger:         slog.Default(),
		allowedOrigins: []string{"*"},
	}
	for _, opt := range opts {
		opt(o)
	}

	h := &handlers{svc: svc}
	errHandler := handler.WithErrorHandler(handler.NewErrorHandler(o.logger))

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		middleware.Recoverer,
		requestLogger(o.logger),
		cors.Handler(cors.Options{
			AllowedOrigins:   o.allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			ExposedHeaders:   []string{requestid.Header},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	)

	r.NotFound(handler.Wrap(notFound, errHandler))
	r.MethodNotAllowed(handler.Wrap(methodNotAllowed, errHandler))

	r.Get("/", handler.Wrap(welcome, errHandler))
	r.Get("/health", httpserver.HealthCheckHandler(o.logger))

	r.Route("/api", func(r chi.Router) {
		r.Post("/notify", handler.Wrap(h.notify, errHandler, notifyBinders))
		r.Get("/summary", handler.Wrap(h.summary, errHandler))
		r.Get("/queue", handler.Wrap(h.queue, errHandler))
	})

	return r
}
