package handler

import (
	"context"
	"net/http"
)

// HandlerFunc handles a typed request. R is populated by the configured
// binders before the handler runs.
//
//	h := handler.HandlerFunc[CreateRequest](
//		func(ctx context.Context, req CreateRequest) handler.Response {
//			return handler.JSON(result, handler.WithJSONStatus(http.StatusCreated))
//		},
//	)
type HandlerFunc[R any] func(ctx context.Context, req R) Response

// Response renders itself to an http.ResponseWriter.
type Response interface {
	Render(w http.ResponseWriter, r *http.Request) error
}

// Bind parses HTTP requests into typed values.
type Bind func(r *http.Request, v any) error

// ErrorHandler writes a response for an error raised while binding or
// rendering.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// WrapOption configures Wrap.
type WrapOption func(*wrapConfig)

type wrapConfig struct {
	binders      []Bind
	errorHandler ErrorHandler
}

// WithBinders sets request binders applied in order.
func WithBinders(binders ...Bind) WrapOption {
	return func(c *wrapConfig) {
		c.binders = append(c.binders, binders...)
	}
}

// WithErrorHandler sets a custom error handler.
func WithErrorHandler(h ErrorHandler) WrapOption {
	return func(c *wrapConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

func defaultErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	_ = JSONError(err).Render(w, r)
}

// Wrap converts a typed HandlerFunc to http.HandlerFunc.
//
//	r.Post("/items", handler.Wrap(h,
//		handler.WithBinders(binder.BindJSON(), binder.BindQuery()),
//		handler.WithErrorHandler(handler.NewErrorHandler(log)),
//	))
func Wrap[R any](h HandlerFunc[R], opts ...WrapOption) http.HandlerFunc {
	cfg := &wrapConfig{
		errorHandler: defaultErrorHandler,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		var req R
		for _, bind := range cfg.binders {
			if err := bind(r, &req); err != nil {
				cfg.errorHandler(w, r, err)
				return
			}
		}

		response := h(r.Context(), req)
		if response == nil {
			cfg.errorHandler(w, r, ErrNilResponse)
			return
		}
		if err := response.Render(w, r); err != nil {
			cfg.errorHandler(w, r, err)
		}
	}
}
