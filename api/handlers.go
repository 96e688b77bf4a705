package api

import (
	"context"
	"errors"
	"time"

	"github.com/ananyap2024/focus-flow/binder"
	"github.com/ananyap2024/focus-flow/handler"
	"github.com/ananyap2024/focus-flow/pkg/deferred"
	"github.com/ananyap2024/focus-flow/pkg/focus"
	"github.com/ananyap2024/focus-flow/pkg/notification"
	"github.com/ananyap2024/focus-flow/svc/triage"
)

// WelcomeMessage is returned by GET /. It names the API endpoints since no
// /docs route is served.
const WelcomeMessage = "Welcome to FocusFlow Backend. Use /api/notify and /api/summary."

// NotifyRequest is the body of POST /api/notify plus its focus_mode query
// parameter. Pointer fields distinguish a missing field from an empty one.
type NotifyRequest struct {
	AppName   *string    `json:"app_name" validate:"required"`
	Title     *string    `json:"title" validate:"required"`
	Message   *string    `json:"message" validate:"required"`
	Timestamp *time.Time `json:"timestamp"`
	FocusMode string     `json:"-" query:"focus_mode"`
}

// NotifyResponse echoes the notification with its triage decision.
type NotifyResponse struct {
	AppName   string                `json:"app_name"`
	Title     string                `json:"title"`
	Message   string                `json:"message"`
	Timestamp *time.Time            `json:"timestamp"`
	Decision  notification.Decision `json:"decision"`
	Reason    string                `json:"reason"`
}

// QueueResponse reports the deferred queue size.
type QueueResponse struct {
	Pending int `json:"pending"`
}

var notifyBinders = handler.WithBinders(binder.BindJSON(), binder.BindQuery())

type handlers struct {
	svc *triage.Service
}

func (h *handlers) notify(ctx context.Context, req NotifyRequest) handler.Response {
	focused, err := focus.ParseFlag(req.FocusMode)
	if err != nil {
		return handler.JSONError(handler.NewValidationError("focus_mode", "value could not be parsed to a boolean"))
	}

	n := notification.Notification{
		AppName:   *req.AppName,
		Title:     *req.Title,
		Message:   *req.Message,
		Timestamp: req.Timestamp,
	}

	out, err := h.svc.Submit(ctx, n, focus.On(focused))
	if err != nil {
		if errors.Is(err, deferred.ErrQueueFull) {
			return handler.JSONError(errors.Join(handler.ErrServiceUnavailable, err))
		}
		return handler.JSONError(err)
	}

	return handler.JSON(NotifyResponse{
		AppName:   out.Notification.AppName,
		Title:     out.Notification.Title,
		Message:   out.Notification.Message,
		Timestamp: out.Notification.Timestamp,
		Decision:  out.Decision,
		Reason:    out.Reason,
	})
}

func (h *handlers) summary(ctx context.Context, _ struct{}) handler.Response {
	return handler.JSON(h.svc.DrainSummary(ctx))
}

func (h *handlers) queue(_ context.Context, _ struct{}) handler.Response {
	return handler.JSON(QueueResponse{Pending: h.svc.Pending()})
}

func welcome(context.Context, struct{}) handler.Response {
	return handler.JSON(map[string]string{"message": WelcomeMessage})
}

func notFound(context.Context, struct{}) handler.Response {
	return handler.JSONError(handler.ErrNotFound)
}

func methodNotAllowed(context.Context, struct{}) handler.Response {
	return handler.JSONError(handler.ErrMethodNotAllowed)
}
