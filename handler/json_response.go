package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"

	"github.com/ananyap2024/focus-flow/binder"
)

// ErrorBody is the envelope for JSON error responses.
type ErrorBody struct {
	Error *ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   any
}

func (j jsonResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures JSON response
type JSONOption func(*jsonResponse)

// WithJSONStatus sets custom HTTP status code
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// JSON encodes v as the response body without an envelope.
func JSON(v any, opts ...JSONOption) Response {
	r := &jsonResponse{
		status: http.StatusOK,
		body:   v,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err as {"error": {...}} with a status derived from it.
func JSONError(err error, opts ...JSONOption) Response {
	status, detail := ErrorToDetail(err)
	r := &jsonResponse{
		status: status,
		body:   ErrorBody{Error: detail},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ErrorToDetail maps err to an HTTP status and a client-safe ErrorDetail.
// Unrecognised errors become 500 without exposing their message.
func ErrorToDetail(err error) (int, *ErrorDetail) {
	var (
		valErr   ValidationError
		fieldErr binder.FieldErrors
		httpErr  HTTPError
	)

	switch {
	case errors.As(err, &valErr):
		return http.StatusUnprocessableEntity, validationDetail(err, valErr)
	case errors.As(err, &fieldErr):
		return http.StatusUnprocessableEntity, validationDetail(err, fieldErr)
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, &ErrorDetail{Code: ErrUnsupportedMediaType.Key, Message: err.Error()}
	case errors.Is(err, binder.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, &ErrorDetail{Code: ErrRequestTooLarge.Key, Message: err.Error()}
	case errors.Is(err, binder.ErrInvalidJSON):
		return ErrUnprocessableEntity.Code, &ErrorDetail{Code: ErrUnprocessableEntity.Key, Message: err.Error()}
	case errors.Is(err, binder.ErrInvalidQuery):
		return http.StatusBadRequest, &ErrorDetail{Code: ErrBadRequest.Key, Message: err.Error()}
	case errors.As(err, &httpErr):
		return httpErr.Code, &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	default:
		return ErrInternalServerError.Code, &ErrorDetail{
			Code:    ErrInternalServerError.Key,
			Message: http.StatusText(ErrInternalServerError.Code),
		}
	}
}

func validationDetail(err error, fields map[string][]string) *ErrorDetail {
	detail := &ErrorDetail{
		Code:    "validation_error",
		Message: err.Error(),
	}
	if len(fields) > 0 {
		detail.Details = make(map[string][]string, len(fields))
		maps.Copy(detail.Details, fields)
	}
	return detail
}
