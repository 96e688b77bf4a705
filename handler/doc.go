// Package handler adapts typed request handlers to net/http.
//
// Wrap runs the configured binders to fill a request value, calls the
// handler and renders the returned Response. Errors from binding or
// rendering go through an ErrorHandler; NewErrorHandler logs them and
// writes a JSON error body whose status is chosen by ErrorToDetail:
//
//   - ValidationError and binder.FieldErrors: 422 with per-field details
//   - missing or wrong Content-Type: 415
//   - malformed JSON: 422
//   - HTTPError: its own status code
//   - anything else: 500 with a generic message
//
// JSON renders success bodies as-is, with no envelope.
package handler
