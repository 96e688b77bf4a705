package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// DefaultMaxBodySize caps JSON request bodies.
const DefaultMaxBodySize int64 = 1 << 20

// BindJSON decodes an application/json body into v and validates it with
// `validate` struct tags. Unknown fields are ignored.
//
//	type CreateRequest struct {
//		Name *string `json:"name" validate:"required"`
//	}
func BindJSON() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		ct := r.Header.Get("Content-Type")
		if ct == "" {
			return fmt.Errorf("%w: expected application/json", ErrMissingContentType)
		}
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, ct)
		}

		body := http.MaxBytesReader(nil, r.Body, DefaultMaxBodySize)
		dec := json.NewDecoder(body)
		if err := dec.Decode(v); err != nil {
			var maxErr *http.MaxBytesError
			switch {
			case errors.As(err, &maxErr):
				return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, maxErr.Limit)
			case errors.Is(err, io.EOF):
				return fmt.Errorf("%w: empty body", ErrInvalidJSON)
			default:
				return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
			}
		}

		var extra json.RawMessage
		if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidJSON)
		}

		return Validate(v)
	}
}
