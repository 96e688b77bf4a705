package binder_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ananyap2024/focus-flow/binder"
)

type payload struct {
	AppName *string `json:"app_name" validate:"required"`
	Title   *string `json:"title" validate:"required"`
	Note    string  `json:"note"`
}

func newJSONRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/test", bytes.NewBufferString(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestBindJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		t.Parallel()
		req := newJSONRequest(`{"app_name":"Slack","title":"Hi"}`, "application/json")

		var p payload
		require.NoError(t, binder.BindJSON()(req, &p))
		require.NotNil(t, p.AppName)
		assert.Equal(t, "Slack", *p.AppName)
		assert.Equal(t, "Hi", *p.Title)
	})

	t.Run("content type with charset", func(t *testing.T) {
		t.Parallel()
		req := newJSONRequest(`{"app_name":"a","title":"b"}`, "application/json; charset=utf-8")

		var p payload
		assert.NoError(t, binder.BindJSON()(req, &p))
	})

	t.Run("empty strings satisfy required", func(t *testing.T) {
		t.Parallel()
		req := newJSONRequest(`{"app_name":"","title":""}`, "application/json")

		var p payload
		require.NoError(t, binder.BindJSON()(req, &p))
		assert.Equal(t, "", *p.AppName)
	})

	t.Run("unknown fields are ignored", func(t *testing.T) {
		t.Parallel()
		req := newJSONRequest(`{"app_name":"a","title":"b","extra":1}`, "application/json")

		var p payload
		assert.NoError(t, binder.BindJSON()(req, &p))
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()
		req := newJSONRequest(`{}`, "")

		var p payload
		assert.ErrorIs(t, binder.BindJSON()(req, &p), binder.ErrMissingContentType)
	})

	t.Run("wrong content type", func(t *testing.T) {
		t.Parallel()
		req := newJSONRequest(`{}`, "text/plain")

		var p payload
		assert.ErrorIs(t, binder.BindJSON()(req, &p), binder.ErrUnsupportedMediaType)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		t.Parallel()
		req := newJSONRequest(`{"app_name":`, "application/json")

		var p payload
		assert.ErrorIs(t, binder.BindJSON()(req, &p), binder.ErrInvalidJSON)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		req := newJSONRequest(``, "application/json")

		var p payload
		assert.ErrorIs(t, binder.BindJSON()(req, &p), binder.ErrInvalidJSON)
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()
		req := newJSONRequest(`{"app_name":"a","title":"b"}{}`, "application/json")

		var p payload
		assert.ErrorIs(t, binder.BindJSON()(req, &p), binder.ErrInvalidJSON)
	})

	t.Run("body too large", func(t *testing.T) {
		t.Parallel()
		big := `{"app_name":"a","title":"b","note":"` + strings.Repeat("x", int(binder.DefaultMaxBodySize)) + `"}`
		req := newJSONRequest(big, "application/json")

		var p payload
		assert.ErrorIs(t, binder.BindJSON()(req, &p), binder.ErrBodyTooLarge)
	})

	t.Run("missing required fields", func(t *testing.T) {
		t.Parallel()
		req := newJSONRequest(`{"note":"x"}`, "application/json")

		var p payload
		err := binder.BindJSON()(req, &p)

		var fe binder.FieldErrors
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, []string{"field required"}, fe["app_name"])
		assert.Equal(t, []string{"field required"}, fe["title"])
		assert.NotContains(t, fe, "note")
	})
}
