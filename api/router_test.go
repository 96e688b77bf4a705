package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ananyap2024/focus-flow/api"
	"github.com/ananyap2024/focus-flow/handler"
	"github.com/ananyap2024/focus-flow/pkg/classifier"
	"github.com/ananyap2024/focus-flow/pkg/deferred"
	"github.com/ananyap2024/focus-flow/pkg/summarizer"
	"github.com/ananyap2024/focus-flow/svc/triage"
)

func newRouter(t *testing.T, gen summarizer.Generator, qopts ...deferred.Option) http.Handler {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := triage.New(
		classifier.New(),
		deferred.New(append(qopts, deferred.WithLogger(log))...),
		summarizer.New(gen, summarizer.WithLogger(log)),
		triage.WithLogger(log),
	)
	return api.NewRouter(svc, api.WithLogger(log))
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestNotify(t *testing.T) {
	t.Parallel()

	t.Run("urgent app in focus is allowed", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, summarizer.Unavailable{})

		rec := do(t, h, http.MethodPost, "/api/notify?focus_mode=true",
			`{"app_name":"Slack","title":"Standup","message":"Starting now"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[api.NotifyResponse](t, rec)
		assert.Equal(t, "ALLOW", string(resp.Decision))
		assert.Equal(t, "app 'Slack' is marked as urgent", resp.Reason)
		assert.Equal(t, "Standup", resp.Title)
		assert.Nil(t, resp.Timestamp)
	})

	t.Run("non-urgent app in focus is queued", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, summarizer.Unavailable{})

		rec := do(t, h, http.MethodPost, "/api/notify?focus_mode=true",
			`{"app_name":"Instagram","title":"New like","message":"Someone liked your post"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[api.NotifyResponse](t, rec)
		assert.Equal(t, "QUEUE", string(resp.Decision))
		assert.Equal(t, "focus mode is active and app is not urgent", resp.Reason)

		queue := decode[api.QueueResponse](t, do(t, h, http.MethodGet, "/api/queue", ""))
		assert.Equal(t, 1, queue.Pending)
	})

	t.Run("focus mode defaults to off", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, summarizer.Unavailable{})

		rec := do(t, h, http.MethodPost, "/api/notify",
			`{"app_name":"Instagram","title":"t","message":"m","timestamp":"2024-05-01T10:00:00Z"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[api.NotifyResponse](t, rec)
		assert.Equal(t, "ALLOW", string(resp.Decision))
		assert.Equal(t, "user is not in focus mode", resp.Reason)
		require.NotNil(t, resp.Timestamp)
		assert.Equal(t, 2024, resp.Timestamp.Year())
	})

	t.Run("empty focus flag means not focused", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, summarizer.Unavailable{})

		rec := do(t, h, http.MethodPost, "/api/notify?focus_mode=",
			`{"app_name":"Instagram","title":"t","message":"m"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user is not in focus mode", decode[api.NotifyResponse](t, rec).Reason)
	})

	t.Run("empty strings are accepted", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, summarizer.Unavailable{})

		rec := do(t, h, http.MethodPost, "/api/notify?focus_mode=1",
			`{"app_name":"","title":"","message":""}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "QUEUE", string(decode[api.NotifyResponse](t, rec).Decision))
	})

	t.Run("missing field is 422", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, summarizer.Unavailable{})

		rec := do(t, h, http.MethodPost, "/api/notify", `{"app_name":"Slack","title":"t"}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		body := decode[handler.ErrorBody](t, rec)
		assert.Equal(t, "validation_error", body.Error.Code)
		assert.Contains(t, body.Error.Details, "message")
	})

	t.Run("bad focus flag is 422", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, summarizer.Unavailable{})

		rec := do(t, h, http.MethodPost, "/api/notify?focus_mode=maybe",
			`{"app_name":"Slack","title":"t","message":"m"}`)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, decode[handler.ErrorBody](t, rec).Error.Details, "focus_mode")
	})

	t.Run("malformed JSON is 422", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, summarizer.Unavailable{})

		rec := do(t, h, http.MethodPost, "/api/notify", `{"app_name":`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("wrong content type is 415", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, summarizer.Unavailable{})

		req := httptest.NewRequest(http.MethodPost, "/api/notify", bytes.NewBufferString("hello"))
		req.Header.Set("Content-Type", "text/plain")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	})

	t.Run("full rejecting queue is 503", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, summarizer.Unavailable{},
			deferred.WithCapacity(1), deferred.WithOverflow(deferred.OverflowReject))
		body := `{"app_name":"Instagram","title":"t","message":"m"}`

		require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/notify?focus_mode=true", body).Code)
		rec := do(t, h, http.MethodPost, "/api/notify?focus_mode=true", body)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "service_unavailable", decode[handler.ErrorBody](t, rec).Error.Code)
	})
}

func TestSummary(t *testing.T) {
	t.Parallel()

	t.Run("empty queue", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, summarizer.Unavailable{})

		rec := do(t, h, http.MethodGet, "/api/summary", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"total_notifications":0,"summary":"No notifications to summarize."}`, rec.Body.String())
	})

	t.Run("fallback drains the queue", func(t *testing.T) {
		t.Parallel()
		h := newRouter(t, summarizer.Unavailable{})
		for _, app := range []string{"Instagram", "Twitter", "Slack"} {
			do(t, h, http.MethodPost, "/api/notify?focus_mode=true",
				`{"app_name":"`+app+`","title":"t","message":"m"}`)
		}

		rec := do(t, h, http.MethodGet, "/api/summary", "")

		require.Equal(t, http.StatusOK, rec.Code)
		res := decode[triage.SummaryResult](t, rec)
		assert.Equal(t, 2, res.TotalNotifications)
		assert.Equal(t, "You missed 2 notifications while focusing.", res.Summary)

		again := decode[triage.SummaryResult](t, do(t, h, http.MethodGet, "/api/summary", ""))
		assert.Equal(t, 0, again.TotalNotifications)
	})

	t.Run("generated summary", func(t *testing.T) {
		t.Parallel()
		gen := summarizer.GeneratorFunc(func(_ context.Context, prompt string) (string, error) {
			return "One social ping.", nil
		})
		h := newRouter(t, gen)
		do(t, h, http.MethodPost, "/api/notify?focus_mode=true",
			`{"app_name":"Instagram","title":"t","message":"m"}`)

		res := decode[triage.SummaryResult](t, do(t, h, http.MethodGet, "/api/summary", ""))

		assert.Equal(t, 1, res.TotalNotifications)
		assert.Equal(t, "One social ping.", res.Summary)
	})
}

func TestMiscRoutes(t *testing.T) {
	t.Parallel()
	h := newRouter(t, summarizer.Unavailable{})

	t.Run("welcome", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"`+api.WelcomeMessage+`"}`, rec.Body.String())
		assert.NotContains(t, api.WelcomeMessage, "/docs")
	})

	t.Run("health", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/nope", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not_found", decode[handler.ErrorBody](t, rec).Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()
		rec := do(t, h, http.MethodGet, "/api/notify", "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("request id is echoed", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
	})

	t.Run("cors preflight", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodOptions, "/api/notify", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})
}
