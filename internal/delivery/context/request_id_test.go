package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newEchoContext(req *http.Request) echo.Context {
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRequestID(t *testing.T) {
	t.Run("stored ID wins", func(t *testing.T) {
		c := newEchoContext(httptest.NewRequest(http.MethodGet, "/", nil))
		SetRequestID(c, "req-1")

		assert.Equal(t, "req-1", GetRequestID(c))
	})

	t.Run("falls back to the request context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(WithRequestID(req.Context(), "from-worker"))

		assert.Equal(t, "from-worker", GetRequestID(newEchoContext(req)))
	})

	t.Run("generated ID is stable for the request", func(t *testing.T) {
		c := newEchoContext(httptest.NewRequest(http.MethodGet, "/", nil))

		first := GetRequestID(c)

		assert.Len(t, first, 36)
		assert.Equal(t, first, GetRequestID(c))
	})
}

func TestWithRequestID(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetRequestIDFromContext(ctx))
	assert.Equal(t, ctx, WithRequestID(ctx, ""))
	assert.Equal(t, "abc", GetRequestIDFromContext(WithRequestID(ctx, "abc")))
	// A plain string key with the same text must not collide.
	assert.Empty(t, GetRequestIDFromContext(context.WithValue(ctx, "request_id", "spoofed"))) //nolint:staticcheck
}

func TestGetLoggerOrDefault(t *testing.T) {
	scoped := slog.New(slog.NewTextHandler(io.Discard, nil))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	assert.Nil(t, GetLogger(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
	assert.Same(t, slog.Default(), GetLoggerOrDefault(ctx, nil))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(ctx, scoped), fallback))
}
