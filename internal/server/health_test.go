package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func healthRequest(t *testing.T, ping func(context.Context) error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := New(nil, nil, nil, ping, testLogger())
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)
	srv.Health(c)
	return w
}

func TestHealth_OK(t *testing.T) {
	w := healthRequest(t, func(context.Context) error { return nil })
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestHealth_DatabaseDown(t *testing.T) {
	w := healthRequest(t, func(context.Context) error { return errors.New("connection refused") })
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Contains(t, w.Body.String(), "unhealthy")
	require.NotContains(t, w.Body.String(), "connection refused")
}

func TestHealth_NoPinger(t *testing.T) {
	w := healthRequest(t, nil)
	require.Equal(t, http.StatusOK, w.Code)
}
