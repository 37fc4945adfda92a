package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	buf := &bytes.Buffer{}
	return NewWithWriter(buf, "debug"), buf
}

func records(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		out = append(out, rec)
	}
	return out
}

func TestMiddleware_IssuesRequestID(t *testing.T) {
	l, buf := newBufferLogger(t)
	engine := gin.New()
	engine.Use(l.Middleware())
	engine.GET("/movies", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/movies?q=neon", nil))

	requestID := rec.Header().Get(RequestIDHeader)
	require.NotEmpty(t, requestID)

	logs := records(t, buf)
	require.Len(t, logs, 1)
	assert.Equal(t, "HTTP Request", logs[0]["msg"])
	assert.Equal(t, requestID, logs[0]["request_id"])
	assert.Equal(t, "q=neon", logs[0]["query"])
	assert.EqualValues(t, http.StatusOK, logs[0]["status"])
}

func TestMiddleware_KeepsCallerRequestIDOnErrors(t *testing.T) {
	l, buf := newBufferLogger(t)
	engine := gin.New()
	engine.Use(l.Middleware())
	engine.GET("/boom", func(c *gin.Context) {
		l.LogHTTPError(c, errors.New("db down"), http.StatusInternalServerError)
		c.Status(http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))

	logs := records(t, buf)
	require.Len(t, logs, 2)
	assert.Equal(t, "HTTP Error", logs[0]["msg"])
	assert.Equal(t, "db down", logs[0]["error"])
	assert.Equal(t, "req-42", logs[0]["request_id"])
	assert.Equal(t, "ERROR", logs[1]["level"])
	assert.Equal(t, "req-42", logs[1]["request_id"])
}

func TestContextHelpers(t *testing.T) {
	l, buf := newBufferLogger(t)

	l.WithUserID("u1").WithError(errors.New("cache offline")).Warn("failed to clear selection")
	l.WithFields(map[string]interface{}{"booking_id": "b7"}).Info("booking event")
	l.ErrorWithContext(context.Background(), "failed to process booking event", errors.New("bad payload"), map[string]interface{}{"offset": 12})

	logs := records(t, buf)
	require.Len(t, logs, 3)
	assert.Equal(t, "u1", logs[0]["user_id"])
	assert.Equal(t, "cache offline", logs[0]["error"])
	assert.Equal(t, "b7", logs[1]["booking_id"])
	assert.Equal(t, "bad payload", logs[2]["error"])
	assert.EqualValues(t, 12, logs[2]["offset"])
}
