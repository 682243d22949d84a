package trace

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	applog "fintrack/internal/log"
)

func newRouter(m *Middleware, buf *bytes.Buffer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	logger := applog.New(applog.Config{Level: slog.LevelInfo, Component: applog.ComponentHTTP, Output: buf})
	r.Use(applog.Middleware(logger), m.Handler())
	r.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, GetRequestID(c.Request.Context()))
	})
	r.GET("/bad", func(c *gin.Context) {
		c.Status(http.StatusBadRequest)
	})
	return r
}

func TestHandlerAssignsRequestID(t *testing.T) {
	var buf bytes.Buffer
	m := NewMiddleware()
	r := newRouter(m, &buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", nil))

	id := w.Header().Get(HeaderRequestID)
	if !strings.HasPrefix(id, "req_") || w.Body.String() != id {
		t.Fatalf("unexpected request id header=%q body=%q", id, w.Body.String())
	}
	if !strings.Contains(buf.String(), "request_id="+id) || !strings.Contains(buf.String(), "status_code=200") {
		t.Fatalf("completion log missing fields: %s", buf.String())
	}
	if got := m.GetMetrics().TotalRequests; got != 1 {
		t.Fatalf("expected 1 request, got %d", got)
	}
}

func TestHandlerReusesValidClientID(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(NewMiddleware(), &buf)

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(HeaderRequestID, "client-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(HeaderRequestID); got != "client-123" {
		t.Fatalf("expected client id to be kept, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(HeaderRequestID, "bad id\n")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(HeaderRequestID); !strings.HasPrefix(got, "req_") {
		t.Fatalf("invalid client id should be replaced, got %q", got)
	}
}

func TestHandlerLogsClientErrorsAsWarn(t *testing.T) {
	var buf bytes.Buffer
	r := newRouter(NewMiddleware(), &buf)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Fatalf("expected warn entry, got %s", buf.String())
	}
}
