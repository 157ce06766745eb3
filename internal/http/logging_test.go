package http

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestLoggerAttachesContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))

	var sawLogger bool
	handler := RequestLogger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawLogger = LoggerFromContext(r.Context()) != nil
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/games", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !sawLogger {
		t.Fatal("expected a logger in the request context")
	}

	logged := buf.String()
	if !strings.Contains(logged, "request started") || !strings.Contains(logged, "request completed") {
		t.Fatalf("expected start and completion entries, got %q", logged)
	}
	if !strings.Contains(logged, `"path":"/games"`) {
		t.Fatalf("expected path attribute, got %q", logged)
	}
}

func TestRequestLoggerIncrementsRequestID(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, nil))
	handler := RequestLogger(base)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/games", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
	}

	logged := buf.String()
	if !strings.Contains(logged, `"request_id":1`) || !strings.Contains(logged, `"request_id":2`) {
		t.Fatalf("expected increasing request ids, got %q", logged)
	}
}
