package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoggingMiddleware(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	mw := LoggingMiddleware(zap.NewNop().Sugar())

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/v1/resolve", nil)

	mw(handler).ServeHTTP(w, r)

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "short and stout", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestLoggingMiddleware_UniqueRequestIDs(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	mw := LoggingMiddleware(zap.NewNop().Sugar())

	first := httptest.NewRecorder()
	second := httptest.NewRecorder()
	mw(handler).ServeHTTP(first, httptest.NewRequest("GET", "/", nil))
	mw(handler).ServeHTTP(second, httptest.NewRequest("GET", "/", nil))

	assert.NotEqual(t, first.Header().Get("X-Request-ID"), second.Header().Get("X-Request-ID"))
}
