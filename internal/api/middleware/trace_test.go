package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stockroom/items-api/internal/api/shared"
	"github.com/stockroom/items-api/internal/platform/logger"
)

func TestTraceAddsTraceID(t *testing.T) {
	var sawTraceID string
	handler := Trace(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawTraceID = shared.GetTraceID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/items", nil))

	assert.Len(t, sawTraceID, 32, "downstream handlers must see a trace ID")
}

func TestTraceAttachesRequestLogger(t *testing.T) {
	var hadLogger bool
	handler := Trace(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hadLogger = logger.FromContextOrDefault(r.Context(), nil) != nil
		w.WriteHeader(http.StatusOK)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/items", nil))

	assert.True(t, hadLogger, "downstream handlers must see a request-scoped logger")
}
