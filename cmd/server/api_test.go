package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/items-api/internal/config"
)

// newTestApplication builds a full application with an empty in-memory
// store and returns its router.
func newTestApplication(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:            8080,
			LogLevel:        "error",
			ShutdownTimeout: 10,
		},
	}

	app, err := newApplication(cfg, slog.Default())
	require.NoError(t, err, "application should initialize with valid config")

	return app.setupRouter()
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var decoded map[string]any
	if rr.Body.Len() > 0 && strings.HasPrefix(strings.TrimSpace(rr.Body.String()), "{") {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
	}
	return rr, decoded
}

func TestItemLifecycle(t *testing.T) {
	router := newTestApplication(t)

	// Fresh process: the collection is empty.
	rr, _ := doJSON(t, router, http.MethodGet, "/api/items", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	var items []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	assert.Empty(t, items)

	// Create returns 201 with a non-empty generated id.
	rr, created := doJSON(t, router, http.MethodPost, "/api/items", `{"name":"A"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)
	id, _ := created["id"].(string)
	assert.NotEmpty(t, id)
	assert.Equal(t, "A", created["name"])

	// Listing immediately after create includes the item exactly once.
	rr, _ = doJSON(t, router, http.MethodGet, "/api/items", "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	count := 0
	for _, it := range items {
		if it["id"] == id {
			count++
		}
	}
	assert.Equal(t, 1, count, "created item must appear exactly once in the list")

	// Get by id returns the item.
	rr, got := doJSON(t, router, http.MethodGet, "/api/items/"+id, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, id, got["id"])

	// Update preserves name and id, sets description.
	rr, updated := doJSON(t, router, http.MethodPut, "/api/items/"+id, `{"description":"x"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, id, updated["id"], "id assigned at creation never changes across updates")
	assert.Equal(t, "A", updated["name"])
	assert.Equal(t, "x", updated["description"])

	// A second update still cannot move the id.
	rr, updated = doJSON(t, router, http.MethodPut, "/api/items/"+id, `{"id":"other","name":"B"}`)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, id, updated["id"])
	assert.Equal(t, "B", updated["name"])
	assert.Equal(t, "x", updated["description"], "unspecified fields retain prior values")

	// Delete returns 204 with an empty body.
	rr, _ = doJSON(t, router, http.MethodDelete, "/api/items/"+id, "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	// The item is gone from subsequent lists.
	rr, _ = doJSON(t, router, http.MethodGet, "/api/items", "")
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &items))
	for _, it := range items {
		assert.NotEqual(t, id, it["id"])
	}

	// Second delete of the same id returns 404.
	rr, body := doJSON(t, router, http.MethodDelete, "/api/items/"+id, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Item not found", body["message"])
}

func TestNotFoundResponses(t *testing.T) {
	router := newTestApplication(t)

	for _, tc := range []struct {
		method string
		body   string
	}{
		{http.MethodGet, ""},
		{http.MethodPut, `{"description":"x"}`},
		{http.MethodDelete, ""},
	} {
		rr, body := doJSON(t, router, tc.method, "/api/items/doesnotexist", tc.body)
		assert.Equal(t, http.StatusNotFound, rr.Code, "%s on unknown id", tc.method)
		assert.Equal(t, "Item not found", body["message"], "%s on unknown id", tc.method)
	}
}

func TestCreateValidation(t *testing.T) {
	router := newTestApplication(t)

	rr, body := doJSON(t, router, http.MethodPost, "/api/items", `{"description":"nameless"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	message, _ := body["message"].(string)
	assert.Contains(t, message, "Name", "response must indicate the missing field")
}

func TestCreatePersistsArbitraryFields(t *testing.T) {
	router := newTestApplication(t)

	rr, created := doJSON(t, router, http.MethodPost, "/api/items",
		`{"name":"A","color":"red","tags":["a","b"]}`)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "red", created["color"])

	id, _ := created["id"].(string)
	rr, got := doJSON(t, router, http.MethodGet, "/api/items/"+id, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "red", got["color"])
	assert.Equal(t, []any{"a", "b"}, got["tags"])
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestApplication(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestApplication(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestOpenAPIEndpoint(t *testing.T) {
	router := newTestApplication(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/openapi.json", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var spec map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &spec))
	assert.Equal(t, "3.0.0", spec["openapi"])
}
