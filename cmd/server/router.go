package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/stockroom/items-api/internal/api"
	apiMiddleware "github.com/stockroom/items-api/internal/api/middleware"
	"github.com/stockroom/items-api/internal/platform/metrics"
)

// setupRouter creates and configures the application router with all routes
// and middleware. It accepts the application dependencies to create handlers
// and register routes. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metrics.Middleware)
	r.Use(apiMiddleware.Trace) // Add trace IDs for improved error handling
	r.Use(apiMiddleware.Recover)

	// Create API handlers using the application's services
	itemHandler := api.NewItemHandler(app.itemService, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/openapi.json", api.OpenAPIHandler)

		// Item endpoints
		r.Route("/items", func(r chi.Router) {
			r.Get("/", itemHandler.ListItems)
			r.Post("/", itemHandler.CreateItem)
			r.Get("/{id}", itemHandler.GetItem)
			r.Put("/{id}", itemHandler.UpdateItem)
			r.Delete("/{id}", itemHandler.DeleteItem)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Prometheus exposition
	r.Handle("/metrics", promhttp.Handler())

	return r
}
