package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/stockroom/items-api/internal/api/shared"
	"github.com/stockroom/items-api/internal/domain"
	"github.com/stockroom/items-api/internal/platform/logger"
	"github.com/stockroom/items-api/internal/service"
)

// createItemRequest is the request body for creating a new item. Callers
// may submit arbitrary additional fields; those are collected into Extra
// and stored as-is. A submitted id is discarded, the server assigns one.
type createItemRequest struct {
	Name        string         `json:"name" validate:"required"`
	Description string         `json:"description"`
	Extra       map[string]any `json:"-"`
}

// UnmarshalJSON collects unknown top-level keys into Extra.
func (req *createItemRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*req = createItemRequest{}
	for key, value := range raw {
		switch key {
		case "id", "created_at", "updated_at":
			// server-owned, ignored
		case "name":
			if s, ok := value.(string); ok {
				req.Name = s
			}
		case "description":
			if s, ok := value.(string); ok {
				req.Description = s
			}
		default:
			if req.Extra == nil {
				req.Extra = make(map[string]any)
			}
			req.Extra[key] = value
		}
	}
	return nil
}

// ItemHandler handles item-related HTTP requests
type ItemHandler struct {
	itemService service.ItemService
	logger      *slog.Logger
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService service.ItemService, logger *slog.Logger) *ItemHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ItemHandler")
	}

	return &ItemHandler{
		itemService: itemService,
		logger:      logger.With(slog.String("component", "item_handler")),
	}
}

// ListItems handles GET /api/items requests
// It returns the full collection in insertion order; an empty collection
// yields an empty JSON array.
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	items, err := h.itemService.ListItems(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("listed items", slog.Int("count", len(items)))
	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// GetItem handles GET /api/items/{id} requests
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Item ID is required")
		return
	}

	item, err := h.itemService.GetItem(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("retrieved item", slog.String("item_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// CreateItem handles POST /api/items requests
// It validates that a name is present, assigns a fresh ID, and echoes the
// stored record back with 201 Created.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req createItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("validation error", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	item, err := h.itemService.CreateItem(r.Context(), req.Name, req.Description, req.Extra)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("created item", slog.String("item_id", item.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, item)
}

// UpdateItem handles PUT /api/items/{id} requests
// Submitted fields overwrite matching stored fields; unspecified fields
// retain their prior values; the id always remains the path identifier.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Item ID is required")
		return
	}

	var patch domain.Patch
	if err := shared.DecodeJSON(r, &patch); err != nil {
		log.Warn("invalid request format",
			slog.String("error", err.Error()),
			slog.String("item_id", id))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	item, err := h.itemService.UpdateItem(r.Context(), id, patch)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("updated item", slog.String("item_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, item)
}

// DeleteItem handles DELETE /api/items/{id} requests
// A successful delete returns 204 with no body.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id := chi.URLParam(r, "id")
	if id == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Item ID is required")
		return
	}

	if err := h.itemService.DeleteItem(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("deleted item", slog.String("item_id", id))
	w.WriteHeader(http.StatusNoContent)
}
