package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/findify-app/findify-be/internal/auth"
	"github.com/findify-app/findify-be/internal/models"
	"github.com/findify-app/findify-be/internal/services"
)

// FoundItemHandler handles HTTP requests for found item reports.
type FoundItemHandler struct {
	service services.FoundItemServiceProvider
}

// NewFoundItemHandler creates a new FoundItemHandler.
func NewFoundItemHandler(service services.FoundItemServiceProvider) *FoundItemHandler {
	return &FoundItemHandler{service: service}
}

// Create stores a new found item report owned by the caller.
func (h *FoundItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing auth token")
		return
	}

	var item models.FoundItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.CreateFoundItem(claims.UserID, item)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to create found item")
		writeError(w, http.StatusInternalServerError, "failed to create found item")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List returns active found items, optionally filtered by category. Public.
func (h *FoundItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListFoundItems(r.URL.Query().Get("category"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list found items")
		writeError(w, http.StatusInternalServerError, "failed to list found items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ListMine returns every found item owned by the caller regardless of status.
func (h *FoundItemHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing auth token")
		return
	}

	items, err := h.service.ListFoundItemsByOwner(claims.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to list own found items")
		writeError(w, http.StatusInternalServerError, "failed to list found items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Resolve marks a found item claimed, recording the caller's email as the
// claimant. Any authenticated user may resolve any item.
func (h *FoundItemHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing auth token")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.ResolveFoundItem(id, claims.Email); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, http.StatusNotFound, "found item not found")
			return
		}
		log.Error().Err(err).Str("item_id", id).Msg("Failed to resolve found item")
		writeError(w, http.StatusInternalServerError, "failed to resolve found item")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "item marked as claimed"})
}
