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

// LostItemHandler handles HTTP requests for lost item reports.
type LostItemHandler struct {
	service services.LostItemServiceProvider
}

// NewLostItemHandler creates a new LostItemHandler.
func NewLostItemHandler(service services.LostItemServiceProvider) *LostItemHandler {
	return &LostItemHandler{service: service}
}

// Create stores a new lost item report owned by the caller.
func (h *LostItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing auth token")
		return
	}

	var item models.LostItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.service.CreateLostItem(claims.UserID, item)
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to create lost item")
		writeError(w, http.StatusInternalServerError, "failed to create lost item")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// List returns active lost items, optionally filtered by category. Public.
func (h *LostItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListLostItems(r.URL.Query().Get("category"))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list lost items")
		writeError(w, http.StatusInternalServerError, "failed to list lost items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// ListMine returns every lost item owned by the caller regardless of status.
func (h *LostItemHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing auth token")
		return
	}

	items, err := h.service.ListLostItemsByOwner(claims.UserID)
	if err != nil {
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to list own lost items")
		writeError(w, http.StatusInternalServerError, "failed to list lost items")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Resolve marks a lost item claimed, recording the caller's email as the
// finder. Any authenticated user may resolve any item.
func (h *LostItemHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing auth token")
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.service.ResolveLostItem(id, claims.Email); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, http.StatusNotFound, "lost item not found")
			return
		}
		log.Error().Err(err).Str("item_id", id).Msg("Failed to resolve lost item")
		writeError(w, http.StatusInternalServerError, "failed to resolve lost item")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "item marked as claimed"})
}
