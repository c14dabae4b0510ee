package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// CategoryPredictor predicts an item category from a free-text description.
type CategoryPredictor interface {
	PredictCategory(ctx context.Context, description string) (string, error)
}

// PredictHandler proxies the external category-prediction service.
type PredictHandler struct {
	predictor CategoryPredictor
}

// NewPredictHandler creates a new PredictHandler. A nil predictor leaves the
// endpoint unconfigured.
func NewPredictHandler(predictor CategoryPredictor) *PredictHandler {
	return &PredictHandler{predictor: predictor}
}

// Predict returns the predicted category for an item description.
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(payload.Description) == "" {
		writeError(w, http.StatusBadRequest, "description is required")
		return
	}

	if h.predictor == nil {
		writeError(w, http.StatusInternalServerError, "category prediction not configured")
		return
	}

	category, err := h.predictor.PredictCategory(r.Context(), payload.Description)
	if err != nil {
		log.Error().Err(err).Msg("Category prediction failed")
		writeError(w, http.StatusInternalServerError, "failed to predict category")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"category": category})
}
