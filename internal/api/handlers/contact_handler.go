package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/findify-app/findify-be/internal/services"
)

// ContactHandler handles the outbound email relay endpoints.
type ContactHandler struct {
	relay services.RelayServiceProvider
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(relay services.RelayServiceProvider) *ContactHandler {
	return &ContactHandler{relay: relay}
}

// FooterQuestion relays a question submitted from the site footer.
func (h *ContactHandler) FooterQuestion(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.relay.SubmitFooterQuestion(r.Context(), payload.Email, payload.Question); err != nil {
		h.relayError(w, err, "footer question")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "question sent"})
}

// ContactForm relays a contact page submission.
func (h *ContactHandler) ContactForm(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.relay.SubmitContactForm(r.Context(), payload.Name, payload.Email, payload.Message); err != nil {
		h.relayError(w, err, "contact form")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "message sent"})
}

func (h *ContactHandler) relayError(w http.ResponseWriter, err error, what string) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotConfigured):
		log.Error().Err(err).Msg("Email relay not configured")
		writeError(w, http.StatusInternalServerError, "email relay not configured")
	default:
		log.Error().Err(err).Str("kind", what).Msg("Failed to relay message")
		writeError(w, http.StatusInternalServerError, "failed to send message")
	}
}
