package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/findify-app/findify-be/internal/auth"
	"github.com/findify-app/findify-be/internal/services"
)

// UserHandler handles HTTP requests for accounts and sessions.
type UserHandler struct {
	service    services.UserServiceProvider
	secret     []byte
	production bool
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider, secret []byte, production bool) *UserHandler {
	return &UserHandler{service: service, secret: secret, production: production}
}

// SignUpPayload defines the structure for registration requests.
type SignUpPayload struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp handles new user registration and issues a session cookie.
func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var payload SignUpPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.CreateUser(payload.Username, payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrConflict):
			writeError(w, http.StatusConflict, "email or username already registered")
		default:
			log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
			writeError(w, http.StatusInternalServerError, "failed to register user")
		}
		return
	}

	token, err := auth.GenerateJWT(user, h.secret)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate session token")
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	auth.SetSessionCookie(w, token, h.production)

	writeJSON(w, http.StatusCreated, user)
}

// Login handles user authentication and session cookie issuance.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.AuthenticateUser(payload.Email, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed authentication attempt")
		switch {
		case errors.Is(err, services.ErrNotFound):
			writeError(w, http.StatusBadRequest, "user not found")
		case errors.Is(err, services.ErrInvalidCredentials):
			writeError(w, http.StatusBadRequest, "invalid password")
		default:
			writeError(w, http.StatusInternalServerError, "failed to authenticate")
		}
		return
	}

	token, err := auth.GenerateJWT(user, h.secret)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate session token")
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	auth.SetSessionCookie(w, token, h.production)

	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

// Logout clears the session cookie. Idempotent.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, h.production)
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// GetMe returns the authenticated user's profile.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing auth token")
		return
	}

	user, err := h.service.GetUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "unknown account")
			return
		}
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to load profile")
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"username":  user.Username,
		"email":     user.Email,
		"contactNo": user.ContactNo,
	})
}

// UpdateUsername changes the caller's username.
func (h *UserHandler) UpdateUsername(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing auth token")
		return
	}

	var payload struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.UpdateUsername(claims.UserID, payload.Username)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrConflict):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrNotFound):
			writeError(w, http.StatusNotFound, "user not found")
		default:
			log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to update username")
			writeError(w, http.StatusInternalServerError, "failed to update username")
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// UpdateContact sets the caller's contact number.
func (h *UserHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing auth token")
		return
	}

	var payload struct {
		ContactNo string `json:"contactNo"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.UpdateContact(claims.UserID, payload.ContactNo)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to update contact")
		writeError(w, http.StatusInternalServerError, "failed to update contact")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// DeleteAccount verifies the password, removes the account and everything it
// owns, and clears the session cookie.
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing auth token")
		return
	}

	var payload struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.DeleteAccount(claims.UserID, payload.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "invalid password")
		case errors.Is(err, services.ErrNotFound):
			writeError(w, http.StatusNotFound, "user not found")
		default:
			log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to delete account")
			writeError(w, http.StatusInternalServerError, "failed to delete account")
		}
		return
	}

	auth.ClearSessionCookie(w, h.production)
	writeJSON(w, http.StatusOK, map[string]string{"message": "account deleted"})
}
