package handlers

import (
	"net/http"

	"github.com/findify-app/findify-be/internal/auth"
	"github.com/findify-app/findify-be/internal/services"
)

// AccountGuard rejects requests whose session references a user that no
// longer exists. A deleted account's still-unexpired token fails here.
func AccountGuard(users services.UserServiceProvider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := auth.ClaimsFromContext(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "missing auth token")
				return
			}
			if _, err := users.GetUserByID(claims.UserID); err != nil {
				writeError(w, http.StatusUnauthorized, "unknown account")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
