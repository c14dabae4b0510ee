package auth

import (
	"net/http"
	"time"
)

// SessionCookieName is the name of the session cookie.
const SessionCookieName = "token"

// SetSessionCookie writes the session token cookie. In production the cookie
// is Secure with SameSite=None so a separately hosted frontend can send it;
// in development it is SameSite=Lax over plain HTTP.
func SetSessionCookie(w http.ResponseWriter, token string, production bool) {
	http.SetCookie(w, sessionCookie(token, int(SessionTTL.Seconds()), production))
}

// ClearSessionCookie expires the session cookie. Safe to call repeatedly.
func ClearSessionCookie(w http.ResponseWriter, production bool) {
	http.SetCookie(w, sessionCookie("", -1, production))
}

func sessionCookie(value string, maxAge int, production bool) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if production {
		sameSite = http.SameSiteNoneMode
	}
	c := &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   production,
		SameSite: sameSite,
	}
	if maxAge > 0 {
		c.Expires = time.Now().Add(time.Duration(maxAge) * time.Second)
	}
	return c
}
