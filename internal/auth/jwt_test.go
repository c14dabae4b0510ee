package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/findify-app/findify-be/internal/models"
)

func TestGenerateAndValidate(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	user := models.User{ID: "user-123", Email: "alice@example.com"}

	tok, err := GenerateJWT(user, secret)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}

	claims, err := ValidateJWT(tok, secret)
	if err != nil {
		t.Fatalf("ValidateJWT error: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("user id mismatch: got %q want %q", claims.UserID, user.ID)
	}
	if claims.Email != user.Email {
		t.Fatalf("email mismatch: got %q want %q", claims.Email, user.Email)
	}
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateJWT(models.User{ID: "u1"}, []byte("secret-a"))
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}
	if _, err := ValidateJWT(tok, []byte("secret-b")); err == nil {
		t.Fatal("expected error for wrong secret, got nil")
	}
}

func TestValidateJWT_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ValidateJWT("not-a-token", []byte("secret")); err == nil {
		t.Fatal("expected error for malformed token, got nil")
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			t.Fatal("claims missing from context")
		}
		gotUserID = claims.UserID
	})
	handler := Middleware(secret)(next)

	// No token at all.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	// Valid cookie.
	tok, err := GenerateJWT(models.User{ID: "u1", Email: "a@x.com"}, secret)
	if err != nil {
		t.Fatalf("GenerateJWT error: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: tok})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with cookie, got %d", rec.Code)
	}
	if gotUserID != "u1" {
		t.Fatalf("user id mismatch: got %q", gotUserID)
	}

	// Bearer header fallback.
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with bearer header, got %d", rec.Code)
	}

	// Garbage cookie.
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", rec.Code)
	}
}

func TestSessionCookieFlags(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "tok", false)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != SessionCookieName || c.Value != "tok" {
		t.Fatalf("unexpected cookie %q=%q", c.Name, c.Value)
	}
	if !c.HttpOnly || c.Secure || c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("unexpected dev cookie flags: %+v", c)
	}

	rec = httptest.NewRecorder()
	SetSessionCookie(rec, "tok", true)
	c = rec.Result().Cookies()[0]
	if !c.Secure || c.SameSite != http.SameSiteNoneMode {
		t.Fatalf("unexpected prod cookie flags: %+v", c)
	}

	rec = httptest.NewRecorder()
	ClearSessionCookie(rec, false)
	c = rec.Result().Cookies()[0]
	if c.Value != "" || c.MaxAge != -1 {
		t.Fatalf("expected cleared cookie, got %+v", c)
	}
}
