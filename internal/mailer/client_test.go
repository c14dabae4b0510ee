package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSend(t *testing.T) {
	t.Parallel()

	var gotAuth string
	var gotReq sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/emails" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(sendResponse{ID: "email-1"})
	}))
	defer srv.Close()

	c := New(srv.URL, "test-key", "no-reply@findify.app")
	err := c.Send(context.Background(), "admin@findify.app", "Hello", "<p>Hi</p>")
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if gotAuth != "Bearer test-key" {
		t.Fatalf("authorization mismatch: %q", gotAuth)
	}
	if gotReq.From != "no-reply@findify.app" || len(gotReq.To) != 1 || gotReq.To[0] != "admin@findify.app" {
		t.Fatalf("unexpected payload: %+v", gotReq)
	}
	if gotReq.Subject != "Hello" || gotReq.HTML != "<p>Hi</p>" {
		t.Fatalf("unexpected payload: %+v", gotReq)
	}
}

func TestSend_ProviderError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL, "bad-key", "no-reply@findify.app")
	if err := c.Send(context.Background(), "admin@findify.app", "Hello", "body"); err == nil {
		t.Fatal("expected error on provider failure, got nil")
	}
}

func TestSend_Unreachable(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1", "key", "no-reply@findify.app")
	if err := c.Send(context.Background(), "admin@findify.app", "Hello", "body"); err == nil {
		t.Fatal("expected error when provider is unreachable, got nil")
	}
}
