package predict

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPredictCategory(t *testing.T) {
	t.Parallel()

	// Mirrors the predictor's contract: only POST /predict-category exists
	// and the description travels in the "text" field.
	mux := http.NewServeMux()
	mux.HandleFunc("/predict-category", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Text != "black leather wallet" {
			t.Errorf("unexpected text %q", req.Text)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"category": "Wallet"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	category, err := c.PredictCategory(context.Background(), "black leather wallet")
	if err != nil {
		t.Fatalf("PredictCategory error: %v", err)
	}
	if category != "Wallet" {
		t.Fatalf("category mismatch: got %q", category)
	}
}

func TestPredictCategory_Errors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.PredictCategory(context.Background(), "wallet"); err == nil {
		t.Fatal("expected error on 500, got nil")
	}

	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(predictResponse{})
	}))
	defer empty.Close()

	c = New(empty.URL)
	if _, err := c.PredictCategory(context.Background(), "wallet"); err == nil {
		t.Fatal("expected error on empty category, got nil")
	}
}
