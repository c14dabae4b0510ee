// Package predict calls the external category-prediction HTTP service.
package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client calls the category predictor.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New constructs a client for the predictor at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type predictRequest struct {
	Text string `json:"text"`
}

type predictResponse struct {
	Category string `json:"category"`
}

// PredictCategory returns the predicted item category for a free-text
// description.
func (c *Client) PredictCategory(ctx context.Context, description string) (string, error) {
	body, err := json.Marshal(predictRequest{Text: description})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict-category", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("predictor request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("predictor returned %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("predictor response malformed: %w", err)
	}
	if strings.TrimSpace(out.Category) == "" {
		return "", fmt.Errorf("predictor response missing category")
	}
	return out.Category, nil
}
