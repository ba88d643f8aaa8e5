package enhance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// CustomEnhancer enhances text through an arbitrary JSON endpoint that
// accepts {prompt, max_tokens, temperature} and answers {text}.
type CustomEnhancer struct {
	endpoint string
	headers  map[string]string
	client   *http.Client
}

// NewCustomEnhancer creates an enhancer backed by a custom endpoint.
// Extra headers (e.g. authentication) are applied to every request.
func NewCustomEnhancer(endpoint string, headers map[string]string) (*CustomEnhancer, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("custom enhancer: endpoint must not be empty")
	}
	return &CustomEnhancer{
		endpoint: endpoint,
		headers:  headers,
		client:   &http.Client{},
	}, nil
}

type customRequest struct {
	Prompt      string  `json:"prompt"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float64 `json:"temperature"`
}

type customResponse struct {
	Text string `json:"text"`
}

// Enhance posts the enhancement prompt to the configured endpoint.
func (e *CustomEnhancer) Enhance(ctx context.Context, text string, kind Type) (string, error) {
	body, err := json.Marshal(customRequest{
		Prompt:      buildPrompt(text, kind),
		MaxTokens:   1000,
		Temperature: 0.3,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, value := range e.headers {
		req.Header.Set(key, value)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("api call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("api error %d: %s", resp.StatusCode, string(respBody))
	}

	var apiResp customResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if apiResp.Text == "" {
		return "", fmt.Errorf("custom endpoint returned empty text")
	}

	return apiResp.Text, nil
}
