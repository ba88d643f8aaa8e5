// Package apiclient talks to a deployed script-generation API over its
// JSON envelope protocol. Every response is {success, data} on the
// happy path or {success: false, error} on failure.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"podscript/pkg/domain"
	"podscript/pkg/enhance"
	"podscript/pkg/fetch"
	"podscript/pkg/httpclient"
)

// SourceManual marks input that is already transcript text and needs
// no remote fetch step.
const SourceManual = "manual"

// Client is a remote script-generation API client.
type Client struct {
	baseURL string
	apiKey  string
	http    *httpclient.HTTPClient
}

// NewClient creates a client for the API at baseURL. apiKey is
// optional; when set it is sent as a bearer token.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpclient.NewClient(httpclient.APIClient),
	}
}

// envelope is the wire format shared by every endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// HealthStatus reports API liveness.
type HealthStatus struct {
	Status    string `json:"status"`
	Version   string `json:"version,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// EnhanceData is the payload returned by the enhancement endpoint.
type EnhanceData struct {
	EnhancedContent string `json:"enhanced_content"`
	Enhanced        bool   `json:"enhanced"`
	FallbackReason  string `json:"fallback_reason,omitempty"`
}

// Health checks whether the API is reachable and healthy.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}
	return &status, nil
}

// ProcessTranscript sends raw transcript text for cleaning and
// segmentation.
func (c *Client) ProcessTranscript(ctx context.Context, transcript, sourceType string) (*domain.ProcessedTranscript, error) {
	payload := map[string]any{
		"transcript":  transcript,
		"source_type": sourceType,
	}

	var processed domain.ProcessedTranscript
	if err := c.post(ctx, "/api/process-transcript", payload, &processed); err != nil {
		return nil, fmt.Errorf("transcript processing failed: %w", err)
	}
	return &processed, nil
}

// EnhanceContent asks the API to polish content with the given
// enhancement type.
func (c *Client) EnhanceContent(ctx context.Context, content string, kind enhance.Type) (*EnhanceData, error) {
	payload := map[string]any{
		"content":          content,
		"enhancement_type": string(kind),
	}

	var data EnhanceData
	if err := c.post(ctx, "/api/enhance-content", payload, &data); err != nil {
		return nil, fmt.Errorf("content enhancement failed: %w", err)
	}
	return &data, nil
}

// GenerateScript turns a processed transcript into a complete script.
// show may be nil to use the API's defaults.
func (c *Client) GenerateScript(ctx context.Context, processed *domain.ProcessedTranscript, show *domain.ShowConfig) (*domain.GenerationResult, error) {
	payload := map[string]any{
		"processed_transcript": processed,
	}
	if show != nil {
		payload["show_config"] = show
	}

	var result domain.GenerationResult
	if err := c.post(ctx, "/api/generate-script", payload, &result); err != nil {
		return nil, fmt.Errorf("script generation failed: %w", err)
	}
	return &result, nil
}

// FetchContent asks the API to pull a transcript from an external
// source URL.
func (c *Client) FetchContent(ctx context.Context, sourceURL string, source fetch.Source) (*fetch.Result, error) {
	payload := map[string]any{
		"source_url":  sourceURL,
		"source_type": string(source),
	}

	var result fetch.Result
	if err := c.post(ctx, "/api/fetch-transcript", payload, &result); err != nil {
		return nil, fmt.Errorf("content fetching failed: %w", err)
	}
	return &result, nil
}

// post sends payload to path and unwraps the response envelope into
// out.
func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(string(body)))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.Success {
		if env.Error == "" {
			return fmt.Errorf("api returned status %d", resp.StatusCode)
		}
		return fmt.Errorf("api error: %s", env.Error)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}

func (c *Client) authorize(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}
