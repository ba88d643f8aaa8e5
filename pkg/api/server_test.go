package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"podscript/pkg/domain"
)

func testServer() *Server {
	return NewServer("0", domain.DefaultShowConfig(), nil)
}

func postJSON(t *testing.T, srv *Server, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	if err := json.NewDecoder(w.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	return env
}

func TestHealthEndpoint(t *testing.T) {
	srv := testServer()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("missing request id header")
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status = %q, want healthy", body["status"])
	}
}

// TestProcessTranscriptEndpoint verifies the happy path returns a
// processed transcript in the success envelope.
func TestProcessTranscriptEndpoint(t *testing.T) {
	srv := testServer()

	w := postJSON(t, srv, "/api/process-transcript", map[string]string{
		"transcript":  "Welcome to the show everyone.\n\nThe research data shows growth.",
		"source_type": "manual",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	env := decodeEnvelope(t, w)
	if !env.Success {
		t.Fatalf("envelope error: %s", env.Error)
	}

	var processed domain.ProcessedTranscript
	if err := json.Unmarshal(env.Data, &processed); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if processed.TotalSegments != 2 {
		t.Errorf("total segments = %d, want 2", processed.TotalSegments)
	}
}

func TestProcessTranscriptEndpoint_MissingTranscript(t *testing.T) {
	srv := testServer()

	w := postJSON(t, srv, "/api/process-transcript", map[string]string{"transcript": "   "})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	env := decodeEnvelope(t, w)
	if env.Success || env.Error == "" {
		t.Errorf("expected error envelope, got %+v", env)
	}
}

// TestEnhanceContentEndpoint_NoBackend verifies graceful degradation
// when no enhancer is configured.
func TestEnhanceContentEndpoint_NoBackend(t *testing.T) {
	srv := testServer()

	w := postJSON(t, srv, "/api/enhance-content", map[string]string{
		"content":          "some transcript text",
		"enhancement_type": "minimal",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	env := decodeEnvelope(t, w)
	if !env.Success {
		t.Fatalf("envelope error: %s", env.Error)
	}

	var data enhanceResponse
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if data.Enhanced {
		t.Error("expected enhanced false without a backend")
	}
	if data.EnhancedContent != "some transcript text" {
		t.Errorf("content = %q, want original text", data.EnhancedContent)
	}
	if data.FallbackReason == "" {
		t.Error("fallback reason not reported")
	}
}

func TestEnhanceContentEndpoint_UnknownType(t *testing.T) {
	srv := testServer()

	w := postJSON(t, srv, "/api/enhance-content", map[string]string{
		"content":          "text",
		"enhancement_type": "extreme",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

// TestGenerateScriptEndpoint verifies end-to-end generation over the
// wire shape.
func TestGenerateScriptEndpoint(t *testing.T) {
	srv := testServer()

	processed := map[string]any{
		"segments": []map[string]any{
			{
				"id": 1, "text": "Welcome to the show.", "word_count": 4,
				"estimated_duration": 0.5, "topic_keywords": []string{"welcome"},
				"segment_type": "introduction",
			},
		},
	}

	w := postJSON(t, srv, "/api/generate-script", map[string]any{"processed_transcript": processed})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	env := decodeEnvelope(t, w)
	if !env.Success {
		t.Fatalf("envelope error: %s", env.Error)
	}

	var result domain.GenerationResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("failed to decode data: %v", err)
	}
	if result.Status != "success" {
		t.Errorf("status = %q", result.Status)
	}
	if !strings.Contains(result.Script, "### INTRO ###") {
		t.Error("script missing intro marker")
	}
}

func TestGenerateScriptEndpoint_MissingTranscript(t *testing.T) {
	srv := testServer()

	w := postJSON(t, srv, "/api/generate-script", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGenerateScriptEndpoint_InvalidShowConfig(t *testing.T) {
	srv := testServer()

	w := postJSON(t, srv, "/api/generate-script", map[string]any{
		"processed_transcript": map[string]any{"segments": []any{}},
		"show_config":          map[string]any{"show_name": ""},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestFetchTranscriptEndpoint_BadRequests(t *testing.T) {
	srv := testServer()

	w := postJSON(t, srv, "/api/fetch-transcript", map[string]string{"source_type": "youtube"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing url: status = %d, want 400", w.Code)
	}

	w = postJSON(t, srv, "/api/fetch-transcript", map[string]string{
		"source_url":  "https://example.com",
		"source_type": "telegraph",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("unknown source: status = %d, want 400", w.Code)
	}
}
