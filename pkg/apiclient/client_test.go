package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"podscript/pkg/domain"
	"podscript/pkg/enhance"
)

func envelopeHandler(t *testing.T, wantPath string, data any) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != wantPath {
			t.Errorf("path = %q, want %q", r.URL.Path, wantPath)
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
	}
}

// TestClient_ProcessTranscript verifies the request payload and
// envelope unwrapping.
func TestClient_ProcessTranscript(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("auth header = %q", got)
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		if payload["transcript"] != "raw text" || payload["source_type"] != "manual" {
			t.Errorf("payload = %v", payload)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": domain.ProcessedTranscript{
				TotalSegments: 2,
				Status:        "success",
			},
		})
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret")
	got, err := c.ProcessTranscript(context.Background(), "raw text", "manual")
	if err != nil {
		t.Fatalf("ProcessTranscript failed: %v", err)
	}
	if got.TotalSegments != 2 {
		t.Errorf("total segments = %d, want 2", got.TotalSegments)
	}
}

// TestClient_ErrorEnvelope verifies that {success: false, error}
// surfaces as a client error.
func TestClient_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "transcript is required"})
	}))
	defer server.Close()

	c := NewClient(server.URL, "")
	_, err := c.ProcessTranscript(context.Background(), "", "manual")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "transcript is required") {
		t.Errorf("error = %v, want server message", err)
	}
}

func TestClient_Health(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(HealthStatus{Status: "healthy", Version: "1.0.0"})
	}))
	defer server.Close()

	c := NewClient(server.URL+"/", "")
	got, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("Health failed: %v", err)
	}
	if got.Status != "healthy" {
		t.Errorf("status = %q, want healthy", got.Status)
	}
}

// TestCreateCompleteScript verifies the happy-path workflow ordering.
func TestCreateCompleteScript(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/process-transcript", envelopeHandler(t, "/api/process-transcript",
		domain.ProcessedTranscript{TotalSegments: 1, Status: "success"}))
	mux.HandleFunc("/api/enhance-content", envelopeHandler(t, "/api/enhance-content",
		EnhanceData{EnhancedContent: "better text", Enhanced: true}))
	mux.HandleFunc("/api/generate-script", envelopeHandler(t, "/api/generate-script",
		domain.GenerationResult{Status: "success", Script: "the script", EstimatedDuration: 7.2}))

	server := httptest.NewServer(mux)
	defer server.Close()

	c := NewClient(server.URL, "")
	result, err := c.CreateCompleteScript(context.Background(), "raw transcript", WorkflowOptions{
		SourceType:      SourceManual,
		EnhancementType: enhance.Comprehensive,
		UseLLM:          true,
	})
	if err != nil {
		t.Fatalf("CreateCompleteScript failed: %v", err)
	}

	if !result.Success {
		t.Error("expected workflow success")
	}
	wantSteps := []string{"process_transcript", "enhance_content", "generate_script"}
	if len(result.StepsCompleted) != len(wantSteps) {
		t.Fatalf("steps = %v, want %v", result.StepsCompleted, wantSteps)
	}
	for i := range wantSteps {
		if result.StepsCompleted[i] != wantSteps[i] {
			t.Fatalf("steps = %v, want %v", result.StepsCompleted, wantSteps)
		}
	}
	if len(result.Errors) != 0 {
		t.Errorf("errors = %v, want none", result.Errors)
	}
	if result.TotalDuration != 7.2 {
		t.Errorf("total duration = %v, want 7.2", result.TotalDuration)
	}
	if result.WorkflowID == "" {
		t.Error("workflow id not set")
	}
}

// TestCreateCompleteScript_EnhancementFailureIsNotFatal verifies that
// a failing enhancement step is recorded and the workflow still
// succeeds with the original transcript.
func TestCreateCompleteScript_EnhancementFailureIsNotFatal(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/process-transcript", envelopeHandler(t, "/api/process-transcript",
		domain.ProcessedTranscript{TotalSegments: 1, Status: "success"}))
	mux.HandleFunc("/api/enhance-content", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "backend unavailable"})
	})
	mux.HandleFunc("/api/generate-script", envelopeHandler(t, "/api/generate-script",
		domain.GenerationResult{Status: "success", Script: "the script"}))

	server := httptest.NewServer(mux)
	defer server.Close()

	c := NewClient(server.URL, "")
	result, err := c.CreateCompleteScript(context.Background(), "raw transcript", WorkflowOptions{
		SourceType:      SourceManual,
		EnhancementType: enhance.Minimal,
		UseLLM:          true,
	})
	if err != nil {
		t.Fatalf("CreateCompleteScript failed: %v", err)
	}

	if !result.Success {
		t.Error("expected workflow success despite enhancement failure")
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "backend unavailable") {
		t.Errorf("errors = %v, want recorded enhancement failure", result.Errors)
	}
	for _, step := range result.StepsCompleted {
		if step == "enhance_content" {
			t.Error("enhance_content must not be listed as completed")
		}
	}
}

// TestCreateCompleteScript_ProcessingFailureIsFatal verifies the
// fail-fast path for the mandatory steps.
func TestCreateCompleteScript_ProcessingFailureIsFatal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "boom"})
	}))
	defer server.Close()

	c := NewClient(server.URL, "")
	result, err := c.CreateCompleteScript(context.Background(), "raw transcript", WorkflowOptions{SourceType: SourceManual})
	if err == nil {
		t.Fatal("expected error")
	}
	if result.Success {
		t.Error("result should not be marked successful")
	}
	if result.FinalError == "" {
		t.Error("final error not recorded")
	}
}
