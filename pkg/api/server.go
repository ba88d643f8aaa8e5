// Package api exposes the script-generation pipeline over HTTP. Every
// endpoint except the health check responds with the JSON envelope
// {success, data} or {success: false, error}.
package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"podscript/pkg/domain"
	"podscript/pkg/enhance"
	"podscript/pkg/fetch"
	"podscript/pkg/transcript"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Server serves the script-generation API.
type Server struct {
	router    *chi.Mux
	port      string
	processor *transcript.Processor
	fetcher   *fetch.Fetcher
	enhancer  enhance.Enhancer
	show      domain.ShowConfig
}

// NewServer wires the pipeline behind the HTTP routes. enhancer may be
// nil; the enhancement endpoint then always falls back to the original
// text.
func NewServer(port string, show domain.ShowConfig, enhancer enhance.Enhancer) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(requestID)

	s := &Server{
		router:    router,
		port:      port,
		processor: transcript.NewProcessor(),
		fetcher:   fetch.NewFetcher(),
		enhancer:  enhancer,
		show:      show,
	}

	router.Get("/api/health", s.health)
	router.Post("/api/process-transcript", s.processTranscript)
	router.Post("/api/enhance-content", s.enhanceContent)
	router.Post("/api/generate-script", s.generateScript)
	router.Post("/api/fetch-transcript", s.fetchTranscript)

	return s
}

// Router exposes the handler, mainly for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start blocks serving HTTP on the configured port.
func (s *Server) Start() error {
	addr := ":" + s.port
	log.Printf("API server listening on %s", addr)
	return http.ListenAndServe(addr, s.router)
}

// requestID tags every request with a generated ID, echoed back in the
// X-Request-ID header.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   "podscript",
		"version":   Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// respondSuccess wraps data in the success envelope.
func respondSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    data,
	})
}

// respondError writes the error envelope with the given status.
func respondError(w http.ResponseWriter, status int, format string, args ...any) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   fmt.Sprintf(format, args...),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// decodeBody parses the request body into dst, returning a client
// error message when the JSON is malformed.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}
