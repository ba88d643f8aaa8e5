package api

import (
	"log"
	"net/http"
	"strings"

	"podscript/pkg/domain"
	"podscript/pkg/enhance"
	"podscript/pkg/fetch"
	"podscript/pkg/script"
)

type processRequest struct {
	Transcript string `json:"transcript"`
	SourceType string `json:"source_type"`
}

func (s *Server) processTranscript(w http.ResponseWriter, r *http.Request) {
	var req processRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "%v", err)
		return
	}
	if strings.TrimSpace(req.Transcript) == "" {
		respondError(w, http.StatusBadRequest, "transcript is required")
		return
	}

	processed := s.processor.Process(req.Transcript)
	respondSuccess(w, processed)
}

type enhanceRequest struct {
	Content         string `json:"content"`
	EnhancementType string `json:"enhancement_type"`
}

type enhanceResponse struct {
	EnhancedContent string `json:"enhanced_content"`
	Enhanced        bool   `json:"enhanced"`
	FallbackReason  string `json:"fallback_reason,omitempty"`
}

func (s *Server) enhanceContent(w http.ResponseWriter, r *http.Request) {
	var req enhanceRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "%v", err)
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		respondError(w, http.StatusBadRequest, "content is required")
		return
	}

	kind := enhance.Type(req.EnhancementType)
	switch kind {
	case "":
		kind = enhance.Comprehensive
	case enhance.Comprehensive, enhance.Minimal:
	default:
		respondError(w, http.StatusBadRequest, "unknown enhancement_type %q", req.EnhancementType)
		return
	}

	result := enhance.WithFallback(r.Context(), s.enhancer, req.Content, kind, enhance.DefaultTimeout)
	if result.FallbackReason != "" {
		log.Printf("enhancement fell back to original text: %s", result.FallbackReason)
	}

	respondSuccess(w, enhanceResponse{
		EnhancedContent: result.Text,
		Enhanced:        result.Enhanced,
		FallbackReason:  result.FallbackReason,
	})
}

type generateRequest struct {
	ProcessedTranscript *domain.ProcessedTranscript `json:"processed_transcript"`
	ShowConfig          *domain.ShowConfig          `json:"show_config"`
}

func (s *Server) generateScript(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "%v", err)
		return
	}
	if req.ProcessedTranscript == nil {
		respondError(w, http.StatusBadRequest, "processed_transcript is required")
		return
	}

	show := s.show
	if req.ShowConfig != nil {
		show = *req.ShowConfig
	}

	gen, err := script.NewGenerator(show)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid show config: %v", err)
		return
	}

	result := gen.Generate(req.ProcessedTranscript.Segments)
	if result.Status != "success" {
		respondError(w, http.StatusInternalServerError, "script generation failed: %s", result.Message)
		return
	}

	respondSuccess(w, result)
}

func knownSource(src fetch.Source) bool {
	for _, s := range fetch.Sources() {
		if s == src {
			return true
		}
	}
	return false
}

type fetchRequest struct {
	SourceURL  string        `json:"source_url"`
	SourceType string        `json:"source_type"`
	Options    fetch.Options `json:"options"`
}

func (s *Server) fetchTranscript(w http.ResponseWriter, r *http.Request) {
	var req fetchRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "%v", err)
		return
	}
	if req.SourceURL == "" {
		respondError(w, http.StatusBadRequest, "source_url is required")
		return
	}
	if req.SourceType == "" {
		respondError(w, http.StatusBadRequest, "source_type is required")
		return
	}

	src := fetch.Source(req.SourceType)
	if !knownSource(src) {
		respondError(w, http.StatusBadRequest, "unknown source_type %q", req.SourceType)
		return
	}

	result, err := s.fetcher.Fetch(r.Context(), req.SourceURL, src, req.Options)
	if err != nil {
		respondError(w, http.StatusBadGateway, "fetch failed: %v", err)
		return
	}

	respondSuccess(w, result)
}
