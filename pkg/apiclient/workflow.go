package apiclient

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"podscript/pkg/domain"
	"podscript/pkg/enhance"
	"podscript/pkg/fetch"
)

// WorkflowOptions tunes the end-to-end script creation workflow.
type WorkflowOptions struct {
	// SourceType is one of the fetch sources, or SourceManual when
	// the input is already transcript text.
	SourceType string

	// Show overrides the API's default show configuration when set.
	Show *domain.ShowConfig

	// EnhancementType selects the enhancement level. Ignored when
	// UseLLM is false.
	EnhancementType enhance.Type

	// UseLLM enables the optional enhancement step.
	UseLLM bool
}

// WorkflowResult records every step of a complete script creation run.
// Enhancement failures are collected in Errors without failing the
// workflow; any other step failure sets FinalError.
type WorkflowResult struct {
	WorkflowID     string                      `json:"workflow_id"`
	StartedAt      time.Time                   `json:"started_at"`
	CompletedAt    time.Time                   `json:"completed_at"`
	StepsCompleted []string                    `json:"steps_completed"`
	Errors         []string                    `json:"errors"`
	Fetched        *fetch.Result               `json:"fetched_content,omitempty"`
	Processed      *domain.ProcessedTranscript `json:"processed_transcript,omitempty"`
	Enhanced       *EnhanceData                `json:"enhanced_content,omitempty"`
	Script         *domain.GenerationResult    `json:"script,omitempty"`
	Success        bool                        `json:"success"`
	TotalDuration  float64                     `json:"total_duration"`
	FinalError     string                      `json:"final_error,omitempty"`
}

// CreateCompleteScript runs the full pipeline against the remote API:
// fetch (when the input is a URL), process, optionally enhance, then
// generate. The returned WorkflowResult is populated even on failure.
func (c *Client) CreateCompleteScript(ctx context.Context, input string, opts WorkflowOptions) (*WorkflowResult, error) {
	result := &WorkflowResult{
		WorkflowID:     uuid.New().String(),
		StartedAt:      time.Now(),
		StepsCompleted: []string{},
		Errors:         []string{},
	}

	fail := func(err error) (*WorkflowResult, error) {
		result.Success = false
		result.FinalError = err.Error()
		result.CompletedAt = time.Now()
		return result, err
	}

	transcript := input
	if opts.SourceType != SourceManual && opts.SourceType != "" {
		log.Printf("workflow %s: fetching content from %s source", result.WorkflowID, opts.SourceType)
		fetched, err := c.FetchContent(ctx, input, fetch.Source(opts.SourceType))
		if err != nil {
			return fail(err)
		}
		transcript = fetched.Transcript
		result.Fetched = fetched
		result.StepsCompleted = append(result.StepsCompleted, "fetch_content")
	}

	log.Printf("workflow %s: processing transcript", result.WorkflowID)
	processed, err := c.ProcessTranscript(ctx, transcript, opts.SourceType)
	if err != nil {
		return fail(err)
	}
	result.Processed = processed
	result.StepsCompleted = append(result.StepsCompleted, "process_transcript")

	if opts.UseLLM && opts.EnhancementType != "" {
		log.Printf("workflow %s: enhancing content (%s)", result.WorkflowID, opts.EnhancementType)
		enhanced, err := c.EnhanceContent(ctx, transcript, opts.EnhancementType)
		if err != nil {
			// Enhancement is best-effort: record the failure and
			// continue with the unenhanced transcript.
			log.Printf("workflow %s: enhancement failed, continuing with original: %v", result.WorkflowID, err)
			result.Errors = append(result.Errors, fmt.Sprintf("Enhancement failed: %v", err))
		} else {
			result.Enhanced = enhanced
			result.StepsCompleted = append(result.StepsCompleted, "enhance_content")

			if enhanced.Enhanced && enhanced.EnhancedContent != "" {
				reprocessed, err := c.ProcessTranscript(ctx, enhanced.EnhancedContent, opts.SourceType)
				if err != nil {
					return fail(err)
				}
				processed = reprocessed
				result.Processed = reprocessed
			}
		}
	}

	log.Printf("workflow %s: generating script", result.WorkflowID)
	script, err := c.GenerateScript(ctx, processed, opts.Show)
	if err != nil {
		return fail(err)
	}
	result.Script = script
	result.StepsCompleted = append(result.StepsCompleted, "generate_script")

	result.Success = true
	result.TotalDuration = script.EstimatedDuration
	result.CompletedAt = time.Now()

	log.Printf("workflow %s: completed in %d steps", result.WorkflowID, len(result.StepsCompleted))
	return result, nil
}
