package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"podscript/pkg/apiclient"
	"podscript/pkg/config"
	"podscript/pkg/domain"
	"podscript/pkg/enhance"
	"podscript/pkg/fetch"
	"podscript/pkg/script"
	"podscript/pkg/transcript"
)

func main() {
	var (
		input      = flag.String("input", "-", "Input: transcript file path ('-' for stdin) or source URL")
		sourceType = flag.String("source", "manual", "Source type: manual, youtube, news_url, web_article, podcast_rss, speech_text")
		episode    = flag.Int("episode", 0, "Episode index for podcast_rss sources")
		configPath = flag.String("config", "", "Optional JSON config file layered over the environment")
		outBase    = flag.String("out", "podcast_script", "Output base path; writes <out>.txt and <out>.json")
		enhanceTyp = flag.String("enhance", "skip", "Enhancement level: comprehensive, minimal, or skip")
		remote     = flag.Bool("remote", false, "Run the pipeline against the remote API configured via SCRIPT_API_URL")
		timeout    = flag.Duration("timeout", 5*time.Minute, "Overall timeout for the run")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	errs, warnings := cfg.Validate()
	for _, w := range warnings {
		log.Printf("Config warning: %s", w)
	}
	if len(errs) > 0 {
		for _, e := range errs {
			log.Printf("Config error: %s", e)
		}
		log.Fatal("Invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	start := time.Now()
	var result *domain.GenerationResult
	if *remote {
		result = runRemote(ctx, cfg, *input, *sourceType, *enhanceTyp)
	} else {
		result = runLocal(ctx, cfg, *input, *sourceType, *episode, *enhanceTyp)
	}

	if err := writeOutputs(*outBase, result); err != nil {
		log.Fatalf("Failed to write outputs: %v", err)
	}

	log.Printf("Done. Script: %s.txt (%.2f min estimated). Duration: %s",
		*outBase, result.EstimatedDuration, time.Since(start))
}

// runLocal executes the full pipeline in-process.
func runLocal(ctx context.Context, cfg *config.Config, input, sourceType string, episode int, enhanceTyp string) *domain.GenerationResult {
	raw, err := readInput(ctx, input, sourceType, episode)
	if err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}

	processor := transcript.NewProcessor()
	processed := processor.Process(raw)
	log.Printf("Processed transcript: %d segments, %.2f min estimated",
		processed.TotalSegments, processed.EstimatedDuration)

	if kind := enhance.Type(enhanceTyp); kind == enhance.Comprehensive || kind == enhance.Minimal {
		res := enhance.WithFallback(ctx, cfg.Enhancer(), processed.CleanedText, kind, enhance.DefaultTimeout)
		if res.Enhanced {
			log.Printf("Content enhanced (%s)", kind)
			processed = processor.Process(res.Text)
		} else {
			log.Printf("Enhancement skipped, using original text: %s", res.FallbackReason)
		}
	}

	gen, err := script.NewGenerator(cfg.Show)
	if err != nil {
		log.Fatalf("Invalid show config: %v", err)
	}

	result := gen.Generate(processed.Segments)
	if result.Status != "success" {
		log.Fatalf("Script generation failed: %s", result.Message)
	}
	return &result
}

// runRemote delegates the pipeline to a deployed API.
func runRemote(ctx context.Context, cfg *config.Config, input, sourceType, enhanceTyp string) *domain.GenerationResult {
	if cfg.Remote.BaseURL == "" {
		log.Fatal("Remote mode requires SCRIPT_API_URL to be set")
	}

	if sourceType == apiclient.SourceManual {
		raw, err := readInput(ctx, input, sourceType, 0)
		if err != nil {
			log.Fatalf("Failed to read input: %v", err)
		}
		input = raw
	}

	client := apiclient.NewClient(cfg.Remote.BaseURL, cfg.Remote.APIKey)
	kind := enhance.Type(enhanceTyp)
	useLLM := kind == enhance.Comprehensive || kind == enhance.Minimal

	wf, err := client.CreateCompleteScript(ctx, input, apiclient.WorkflowOptions{
		SourceType:      sourceType,
		Show:            &cfg.Show,
		EnhancementType: kind,
		UseLLM:          useLLM,
	})
	if err != nil {
		log.Fatalf("Remote workflow failed after %v steps: %v", wf.StepsCompleted, err)
	}
	for _, e := range wf.Errors {
		log.Printf("Workflow warning: %s", e)
	}
	return wf.Script
}

// readInput returns transcript text: from a file or stdin for manual
// sources, or fetched from the given URL otherwise.
func readInput(ctx context.Context, input, sourceType string, episode int) (string, error) {
	if sourceType != apiclient.SourceManual {
		fetcher := fetch.NewFetcher()
		result, err := fetcher.Fetch(ctx, input, fetch.Source(sourceType), fetch.Options{EpisodeIndex: episode})
		if err != nil {
			return "", err
		}
		log.Printf("Fetched %q (%d words) from %s", result.Title, result.WordCount, sourceType)
		return result.Transcript, nil
	}

	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(input)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", input, err)
	}
	return string(data), nil
}

// writeOutputs writes the plain-text script and the structured JSON
// document next to each other.
func writeOutputs(base string, result *domain.GenerationResult) error {
	if err := os.WriteFile(base+".txt", []byte(result.Script), 0o644); err != nil {
		return err
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	return os.WriteFile(base+".json", data, 0o644)
}
