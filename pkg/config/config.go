// Package config loads application configuration from the environment
// (with optional .env file) plus an optional JSON overlay file. The
// loaded Config is an explicit object passed to components by the
// caller; there is no process-wide singleton.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"podscript/pkg/domain"
	"podscript/pkg/enhance"
)

// LLMConfig configures the optional text-enhancement backend.
type LLMConfig struct {
	Provider        string  `json:"provider"`
	OpenAIAPIKey    string  `json:"openai_api_key,omitempty"`
	AnthropicAPIKey string  `json:"anthropic_api_key,omitempty"`
	Model           string  `json:"model"`
	MaxTokens       int     `json:"max_tokens"`
	Temperature     float64 `json:"temperature"`
	CustomEndpoint  string  `json:"custom_endpoint,omitempty"`
}

// RemoteConfig points at a deployed script-generation API.
type RemoteConfig struct {
	BaseURL string `json:"base_url"`
	APIKey  string `json:"api_key,omitempty"`
}

// Config is the complete application configuration.
type Config struct {
	Port   string            `json:"port"`
	LLM    LLMConfig         `json:"llm"`
	Show   domain.ShowConfig `json:"show"`
	Remote RemoteConfig      `json:"remote"`
}

// Load reads configuration from the environment, after loading an
// optional .env file, then applies the JSON overlay at overlayPath when
// the file exists. Unset values fall back to defaults.
func Load(overlayPath string) (*Config, error) {
	// .env loading is best-effort; a missing file is not an error.
	godotenv.Load()

	show := domain.DefaultShowConfig()
	show.ShowName = envStr("DEFAULT_SHOW_NAME", show.ShowName)
	show.HostName = envStr("DEFAULT_HOST_NAME", show.HostName)
	show.Tagline = envStr("DEFAULT_TAGLINE", show.Tagline)
	show.IntroMusicDuration = envInt("INTRO_MUSIC_DURATION", show.IntroMusicDuration)
	show.OutroMusicDuration = envInt("OUTRO_MUSIC_DURATION", show.OutroMusicDuration)
	show.TargetDuration = envInt("TARGET_DURATION", show.TargetDuration)
	show.SponsorSegments = envBool("SPONSOR_SEGMENTS", show.SponsorSegments)
	show.CallToAction = envBool("CALL_TO_ACTION", show.CallToAction)

	cfg := &Config{
		Port: envStr("PORT", "8080"),
		LLM: LLMConfig{
			Provider:        envStr("DEFAULT_LLM_PROVIDER", "openai"),
			OpenAIAPIKey:    envStr("OPENAI_API_KEY", ""),
			AnthropicAPIKey: envStr("ANTHROPIC_API_KEY", ""),
			Model:           envStr("DEFAULT_LLM_MODEL", "gpt-4o-mini"),
			MaxTokens:       envInt("LLM_MAX_TOKENS", 2000),
			Temperature:     envFloat("LLM_TEMPERATURE", 0.3),
			CustomEndpoint:  envStr("LLM_CUSTOM_ENDPOINT", ""),
		},
		Show: show,
		Remote: RemoteConfig{
			BaseURL: envStr("SCRIPT_API_URL", ""),
			APIKey:  envStr("SCRIPT_API_KEY", ""),
		},
	}

	if overlayPath != "" {
		if err := cfg.applyOverlay(overlayPath); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// applyOverlay merges a JSON config file over the environment values.
// A missing file is a no-op; a malformed one is an error.
func (c *Config) applyOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration, returning hard errors and
// advisory warnings separately.
func (c *Config) Validate() (errs, warnings []string) {
	if err := c.Show.Validate(); err != nil {
		errs = append(errs, err.Error())
	}

	switch c.LLM.Provider {
	case "openai":
		if c.LLM.OpenAIAPIKey == "" {
			warnings = append(warnings, "OpenAI provider selected but no API key configured; enhancement will be skipped")
		}
	case "anthropic":
		if c.LLM.AnthropicAPIKey == "" {
			warnings = append(warnings, "Anthropic provider selected but no API key configured; enhancement will be skipped")
		}
	case "custom":
		if c.LLM.CustomEndpoint == "" {
			warnings = append(warnings, "custom provider selected but no endpoint configured; enhancement will be skipped")
		}
	case "", "none":
	default:
		errs = append(errs, fmt.Sprintf("unknown LLM provider %q", c.LLM.Provider))
	}

	return errs, warnings
}

// Enhancer builds the configured text enhancer. It returns nil when no
// usable backend is configured; callers treat nil as "enhancement off".
func (c *Config) Enhancer() enhance.Enhancer {
	switch c.LLM.Provider {
	case "openai":
		if c.LLM.OpenAIAPIKey == "" {
			return nil
		}
		return enhance.NewOpenAIEnhancer(c.LLM.OpenAIAPIKey, c.LLM.Model, c.LLM.MaxTokens, c.LLM.Temperature)
	case "anthropic":
		if c.LLM.AnthropicAPIKey == "" {
			return nil
		}
		return enhance.NewAnthropicEnhancer(c.LLM.AnthropicAPIKey, c.LLM.Model, c.LLM.MaxTokens)
	case "custom":
		e, err := enhance.NewCustomEnhancer(c.LLM.CustomEndpoint, nil)
		if err != nil {
			return nil
		}
		return e
	default:
		return nil
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		return v == "true" || v == "1" || v == "yes"
	}
	return fallback
}
