package llm

import (
	"fmt"
	"os"
	"time"
)

// Provider names.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects and configures a provider.
type Config struct {
	Provider string

	Anthropic  AnthropicConfig
	OpenAI     OpenAIConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Retry      RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

type AnthropicConfig struct {
	APIKey string
	Model  string
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig is the backoff policy for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns the defaults. Example authoring is a small task,
// so the cheap model of each provider is used.
func DefaultConfig() Config {
	return Config{
		Provider:   ProviderAnthropic,
		Anthropic:  AnthropicConfig{Model: "claude-haiku"},
		OpenAI:     OpenAIConfig{Model: "gpt-4o-mini"},
		Gemini:     GeminiConfig{Model: "gemini-flash"},
		OpenRouter: OpenRouterConfig{Model: "google/gemini-2.0-flash-001"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: time.Minute,
	}
}

// ConfigFromEnv reads HIMA_* variables over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	set := func(dst *string, key string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.Provider, "HIMA_LLM_PROVIDER")
	set(&cfg.Anthropic.APIKey, "HIMA_ANTHROPIC_API_KEY")
	set(&cfg.Anthropic.Model, "HIMA_ANTHROPIC_MODEL")
	set(&cfg.OpenAI.APIKey, "HIMA_OPENAI_API_KEY")
	set(&cfg.OpenAI.Model, "HIMA_OPENAI_MODEL")
	set(&cfg.OpenAI.BaseURL, "HIMA_OPENAI_BASE_URL")
	set(&cfg.Gemini.APIKey, "HIMA_GEMINI_API_KEY")
	set(&cfg.Gemini.Model, "HIMA_GEMINI_MODEL")
	set(&cfg.OpenRouter.APIKey, "HIMA_OPENROUTER_API_KEY")
	set(&cfg.OpenRouter.Model, "HIMA_OPENROUTER_MODEL")

	return cfg
}

// DiscoverConfig falls back to the vendors' own key variables. The first
// key found, in the order Anthropic, OpenAI, Gemini, OpenRouter, picks the
// provider.
func DiscoverConfig() (Config, bool) {
	cfg := DefaultConfig()

	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Provider, cfg.Anthropic.APIKey = ProviderAnthropic, k
		return cfg, true
	}
	if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.Provider, cfg.OpenAI.APIKey = ProviderOpenAI, k
		return cfg, true
	}
	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Provider, cfg.Gemini.APIKey = ProviderGemini, k
		return cfg, true
	}
	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.Provider, cfg.OpenRouter.APIKey = ProviderOpenRouter, k
		return cfg, true
	}
	return Config{}, false
}

// Resolve returns the HIMA_* configuration when it carries a key for its
// provider, else whatever DiscoverConfig finds.
func Resolve() (Config, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err == nil {
		return cfg, nil
	}
	if found, ok := DiscoverConfig(); ok {
		return found, nil
	}
	return cfg, cfg.Validate()
}

// Validate checks that the selected provider has a key.
func (c Config) Validate() error {
	var key, env string
	switch c.Provider {
	case ProviderAnthropic:
		key, env = c.Anthropic.APIKey, "HIMA_ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		key, env = c.OpenAI.APIKey, "HIMA_OPENAI_API_KEY"
	case ProviderGemini:
		key, env = c.Gemini.APIKey, "HIMA_GEMINI_API_KEY"
	case ProviderOpenRouter:
		key, env = c.OpenRouter.APIKey, "HIMA_OPENROUTER_API_KEY"
	case ProviderMock:
		return nil
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	if key == "" {
		return fmt.Errorf("%s is required for the %s provider", env, c.Provider)
	}
	return nil
}
