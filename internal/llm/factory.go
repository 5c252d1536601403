package llm

import (
	"context"
	"fmt"

	"github.com/abhisek/hima/internal/store"
)

// NewProvider builds the configured provider. Calls pass through retry,
// then event logging, then the vendor SDK. A nil repo skips logging.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if events != nil {
		base = WithLogging(base, events)
	}
	return WithTimeout(WithRetry(base, cfg.Retry), cfg.Timeout), nil
}
