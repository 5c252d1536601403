package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/abhisek/hima/internal/store"
)

// LoggingProvider records every call as an llm event.
type LoggingProvider struct {
	inner  Provider
	events store.EventRepo
}

// WithLogging wraps p.
func WithLogging(p Provider, events store.EventRepo) Provider {
	return &LoggingProvider{inner: p, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    providerOf(l.inner),
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: transcript(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	if logErr := l.events.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
		slog.Warn("record llm request", "error", logErr)
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

func providerOf(p Provider) string {
	switch p.(type) {
	case *AnthropicProvider:
		return ProviderAnthropic
	case *OpenRouterProvider:
		return ProviderOpenRouter
	case *OpenAIProvider:
		return ProviderOpenAI
	case *GeminiProvider:
		return ProviderGemini
	case *MockProvider:
		return ProviderMock
	}
	return p.ModelID()
}

// transcript renders a request the way it is shown by "hima llm show".
func transcript(req Request) string {
	var b strings.Builder
	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
