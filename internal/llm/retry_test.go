package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2}
}

var (
	okAnswer    = MockResponse{Content: json.RawMessage(`{"ok":true}`)}
	down        = MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
	badShape    = MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`bad`), Err: errors.New("bad")}}
	truncated   = MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{`)}}
	rateLimited = MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}}
)

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   bool
		wantCalls int
	}{
		{"first attempt", []MockResponse{okAnswer}, false, 1},
		{"transient then success", []MockResponse{down, okAnswer}, false, 2},
		{"rate limit then success", []MockResponse{rateLimited, okAnswer}, false, 2},
		{"gives up after max attempts", []MockResponse{down, down, down, okAnswer}, true, 3},
		{"truncation is final", []MockResponse{truncated, okAnswer}, true, 1},
		{"bad shape retried once", []MockResponse{badShape, badShape, okAnswer}, true, 2},
		{"bad shape then success", []MockResponse{badShape, okAnswer}, false, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			resp, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.JSONEq(t, `{"ok":true}`, string(resp.Content))
			}
			assert.Equal(t, tt.wantCalls, mock.CallCount())
		})
	}
}

func TestRetryStopsOnCancel(t *testing.T) {
	mock := NewMockProvider(down, down, okAnswer)
	cfg := fastRetry()
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := WithRetry(mock, cfg).Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

func TestBackoffStaysInBounds(t *testing.T) {
	r := &RetryProvider{config: RetryConfig{InitialWait: 100 * time.Millisecond, MaxWait: time.Second, Multiplier: 2}}
	for attempt := range 6 {
		w := r.backoff(attempt, errors.New("x"))
		assert.LessOrEqual(t, w, 1200*time.Millisecond)
		assert.GreaterOrEqual(t, w, 80*time.Millisecond)
	}
	assert.Equal(t, 3*time.Second, r.backoff(0, &ErrRateLimit{RetryAfter: 3 * time.Second}))
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestTimeout(t *testing.T) {
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "slow", p.ModelID())

	assert.IsType(t, slowProvider{}, WithTimeout(slowProvider{}, 0))
}
