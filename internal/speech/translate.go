package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/text/language"
)

const (
	translateTTSURL     = "https://translate.google.com/translate_tts"
	translateTTSTimeout = 10 * time.Second
	translateUserAgent  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// TranslateSynthesizer uses the Google Translate speech endpoint. It needs
// no credentials.
type TranslateSynthesizer struct {
	baseURL string
	client  *http.Client
}

// NewTranslateSynthesizer creates a TranslateSynthesizer. An empty baseURL
// uses the public endpoint.
func NewTranslateSynthesizer(baseURL string) *TranslateSynthesizer {
	if baseURL == "" {
		baseURL = translateTTSURL
	}
	return &TranslateSynthesizer{
		baseURL: baseURL,
		client:  &http.Client{Timeout: translateTTSTimeout},
	}
}

func (t *TranslateSynthesizer) Synthesize(ctx context.Context, text string, locale language.Tag) ([]byte, error) {
	base, _ := locale.Base()

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", base.String())
	params.Set("client", "tw-ob")
	params.Set("textlen", strconv.Itoa(len([]rune(text))))

	ctx, cancel := context.WithTimeout(ctx, translateTTSTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", translateUserAgent)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read audio: %w", err)
	}
	return data, nil
}

func (t *TranslateSynthesizer) Close() error { return nil }
