package speech

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"
	"golang.org/x/text/language"
)

const defaultPollyVoice = types.VoiceIdAditi

// PollySynthesizer uses Amazon Polly. Polly has no Marathi voice, so every
// locale is read by a Hindi (hi-IN) voice, which handles Devanagari.
type PollySynthesizer struct {
	client *polly.Client
	voice  types.VoiceId
}

// NewPollySynthesizer loads the default AWS configuration for region.
func NewPollySynthesizer(ctx context.Context, region, voice string) (*PollySynthesizer, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	v := defaultPollyVoice
	if voice != "" {
		v = types.VoiceId(voice)
	}
	return &PollySynthesizer{client: polly.NewFromConfig(cfg), voice: v}, nil
}

func (p *PollySynthesizer) Synthesize(ctx context.Context, text string, _ language.Tag) ([]byte, error) {
	in := &polly.SynthesizeSpeechInput{
		Text:         aws.String(text),
		OutputFormat: types.OutputFormatMp3,
		VoiceId:      p.voice,
		LanguageCode: types.LanguageCodeHiIn,
	}
	if p.voice == types.VoiceIdKajal {
		in.Engine = types.EngineNeural
	}

	out, err := p.client.SynthesizeSpeech(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("polly synthesize: %w", err)
	}
	defer out.AudioStream.Close()

	data, err := io.ReadAll(out.AudioStream)
	if err != nil {
		return nil, fmt.Errorf("read polly audio: %w", err)
	}
	return data, nil
}

func (p *PollySynthesizer) Close() error { return nil }
