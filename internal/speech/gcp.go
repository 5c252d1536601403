package speech

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	"cloud.google.com/go/texttospeech/apiv1/texttospeechpb"
	"golang.org/x/text/language"
)

var gcpVoices = map[string]*texttospeechpb.VoiceSelectionParams{
	"hi": {
		LanguageCode: "hi-IN",
		Name:         "hi-IN-Wavenet-A",
		SsmlGender:   texttospeechpb.SsmlVoiceGender_FEMALE,
	},
	"mr": {
		LanguageCode: "mr-IN",
		Name:         "mr-IN-Wavenet-A",
		SsmlGender:   texttospeechpb.SsmlVoiceGender_FEMALE,
	},
}

// GCPSynthesizer uses Google Cloud Text-to-Speech. Credentials come from
// the application default chain.
type GCPSynthesizer struct {
	client *texttospeech.Client
	voice  string
}

// NewGCPSynthesizer dials the API. voice overrides the per-language
// default voice name.
func NewGCPSynthesizer(ctx context.Context, voice string) (*GCPSynthesizer, error) {
	client, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create gcp tts client: %w", err)
	}
	return &GCPSynthesizer{client: client, voice: voice}, nil
}

func (g *GCPSynthesizer) Synthesize(ctx context.Context, text string, locale language.Tag) ([]byte, error) {
	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: g.voiceFor(locale),
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_MP3,
			SpeakingRate:  0.9,
		},
	}
	resp, err := g.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("gcp synthesize: %w", err)
	}
	return resp.AudioContent, nil
}

func (g *GCPSynthesizer) voiceFor(locale language.Tag) *texttospeechpb.VoiceSelectionParams {
	base, _ := locale.Base()
	v, ok := gcpVoices[base.String()]
	if !ok {
		v = gcpVoices["hi"]
	}
	if g.voice == "" {
		return v
	}
	return &texttospeechpb.VoiceSelectionParams{
		LanguageCode: v.LanguageCode,
		Name:         g.voice,
		SsmlGender:   v.SsmlGender,
	}
}

func (g *GCPSynthesizer) Close() error {
	return g.client.Close()
}
