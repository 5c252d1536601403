package speech

import (
	"context"
	"fmt"
	"strings"
)

// Engine names accepted in Options.Engine.
const (
	EngineDevice    = "device"
	EngineGCP       = "gcp"
	EnginePolly     = "polly"
	EngineTranslate = "translate"
	EngineNone      = "none"
)

// Engines lists the accepted engine names.
var Engines = []string{EngineDevice, EngineGCP, EnginePolly, EngineTranslate, EngineNone}

// Options selects and configures a speech engine.
type Options struct {
	Engine   string `yaml:"engine"`
	Command  string `yaml:"command,omitempty"`
	Voice    string `yaml:"voice,omitempty"`
	Region   string `yaml:"region,omitempty"`
	CacheDir string `yaml:"cache_dir,omitempty"`
}

// Validate checks the engine name.
func (o Options) Validate() error {
	for _, e := range Engines {
		if strings.EqualFold(o.Engine, e) {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (want one of %s)", ErrUnknownEngine, o.Engine, strings.Join(Engines, ", "))
}

// NewSynthesizer creates the cloud synthesizer named by name.
func NewSynthesizer(ctx context.Context, name string, opts Options) (Synthesizer, error) {
	switch strings.ToLower(name) {
	case EngineGCP:
		return NewGCPSynthesizer(ctx, opts.Voice)
	case EnginePolly:
		return NewPollySynthesizer(ctx, opts.Region, opts.Voice)
	case EngineTranslate:
		return NewTranslateSynthesizer(""), nil
	}
	return nil, fmt.Errorf("%w: %q has no synthesizer", ErrUnknownEngine, name)
}

// New builds the engine described by opts. Cloud engines play their audio
// through player.
func New(ctx context.Context, opts Options, player FilePlayer) (Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	switch strings.ToLower(opts.Engine) {
	case EngineDevice:
		return NewCommandEngine(opts.Command, opts.Voice), nil
	case EngineNone:
		return Silent{}, nil
	}

	synth, err := NewSynthesizer(ctx, opts.Engine, opts)
	if err != nil {
		return nil, err
	}
	return NewCloudEngine(synth, player, opts.CacheDir), nil
}
