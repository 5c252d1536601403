package audio

import (
	"context"
	"log/slog"

	"golang.org/x/text/language"

	"github.com/abhisek/hima/internal/settings"
)

// AssetPlayer plays a logical asset path. Every failure is reported as
// false; it never returns an error.
type AssetPlayer interface {
	PlayAsset(ctx context.Context, path string) bool
}

// Speaker synthesizes speech. Speak returns immediately.
type Speaker interface {
	Speak(ctx context.Context, text string, locale language.Tag)
}

// Result says which step of a plan ran.
type Result struct {
	// Asset is the path that played, if any.
	Asset string

	// Spoke is set when the speech fallback was used.
	Spoke bool
}

// Executor applies plans.
type Executor struct {
	player  AssetPlayer
	speaker Speaker
}

// NewExecutor creates an Executor. Either collaborator may be nil, in which
// case that step is skipped.
func NewExecutor(player AssetPlayer, speaker Speaker) *Executor {
	return &Executor{player: player, speaker: speaker}
}

// Execute tries the plan's assets in order, then its speech.
func (e *Executor) Execute(ctx context.Context, p Plan) Result {
	if e.player != nil {
		for _, asset := range p.Assets {
			if e.player.PlayAsset(ctx, asset) {
				return Result{Asset: asset}
			}
			slog.Debug("asset unavailable", "path", asset)
		}
	}
	if p.Speech != nil && e.speaker != nil {
		e.speaker.Speak(ctx, p.Speech.Text, p.Speech.Locale)
		return Result{Spoke: true}
	}
	return Result{}
}

// Service resolves and executes intents against the current settings.
type Service struct {
	resolver *Resolver
	settings settings.Provider
	exec     *Executor
}

// NewService wires a resolver, a settings provider and an executor.
func NewService(resolver *Resolver, provider settings.Provider, exec *Executor) *Service {
	return &Service{resolver: resolver, settings: provider, exec: exec}
}

// Plan resolves in without playing it.
func (s *Service) Plan(ctx context.Context, in Intent) Plan {
	return s.resolver.Resolve(in, s.settings.Current(ctx))
}

// Play resolves and executes in.
func (s *Service) Play(ctx context.Context, in Intent) Result {
	plan := s.Plan(ctx, in)
	res := s.exec.Execute(ctx, plan)
	slog.Debug("play", "intent", in.String(), "asset", res.Asset, "spoke", res.Spoke)
	return res
}
