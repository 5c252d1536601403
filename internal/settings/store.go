package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/abhisek/hima/internal/store"
)

const (
	keyPreferDeviceSpeech = "use_tts"
	keyLanguage           = "language"
)

// Store persists preferences in the settings table. Unset or unreadable
// keys fall back to the configured defaults.
type Store struct {
	repo     store.SettingsRepo
	defaults Settings
}

var _ Provider = (*Store)(nil)

// NewStore creates a Store over repo.
func NewStore(repo store.SettingsRepo, defaults Settings) *Store {
	return &Store{repo: repo, defaults: defaults}
}

// Current reads the stored preferences.
func (s *Store) Current(ctx context.Context) Settings {
	cur := s.defaults

	if v, ok, err := s.repo.GetSetting(ctx, keyPreferDeviceSpeech); err != nil {
		slog.Warn("read setting", "key", keyPreferDeviceSpeech, "error", err)
	} else if ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cur.PreferDeviceSpeech = b
		}
	}

	if v, ok, err := s.repo.GetSetting(ctx, keyLanguage); err != nil {
		slog.Warn("read setting", "key", keyLanguage, "error", err)
	} else if ok {
		if l, err := ParseLanguage(v); err == nil {
			cur.Language = l
		}
	}

	return cur
}

// SetPreferDeviceSpeech stores the device speech toggle.
func (s *Store) SetPreferDeviceSpeech(ctx context.Context, on bool) error {
	if err := s.repo.SetSetting(ctx, keyPreferDeviceSpeech, strconv.FormatBool(on)); err != nil {
		return fmt.Errorf("save %s: %w", keyPreferDeviceSpeech, err)
	}
	return nil
}

// SetLanguage stores the speaking language.
func (s *Store) SetLanguage(ctx context.Context, l Language) error {
	if _, err := ParseLanguage(string(l)); err != nil {
		return err
	}
	if err := s.repo.SetSetting(ctx, keyLanguage, string(l)); err != nil {
		return fmt.Errorf("save %s: %w", keyLanguage, err)
	}
	return nil
}
