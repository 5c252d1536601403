// Package config loads hima's YAML configuration file and applies HIMA_*
// environment overrides on top of it.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/abhisek/hima/internal/player"
	"github.com/abhisek/hima/internal/settings"
	"github.com/abhisek/hima/internal/speech"
	"github.com/abhisek/hima/internal/store"
)

// Config is the full application configuration.
type Config struct {
	// AssetsDir is the asset pack on disk. Empty uses the bundled sample.
	AssetsDir string `yaml:"assets_dir,omitempty"`

	// DB is the sqlite database path. Empty uses store.DefaultDBPath.
	DB string `yaml:"db,omitempty"`

	// LogFile is where logs go. Empty uses hima.log in the data directory.
	LogFile  string `yaml:"log_file,omitempty"`
	LogLevel string `yaml:"log_level"`

	ExamplesLimit int `yaml:"examples_limit"`

	// QuizSeed makes quiz rounds repeatable. Zero seeds from entropy.
	QuizSeed uint64 `yaml:"quiz_seed,omitempty"`

	Speech   speech.Options `yaml:"speech"`
	Player   player.Options `yaml:"player"`
	Defaults Defaults       `yaml:"defaults"`
}

// Defaults are the preferences used until the learner changes them.
type Defaults struct {
	PreferDeviceSpeech bool   `yaml:"prefer_device_speech"`
	Language           string `yaml:"language"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:      "info",
		ExamplesLimit: 3,
		Speech: speech.Options{
			Engine: speech.EngineDevice,
		},
		Defaults: Defaults{
			PreferDeviceSpeech: true,
			Language:           string(settings.Hindi),
		},
	}
}

// Path resolves the configuration file path in priority order:
// 1. HIMA_CONFIG environment variable
// 2. $XDG_CONFIG_HOME/hima/config.yaml
// 3. ~/.config/hima/config.yaml
func Path() (string, error) {
	if p := os.Getenv("HIMA_CONFIG"); p != "" {
		return p, nil
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "hima", "config.yaml"), nil
}

// Load reads the file at path (or Path() when empty) over the defaults,
// then applies environment overrides and validates the result. A missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.UnmarshalStrict(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from HIMA_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("HIMA_ASSETS"); v != "" {
		c.AssetsDir = v
	}
	if v := os.Getenv("HIMA_DB"); v != "" {
		c.DB = v
	}
	if v := os.Getenv("HIMA_LOG_FILE"); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv("HIMA_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("HIMA_SPEECH_ENGINE"); v != "" {
		c.Speech.Engine = v
	}
	if v := os.Getenv("HIMA_SPEECH_VOICE"); v != "" {
		c.Speech.Voice = v
	}
	if v := os.Getenv("HIMA_PLAYER"); v != "" {
		c.Player.Command = v
	}
	if v := os.Getenv("HIMA_LANGUAGE"); v != "" {
		c.Defaults.Language = v
	}
	if v := os.Getenv("HIMA_EXAMPLES_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HIMA_EXAMPLES_LIMIT: %w", err)
		}
		c.ExamplesLimit = n
	}
	if v := os.Getenv("HIMA_QUIZ_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("HIMA_QUIZ_SEED: %w", err)
		}
		c.QuizSeed = n
	}
	return nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if c.ExamplesLimit < 1 {
		return fmt.Errorf("examples_limit must be at least 1, got %d", c.ExamplesLimit)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if err := c.Speech.Validate(); err != nil {
		return err
	}
	if _, err := settings.ParseLanguage(c.Defaults.Language); err != nil {
		return fmt.Errorf("defaults.language: %w", err)
	}
	return nil
}

// Settings returns the default learner preferences.
func (c Config) Settings() settings.Settings {
	lang, err := settings.ParseLanguage(c.Defaults.Language)
	if err != nil {
		lang = settings.Hindi
	}
	return settings.Settings{PreferDeviceSpeech: c.Defaults.PreferDeviceSpeech, Language: lang}
}

// Level returns the configured log level.
func (c Config) Level() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// DBPath resolves the database path.
func (c Config) DBPath() (string, error) {
	if c.DB != "" {
		return c.DB, store.EnsureDir(c.DB)
	}
	return store.DefaultDBPath()
}

// LogPath resolves the log file path.
func (c Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	dir, err := store.DataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "hima.log"), nil
}

// SpeechCacheDir resolves where synthesized speech is cached.
func (c Config) SpeechCacheDir() (string, error) {
	if c.Speech.CacheDir != "" {
		return c.Speech.CacheDir, nil
	}
	dir, err := store.DataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "speech"), nil
}

// Assets returns the asset pack to load and its directory on disk, which
// is empty for the bundled sample.
func (c Config) Assets() (fs.FS, string) {
	if c.AssetsDir == "" {
		return nil, ""
	}
	return os.DirFS(c.AssetsDir), c.AssetsDir
}

// YAML renders the configuration as it would appear in the file.
func (c Config) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal config: %w", err)
	}
	return string(out), nil
}
