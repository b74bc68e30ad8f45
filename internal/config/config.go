// Package config loads the optional vidtext TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Tools holds paths to the external binaries vidtext shells out to.
type Tools struct {
	YtDlp        string `toml:"ytdlp"`
	WhisperBin   string `toml:"whisper_bin"`
	WhisperModel string `toml:"whisper_model"`
}

// Config is the full file-backed configuration. Flags and environment
// variables override it at the CLI layer.
type Config struct {
	Language string `toml:"language"`
	CacheDir string `toml:"cache_dir"`
	Tools    Tools  `toml:"tools"`
}

const (
	defaultLanguage     = "en"
	defaultCacheDir     = ".cache"
	defaultYtDlp        = "yt-dlp"
	defaultWhisperBin   = ".cache/bin/whisper.cpp"
	defaultWhisperModel = ".cache/models/ggml-base.bin"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Language: defaultLanguage,
		CacheDir: defaultCacheDir,
		Tools: Tools{
			YtDlp:        defaultYtDlp,
			WhisperBin:   defaultWhisperBin,
			WhisperModel: defaultWhisperModel,
		},
	}
}

// DefaultPath returns the default configuration file location under the
// user's config directory.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "vidtext", "config.toml"), nil
}

// Load parses the file at path merged over defaults. An empty path falls
// back to DefaultPath; a missing file is not an error and yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Language == "" {
		return errors.New("language must not be empty")
	}
	if c.Tools.YtDlp == "" {
		return errors.New("tools.ytdlp must not be empty")
	}
	if c.Tools.WhisperBin == "" {
		return errors.New("tools.whisper_bin must not be empty")
	}
	if c.Tools.WhisperModel == "" {
		return errors.New("tools.whisper_model must not be empty")
	}
	return nil
}
