package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/wahlandcase/autocommit/internal/analyzer"
	"github.com/wahlandcase/autocommit/internal/git"
	"github.com/wahlandcase/autocommit/internal/logging"
)

const fileName = "autocommit.toml"

type Config struct {
	Analysis AnalysisConfig `toml:"analysis"`
	Commit   CommitConfig   `toml:"commit"`
	Log      LogConfig      `toml:"log"`
}

type AnalysisConfig struct {
	SampleLimit      int      `toml:"sample_limit"`
	BodyFileLimit    int      `toml:"body_file_limit"`
	SourceExtensions []string `toml:"source_extensions"`
}

type CommitConfig struct {
	ConfirmDefault bool   `toml:"confirm_default"`
	AuthorName     string `toml:"author_name"`
	AuthorEmail    string `toml:"author_email"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

func DefaultConfig() *Config {
	opts := analyzer.DefaultOptions()
	return &Config{
		Analysis: AnalysisConfig{
			SampleLimit:      opts.SampleLimit,
			BodyFileLimit:    opts.BodyFileLimit,
			SourceExtensions: opts.SourceExtensions,
		},
		Commit: CommitConfig{
			ConfirmDefault: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, fileName), nil
}

// Load reads the user config, writing the defaults on first run
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		_ = cfg.SaveFile(path) // Best effort save
		return cfg, nil
	}
	return cfg, err
}

// LoadFile reads and validates the config at path. Keys missing from the
// file keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values toml cannot check by type alone
func (c *Config) Validate() error {
	if c.Analysis.SampleLimit <= 0 {
		return fmt.Errorf("analysis.sample_limit must be positive, got %d", c.Analysis.SampleLimit)
	}
	if c.Analysis.BodyFileLimit <= 0 {
		return fmt.Errorf("analysis.body_file_limit must be positive, got %d", c.Analysis.BodyFileLimit)
	}
	for _, ext := range c.Analysis.SourceExtensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("analysis.source_extensions: %q must start with a dot", ext)
		}
	}
	if (c.Commit.AuthorName == "") != (c.Commit.AuthorEmail == "") {
		return errors.New("commit.author_name and commit.author_email must be set together")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// AnalyzerOptions converts the [analysis] section
func (c *Config) AnalyzerOptions() analyzer.Options {
	return analyzer.Options{
		SampleLimit:      c.Analysis.SampleLimit,
		BodyFileLimit:    c.Analysis.BodyFileLimit,
		SourceExtensions: c.Analysis.SourceExtensions,
	}
}

// CommitOptions converts the [commit] section
func (c *Config) CommitOptions(amend bool) git.CommitOptions {
	return git.CommitOptions{
		Amend:       amend,
		AuthorName:  c.Commit.AuthorName,
		AuthorEmail: c.Commit.AuthorEmail,
	}
}
