// Package config loads the game's non-gameplay settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/termpong/pingpong/internal/sfx"
)

// Default values for configuration
const (
	DefaultAssetsDir = sfx.DefaultDir
	DefaultFPS       = 60
	DefaultLogLevel  = "info"

	MinFPS = 10
	MaxFPS = 240

	userConfigDir  = ".pingpong"
	configFileName = "config.yaml"
	localFileName  = "pingpong.yaml"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config holds the application configuration
type Config struct {
	AssetsDir string `yaml:"assets_dir"`
	FPS       int    `yaml:"fps"`
	Mute      bool   `yaml:"mute"`
	Seed      int64  `yaml:"seed"` // 0 seeds from the clock
	LogFile   string `yaml:"log_file"`
	LogLevel  string `yaml:"log_level"`
}

func Default() *Config {
	return &Config{
		AssetsDir: DefaultAssetsDir,
		FPS:       DefaultFPS,
		LogLevel:  DefaultLogLevel,
	}
}

// Load reads the configuration.
// Search order: customPath -> ~/.pingpong/config.yaml -> ./pingpong.yaml -> defaults.
// Fields missing from the file keep their default values. An explicit path
// that cannot be read is an error; the implicit locations are optional.
func Load(customPath string) (*Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range []string{userConfigPath(), localFileName} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return cfg, cfg.Validate()
	}

	return cfg, nil
}

func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userConfigDir, configFileName)
}

// Validate checks the configuration for values the game cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.AssetsDir) == "" {
		return fmt.Errorf("%w: assets_dir must not be empty", ErrInvalidConfig)
	}
	if c.FPS < MinFPS || c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps must be between %d and %d, got %d", ErrInvalidConfig, MinFPS, MaxFPS, c.FPS)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
