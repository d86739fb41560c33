package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kk-code-lab/nplay/internal/logging"
	"gopkg.in/yaml.v3"
)

// Config is the user configuration read from the YAML config file and the
// NPLAY_* environment variables. Command-line flags are applied by the caller.
type Config struct {
	Repeat       bool          `yaml:"repeat"`
	Autoplay     bool          `yaml:"autoplay"`
	Filter       string        `yaml:"filter"`
	TickInterval time.Duration `yaml:"tick_interval"`
	LogFile      string        `yaml:"log_file"`
	LogLevel     string        `yaml:"log_level"`
	Playlists    []string      `yaml:"playlists"`

	path string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Autoplay:     true,
		TickInterval: time.Second,
		LogFile:      filepath.Join(os.TempDir(), "nplay.log"),
		LogLevel:     "info",
	}
}

// DefaultPath is $XDG_CONFIG_HOME/nplay/config.yaml, falling back to
// ~/.config/nplay/config.yaml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "nplay", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(home, ".config", "nplay", "config.yaml"), nil
}

// Load reads the config file at path, or at NPLAY_CONFIG, or at the default
// location, then applies environment overrides. A missing default file is not
// an error; a missing explicit one is.
func Load(path string) (*Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv("NPLAY_CONFIG")
	}
	if path == "" {
		explicit = false
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.decode(data); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	if strings.TrimSpace(string(data)) == "" {
		return nil
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return err
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	base := filepath.Dir(c.path)
	for i, p := range c.Playlists {
		c.Playlists[i] = resolvePath(base, p)
	}
	if c.LogFile != "" {
		c.LogFile = resolvePath(base, c.LogFile)
	}
	return nil
}

// resolvePath expands ~ and makes relative paths relative to the config file.
func resolvePath(base, p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func (c *Config) applyEnv() {
	c.LogLevel = strings.ToLower(getEnv("NPLAY_LOG_LEVEL", c.LogLevel))
	c.LogFile = getEnv("NPLAY_LOG_FILE", c.LogFile)
	c.Repeat = getEnvBool("NPLAY_REPEAT", c.Repeat)
}

// Path is the config file that was consulted, whether or not it existed.
func (c *Config) Path() string {
	return c.path
}

// Validate reports settings the application cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick_interval %s: must be positive", c.TickInterval))
	}
	return errors.Join(errs...)
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "true" || v == "1" || v == "yes" {
			return true
		}
		if v == "false" || v == "0" || v == "no" {
			return false
		}
	}
	return def
}
