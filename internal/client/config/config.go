// Package config loads the client configuration: built-in defaults, then an
// optional TOML file, then command-line flags.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvConfigPath names the config file when --config is not given
const EnvConfigPath = "GOURMET_CONFIG"

//go:embed config.example.toml
var exampleConf []byte

// Config is the client configuration.
type Config struct {
	ServerURL   string        `toml:"server_url"`
	DBPath      string        `toml:"db_path"`
	Profile     string        `toml:"profile"`
	LogLevel    string        `toml:"log_level"`
	MetricsFile string        `toml:"metrics_file"`
	Timeout     time.Duration `toml:"timeout"`
	RateLimit   float64       `toml:"rate_limit"`
	Burst       int           `toml:"burst"`
}

// Default returns the configuration described by the embedded example file.
func Default() *Config {
	var cfg Config
	if err := toml.Unmarshal(exampleConf, &cfg); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &cfg
}

// Load returns the defaults overlaid with the TOML file at path. Keys absent
// from the file keep their default values. Unknown keys are an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	return cfg, nil
}

// Path picks the config file: the explicit flag value first, then
// $GOURMET_CONFIG. An empty result means no file.
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(EnvConfigPath)
}

// LoadOrDefault loads path, or returns the defaults when path is empty.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the values that would otherwise fail late.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.ServerURL)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("server_url: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Errorf("server_url: scheme must be http or https, got %q", u.Scheme))
	case u.Host == "":
		errs = append(errs, errors.New("server_url: host is missing"))
	}

	if c.DBPath == "" {
		errs = append(errs, errors.New("db_path cannot be empty"))
	}
	if c.Profile == "" {
		errs = append(errs, errors.New("profile cannot be empty"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, errors.New("timeout must be positive"))
	}
	if c.RateLimit < 0 {
		errs = append(errs, errors.New("rate_limit cannot be negative"))
	}
	if c.Burst < 0 {
		errs = append(errs, errors.New("burst cannot be negative"))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Level returns LogLevel as a slog level, info when it does not parse.
func (c *Config) Level() slog.Level {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLevel parses debug, info, warn or error.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// CreateFile writes the example configuration to path. It refuses to
// overwrite an existing file.
func CreateFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
